// Package config loads the build environment of a project and exposes it
// as an immutable, sectioned view for the tools that consume it.
//
// A load runs three stages:
//  1. environment: process variables merged with the project's .env file
//     (process-set wins, file-set fills the gaps);
//  2. validation: values coerced against the schema registry, deprecated
//     names patched onto their replacements, schema defaults applied;
//  3. facade: the validated values wrapped into a [Configuration].
//
// Every problem found in stage 2 is reported at once through a single
// [ConfigurationError]; no partially valid Configuration is ever returned.
//
// Consumers ask for sections rather than flat names:
//
//	cfg, err := config.Load(projectDir)
//	if err != nil {
//		return err
//	}
//	upward := cfg.Section("upwardJs") // UPWARD_JS_HOST -> upward["host"]
//
// The main entry points are [Load] for the default schema and process
// environment, and [NewLoader] for injecting both.
package config

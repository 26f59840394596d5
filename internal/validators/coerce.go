package validators

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-buildenv/models"
)

const maxPort = 65535

// coerce converts raw into the declared type and reports whether it could.
// Only the literal empty string is a false bool; "false" and "0" are true
// like any other non-empty text. Numbers and ports are taken exactly as
// written: no surrounding space, and a port is plain decimal digits.
func coerce(t models.VarType, raw string) (models.Value, bool) {
	switch t.Kind {
	case models.TypeBool:
		return models.BoolValue(raw != ""), true

	case models.TypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return models.Value{}, false
		}
		return models.NumberValue(n), true

	case models.TypePort:
		if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
			return models.Value{}, false
		}
		p, err := strconv.Atoi(raw)
		if err != nil || p > maxPort {
			return models.Value{}, false
		}
		return models.NumberValue(float64(p)), true

	case models.TypeURL:
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return models.Value{}, false
		}
		return models.StringValue(raw), true

	case models.TypeEnum:
		if !t.Allows(raw) {
			return models.Value{}, false
		}
		return models.StringValue(raw), true

	default:
		return models.StringValue(raw), true
	}
}

package validators

import (
	"regexp"
	"time"
)

var fechaRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseFechaNacimiento valida primero el formato YYYY-MM-DD y después que sea
// una fecha real del calendario (2025-02-30 pasa el regex pero no el parse).
func ParseFechaNacimiento(s string) (time.Time, bool, bool) {
	if !fechaRegex.MatchString(s) {
		return time.Time{}, false, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, true, false
	}
	return t, true, true
}

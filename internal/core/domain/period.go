package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

var periodRegex = regexp.MustCompile(`^\d{4}\.\d{2}$`)

// Period is a reporting period such as "2025.03".
// It is only ever typed into the target application's find box.
type Period string

// ParsePeriod validates s and returns it as a Period.
func ParsePeriod(s string) (Period, error) {
	if !periodRegex.MatchString(s) {
		return "", zerr.With(ErrInvalidPeriod, "period", s)
	}
	return Period(s), nil
}

// String returns the period text.
func (p Period) String() string {
	return string(p)
}

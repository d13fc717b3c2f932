package loan

import (
	"regexp"
	"strings"
)

var (
	reAadhaar = regexp.MustCompile(`^[0-9]{12}$`)
	rePAN     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// ValidAadhaar accepts exactly 12 ASCII digits.
func ValidAadhaar(s string) bool { return reAadhaar.MatchString(s) }

// NormalizePAN uppercases the PAN and validates the AAAAA9999A layout.
func NormalizePAN(s string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(s))
	if !rePAN.MatchString(p) {
		return "", ErrInvalidPAN
	}
	return p, nil
}

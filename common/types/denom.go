package types

import (
	"fmt"
	"regexp"
)

// MaxDenomLength is bounded by the 32-byte mint slot of the fixed record layouts.
const MaxDenomLength = 32

var denomRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-\.]*$`)

// ValidateDenom checks that denom can serve as a token-mint reference.
func ValidateDenom(denom string) error {
	if len(denom) == 0 || len(denom) > MaxDenomLength {
		return fmt.Errorf("length of denom(%d) should be larger than 0 and less than or equal to %d", len(denom), MaxDenomLength)
	}
	if !denomRegex.MatchString(denom) {
		return fmt.Errorf("denom(%s) contains illegal characters", denom)
	}
	return nil
}

// Package partitaiva validates the Italian partita IVA, the 11-digit VAT
// identification number: a 7-digit matricola, a 3-digit office code, and a
// Luhn-variant check digit.
package partitaiva

import "strings"

// ErrorKind is a stable identifier callers can branch on.
type ErrorKind string

const (
	KindInvalidLength     ErrorKind = "invalid-length"
	KindInvalidCheckDigit ErrorKind = "invalid-check-digit"
)

// ValidationResult is the immutable outcome of Validate. Value carries the
// cleaned (digits-only) input; OfficeCode and Temporary are populated on
// success.
type ValidationResult struct {
	Valid      bool
	ErrorKind  ErrorKind
	Value      string
	OfficeCode string
	Temporary  bool
}

// Validate checks an Italian partita IVA. It is a total, pure function:
// normalization keeps decimal digits only, which incidentally strips any
// country prefix such as "IT".
func Validate(value string) ValidationResult {
	clean := digitsOnly(value)
	res := ValidationResult{Value: clean}

	if len(clean) != 11 {
		res.ErrorKind = KindInvalidLength
		return res
	}

	if !checkDigitValid(clean) {
		res.ErrorKind = KindInvalidCheckDigit
		return res
	}

	res.Valid = true
	res.OfficeCode = clean[7:10]
	// The tax agency assigns the 99 prefix to temporary VAT positions.
	res.Temporary = strings.HasPrefix(clean, "99")
	return res
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// checkDigitValid runs the Luhn variant over all 11 digits: even 0-indexed
// positions count as-is, odd positions are doubled with a digit-sum fold.
// The check digit participates like any other position, which is what makes
// the scheme self-validating: the total must be divisible by 10.
func checkDigitValid(piva string) bool {
	total := 0
	for i := 0; i < len(piva); i++ {
		d := int(piva[i] - '0')
		if i%2 == 1 {
			d *= 2
			if d >= 10 {
				d -= 9
			}
		}
		total += d
	}
	return total%10 == 0
}

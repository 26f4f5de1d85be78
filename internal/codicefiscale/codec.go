// Package codicefiscale validates and generates the Italian codice fiscale,
// the 16-character personal tax identification code.
//
// A codice fiscale encodes surname (3 letters), given name (3 letters), birth
// year (2 digits), birth month (1 letter), birth day and sex (2 digits, +40
// for females), birth place (4-character cadastral code) and a mod-26 check
// character. Digits in the seven digit-bearing positions may be replaced by
// omocodia substitute letters; the codec decodes them before any numeric
// interpretation, including the checksum.
package codicefiscale

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// cfPattern admits omocodia letters at every digit-bearing position.
var cfPattern = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}[A-Z][A-Z0-9]{2}[A-Z][A-Z0-9]{3}[A-Z]$`)

// PlaceDirectory resolves a 4-character cadastral code to a birth place.
// A miss is not an error: codes outside the directory still validate.
type PlaceDirectory interface {
	LookupPlace(code string) (name, province string, ok bool)
}

// Codec validates and generates codici fiscali. It holds no per-call state
// and is safe for concurrent use.
type Codec struct {
	places PlaceDirectory
	now    func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock overrides the time source used for century resolution and age
// calculation. Tests pin it to keep results deterministic.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

// New builds a Codec resolving birth places through the given directory.
func New(places PlaceDirectory, opts ...Option) *Codec {
	c := &Codec{places: places, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate checks a codice fiscale and decodes its derived fields.
// It is total: every input yields a result, never a panic or error.
func (c *Codec) Validate(value string, opts ValidateOptions) ValidationResult {
	clean := normalize(value)
	res := ValidationResult{Value: clean}

	if !cfPattern.MatchString(clean) {
		res.ErrorKind = KindInvalidFormat
		return res
	}

	decoded := decodeOmocodia(clean)
	if computeCheckChar(decoded[:15]) != clean[15] {
		// Deliberately the same kind as the structural check: callers are
		// not told whether the shape or the checksum failed.
		res.ErrorKind = KindInvalidFormat
		return res
	}

	birthdate, sex, ok := c.decodeBirthdate(decoded)
	if !ok {
		res.ErrorKind = KindCannotDecodeBirthdate
		return res
	}

	res.Birthdate = birthdate
	res.Sex = sex
	res.Age = ageAt(birthdate, c.now())

	res.BirthPlaceCode = decoded[11:15]
	res.ForeignBorn = strings.HasPrefix(res.BirthPlaceCode, "Z")
	if c.places != nil {
		if name, province, found := c.places.LookupPlace(res.BirthPlaceCode); found {
			res.BirthPlaceName = name
			res.BirthPlaceProvince = province
		}
	}

	if opts.RequireMinimumAge {
		minimum := opts.MinimumAge
		if minimum <= 0 {
			minimum = DefaultMinimumAge
		}
		if res.Age < minimum {
			res.ErrorKind = KindUnderage
			return res
		}
	}

	res.Valid = true
	return res
}

// normalize trims, uppercases, and strips embedded whitespace.
func normalize(value string) string {
	upper := strings.ToUpper(strings.TrimSpace(value))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, upper)
}

// decodeOmocodia replaces substitute letters with their digits at the seven
// flagged positions. The map is applied uniformly with no cross-check against
// the surrounding pattern; real issuance relies on that permissiveness.
func decodeOmocodia(cf string) string {
	b := []byte(cf)
	for _, pos := range omocodiaPositions {
		if digit, ok := omocodiaDigits[b[pos]]; ok {
			b[pos] = digit
		}
	}
	return string(b)
}

// computeCheckChar computes the check character over the 15 leading characters
// of the omocodia-decoded form: odd/even value tables by position parity,
// summed mod 26, mapped onto A-Z.
func computeCheckChar(decoded15 string) byte {
	total := 0
	for i := 0; i < len(decoded15); i++ {
		if i%2 == 0 {
			total += oddValues[decoded15[i]]
		} else {
			total += evenValues[decoded15[i]]
		}
	}
	return byte('A' + total%26)
}

// decodeBirthdate reads year, month, day, and sex from the decoded form.
func (c *Codec) decodeBirthdate(decoded string) (time.Time, Sex, bool) {
	yy, err := strconv.Atoi(decoded[6:8])
	if err != nil {
		return time.Time{}, "", false
	}

	// Century heuristic mirroring the issuance rule: two-digit years above
	// the current year's tail are 1900s, the rest belong to the current
	// century. Ambiguous for people exactly 100 years apart, by contract.
	currentYear := c.now().Year()
	year := currentYear/100*100 + yy
	if yy > currentYear%100 {
		year = 1900 + yy
	}

	month, ok := monthNumbers[decoded[8]]
	if !ok {
		return time.Time{}, "", false
	}

	day, err := strconv.Atoi(decoded[9:11])
	if err != nil {
		return time.Time{}, "", false
	}
	sex := SexMale
	if day > 40 {
		day -= 40
		sex = SexFemale
	}

	birthdate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birthdate.Year() != year || birthdate.Month() != time.Month(month) || birthdate.Day() != day {
		// time.Date normalizes out-of-range days (e.g. Feb 30); any shift
		// means the encoded day does not exist in that month.
		return time.Time{}, "", false
	}
	return birthdate, sex, true
}

// ageAt computes age in whole years at the reference date.
func ageAt(birthdate, at time.Time) int {
	age := at.Year() - birthdate.Year()
	if at.Month() < birthdate.Month() ||
		(at.Month() == birthdate.Month() && at.Day() < birthdate.Day()) {
		age--
	}
	return age
}

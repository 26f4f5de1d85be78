package codicefiscale

import "time"

// Sex as encoded in the day field of a codice fiscale (+40 for females).
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// ErrorKind is a stable identifier callers can branch on. Domain failures are
// reported as result values, never as Go errors.
type ErrorKind string

const (
	// Validation kinds. Structural failures and checksum failures share
	// invalid-format on purpose: callers must not learn to distinguish them.
	KindInvalidFormat         ErrorKind = "invalid-format"
	KindCannotDecodeBirthdate ErrorKind = "cannot-decode-birthdate"
	KindUnderage              ErrorKind = "underage"

	// Generation kinds.
	KindInvalidSurname        ErrorKind = "invalid-surname"
	KindInvalidName           ErrorKind = "invalid-name"
	KindInvalidGender         ErrorKind = "invalid-gender"
	KindInvalidBirthPlaceCode ErrorKind = "invalid-birth-place-code"
	// KindEncodingFailed is the catch-all for unexpected encoding failures;
	// the result carries the diagnostic detail alongside it.
	KindEncodingFailed ErrorKind = "encoding-failed"
)

// DefaultMinimumAge matches the age gate used for regulated registrations.
const DefaultMinimumAge = 18

// ValidateOptions controls the optional minimum-age check.
// A MinimumAge of zero or less means DefaultMinimumAge.
type ValidateOptions struct {
	RequireMinimumAge bool
	MinimumAge        int
}

// ValidationResult is the immutable outcome of Validate.
//
// Value always carries the cleaned input. The derived fields are populated
// once the birthdate has been decoded, so an underage result still exposes
// birthdate, age, sex, and birth place; format failures expose none of them.
type ValidationResult struct {
	Valid     bool
	ErrorKind ErrorKind
	Value     string

	Birthdate          time.Time
	Age                int
	Sex                Sex
	BirthPlaceCode     string
	BirthPlaceName     string
	BirthPlaceProvince string
	ForeignBorn        bool
}

// PersonalRecord is the input to Generate.
type PersonalRecord struct {
	Surname        string
	GivenName      string
	Birthdate      time.Time
	Sex            Sex
	BirthPlaceCode string
}

// GenerationResult is the immutable outcome of Generate.
type GenerationResult struct {
	Valid         bool
	ErrorKind     ErrorKind
	ErrorDetail   string
	CodiceFiscale string
}

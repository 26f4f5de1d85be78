package handler

import (
	"strings"
	"time"

	"fisco/internal/codicefiscale"
	dErrors "fisco/pkg/domain-errors"
	"fisco/pkg/platform/validation"
)

// ValidateCodiceFiscaleRequest asks for a codice fiscale to be validated and
// decoded. The minimum-age check is off unless requested; a MinimumAge of
// zero falls back to the default.
type ValidateCodiceFiscaleRequest struct {
	Value      string `json:"value" validate:"required,notblank"`
	CheckAdult bool   `json:"check_adult"`
	MinimumAge int    `json:"minimum_age" validate:"min=0,max=150"`
}

// Normalize applies business defaults and sanitizes inputs.
func (r *ValidateCodiceFiscaleRequest) Normalize() {
	if r == nil {
		return
	}
	r.Value = strings.TrimSpace(r.Value)
}

// Validate checks that the request is well-formed.
func (r *ValidateCodiceFiscaleRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

// ToOptions converts the request into codec validation options.
func (r *ValidateCodiceFiscaleRequest) ToOptions() codicefiscale.ValidateOptions {
	return codicefiscale.ValidateOptions{
		RequireMinimumAge: r.CheckAdult,
		MinimumAge:        r.MinimumAge,
	}
}

// GenerateCodiceFiscaleRequest carries the personal record to encode. The
// birth place is given either as a cadastral code or as a municipality name;
// the name is resolved through the directory. Content checks on the person
// fields (surname, name, sex) are domain outcomes, not transport failures,
// so they are not validated here.
type GenerateCodiceFiscaleRequest struct {
	Surname        string `json:"surname"`
	GivenName      string `json:"given_name"`
	Birthdate      string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Sex            string `json:"sex"`
	BirthPlaceCode string `json:"birth_place_code"`
	BirthPlace     string `json:"birth_place"`
}

// Normalize applies business defaults and sanitizes inputs.
func (r *GenerateCodiceFiscaleRequest) Normalize() {
	if r == nil {
		return
	}
	r.Surname = strings.TrimSpace(r.Surname)
	r.GivenName = strings.TrimSpace(r.GivenName)
	r.Birthdate = strings.TrimSpace(r.Birthdate)
	r.Sex = strings.ToUpper(strings.TrimSpace(r.Sex))
	r.BirthPlaceCode = strings.ToUpper(strings.TrimSpace(r.BirthPlaceCode))
	r.BirthPlace = strings.TrimSpace(r.BirthPlace)
}

// Validate checks that the request is well-formed.
func (r *GenerateCodiceFiscaleRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.BirthPlaceCode == "" && r.BirthPlace == "" {
		return dErrors.New(dErrors.CodeValidation, "one of birth_place_code or birth_place is required")
	}
	return validation.Validate(r)
}

// ToRecord converts the request into a personal record, using the resolved
// cadastral code when the request named the municipality instead.
func (r *GenerateCodiceFiscaleRequest) ToRecord(placeCode string) codicefiscale.PersonalRecord {
	// Birthdate format is enforced by Validate.
	birthdate, _ := time.Parse("2006-01-02", r.Birthdate)
	return codicefiscale.PersonalRecord{
		Surname:        r.Surname,
		GivenName:      r.GivenName,
		Birthdate:      birthdate,
		Sex:            codicefiscale.Sex(r.Sex),
		BirthPlaceCode: placeCode,
	}
}

// ValidatePartitaIVARequest asks for a partita IVA to be validated.
type ValidatePartitaIVARequest struct {
	Value string `json:"value" validate:"required,notblank"`
}

// Normalize applies business defaults and sanitizes inputs.
func (r *ValidatePartitaIVARequest) Normalize() {
	if r == nil {
		return
	}
	r.Value = strings.TrimSpace(r.Value)
}

// Validate checks that the request is well-formed.
func (r *ValidatePartitaIVARequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

package handler

import (
	"fisco/internal/codicefiscale"
	"fisco/internal/comuni"
	"fisco/internal/partitaiva"
)

// ValidateCodiceFiscaleResponse reports the validation outcome. The decoded
// fields are present once the birthdate could be read, so an underage result
// still carries them.
type ValidateCodiceFiscaleResponse struct {
	Valid     bool   `json:"valid"`
	ErrorKind string `json:"error_kind,omitempty"`
	Value     string `json:"value"`

	// Age has no omitempty: a valid newborn result carries age 0.
	Birthdate          string `json:"birthdate,omitempty"`
	Age                int    `json:"age"`
	Sex                string `json:"sex,omitempty"`
	BirthPlaceCode     string `json:"birth_place_code,omitempty"`
	BirthPlaceName     string `json:"birth_place_name,omitempty"`
	BirthPlaceProvince string `json:"birth_place_province,omitempty"`
	ForeignBorn        bool   `json:"foreign_born,omitempty"`
}

// GenerateCodiceFiscaleResponse reports the generation outcome. Suggestions
// are only set when a municipality name could not be resolved.
type GenerateCodiceFiscaleResponse struct {
	Valid         bool     `json:"valid"`
	ErrorKind     string   `json:"error_kind,omitempty"`
	ErrorDetail   string   `json:"error_detail,omitempty"`
	CodiceFiscale string   `json:"codice_fiscale,omitempty"`
	Suggestions   []string `json:"suggestions,omitempty"`
}

// ValidatePartitaIVAResponse reports the validation outcome.
type ValidatePartitaIVAResponse struct {
	Valid      bool   `json:"valid"`
	ErrorKind  string `json:"error_kind,omitempty"`
	Value      string `json:"value"`
	OfficeCode string `json:"office_code,omitempty"`
	Temporary  bool   `json:"temporary,omitempty"`
}

// MunicipalityResponse is a directory entry in HTTP responses.
type MunicipalityResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Province string `json:"province"`
}

// SearchMunicipalitiesResponse lists directory entries matching a query.
type SearchMunicipalitiesResponse struct {
	Municipalities []MunicipalityResponse `json:"municipalities"`
}

func toValidateCFResponse(res codicefiscale.ValidationResult) *ValidateCodiceFiscaleResponse {
	out := &ValidateCodiceFiscaleResponse{
		Valid:              res.Valid,
		ErrorKind:          string(res.ErrorKind),
		Value:              res.Value,
		Age:                res.Age,
		Sex:                string(res.Sex),
		BirthPlaceCode:     res.BirthPlaceCode,
		BirthPlaceName:     res.BirthPlaceName,
		BirthPlaceProvince: res.BirthPlaceProvince,
		ForeignBorn:        res.ForeignBorn,
	}
	if !res.Birthdate.IsZero() {
		out.Birthdate = res.Birthdate.Format("2006-01-02")
	}
	return out
}

func toGenerateCFResponse(res codicefiscale.GenerationResult) *GenerateCodiceFiscaleResponse {
	return &GenerateCodiceFiscaleResponse{
		Valid:         res.Valid,
		ErrorKind:     string(res.ErrorKind),
		ErrorDetail:   res.ErrorDetail,
		CodiceFiscale: res.CodiceFiscale,
	}
}

func toValidatePIVAResponse(res partitaiva.ValidationResult) *ValidatePartitaIVAResponse {
	return &ValidatePartitaIVAResponse{
		Valid:      res.Valid,
		ErrorKind:  string(res.ErrorKind),
		Value:      res.Value,
		OfficeCode: res.OfficeCode,
		Temporary:  res.Temporary,
	}
}

func toSearchResponse(results []comuni.Municipality) *SearchMunicipalitiesResponse {
	municipalities := make([]MunicipalityResponse, 0, len(results))
	for _, m := range results {
		municipalities = append(municipalities, MunicipalityResponse{
			Code:     m.Code,
			Name:     m.Name,
			Province: m.Province,
		})
	}
	return &SearchMunicipalitiesResponse{Municipalities: municipalities}
}

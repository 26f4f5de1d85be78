package codicefiscale

import (
	"fmt"
	"strings"
)

// Generate encodes a personal record into a codice fiscale.
// Like Validate it reports failures as result values, never as errors.
func (c *Codec) Generate(record PersonalRecord) GenerationResult {
	surname := strings.TrimSpace(record.Surname)
	if surname == "" {
		return GenerationResult{ErrorKind: KindInvalidSurname}
	}
	givenName := strings.TrimSpace(record.GivenName)
	if givenName == "" {
		return GenerationResult{ErrorKind: KindInvalidName}
	}
	if record.Sex != SexMale && record.Sex != SexFemale {
		return GenerationResult{ErrorKind: KindInvalidGender}
	}
	placeCode := strings.ToUpper(strings.TrimSpace(record.BirthPlaceCode))
	if len(placeCode) != 4 {
		return GenerationResult{ErrorKind: KindInvalidBirthPlaceCode}
	}

	surnameCode, err := encodeSurname(surname)
	if err != nil {
		return encodingFailed(err)
	}
	nameCode, err := encodeGivenName(givenName)
	if err != nil {
		return encodingFailed(err)
	}

	day := record.Birthdate.Day()
	if record.Sex == SexFemale {
		day += 40
	}

	var b strings.Builder
	b.WriteString(surnameCode)
	b.WriteString(nameCode)
	fmt.Fprintf(&b, "%02d", record.Birthdate.Year()%100)
	b.WriteByte(monthLetters[int(record.Birthdate.Month())-1])
	fmt.Fprintf(&b, "%02d", day)
	b.WriteString(placeCode)

	// Generated codes carry plain digits, so the checksum input is already
	// in decoded form.
	cf := b.String()
	cf += string(computeCheckChar(cf))

	return GenerationResult{Valid: true, CodiceFiscale: cf}
}

func encodingFailed(err error) GenerationResult {
	return GenerationResult{ErrorKind: KindEncodingFailed, ErrorDetail: err.Error()}
}

// encodeSurname takes the first three consonants, falls back to vowels in
// order of appearance, and pads with X.
func encodeSurname(surname string) (string, error) {
	consonants, vowels := splitLetters(surname)
	if len(consonants)+len(vowels) == 0 {
		return "", fmt.Errorf("surname %q contains no letters", surname)
	}
	return pickThree(consonants, vowels), nil
}

// encodeGivenName follows the surname rule except when four or more
// consonants are present: then the 1st, 3rd, and 4th are taken, skipping the
// 2nd. The asymmetry with the surname rule is part of the format.
func encodeGivenName(name string) (string, error) {
	consonants, vowels := splitLetters(name)
	if len(consonants)+len(vowels) == 0 {
		return "", fmt.Errorf("given name %q contains no letters", name)
	}
	if len(consonants) >= 4 {
		return string([]byte{consonants[0], consonants[2], consonants[3]}), nil
	}
	return pickThree(consonants, vowels), nil
}

// splitLetters uppercases, drops non-letters, and partitions into consonants
// and vowels preserving order of appearance.
func splitLetters(s string) (consonants, vowels []byte) {
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			continue
		}
		switch r {
		case 'A', 'E', 'I', 'O', 'U':
			vowels = append(vowels, byte(r))
		default:
			consonants = append(consonants, byte(r))
		}
	}
	return consonants, vowels
}

func pickThree(consonants, vowels []byte) string {
	code := append([]byte{}, consonants...)
	code = append(code, vowels...)
	for len(code) < 3 {
		code = append(code, 'X')
	}
	return string(code[:3])
}

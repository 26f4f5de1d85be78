package partitaiva

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// ValidateSuite tests partita IVA validation.
type ValidateSuite struct {
	suite.Suite
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

func (s *ValidateSuite) TestValidNumbers() {
	s.Run("standard number", func() {
		res := Validate("12345678903")
		s.True(res.Valid)
		s.Empty(string(res.ErrorKind))
		s.Equal("12345678903", res.Value)
		s.Equal("890", res.OfficeCode)
		s.False(res.Temporary)
	})

	s.Run("all zeros is self-consistent", func() {
		res := Validate("00000000000")
		s.True(res.Valid)
		s.Equal("000", res.OfficeCode)
	})

	s.Run("real-world number", func() {
		res := Validate("00743110157")
		s.True(res.Valid)
		s.Equal("015", res.OfficeCode)
	})

	s.Run("temporary position with 99 prefix", func() {
		res := Validate("99000000002")
		s.True(res.Valid)
		s.True(res.Temporary)
	})
}

func (s *ValidateSuite) TestNormalization() {
	s.Run("country prefix is stripped", func() {
		res := Validate("IT12345678903")
		s.True(res.Valid)
		s.Equal("12345678903", res.Value)
	})

	s.Run("spaces and separators are stripped", func() {
		res := Validate(" 123 456.789-03 ")
		s.True(res.Valid)
		s.Equal("12345678903", res.Value)
	})
}

func (s *ValidateSuite) TestInvalidNumbers() {
	s.Run("empty input", func() {
		res := Validate("")
		s.False(res.Valid)
		s.Equal(KindInvalidLength, res.ErrorKind)
	})

	s.Run("too short", func() {
		res := Validate("1234567890")
		s.False(res.Valid)
		s.Equal(KindInvalidLength, res.ErrorKind)
	})

	s.Run("too long", func() {
		res := Validate("123456789012")
		s.False(res.Valid)
		s.Equal(KindInvalidLength, res.ErrorKind)
	})

	s.Run("letters only leave nothing", func() {
		res := Validate("ABCDEFGHIJK")
		s.False(res.Valid)
		s.Equal(KindInvalidLength, res.ErrorKind)
		s.Empty(res.Value)
	})

	s.Run("wrong check digit", func() {
		res := Validate("12345678901")
		s.False(res.Valid)
		s.Equal(KindInvalidCheckDigit, res.ErrorKind)
		s.Empty(res.OfficeCode)
	})

	s.Run("every wrong check digit is rejected", func() {
		for d := byte('0'); d <= '9'; d++ {
			if d == '3' {
				continue
			}
			res := Validate("1234567890" + string(d))
			s.False(res.Valid, "check digit %c must not pass", d)
			s.Equal(KindInvalidCheckDigit, res.ErrorKind)
		}
	})
}

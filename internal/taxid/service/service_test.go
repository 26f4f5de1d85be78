package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fisco/internal/codicefiscale"
	"fisco/internal/comuni"
	"fisco/internal/sentinel"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

// ServiceSuite tests the service facade over the codec, the partita IVA
// validator, and the municipality directory. Metrics stay nil: the increment
// helpers must tolerate running without a registry.
type ServiceSuite struct {
	suite.Suite
	ctx context.Context
	svc *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupSuite() {
	s.ctx = context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.svc = New(comuni.New(), logger,
		WithCodecOptions(codicefiscale.WithClock(func() time.Time { return testNow })),
	)
}

func (s *ServiceSuite) TestValidateCodiceFiscale() {
	s.Run("valid", func() {
		res := s.svc.ValidateCodiceFiscale(s.ctx, "RSSMRA85M01H501Q", codicefiscale.ValidateOptions{})
		s.True(res.Valid)
		s.Equal("ROMA", res.BirthPlaceName)
	})

	s.Run("invalid without metrics does not panic", func() {
		res := s.svc.ValidateCodiceFiscale(s.ctx, "garbage", codicefiscale.ValidateOptions{})
		s.False(res.Valid)
		s.Equal(codicefiscale.KindInvalidFormat, res.ErrorKind)
	})

	s.Run("options are forwarded to the codec", func() {
		res := s.svc.ValidateCodiceFiscale(s.ctx, "RSSMRA85M01H501Q", codicefiscale.ValidateOptions{
			RequireMinimumAge: true,
			MinimumAge:        50,
		})
		s.False(res.Valid)
		s.Equal(codicefiscale.KindUnderage, res.ErrorKind)
	})
}

func (s *ServiceSuite) TestGenerateCodiceFiscale() {
	res := s.svc.GenerateCodiceFiscale(s.ctx, codicefiscale.PersonalRecord{
		Surname:        "Rossi",
		GivenName:      "Mario",
		Birthdate:      time.Date(1985, time.August, 1, 0, 0, 0, 0, time.UTC),
		Sex:            codicefiscale.SexMale,
		BirthPlaceCode: "H501",
	})
	s.True(res.Valid)
	s.Equal("RSSMRA85M01H501Q", res.CodiceFiscale)
}

func (s *ServiceSuite) TestValidatePartitaIVA() {
	s.Run("valid", func() {
		res := s.svc.ValidatePartitaIVA(s.ctx, "12345678903")
		s.True(res.Valid)
	})

	s.Run("invalid", func() {
		res := s.svc.ValidatePartitaIVA(s.ctx, "12345678901")
		s.False(res.Valid)
	})
}

func (s *ServiceSuite) TestMunicipalities() {
	s.Run("cadastral code by exact name", func() {
		code, err := s.svc.CadastralCode(s.ctx, "Roma")
		s.NoError(err)
		s.Equal("H501", code)
	})

	s.Run("unknown name", func() {
		_, err := s.svc.CadastralCode(s.ctx, "Atlantis")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("search", func() {
		results := s.svc.SearchMunicipalities(s.ctx, "milano")
		s.Require().NotEmpty(results)
		s.Equal("F205", results[0].Code)
	})
}

package handler

// Handler tests exercise the full stack below the router: real codec, real
// municipality directory, real service with a pinned clock and no metrics
// registry. The endpoints are pure computations, so there is nothing worth
// mocking.

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"fisco/internal/codicefiscale"
	"fisco/internal/comuni"
	"fisco/internal/taxid/service"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

type HandlerSuite struct {
	suite.Suite
	router chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(comuni.New(), logger,
		service.WithCodecOptions(codicefiscale.WithClock(func() time.Time { return testNow })),
	)
	s.router = chi.NewRouter()
	New(svc, logger).Register(s.router)
}

func (s *HandlerSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (s *HandlerSuite) TestValidateCodiceFiscale() {
	s.Run("valid code returns decoded fields", func() {
		w := s.postJSON("/v1/codice-fiscale/validate", ValidateCodiceFiscaleRequest{Value: "RSSMRA85M01H501Q"})
		s.Equal(http.StatusOK, w.Code)

		var res ValidateCodiceFiscaleResponse
		s.decode(w, &res)
		s.True(res.Valid)
		s.Equal("1985-08-01", res.Birthdate)
		s.Equal(40, res.Age)
		s.Equal("M", res.Sex)
		s.Equal("ROMA", res.BirthPlaceName)
	})

	s.Run("invalid code is a 200 with the error kind", func() {
		w := s.postJSON("/v1/codice-fiscale/validate", ValidateCodiceFiscaleRequest{Value: "RSSMRA85M01H501A"})
		s.Equal(http.StatusOK, w.Code)

		var res ValidateCodiceFiscaleResponse
		s.decode(w, &res)
		s.False(res.Valid)
		s.Equal("invalid-format", res.ErrorKind)
	})

	s.Run("newborn serializes age zero", func() {
		w := s.postJSON("/v1/codice-fiscale/validate", ValidateCodiceFiscaleRequest{Value: "RSSMRA25M01H501C"})
		s.Equal(http.StatusOK, w.Code)

		var res ValidateCodiceFiscaleResponse
		s.decode(w, &res)
		s.True(res.Valid)
		s.Equal(0, res.Age)
		s.Contains(w.Body.String(), `"age":0`)
	})

	s.Run("minimum age check", func() {
		w := s.postJSON("/v1/codice-fiscale/validate", ValidateCodiceFiscaleRequest{
			Value:      "RSSMRA20M01H501X",
			CheckAdult: true,
		})
		s.Equal(http.StatusOK, w.Code)

		var res ValidateCodiceFiscaleResponse
		s.decode(w, &res)
		s.False(res.Valid)
		s.Equal("underage", res.ErrorKind)
		s.Equal(5, res.Age)
	})

	s.Run("missing value is a 400", func() {
		w := s.postJSON("/v1/codice-fiscale/validate", map[string]any{})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("malformed body is a 400", func() {
		req := httptest.NewRequest(http.MethodPost, "/v1/codice-fiscale/validate", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlerSuite) TestGenerateCodiceFiscale() {
	s.Run("with cadastral code", func() {
		w := s.postJSON("/v1/codice-fiscale/generate", GenerateCodiceFiscaleRequest{
			Surname:        "Rossi",
			GivenName:      "Mario",
			Birthdate:      "1985-08-01",
			Sex:            "M",
			BirthPlaceCode: "H501",
		})
		s.Equal(http.StatusOK, w.Code)

		var res GenerateCodiceFiscaleResponse
		s.decode(w, &res)
		s.True(res.Valid)
		s.Equal("RSSMRA85M01H501Q", res.CodiceFiscale)
	})

	s.Run("with municipality name", func() {
		w := s.postJSON("/v1/codice-fiscale/generate", GenerateCodiceFiscaleRequest{
			Surname:    "Rossi",
			GivenName:  "Mario",
			Birthdate:  "1985-08-01",
			Sex:        "m",
			BirthPlace: "Roma",
		})
		s.Equal(http.StatusOK, w.Code)

		var res GenerateCodiceFiscaleResponse
		s.decode(w, &res)
		s.True(res.Valid)
		s.Equal("RSSMRA85M01H501Q", res.CodiceFiscale)
	})

	s.Run("unknown municipality suggests close matches", func() {
		w := s.postJSON("/v1/codice-fiscale/generate", GenerateCodiceFiscaleRequest{
			Surname:    "Rossi",
			GivenName:  "Mario",
			Birthdate:  "1985-08-01",
			Sex:        "M",
			BirthPlace: "Mila",
		})
		s.Equal(http.StatusOK, w.Code)

		var res GenerateCodiceFiscaleResponse
		s.decode(w, &res)
		s.False(res.Valid)
		s.Equal("invalid-birth-place-code", res.ErrorKind)
		s.Contains(res.Suggestions, "MILANO")
	})

	s.Run("domain field error is a 200 result", func() {
		w := s.postJSON("/v1/codice-fiscale/generate", GenerateCodiceFiscaleRequest{
			Surname:        "Rossi",
			GivenName:      "Mario",
			Birthdate:      "1985-08-01",
			Sex:            "X",
			BirthPlaceCode: "H501",
		})
		s.Equal(http.StatusOK, w.Code)

		var res GenerateCodiceFiscaleResponse
		s.decode(w, &res)
		s.False(res.Valid)
		s.Equal("invalid-gender", res.ErrorKind)
	})

	s.Run("bad birthdate format is a 400", func() {
		w := s.postJSON("/v1/codice-fiscale/generate", GenerateCodiceFiscaleRequest{
			Surname:        "Rossi",
			GivenName:      "Mario",
			Birthdate:      "01/08/1985",
			Sex:            "M",
			BirthPlaceCode: "H501",
		})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing birth place entirely is a 400", func() {
		w := s.postJSON("/v1/codice-fiscale/generate", GenerateCodiceFiscaleRequest{
			Surname:   "Rossi",
			GivenName: "Mario",
			Birthdate: "1985-08-01",
			Sex:       "M",
		})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlerSuite) TestValidatePartitaIVA() {
	s.Run("valid number", func() {
		w := s.postJSON("/v1/partita-iva/validate", ValidatePartitaIVARequest{Value: "12345678903"})
		s.Equal(http.StatusOK, w.Code)

		var res ValidatePartitaIVAResponse
		s.decode(w, &res)
		s.True(res.Valid)
		s.Equal("890", res.OfficeCode)
	})

	s.Run("invalid check digit is a 200 result", func() {
		w := s.postJSON("/v1/partita-iva/validate", ValidatePartitaIVARequest{Value: "12345678901"})
		s.Equal(http.StatusOK, w.Code)

		var res ValidatePartitaIVAResponse
		s.decode(w, &res)
		s.False(res.Valid)
		s.Equal("invalid-check-digit", res.ErrorKind)
	})

	s.Run("missing value is a 400", func() {
		w := s.postJSON("/v1/partita-iva/validate", map[string]any{})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlerSuite) TestSearchMunicipalities() {
	s.Run("matches sorted by name", func() {
		w := s.get("/v1/municipalities?q=roma")
		s.Equal(http.StatusOK, w.Code)

		var res SearchMunicipalitiesResponse
		s.decode(w, &res)
		s.NotEmpty(res.Municipalities)
		s.Equal("ROMA", res.Municipalities[0].Name)
	})

	s.Run("limit truncates results", func() {
		w := s.get("/v1/municipalities?q=san&limit=2")
		s.Equal(http.StatusOK, w.Code)

		var res SearchMunicipalitiesResponse
		s.decode(w, &res)
		s.LessOrEqual(len(res.Municipalities), 2)
	})

	s.Run("no match is an empty list", func() {
		w := s.get("/v1/municipalities?q=atlantis")
		s.Equal(http.StatusOK, w.Code)

		var res SearchMunicipalitiesResponse
		s.decode(w, &res)
		s.Empty(res.Municipalities)
	})

	s.Run("missing query is a 400", func() {
		w := s.get("/v1/municipalities")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("bad limit is a 400", func() {
		w := s.get("/v1/municipalities?q=roma&limit=zero")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"fisco/internal/codicefiscale"
	"fisco/internal/comuni"
	"fisco/internal/partitaiva"
	"fisco/internal/platform/middleware"
	dErrors "fisco/pkg/domain-errors"
	"fisco/pkg/platform/httputil"
)

// defaultSearchLimit caps municipality search responses unless the caller
// asks for fewer.
const defaultSearchLimit = 20

// Service defines the interface for tax identifier operations.
type Service interface {
	ValidateCodiceFiscale(ctx context.Context, value string, opts codicefiscale.ValidateOptions) codicefiscale.ValidationResult
	GenerateCodiceFiscale(ctx context.Context, record codicefiscale.PersonalRecord) codicefiscale.GenerationResult
	ValidatePartitaIVA(ctx context.Context, value string) partitaiva.ValidationResult
	CadastralCode(ctx context.Context, name string) (string, error)
	SearchMunicipalities(ctx context.Context, partialName string) []comuni.Municipality
}

// Handler handles tax identifier endpoints. Domain outcomes (an invalid
// code, an underage subject) are 200 responses carrying the result record;
// only transport failures map to 4xx.
type Handler struct {
	logger *slog.Logger
	taxid  Service
}

// New creates a new tax identifier Handler.
func New(taxid Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		taxid:  taxid,
	}
}

// Register registers the tax identifier routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/codice-fiscale/validate", h.handleValidateCodiceFiscale)
	r.Post("/v1/codice-fiscale/generate", h.handleGenerateCodiceFiscale)
	r.Post("/v1/partita-iva/validate", h.handleValidatePartitaIVA)
	r.Get("/v1/municipalities", h.handleSearchMunicipalities)
}

func (h *Handler) handleValidateCodiceFiscale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateCodiceFiscaleRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	res := h.taxid.ValidateCodiceFiscale(ctx, req.Value, req.ToOptions())
	httputil.WriteJSON(w, http.StatusOK, toValidateCFResponse(res))
}

func (h *Handler) handleGenerateCodiceFiscale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[GenerateCodiceFiscaleRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	placeCode := req.BirthPlaceCode
	if placeCode == "" {
		code, err := h.taxid.CadastralCode(ctx, req.BirthPlace)
		if err != nil {
			// An unknown municipality name is a domain outcome; help the
			// caller with close matches from the directory.
			h.logger.DebugContext(ctx, "municipality name not resolved",
				"request_id", requestID,
				"birth_place", req.BirthPlace,
			)
			httputil.WriteJSON(w, http.StatusOK, &GenerateCodiceFiscaleResponse{
				Valid:       false,
				ErrorKind:   string(codicefiscale.KindInvalidBirthPlaceCode),
				ErrorDetail: "unknown municipality: " + req.BirthPlace,
				Suggestions: suggestionsFor(h.taxid.SearchMunicipalities(ctx, req.BirthPlace)),
			})
			return
		}
		placeCode = code
	}

	res := h.taxid.GenerateCodiceFiscale(ctx, req.ToRecord(placeCode))
	httputil.WriteJSON(w, http.StatusOK, toGenerateCFResponse(res))
}

func (h *Handler) handleValidatePartitaIVA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidatePartitaIVARequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	res := h.taxid.ValidatePartitaIVA(ctx, req.Value)
	httputil.WriteJSON(w, http.StatusOK, toValidatePIVAResponse(res))
}

func (h *Handler) handleSearchMunicipalities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "query parameter q is required"))
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.logger.WarnContext(ctx, "invalid limit parameter",
				"request_id", requestID,
				"limit", raw,
			)
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	results := h.taxid.SearchMunicipalities(ctx, query)
	if len(results) > limit {
		results = results[:limit]
	}
	httputil.WriteJSON(w, http.StatusOK, toSearchResponse(results))
}

func suggestionsFor(results []comuni.Municipality) []string {
	if len(results) > defaultSearchLimit {
		results = results[:defaultSearchLimit]
	}
	names := make([]string, 0, len(results))
	for _, m := range results {
		names = append(names, m.Name)
	}
	return names
}

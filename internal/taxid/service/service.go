// Package service orchestrates the tax identifier components behind one API
// used by both the HTTP handlers and the CLI. Every operation is a stateless
// pure computation; the service adds logging, metrics, and tracing around it.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"fisco/internal/codicefiscale"
	"fisco/internal/comuni"
	"fisco/internal/partitaiva"
	taxidmetrics "fisco/internal/taxid/metrics"
)

// Service exposes codice fiscale and partita IVA operations.
type Service struct {
	codec   *codicefiscale.Codec
	places  *comuni.Directory
	logger  *slog.Logger
	metrics *taxidmetrics.Metrics
	tracer  trace.Tracer
}

type serviceConfig struct {
	metrics *taxidmetrics.Metrics
	opts    []codicefiscale.Option
}

// Option configures the service.
type Option func(*serviceConfig)

// WithMetrics attaches Prometheus metrics. Absent metrics are a no-op so
// tests and the CLI can run without a registry.
func WithMetrics(m *taxidmetrics.Metrics) Option {
	return func(cfg *serviceConfig) {
		cfg.metrics = m
	}
}

// WithCodecOptions forwards options (e.g. a pinned clock) to the codec.
func WithCodecOptions(opts ...codicefiscale.Option) Option {
	return func(cfg *serviceConfig) {
		cfg.opts = append(cfg.opts, opts...)
	}
}

// New wires a Service over the municipality directory.
func New(places *comuni.Directory, logger *slog.Logger, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Service{
		codec:   codicefiscale.New(places, cfg.opts...),
		places:  places,
		logger:  logger,
		metrics: cfg.metrics,
		tracer:  otel.Tracer("fisco/taxid"),
	}
}

// ValidateCodiceFiscale validates a codice fiscale and decodes its fields.
func (s *Service) ValidateCodiceFiscale(ctx context.Context, value string, opts codicefiscale.ValidateOptions) codicefiscale.ValidationResult {
	ctx, span := s.tracer.Start(ctx, "taxid.validate_cf")
	defer span.End()
	defer s.observeLatency("validate_cf", time.Now())

	res := s.codec.Validate(value, opts)
	span.SetAttributes(
		attribute.Bool("taxid.valid", res.Valid),
		attribute.String("taxid.error_kind", string(res.ErrorKind)),
	)
	s.incCFValidation(res.Valid, string(res.ErrorKind))

	s.logger.DebugContext(ctx, "codice fiscale validated",
		"valid", res.Valid,
		"error_kind", res.ErrorKind,
	)
	return res
}

// GenerateCodiceFiscale encodes a personal record into a codice fiscale.
func (s *Service) GenerateCodiceFiscale(ctx context.Context, record codicefiscale.PersonalRecord) codicefiscale.GenerationResult {
	ctx, span := s.tracer.Start(ctx, "taxid.generate_cf")
	defer span.End()
	defer s.observeLatency("generate_cf", time.Now())

	res := s.codec.Generate(record)
	span.SetAttributes(
		attribute.Bool("taxid.valid", res.Valid),
		attribute.String("taxid.error_kind", string(res.ErrorKind)),
	)
	s.incCFGeneration(res.Valid, string(res.ErrorKind))

	s.logger.DebugContext(ctx, "codice fiscale generated",
		"valid", res.Valid,
		"error_kind", res.ErrorKind,
	)
	return res
}

// ValidatePartitaIVA validates a partita IVA.
func (s *Service) ValidatePartitaIVA(ctx context.Context, value string) partitaiva.ValidationResult {
	ctx, span := s.tracer.Start(ctx, "taxid.validate_piva")
	defer span.End()
	defer s.observeLatency("validate_piva", time.Now())

	res := partitaiva.Validate(value)
	span.SetAttributes(
		attribute.Bool("taxid.valid", res.Valid),
		attribute.String("taxid.error_kind", string(res.ErrorKind)),
	)
	s.incPIVAValidation(res.Valid, string(res.ErrorKind))

	s.logger.DebugContext(ctx, "partita iva validated",
		"valid", res.Valid,
		"error_kind", res.ErrorKind,
	)
	return res
}

// CadastralCode resolves an exact municipality name to its cadastral code.
func (s *Service) CadastralCode(ctx context.Context, name string) (string, error) {
	_, span := s.tracer.Start(ctx, "taxid.cadastral_code")
	defer span.End()
	return s.places.ReverseLookup(name)
}

// SearchMunicipalities returns directory entries matching a partial name,
// sorted by name.
func (s *Service) SearchMunicipalities(ctx context.Context, partialName string) []comuni.Municipality {
	_, span := s.tracer.Start(ctx, "taxid.search_municipalities")
	defer span.End()

	results := s.places.Search(partialName)
	span.SetAttributes(attribute.Int("taxid.results", len(results)))
	return results
}

func outcome(valid bool, errorKind string) string {
	if valid {
		return taxidmetrics.OutcomeValid
	}
	return errorKind
}

func (s *Service) incCFValidation(valid bool, errorKind string) {
	if s.metrics != nil {
		s.metrics.CFValidations.WithLabelValues(outcome(valid, errorKind)).Inc()
	}
}

func (s *Service) incCFGeneration(valid bool, errorKind string) {
	if s.metrics != nil {
		s.metrics.CFGenerations.WithLabelValues(outcome(valid, errorKind)).Inc()
	}
}

func (s *Service) incPIVAValidation(valid bool, errorKind string) {
	if s.metrics != nil {
		s.metrics.PIVAValidations.WithLabelValues(outcome(valid, errorKind)).Inc()
	}
}

func (s *Service) observeLatency(operation string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RequestLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

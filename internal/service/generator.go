package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/pgen/pgen-go/internal/charset"
	"github.com/pgen/pgen-go/internal/form"
	"github.com/pgen/pgen-go/internal/generator"
	"github.com/pgen/pgen-go/internal/model"
)

var (
	ErrLengthNegative     = errors.New("length must not be negative")
	ErrLengthTooLong      = errors.New("length exceeds the maximum allowed")
	ErrNoCharacterClasses = errors.New("at least one character class must be selected")
	ErrStatsUnavailable   = errors.New("generation statistics are unavailable")
)

// EventRecorder stores generation events.
type EventRecorder interface {
	Record(ctx context.Context, event *model.GenerationEvent) error
}

// StatsReader reads aggregated generation events.
type StatsReader interface {
	Stats(ctx context.Context) (model.StatsResponse, error)
}

// Limits bounds the lengths the service accepts.
type Limits struct {
	DefaultLength int
	MaxLength     int
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	limits   Limits
	recorder EventRecorder
}

// NewGeneratorService creates a new GeneratorService. recorder may be nil.
func NewGeneratorService(rnd *rand.Rand, limits Limits, recorder EventRecorder) *GeneratorService {
	return &GeneratorService{
		rnd:      rnd,
		limits:   limits,
		recorder: recorder,
	}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	length := s.limits.DefaultLength
	if req.Length != nil {
		length = *req.Length
	}
	allowRepeats := boolOrDefault(req.AllowRepeats, true)

	selected := []*bool{req.Uppercase, req.Lowercase, req.Digits, req.Symbols}
	var classes []charset.Class
	for i, c := range charset.All {
		if boolOrDefault(selected[i], true) {
			classes = append(classes, c)
		}
	}

	event := &model.GenerationEvent{
		Classes:      strings.Join(charset.Names(classes), ","),
		Length:       length,
		AllowRepeats: allowRepeats,
	}

	if err := s.validate(length, classes); err != nil {
		event.Outcome = outcomeFor(err)
		s.record(ctx, event)
		return model.GenerateResponse{}, err
	}

	pool := charset.Pool(classes...)
	s.mu.Lock()
	password, err := generator.Generate(s.rnd, pool, length, allowRepeats)
	s.mu.Unlock()

	event.Outcome = outcomeFor(err)
	s.record(ctx, event)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len([]rune(password)),
		PoolSize: len(pool),
		Classes:  charset.Names(classes),
	}, nil
}

// GenerateForm runs the generate action of f against the shared source.
// It has the same no-op and error semantics as form.Form.Generate, plus
// the service length limit.
func (s *GeneratorService) GenerateForm(ctx context.Context, f *form.Form) (bool, error) {
	req, err := f.Request()
	event := &model.GenerationEvent{AllowRepeats: f.AllowRepeats}
	if err != nil {
		event.Outcome = outcomeFor(err)
		s.record(ctx, event)
		return false, err
	}
	event.Classes = strings.Join(charset.Names(req.Classes), ",")
	event.Length = req.Length

	if err := s.validate(req.Length, req.Classes); err != nil {
		event.Outcome = outcomeFor(err)
		s.record(ctx, event)
		if errors.Is(err, ErrNoCharacterClasses) {
			return false, nil
		}
		return false, err
	}

	s.mu.Lock()
	ok, err := f.Generate(s.rnd)
	s.mu.Unlock()

	event.Outcome = outcomeFor(err)
	s.record(ctx, event)
	return ok, err
}

// Stats returns aggregated generation events.
func (s *GeneratorService) Stats(ctx context.Context) (model.StatsResponse, error) {
	reader, ok := s.recorder.(StatsReader)
	if !ok {
		return model.StatsResponse{}, ErrStatsUnavailable
	}
	return reader.Stats(ctx)
}

func (s *GeneratorService) validate(length int, classes []charset.Class) error {
	if length < 0 {
		return ErrLengthNegative
	}
	if s.limits.MaxLength > 0 && length > s.limits.MaxLength {
		return ErrLengthTooLong
	}
	if len(classes) == 0 {
		return ErrNoCharacterClasses
	}
	return nil
}

func (s *GeneratorService) record(ctx context.Context, event *model.GenerationEvent) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, event); err != nil {
		slog.Warn("recording generation event failed", "outcome", event.Outcome, "error", err)
	}
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return model.OutcomeGenerated
	case errors.Is(err, ErrNoCharacterClasses):
		return model.OutcomeNoClasses
	case errors.Is(err, generator.ErrInsufficientPool):
		return model.OutcomeInsufficientPool
	default:
		return model.OutcomeInvalidLength
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

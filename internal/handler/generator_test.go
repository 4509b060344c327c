package handler

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pgen/pgen-go/internal/model"
	"github.com/pgen/pgen-go/internal/service"
)

type statsRecorder struct{ total int64 }

func (s *statsRecorder) Record(context.Context, *model.GenerationEvent) error {
	s.total++
	return nil
}

func (s *statsRecorder) Stats(context.Context) (model.StatsResponse, error) {
	return model.StatsResponse{
		Total:     s.total,
		ByOutcome: map[string]model.OutcomeStats{model.OutcomeGenerated: {Count: s.total, AverageLength: 20}},
	}, nil
}

func newTestService(recorder service.EventRecorder) *service.GeneratorService {
	return service.NewGeneratorService(
		rand.New(rand.NewPCG(1, 1)),
		service.Limits{DefaultLength: 20, MaxLength: 128},
		recorder,
	)
}

func postJSON(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleGenerate_OK(t *testing.T) {
	h := NewGeneratorHandler(newTestService(nil))
	rec := postJSON(h.HandleGenerate, `{"length":12,"symbols":false,"allow_repeats":false}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp model.GenerateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Length != 12 || len(resp.Password) != 12 {
		t.Errorf("expected 12 characters, got %q", resp.Password)
	}
	if resp.PoolSize != 62 {
		t.Errorf("expected pool size 62, got %d", resp.PoolSize)
	}
}

func TestHandleGenerate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"malformed json", `{"length":`, http.StatusBadRequest, "invalid request body"},
		{"negative length", `{"length":-3}`, http.StatusBadRequest, service.ErrLengthNegative.Error()},
		{"too long", `{"length":129}`, http.StatusBadRequest, service.ErrLengthTooLong.Error()},
		{
			"no classes",
			`{"uppercase":false,"lowercase":false,"digits":false,"symbols":false}`,
			http.StatusBadRequest,
			service.ErrNoCharacterClasses.Error(),
		},
		{
			"insufficient pool",
			`{"length":27,"lowercase":false,"digits":false,"symbols":false,"allow_repeats":false}`,
			http.StatusBadRequest,
			"not enough distinct characters",
		},
		{
			"body too large",
			`{"length":1,"pad":"` + strings.Repeat("x", 1<<20) + `"}`,
			http.StatusRequestEntityTooLarge,
			"request body too large",
		},
	}

	h := NewGeneratorHandler(newTestService(nil))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(h.HandleGenerate, tt.body)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if !strings.Contains(body["error"], tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, body["error"])
			}
		})
	}
}

func TestHandleStats(t *testing.T) {
	rec := httptest.NewRecorder()
	NewGeneratorHandler(newTestService(nil)).HandleStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without a stats reader, got %d", rec.Code)
	}

	h := NewGeneratorHandler(newTestService(&statsRecorder{}))
	postJSON(h.HandleGenerate, `{}`)

	rec = httptest.NewRecorder()
	h.HandleStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var stats model.StatsResponse
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if stats.Total != 1 {
		t.Errorf("expected total 1, got %d", stats.Total)
	}
}

package evaluator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/llm"
)

func newEvaluatorAgainst(t *testing.T, handler http.HandlerFunc) Evaluator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.APIKey = "sk-test"
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	cfg.Tasks[llm.TaskImpact] = llm.TaskConfig{TimeoutMs: 1000}

	return NewImpactEvaluator(llm.NewChatClient(cfg, llm.NoopObserver{}))
}

func chatWith(content string) string {
	body := map[string]any{
		"model": "test-model",
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func TestEvaluate_ParsesStructuredVerdict(t *testing.T) {
	ev := newEvaluatorAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatWith(`{"impactLevel":"HIGH","recommendedXP":120,"impactScore":80,"shortReasoning":"Cierra el trimestre."}`)))
	})

	a := ev.Evaluate(context.Background(), TaskContext{Title: "Cierre contable"})
	assert.Equal(t, domain.ImpactHigh, a.Level)
	assert.Equal(t, 120, a.XP)
	assert.Equal(t, 80, a.Score)
	assert.Equal(t, "Cierra el trimestre.", a.Reasoning)
}

func TestEvaluate_StripsCodeFence(t *testing.T) {
	ev := newEvaluatorAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatWith("```json\n{\"impactLevel\":\"LOW\",\"recommendedXP\":5,\"impactScore\":10,\"shortReasoning\":\"Rutina.\"}\n```")))
	})

	a := ev.Evaluate(context.Background(), TaskContext{Title: "Limpieza"})
	assert.Equal(t, domain.ImpactLow, a.Level)
	assert.Equal(t, 5, a.XP)
}

func TestEvaluate_GarbageBodyFallsBack(t *testing.T) {
	ev := newEvaluatorAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatWith("I cannot help with that.")))
	})

	a := ev.Evaluate(context.Background(), TaskContext{Title: "Tarea"})
	assert.Equal(t, DefaultAssessment(), a)
}

func TestEvaluate_ServerErrorFallsBack(t *testing.T) {
	ev := newEvaluatorAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	a := ev.Evaluate(context.Background(), TaskContext{Title: "Tarea"})
	assert.Equal(t, DefaultAssessment(), a)
}

func TestEvaluate_TimeoutFallsBack(t *testing.T) {
	ev := newEvaluatorAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(10 * time.Second):
		case <-r.Context().Done():
		}
	})

	start := time.Now()
	a := ev.Evaluate(context.Background(), TaskContext{Title: "Tarea"})
	assert.Equal(t, DefaultAssessment(), a)
	assert.Less(t, time.Since(start), 5*time.Second, "timeout must be bounded")
}

func TestEvaluate_NoCredentialUsesDefaultWithoutCalling(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL // credential intentionally left empty

	ev := NewImpactEvaluator(llm.NewChatClient(cfg, llm.NoopObserver{}))
	a := ev.Evaluate(context.Background(), TaskContext{Title: "Tarea"})

	assert.Equal(t, DefaultAssessment(), a)
	assert.False(t, called, "no request may leave the process without a credential")
}

func TestEvaluate_OutOfRangeValuesBounded(t *testing.T) {
	ev := newEvaluatorAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatWith(`{"impactLevel":"MEGA","recommendedXP":999999,"impactScore":1000,"shortReasoning":"!"}`)))
	})

	a := ev.Evaluate(context.Background(), TaskContext{Title: "Tarea"})
	assert.Equal(t, domain.ImpactMedium, a.Level)
	assert.Equal(t, MaxRecommendedXP, a.XP)
	assert.Equal(t, MaxImpactScore, a.Score)
}

package evaluator

import (
	"context"

	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/llm"
)

// Bounds for the assessment fields. Whatever the scorer answers is
// clamped into these before it reaches a caller.
const (
	MaxImpactScore  = 100
	MaxRecommendedXP = 9999
	maxReasoningLen = 280
)

// TaskContext carries the task fields the scorer sees.
type TaskContext struct {
	Title         string
	Description   string
	Category      string
	Difficulty    int // 1..5
	EconomicValue *float64
	ResultNote    string
}

// Assessment is the scorer's bounded verdict on a completed task.
// Every field is always within its documented range.
type Assessment struct {
	Level     domain.ImpactLevel
	Score     int // 0..100
	XP        int // 0..9999
	Reasoning string
}

// Evaluator scores a completed task's impact. Evaluate never fails: a
// scoring outage must not block task completion, so every external
// failure mode collapses into the neutral default tuple.
type Evaluator interface {
	Evaluate(ctx context.Context, tc TaskContext) Assessment
}

type impactEvaluator struct {
	client llm.Client
}

// NewImpactEvaluator creates an Evaluator backed by the scoring client.
func NewImpactEvaluator(client llm.Client) Evaluator {
	return &impactEvaluator{client: client}
}

// impactPayload mirrors the JSON contract with the scoring service.
// Numeric fields are pointers so an omitted field is distinguishable
// from an explicit zero and can be defaulted independently.
type impactPayload struct {
	ImpactLevel    string `json:"impactLevel"`
	RecommendedXP  *int   `json:"recommendedXP"`
	ImpactScore    *int   `json:"impactScore"`
	ShortReasoning string `json:"shortReasoning"`
}

func (e *impactEvaluator) Evaluate(ctx context.Context, tc TaskContext) Assessment {
	resp, err := e.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskImpact,
		UserPrompt: buildImpactPrompt(tc),
	})
	if err != nil {
		return DefaultAssessment()
	}

	payload, err := llm.ExtractJSON[impactPayload](resp.Text, nil)
	if err != nil {
		return DefaultAssessment()
	}

	return clampPayload(payload)
}

// clampPayload bounds every field independently; a malformed field
// falls back to its neutral default without discarding the rest.
func clampPayload(p impactPayload) Assessment {
	def := DefaultAssessment()

	a := Assessment{
		Level:     domain.ParseImpactLevel(p.ImpactLevel),
		Score:     def.Score,
		XP:        def.XP,
		Reasoning: p.ShortReasoning,
	}

	if p.ImpactScore != nil {
		a.Score = clampInt(*p.ImpactScore, 0, MaxImpactScore)
	}
	if p.RecommendedXP != nil {
		a.XP = clampInt(*p.RecommendedXP, 0, MaxRecommendedXP)
	}
	if a.Reasoning == "" {
		a.Reasoning = def.Reasoning
	}
	if len(a.Reasoning) > maxReasoningLen {
		a.Reasoning = a.Reasoning[:maxReasoningLen]
	}

	return a
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

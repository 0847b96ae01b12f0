package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of scoring task being performed.
type TaskType string

const (
	TaskImpact TaskType = "impact"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the scoring client. An empty
// APIKey disables external calls entirely; callers fall back to their
// deterministic defaults.
type Config struct {
	APIKey     string
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. No API key is
// set, so the external scorer is disabled by default.
func DefaultConfig() Config {
	return Config{
		APIKey:     "",
		LogCalls:   false,
		Endpoint:   "https://api.openai.com/v1",
		Model:      "gpt-4o-mini",
		TimeoutMs:  5000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskImpact: {Temperature: 0.2, MaxTokens: 512, TimeoutMs: 5000},
		},
	}
}

// LoadConfig reads scoring-client configuration from environment
// variables, falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BITACORA_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("BITACORA_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BITACORA_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BITACORA_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BITACORA_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("BITACORA_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskImpact, "BITACORA_LLM_IMPACT_TIMEOUT_MS")

	return cfg
}

// Enabled reports whether a credential for the external scorer is
// configured.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}

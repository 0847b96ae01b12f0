package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled(), "no credential means the scorer is disabled")
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BITACORA_LLM_API_KEY", "sk-test")
	t.Setenv("BITACORA_LLM_ENDPOINT", "http://localhost:9999/v1")
	t.Setenv("BITACORA_LLM_MODEL", "test-model")
	t.Setenv("BITACORA_LLM_TIMEOUT_MS", "2500")
	t.Setenv("BITACORA_LLM_MAX_RETRIES", "2")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled())
	assert.Equal(t, "http://localhost:9999/v1", cfg.Endpoint)
	assert.Equal(t, "test-model", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 2, cfg.MaxRetries)
}

func TestLoadConfig_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("BITACORA_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("BITACORA_LLM_MAX_RETRIES", "-3")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
}

func TestTaskTimeout_TaskOverridesGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 9000
	cfg.Tasks[TaskImpact] = TaskConfig{TimeoutMs: 1234}
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskImpact))

	cfg.Tasks[TaskImpact] = TaskConfig{}
	assert.Equal(t, 9000, cfg.TaskTimeout(TaskImpact))
}

func TestLoadConfig_TaskTimeoutEnv(t *testing.T) {
	t.Setenv("BITACORA_LLM_IMPACT_TIMEOUT_MS", "750")

	cfg := LoadConfig()
	assert.Equal(t, 750, cfg.TaskTimeout(TaskImpact))
}

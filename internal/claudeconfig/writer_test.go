package claudeconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSettings(t *testing.T, m *Manager) map[string]any {
	t.Helper()

	data, err := os.ReadFile(m.SettingsFile())
	require.NoError(t, err)

	var settings map[string]any
	require.NoError(t, json.Unmarshal(data, &settings))

	return settings
}

func TestApplyCredentials(t *testing.T) {
	m := newTestManager(t)

	err := m.ApplyCredentials("sk-token", "https://api.anthropic.com", false)
	require.NoError(t, err)

	settings := readSettings(t, m)
	env := settings["env"].(map[string]any)
	assert.Equal(t, "sk-token", env["ANTHROPIC_API_KEY"])
	assert.Equal(t, "sk-token", env["ANTHROPIC_AUTH_TOKEN"])
	assert.Equal(t, "https://api.anthropic.com", env["ANTHROPIC_BASE_URL"])
	assert.NotContains(t, env, "IS_SANDBOX")
}

func TestApplyCredentials_Sandbox(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.ApplyCredentials("sk-token", "https://sandbox.example.com", true))

	env := readSettings(t, m)["env"].(map[string]any)
	assert.Equal(t, "1", env["IS_SANDBOX"])
}

func TestApplyCredentials_Idempotent(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.ApplyCredentials("sk-token", "https://api.anthropic.com", true))
	first := readSettings(t, m)

	require.NoError(t, m.ApplyCredentials("sk-token", "https://api.anthropic.com", true))
	second := readSettings(t, m)

	assert.Equal(t, first, second)
}

func TestApplyCredentials_PreservesSiblings(t *testing.T) {
	m := newTestManager(t)
	writeTestFile(t, m.SettingsFile(), `{
  "permissions": {"allow": ["Bash(go test:*)"]},
  "model": "opus",
  "env": {"ANTHROPIC_API_KEY": "sk-old", "CUSTOM_FLAG": "yes"}
}`)

	require.NoError(t, m.ApplyCredentials("sk-new", "https://api.anthropic.com", false))

	settings := readSettings(t, m)
	assert.Equal(t, "opus", settings["model"])
	assert.Contains(t, settings, "permissions")

	// the env block is replaced wholesale, not merged
	env := settings["env"].(map[string]any)
	assert.Equal(t, "sk-new", env["ANTHROPIC_API_KEY"])
	assert.NotContains(t, env, "CUSTOM_FLAG")
}

func TestApplyCredentials_NormalizesNonObjectPrimary(t *testing.T) {
	m := newTestManager(t)
	writeTestFile(t, m.SettingsFile(), `[1, 2, 3]`)

	require.NoError(t, m.ApplyCredentials("sk-token", "https://api.anthropic.com", false))

	settings := readSettings(t, m)
	require.Contains(t, settings, "env")
	assert.Len(t, settings, 1)
}

func TestApplyCredentials_CorruptPrimaryFails(t *testing.T) {
	m := newTestManager(t)
	writeTestFile(t, m.SettingsFile(), `not json at all`)

	err := m.ApplyCredentials("sk-token", "https://api.anthropic.com", false)
	require.Error(t, err)

	// the corrupt file must not be overwritten
	data, readErr := os.ReadFile(m.SettingsFile())
	require.NoError(t, readErr)
	assert.Equal(t, "not json at all", string(data))
}

func TestApplyCredentials_ProvisionsTemplate(t *testing.T) {
	m := newTestManager(t)
	writeTestFile(t, m.TemplateFile(), "user edits that will be lost")

	require.NoError(t, m.ApplyCredentials("sk-token", "https://api.anthropic.com", false))

	data, err := os.ReadFile(m.TemplateFile())
	require.NoError(t, err)
	assert.Equal(t, TemplatePayload(), data)
}

func TestApplyCredentials_PicksUpClaudeMDFallback(t *testing.T) {
	m := newTestManager(t)
	writeTestFile(t, filepath.Join(m.Root(), "CLAUDE.md"), "ANTHROPIC_API_KEY=sk-md\n")

	require.NoError(t, m.ApplyCredentials("sk-new", "https://api.anthropic.com", false))

	// credentials land in the primary file; the fallback source is untouched
	env := readSettings(t, m)["env"].(map[string]any)
	assert.Equal(t, "sk-new", env["ANTHROPIC_API_KEY"])

	md, err := os.ReadFile(filepath.Join(m.Root(), "CLAUDE.md"))
	require.NoError(t, err)
	assert.Equal(t, "ANTHROPIC_API_KEY=sk-md\n", string(md))
}

func TestClearCredentials(t *testing.T) {
	m := newTestManager(t)
	writeTestFile(t, m.SettingsFile(), `{
  "model": "opus",
  "env": {
    "ANTHROPIC_API_KEY": "sk-token",
    "ANTHROPIC_AUTH_TOKEN": "sk-token",
    "ANTHROPIC_BASE_URL": "https://api.anthropic.com",
    "IS_SANDBOX": "1"
  }
}`)

	require.NoError(t, m.ClearCredentials())

	settings := readSettings(t, m)
	assert.Equal(t, "opus", settings["model"])

	env := settings["env"].(map[string]any)
	assert.NotContains(t, env, "ANTHROPIC_API_KEY")
	assert.NotContains(t, env, "ANTHROPIC_AUTH_TOKEN")
	assert.NotContains(t, env, "ANTHROPIC_BASE_URL")
	// non-credential entries survive
	assert.Equal(t, "1", env["IS_SANDBOX"])
}

func TestClearCredentials_DropsEmptyEnv(t *testing.T) {
	m := newTestManager(t)
	writeTestFile(t, m.SettingsFile(), `{"env": {"ANTHROPIC_API_KEY": "sk-token"}}`)

	require.NoError(t, m.ClearCredentials())

	assert.NotContains(t, readSettings(t, m), "env")
}

func TestClearCredentials_WritesEvenWhenNothingToClear(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.ClearCredentials())

	// an empty document gets materialized as the primary file
	assert.Equal(t, map[string]any{}, readSettings(t, m))
}

func TestClearCredentials_LeavesTemplateAlone(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.ApplyCredentials("sk-token", "https://api.anthropic.com", false))

	require.NoError(t, os.WriteFile(m.TemplateFile(), []byte("edited"), 0o644))
	require.NoError(t, m.ClearCredentials())

	data, err := os.ReadFile(m.TemplateFile())
	require.NoError(t, err)
	assert.Equal(t, "edited", string(data))
}

func TestCredentials(t *testing.T) {
	m := newTestManager(t)

	t.Run("empty project", func(t *testing.T) {
		creds, err := m.Credentials()
		require.NoError(t, err)
		assert.Empty(t, creds)
	})

	t.Run("after apply", func(t *testing.T) {
		require.NoError(t, m.ApplyCredentials("sk-token", "https://api.anthropic.com", true))

		creds, err := m.Credentials()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"ANTHROPIC_API_KEY":    "sk-token",
			"ANTHROPIC_AUTH_TOKEN": "sk-token",
			"ANTHROPIC_BASE_URL":   "https://api.anthropic.com",
			"IS_SANDBOX":           "1",
		}, creds)
	})
}

func TestCredentials_DropsNonStringValues(t *testing.T) {
	m := newTestManager(t)
	writeTestFile(t, m.SettingsFile(), `{"env": {"ANTHROPIC_API_KEY": "sk-token", "RETRIES": 3}}`)

	creds, err := m.Credentials()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ANTHROPIC_API_KEY": "sk-token"}, creds)
}

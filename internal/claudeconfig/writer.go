package claudeconfig

import (
	"encoding/json"
	"fmt"
	"os"
)

// Keys written into (and cleared from) the env block of the settings file.
const (
	envKey       = "env"
	keyAPIKey    = "ANTHROPIC_API_KEY"
	keyAuthToken = "ANTHROPIC_AUTH_TOKEN"
	keyBaseURL   = "ANTHROPIC_BASE_URL"
	keySandbox   = "IS_SANDBOX"
)

// ApplyCredentials writes the given token and base URL into the project's
// primary settings file and provisions the CLAUDE.local.md template.
//
// The env block is replaced wholesale: API key and auth token are both set to
// token, and IS_SANDBOX="1" is added only when sandbox is true. All sibling
// top-level keys of the loaded document survive the write. A loaded document
// that is not a JSON object is discarded and replaced with an empty one.
//
// There is no rollback: when the template write fails, the settings file may
// already hold the new credentials even though an error is returned.
func (m *Manager) ApplyCredentials(token, baseURL string, sandbox bool) error {
	loaded, err := m.Load()
	if err != nil {
		return err
	}

	settings, ok := loaded.(map[string]any)
	if !ok {
		settings = make(map[string]any)
	}

	envConfig := map[string]any{
		keyAPIKey:    token,
		keyAuthToken: token,
		keyBaseURL:   baseURL,
	}
	if sandbox {
		envConfig[keySandbox] = "1"
	}
	settings[envKey] = envConfig

	if err = m.writeSettings(settings); err != nil {
		return err
	}

	if err = m.provisionTemplate(); err != nil {
		return err
	}

	m.logger.Info().
		Str("root", m.root).
		Str("base_url", baseURL).
		Bool("sandbox", sandbox).
		Msg("credentials applied to project settings")

	return nil
}

// ClearCredentials removes the three credential keys from the env block and
// writes the document back. Other env entries are left in place; when the env
// block ends up empty it is dropped entirely. The write happens even when
// nothing changed. The template file is never touched.
func (m *Manager) ClearCredentials() error {
	loaded, err := m.Load()
	if err != nil {
		return err
	}

	settings, ok := loaded.(map[string]any)
	if !ok {
		settings = make(map[string]any)
	}

	if env, exists := settings[envKey].(map[string]any); exists {
		delete(env, keyAPIKey)
		delete(env, keyAuthToken)
		delete(env, keyBaseURL)

		if len(env) == 0 {
			delete(settings, envKey)
		}
	}

	if err = m.writeSettings(settings); err != nil {
		return err
	}

	m.logger.Info().Str("root", m.root).Msg("credentials cleared from project settings")

	return nil
}

// Credentials returns the string-valued entries of the env block as a flat
// map. Non-string values are dropped; a missing env block yields an empty
// map.
func (m *Manager) Credentials() (map[string]string, error) {
	loaded, err := m.Load()
	if err != nil {
		return nil, err
	}

	creds := make(map[string]string)

	settings, ok := loaded.(map[string]any)
	if !ok {
		return creds, nil
	}
	env, ok := settings[envKey].(map[string]any)
	if !ok {
		return creds, nil
	}

	for key, value := range env {
		if s, isString := value.(string); isString {
			creds[key] = s
		}
	}

	return creds, nil
}

// writeSettings serializes the whole document pretty-printed and fully
// overwrites the primary settings file, creating the .claude directory first.
func (m *Manager) writeSettings(settings map[string]any) error {
	claudeDir := m.ClaudeDir()
	if err := os.MkdirAll(claudeDir, 0o755); err != nil {
		return fmt.Errorf("create claude dir %s: %w", claudeDir, err)
	}

	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	settingsFile := m.SettingsFile()
	if err = os.WriteFile(settingsFile, payload, 0o644); err != nil {
		return fmt.Errorf("write settings file %s: %w", settingsFile, err)
	}

	return nil
}

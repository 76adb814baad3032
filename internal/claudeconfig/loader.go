package claudeconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// envLineKeys are the credential keys recognized when scanning a CLAUDE.md
// fallback source line by line.
var envLineKeys = []string{
	"ANTHROPIC_API_KEY",
	"ANTHROPIC_BASE_URL",
	"CLAUDE_API_KEY",
}

// Load reads the current settings document for the project root.
//
// The primary settings file is authoritative: when it exists, its content is
// parsed as JSON and returned, and a parse failure is a hard error rather
// than a reason to fall through to the alternatives. When the primary file is
// absent, the alternative sources are tried in their declared order; JSON
// parse failures on alternatives are skipped silently. When nothing yields a
// result, an empty document is returned.
//
// The returned value is usually a map[string]any, but a primary file holding
// a valid non-object JSON value (array, scalar) is returned as-is. The write
// path is the one place where such documents are normalized to an empty map.
func (m *Manager) Load() (any, error) {
	settingsFile := m.SettingsFile()

	data, err := os.ReadFile(settingsFile)
	switch {
	case err == nil:
		var settings any
		if err = json.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("parse settings file %s: %w", settingsFile, err)
		}
		return settings, nil
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read settings file %s: %w", settingsFile, err)
	}

	for _, src := range m.alternativeSources() {
		data, err = os.ReadFile(src.path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read alternative settings source %s: %w", src.path, err)
		}

		if src.kind == sourceEnvLines {
			if doc := parseEnvLines(data); doc != nil {
				return doc, nil
			}
			continue
		}

		var settings any
		if err = json.Unmarshal(data, &settings); err != nil {
			m.logger.Debug().
				Str("path", src.path).
				Msg("skipping unparseable alternative settings source")
			continue
		}
		return settings, nil
	}

	return map[string]any{}, nil
}

// parseEnvLines extracts recognized KEY=value lines from a CLAUDE.md body.
// A line counts when its trimmed content starts with one of envLineKeys
// followed by "="; the value is the trimmed remainder after the first "=",
// and a later line with the same key overwrites an earlier one. Returns nil
// when no recognized line is present.
func parseEnvLines(data []byte) map[string]any {
	env := make(map[string]any)

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		for _, key := range envLineKeys {
			if strings.HasPrefix(trimmed, key+"=") {
				env[key] = strings.TrimSpace(trimmed[len(key)+1:])
				break
			}
		}
	}

	if len(env) == 0 {
		return nil
	}

	return map[string]any{envKey: env}
}

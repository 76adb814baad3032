package claudeconfig

import (
	_ "embed"
	"fmt"
	"os"
)

// templatePayload is the CLAUDE.local.md content shipped inside the binary.
// Embedding it avoids the install-layout path search an earlier variant of
// this tool performed.
//
//go:embed CLAUDE.local.md
var templatePayload []byte

// provisionTemplate writes the bundled template into the project root,
// unconditionally overwriting any existing CLAUDE.local.md there.
func (m *Manager) provisionTemplate() error {
	target := m.TemplateFile()
	if err := os.WriteFile(target, templatePayload, 0o644); err != nil {
		return fmt.Errorf("write template file %s: %w", target, err)
	}

	m.logger.Debug().Str("path", target).Msg("provisioned CLAUDE.local.md")

	return nil
}

// TemplatePayload exposes the embedded template content. Useful for
// verifying a provisioned file matches the bundled payload.
func TemplatePayload() []byte {
	out := make([]byte, len(templatePayload))
	copy(out, templatePayload)
	return out
}

package claudeconfig

import (
	"path/filepath"
	"strings"

	"github.com/MKhiriev/claude-switch/internal/logger"
)

// Manager reads and writes the Claude settings of one project directory.
// The zero value is not usable; construct via [NewManager].
type Manager struct {
	root   string
	logger *logger.Logger
}

// NewManager binds a Manager to the given project root directory.
// The root is not required to exist yet, but it must be non-empty.
func NewManager(root string, log *logger.Logger) (*Manager, error) {
	if strings.TrimSpace(root) == "" {
		return nil, ErrEmptyRoot
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Manager{root: root, logger: log}, nil
}

// Root returns the project directory the manager is bound to.
func (m *Manager) Root() string {
	return m.root
}

// ClaudeDir returns the per-project configuration subdirectory.
func (m *Manager) ClaudeDir() string {
	return filepath.Join(m.root, ".claude")
}

// SettingsFile returns the path of the primary settings file. The primary
// file is always consulted first and is the only file this package writes
// settings to.
func (m *Manager) SettingsFile() string {
	return filepath.Join(m.ClaudeDir(), "settings.local.json")
}

// TemplateFile returns the destination of the bundled CLAUDE.local.md
// template inside the project root.
func (m *Manager) TemplateFile() string {
	return filepath.Join(m.root, "CLAUDE.local.md")
}

type sourceKind int

const (
	// sourceJSON is a structured JSON settings file.
	sourceJSON sourceKind = iota
	// sourceEnvLines is a markdown file scanned for KEY=value lines.
	sourceEnvLines
)

type settingsSource struct {
	path string
	kind sourceKind
}

// alternativeSources lists the fallback settings locations consulted when the
// primary file is absent. The order is load-bearing: the loader stops at the
// first source that yields a result.
func (m *Manager) alternativeSources() []settingsSource {
	return []settingsSource{
		{path: filepath.Join(m.ClaudeDir(), "settings.json"), kind: sourceJSON},
		{path: filepath.Join(m.ClaudeDir(), "claude_config.json"), kind: sourceJSON},
		{path: filepath.Join(m.root, ".claude_config"), kind: sourceJSON},
		{path: filepath.Join(m.root, "CLAUDE.md"), kind: sourceEnvLines},
	}
}

package tui

import (
	"sort"

	"github.com/MKhiriev/claude-switch/models"
)

// detailModel shows the credentials currently written into one directory's
// settings file.
type detailModel struct {
	directory models.Directory
	creds     map[string]string
	status    string
}

// maskedKeys hold secret values and are rendered redacted.
var maskedKeys = map[string]bool{
	"ANTHROPIC_API_KEY":    true,
	"ANTHROPIC_AUTH_TOKEN": true,
}

func maskValue(v string) string {
	if len(v) <= 8 {
		return "********"
	}
	return v[:4] + "..." + v[len(v)-4:]
}

func (m detailModel) View() string {
	out := titleStyle.Render("Credentials: "+m.directory.Name) + "\n"
	out += helpStyle.Render(m.directory.Path) + "\n\n"

	if len(m.creds) == 0 {
		out += "No credentials in this directory.\n"
	} else {
		keys := make([]string, 0, len(m.creds))
		for k := range m.creds {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			v := m.creds[k]
			if maskedKeys[k] {
				v = maskValue(v)
			}
			out += "  " + k + " = " + v + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("c copy token  x clear  esc back")
	return out
}

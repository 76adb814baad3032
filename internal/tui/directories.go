package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/claude-switch/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

type directoriesModel struct {
	items   []models.Directory
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newDirectoriesModel() directoriesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return directoriesModel{spinner: s, loading: true}
}

func (m directoriesModel) current() (models.Directory, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Directory{}, false
	}
	return m.items[m.idx], true
}

func (m directoriesModel) View() string {
	out := titleStyle.Render("Directories") + "\n\n"

	if m.loading {
		out += m.spinner.View() + " Loading...\n"
	} else if len(m.items) == 0 {
		out += "No directories registered yet. Press n to add one.\n"
	} else {
		nameWidth := 0
		for _, d := range m.items {
			if w := lipgloss.Width(d.Name); w > nameWidth {
				nameWidth = w
			}
		}

		for i, d := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			marker := " "
			if d.IsActive {
				marker = "*"
			}
			padding := strings.Repeat(" ", nameWidth-lipgloss.Width(d.Name))
			line := fmt.Sprintf("%s%s %s%s  %s", cursor, marker, d.Name, padding, helpStyle.Render(d.Path))
			if i == m.idx {
				line = activeStyle.Render(line)
			}
			out += line + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter credentials  n new  e edit  d delete  x clear creds  esc back")
	return out
}

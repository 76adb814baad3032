package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/claude-switch/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

type accountsModel struct {
	items   []models.Account
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newAccountsModel() accountsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return accountsModel{spinner: s, loading: true}
}

func (m accountsModel) current() (models.Account, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Account{}, false
	}
	return m.items[m.idx], true
}

func (m accountsModel) View() string {
	out := titleStyle.Render("Accounts") + "\n\n"

	if m.loading {
		out += m.spinner.View() + " Loading...\n"
	} else if len(m.items) == 0 {
		out += "No accounts stored yet. Press n to add one.\n"
	} else {
		nameWidth := 0
		for _, a := range m.items {
			if w := lipgloss.Width(a.Name); w > nameWidth {
				nameWidth = w
			}
		}

		for i, a := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			marker := " "
			if a.IsActive {
				marker = "*"
			}
			padding := strings.Repeat(" ", nameWidth-lipgloss.Width(a.Name))
			// tokens are never rendered, only their destination
			out += fmt.Sprintf("%s%s %s%s  %s\n", cursor, marker, a.Name, padding, helpStyle.Render(a.BaseURL))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n new  e edit  d delete  c copy token  esc back")
	return out
}

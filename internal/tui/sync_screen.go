package tui

import "github.com/charmbracelet/bubbles/spinner"

type syncModel struct {
	spinner spinner.Model
	running bool
	action  string
	status  string
}

func newSyncModel() syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncModel{spinner: s}
}

func (m syncModel) View() string {
	out := titleStyle.Render("Sync") + "\n\n"
	out += "Replicates the registry database through WebDAV.\n"

	if m.running {
		out += "\n" + m.spinner.View() + " " + m.action + "...\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("p push  g pull  c check remote  esc back")
	return out
}

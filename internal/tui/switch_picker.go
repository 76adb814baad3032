package tui

import (
	"fmt"

	"github.com/MKhiriev/claude-switch/models"
)

type pickerStep int

const (
	pickDirectory pickerStep = iota
	pickAccount
)

// switchPickerModel drives the two-step switch flow: pick a directory, pick
// an account, then apply.
type switchPickerModel struct {
	step        pickerStep
	directories []models.Directory
	accounts    []models.Account
	dirIdx      int
	accIdx      int
	sandbox     bool
	applying    bool
}

func newSwitchPickerModel() switchPickerModel {
	return switchPickerModel{}
}

func (m switchPickerModel) currentDirectory() (models.Directory, bool) {
	if len(m.directories) == 0 || m.dirIdx < 0 || m.dirIdx >= len(m.directories) {
		return models.Directory{}, false
	}
	return m.directories[m.dirIdx], true
}

func (m switchPickerModel) currentAccount() (models.Account, bool) {
	if len(m.accounts) == 0 || m.accIdx < 0 || m.accIdx >= len(m.accounts) {
		return models.Account{}, false
	}
	return m.accounts[m.accIdx], true
}

func (m switchPickerModel) View() string {
	if m.step == pickDirectory {
		out := titleStyle.Render("Switch: pick a directory") + "\n\n"
		if len(m.directories) == 0 {
			out += "No directories registered.\n"
		}
		for i, d := range m.directories {
			cursor := "  "
			if i == m.dirIdx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %s\n", cursor, d.Name, helpStyle.Render(d.Path))
		}
		out += "\n" + helpStyle.Render("enter pick  esc back")
		return out
	}

	directory, _ := m.currentDirectory()
	out := titleStyle.Render("Switch: pick an account") + "\n\n"
	out += "Directory: " + directory.Path + "\n"
	sandboxState := "off"
	if m.sandbox {
		sandboxState = "on"
	}
	out += "Sandbox:   " + sandboxState + "\n\n"

	if len(m.accounts) == 0 {
		out += "No accounts stored.\n"
	}
	for i, a := range m.accounts {
		cursor := "  "
		if i == m.accIdx {
			cursor = "> "
		}
		out += fmt.Sprintf("%s%s  %s\n", cursor, a.Name, helpStyle.Render(a.BaseURL))
	}

	if m.applying {
		out += "\nApplying...\n"
	}

	out += "\n" + helpStyle.Render("enter apply  s toggle sandbox  esc back")
	return out
}

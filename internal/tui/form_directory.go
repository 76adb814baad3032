package tui

import (
	"github.com/MKhiriev/claude-switch/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formDirectoryModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	id         int64
	submitting bool
}

func newFormDirectoryModel(directory *models.Directory) formDirectoryModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Placeholder = "my-project"
	inputs[1].Placeholder = "/home/dev/my-project"
	inputs[0].Focus()

	m := formDirectoryModel{inputs: inputs}
	if directory == nil {
		return m
	}

	m.editing = true
	m.id = directory.ID
	m.inputs[0].SetValue(directory.Name)
	m.inputs[1].SetValue(directory.Path)
	return m
}

func (m formDirectoryModel) name() string { return m.inputs[0].Value() }
func (m formDirectoryModel) path() string { return m.inputs[1].Value() }

func (m formDirectoryModel) View() string {
	title := "New directory"
	if m.editing {
		title = "Edit directory: " + m.inputs[0].Value()
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Name: [" + m.inputs[0].View() + "]\n"
	out += "Path: [" + m.inputs[1].View() + "]\n\n"
	out += helpStyle.Render("esc cancel  tab next field  enter save")
	return out
}

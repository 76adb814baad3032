package tui

import (
	"github.com/MKhiriev/claude-switch/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formAccountModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	id         int64
	submitting bool
}

func newFormAccountModel(account *models.Account) formAccountModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Placeholder = "work"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	inputs[2].Placeholder = "https://api.anthropic.com"
	inputs[0].Focus()

	m := formAccountModel{inputs: inputs}
	if account == nil {
		return m
	}

	m.editing = true
	m.id = account.ID
	m.inputs[0].SetValue(account.Name)
	m.inputs[1].SetValue(account.Token)
	m.inputs[2].SetValue(account.BaseURL)
	return m
}

func (m formAccountModel) name() string    { return m.inputs[0].Value() }
func (m formAccountModel) token() string   { return m.inputs[1].Value() }
func (m formAccountModel) baseURL() string { return m.inputs[2].Value() }

func (m formAccountModel) View() string {
	title := "New account"
	if m.editing {
		title = "Edit account: " + m.inputs[0].Value()
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Name:     [" + m.inputs[0].View() + "]\n"
	out += "Token:    [" + m.inputs[1].View() + "]\n"
	out += "Base URL: [" + m.inputs[2].View() + "]\n\n"
	out += helpStyle.Render("esc cancel  tab next field  enter save")
	return out
}

package tui

type menuModel struct {
	items []string
	idx   int
}

func newMenuModel() menuModel {
	return menuModel{
		items: []string{
			"Directories",
			"Accounts",
			"Switch account",
			"Sync",
			"Quit",
		},
	}
}

func (m menuModel) View() string {
	out := titleStyle.Render("claude-switch") + "\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("enter select  q quit")
	return out
}

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/claude-switch/internal/service"
	"github.com/MKhiriev/claude-switch/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenDirectories
	screenDirectoryForm
	screenAccounts
	screenAccountForm
	screenSwitch
	screenDetail
	screenSync
)

type deleteKind int

const (
	deleteDirectory deleteKind = iota
	deleteAccount
)

type pendingDelete struct {
	kind deleteKind
	id   int64
	name string
}

type appModel struct {
	ctx      context.Context
	services *service.Services

	currentScreen screen
	menu          menuModel
	directories   directoriesModel
	accounts      accountsModel
	dirForm       formDirectoryModel
	accountForm   formAccountModel
	picker        switchPickerModel
	detail        detailModel
	syncScreen    syncModel

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	toDelete     *pendingDelete

	err error
}

func newAppModel(ctx context.Context, services *service.Services) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenMenu,
		menu:          newMenuModel(),
		directories:   newDirectoriesModel(),
		accounts:      newAccountsModel(),
		picker:        newSwitchPickerModel(),
		syncScreen:    newSyncModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.toDelete == nil {
					return m, nil
				}
				return m, m.cmdDelete(*m.toDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.toDelete = nil
			}
			return m, nil
		}

	case directoriesLoadedMsg:
		m.directories.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.directories.items = msg.items
		m.directories.idx = clampIndex(m.directories.idx, len(msg.items))
		m.picker.directories = msg.items
		m.picker.dirIdx = clampIndex(m.picker.dirIdx, len(msg.items))
		return m, nil

	case accountsLoadedMsg:
		m.accounts.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.accounts.items = msg.items
		m.accounts.idx = clampIndex(m.accounts.idx, len(msg.items))
		m.picker.accounts = msg.items
		m.picker.accIdx = clampIndex(m.picker.accIdx, len(msg.items))
		return m, nil

	case directorySavedMsg:
		m.dirForm.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenDirectories
		m.directories.loading = true
		return m, tea.Batch(m.directories.spinner.Tick, m.cmdLoadDirectories())

	case accountSavedMsg:
		m.accountForm.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenAccounts
		m.accounts.loading = true
		return m, tea.Batch(m.accounts.spinner.Tick, m.cmdLoadAccounts())

	case recordDeletedMsg:
		deleted := m.toDelete
		m.toDelete = nil
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if deleted != nil && deleted.kind == deleteAccount {
			return m, m.cmdLoadAccounts()
		}
		return m, m.cmdLoadDirectories()

	case switchDoneMsg:
		m.picker.applying = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.detail.status = "Switched to account \"" + msg.account.Name + "\""
		return m, tea.Batch(m.cmdLoadCredentials(msg.directory), cmdClearStatus())

	case credentialsLoadedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.detail.directory = msg.directory
		m.detail.creds = msg.creds
		m.currentScreen = screenDetail
		return m, nil

	case credentialsClearedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if m.currentScreen == screenDetail {
			m.detail.status = "Credentials cleared"
			return m, tea.Batch(m.cmdLoadCredentials(m.detail.directory), cmdClearStatus())
		}
		m.directories.status = "Credentials cleared"
		return m, cmdClearStatus()

	case syncDoneMsg:
		m.syncScreen.running = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		switch msg.action {
		case "push":
			m.syncScreen.status = "Registry pushed to remote"
		case "pull":
			m.syncScreen.status = "Registry pulled. Restart claude-switch to reload it."
		default:
			m.syncScreen.status = "Remote is reachable"
		}
		return m, nil

	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Copied!"
		}
		m.accounts.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.accounts.status = ""
		m.directories.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		switch {
		case m.directories.loading:
			m.directories.spinner, cmd = m.directories.spinner.Update(msg)
		case m.accounts.loading:
			m.accounts.spinner, cmd = m.accounts.spinner.Update(msg)
		case m.syncScreen.running:
			m.syncScreen.spinner, cmd = m.syncScreen.spinner.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenDirectories:
		return m.updateDirectories(msg)
	case screenDirectoryForm:
		return m.updateDirectoryForm(msg)
	case screenAccounts:
		return m.updateAccounts(msg)
	case screenAccountForm:
		return m.updateAccountForm(msg)
	case screenSwitch:
		return m.updateSwitch(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenSync:
		return m.updateSync(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.menu.View()
	case screenDirectories:
		body = m.directories.View()
	case screenDirectoryForm:
		body = m.dirForm.View()
	case screenAccounts:
		body = m.accounts.View()
	case screenAccountForm:
		body = m.accountForm.View()
	case screenSwitch:
		body = m.picker.View()
	case screenDetail:
		body = m.detail.View()
	case screenSync:
		body = m.syncScreen.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.menu.idx {
		case 0:
			m.currentScreen = screenDirectories
			m.directories.loading = true
			return m, tea.Batch(m.directories.spinner.Tick, m.cmdLoadDirectories())
		case 1:
			m.currentScreen = screenAccounts
			m.accounts.loading = true
			return m, tea.Batch(m.accounts.spinner.Tick, m.cmdLoadAccounts())
		case 2:
			m.currentScreen = screenSwitch
			m.picker = newSwitchPickerModel()
			return m, tea.Batch(m.cmdLoadDirectories(), m.cmdLoadAccounts())
		case 3:
			m.currentScreen = screenSync
			m.syncScreen.status = ""
		case 4:
			m.err = ErrUserQuit
			return m, tea.Quit
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDirectories(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.directories.idx > 0 {
			m.directories.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.directories.idx < len(m.directories.items)-1 {
			m.directories.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		directory, ok := m.directories.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdLoadCredentials(directory)
	case key.Matches(keyMsg, keys.newItem):
		m.dirForm = newFormDirectoryModel(nil)
		m.currentScreen = screenDirectoryForm
	case key.Matches(keyMsg, keys.edit):
		directory, ok := m.directories.current()
		if !ok {
			return m, nil
		}
		m.dirForm = newFormDirectoryModel(&directory)
		m.currentScreen = screenDirectoryForm
	case key.Matches(keyMsg, keys.delete):
		directory, ok := m.directories.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = directory.Name
		m.toDelete = &pendingDelete{kind: deleteDirectory, id: directory.ID, name: directory.Name}
	case key.Matches(keyMsg, keys.clear):
		directory, ok := m.directories.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdClearCredentials(directory)
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDirectoryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDirectories
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.dirForm.inputs, m.dirForm.focus = focusNext(m.dirForm.inputs, m.dirForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.dirForm.inputs, m.dirForm.focus = focusPrev(m.dirForm.inputs, m.dirForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if strings.TrimSpace(m.dirForm.name()) == "" || strings.TrimSpace(m.dirForm.path()) == "" {
				m.showErrorf("Name and path are required")
				return m, nil
			}
			m.dirForm.submitting = true
			if m.dirForm.editing {
				return m, m.cmdUpdateDirectory(m.dirForm.id, m.dirForm.name(), m.dirForm.path())
			}
			return m, m.cmdCreateDirectory(m.dirForm.name(), m.dirForm.path())
		}
	}

	var cmd tea.Cmd
	m.dirForm.inputs[m.dirForm.focus], cmd = m.dirForm.inputs[m.dirForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateAccounts(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.accounts.idx > 0 {
			m.accounts.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.accounts.idx < len(m.accounts.items)-1 {
			m.accounts.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.accountForm = newFormAccountModel(nil)
		m.currentScreen = screenAccountForm
	case key.Matches(keyMsg, keys.edit):
		account, ok := m.accounts.current()
		if !ok {
			return m, nil
		}
		m.accountForm = newFormAccountModel(&account)
		m.currentScreen = screenAccountForm
	case key.Matches(keyMsg, keys.delete):
		account, ok := m.accounts.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = account.Name
		m.toDelete = &pendingDelete{kind: deleteAccount, id: account.ID, name: account.Name}
	case key.Matches(keyMsg, keys.copy):
		account, ok := m.accounts.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(account.Token)
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAccountForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenAccounts
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.accountForm.inputs, m.accountForm.focus = focusNext(m.accountForm.inputs, m.accountForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.accountForm.inputs, m.accountForm.focus = focusPrev(m.accountForm.inputs, m.accountForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if strings.TrimSpace(m.accountForm.name()) == "" ||
				strings.TrimSpace(m.accountForm.token()) == "" ||
				strings.TrimSpace(m.accountForm.baseURL()) == "" {
				m.showErrorf("Name, token, and base URL are required")
				return m, nil
			}
			m.accountForm.submitting = true
			if m.accountForm.editing {
				return m, m.cmdUpdateAccount(m.accountForm.id, m.accountForm.name(), m.accountForm.token(), m.accountForm.baseURL())
			}
			return m, m.cmdCreateAccount(m.accountForm.name(), m.accountForm.token(), m.accountForm.baseURL())
		}
	}

	var cmd tea.Cmd
	m.accountForm.inputs[m.accountForm.focus], cmd = m.accountForm.inputs[m.accountForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSwitch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.picker.step == pickDirectory {
		switch {
		case key.Matches(keyMsg, keys.up):
			if m.picker.dirIdx > 0 {
				m.picker.dirIdx--
			}
		case key.Matches(keyMsg, keys.down):
			if m.picker.dirIdx < len(m.picker.directories)-1 {
				m.picker.dirIdx++
			}
		case key.Matches(keyMsg, keys.enter):
			if _, ok := m.picker.currentDirectory(); ok {
				m.picker.step = pickAccount
			}
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
		case key.Matches(keyMsg, keys.quit):
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.picker.accIdx > 0 {
			m.picker.accIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.picker.accIdx < len(m.picker.accounts)-1 {
			m.picker.accIdx++
		}
	case key.Matches(keyMsg, keys.sandbox):
		m.picker.sandbox = !m.picker.sandbox
	case key.Matches(keyMsg, keys.enter):
		directory, okDir := m.picker.currentDirectory()
		account, okAcc := m.picker.currentAccount()
		if !okDir || !okAcc || m.picker.applying {
			return m, nil
		}
		m.picker.applying = true
		return m, m.cmdApply(directory, account, m.picker.sandbox)
	case key.Matches(keyMsg, keys.esc):
		m.picker.step = pickDirectory
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDirectories
		return m, m.cmdLoadDirectories()
	case key.Matches(keyMsg, keys.copy):
		token := m.detail.creds["ANTHROPIC_AUTH_TOKEN"]
		if token == "" {
			token = m.detail.creds["ANTHROPIC_API_KEY"]
		}
		if token == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(token)
	case key.Matches(keyMsg, keys.clear):
		return m, m.cmdClearCredentials(m.detail.directory)
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateSync(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.syncScreen.running {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.push):
		m.syncScreen.running = true
		m.syncScreen.action = "Pushing"
		m.syncScreen.status = ""
		return m, tea.Batch(m.syncScreen.spinner.Tick, m.cmdSync("push"))
	case key.Matches(keyMsg, keys.pull):
		m.syncScreen.running = true
		m.syncScreen.action = "Pulling"
		m.syncScreen.status = ""
		return m, tea.Batch(m.syncScreen.spinner.Tick, m.cmdSync("pull"))
	case key.Matches(keyMsg, keys.check):
		m.syncScreen.running = true
		m.syncScreen.action = "Checking"
		m.syncScreen.status = ""
		return m, tea.Batch(m.syncScreen.spinner.Tick, m.cmdSync("check"))
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) cmdLoadDirectories() tea.Cmd {
	ctx := m.ctx
	svc := m.services.DirectoryService
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return directoriesLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdLoadAccounts() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return accountsLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdCreateDirectory(name, path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DirectoryService
	return func() tea.Msg {
		_, err := svc.Register(ctx, models.CreateDirectoryRequest{Name: name, Path: path})
		return directorySavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateDirectory(id int64, name, path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DirectoryService
	return func() tea.Msg {
		_, err := svc.Update(ctx, id, models.UpdateDirectoryRequest{Name: &name, Path: &path})
		return directorySavedMsg{err: err}
	}
}

func (m appModel) cmdCreateAccount(name, token, baseURL string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		_, err := svc.Add(ctx, models.CreateAccountRequest{Name: name, Token: token, BaseURL: baseURL})
		return accountSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateAccount(id int64, name, token, baseURL string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		_, err := svc.Update(ctx, id, models.UpdateAccountRequest{Name: &name, Token: &token, BaseURL: &baseURL})
		return accountSavedMsg{err: err}
	}
}

func (m appModel) cmdDelete(target pendingDelete) tea.Cmd {
	ctx := m.ctx
	directories := m.services.DirectoryService
	accounts := m.services.AccountService
	return func() tea.Msg {
		var err error
		if target.kind == deleteAccount {
			err = accounts.Remove(ctx, target.id)
		} else {
			err = directories.Remove(ctx, target.id)
		}
		return recordDeletedMsg{err: err}
	}
}

func (m appModel) cmdApply(directory models.Directory, account models.Account, sandbox bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SwitchService
	return func() tea.Msg {
		err := svc.Apply(ctx, directory.ID, account.ID, sandbox)
		return switchDoneMsg{directory: directory, account: account, sandbox: sandbox, err: err}
	}
}

func (m appModel) cmdLoadCredentials(directory models.Directory) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SwitchService
	return func() tea.Msg {
		creds, err := svc.Current(ctx, directory.ID)
		return credentialsLoadedMsg{directory: directory, creds: creds, err: err}
	}
}

func (m appModel) cmdClearCredentials(directory models.Directory) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SwitchService
	return func() tea.Msg {
		err := svc.Clear(ctx, directory.ID)
		return credentialsClearedMsg{err: err}
	}
}

func (m appModel) cmdSync(action string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService
	return func() tea.Msg {
		var err error
		switch action {
		case "push":
			err = svc.Push(ctx)
		case "pull":
			err = svc.Pull(ctx)
		default:
			err = svc.Check(ctx)
		}
		return syncDoneMsg{action: action, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return switchDoneMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNext(inputs []textinput.Model, focus int) ([]textinput.Model, int) {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return inputs, focus
}

func focusPrev(inputs []textinput.Model, focus int) ([]textinput.Model, int) {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return inputs, focus
}

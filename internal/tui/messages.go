package tui

import (
	"github.com/MKhiriev/claude-switch/models"
)

type directoriesLoadedMsg struct {
	items []models.Directory
	err   error
}

type accountsLoadedMsg struct {
	items []models.Account
	err   error
}

type directorySavedMsg struct {
	err error
}

type accountSavedMsg struct {
	err error
}

type recordDeletedMsg struct {
	err error
}

type switchDoneMsg struct {
	directory models.Directory
	account   models.Account
	sandbox   bool
	err       error
}

type credentialsLoadedMsg struct {
	directory models.Directory
	creds     map[string]string
	err       error
}

type credentialsClearedMsg struct {
	err error
}

type syncDoneMsg struct {
	action string
	err    error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

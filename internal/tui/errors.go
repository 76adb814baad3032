package tui

import "errors"

// ErrUserQuit reports that the user closed the program from the TUI.
var ErrUserQuit = errors.New("user quit")

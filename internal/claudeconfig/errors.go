package claudeconfig

import "errors"

// ErrEmptyRoot is returned by [NewManager] when the supplied project root
// path is empty or consists only of whitespace.
var ErrEmptyRoot = errors.New("project root path is empty")

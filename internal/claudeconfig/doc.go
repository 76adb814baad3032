// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package claudeconfig resolves and persists the Claude Code settings of a
// single project directory.
//
// A [Manager] is bound to one directory root. It locates the settings source
// for that root (the primary .claude/settings.local.json, or a fallback chain
// of alternative files), normalizes whatever it finds into one JSON document,
// and writes credential updates back without disturbing unrelated keys. Every
// successful credential update also provisions the bundled CLAUDE.local.md
// template next to the settings.
//
// The package performs plain synchronous filesystem I/O and keeps no state
// between calls. Callers that may touch the same root concurrently must
// serialize access themselves; see the service layer's switch service.
package claudeconfig

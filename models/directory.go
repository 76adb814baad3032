// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Directory is a registered project directory that claude-switch injects
// credentials into. Path points at the project root holding (or about to
// hold) a .claude subdirectory.
type Directory struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateDirectoryRequest carries the fields needed to register a new
// directory. Path must be unique across the registry.
type CreateDirectoryRequest struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// UpdateDirectoryRequest carries a partial directory update. Nil fields are
// left unchanged.
type UpdateDirectoryRequest struct {
	Name     *string `json:"name,omitempty"`
	Path     *string `json:"path,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

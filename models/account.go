// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a stored Claude API account: a token plus the base URL of the
// endpoint the token belongs to. Exactly one account is expected to be
// active at a time; the active one is offered as the default when switching
// a directory.
type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	BaseURL   string    `json:"base_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAccountRequest carries the fields needed to store a new account.
type CreateAccountRequest struct {
	Name    string `json:"name"`
	Token   string `json:"token"`
	BaseURL string `json:"base_url"`
}

// UpdateAccountRequest carries a partial account update. Nil fields are left
// unchanged.
type UpdateAccountRequest struct {
	Name     *string `json:"name,omitempty"`
	Token    *string `json:"token,omitempty"`
	BaseURL  *string `json:"base_url,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InfoKey is the name of the hidden form field carrying the identity block,
// and the key under which the same block is stored inside a draft file.
const InfoKey = "_rescue_info"

// InvalidIdentityToken is produced when the page or the user behind a token
// request cannot be resolved. It is never accepted by validation.
const InvalidIdentityToken = "invalid-identity-token"

// IdentityInfo binds a form render (and later a staged submission) to the
// page and user it was produced for.
type IdentityInfo struct {
	// PageID is the page the form was rendered for.
	PageID int64 `json:"id"`

	// UserID is the editor the form was rendered for.
	UserID int64 `json:"uid"`

	// Time is the unix timestamp of the form render.
	Time int64 `json:"time"`

	// Token is the identity token computed for (PageID, UserID).
	Token string `json:"token"`

	// PostCookie is the post trust cookie value issued when the submission
	// was staged. Empty when post cookie validation is disabled.
	PostCookie string `json:"post_cookie,omitempty"`
}

// Draft is a staged copy of a form submission made after the editor session
// was lost.
type Draft struct {
	PageID int64
	UserID int64
	Fields Fields
	Info   IdentityInfo
}

// SweepReport summarises one pass over the staging area.
type SweepReport struct {
	DraftsRemoved      int
	UserCookiesRemoved int
	Duration           time.Duration
}

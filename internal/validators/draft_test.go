// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-draft-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validInfo() models.IdentityInfo {
	return models.IdentityInfo{PageID: 5, UserID: 9, Time: 1700000000, Token: "tok"}
}

func validDraft() models.Draft {
	return models.Draft{
		PageID: 5,
		UserID: 9,
		Fields: models.Fields{"title": "New"},
		Info:   validInfo(),
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestNewDraftValidator(t *testing.T) {
	require.NotNil(t, NewDraftValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewDraftValidator()
	ctx := context.Background()
	info := validInfo()
	draft := validDraft()
	creds := models.Credentials{Login: "john", Password: "secret"}

	assert.NoError(t, v.Validate(ctx, info))
	assert.NoError(t, v.Validate(ctx, &info))
	assert.NoError(t, v.Validate(ctx, draft))
	assert.NoError(t, v.Validate(ctx, &draft))
	assert.NoError(t, v.Validate(ctx, creds))
	assert.NoError(t, v.Validate(ctx, &creds))
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// IdentityInfo
// ---------------------------------------------------------------------------

func TestValidate_IdentityInfo(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.IdentityInfo)
		fields []string
		want   error
	}{
		{name: "valid", mutate: func(*models.IdentityInfo) {}},
		{name: "zero page", mutate: func(i *models.IdentityInfo) { i.PageID = 0 }, want: ErrInvalidPageID},
		{name: "negative user", mutate: func(i *models.IdentityInfo) { i.UserID = -1 }, want: ErrInvalidUserID},
		{name: "empty token", mutate: func(i *models.IdentityInfo) { i.Token = "" }, want: ErrEmptyToken},
		{name: "negative time", mutate: func(i *models.IdentityInfo) { i.Time = -1 }, fields: []string{FieldTime}, want: ErrInvalidTimestamp},
		{name: "scoped ignores token", mutate: func(i *models.IdentityInfo) { i.Token = "" }, fields: []string{FieldPageID}},
		{name: "unknown field", mutate: func(*models.IdentityInfo) {}, fields: []string{"nope"}, want: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validInfo()
			tt.mutate(&info)
			err := NewDraftValidator().Validate(context.Background(), info, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// Draft
// ---------------------------------------------------------------------------

func TestValidate_Draft(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Draft)
		fields []string
		want   error
	}{
		{name: "valid", mutate: func(*models.Draft) {}},
		{name: "page mismatch", mutate: func(d *models.Draft) { d.Info.PageID = 6 }, want: ErrPageIDMismatch},
		{name: "zero page", mutate: func(d *models.Draft) { d.PageID = 0; d.Info.PageID = 0 }, want: ErrInvalidPageID},
		{name: "info without token", mutate: func(d *models.Draft) { d.Info.Token = "" }, want: ErrEmptyToken},
		{name: "no fields", mutate: func(d *models.Draft) { d.Fields = nil }, want: ErrEmptyFields},
		{name: "reserved field", mutate: func(d *models.Draft) { d.Fields[models.InfoKey] = "x" }, want: ErrReservedField},
		{name: "user scoped", mutate: func(d *models.Draft) { d.UserID = 0 }, fields: []string{FieldUserID}, want: ErrInvalidUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)
			err := NewDraftValidator().Validate(context.Background(), draft, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewDraftValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "x"}), ErrEmptyLogin)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Login: "x"}), ErrEmptyPassword)
	assert.NoError(t, v.Validate(ctx, models.Credentials{Login: "x"}, FieldLogin))
}

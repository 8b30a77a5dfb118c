package validators

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPageID targets the page identifier of an identity block or draft.
	FieldPageID = "page_id"

	// FieldUserID targets the user identifier of an identity block or draft.
	FieldUserID = "user_id"

	// FieldToken targets the identity token of an identity block.
	FieldToken = "token"

	// FieldTime targets the render timestamp of an identity block.
	FieldTime = "time"

	// FieldInfoPageID checks that a draft's page matches its identity block.
	FieldInfoPageID = "info_page_id"

	// FieldFields targets the submitted form fields of a draft.
	FieldFields = "fields"

	// FieldLogin targets the login of the credentials form.
	FieldLogin = "login"

	// FieldPassword targets the password of the credentials form.
	FieldPassword = "password"
)

// DraftValidator implements Validator for the rescue payloads:
// models.IdentityInfo, models.Draft and models.Credentials. Only structure is
// checked here; identity tokens and cookies are verified by the draft
// service.
type DraftValidator struct {
}

// NewDraftValidator constructs a new DraftValidator and returns it as the
// Validator interface.
func NewDraftValidator() Validator {
	return &DraftValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted; any other type yields ErrUnsupportedType.
func (v *DraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.IdentityInfo:
		return v.validateIdentityInfo(ctx, value, fields...)
	case *models.IdentityInfo:
		return v.validateIdentityInfo(ctx, *value, fields...)

	case models.Draft:
		return v.validateDraft(ctx, value, fields...)
	case *models.Draft:
		return v.validateDraft(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateIdentityInfo checks the hidden identity block.
//
// Default validated fields: PageID, UserID, Token.
func (v *DraftValidator) validateIdentityInfo(_ context.Context, info models.IdentityInfo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPageID, FieldUserID, FieldToken}
	}

	for _, f := range fields {
		switch f {
		case FieldPageID:
			if info.PageID <= 0 {
				return ErrInvalidPageID
			}
		case FieldUserID:
			if info.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldToken:
			if info.Token == "" {
				return ErrEmptyToken
			}
		case FieldTime:
			if info.Time < 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDraft checks a submission about to be staged.
//
// Default validated fields: PageID, InfoPageID, Fields, plus the default
// identity block checks.
func (v *DraftValidator) validateDraft(ctx context.Context, draft models.Draft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPageID, FieldInfoPageID, FieldFields}
		if err := v.validateIdentityInfo(ctx, draft.Info); err != nil {
			return err
		}
	}

	for _, f := range fields {
		switch f {
		case FieldPageID:
			if draft.PageID <= 0 {
				return ErrInvalidPageID
			}
		case FieldUserID:
			if draft.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldInfoPageID:
			if draft.PageID != draft.Info.PageID {
				return ErrPageIDMismatch
			}
		case FieldFields:
			if len(draft.Fields) == 0 {
				return ErrEmptyFields
			}
			if _, ok := draft.Fields[models.InfoKey]; ok {
				return ErrReservedField
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DraftValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if c.Login == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

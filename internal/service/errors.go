package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrForbidden     = errors.New("user cannot edit this page")
	ErrPageNotFound  = errors.New("page not found")
	ErrUnknownAction = errors.New("unknown restore action")

	// ErrDraftRejected is returned for every staging attempt that fails.
	// The concrete reason is wrapped for the diagnostic log only.
	ErrDraftRejected = errors.New("draft rejected")
	ErrDraftNotFound = errors.New("draft not found")
	// ErrDraftInvalid is only returned in debug mode, when invalid drafts are
	// kept instead of being deleted.
	ErrDraftInvalid = errors.New("draft is invalid")
)

// Rejection reasons wrapped into ErrDraftRejected and ErrDraftInvalid.
var (
	ErrIdentityTokenMismatch = errors.New("identity token mismatch")
	ErrUserCookieMismatch    = errors.New("user trust cookie mismatch")
	ErrPostCookieMismatch    = errors.New("post trust cookie mismatch")
	ErrIdentityMismatch      = errors.New("draft belongs to another page or user")
)

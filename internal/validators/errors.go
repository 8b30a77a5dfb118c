package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPageID    = errors.New("invalid page ID")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrEmptyToken       = errors.New("identity token is required")
	ErrPageIDMismatch   = errors.New("page ID does not match identity info")
	ErrEmptyFields      = errors.New("draft has no fields")
	ErrReservedField    = errors.New("draft field name is reserved")
	ErrEmptyLogin       = errors.New("login is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidTimestamp = errors.New("invalid identity timestamp")
)

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// CookieJar is the request-scoped view of the browser cookies. Set with a
// negative maxAge removes the cookie.
type CookieJar interface {
	Get(name string) (string, bool)
	Set(name, value string, maxAge time.Duration)
}

// Scope is what the services know about the current request: who is calling,
// through which host, and with which cookies.
type Scope struct {
	UserID        int64
	Authenticated bool
	Host          string
	Cookies       CookieJar
}

// IdentityService derives the identity token that binds a rendered edit form
// to its (page, user) pair.
type IdentityService interface {
	Token(ctx context.Context, scope Scope, pageID, userID int64) string
	Info(ctx context.Context, scope Scope, pageID, userID int64) models.IdentityInfo
}

// TrustCookieService manages the user and post trust cookies.
type TrustCookieService interface {
	SetUserCookie(ctx context.Context, scope Scope, userID int64) error
	HasValidUserCookie(ctx context.Context, scope Scope, userID int64) bool
	IssuePostCookie(ctx context.Context, scope Scope, pageID int64) (string, error)
	ValidatePostCookie(ctx context.Context, scope Scope, pageID int64, expected string) bool
	Sweep(ctx context.Context) (int, error)
}

// DraftService stages anonymous submissions and hands them back only after
// full re-validation.
type DraftService interface {
	Save(ctx context.Context, scope Scope, pageID int64, fields models.Fields, info models.IdentityInfo) error
	Load(ctx context.Context, scope Scope, pageID, userID int64) (models.Fields, error)
	LoadInfo(ctx context.Context, scope Scope, pageID, userID int64) (models.IdentityInfo, error)
	Delete(ctx context.Context, pageID, userID int64) error
	Sweep(ctx context.Context) (models.SweepReport, error)
}

// RestoreService drives the restore/test/delete/ignore workflow offered to a
// returning editor.
type RestoreService interface {
	Status(ctx context.Context, scope Scope, pageID int64) (models.RestoreStatus, error)
	Apply(ctx context.Context, scope Scope, pageID int64, action models.RestoreAction, current models.Fields) (models.RestoreResult, error)
	Preview(ctx context.Context, scope Scope, pageID int64) (models.Fields, error)
}

// PageService reads and writes the live field values of editable pages.
type PageService interface {
	Edit(ctx context.Context, scope Scope, pageID int64) (models.Page, models.Fields, error)
	Save(ctx context.Context, scope Scope, pageID int64, fields models.Fields) error
}

// PingService answers heartbeats.
type PingService interface {
	Ping(ctx context.Context, scope Scope, counter int64) (models.PingResponse, error)
}

// AuthService owns the editor session.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// StartSession logs the editor in, sets the session cookie and runs the
	// post-login hooks.
	StartSession(ctx context.Context, scope Scope, credentials models.Credentials) (models.User, error)
	EndSession(ctx context.Context, scope Scope)
	// RefreshSession re-issues the session cookie with a new expiry.
	RefreshSession(ctx context.Context, scope Scope) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

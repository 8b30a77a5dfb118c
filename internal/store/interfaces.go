package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// PageRepository reads pages, edit rights and live field values from the
// directory database.
type PageRepository interface {
	GetPage(ctx context.Context, pageID int64) (models.Page, error)
	CanEdit(ctx context.Context, pageID, userID int64) (bool, error)
	GetPageFields(ctx context.Context, pageID int64) (models.Fields, error)
	SavePageFields(ctx context.Context, pageID int64, fields models.Fields) error
}

// UserRepository reads editor accounts from the directory database.
type UserRepository interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// StagingEntry describes one entry of a [StagingArea].
type StagingEntry struct {
	Name    string
	ModTime time.Time
}

// StagingArea is a flat namespace of small blobs with modification times.
// Writes replace the previous content (last write wins) and Remove is
// idempotent.
type StagingArea interface {
	Write(ctx context.Context, name string, data []byte) error
	Read(ctx context.Context, name string) ([]byte, time.Time, error)
	Remove(ctx context.Context, name string) error
	List(ctx context.Context, prefix string) ([]StagingEntry, error)
}

// DraftStorage persists staged drafts in the draft file format. It does not
// validate identity tokens; that is the caller's job.
type DraftStorage interface {
	SaveDraft(ctx context.Context, draft models.Draft) error
	LoadDraft(ctx context.Context, pageID, userID int64) (models.Draft, error)
	DeleteDraft(ctx context.Context, pageID, userID int64) error
	SweepDrafts(ctx context.Context, olderThan time.Time) (int, error)
}

// CookieShadowStorage keeps the server-side copy of every user trust cookie.
type CookieShadowStorage interface {
	SaveUserCookie(ctx context.Context, userID int64, value string) error
	LoadUserCookie(ctx context.Context, userID int64) (string, time.Time, error)
	SweepUserCookies(ctx context.Context, olderThan time.Time) (int, error)
}

// ErrorClassificator decides whether a failed database operation may
// succeed if retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

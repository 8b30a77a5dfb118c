package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/mock"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// ── cookie jar ──

type jarEntry struct {
	value  string
	maxAge time.Duration
}

// memoryJar is a CookieJar backed by a map. Cookies set with a negative
// maxAge are reported as absent.
type memoryJar struct {
	cookies map[string]jarEntry
}

func newJar() *memoryJar {
	return &memoryJar{cookies: map[string]jarEntry{}}
}

func (j *memoryJar) Get(name string) (string, bool) {
	c, ok := j.cookies[name]
	if !ok || c.maxAge < 0 {
		return "", false
	}
	return c.value, true
}

func (j *memoryJar) Set(name, value string, maxAge time.Duration) {
	j.cookies[name] = jarEntry{value: value, maxAge: maxAge}
}

// ── fixtures ──

const testHost = "cms.example.org"

var (
	testPage = models.Page{ID: 5, Title: "Home", OwnerID: 9, CreatedAt: time.Unix(1_700_000_000, 0)}
	testUser = models.User{UserID: 9, Login: "editor", Name: "Editor", CreatedAt: time.Unix(1_690_000_000, 0)}
)

func testRescueConfig() config.Rescue {
	return config.Rescue{
		SiteSalt:        "site-salt",
		InstalledAt:     1_600_000_000,
		DraftTTL:        24 * time.Hour,
		UserCookieTTL:   7 * 24 * time.Hour,
		UserCookieReuse: 24 * time.Hour,
		PostCookieTTL:   24 * time.Hour,
	}
}

func editorScope(jar CookieJar) Scope {
	return Scope{UserID: testUser.UserID, Authenticated: true, Host: testHost, Cookies: jar}
}

func anonymousScope(jar CookieJar) Scope {
	return Scope{Host: testHost, Cookies: jar}
}

// newDirectoryMocks returns page and user repositories knowing only testPage
// and testUser.
func newDirectoryMocks(t *testing.T) (*mock.MockPageRepository, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	pages := mock.NewMockPageRepository(ctrl)
	pages.EXPECT().GetPage(gomock.Any(), testPage.ID).Return(testPage, nil).AnyTimes()
	pages.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(models.Page{}, store.ErrPageNotFound).AnyTimes()

	users := mock.NewMockUserRepository(ctrl)
	users.EXPECT().GetUser(gomock.Any(), testUser.UserID).Return(testUser, nil).AnyTimes()
	users.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound).AnyTimes()

	return pages, users
}

// rescueFixture wires the identity, trust cookie and draft services over a
// file staging area in a temporary directory.
type rescueFixture struct {
	dir      string
	identity IdentityService
	cookies  TrustCookieService
	drafts   DraftService
	shadows  store.CookieShadowStorage
}

func newRescueFixture(t *testing.T, cfg config.Rescue) *rescueFixture {
	return newRescueFixtureWithDiag(t, cfg, logger.Nop())
}

func newRescueFixtureWithDiag(t *testing.T, cfg config.Rescue, diag *logger.Logger) *rescueFixture {
	t.Helper()

	dir := t.TempDir()
	staging, err := store.NewFileStaging(dir, logger.Nop())
	require.NoError(t, err)

	pages, users := newDirectoryMocks(t)
	shadows := store.NewCookieShadowStorage(staging, logger.Nop())

	identity := NewIdentityService(pages, users, cfg, logger.Nop())
	cookies := NewTrustCookieService(shadows, cfg, logger.Nop())

	return &rescueFixture{
		dir:      dir,
		identity: identity,
		cookies:  cookies,
		drafts:   NewDraftService(store.NewDraftStorage(staging, logger.Nop()), identity, cookies, cfg, diag),
		shadows:  shadows,
	}
}

func (f *rescueFixture) draftPath(pageID, userID int64) string {
	return filepath.Join(f.dir, store.DraftName(pageID, userID))
}

// ── fn-field fakes ──

type fakeDraftService struct {
	SaveFunc     func(ctx context.Context, scope Scope, pageID int64, fields models.Fields, info models.IdentityInfo) error
	LoadFunc     func(ctx context.Context, scope Scope, pageID, userID int64) (models.Fields, error)
	LoadInfoFunc func(ctx context.Context, scope Scope, pageID, userID int64) (models.IdentityInfo, error)
	DeleteFunc   func(ctx context.Context, pageID, userID int64) error
	SweepFunc    func(ctx context.Context) (models.SweepReport, error)
}

func (f *fakeDraftService) Save(ctx context.Context, scope Scope, pageID int64, fields models.Fields, info models.IdentityInfo) error {
	return f.SaveFunc(ctx, scope, pageID, fields, info)
}

func (f *fakeDraftService) Load(ctx context.Context, scope Scope, pageID, userID int64) (models.Fields, error) {
	return f.LoadFunc(ctx, scope, pageID, userID)
}

func (f *fakeDraftService) LoadInfo(ctx context.Context, scope Scope, pageID, userID int64) (models.IdentityInfo, error) {
	return f.LoadInfoFunc(ctx, scope, pageID, userID)
}

func (f *fakeDraftService) Delete(ctx context.Context, pageID, userID int64) error {
	return f.DeleteFunc(ctx, pageID, userID)
}

func (f *fakeDraftService) Sweep(ctx context.Context) (models.SweepReport, error) {
	return f.SweepFunc(ctx)
}

type fakeTrustCookieService struct {
	SetUserCookieFunc func(ctx context.Context, scope Scope, userID int64) error
}

func (f *fakeTrustCookieService) SetUserCookie(ctx context.Context, scope Scope, userID int64) error {
	return f.SetUserCookieFunc(ctx, scope, userID)
}

func (f *fakeTrustCookieService) HasValidUserCookie(context.Context, Scope, int64) bool {
	return false
}

func (f *fakeTrustCookieService) IssuePostCookie(context.Context, Scope, int64) (string, error) {
	return "", nil
}

func (f *fakeTrustCookieService) ValidatePostCookie(context.Context, Scope, int64, string) bool {
	return false
}

func (f *fakeTrustCookieService) Sweep(context.Context) (int, error) {
	return 0, nil
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// ---- fn-field service fakes ----

type mockAuthService struct {
	LoginFunc          func(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateTokenFunc    func(ctx context.Context, user models.User) (models.Token, error)
	ParseTokenFunc     func(ctx context.Context, tokenString string) (models.Token, error)
	StartSessionFunc   func(ctx context.Context, scope service.Scope, credentials models.Credentials) (models.User, error)
	EndSessionFunc     func(ctx context.Context, scope service.Scope)
	RefreshSessionFunc func(ctx context.Context, scope service.Scope) error
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.LoginFunc(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.CreateTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.ParseTokenFunc(ctx, tokenString)
}

func (m *mockAuthService) StartSession(ctx context.Context, scope service.Scope, credentials models.Credentials) (models.User, error) {
	return m.StartSessionFunc(ctx, scope, credentials)
}

func (m *mockAuthService) EndSession(ctx context.Context, scope service.Scope) {
	m.EndSessionFunc(ctx, scope)
}

func (m *mockAuthService) RefreshSession(ctx context.Context, scope service.Scope) error {
	return m.RefreshSessionFunc(ctx, scope)
}

type mockPingService struct {
	PingFunc func(ctx context.Context, scope service.Scope, counter int64) (models.PingResponse, error)
}

func (m *mockPingService) Ping(ctx context.Context, scope service.Scope, counter int64) (models.PingResponse, error) {
	return m.PingFunc(ctx, scope, counter)
}

type mockPageService struct {
	EditFunc func(ctx context.Context, scope service.Scope, pageID int64) (models.Page, models.Fields, error)
	SaveFunc func(ctx context.Context, scope service.Scope, pageID int64, fields models.Fields) error
}

func (m *mockPageService) Edit(ctx context.Context, scope service.Scope, pageID int64) (models.Page, models.Fields, error) {
	return m.EditFunc(ctx, scope, pageID)
}

func (m *mockPageService) Save(ctx context.Context, scope service.Scope, pageID int64, fields models.Fields) error {
	return m.SaveFunc(ctx, scope, pageID, fields)
}

type mockRestoreService struct {
	StatusFunc  func(ctx context.Context, scope service.Scope, pageID int64) (models.RestoreStatus, error)
	ApplyFunc   func(ctx context.Context, scope service.Scope, pageID int64, action models.RestoreAction, current models.Fields) (models.RestoreResult, error)
	PreviewFunc func(ctx context.Context, scope service.Scope, pageID int64) (models.Fields, error)
}

func (m *mockRestoreService) Status(ctx context.Context, scope service.Scope, pageID int64) (models.RestoreStatus, error) {
	return m.StatusFunc(ctx, scope, pageID)
}

func (m *mockRestoreService) Apply(ctx context.Context, scope service.Scope, pageID int64, action models.RestoreAction, current models.Fields) (models.RestoreResult, error) {
	return m.ApplyFunc(ctx, scope, pageID, action, current)
}

func (m *mockRestoreService) Preview(ctx context.Context, scope service.Scope, pageID int64) (models.Fields, error) {
	return m.PreviewFunc(ctx, scope, pageID)
}

type mockDraftService struct {
	SaveFunc func(ctx context.Context, scope service.Scope, pageID int64, fields models.Fields, info models.IdentityInfo) error
}

func (m *mockDraftService) Save(ctx context.Context, scope service.Scope, pageID int64, fields models.Fields, info models.IdentityInfo) error {
	return m.SaveFunc(ctx, scope, pageID, fields, info)
}

func (m *mockDraftService) Load(context.Context, service.Scope, int64, int64) (models.Fields, error) {
	return nil, service.ErrDraftNotFound
}

func (m *mockDraftService) LoadInfo(context.Context, service.Scope, int64, int64) (models.IdentityInfo, error) {
	return models.IdentityInfo{}, service.ErrDraftNotFound
}

func (m *mockDraftService) Delete(context.Context, int64, int64) error {
	return nil
}

func (m *mockDraftService) Sweep(context.Context) (models.SweepReport, error) {
	return models.SweepReport{}, nil
}

// mockIdentityService returns a fixed token.
type mockIdentityService struct {
	token string
}

func (m *mockIdentityService) Token(context.Context, service.Scope, int64, int64) string {
	return m.token
}

func (m *mockIdentityService) Info(_ context.Context, _ service.Scope, pageID, userID int64) models.IdentityInfo {
	return models.IdentityInfo{PageID: pageID, UserID: userID, Time: 1_700_000_000, Token: m.token}
}

// mockTrustCookieService sets a fixed user trust cookie.
type mockTrustCookieService struct {
	userCookieCalls int
}

func (m *mockTrustCookieService) SetUserCookie(_ context.Context, scope service.Scope, _ int64) error {
	m.userCookieCalls++
	scope.Cookies.Set(service.UserCookieName, "trusted", time.Hour)
	return nil
}

func (m *mockTrustCookieService) HasValidUserCookie(context.Context, service.Scope, int64) bool {
	return true
}

func (m *mockTrustCookieService) IssuePostCookie(context.Context, service.Scope, int64) (string, error) {
	return "post", nil
}

func (m *mockTrustCookieService) ValidatePostCookie(context.Context, service.Scope, int64, string) bool {
	return true
}

func (m *mockTrustCookieService) Sweep(context.Context) (int, error) {
	return 0, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// ---- helpers ----

const editorToken = "editor-token"

// editorAuth accepts editorToken as the session of user 9.
func editorAuth() *mockAuthService {
	return &mockAuthService{
		ParseTokenFunc: func(_ context.Context, s string) (models.Token, error) {
			if s == editorToken {
				return models.Token{UserID: 9}, nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

// newTestServices returns services with harmless defaults; tests override
// the fields they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:        editorAuth(),
		IdentityService:    &mockIdentityService{token: "identity-token"},
		TrustCookieService: &mockTrustCookieService{},
		DraftService: &mockDraftService{
			SaveFunc: func(context.Context, service.Scope, int64, models.Fields, models.IdentityInfo) error { return nil },
		},
		RestoreService: &mockRestoreService{
			StatusFunc: func(context.Context, service.Scope, int64) (models.RestoreStatus, error) {
				return models.RestoreStatus{State: models.NoDraft}, nil
			},
		},
		PageService: &mockPageService{
			EditFunc: func(_ context.Context, _ service.Scope, pageID int64) (models.Page, models.Fields, error) {
				return models.Page{ID: pageID, Title: "Home"}, models.Fields{"title": "Live"}, nil
			},
			SaveFunc: func(context.Context, service.Scope, int64, models.Fields) error { return nil },
		},
		PingService: &mockPingService{
			PingFunc: func(_ context.Context, _ service.Scope, n int64) (models.PingResponse, error) {
				return models.PingResponse{Ping: n}, nil
			},
		},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
}

func newTestRouter(services *service.Services) http.Handler {
	return NewHandler(services, Options{PingIntervalSeconds: 60}, logger.Nop()).Init()
}

// withEditorSession adds the session cookie of user 9.
func withEditorSession(r *http.Request) *http.Request {
	r.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: editorToken})
	return r
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// asEditor marks a request handled outside the router as coming from user 9.
func asEditor(r *http.Request) *http.Request {
	return injectNopLogger(r.WithContext(utils.WithUserID(r.Context(), 9)))
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
)

const (
	// UserCookieName is the browser cookie holding the user trust value.
	UserCookieName = "userTrustCookie"
	// PostCookiePrefix is followed by the page ID in the post trust cookie name.
	PostCookiePrefix = "postTrustCookie"

	userCookieLength = 60
	postCookieLength = 40
)

// PostCookieName returns the name of the post trust cookie of pageID.
func PostCookieName(pageID int64) string {
	return PostCookiePrefix + strconv.FormatInt(pageID, 10)
}

// trustCookieService issues and checks the trust cookies.
//
// NOTE: values are compared with ==, not in constant time.
type trustCookieService struct {
	shadows store.CookieShadowStorage

	userTTL   time.Duration
	userReuse time.Duration
	postTTL   time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewTrustCookieService constructs a TrustCookieService keeping the user
// cookie shadows in shadows.
func NewTrustCookieService(shadows store.CookieShadowStorage, cfg config.Rescue, logger *logger.Logger) TrustCookieService {
	return &trustCookieService{
		shadows:   shadows,
		userTTL:   cfg.UserCookieTTL,
		userReuse: cfg.UserCookieReuse,
		postTTL:   cfg.PostCookieTTL,
		now:       time.Now,
		logger:    logger,
	}
}

// SetUserCookie sets the user trust cookie, reusing the shadow value when it
// was written less than userReuse ago.
func (t *trustCookieService) SetUserCookie(ctx context.Context, scope Scope, userID int64) error {
	log := logger.FromContext(ctx)

	value, written, err := t.shadows.LoadUserCookie(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrUserCookieNotFound) {
		log.Err(err).Str("func", "*trustCookieService.SetUserCookie").Int64("user_id", userID).
			Msg("error reading user cookie shadow")
	}

	if err != nil || value == "" || t.now().Sub(written) >= t.userReuse {
		value, err = utils.RandomString(userCookieLength)
		if err != nil {
			return fmt.Errorf("error generating user trust cookie: %w", err)
		}
		if err = t.shadows.SaveUserCookie(ctx, userID, value); err != nil {
			return fmt.Errorf("error saving user trust cookie: %w", err)
		}
	}

	scope.Cookies.Set(UserCookieName, value, t.userTTL)
	return nil
}

// HasValidUserCookie reports whether the browser presents the shadowed user
// trust value of userID.
func (t *trustCookieService) HasValidUserCookie(ctx context.Context, scope Scope, userID int64) bool {
	client, ok := scope.Cookies.Get(UserCookieName)
	if !ok || client == "" {
		return false
	}

	shadow, written, err := t.shadows.LoadUserCookie(ctx, userID)
	if err != nil {
		return false
	}
	if t.now().Sub(written) > t.userTTL {
		return false
	}

	return shadow == client
}

// IssuePostCookie sets a fresh post trust cookie for pageID and returns its
// value.
func (t *trustCookieService) IssuePostCookie(_ context.Context, scope Scope, pageID int64) (string, error) {
	value, err := utils.RandomString(postCookieLength)
	if err != nil {
		return "", fmt.Errorf("error generating post trust cookie: %w", err)
	}

	scope.Cookies.Set(PostCookieName(pageID), value, t.postTTL)
	return value, nil
}

func (t *trustCookieService) ValidatePostCookie(_ context.Context, scope Scope, pageID int64, expected string) bool {
	if expected == "" {
		return false
	}
	client, ok := scope.Cookies.Get(PostCookieName(pageID))
	return ok && client == expected
}

// Sweep removes user cookie shadows older than the cookie lifetime.
func (t *trustCookieService) Sweep(ctx context.Context) (int, error) {
	return t.shadows.SweepUserCookies(ctx, t.now().Add(-t.userTTL))
}

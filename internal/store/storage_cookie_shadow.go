package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

const userCookieNamePrefix = "usercookie-"

// UserCookieName returns the staging entry name of the shadow copy of the
// user trust cookie of userID.
func UserCookieName(userID int64) string {
	return userCookieNamePrefix + strconv.FormatInt(userID, 10)
}

// cookieShadowStorage implements [CookieShadowStorage] over a [StagingArea];
// the entry content is the raw cookie value.
type cookieShadowStorage struct {
	staging StagingArea
	logger  *logger.Logger
}

// NewCookieShadowStorage constructs a [CookieShadowStorage] over staging.
func NewCookieShadowStorage(staging StagingArea, logger *logger.Logger) CookieShadowStorage {
	return &cookieShadowStorage{staging: staging, logger: logger}
}

func (c *cookieShadowStorage) SaveUserCookie(ctx context.Context, userID int64, value string) error {
	if err := c.staging.Write(ctx, UserCookieName(userID), []byte(value)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cookieShadowStorage.SaveUserCookie").
			Int64("user_id", userID).Msg("failed to write user cookie shadow")
		return err
	}

	return nil
}

// LoadUserCookie returns the shadow value and when it was written.
func (c *cookieShadowStorage) LoadUserCookie(ctx context.Context, userID int64) (string, time.Time, error) {
	data, modTime, err := c.staging.Read(ctx, UserCookieName(userID))
	if err != nil {
		if errors.Is(err, ErrStagingEntryNotFound) {
			return "", time.Time{}, ErrUserCookieNotFound
		}
		return "", time.Time{}, err
	}

	return string(data), modTime, nil
}

// SweepUserCookies removes every shadow written before olderThan.
func (c *cookieShadowStorage) SweepUserCookies(ctx context.Context, olderThan time.Time) (int, error) {
	return sweep(ctx, c.staging, userCookieNamePrefix, olderThan)
}

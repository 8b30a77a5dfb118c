package service

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// identityService computes identity tokens from directory records and the
// site secrets. The token changes whenever any of its inputs change: the
// page or user creation time, the site installation time, the HTTP host or
// the salt.
type identityService struct {
	pages store.PageRepository
	users store.UserRepository

	// salt keys the HMAC and is also part of the hashed message.
	salt        string
	installedAt int64

	now    func() time.Time
	logger *logger.Logger
}

// NewIdentityService constructs an IdentityService reading pages and users
// from the directory database.
func NewIdentityService(pages store.PageRepository, users store.UserRepository, cfg config.Rescue, logger *logger.Logger) IdentityService {
	return &identityService{
		pages:       pages,
		users:       users,
		salt:        cfg.SiteSalt,
		installedAt: cfg.InstalledAt,
		now:         time.Now,
		logger:      logger,
	}
}

// Token returns the identity token of (pageID, userID) as seen through
// scope.Host. Unknown pages or users yield models.InvalidIdentityToken.
func (s *identityService) Token(ctx context.Context, scope Scope, pageID, userID int64) string {
	log := logger.FromContext(ctx)

	page, err := s.pages.GetPage(ctx, pageID)
	if err != nil {
		log.Err(err).Str("func", "*identityService.Token").Int64("page_id", pageID).Msg("page lookup failed")
		return models.InvalidIdentityToken
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*identityService.Token").Int64("user_id", userID).Msg("user lookup failed")
		return models.InvalidIdentityToken
	}

	return utils.HashFields(s.salt,
		strconv.FormatInt(pageID, 10),
		strconv.FormatInt(page.CreatedAt.Unix(), 10),
		strconv.FormatInt(userID, 10),
		strconv.FormatInt(user.CreatedAt.Unix(), 10),
		strconv.FormatInt(s.installedAt, 10),
		scope.Host,
		s.salt,
	)
}

// Info builds the identity block embedded in the edit form.
func (s *identityService) Info(ctx context.Context, scope Scope, pageID, userID int64) models.IdentityInfo {
	return models.IdentityInfo{
		PageID: pageID,
		UserID: userID,
		Time:   s.now().Unix(),
		Token:  s.Token(ctx, scope, pageID, userID),
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/validators"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// bookkeepingKeys are removed from loaded drafts along with every key
// starting with one of bookkeepingPrefixes.
var (
	bookkeepingKeys     = []string{models.InfoKey, "csrf_token", "_csrf", "rescue_action"}
	bookkeepingPrefixes = []string{"_", "rescue_"}
)

// draftService stages anonymous submissions and re-validates them on read.
type draftService struct {
	drafts   store.DraftStorage
	identity IdentityService
	cookies  TrustCookieService

	validator validators.Validator

	skipUserCookie bool
	skipPostCookie bool
	debug          bool
	draftTTL       time.Duration

	// diag is the rescue diagnostic log, a no-op logger unless enabled.
	diag *logger.Logger
	now  func() time.Time
}

// NewDraftService constructs a DraftService. diag receives one entry per
// rejected or invalidated draft.
func NewDraftService(
	drafts store.DraftStorage,
	identity IdentityService,
	cookies TrustCookieService,
	cfg config.Rescue,
	diag *logger.Logger,
) DraftService {
	return &draftService{
		drafts:         drafts,
		identity:       identity,
		cookies:        cookies,
		validator:      validators.NewDraftValidator(),
		skipUserCookie: cfg.SkipUserCookieCheck,
		skipPostCookie: cfg.SkipPostCookieCheck,
		debug:          cfg.Debug,
		draftTTL:       cfg.DraftTTL,
		diag:           diag,
		now:            time.Now,
	}
}

// Save stages fields as the draft of (pageID, info.UserID). Every failure is
// reported as ErrDraftRejected and nothing is written.
func (d *draftService) Save(ctx context.Context, scope Scope, pageID int64, fields models.Fields, info models.IdentityInfo) error {
	draft := models.Draft{
		PageID: pageID,
		UserID: info.UserID,
		Fields: fields,
		Info:   info,
	}

	if err := d.validator.Validate(ctx, draft); err != nil {
		return d.reject(pageID, info.UserID, err)
	}

	token := d.identity.Token(ctx, scope, pageID, info.UserID)
	if token == models.InvalidIdentityToken || token != info.Token {
		return d.reject(pageID, info.UserID, ErrIdentityTokenMismatch)
	}

	if !d.skipUserCookie && !d.cookies.HasValidUserCookie(ctx, scope, info.UserID) {
		return d.reject(pageID, info.UserID, ErrUserCookieMismatch)
	}

	if !d.skipPostCookie {
		postCookie, err := d.cookies.IssuePostCookie(ctx, scope, pageID)
		if err != nil {
			return d.reject(pageID, info.UserID, err)
		}
		draft.Info.PostCookie = postCookie
	}

	if err := d.drafts.SaveDraft(ctx, draft); err != nil {
		return d.reject(pageID, info.UserID, err)
	}

	d.diag.Info().Int64("page_id", pageID).Int64("user_id", info.UserID).Msg("draft staged")
	return nil
}

// Load returns the cleaned fields of a fully re-validated draft.
func (d *draftService) Load(ctx context.Context, scope Scope, pageID, userID int64) (models.Fields, error) {
	draft, err := d.load(ctx, scope, pageID, userID)
	if err != nil {
		return nil, err
	}

	return stripBookkeeping(draft.Fields), nil
}

// LoadInfo returns only the identity block of a fully re-validated draft.
func (d *draftService) LoadInfo(ctx context.Context, scope Scope, pageID, userID int64) (models.IdentityInfo, error) {
	draft, err := d.load(ctx, scope, pageID, userID)
	if err != nil {
		return models.IdentityInfo{}, err
	}

	return draft.Info, nil
}

// Delete removes the draft; deleting a missing draft is not an error.
func (d *draftService) Delete(ctx context.Context, pageID, userID int64) error {
	if err := d.drafts.DeleteDraft(ctx, pageID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*draftService.Delete").
			Int64("page_id", pageID).Int64("user_id", userID).Msg("error deleting draft")
		return err
	}

	return nil
}

// Sweep removes expired drafts and user cookie shadows.
func (d *draftService) Sweep(ctx context.Context) (models.SweepReport, error) {
	start := d.now()

	drafts, draftsErr := d.drafts.SweepDrafts(ctx, start.Add(-d.draftTTL))
	cookies, cookiesErr := d.cookies.Sweep(ctx)

	report := models.SweepReport{
		DraftsRemoved:      drafts,
		UserCookiesRemoved: cookies,
		Duration:           d.now().Sub(start),
	}

	d.diag.Info().Int("drafts", drafts).Int("user_cookies", cookies).Dur("took", report.Duration).Msg("staging swept")

	if err := errors.Join(draftsErr, cookiesErr); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*draftService.Sweep").Msg("error sweeping staging area")
		return report, err
	}

	return report, nil
}

func (d *draftService) load(ctx context.Context, scope Scope, pageID, userID int64) (models.Draft, error) {
	draft, err := d.drafts.LoadDraft(ctx, pageID, userID)
	switch {
	case errors.Is(err, store.ErrDraftNotFound):
		return models.Draft{}, ErrDraftNotFound
	case errors.Is(err, store.ErrInvalidDraftFile):
		return models.Draft{}, d.invalidate(ctx, pageID, userID, err)
	case err != nil:
		return models.Draft{}, err
	}

	if draft.Info.PageID != pageID || draft.Info.UserID != userID {
		return models.Draft{}, d.invalidate(ctx, pageID, userID, ErrIdentityMismatch)
	}

	token := d.identity.Token(ctx, scope, pageID, userID)
	if token == models.InvalidIdentityToken || token != draft.Info.Token {
		return models.Draft{}, d.invalidate(ctx, pageID, userID, ErrIdentityTokenMismatch)
	}

	if !d.skipPostCookie && !d.cookies.ValidatePostCookie(ctx, scope, pageID, draft.Info.PostCookie) {
		return models.Draft{}, d.invalidate(ctx, pageID, userID, ErrPostCookieMismatch)
	}

	return draft, nil
}

// invalidate deletes a draft that failed re-validation. In debug mode the
// file is kept and the reason returned.
func (d *draftService) invalidate(ctx context.Context, pageID, userID int64, reason error) error {
	d.diag.Warn().Err(reason).Int64("page_id", pageID).Int64("user_id", userID).Bool("debug", d.debug).
		Msg("draft failed validation")

	if d.debug {
		return fmt.Errorf("%w: %w", ErrDraftInvalid, reason)
	}

	_ = d.Delete(ctx, pageID, userID)
	return ErrDraftNotFound
}

func (d *draftService) reject(pageID, userID int64, reason error) error {
	d.diag.Warn().Err(reason).Int64("page_id", pageID).Int64("user_id", userID).Msg("draft rejected")
	return fmt.Errorf("%w: %w", ErrDraftRejected, reason)
}

// stripBookkeeping returns fields without the identity block, framework keys
// and internally prefixed keys.
func stripBookkeeping(fields models.Fields) models.Fields {
	out := fields.Clone()
	for _, k := range bookkeepingKeys {
		delete(out, k)
	}
	for k := range out {
		for _, prefix := range bookkeepingPrefixes {
			if strings.HasPrefix(k, prefix) {
				delete(out, k)
				break
			}
		}
	}

	return out
}

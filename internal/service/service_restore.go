package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type restoreService struct {
	drafts DraftService
	pages  store.PageRepository

	logger *logger.Logger
}

// NewRestoreService constructs a RestoreService over drafts. pages is used to
// check edit rights for previews.
func NewRestoreService(drafts DraftService, pages store.PageRepository, logger *logger.Logger) RestoreService {
	return &restoreService{drafts: drafts, pages: pages, logger: logger}
}

// Status reports whether the calling editor has a valid pending draft for
// pageID.
func (r *restoreService) Status(ctx context.Context, scope Scope, pageID int64) (models.RestoreStatus, error) {
	if !scope.Authenticated {
		return models.RestoreStatus{State: models.NoDraft}, nil
	}

	info, err := r.drafts.LoadInfo(ctx, scope, pageID, scope.UserID)
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			return models.RestoreStatus{State: models.NoDraft}, nil
		}
		return models.RestoreStatus{State: models.NoDraft}, err
	}

	return models.RestoreStatus{State: models.DraftPendingDecision, Info: info}, nil
}

// Apply performs action against the submitted fields. current is never
// modified; the result carries a copy.
func (r *restoreService) Apply(ctx context.Context, scope Scope, pageID int64, action models.RestoreAction, current models.Fields) (models.RestoreResult, error) {
	log := logger.FromContext(ctx)

	if !action.Valid() {
		return models.RestoreResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	result := models.RestoreResult{Fields: current.Clone()}

	switch action {
	case models.ActionIgnore:
		result.State = models.DraftPendingDecision
		return result, nil

	case models.ActionDelete:
		if err := r.drafts.Delete(ctx, pageID, scope.UserID); err != nil {
			return models.RestoreResult{}, err
		}
		result.State = models.Discarded
		result.DraftDeleted = true
		return result, nil
	}

	draft, err := r.drafts.Load(ctx, scope, pageID, scope.UserID)
	if err != nil {
		log.Err(err).Str("func", "*restoreService.Apply").Int64("page_id", pageID).
			Str("action", string(action)).Msg("no draft to apply")
		return models.RestoreResult{State: models.NoDraft, Fields: current.Clone()}, err
	}

	result.Changed = Diff(current, draft)
	result.State = models.Applied
	for _, k := range result.Changed {
		result.Fields[k] = draft[k]
	}

	if action == models.ActionRestore {
		if err = r.drafts.Delete(ctx, pageID, scope.UserID); err != nil {
			return models.RestoreResult{}, err
		}
		result.DraftDeleted = true
	}

	return result, nil
}

// Preview returns the cleaned draft fields for an editor allowed to edit
// pageID.
func (r *restoreService) Preview(ctx context.Context, scope Scope, pageID int64) (models.Fields, error) {
	if !scope.Authenticated {
		return nil, ErrForbidden
	}

	canEdit, err := r.pages.CanEdit(ctx, pageID, scope.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restoreService.Preview").Int64("page_id", pageID).
			Msg("error checking edit rights")
		return nil, err
	}
	if !canEdit {
		return nil, ErrForbidden
	}

	return r.drafts.Load(ctx, scope, pageID, scope.UserID)
}

// Diff returns the sorted keys of draft whose value is absent from current
// or differs from it.
func Diff(current, draft models.Fields) []string {
	changed := make([]string, 0)
	for k, v := range draft {
		if cur, ok := current[k]; !ok || cur != v {
			changed = append(changed, k)
		}
	}
	sort.Strings(changed)

	return changed
}

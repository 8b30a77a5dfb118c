package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const draftNamePrefix = "draft-"

// DraftName returns the staging entry name of the draft for (pageID, userID).
func DraftName(pageID, userID int64) string {
	return fmt.Sprintf("%s%d-%d.json", draftNamePrefix, pageID, userID)
}

// draftStorage implements [DraftStorage] over a [StagingArea]. A draft is
// stored as one flat JSON object of strings: the submitted fields plus
// [models.InfoKey] holding the JSON-encoded identity block.
type draftStorage struct {
	staging StagingArea
	logger  *logger.Logger
}

// NewDraftStorage constructs a [DraftStorage] over staging.
func NewDraftStorage(staging StagingArea, logger *logger.Logger) DraftStorage {
	return &draftStorage{staging: staging, logger: logger}
}

func (d *draftStorage) SaveDraft(ctx context.Context, draft models.Draft) error {
	log := logger.FromContext(ctx)

	data, err := encodeDraft(draft)
	if err != nil {
		log.Err(err).Str("func", "*draftStorage.SaveDraft").Int64("page_id", draft.PageID).
			Msg("failed to encode draft")
		return err
	}

	if err = d.staging.Write(ctx, DraftName(draft.PageID, draft.UserID), data); err != nil {
		log.Err(err).Str("func", "*draftStorage.SaveDraft").Int64("page_id", draft.PageID).
			Int64("user_id", draft.UserID).Msg("failed to write draft")
		return err
	}

	return nil
}

// LoadDraft reads and decodes the draft. Identity tokens are not checked.
func (d *draftStorage) LoadDraft(ctx context.Context, pageID, userID int64) (models.Draft, error) {
	data, _, err := d.staging.Read(ctx, DraftName(pageID, userID))
	if err != nil {
		if errors.Is(err, ErrStagingEntryNotFound) {
			return models.Draft{}, ErrDraftNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*draftStorage.LoadDraft").
			Int64("page_id", pageID).Int64("user_id", userID).Msg("failed to read draft")
		return models.Draft{}, err
	}

	draft, err := decodeDraft(data)
	if err != nil {
		return models.Draft{}, err
	}
	draft.PageID = pageID
	draft.UserID = userID

	return draft, nil
}

func (d *draftStorage) DeleteDraft(ctx context.Context, pageID, userID int64) error {
	return d.staging.Remove(ctx, DraftName(pageID, userID))
}

// SweepDrafts removes every draft last written before olderThan.
func (d *draftStorage) SweepDrafts(ctx context.Context, olderThan time.Time) (int, error) {
	return sweep(ctx, d.staging, draftNamePrefix, olderThan)
}

func encodeDraft(draft models.Draft) ([]byte, error) {
	info, err := json.Marshal(draft.Info)
	if err != nil {
		return nil, fmt.Errorf("error encoding identity info: %w", err)
	}

	flat := make(map[string]string, len(draft.Fields)+1)
	for k, v := range draft.Fields {
		flat[k] = v
	}
	flat[models.InfoKey] = string(info)

	return json.Marshal(flat)
}

func decodeDraft(data []byte) (models.Draft, error) {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return models.Draft{}, fmt.Errorf("%w: %w", ErrInvalidDraftFile, err)
	}

	rawInfo, ok := flat[models.InfoKey]
	if !ok {
		return models.Draft{}, fmt.Errorf("%w: missing %s", ErrInvalidDraftFile, models.InfoKey)
	}

	var info models.IdentityInfo
	if err := json.Unmarshal([]byte(rawInfo), &info); err != nil {
		return models.Draft{}, fmt.Errorf("%w: %w", ErrInvalidDraftFile, err)
	}
	delete(flat, models.InfoKey)

	return models.Draft{Fields: flat, Info: info}, nil
}

// sweep removes the entries under prefix whose modification time is before
// olderThan and returns how many were removed.
func sweep(ctx context.Context, staging StagingArea, prefix string, olderThan time.Time) (int, error) {
	entries, err := staging.List(ctx, prefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	var errs []error
	for _, e := range entries {
		if !e.ModTime.Before(olderThan) {
			continue
		}
		if err = staging.Remove(ctx, e.Name); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type pageService struct {
	pages store.PageRepository

	logger *logger.Logger
}

// NewPageService constructs a PageService over the directory database.
func NewPageService(pages store.PageRepository, logger *logger.Logger) PageService {
	return &pageService{pages: pages, logger: logger}
}

// Edit returns the page and its live fields if the caller may edit it.
func (p *pageService) Edit(ctx context.Context, scope Scope, pageID int64) (models.Page, models.Fields, error) {
	log := logger.FromContext(ctx)

	if err := p.authorize(ctx, scope, pageID); err != nil {
		return models.Page{}, nil, err
	}

	page, err := p.pages.GetPage(ctx, pageID)
	if err != nil {
		log.Err(err).Str("func", "*pageService.Edit").Int64("page_id", pageID).Msg("error getting page")
		return models.Page{}, nil, mapPageError(err)
	}

	fields, err := p.pages.GetPageFields(ctx, pageID)
	if err != nil {
		log.Err(err).Str("func", "*pageService.Edit").Int64("page_id", pageID).Msg("error getting page fields")
		return models.Page{}, nil, mapPageError(err)
	}

	return page, fields, nil
}

// Save overwrites the live values of fields.
func (p *pageService) Save(ctx context.Context, scope Scope, pageID int64, fields models.Fields) error {
	if err := p.authorize(ctx, scope, pageID); err != nil {
		return err
	}

	if err := p.pages.SavePageFields(ctx, pageID, fields); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*pageService.Save").Int64("page_id", pageID).
			Msg("error saving page fields")
		return mapPageError(err)
	}

	return nil
}

func (p *pageService) authorize(ctx context.Context, scope Scope, pageID int64) error {
	if !scope.Authenticated {
		return ErrForbidden
	}

	canEdit, err := p.pages.CanEdit(ctx, pageID, scope.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*pageService.authorize").Int64("page_id", pageID).
			Int64("user_id", scope.UserID).Msg("error checking edit rights")
		return err
	}
	if !canEdit {
		return ErrForbidden
	}

	return nil
}

func mapPageError(err error) error {
	if errors.Is(err, store.ErrPageNotFound) {
		return fmt.Errorf("%w: %w", ErrPageNotFound, err)
	}
	return err
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
	"github.com/jackc/pgerrcode"
)

// pageRepository is the SQL implementation of [PageRepository] over the
// "pages", "page_editors" and "page_fields" tables.
type pageRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPageRepository constructs a [PageRepository] backed by the provided
// database connection and logger.
func NewPageRepository(db *DB, logger *logger.Logger) PageRepository {
	logger.Debug().Msg("creating page repository")
	return &pageRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// GetPage retrieves the page with the given id or [ErrPageNotFound].
func (p *pageRepository) GetPage(ctx context.Context, pageID int64) (models.Page, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPageQuery(p.builder, pageID)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.GetPage").Msg("failed to build query")
		return models.Page{}, err
	}

	var page models.Page
	err = p.withRetry(ctx, "*pageRepository.GetPage", func() error {
		return p.QueryRowContext(ctx, query, args...).Scan(&page.ID, &page.Title, &page.OwnerID, &page.CreatedAt)
	})
	switch {
	case err == nil:
		return page, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.NoDataFound:
		return models.Page{}, ErrPageNotFound
	default:
		log.Err(err).Str("func", "*pageRepository.GetPage").Int64("page_id", pageID).Msg("error getting page")
		return models.Page{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// CanEdit reports whether userID may edit pageID. A missing page yields
// false without an error.
func (p *pageRepository) CanEdit(ctx context.Context, pageID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCanEditQuery(p.builder, pageID, userID)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.CanEdit").Msg("failed to build query")
		return false, err
	}

	var one int
	err = p.withRetry(ctx, "*pageRepository.CanEdit", func() error {
		return p.QueryRowContext(ctx, query, args...).Scan(&one)
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		log.Err(err).Str("func", "*pageRepository.CanEdit").
			Int64("page_id", pageID).Int64("user_id", userID).Msg("error checking edit rights")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// GetPageFields returns the live field values of the page. A page without
// stored fields yields an empty map.
func (p *pageRepository) GetPageFields(ctx context.Context, pageID int64) (models.Fields, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPageFieldsQuery(p.builder, pageID)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.GetPageFields").Msg("failed to build query")
		return nil, err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.GetPageFields").Int64("page_id", pageID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	fields := make(models.Fields)
	for rows.Next() {
		var name, value string
		if scanErr := rows.Scan(&name, &value); scanErr != nil {
			log.Err(scanErr).Str("func", "*pageRepository.GetPageFields").Int64("page_id", pageID).
				Msg("failed to scan page field row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		fields[name] = value
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*pageRepository.GetPageFields").Int64("page_id", pageID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return fields, nil
}

// SavePageFields upserts every field of the page inside one transaction.
// Fields absent from the map are left untouched.
func (p *pageRepository) SavePageFields(ctx context.Context, pageID int64, fields models.Fields) error {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return nil
	}

	query, args, err := buildUpsertPageFieldsQuery(p.builder, pageID, fields, p.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.SavePageFields").Msg("failed to build query")
		return err
	}

	err = p.withRetry(ctx, "*pageRepository.SavePageFields", func() error {
		return p.savePageFields(ctx, pageID, len(fields), query, args)
	})
	if err != nil {
		return err
	}

	log.Debug().Str("func", "*pageRepository.SavePageFields").Int64("page_id", pageID).
		Int("count", len(fields)).Msg("page fields saved")

	return nil
}

// savePageFields runs the upsert in its own transaction so that a failed
// attempt is rolled back before withRetry repeats it.
func (p *pageRepository) savePageFields(ctx context.Context, pageID int64, count int, query string, args []any) error {
	log := logger.FromContext(ctx)

	tx, err := p.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.savePageFields").Int64("page_id", pageID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*pageRepository.savePageFields").Int64("page_id", pageID).
			Int("count", count).Msg("failed to upsert page fields")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrPageNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*pageRepository.savePageFields").Int64("page_id", pageID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

package store

import (
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-draft-keeper/models"
)

const (
	pagesTable       = "pages"
	usersTable       = "users"
	pageFieldsTable  = "page_fields"
	pageEditorsTable = "page_editors"
)

var userColumns = []string{"user_id", "login", "name", "password_hash", "is_admin", "created_at"}

const upsertPageFieldSuffix = "ON CONFLICT (page_id, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

func buildGetPageQuery(b sq.StatementBuilderType, pageID int64) (string, []any, error) {
	query, args, err := b.
		Select("page_id", "title", "owner_id", "created_at").
		From(pagesTable).
		Where(sq.Eq{"page_id": pageID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCanEditQuery selects one row when userID owns the page, is listed
// as one of its editors, or is an administrator.
func buildCanEditQuery(b sq.StatementBuilderType, pageID, userID int64) (string, []any, error) {
	query, args, err := b.
		Select("1").
		From(pagesTable).
		Where(sq.Eq{"page_id": pageID}).
		Where(sq.Or{
			sq.Eq{"owner_id": userID},
			sq.Expr("EXISTS (SELECT 1 FROM "+pageEditorsTable+" e WHERE e.page_id = pages.page_id AND e.user_id = ?)", userID),
			sq.Expr("EXISTS (SELECT 1 FROM "+usersTable+" u WHERE u.user_id = ? AND u.is_admin)", userID),
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetPageFieldsQuery(b sq.StatementBuilderType, pageID int64) (string, []any, error) {
	query, args, err := b.
		Select("name", "value").
		From(pageFieldsTable).
		Where(sq.Eq{"page_id": pageID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertPageFieldsQuery builds one multi-row upsert for fields. Keys
// are emitted in sorted order so the statement is stable.
func buildUpsertPageFieldsQuery(b sq.StatementBuilderType, pageID int64, fields models.Fields, now time.Time) (string, []any, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	insert := b.
		Insert(pageFieldsTable).
		Columns("page_id", "name", "value", "updated_at")
	for _, name := range names {
		insert = insert.Values(pageID, name, fields[name], now)
	}

	query, args, err := insert.Suffix(upsertPageFieldSuffix).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

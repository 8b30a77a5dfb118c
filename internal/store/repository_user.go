package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the SQL implementation of [UserRepository]. It reads
// editor accounts from the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// GetUser retrieves the user with the given id.
//
// Error handling:
//   - no row (or PostgreSQL no_data_found) → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("failed to build query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.withRetry(ctx, "*userRepository.GetUser", func() (scanErr error) {
		user, scanErr = r.scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.GetUser").Int64("user_id", userID).
				Msg("error getting user")
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByLogin retrieves the user whose Login matches login.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByLoginQuery(r.db.builder, login)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("failed to build query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.withRetry(ctx, "*userRepository.FindUserByLogin", func() (scanErr error) {
		user, scanErr = r.scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByLogin").
				Msg("error finding user by login")
		}
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Login, &user.Name, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.NoDataFound:
		return models.User{}, ErrUserNotFound
	default:
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

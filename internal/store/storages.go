package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

// Storages groups every persistence dependency of the services.
type Storages struct {
	PageRepository      PageRepository
	UserRepository      UserRepository
	DraftStorage        DraftStorage
	CookieShadowStorage CookieShadowStorage

	db    *DB
	redis *redis.Client
}

// NewStorages connects the directory database, applies migrations and opens
// the staging area: Redis when a URL is configured, the staging directory
// otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, rescue config.Rescue, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting directory database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		PageRepository: NewPageRepository(db, log),
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}

	var staging StagingArea
	if cfg.Staging.RedisURL != "" {
		client, redisErr := ConnectRedis(ctx, cfg.Staging.RedisURL, log)
		if redisErr != nil {
			_ = db.Close()
			return nil, redisErr
		}
		storages.redis = client
		staging = NewRedisStaging(client, max(rescue.UserCookieTTL, rescue.DraftTTL), log)
	} else {
		staging, err = NewFileStaging(cfg.Staging.Dir, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	storages.DraftStorage = NewDraftStorage(staging, log)
	storages.CookieShadowStorage = NewCookieShadowStorage(staging, log)

	return storages, nil
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}

	return errors.Join(errs...)
}

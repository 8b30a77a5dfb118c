package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

const (
	redisDataField  = "data"
	redisMTimeField = "mtime"

	// redisKeyPrefix namespaces staging entries inside a shared database.
	redisKeyPrefix = "draft-keeper:staging:"

	redisScanBatchSize = 100

	redisConnectAttempts = 3
	redisRetryInterval   = time.Second
)

// Redis connection errors.
var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given attempts")
)

// redisStaging is the Redis-backed [StagingArea]. Each entry is a hash with
// the payload and its modification time in unix nanoseconds; a key TTL
// backs up the sweep.
type redisStaging struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
	now    func() time.Time
}

// ConnectRedis parses url, connects and pings with a few retries.
func ConnectRedis(ctx context.Context, url string, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Err(err).Str("func", "ConnectRedis").Msg("error parsing redis url")
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseRedisConnString, err)
	}

	client := redis.NewClient(opts)

	var pingErr error
	for attempt := 1; attempt <= redisConnectAttempts; attempt++ {
		if pingErr = client.Ping(ctx).Err(); pingErr == nil {
			log.Info().Str("func", "ConnectRedis").Msg("connected to redis successfully")
			return client, nil
		}

		log.Warn().Err(pingErr).Str("func", "ConnectRedis").Int("attempt", attempt).Msg("redis is not ready")

		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, fmt.Errorf("%w: %w", ErrRedisNotReady, ctx.Err())
		case <-time.After(redisRetryInterval * time.Duration(attempt)):
		}
	}

	_ = client.Close()
	return nil, fmt.Errorf("%w: %w", ErrRedisNotReady, pingErr)
}

// NewRedisStaging returns a [StagingArea] over client. Entries expire after
// ttl even if no sweep runs.
func NewRedisStaging(client *redis.Client, ttl time.Duration, log *logger.Logger) StagingArea {
	log.Debug().Str("func", "NewRedisStaging").Dur("ttl", ttl).Msg("redis staging area ready")
	return &redisStaging{client: client, ttl: ttl, logger: log, now: time.Now}
}

func (s *redisStaging) key(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidStagingName, name)
	}

	return redisKeyPrefix + name, nil
}

func (s *redisStaging) Write(ctx context.Context, name string, data []byte) error {
	key, err := s.key(name)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, redisDataField, data, redisMTimeField, s.now().UnixNano())
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStagingIO, err)
	}

	return nil
}

func (s *redisStaging) Read(ctx context.Context, name string) ([]byte, time.Time, error) {
	key, err := s.key(name)
	if err != nil {
		return nil, time.Time{}, err
	}

	values, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrStagingIO, err)
	}

	data, ok := values[redisDataField]
	if !ok {
		return nil, time.Time{}, ErrStagingEntryNotFound
	}

	return []byte(data), parseUnixNano(values[redisMTimeField]), nil
}

func (s *redisStaging) Remove(ctx context.Context, name string) error {
	key, err := s.key(name)
	if err != nil {
		return err
	}

	if err = s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStagingIO, err)
	}

	return nil
}

func (s *redisStaging) List(ctx context.Context, prefix string) ([]StagingEntry, error) {
	entries := make([]StagingEntry, 0)

	iter := s.client.Scan(ctx, 0, redisKeyPrefix+prefix+"*", redisScanBatchSize).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		mtime, err := s.client.HGet(ctx, key, redisMTimeField).Result()
		if errors.Is(err, redis.Nil) {
			// expired or removed between SCAN and HGET
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStagingIO, err)
		}

		entries = append(entries, StagingEntry{
			Name:    key[len(redisKeyPrefix):],
			ModTime: parseUnixNano(mtime),
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStagingIO, err)
	}

	return entries, nil
}

// parseUnixNano treats a missing or corrupt timestamp as the zero time, so
// the entry looks infinitely old and is swept first.
func parseUnixNano(s string) time.Time {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.Unix(0, n)
}

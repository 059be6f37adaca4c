package viewcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"invoice-dashboard/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const (
	viewKeyPrefix = "view:"
	genKeyPrefix  = "view-gen:"
)

var errStaleRender = errors.New("view invalidated while rendering")

// RedisStore keeps each view path in a hash keyed by variant.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func viewKey(path string) string {
	return viewKeyPrefix + path
}

func genKey(path string) string {
	return genKeyPrefix + path
}

func (s *RedisStore) Get(ctx context.Context, path, variant string) (Entry, bool) {
	data, err := s.client.HGet(ctx, viewKey(path), variant).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("view cache read failed", "path", path, "error", err.Error())
		}
		return Entry{}, false
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		slog.Warn("view cache entry is corrupt", "path", path, "error", err.Error())
		return Entry{}, false
	}
	return e, true
}

func (s *RedisStore) Generation(ctx context.Context, path string) (Generation, bool) {
	n, err := s.client.Get(ctx, genKey(path)).Uint64()
	if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("view cache generation read failed", "path", path, "error", err.Error())
		return 0, false
	}
	return Generation(n), true
}

// Set watches the generation key so an Invalidate landing between the check
// and the write aborts the transaction.
func (s *RedisStore) Set(ctx context.Context, path, variant string, gen Generation, e Entry) bool {
	data, err := json.Marshal(e)
	if err != nil {
		slog.Warn("failed to encode view cache entry", "path", path, "error", err.Error())
		return false
	}

	key, gk := viewKey(path), genKey(path)
	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, gk).Uint64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if Generation(cur) != gen {
			return errStaleRender
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, variant, data)
			if s.ttl > 0 {
				pipe.Expire(ctx, key, s.ttl)
			}
			return nil
		})
		return err
	}, gk)

	switch {
	case err == nil:
		return true
	case errors.Is(err, errStaleRender), errors.Is(err, redis.TxFailedErr):
		slog.Debug("stale view render discarded", "path", path)
	default:
		slog.Warn("view cache write failed", "path", path, "error", err.Error())
	}
	return false
}

func (s *RedisStore) Invalidate(ctx context.Context, path string) {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey(path))
		pipe.Del(ctx, viewKey(path))
		return nil
	})
	if err != nil {
		slog.Error("view cache invalidation failed", "path", path, "error", err.Error())
		return
	}
	slog.Debug("view invalidated", "path", path)
}

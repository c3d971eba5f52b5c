package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/infra"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "keystore:session:"

// RedisStore shares associations between restarts and instances.
// A zero ttl keeps entries forever.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Connect accepts both redis:// URLs and plain host:port addresses.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse redis url: %w", parseErr)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*key.SessionKey, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.NewErr(infra.KindNotFound, "session key not found", nil)
		}
		return nil, infra.WrapErr(s.logger, infra.KindStoreFailure, "redis get session key", err)
	}

	sk, err := decode(raw)
	if err != nil {
		return nil, infra.WrapErr(s.logger, infra.KindStoreFailure, "decode session key", err)
	}
	return sk, nil
}

func (s *RedisStore) Put(ctx context.Context, sk *key.SessionKey) error {
	raw, err := encode(sk)
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindStoreFailure, "encode session key", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+sk.SessionID, raw, s.ttl).Err(); err != nil {
		return infra.WrapErr(s.logger, infra.KindStoreFailure, "redis set session key", err)
	}
	return nil
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/domain"

	apperrors "github.com/kapu/contract-assistant-go/pkg/errors"
)

const redisKeyPrefix = "session:"

// RedisStore persists conversation contexts in Redis with a TTL matching the
// retention period, so Cleanup is handled by Redis itself.
type RedisStore struct {
	client    *redis.Client
	retention time.Duration
	logger    *zap.Logger
}

func NewRedisStore(addr, password string, db int, retention time.Duration, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, apperrors.NewStoreError("failed to connect to redis", "ping", addr, err)
	}

	logger.Info("Connected to Redis session store", zap.String("addr", addr))
	return &RedisStore{
		client:    client,
		retention: retention,
		logger:    logger,
	}, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.ConversationContext, bool, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewStoreError("failed to read session", "get", sessionID, err)
	}

	var conv domain.ConversationContext
	if err := json.Unmarshal(data, &conv); err != nil {
		return nil, false, apperrors.NewStoreError("failed to decode session", "get", sessionID, err)
	}
	return &conv, true, nil
}

func (s *RedisStore) Put(ctx context.Context, conv *domain.ConversationContext) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return apperrors.NewStoreError("failed to encode session", "put", conv.SessionID, err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+conv.SessionID, data, s.retention).Err(); err != nil {
		return apperrors.NewStoreError("failed to write session", "put", conv.SessionID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
		return apperrors.NewStoreError("failed to delete session", "delete", sessionID, err)
	}
	return nil
}

// Cleanup is a no-op: Redis evicts sessions via key TTL
func (s *RedisStore) Cleanup(_ context.Context) (int, error) {
	return 0, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

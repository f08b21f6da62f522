// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/storage"
	"github.com/hubsign/landing-service/internal/tracing"
	"github.com/hubsign/landing-service/internal/types"
)

var _ TokenStoreInterface = (*RedisStore)(nil)

const keyPrefix = "magiclink:"

// KEYS[1] token key, ARGV: payload, issued_at ms, expires_at ms, key expiry ms
var createScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return 0
end
redis.call('HSET', KEYS[1], 'data', ARGV[1], 'issued_at', ARGV[2], 'expires_at', ARGV[3], 'consumed', '0')
redis.call('PEXPIREAT', KEYS[1], ARGV[4])
return 1
`)

// KEYS[1] token key, ARGV[1] now ms
var consumeScript = redis.NewScript(`
local v = redis.call('HMGET', KEYS[1], 'data', 'issued_at', 'expires_at', 'consumed')
if not v[1] then
  return {'not_found'}
end
local now = tonumber(ARGV[1])
if now < tonumber(v[2]) or now > tonumber(v[3]) then
  return {'expired'}
end
if v[4] == '1' then
  return {'consumed'}
end
redis.call('HSET', KEYS[1], 'consumed', '1', 'consumed_at', ARGV[1])
return {'ok', v[1]}
`)

// redisPayload holds the immutable part of a token, the validity window and the
// consumed flag live in their own hash fields so the consume script never decodes json
type redisPayload struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	TargetInstanceURL string    `json:"target_instance_url"`
	IssuedAt          time.Time `json:"issued_at"`
	ExpiresAt         time.Time `json:"expires_at"`
}

type RedisStore struct {
	client *redis.Client
	grace  time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func tokenKey(hash string) string {
	return keyPrefix + hash
}

func (r *RedisStore) Create(ctx context.Context, token *types.MagicLinkToken) error {
	ctx, span := r.tracer.Start(ctx, "tokenstore.RedisStore.Create")
	defer span.End()

	if token.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate token ID: %w", err)
		}
		token.ID = id.String()
	}

	payload, err := json.Marshal(redisPayload{
		ID:                token.ID,
		Email:             token.Email,
		TargetInstanceURL: token.TargetInstanceURL,
		IssuedAt:          token.IssuedAt,
		ExpiresAt:         token.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	created, err := createScript.Run(
		ctx,
		r.client,
		[]string{tokenKey(token.TokenHash)},
		string(payload),
		token.IssuedAt.UnixMilli(),
		token.ExpiresAt.UnixMilli(),
		token.ExpiresAt.Add(r.grace).UnixMilli(),
	).Int()

	if err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	if created == 0 {
		return storage.ErrDuplicateKey
	}

	return nil
}

func (r *RedisStore) Consume(ctx context.Context, tokenHash string, now time.Time) (*types.MagicLinkToken, error) {
	ctx, span := r.tracer.Start(ctx, "tokenstore.RedisStore.Consume")
	defer span.End()

	res, err := consumeScript.Run(ctx, r.client, []string{tokenKey(tokenHash)}, now.UnixMilli()).Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to consume token: %w", err)
	}

	if len(res) == 0 {
		return nil, fmt.Errorf("failed to consume token: empty script reply")
	}

	switch res[0] {
	case "ok":
	case "not_found":
		return nil, storage.ErrNotFound
	case "expired":
		return nil, storage.ErrExpired
	case "consumed":
		return nil, storage.ErrAlreadyConsumed
	default:
		return nil, fmt.Errorf("failed to consume token: unexpected script reply %v", res[0])
	}

	if len(res) < 2 {
		return nil, fmt.Errorf("failed to consume token: malformed script reply")
	}

	raw, ok := res[1].(string)
	if !ok {
		return nil, fmt.Errorf("failed to consume token: malformed script reply")
	}

	var p redisPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	consumedAt := time.UnixMilli(now.UnixMilli())

	return &types.MagicLinkToken{
		ID:                p.ID,
		TokenHash:         tokenHash,
		Email:             p.Email,
		TargetInstanceURL: p.TargetInstanceURL,
		IssuedAt:          p.IssuedAt,
		ExpiresAt:         p.ExpiresAt,
		Consumed:          true,
		ConsumedAt:        &consumedAt,
	}, nil
}

// Ping checks the connection and reports it as the redis dependency availability
func (r *RedisStore) Ping(ctx context.Context) error {
	err := r.client.Ping(ctx).Err()

	available := 1.0
	if err != nil {
		available = 0
	}

	if merr := r.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, available); merr != nil {
		r.logger.Debugf("failed to set redis availability metric: %v", merr)
	}

	return err
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// NewRedisClient builds the client used by RedisStore
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisStore(client *redis.Client, grace time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisStore {
	r := new(RedisStore)

	r.client = client
	r.grace = grace

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}


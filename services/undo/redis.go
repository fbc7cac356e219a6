package undo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shiftsync/models"
	"shiftsync/utils"

	"github.com/go-redis/redis/v8"
)

// RedisLedger stores each session's batches as a Redis list of JSON documents.
type RedisLedger struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLedger(client *redis.Client, ttl time.Duration) *RedisLedger {
	return &RedisLedger{client: client, ttl: ttl}
}

func ledgerKey(sessionID string) string {
	return utils.UndoPrefix + sessionID
}

// Append pushes batch to the tail of the list and refreshes its TTL.
func (l *RedisLedger) Append(ctx context.Context, sessionID string, batch models.UndoBatch) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal undo batch: %w", err)
	}
	key := ledgerKey(sessionID)
	pipe := l.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if l.ttl > 0 {
		pipe.Expire(ctx, key, l.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append undo batch: %w", err)
	}
	return nil
}

// PopLast atomically removes the tail of the list.
func (l *RedisLedger) PopLast(ctx context.Context, sessionID string) (models.UndoBatch, error) {
	data, err := l.client.RPop(ctx, ledgerKey(sessionID)).Result()
	if err == redis.Nil {
		return models.UndoBatch{}, ErrNothingToUndo
	}
	if err != nil {
		return models.UndoBatch{}, fmt.Errorf("failed to pop undo batch: %w", err)
	}
	var batch models.UndoBatch
	if err := json.Unmarshal([]byte(data), &batch); err != nil {
		return models.UndoBatch{}, fmt.Errorf("failed to unmarshal undo batch: %w", err)
	}
	return batch, nil
}

func (l *RedisLedger) Len(ctx context.Context, sessionID string) (int, error) {
	n, err := l.client.LLen(ctx, ledgerKey(sessionID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count undo batches: %w", err)
	}
	return int(n), nil
}

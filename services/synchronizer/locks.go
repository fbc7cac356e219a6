package synchronizer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shiftsync/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Locker serializes work on a key.
type Locker interface {
	// Lock blocks until key is held or ctx is done. The returned func releases it.
	Lock(ctx context.Context, key string) (func(), error)
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

// MemoryLocker is an in-process keyed mutex.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*keyLock)}
}

func (m *MemoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	kl, ok := m.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		m.locks[key] = kl
	}
	kl.refs++
	m.mu.Unlock()

	select {
	case kl.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-kl.ch
				m.release(key, kl)
			})
		}, nil
	case <-ctx.Done():
		m.release(key, kl)
		return nil, ctx.Err()
	}
}

func (m *MemoryLocker) release(key string, kl *keyLock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(m.locks, key)
	}
}

// held reports how many keys have holders or waiters.
func (m *MemoryLocker) held() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// RedisLocker holds keys with SET NX so every instance sharing the Redis sees the lock.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	poll   time.Duration
	logger *zap.Logger
}

func NewRedisLocker(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisLocker {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &RedisLocker{client: client, ttl: ttl, poll: 50 * time.Millisecond, logger: logger}
}

func (r *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := utils.LockPrefix + key
	token := uuid.New().String()
	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			var once sync.Once
			return func() {
				once.Do(func() { r.release(redisKey, token) })
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.poll):
		}
	}
}

// release deletes redisKey if token still owns it. A failed release leaves the key to expire with its TTL.
func (r *RedisLocker) release(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, r.client, []string{redisKey}, token).Err(); err != nil {
		r.logger.Warn("Failed to release lock", zap.String("key", redisKey), zap.Duration("ttl", r.ttl), zap.Error(err))
	}
}

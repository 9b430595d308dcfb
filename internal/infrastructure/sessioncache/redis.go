// Package sessioncache persists the small recoverable slice of a session
// (identity, resolved profile, whether the profile check ran) in Redis so
// a restarted instance can rebuild controllers without re-hitting the
// upstream API. Redis being down never breaks a request; the cache just
// bypasses itself.
package sessioncache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-jobmatch/internal/session"
)

type Redis struct {
	client *redis.Client
	logger *log.Logger
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

// NewRedis connects using REDIS_HOST/REDIS_PORT/REDIS_PASSWORD. When the
// ping fails the returned cache is a no-op that logs once.
func NewRedis(logger *log.Logger) *Redis {
	host := strings.TrimSpace(os.Getenv("REDIS_HOST"))
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(os.Getenv("REDIS_PORT"))
	if port == "" {
		port = "6379"
	}
	pass := strings.TrimSpace(os.Getenv("REDIS_PASSWORD"))

	addr := fmt.Sprintf("%s:%s", host, port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[SessionCache] Redis unavailable, bypassing cache: %v", err)
		}
		_ = client.Close()
		return &Redis{client: nil, logger: logger, ttl: DefaultTTLFromEnv()}
	}

	return &Redis{client: client, logger: logger, ttl: DefaultTTLFromEnv()}
}

// NewRedisWithClient wires an existing client, used by tests.
func NewRedisWithClient(client *redis.Client, ttl time.Duration, logger *log.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTLFromEnv()
	}
	return &Redis{client: client, logger: logger, ttl: ttl}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[SessionCache] Redis unavailable, bypassing cache: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func key(sid string) string { return "session:" + sid }

// Load fetches a session record. A miss, an unavailable Redis, or a
// decode failure all report found=false; the caller rebuilds from the
// upstream API.
func (r *Redis) Load(ctx context.Context, sid string) (session.Record, bool) {
	if r.isUnavailable() || sid == "" {
		return session.Record{}, false
	}
	b, err := r.client.Get(ctx, key(sid)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.warnUnavailableOnce(err)
		}
		return session.Record{}, false
	}
	var rec session.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return session.Record{}, false
	}
	return rec, true
}

// Save writes a session record under the configured TTL. Errors are
// swallowed after the one-time warning; the session keeps working from
// memory.
func (r *Redis) Save(ctx context.Context, sid string, rec session.Record) {
	if r.isUnavailable() || sid == "" {
		return
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key(sid), b, r.ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
	}
}

// Drop removes a session record, used on logout and account deletion.
func (r *Redis) Drop(ctx context.Context, sid string) {
	if r.isUnavailable() || sid == "" {
		return
	}
	if err := r.client.Del(ctx, key(sid)).Err(); err != nil {
		r.warnUnavailableOnce(err)
	}
}

// DefaultTTLFromEnv reads SESSION_TTL in seconds, defaulting to one day.
func DefaultTTLFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("SESSION_TTL"))
	if raw == "" {
		return 24 * time.Hour
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(v) * time.Second
}

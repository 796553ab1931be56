package prefs

import (
	"context"
	"crypto/tls"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tasktidy:pref:"

// Redis stores preferences as plain string keys.
type Redis struct {
	rc *redis.Client
}

// OpenRedis connects using either a redis:// URL or a
// "host:port,password=...,ssl=true" connection string.
func OpenRedis(ctx context.Context, conn string) (*Redis, error) {
	conn = strings.TrimSpace(conn)
	if conn == "" {
		return nil, errors.New("redis connection string is empty")
	}
	r := NewRedis(redis.NewClient(parseRedisOptions(conn)))
	if err := r.rc.Ping(ctx).Err(); err != nil {
		_ = r.rc.Close()
		return nil, err
	}
	return r, nil
}

func NewRedis(rc *redis.Client) *Redis {
	return &Redis{rc: rc}
}

func parseRedisOptions(conn string) *redis.Options {
	if opts, err := redis.ParseURL(conn); err == nil {
		return opts
	}
	parts := strings.Split(conn, ",")
	opts := &redis.Options{Addr: strings.TrimSpace(parts[0])}
	for _, p := range parts[1:] {
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(kv[0])) {
		case "password":
			opts.Password = kv[1]
		case "ssl":
			if strings.EqualFold(strings.TrimSpace(kv[1]), "true") {
				opts.TLSConfig = &tls.Config{}
			}
		}
	}
	return opts
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rc.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.rc.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (r *Redis) Close() error { return r.rc.Close() }

package caching

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/noordwind/Coolector-Common/types"
)

// Settings describe how to reach Redis and whether caching is on at all.
type Settings struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int

	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadSettings reads Settings from the environment. Any files given are
// loaded first with godotenv; variables already set in the environment win.
// Missing files are ignored.
func LoadSettings(files ...string) (Settings, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("caching: load %s: %w", f, err)
		}
	}

	var s Settings
	var err error
	if s.Enabled, err = envBool("REDIS_ENABLED", false); err != nil {
		return Settings{}, err
	}
	s.Addr = envString("REDIS_ADDR", "localhost:6379")
	s.Password = os.Getenv("REDIS_PASSWORD")
	if s.DB, err = envInt("REDIS_DB", 0); err != nil {
		return Settings{}, err
	}
	if s.PoolSize, err = envInt("REDIS_POOL_SIZE", 0); err != nil {
		return Settings{}, err
	}
	if s.DialTimeout, err = envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second); err != nil {
		return Settings{}, err
	}
	if s.ReadTimeout, err = envDuration("REDIS_READ_TIMEOUT", 3*time.Second); err != nil {
		return Settings{}, err
	}
	if s.WriteTimeout, err = envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Connect opens a client for s and pings it. When caching is disabled it
// returns None without dialing. The caller owns the returned client.
func Connect(ctx context.Context, s Settings, log Logger) (types.Maybe[redis.UniversalClient], error) {
	log = coalesce[Logger](log, NopLogger{})
	if !s.Enabled {
		log.Info("redis cache disabled", nil)
		return types.None[redis.UniversalClient](), nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         s.Addr,
		Password:     s.Password,
		DB:           s.DB,
		PoolSize:     s.PoolSize,
		DialTimeout:  s.DialTimeout,
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return types.None[redis.UniversalClient](), fmt.Errorf("caching: connect to redis %s: %w", s.Addr, err)
	}
	log.Info("connected to redis", Fields{"addr": s.Addr, "db": s.DB})
	return types.Some[redis.UniversalClient](rdb), nil
}

// NewFromSettings connects per s and builds a cache that owns the client.
// opts.Client and opts.CloseClient are overwritten. A disabled s yields a
// cache with a closed availability gate.
func NewFromSettings(ctx context.Context, s Settings, opts Options) (*RedisCache, error) {
	client, err := Connect(ctx, s, opts.Logger)
	if err != nil {
		return nil, err
	}
	opts.Client, _ = client.Value()
	opts.CloseClient = client.HasValue()
	opts.Disabled = opts.Disabled || !s.Enabled
	return New(opts)
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("caching: %s: %w", key, err)
	}
	return b, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("caching: %s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("caching: %s: %w", key, err)
	}
	return d, nil
}

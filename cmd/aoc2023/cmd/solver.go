package cmd

import (
	"fmt"
	"log/slog"

	"github.com/go-redis/redis"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/answercache"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/config"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

// newSolver builds the registry and puts the configured cache in front of it.
// The returned close func releases the cache.
func newSolver(cfg config.Config) (puzzle.Solver, func() error, error) {
	registry := puzzle.NewRegistry(puzzle.Options{Limit: cfg.Day02.Limit()})

	var cache answercache.Cache
	switch cfg.Cache.Backend {
	case "none", "":
		return registry, func() error { return nil }, nil
	case "memory":
		cache = answercache.NewMemoryCache()
	case "local":
		local, err := answercache.NewLocalCache(cfg.Cache.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot create local answer cache: %w", err)
		}
		cache = local
	case "redis":
		cache = answercache.NewRedisCache(redis.Options{Addr: cfg.Cache.RedisAddr, DB: cfg.Cache.RedisDB}, cfg.Cache.TTL.Duration)
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}

	slog.Debug("answer cache enabled", "backend", cfg.Cache.Backend)
	return answercache.Cached(registry, cache), cache.Close, nil
}

// closeCache logs a failed close instead of returning it
func closeCache(closeFn func() error) {
	if err := closeFn(); err != nil {
		slog.Warn("cannot close answer cache", "err", err)
	}
}

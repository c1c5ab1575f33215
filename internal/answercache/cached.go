package answercache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

type cachedSolver struct {
	next  puzzle.Solver
	cache Cache
}

var _ puzzle.Solver = (*cachedSolver)(nil)

// Cached answers from the cache when possible and remembers new answers.
// A broken cache only costs a recomputation.
func Cached(next puzzle.Solver, cache Cache) puzzle.Solver {
	return &cachedSolver{next: next, cache: cache}
}

func (cs *cachedSolver) Solve(ctx context.Context, day puzzle.Day, part puzzle.Part, input []byte) (int, error) {
	key := NewKey(day, part, input)

	answer, err := cs.cache.Get(ctx, key)
	switch {
	case err == nil:
		slog.Info("answer taken from cache", "key", key)
		return answer, nil
	case !errors.Is(err, ErrNotCached):
		slog.Warn("answer cache lookup failed", "key", key, "err", err)
	}

	answer, err = cs.next.Solve(ctx, day, part, input)
	if err != nil {
		return 0, err
	}

	if err := cs.cache.Put(ctx, key, answer); err != nil {
		slog.Warn("cannot cache answer", "key", key, "err", err)
	}
	return answer, nil
}

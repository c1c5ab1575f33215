package answercache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strconv"
	"strings"
)

// localCache keeps one file per answer under rootDir
type localCache struct {
	rootDir string
}

var _ Cache = (*localCache)(nil)

func NewLocalCache(saveDir string) (Cache, error) {
	err := os.MkdirAll(saveDir, 0o700)
	if err != nil {
		return nil, err
	}
	return &localCache{
		rootDir: saveDir,
	}, nil
}

func (lc *localCache) fullpath(key Key) string {
	return path.Join(lc.rootDir, fmt.Sprintf("day%02d", key.Day), fmt.Sprintf("part%d", key.Part), key.Digest)
}

func (lc *localCache) Get(_ context.Context, key Key) (int, error) {
	fullpath := lc.fullpath(key)

	data, err := os.ReadFile(fullpath)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, ErrNotCached
	}
	if err != nil {
		return 0, fmt.Errorf("cannot read answer at %s, err: %w", fullpath, err)
	}

	answer, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("corrupted answer at %s, err: %w", fullpath, err)
	}
	slog.Debug("local answer found", "fullpath", fullpath, "answer", answer)
	return answer, nil
}

func (lc *localCache) Put(_ context.Context, key Key, answer int) error {
	fullpath := lc.fullpath(key)

	err := os.MkdirAll(path.Dir(fullpath), fs.FileMode(0o700))
	if err != nil {
		return fmt.Errorf("cannot mkdirall: %w", err)
	}

	err = os.WriteFile(fullpath, []byte(strconv.Itoa(answer)+"\n"), 0o600)
	if err != nil {
		return fmt.Errorf("cannot write answer at %s, err: %w", fullpath, err)
	}
	slog.Debug("local answer stored", "fullpath", fullpath, "answer", answer)
	return nil
}

func (lc *localCache) Close() error {
	return nil
}

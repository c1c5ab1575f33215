package answercache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

var ErrNotCached = errors.New("answer is not cached")

// Key identifies an answer: the puzzle and a digest of its input
type Key struct {
	Day    puzzle.Day
	Part   puzzle.Part
	Digest string
}

func NewKey(day puzzle.Day, part puzzle.Part, input []byte) Key {
	sum := sha256.Sum256(input)
	return Key{
		Day:    day,
		Part:   part,
		Digest: hex.EncodeToString(sum[:]),
	}
}

func (k Key) String() string {
	return fmt.Sprintf("answer:%d:%d:%s", k.Day, k.Part, k.Digest)
}

// Cache keeps answers which were already computed.
// Get returns ErrNotCached when there is no answer for the key.
type Cache interface {
	Get(context.Context, Key) (int, error)
	Put(context.Context, Key, int) error
	Close() error
}

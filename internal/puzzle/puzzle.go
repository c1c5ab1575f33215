package puzzle

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/day01"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/day02"
)

type Day int

type Part int

// Key identifies a single puzzle
type Key struct {
	Day  Day
	Part Part
}

func (k Key) String() string {
	return fmt.Sprintf("day %d part %d", k.Day, k.Part)
}

var ErrUnknownPuzzle = errors.New("unknown puzzle")

// ParseKey reads day and part given as text, e.g. from a query string.
func ParseKey(day, part string) (Key, error) {
	d, err := strconv.Atoi(day)
	if err != nil || d <= 0 {
		return Key{}, fmt.Errorf("%w: bad day %q", ErrUnknownPuzzle, day)
	}
	p, err := strconv.Atoi(part)
	if err != nil || p <= 0 {
		return Key{}, fmt.Errorf("%w: bad part %q", ErrUnknownPuzzle, part)
	}
	return Key{Day: Day(d), Part: Part(p)}, nil
}

// Solution computes the answer from the whole puzzle input.
type Solution func(r io.Reader) (int, error)

// Solver is anything that can answer a puzzle for the given input.
type Solver interface {
	Solve(ctx context.Context, day Day, part Part, input []byte) (int, error)
}

// Options tune solutions which depend on more than the input
type Options struct {
	Limit day02.Cubes
}

func DefaultOptions() Options {
	return Options{Limit: day02.DefaultLimit}
}

type Registry struct {
	solutions map[Key]Solution
}

var _ Solver = (*Registry)(nil)

func NewRegistry(opts Options) *Registry {
	return &Registry{
		solutions: map[Key]Solution{
			{Day: 1, Part: 1}: day01.Part1,
			{Day: 1, Part: 2}: day01.Part2,
			{Day: 2, Part: 1}: func(r io.Reader) (int, error) {
				return day02.Part1(r, opts.Limit)
			},
			{Day: 2, Part: 2}: day02.Part2,
		},
	}
}

func (r *Registry) Has(day Day, part Part) bool {
	_, found := r.solutions[Key{Day: day, Part: part}]
	return found
}

// List returns known puzzles ordered by day and part.
func (r *Registry) List() []Key {
	keys := make([]Key, 0, len(r.solutions))
	for k := range r.solutions {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		if a.Day != b.Day {
			return int(a.Day - b.Day)
		}
		return int(a.Part - b.Part)
	})
	return keys
}

func (r *Registry) Solve(ctx context.Context, day Day, part Part, input []byte) (int, error) {
	key := Key{Day: day, Part: part}
	solution, found := r.solutions[key]
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPuzzle, key)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	answer, err := solution(bytes.NewReader(input))
	if err != nil {
		return 0, fmt.Errorf("%s failed: %w", key, err)
	}
	slog.Info("puzzle solved", "day", day, "part", part, "answer", answer, "input_size", len(input))
	return answer, nil
}

//go:embed input
var samples embed.FS

// SampleInput returns the example input bundled for the puzzle. A part
// specific file wins over the one shared by the whole day.
func SampleInput(day Day, part Part) ([]byte, error) {
	candidates := []string{
		fmt.Sprintf("input/day%02d_part%d.txt", day, part),
		fmt.Sprintf("input/day%02d.txt", day),
	}
	for _, name := range candidates {
		data, err := samples.ReadFile(name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot read sample %s: %w", name, err)
		}
	}
	return nil, fmt.Errorf("%w: no sample input for %s", ErrUnknownPuzzle, Key{Day: day, Part: part})
}

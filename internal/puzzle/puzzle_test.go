package puzzle

import (
	"context"
	"testing"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/day02"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSamples(t *testing.T) {
	registry := NewRegistry(DefaultOptions())
	want := map[Key]int{
		{Day: 1, Part: 1}: 142,
		{Day: 1, Part: 2}: 281,
		{Day: 2, Part: 1}: 8,
		{Day: 2, Part: 2}: 2286,
	}

	require.Len(t, registry.List(), len(want))
	for _, key := range registry.List() {
		t.Run(key.String(), func(t *testing.T) {
			input, err := SampleInput(key.Day, key.Part)
			require.NoError(t, err)

			answer, err := registry.Solve(context.Background(), key.Day, key.Part, input)
			require.NoError(t, err)
			assert.Equal(t, want[key], answer)
		})
	}
}

func TestListIsOrdered(t *testing.T) {
	registry := NewRegistry(DefaultOptions())
	assert.Equal(t, []Key{{1, 1}, {1, 2}, {2, 1}, {2, 2}}, registry.List())
}

func TestCustomLimit(t *testing.T) {
	registry := NewRegistry(Options{Limit: day02.Cubes{Red: 100, Green: 100, Blue: 100}})
	input, err := SampleInput(2, 1)
	require.NoError(t, err)

	answer, err := registry.Solve(context.Background(), 2, 1, input)
	require.NoError(t, err)
	assert.Equal(t, 15, answer)
}

func TestUnknownPuzzle(t *testing.T) {
	registry := NewRegistry(DefaultOptions())
	assert.False(t, registry.Has(3, 1))
	assert.True(t, registry.Has(2, 2))

	_, err := registry.Solve(context.Background(), 3, 1, nil)
	assert.ErrorIs(t, err, ErrUnknownPuzzle)

	_, err = SampleInput(9, 1)
	assert.ErrorIs(t, err, ErrUnknownPuzzle)
}

func TestSolveMalformedInput(t *testing.T) {
	registry := NewRegistry(DefaultOptions())
	_, err := registry.Solve(context.Background(), 2, 2, []byte("Game one: 1 red"))
	assert.ErrorIs(t, err, day02.ErrMalformedRecord)
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRegistry(DefaultOptions()).Solve(ctx, 1, 1, []byte("12"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseKey(t *testing.T) {
	key, err := ParseKey("2", "1")
	require.NoError(t, err)
	assert.Equal(t, Key{Day: 2, Part: 1}, key)

	for _, bad := range [][2]string{{"", "1"}, {"x", "1"}, {"1", "0"}, {"-1", "1"}} {
		_, err := ParseKey(bad[0], bad[1])
		assert.ErrorIs(t, err, ErrUnknownPuzzle, "%v", bad)
	}
}

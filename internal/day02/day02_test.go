package day02

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func TestPart1Sample(t *testing.T) {
	sum, err := Part1(strings.NewReader(sampleInput), DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, 8, sum)
}

func TestPart2Sample(t *testing.T) {
	sum, err := Part2(strings.NewReader(sampleInput))
	require.NoError(t, err)
	assert.Equal(t, 2286, sum)
}

func TestSampleBounds(t *testing.T) {
	want := []Cubes{
		{Red: 4, Green: 2, Blue: 6},
		{Red: 1, Green: 3, Blue: 4},
		{Red: 20, Green: 13, Blue: 6},
		{Red: 14, Green: 3, Blue: 15},
		{Red: 6, Green: 3, Blue: 2},
	}
	for i, line := range strings.Split(sampleInput, "\n") {
		game, err := ParseGame(line)
		require.NoError(t, err)
		assert.Equal(t, i+1, game.ID)
		assert.Equal(t, want[i], game.Bound(), "game %d", game.ID)
	}
}

func TestLimitIsInclusive(t *testing.T) {
	assert.True(t, Cubes{Red: 12, Green: 13, Blue: 14}.Within(DefaultLimit))
	assert.False(t, Cubes{Red: 13}.Within(DefaultLimit))
	assert.False(t, Cubes{Blue: 15}.Within(DefaultLimit))
}

func TestPowerOfMissingColorIsZero(t *testing.T) {
	game, err := ParseGame("Game 7: 2 green; 3 blue")
	require.NoError(t, err)
	assert.Equal(t, 0, game.Bound().Power())
}

func TestTrailingNewlineAndCarriageReturn(t *testing.T) {
	sum, err := Part2(strings.NewReader("Game 1: 1 red, 2 green, 3 blue\r\n\nGame 2: 2 red, 2 green, 2 blue\n"))
	require.NoError(t, err)
	assert.Equal(t, 14, sum)
}

func TestMalformedLineAbortsRun(t *testing.T) {
	input := "Game 1: 1 red\nGame 2: 1 purple\nGame 3: 1 blue"

	_, err := Part1(strings.NewReader(input), DefaultLimit)
	require.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Part2(strings.NewReader(input))
	require.ErrorIs(t, err, ErrMalformedRecord)
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, verbose = "", false
	cfg = config.Default()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSolveBundledSamples(t *testing.T) {
	cases := []struct {
		day, part, want string
	}{
		{"1", "1", "The answer is: 142\n"},
		{"1", "2", "The answer is: 281\n"},
		{"2", "1", "The answer is: 8\n"},
		{"2", "2", "The answer is: 2286\n"},
	}
	for _, c := range cases {
		out, err := runCLI(t, "solve", "--day", c.day, "--part", c.part)
		require.NoError(t, err)
		assert.Equal(t, c.want, out)
	}
}

func TestSolveInputFileWithLocalCache(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("Game 3: 1 red, 2 green, 3 blue\n"), 0o600))

	cacheDir := filepath.Join(dir, "answers")
	configPath := filepath.Join(dir, "aoc.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[cache]\nbackend = \"local\"\ndir = \""+filepath.ToSlash(cacheDir)+"\"\n"), 0o600))

	for i := 0; i < 2; i++ {
		out, err := runCLI(t, "--config", configPath, "solve", "-d", "2", "-p", "2", input)
		require.NoError(t, err)
		assert.Equal(t, "The answer is: 6\n", out)
	}

	entries, err := os.ReadDir(filepath.Join(cacheDir, "day02", "part2"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSolveUnknownPuzzle(t *testing.T) {
	_, err := runCLI(t, "solve", "--day", "24", "--part", "1")
	assert.Error(t, err)
}

func TestSolveMissingInputFile(t *testing.T) {
	_, err := runCLI(t, "solve", "--day", "1", "--part", "1", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "aoc2023 v"+Version)
}

package day02

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
)

// Part1 sums IDs of the games that were possible with the given bag content.
func Part1(r io.Reader, limit Cubes) (int, error) {
	goodGamesSum := 0
	err := forEachGame(r, func(game Game) {
		bound := game.Bound()
		ok := bound.Within(limit)
		slog.Debug("game checked", "game", game.ID, "bound", bound, "possible", ok)
		if ok {
			goodGamesSum += game.ID
		}
	})
	if err != nil {
		return 0, err
	}
	return goodGamesSum, nil
}

// Part2 sums powers of the smallest bags for every game.
func Part2(r io.Reader) (int, error) {
	powerSum := 0
	err := forEachGame(r, func(game Game) {
		bound := game.Bound()
		slog.Debug("game bound", "game", game.ID, "bound", bound, "power", bound.Power())
		powerSum += bound.Power()
	})
	if err != nil {
		return 0, err
	}
	return powerSum, nil
}

// forEachGame stops at the first malformed line. Empty lines are skipped.
func forEachGame(r io.Reader, fn func(Game)) error {
	lines := bufio.NewScanner(r)
	for lineIx := 1; lines.Scan(); lineIx++ {
		line := lines.Text()
		if line == "" {
			continue
		}
		game, err := ParseGame(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineIx, err)
		}
		fn(game)
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("cannot read game log: %w", err)
	}
	return nil
}

package day01

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
)

// CalibrationValue combines the first and the last token into a two-digit
// number. A line without tokens is worth 0.
func CalibrationValue(tokens []Token) int {
	if len(tokens) == 0 {
		return 0
	}
	return 10*tokens[0].Value + tokens[len(tokens)-1].Value
}

// Part1 sums calibration values built from plain digits only.
func Part1(r io.Reader) (int, error) {
	return sumCalibration(r, ScanDigits)
}

// Part2 sums calibration values built from digits and spelled numbers.
func Part2(r io.Reader) (int, error) {
	return sumCalibration(r, Scan)
}

func sumCalibration(r io.Reader, scan func(string) []Token) (int, error) {
	sum := 0
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := lines.Text()
		lineNumber := CalibrationValue(scan(line))
		slog.Debug("calibration line", "line", line, "value", lineNumber)
		sum += lineNumber
	}
	if err := lines.Err(); err != nil {
		return 0, fmt.Errorf("cannot read calibration document: %w", err)
	}
	return sum, nil
}

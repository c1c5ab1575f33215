package day01

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const digitsInput = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet`

const wordsInput = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen`

func TestCalibrationValue(t *testing.T) {
	assert.Equal(t, 0, CalibrationValue(nil))
	assert.Equal(t, 77, CalibrationValue([]Token{{Value: 7}}))
	assert.Equal(t, 29, CalibrationValue([]Token{{Value: 2}, {Value: 1}, {Value: 9}}))
}

func TestPart1Sample(t *testing.T) {
	sum, err := Part1(strings.NewReader(digitsInput))
	require.NoError(t, err)
	assert.Equal(t, 142, sum)
}

func TestPart2Sample(t *testing.T) {
	sum, err := Part2(strings.NewReader(wordsInput))
	require.NoError(t, err)
	assert.Equal(t, 281, sum)
}

func TestLinesWithoutNumbersCountAsZero(t *testing.T) {
	sum, err := Part1(strings.NewReader("abc\n\nx9y\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 99, sum)

	sum, err = Part2(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, sum)
}

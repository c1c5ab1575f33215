package day01

import "strings"

// Token is a number 0..9 recognized in a line, Start and End are byte offsets
// of the recognized text, End is exclusive.
type Token struct {
	Value int
	Start int
	End   int
}

// numberWords is indexed by the value of the word
var numberWords = [...]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// Scan extracts digits and spelled numbers from the line, left to right.
// Spelled numbers may share their last letter with the next one, so "eightwo"
// gives 8 and 2. Everything unrecognized is skipped.
func Scan(line string) []Token {
	var tokens []Token
	for p := 0; p < len(line); {
		if isDigit(line[p]) {
			tokens = append(tokens, Token{Value: int(line[p] - '0'), Start: p, End: p + 1})
			p++
			continue
		}

		value, length := matchWord(line[p:])
		if length == 0 {
			p++
			continue
		}
		tokens = append(tokens, Token{Value: value, Start: p, End: p + length})
		// last letter of the word may start the next one
		p += length - 1
	}
	return tokens
}

// ScanDigits extracts only the ASCII digits of the line.
func ScanDigits(line string) []Token {
	var tokens []Token
	for p := 0; p < len(line); p++ {
		if isDigit(line[p]) {
			tokens = append(tokens, Token{Value: int(line[p] - '0'), Start: p, End: p + 1})
		}
	}
	return tokens
}

// matchWord returns the value and the length of the number word at the start
// of s, length is 0 when there is none.
func matchWord(s string) (int, int) {
	for value, word := range numberWords {
		if strings.HasPrefix(s, word) {
			return value, len(word)
		}
	}
	return 0, 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

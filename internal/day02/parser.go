package day02

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrMalformedRecord is matched by every error ParseGame returns
var ErrMalformedRecord = errors.New("malformed game record")

// Position of a problem within the parsed line. Offset is in bytes from the
// line start, Column starts at 1.
type Position struct {
	Offset int
	Column int
}

// MalformedRecordError describes a line that does not follow the game log
// grammar.
type MalformedRecordError struct {
	Line string
	Pos  Position
	Msg  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed game record at column %d: %s; line %q", e.Pos.Column, e.Msg, e.Line)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// whitespace is kept as a token, the grammar requires it in some places
var gameLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[a-zA-Z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[:;,]`},
	{Name: "Space", Pattern: `[ \t]+`},
})

// Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
type gameLine struct {
	ID      int           `"Game" Space @Int ":" Space?`
	Reveals []*revealLine `@@ ( ";" Space? @@ )*`
}

// 1 red, 2 green, 6 blue
type revealLine struct {
	Cubes []*cubeLine `@@ ( "," Space @@ )*`
}

// 4 red
type cubeLine struct {
	Pos lexer.Position

	Count int    `@Int Space`
	Color string `@Word`
}

var gameParser = participle.MustBuild[gameLine](
	participle.Lexer(gameLexer),
)

// ParseGame parses a single line of the game log. The whole line has to
// match, no partial game is ever returned.
func ParseGame(line string) (Game, error) {
	parsed, err := gameParser.ParseString("", line)
	if err != nil {
		return Game{}, malformed(line, err)
	}

	game := Game{
		ID:      parsed.ID,
		Reveals: make([]Cubes, 0, len(parsed.Reveals)),
	}
	for _, r := range parsed.Reveals {
		reveal, err := r.cubes(line)
		if err != nil {
			return Game{}, err
		}
		game.Reveals = append(game.Reveals, reveal)
	}
	return game, nil
}

func (r *revealLine) cubes(line string) (Cubes, error) {
	reveal := Cubes{}
	seen := make(map[string]bool, 3)
	for _, c := range r.Cubes {
		if seen[c.Color] {
			return Cubes{}, malformedAt(line, c.Pos, fmt.Sprintf("color %q repeated within one reveal", c.Color))
		}
		seen[c.Color] = true

		switch c.Color {
		case "red":
			reveal.Red = c.Count
		case "green":
			reveal.Green = c.Count
		case "blue":
			reveal.Blue = c.Count
		default:
			return Cubes{}, malformedAt(line, c.Pos, fmt.Sprintf("expected one of red, green or blue, but found %q", c.Color))
		}
	}
	return reveal, nil
}

func malformed(line string, err error) error {
	msg := err.Error()
	var perr participle.Error
	if errors.As(err, &perr) {
		msg = perr.Message()
		if perr.Position().Column > 0 {
			return malformedAt(line, perr.Position(), msg)
		}
	}
	// conversion errors of captured numbers come without a position
	return malformedAt(line, badNumberPos(line), msg)
}

// badNumberPos points at the first number which does not fit into an int,
// or at the line start when there is none
func badNumberPos(line string) lexer.Position {
	start := lexer.Position{Line: 1, Column: 1}
	lex, err := gameLexer.LexString("", line)
	if err != nil {
		return start
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return start
	}
	intType := gameLexer.Symbols()["Int"]
	for _, tok := range tokens {
		if tok.Type != intType {
			continue
		}
		if _, err := strconv.Atoi(tok.Value); err != nil {
			return tok.Pos
		}
	}
	return start
}

func malformedAt(line string, pos lexer.Position, msg string) error {
	return &MalformedRecordError{
		Line: line,
		Pos:  Position{Offset: pos.Offset, Column: pos.Column},
		Msg:  msg,
	}
}

package day02

// Cubes counts cubes of every color. It is used for a single reveal, for the
// bound of a whole game and for the limit games are checked against.
type Cubes struct {
	Red   int
	Green int
	Blue  int
}

// DefaultLimit is the bag content the elf asks about
var DefaultLimit = Cubes{Red: 12, Green: 13, Blue: 14}

// Max keeps the larger count of each color.
func (c Cubes) Max(other Cubes) Cubes {
	return Cubes{
		Red:   max(c.Red, other.Red),
		Green: max(c.Green, other.Green),
		Blue:  max(c.Blue, other.Blue),
	}
}

// Within checks that no color exceeds the limit.
func (c Cubes) Within(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Power of a set of cubes
func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

// Game is one parsed line of the game log.
type Game struct {
	ID      int
	Reveals []Cubes
}

// Bound is the smallest bag that makes every reveal of the game possible.
func (g Game) Bound() Cubes {
	bound := Cubes{}
	for _, reveal := range g.Reveals {
		bound = bound.Max(reveal)
	}
	return bound
}

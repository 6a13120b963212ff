// internal/deck/deck.go
package deck

import "math/rand"

// Color identifies one of the six board spaces. Declaration order is load
// bearing: it fixes both card identity and the board position index
// (Red = 0 .. Violet = 5).
type Color int

const (
	Red Color = iota
	Orange
	Yellow
	Green
	Blue
	Violet
)

const (
	// NumColors is the number of distinct colors, and also the number of
	// spaces on the board.
	NumColors = 6

	// CopiesPerColor is how many cards of each color a deck holds.
	CopiesPerColor = 2

	// Size is the total card count of a full deck.
	Size = NumColors * CopiesPerColor
)

var colorNames = [...]string{"Red", "Orange", "Yellow", "Green", "Blue", "Violet"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "Unknown"
	}
	return colorNames[c]
}

// Index returns the board position this color occupies.
func (c Color) Index() int { return int(c) }

// New returns a freshly shuffled deck: CopiesPerColor cards of each color in
// uniform random order. Fisher-Yates via rng.Shuffle keeps every ordering
// equiprobable.
func New(rng *rand.Rand) []Color {
	cards := make([]Color, 0, Size)
	for c := Red; c <= Violet; c++ {
		for i := 0; i < CopiesPerColor; i++ {
			cards = append(cards, c)
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

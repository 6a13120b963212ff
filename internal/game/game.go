// internal/game/game.go
package game

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/jason-s-yu/spectrum/internal/deck"
	"github.com/jason-s-yu/spectrum/internal/models"
)

// BoardSize is the number of spaces on the circular track. A token that
// reaches or passes index BoardSize-1 wins.
const BoardSize = deck.NumColors

// Game holds the entire state for a single simulated game: the tokens, the
// current deck with its draw cursor, and the global turn counter.
type Game struct {
	ID uuid.UUID

	Players []*models.Player

	Deck      []deck.Color
	deckIndex int

	// Turn increments once per completed draw-and-move. The player taking
	// turn t is always t mod len(Players).
	Turn int

	// NewDeck produces a replacement deck whenever the current one is
	// exhausted (and the initial deck on the first draw). Tests override it
	// to rig exact draw sequences.
	NewDeck func() []deck.Color

	// OnTurn, if set, is invoked after each move with the 0-based turn
	// number, the acting player's index, and the card drawn.
	OnTurn func(turn, player int, card deck.Color)
}

// New builds a game for numPlayers tokens, all starting at position 0,
// drawing shuffled decks from rng.
func New(numPlayers int, rng *rand.Rand) *Game {
	id, _ := uuid.NewRandom()
	g := &Game{
		ID:      id,
		NewDeck: func() []deck.Color { return deck.New(rng) },
	}
	g.Players = make([]*models.Player, numPlayers)
	for i := range g.Players {
		g.Players[i] = &models.Player{Index: i}
	}
	return g
}

// draw returns the next card, replenishing with a brand-new deck and
// resetting the cursor once the current one runs out.
func (g *Game) draw() deck.Color {
	if g.deckIndex >= len(g.Deck) {
		g.Deck = g.NewDeck()
		g.deckIndex = 0
	}
	card := g.Deck[g.deckIndex]
	g.deckIndex++
	return card
}

// Play runs the game to completion and returns the winner and the 1-based
// turn count. Every move is strictly forward, so some token reaches the
// finish with probability 1; no turn cap is enforced.
func (g *Game) Play() models.GameResult {
	for {
		p := g.Players[g.Turn%len(g.Players)]
		card := g.draw()

		// Advance to the next space of the drawn color, wrapping around the
		// board when that space is at or behind the token.
		if idx := card.Index(); idx > p.Position {
			p.Position = idx
		} else {
			p.Position = idx + BoardSize
		}

		if g.OnTurn != nil {
			g.OnTurn(g.Turn, p.Index, card)
		}

		if p.Position >= BoardSize-1 {
			return models.GameResult{GameID: g.ID, Winner: p.Index, Turns: g.Turn + 1}
		}
		g.Turn++
	}
}

package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	PairsPerDeck = 8
	DeckSize     = PairsPerDeck * 2
)

type Deck []Card

// BuildDeck returns a fresh deck holding two cards per symbol in an order
// drawn from rng. Card IDs equal their final positions.
func BuildDeck(symbols []Symbol, rng *rand.Rand) (Deck, error) {
	if err := ValidateSymbols(symbols); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	deck := make(Deck, 0, DeckSize)
	for _, symbol := range symbols {
		deck = append(deck, Card{Symbol: symbol}, Card{Symbol: symbol})
	}

	Shuffle(deck, rng)

	for i := range deck {
		deck[i].ID = CardID(i)
		deck[i].State = CardHidden
	}

	return deck, nil
}

// Shuffle permutes cards in place with Fisher–Yates.
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

func ValidateSymbols(symbols []Symbol) error {
	if len(symbols) != PairsPerDeck {
		return fmt.Errorf("%w: need %d symbols, got %d", ErrInvalidSymbolSet, PairsPerDeck, len(symbols))
	}

	seen := make(map[Symbol]struct{}, len(symbols))
	for _, symbol := range symbols {
		if strings.TrimSpace(string(symbol)) == "" {
			return fmt.Errorf("%w: empty symbol", ErrInvalidSymbolSet)
		}
		if _, ok := seen[symbol]; ok {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidSymbolSet, symbol)
		}
		seen[symbol] = struct{}{}
	}

	return nil
}

func (d Deck) Count(symbol Symbol) int {
	n := 0
	for _, card := range d {
		if card.Symbol == symbol {
			n++
		}
	}
	return n
}

func (d Deck) Clone() Deck {
	out := make(Deck, len(d))
	copy(out, d)
	return out
}

package domain

// CardID is the position of a card in its deck. The presentation layer maps
// it to whatever handle it renders.
type CardID int

type CardState int

const (
	CardHidden CardState = iota
	CardRevealed
	CardMatched
)

func (s CardState) String() string {
	switch s {
	case CardHidden:
		return "hidden"
	case CardRevealed:
		return "revealed"
	case CardMatched:
		return "matched"
	default:
		return "unknown"
	}
}

type Card struct {
	ID     CardID
	Symbol Symbol
	State  CardState
}

func (c Card) FaceUp() bool {
	return c.State == CardRevealed || c.State == CardMatched
}

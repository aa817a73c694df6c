package domain

type BestResult struct {
	Moves int          `json:"moves"`
	Time  TimeSnapshot `json:"time"`
}

// ImprovedBy reports whether a finished session with the given moves and time
// replaces b. A nil best is always improved on; equal moves need a strictly
// faster time.
func (b *BestResult) ImprovedBy(moves int, t TimeSnapshot) bool {
	if b == nil {
		return true
	}
	if moves != b.Moves {
		return moves < b.Moves
	}
	return t.Less(b.Time)
}

package domain

const (
	MaxStars = 3
	MinStars = 1

	// Moves above these counts cost one star each.
	SecondStarThreshold = 12
	FirstStarThreshold  = 17
)

// StarsFor returns the rating earned so far, never above current.
func StarsFor(moves, current int) int {
	stars := current
	if moves > SecondStarThreshold && stars > 2 {
		stars = 2
	}
	if moves > FirstStarThreshold && stars > MinStars {
		stars = MinStars
	}
	return stars
}

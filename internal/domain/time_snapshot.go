package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeSnapshot is a stopwatch reading.
type TimeSnapshot struct {
	Minutes    int `json:"minutes"`
	Seconds    int `json:"seconds"`
	Hundredths int `json:"hundredths"`
}

func (t TimeSnapshot) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Minutes, t.Seconds, t.Hundredths)
}

func (t TimeSnapshot) TotalHundredths() int64 {
	return int64(t.Minutes)*6000 + int64(t.Seconds)*100 + int64(t.Hundredths)
}

func (t TimeSnapshot) Less(other TimeSnapshot) bool {
	return t.TotalHundredths() < other.TotalHundredths()
}

// Encode renders the snapshot as "minutes,seconds,hundredths".
func (t TimeSnapshot) Encode() string {
	return fmt.Sprintf("%d,%d,%d", t.Minutes, t.Seconds, t.Hundredths)
}

func ParseTimeSnapshot(raw string) (TimeSnapshot, error) {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != 3 {
		return TimeSnapshot{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}

	values := make([]int, 0, 3)
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value < 0 {
			return TimeSnapshot{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
		}
		values = append(values, value)
	}

	snapshot := TimeSnapshot{Minutes: values[0], Seconds: values[1], Hundredths: values[2]}
	if snapshot.Seconds >= 60 || snapshot.Hundredths >= 100 {
		return TimeSnapshot{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}

	return snapshot, nil
}

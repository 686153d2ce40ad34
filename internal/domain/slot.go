package domain

import "time"

// Slot represents a bookable one-hour interval [Start, End)
type Slot struct {
	Start time.Time
	End   time.Time
}

// Interval полузакрытый временной интервал [Start, End).
// Используется как "занятый" интервал при расчёте доступности.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals actually overlap.
// Touching boundaries (one ends exactly where the other starts) do NOT
// count as an overlap.
func (i Interval) Overlaps(other Interval) bool {
	start := i.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := i.End
	if other.End.Before(end) {
		end = other.End
	}
	return start.Before(end)
}

package availability

// Interval is a half-open [Start, End) span in minutes since local midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether [startA, endA) and [startB, endB) intersect.
// Half-open on both sides: an interval ending exactly when another begins
// does not overlap.
func Overlaps(startA, endA, startB, endB int) bool {
	return max(startA, startB) < min(endA, endB)
}

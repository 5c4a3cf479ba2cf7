package availability

import (
	"testing"
	"time"
)

const (
	testTZ      = "Europe/London"
	testTZLabel = "UK Time"
)

// Monday 2025-03-03 is in GMT, so wall clock equals UTC in expectations.
func TestGenerateSlots_NoBusyWindows(t *testing.T) {
	open := []Interval{{Start: 540, End: 720}} // 09:00-12:00

	slots, err := GenerateSlots(open, BusyResult{}, 60, 60, "2025-03-03", testTZ, testTZLabel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLabels := []string{"09:00", "10:00", "11:00"}
	if len(slots) != len(wantLabels) {
		t.Fatalf("got %d slots, want %d", len(slots), len(wantLabels))
	}
	for i, want := range wantLabels {
		if slots[i].Label != want {
			t.Errorf("slot %d: got label %q, want %q", i, slots[i].Label, want)
		}
		if slots[i].TimezoneLabel != testTZLabel {
			t.Errorf("slot %d: got timezone label %q, want %q", i, slots[i].TimezoneLabel, testTZLabel)
		}
	}

	// No slot may start at 12:00: it would end past the open window.
	if slots[len(slots)-1].Start != "2025-03-03T11:00:00Z" {
		t.Errorf("last slot starts at %s, want 2025-03-03T11:00:00Z", slots[len(slots)-1].Start)
	}
}

func TestGenerateSlots_ConfirmedBookingExcludesSlot(t *testing.T) {
	open := []Interval{{Start: 540, End: 720}}
	busy := BusyResult{Windows: []Interval{{Start: 600, End: 660}}} // 10:00-11:00

	slots, err := GenerateSlots(open, busy, 60, 60, "2025-03-03", testTZ, testTZLabel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLabels := []string{"09:00", "11:00"}
	if len(slots) != len(wantLabels) {
		t.Fatalf("got %d slots, want %d", len(slots), len(wantLabels))
	}
	for i, want := range wantLabels {
		if slots[i].Label != want {
			t.Errorf("slot %d: got label %q, want %q", i, slots[i].Label, want)
		}
	}
}

func TestGenerateSlots_AllDayBlocked(t *testing.T) {
	open := []Interval{{Start: 540, End: 720}}
	busy := BusyResult{AllDayBlocked: true}

	slots, err := GenerateSlots(open, busy, 60, 60, "2025-03-03", testTZ, testTZLabel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on a blocked day, got %d", len(slots))
	}
}

func TestGenerateSlots_DurationFidelity(t *testing.T) {
	open := []Interval{{Start: 540, End: 720}}

	for _, duration := range []int{30, 45, 60, 90} {
		slots, err := GenerateSlots(open, BusyResult{}, duration, 60, "2025-03-03", testTZ, testTZLabel)
		if err != nil {
			t.Fatalf("duration %d: unexpected error: %v", duration, err)
		}
		for _, slot := range slots {
			start, err := time.Parse(time.RFC3339, slot.Start)
			if err != nil {
				t.Fatalf("bad start instant %q: %v", slot.Start, err)
			}
			end, err := time.Parse(time.RFC3339, slot.End)
			if err != nil {
				t.Fatalf("bad end instant %q: %v", slot.End, err)
			}
			if got := int(end.Sub(start).Minutes()); got != duration {
				t.Errorf("slot %s: got duration %d, want %d", slot.Label, got, duration)
			}
		}
	}
}

// Step stays at its configured cadence even when the duration is shorter:
// a 30-minute session is still only offered on the hour.
func TestGenerateSlots_StepDecoupledFromDuration(t *testing.T) {
	open := []Interval{{Start: 540, End: 720}}

	slots, err := GenerateSlots(open, BusyResult{}, 30, 60, "2025-03-03", testTZ, testTZLabel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLabels := []string{"09:00", "10:00", "11:00"}
	if len(slots) != len(wantLabels) {
		t.Fatalf("got %d slots, want %d", len(slots), len(wantLabels))
	}
	for i, want := range wantLabels {
		if slots[i].Label != want {
			t.Errorf("slot %d: got label %q, want %q", i, slots[i].Label, want)
		}
	}
}

func TestGenerateSlots_OverlappingRulesDeduplicated(t *testing.T) {
	// Two admin rules overlap over 10:00-12:00.
	open := []Interval{{Start: 540, End: 720}, {Start: 600, End: 780}}

	slots, err := GenerateSlots(open, BusyResult{}, 60, 60, "2025-03-03", testTZ, testTZLabel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]int)
	for _, slot := range slots {
		seen[slot.Start]++
	}
	for start, count := range seen {
		if count > 1 {
			t.Errorf("start %s emitted %d times", start, count)
		}
	}

	wantLabels := []string{"09:00", "10:00", "11:00", "12:00"}
	if len(slots) != len(wantLabels) {
		t.Fatalf("got %d slots, want %d", len(slots), len(wantLabels))
	}
}

// A slot on the BST side of the spring transition converts one UTC hour
// earlier than the same wall clock on the GMT side.
func TestGenerateSlots_DSTTransition(t *testing.T) {
	open := []Interval{{Start: 540, End: 600}} // 09:00-10:00

	winter, err := GenerateSlots(open, BusyResult{}, 60, 60, "2025-03-29", testTZ, testTZLabel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	summer, err := GenerateSlots(open, BusyResult{}, 60, 60, "2025-03-31", testTZ, testTZLabel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if winter[0].Start != "2025-03-29T09:00:00Z" {
		t.Errorf("winter slot starts at %s, want 2025-03-29T09:00:00Z", winter[0].Start)
	}
	if summer[0].Start != "2025-03-31T08:00:00Z" {
		t.Errorf("summer slot starts at %s, want 2025-03-31T08:00:00Z", summer[0].Start)
	}
	if winter[0].Label != "09:00" || summer[0].Label != "09:00" {
		t.Errorf("labels must stay at wall clock 09:00, got %q and %q", winter[0].Label, summer[0].Label)
	}
}

// Every returned slot must be disjoint from every busy window.
func TestGenerateSlots_NoOverlapProperty(t *testing.T) {
	open := []Interval{{Start: 480, End: 1020}}
	busy := BusyResult{Windows: []Interval{
		{Start: 510, End: 570},
		{Start: 600, End: 630},
		{Start: 720, End: 840},
		{Start: 955, End: 956},
	}}

	slots, err := GenerateSlots(open, busy, 45, 30, "2025-03-03", testTZ, testTZLabel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected at least one slot")
	}

	for _, slot := range slots {
		start, _ := time.Parse(time.RFC3339, slot.Start)
		startMin, err := InstantToZonedMinutes(start, "2025-03-03", testTZ)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, b := range busy.Windows {
			if Overlaps(startMin, startMin+45, b.Start, b.End) {
				t.Errorf("slot at %s overlaps busy window %+v", slot.Label, b)
			}
		}
	}
}

func TestGenerateSlots_EmptyOpenIntervals(t *testing.T) {
	slots, err := GenerateSlots(nil, BusyResult{}, 60, 60, "2025-03-03", testTZ, testTZLabel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Errorf("expected an empty, non-nil slot list, got %#v", slots)
	}
}

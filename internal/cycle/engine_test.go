package cycle

import (
	"testing"
	"time"

	"github.com/ryanthedev/cycle-cli/internal/state"
	"github.com/ryanthedev/cycle-cli/internal/types"
)

var baseTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// priorAt builds a prior state stamped at baseTime
func priorAt(index int, alignment types.Alignment) *state.CycleState {
	return &state.CycleState{
		Index:     index,
		Timestamp: float64(baseTime.UnixNano()) / float64(time.Second),
		Alignment: alignment,
	}
}

func TestNextIndexNoPriorState(t *testing.T) {
	for _, a := range []types.Alignment{types.AlignLeft, types.AlignTop, types.AlignCenter} {
		effective, next := NextIndex(nil, a, baseTime, 3)
		if effective != 1 {
			t.Errorf("alignment %s: effective = %d, want 1", a, effective)
		}
		if next != 2 {
			t.Errorf("alignment %s: next = %d, want 2", a, next)
		}
	}
}

func TestNextIndexMalformedPriorDegrades(t *testing.T) {
	// An index below 1 can only come from a corrupt record; it must
	// behave exactly like no state at all.
	bad := &state.CycleState{Index: 0, Timestamp: float64(baseTime.Unix()), Alignment: types.AlignLeft}

	effective, _ := NextIndex(bad, types.AlignLeft, baseTime, 3)
	if effective != 1 {
		t.Errorf("effective = %d, want 1", effective)
	}
}

func TestNextIndexResetOnTimeout(t *testing.T) {
	prior := priorAt(2, types.AlignLeft)

	now := baseTime.Add(5010 * time.Millisecond)
	effective, next := NextIndex(prior, types.AlignLeft, now, 3)
	if effective != 1 {
		t.Errorf("effective = %d, want 1 after timeout", effective)
	}
	if next != 2 {
		t.Errorf("next = %d, want 2", next)
	}
}

func TestNextIndexNoResetWithinWindow(t *testing.T) {
	prior := priorAt(2, types.AlignLeft)

	now := baseTime.Add(4990 * time.Millisecond)
	effective, next := NextIndex(prior, types.AlignLeft, now, 3)
	if effective != 2 {
		t.Errorf("effective = %d, want 2 within window", effective)
	}
	if next != 3 {
		t.Errorf("next = %d, want 3", next)
	}
}

func TestNextIndexResetOnAlignmentChange(t *testing.T) {
	prior := priorAt(3, types.AlignLeft)

	now := baseTime.Add(time.Second)
	effective, _ := NextIndex(prior, types.AlignRight, now, 3)
	if effective != 1 {
		t.Errorf("effective = %d, want 1 after alignment change", effective)
	}
}

func TestNextIndexWraparound(t *testing.T) {
	// n+1 rapid invocations cycle 1,2,...,n,1
	const n = 3
	var prior *state.CycleState
	now := baseTime

	want := []int{1, 2, 3, 1}
	for step, expected := range want {
		effective, next := NextIndex(prior, types.AlignLeft, now, n)
		if effective != expected {
			t.Fatalf("step %d: effective = %d, want %d", step, effective, expected)
		}

		prior = &state.CycleState{
			Index:     next,
			Timestamp: float64(now.UnixNano()) / float64(time.Second),
			Alignment: types.AlignLeft,
		}
		now = now.Add(time.Second)
	}
}

func TestNextIndexClampsToShorterSequence(t *testing.T) {
	// Persisted index 5 from a longer sequence, current sequence has 2
	// entries: ((5-1) mod 2) + 1 = 1
	prior := priorAt(5, types.AlignTop)

	effective, next := NextIndex(prior, types.AlignTop, baseTime.Add(time.Second), 2)
	if effective != 1 {
		t.Errorf("effective = %d, want 1", effective)
	}
	if next != 2 {
		t.Errorf("next = %d, want 2", next)
	}
}

func TestNextIndexAdvanceWrapsAtEnd(t *testing.T) {
	prior := priorAt(3, types.AlignLeft)

	effective, next := NextIndex(prior, types.AlignLeft, baseTime.Add(time.Second), 3)
	if effective != 3 {
		t.Errorf("effective = %d, want 3", effective)
	}
	if next != 1 {
		t.Errorf("next = %d, want 1 (wrap)", next)
	}
}

func TestNextIndexEmptySequence(t *testing.T) {
	effective, next := NextIndex(priorAt(2, types.AlignLeft), types.AlignLeft, baseTime, 0)
	if effective != 1 || next != 1 {
		t.Errorf("got (%d, %d), want (1, 1) for empty sequence", effective, next)
	}
}

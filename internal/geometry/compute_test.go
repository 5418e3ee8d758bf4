package geometry

import (
	"testing"

	"github.com/ryanthedev/cycle-cli/internal/catalog"
	"github.com/ryanthedev/cycle-cli/internal/types"
)

var monitor1 = catalog.Monitor{
	Name:   "primary",
	Width:  2560,
	Height: 1440,
}

func TestComputeLeft(t *testing.T) {
	got := Compute(monitor1, types.AlignLeft, 0.5, types.Rect{})

	want := types.Rect{X: 0, Y: 0, Width: 1280, Height: 1440}
	if got != want {
		t.Errorf("Compute(left, 0.5) = %+v, want %+v", got, want)
	}
}

func TestComputeRight(t *testing.T) {
	got := Compute(monitor1, types.AlignRight, 0.25, types.Rect{})

	want := types.Rect{X: 2560 * 0.75, Y: 0, Width: 640, Height: 1440}
	if got != want {
		t.Errorf("Compute(right, 0.25) = %+v, want %+v", got, want)
	}
}

func TestComputeCenter(t *testing.T) {
	got := Compute(monitor1, types.AlignCenter, 0.5, types.Rect{})

	want := types.Rect{X: 640, Y: 0, Width: 1280, Height: 1440}
	if got != want {
		t.Errorf("Compute(center, 0.5) = %+v, want %+v", got, want)
	}
}

func TestComputeTopPreservesWidth(t *testing.T) {
	current := types.Rect{X: 300, Y: 500, Width: 900, Height: 700}
	got := Compute(monitor1, types.AlignTop, 0.5, current)

	want := types.Rect{X: 300, Y: 0, Width: 900, Height: 720}
	if got != want {
		t.Errorf("Compute(top, 0.5) = %+v, want %+v", got, want)
	}
}

func TestComputeBottomPreservesWidth(t *testing.T) {
	current := types.Rect{X: 300, Y: 0, Width: 900, Height: 700}
	got := Compute(monitor1, types.AlignBottom, 0.5, current)

	want := types.Rect{X: 300, Y: 720, Width: 900, Height: 720}
	if got != want {
		t.Errorf("Compute(bottom, 0.5) = %+v, want %+v", got, want)
	}
}

func TestComputeOffsetMonitor(t *testing.T) {
	m2 := catalog.Monitor{Name: "secondary", Width: 3840, Height: 2160, OriginX: 2560, OriginY: -133}

	got := Compute(m2, types.AlignLeft, 0.5, types.Rect{})
	want := types.Rect{X: 2560, Y: -133, Width: 1920, Height: 2160}
	if got != want {
		t.Errorf("Compute(left, 0.5) on offset monitor = %+v, want %+v", got, want)
	}

	got = Compute(m2, types.AlignBottom, 0.5, types.Rect{X: 3000, Width: 800})
	want = types.Rect{X: 3000, Y: -133 + 1080, Width: 800, Height: 1080}
	if got != want {
		t.Errorf("Compute(bottom, 0.5) on offset monitor = %+v, want %+v", got, want)
	}
}

func TestComputeDeterministic(t *testing.T) {
	current := types.Rect{X: 12.5, Y: 88, Width: 1014.3, Height: 777}

	first := Compute(monitor1, types.AlignCenter, 0.67, current)
	for i := 0; i < 10; i++ {
		if got := Compute(monitor1, types.AlignCenter, 0.67, current); got != first {
			t.Fatalf("Compute is not deterministic: %+v vs %+v", got, first)
		}
	}
}

// Exact fractional output, no rounding: 2560 * 0.67 = 1715.2
func TestComputeExactFraction(t *testing.T) {
	got := Compute(monitor1, types.AlignLeft, 0.67, types.Rect{})
	if got.Width != 2560*0.67 {
		t.Errorf("Width = %v, want %v", got.Width, 2560*0.67)
	}
}

func TestNudge(t *testing.T) {
	got := Nudge(types.Rect{X: 100, Y: 200, Width: 800, Height: 600}, -20, 10, 40, -60)

	want := types.Rect{X: 80, Y: 210, Width: 840, Height: 540}
	if got != want {
		t.Errorf("Nudge = %+v, want %+v", got, want)
	}
}

package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/blob-morph/core"
)

func TestBufferSetAndAt(t *testing.T) {
	buf := NewBuffer(4, 3)
	red := core.Color{R: 1, A: 1}

	if !buf.Set(2, 1, red) {
		t.Fatal("Expected in-bounds Set to succeed")
	}
	got, ok := buf.At(2, 1)
	if !ok || got != red {
		t.Errorf("Expected pixel (2,1) to be %+v, got %+v ok=%v", red, got, ok)
	}

	if got, ok := buf.At(0, 0); !ok || got != (core.Color{}) {
		t.Errorf("Expected untouched pixel to be zero, got %+v ok=%v", got, ok)
	}
}

func TestBufferOutOfBounds(t *testing.T) {
	buf := NewBuffer(4, 3)
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 4, 0},
		{"y at height", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if buf.Set(tt.x, tt.y, core.ColorWhite) {
				t.Error("Expected out-of-bounds Set to be dropped")
			}
			if _, ok := buf.At(tt.x, tt.y); ok {
				t.Error("Expected out-of-bounds At to report false")
			}
		})
	}
}

func TestBufferClear(t *testing.T) {
	buf := NewBuffer(3, 3)
	buf.Set(1, 1, core.ColorWhite)
	blue := core.Color{B: 1, A: 1}

	buf.Clear(blue)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got, _ := buf.At(x, y); got != blue {
				t.Fatalf("Expected pixel (%d,%d) to be cleared to blue, got %+v", x, y, got)
			}
		}
	}
}

func TestBufferBlend(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.Set(0, 0, core.ColorBlack)

	buf.Blend(0, 0, core.ColorWhite, 0.5)

	got, _ := buf.At(0, 0)
	if math.Abs(got.R-0.5) > 1e-9 || math.Abs(got.G-0.5) > 1e-9 || math.Abs(got.B-0.5) > 1e-9 {
		t.Errorf("Expected half blend toward white, got %+v", got)
	}
}

func TestBufferResizePreservesContent(t *testing.T) {
	buf := NewBuffer(4, 4)
	red := core.Color{R: 1, A: 1}
	buf.Set(1, 1, red)
	buf.Set(3, 3, core.ColorWhite)

	buf.Resize(2, 6)

	if buf.Width() != 2 || buf.Height() != 6 {
		t.Fatalf("Expected 2x6 buffer, got %dx%d", buf.Width(), buf.Height())
	}
	if got, _ := buf.At(1, 1); got != red {
		t.Errorf("Expected surviving pixel to keep its color, got %+v", got)
	}
	if got, ok := buf.At(1, 5); !ok || got != (core.Color{}) {
		t.Errorf("Expected grown region to be zero, got %+v ok=%v", got, ok)
	}
	if _, ok := buf.At(3, 3); ok {
		t.Error("Expected pixel outside the new width to be gone")
	}
}

package vmath

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"Start", 0, 10, 0, 0},
		{"End", 0, 10, 1, 10},
		{"Midpoint", 0, 10, 0.5, 5},
		{"Negative range", -4, 4, 0.25, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.a, tt.b, tt.t)
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{"Below range", -1, 0, 1, 0},
		{"Above range", 2, 0, 1, 1},
		{"Inside range", 0.3, 0, 1, 0.3},
		{"At boundary", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.v, tt.lo, tt.hi)
			if got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"Same point", 3, 3, 3, 3, 0},
		{"Unit X", 0, 0, 1, 0, 1},
		{"Pythagorean triple", 0, 0, 3, 4, 5},
		{"Negative coordinates", -1, -1, 2, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dist(tt.x1, tt.y1, tt.x2, tt.y2)
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("Dist = %v, want %v", got, tt.want)
			}
			gotSq := DistSq(tt.x1, tt.y1, tt.x2, tt.y2)
			if !almostEqual(gotSq, tt.want*tt.want, 1e-9) {
				t.Errorf("DistSq = %v, want %v", gotSq, tt.want*tt.want)
			}
		})
	}
}

func TestEaseOutCubic(t *testing.T) {
	if got := EaseOutCubic(0); got != 0 {
		t.Errorf("Expected EaseOutCubic(0) to be 0, got %v", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Errorf("Expected EaseOutCubic(1) to be 1, got %v", got)
	}
	if got := EaseOutCubic(1.5); got != 1 {
		t.Errorf("Expected out-of-range input to clamp to 1, got %v", got)
	}

	// Decelerating curve stays above the identity line in the interior
	prev := 0.0
	for i := 1; i <= 10; i++ {
		x := float64(i) / 10
		y := EaseOutCubic(x)
		if y < prev {
			t.Errorf("Expected monotone increase, got %v after %v at t=%v", y, prev, x)
		}
		if x > 0 && x < 1 && y <= x {
			t.Errorf("Expected EaseOutCubic(%v) > %v, got %v", x, x, y)
		}
		prev = y
	}
}

func TestNormalize2D(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"Axis aligned", 5, 0},
		{"Diagonal", 3, 4},
		{"Tiny but valid", 0.001, -0.002},
		{"Negative", -7, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nx, ny := Normalize2D(tt.x, tt.y)
			if !almostEqual(math.Hypot(nx, ny), 1, 1e-12) {
				t.Errorf("Expected unit magnitude, got %v", math.Hypot(nx, ny))
			}
		})
	}

	nx, ny := Normalize2D(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("Expected zero vector to normalize to (0, 0), got (%v, %v)", nx, ny)
	}
}

func TestClampMagnitude(t *testing.T) {
	cx, cy := ClampMagnitude(30, 40, 10)
	if !almostEqual(math.Hypot(cx, cy), 10, 1e-9) {
		t.Errorf("Expected clamped magnitude 10, got %v", math.Hypot(cx, cy))
	}
	if !almostEqual(cx/cy, 30.0/40.0, 1e-9) {
		t.Errorf("Expected direction preserved, got (%v, %v)", cx, cy)
	}

	cx, cy = ClampMagnitude(3, 4, 10)
	if cx != 3 || cy != 4 {
		t.Errorf("Expected short vector unchanged, got (%v, %v)", cx, cy)
	}
}

func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 16; i++ {
		if av, bv := a.Next(), b.Next(); av != bv {
			t.Fatalf("Expected identical sequences for equal seeds, diverged at %d: %d vs %d", i, av, bv)
		}
	}

	c := NewFastRand(43)
	if a.Next() == c.Next() {
		t.Error("Expected different seeds to produce different sequences")
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Expected zero seed to be remapped, got a stuck generator")
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want [0, 1)", v)
		}
	}
	for i := 0; i < 1000; i++ {
		if v := r.Intn(10); v < 0 || v >= 10 {
			t.Fatalf("Intn(10) = %v, want [0, 10)", v)
		}
	}
	if v := r.Intn(0); v != 0 {
		t.Errorf("Intn(0) = %v, want 0", v)
	}
	for i := 0; i < 100; i++ {
		if v := r.Range(-4, 4); v < -4 || v >= 4 {
			t.Fatalf("Range(-4, 4) = %v, want [-4, 4)", v)
		}
	}
}

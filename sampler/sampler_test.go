package sampler

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/lixenwraith/blob-morph/core"
)

func testParams() Params {
	p := DefaultParams()
	p.Spacing = 8
	return p
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func TestGridSamplesOpaqueRegion(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	fillRect(img, 0, 0, 16, 40, color.RGBA{255, 0, 0, 255})

	samples := Grid(img, testParams())

	// Two fully red columns of cells, five rows each
	if len(samples) != 10 {
		t.Fatalf("Expected 10 samples, got %d", len(samples))
	}
	for i, s := range samples {
		if s.X != 4 && s.X != 12 {
			t.Errorf("Expected sample %d at a red cell center, got X=%v", i, s.X)
		}
		if math.Abs(s.Color.R-1) > 1e-6 || math.Abs(s.Color.A-1) > 1e-6 {
			t.Errorf("Expected sample %d to be opaque red, got %+v", i, s.Color)
		}
	}
}

func TestGridRowMajorOrder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	fillRect(img, 0, 0, 32, 32, color.RGBA{200, 200, 200, 255})

	samples := Grid(img, testParams())
	if len(samples) != 16 {
		t.Fatalf("Expected 16 samples, got %d", len(samples))
	}
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if cur.Y < prev.Y || (cur.Y == prev.Y && cur.X <= prev.X) {
			t.Fatalf("Expected row-major order, got (%v,%v) after (%v,%v)",
				cur.X, cur.Y, prev.X, prev.Y)
		}
	}
}

func TestGridSkipsNearBlack(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	fillRect(img, 0, 0, 8, 16, color.RGBA{13, 13, 13, 255}) // luma ~0.05
	fillRect(img, 8, 0, 16, 16, color.RGBA{255, 255, 255, 255})

	samples := Grid(img, testParams())

	if len(samples) != 2 {
		t.Fatalf("Expected 2 samples from the bright half, got %d", len(samples))
	}
	for i, s := range samples {
		if s.X != 12 {
			t.Errorf("Expected sample %d at X=12, got %v", i, s.X)
		}
	}
}

func TestGridAveragesCell(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	fillRect(img, 0, 0, 4, 8, color.RGBA{255, 0, 0, 255})
	fillRect(img, 4, 0, 8, 8, color.RGBA{0, 0, 255, 255})

	samples := Grid(img, testParams())

	if len(samples) != 1 {
		t.Fatalf("Expected 1 sample, got %d", len(samples))
	}
	s := samples[0]
	if s.X != 4 || s.Y != 4 {
		t.Errorf("Expected sample at cell center (4,4), got (%v,%v)", s.X, s.Y)
	}
	if math.Abs(s.Color.R-0.5) > 1e-6 || math.Abs(s.Color.B-0.5) > 1e-6 {
		t.Errorf("Expected half red half blue, got %+v", s.Color)
	}
}

func TestGridCapsLargeImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 800, 400))
	fillRect(img, 0, 0, 800, 400, color.RGBA{255, 255, 255, 255})

	samples := Grid(img, testParams())

	// Scaled to 400x200 before sampling: a 50x25 grid
	if len(samples) != 1250 {
		t.Fatalf("Expected 1250 samples after downscale, got %d", len(samples))
	}
	for _, s := range samples {
		if s.X >= 400 || s.Y >= 200 {
			t.Fatalf("Expected samples inside the 400x200 cap, got (%v,%v)", s.X, s.Y)
		}
	}
}

func TestGridEmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if samples := Grid(img, testParams()); len(samples) != 0 {
		t.Errorf("Expected no samples from an empty image, got %d", len(samples))
	}
}

func TestExtent(t *testing.T) {
	samples := []core.Sample{
		{X: 10, Y: 5},
		{X: 30, Y: 45},
		{X: 20, Y: 25},
	}
	ext := Extent(samples)
	if ext.MinX != 10 || ext.MinY != 5 || ext.MaxX != 30 || ext.MaxY != 45 {
		t.Errorf("Expected extent {10 5 30 45}, got %+v", ext)
	}
	if Extent(nil) != (core.Bounds{}) {
		t.Errorf("Expected zero extent for no samples")
	}
}

func TestCenterTranslatesCloud(t *testing.T) {
	samples := []core.Sample{
		{X: 10, Y: 5},
		{X: 30, Y: 45},
	}
	Center(samples, 100, 100)

	if samples[0].X != 40 || samples[0].Y != 30 {
		t.Errorf("Expected first sample at (40,30), got (%v,%v)", samples[0].X, samples[0].Y)
	}
	if samples[1].X != 60 || samples[1].Y != 70 {
		t.Errorf("Expected second sample at (60,70), got (%v,%v)", samples[1].X, samples[1].Y)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.png", DefaultParams()); err == nil {
		t.Error("Expected an error for a missing file, got nil")
	}
}

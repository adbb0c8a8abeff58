// Package sampler turns decoded images into the sample grids that seed
// and terminate a transition. Sampling is a coarse cell average: the
// subject survives, single-pixel noise does not.
package sampler

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/blob-morph/core"
)

// Params controls grid sampling
type Params struct {
	// Spacing is the sample grid pitch in pixels
	Spacing int `toml:"spacing"`
	// MaxDim caps the longer image dimension; larger images are scaled
	// down before sampling
	MaxDim int `toml:"max_dim"`
	// AlphaMin drops samples whose cell is mostly transparent
	AlphaMin float64 `toml:"alpha_min"`
	// LumaMin drops near-black cells, which read as background
	LumaMin float64 `toml:"luma_min"`
}

// DefaultParams returns the sampling tuning for 400px-class images
func DefaultParams() Params {
	return Params{
		Spacing:  8,
		MaxDim:   400,
		AlphaMin: 0.1,
		LumaMin:  0.08,
	}
}

// Load decodes an image file and samples it. PNG and JPEG register
// their decoders; anything else fails on decode.
func Load(path string, params Params) ([]core.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sampler: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sampler: decode %s: %w", path, err)
	}
	return Grid(img, params), nil
}

// Grid samples img on a Spacing-pixel grid. Each sample averages its
// cell and sits at the cell center, in image coordinates rebased to
// origin. Transparent and near-black cells are skipped so only the
// subject seeds blobs. Samples come back in row-major order.
func Grid(img image.Image, params Params) []core.Sample {
	img = fit(img, params.MaxDim)
	spacing := params.Spacing
	if spacing < 1 {
		spacing = 1
	}

	b := img.Bounds()
	out := make([]core.Sample, 0, (b.Dx()/spacing+1)*(b.Dy()/spacing+1))
	for y := b.Min.Y; y < b.Max.Y; y += spacing {
		for x := b.Min.X; x < b.Max.X; x += spacing {
			c, ok := cellAverage(img, x, y, spacing, params)
			if !ok {
				continue
			}
			out = append(out, core.Sample{
				X:     float64(x-b.Min.X) + float64(spacing)/2,
				Y:     float64(y-b.Min.Y) + float64(spacing)/2,
				Color: c,
			})
		}
	}
	return out
}

// Extent returns the bounding box of a sample cloud
func Extent(samples []core.Sample) core.Bounds {
	if len(samples) == 0 {
		return core.Bounds{}
	}
	b := core.Bounds{
		MinX: samples[0].X, MinY: samples[0].Y,
		MaxX: samples[0].X, MaxY: samples[0].Y,
	}
	for _, s := range samples[1:] {
		if s.X < b.MinX {
			b.MinX = s.X
		}
		if s.X > b.MaxX {
			b.MaxX = s.X
		}
		if s.Y < b.MinY {
			b.MinY = s.Y
		}
		if s.Y > b.MaxY {
			b.MaxY = s.Y
		}
	}
	return b
}

// Center translates samples in place so their bounding box centers on
// a width×height canvas
func Center(samples []core.Sample, width, height float64) {
	if len(samples) == 0 {
		return
	}
	ext := Extent(samples)
	dx := (width-ext.Width())/2 - ext.MinX
	dy := (height-ext.Height())/2 - ext.MinY
	for i := range samples {
		samples[i].X += dx
		samples[i].Y += dy
	}
}

// fit scales img down so neither dimension exceeds maxDim, preserving
// aspect ratio. Images inside the cap pass through untouched.
func fit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img
	}
	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale+0.5), int(float64(h)*scale+0.5)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// cellAverage averages the spacing-square cell anchored at (x0, y0),
// clipped to the image bounds
func cellAverage(img image.Image, x0, y0, spacing int, params Params) (core.Color, bool) {
	b := img.Bounds()
	var r, g, bl, a float64
	n := 0
	for y := y0; y < y0+spacing && y < b.Max.Y; y++ {
		for x := x0; x < x0+spacing && x < b.Max.X; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			r += float64(pr) / 0xffff
			g += float64(pg) / 0xffff
			bl += float64(pb) / 0xffff
			a += float64(pa) / 0xffff
			n++
		}
	}
	if n == 0 {
		return core.Color{}, false
	}
	c := core.Color{R: r / float64(n), G: g / float64(n), B: bl / float64(n), A: a / float64(n)}
	if c.A < params.AlphaMin || c.Luma() < params.LumaMin {
		return core.Color{}, false
	}
	return c, true
}

// Package render rasterizes transition frames into a pixel buffer and
// presents them on a terminal, two vertical pixels per cell.
package render

import "github.com/lixenwraith/blob-morph/core"

// Buffer is a flat pixel grid. It carries no dirty tracking: a
// transition repaints every pixel every frame.
type Buffer struct {
	width  int
	height int
	pixels []core.Color
}

// NewBuffer creates a cleared buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Clear fills the whole buffer with one color
func (b *Buffer) Clear(c core.Color) {
	for i := range b.pixels {
		b.pixels[i] = c
	}
}

// Set overwrites the pixel at the given position; out-of-bounds writes
// are dropped
func (b *Buffer) Set(x, y int, c core.Color) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	b.pixels[y*b.width+x] = c
	return true
}

// Blend composites src over the pixel at the given position
func (b *Buffer) Blend(x, y int, src core.Color, alpha float64) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	i := y*b.width + x
	b.pixels[i] = b.pixels[i].Blend(src, alpha)
	return true
}

// At returns the pixel at the given position
func (b *Buffer) At(x, y int) (core.Color, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return core.Color{}, false
	}
	return b.pixels[y*b.width+x], true
}

// Resize regrows the buffer, preserving overlapping content
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height {
		return
	}
	next := make([]core.Color, width*height)
	minW, minH := b.width, b.height
	if width < minW {
		minW = width
	}
	if height < minH {
		minH = height
	}
	for y := 0; y < minH; y++ {
		copy(next[y*width:y*width+minW], b.pixels[y*b.width:y*b.width+minW])
	}
	b.width = width
	b.height = height
	b.pixels = next
}

package render

import (
	"math"
	"sort"

	"github.com/lixenwraith/blob-morph/core"
	"github.com/lixenwraith/blob-morph/vmath"
)

// membraneAlpha is the fill opacity of blob interiors; boundary points
// stamp at full strength on top of it
const membraneAlpha = 0.55

// Renderer maps arena coordinates onto a pixel buffer and composes
// transition frames into it
type Renderer struct {
	buf    *Buffer
	arena  core.Bounds
	scaleX float64
	scaleY float64
}

// NewRenderer builds a renderer targeting a width-by-height pixel
// buffer that views the given arena rectangle
func NewRenderer(width, height int, arena core.Bounds) *Renderer {
	r := &Renderer{
		buf:   NewBuffer(width, height),
		arena: arena,
	}
	r.rescale()
	return r
}

// Resize adjusts the pixel target, keeping the arena view
func (r *Renderer) Resize(width, height int) {
	r.buf.Resize(width, height)
	r.rescale()
}

// Buffer exposes the composed pixels for presentation
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Compose paints one frame: blob membranes, their boundary points, and
// the target image fading in as blend runs from 0 to 1
func (r *Renderer) Compose(fans [][]core.Vertex, points []core.Point, targets []core.Sample, blend float64) {
	r.buf.Clear(core.ColorBlack)
	fade := vmath.EaseOutCubic(blend)

	for _, fan := range fans {
		r.fillFan(fan, membraneAlpha*(1-fade))
	}
	for i := range points {
		p := &points[i]
		r.stamp(p.X, p.Y, p.Color, (1-fade)*p.Color.A)
	}
	for i := range targets {
		s := &targets[i]
		r.stamp(s.X, s.Y, s.Color, fade*s.Color.A)
	}
}

func (r *Renderer) rescale() {
	r.scaleX = 1
	r.scaleY = 1
	if w := r.arena.Width(); w > 0 {
		r.scaleX = float64(r.buf.width) / w
	}
	if h := r.arena.Height(); h > 0 {
		r.scaleY = float64(r.buf.height) / h
	}
}

func (r *Renderer) stamp(x, y float64, c core.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	r.buf.Blend(int(x*r.scaleX), int(y*r.scaleY), c, alpha)
}

// fillFan rasterizes one triangle fan as an even-odd filled polygon in
// the ring color carried by the centroid vertex. Even-odd scanlines
// handle the concave outlines rings take mid-transition.
func (r *Renderer) fillFan(fan []core.Vertex, alpha float64) {
	// Centroid, at least three boundary points, closing repeat
	if len(fan) < 5 || alpha <= 0 {
		return
	}
	color := fan[0].Color
	perimeter := fan[1 : len(fan)-1]

	xs := make([]float64, len(perimeter))
	ys := make([]float64, len(perimeter))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, v := range perimeter {
		xs[i] = v.X * r.scaleX
		ys[i] = v.Y * r.scaleY
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}

	top := int(math.Ceil(minY))
	bottom := int(math.Floor(maxY))
	if top < 0 {
		top = 0
	}
	if bottom >= r.buf.height {
		bottom = r.buf.height - 1
	}

	n := len(perimeter)
	crossings := make([]float64, 0, 8)
	for y := top; y <= bottom; y++ {
		fy := float64(y) + 0.5
		crossings = crossings[:0]
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ya, yb := ys[i], ys[j]
			if (ya <= fy) == (yb <= fy) {
				continue
			}
			t := (fy - ya) / (yb - ya)
			crossings = append(crossings, xs[i]+t*(xs[j]-xs[i]))
		}
		sort.Float64s(crossings)
		for i := 0; i+1 < len(crossings); i += 2 {
			xa := int(math.Ceil(crossings[i]))
			xb := int(math.Floor(crossings[i+1]))
			for x := xa; x <= xb; x++ {
				r.buf.Blend(x, y, color, alpha)
			}
		}
	}
}

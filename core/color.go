package core

// Color stores RGBA channels as float64 in [0,1], decoupled from tcell
// and image/color. Alpha is straight (not premultiplied).
type Color struct {
	R, G, B, A float64
}

// Predefined colors
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
	ColorClear = Color{0, 0, 0, 0}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c Color) Blend(src Color, alpha float64) Color {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return Color{
		R: src.R*alpha + c.R*inv,
		G: src.G*alpha + c.G*inv,
		B: src.B*alpha + c.B*inv,
		A: src.A*alpha + c.A*inv,
	}
}

// Lerp interpolates linearly toward target: result = c + (target-c)*t
func (c Color) Lerp(target Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return target
	}
	return Color{
		R: c.R + (target.R-c.R)*t,
		G: c.G + (target.G-c.G)*t,
		B: c.B + (target.B-c.B)*t,
		A: c.A + (target.A-c.A)*t,
	}
}

// Toward moves each channel by a fixed fraction of its remaining distance
// to target; repeated calls converge exponentially without overshooting
func (c Color) Toward(target Color, factor float64) Color {
	if factor <= 0 {
		return c
	}
	if factor >= 1 {
		return target
	}
	return Color{
		R: c.R + (target.R-c.R)*factor,
		G: c.G + (target.G-c.G)*factor,
		B: c.B + (target.B-c.B)*factor,
		A: c.A + (target.A-c.A)*factor,
	}
}

// Add performs additive blend with clamping (light accumulation)
func (c Color) Add(src Color) Color {
	return Color{
		R: min(c.R+src.R, 1.0),
		G: min(c.G+src.G, 1.0),
		B: min(c.B+src.B, 1.0),
		A: min(c.A+src.A, 1.0),
	}
}

// Scale multiplies the color channels by factor, leaving alpha untouched
func (c Color) Scale(factor float64) Color {
	if factor <= 0 {
		return Color{0, 0, 0, c.A}
	}
	if factor >= 1 {
		return c
	}
	return Color{
		R: c.R * factor,
		G: c.G * factor,
		B: c.B * factor,
		A: c.A,
	}
}

// Luma returns perceptual luminance using Rec. 601 weights
func (c Color) Luma() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// RGB8 converts to 8-bit channels for terminal output
func (c Color) RGB8() (r, g, b uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

func channel8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

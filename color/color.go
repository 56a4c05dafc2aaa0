package color

// Color is a linear RGB value, one float32 per channel.
type Color struct {
	R, G, B float32
}

var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	Grey    = Color{0.5, 0.5, 0.5}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	Cyan    = Color{0, 1, 1}
	Magenta = Color{1, 0, 1}
	Yellow  = Color{1, 1, 0}
)

// Scale multiplies every channel by factor, as used for light intensity.
func (c Color) Scale(factor float32) Color {
	return Color{c.R * factor, c.G * factor, c.B * factor}
}

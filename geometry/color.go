package geometry

import (
	"github.com/akmonengine/prism/color"
	"github.com/akmonengine/prism/scalar"
)

// ToColor maps x, y, z straight onto r, g, b.
func ToColor(v Vec3) color.Color {
	return v.ToColor()
}

// DirectionToColor remaps a unit direction from [-1, 1] to [0, 1] per channel,
// the usual way of displaying normals.
func DirectionToColor(v Vec3) color.Color {
	return color.Color{
		R: scalar.MulAdd(v[0], 0.5, 0.5),
		G: scalar.MulAdd(v[1], 0.5, 0.5),
		B: scalar.MulAdd(v[2], 0.5, 0.5),
	}
}

// FromColor maps r, g, b straight onto x, y, z.
func FromColor(c color.Color) Vec3 {
	return Vec3{c.R, c.G, c.B}
}

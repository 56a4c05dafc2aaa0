package geometry

// Edge is a segment between two points.
type Edge struct {
	From Vec3
	To   Vec3
}

func (e Edge) Delta() Vec3 {
	return e.To.Sub(e.From)
}

func (e Edge) Len() float32 {
	return e.Delta().Len()
}

// At returns the point at parameter t, From at 0 and To at 1.
func (e Edge) At(t float32) Vec3 {
	return Lerp(e.From, e.To, t)
}

// Bounds returns the box enclosing both endpoints.
func (e Edge) Bounds() AABB {
	return AABB{
		Min: Minimum(e.From, e.To),
		Max: Maximum(e.From, e.To),
	}
}

package geometry

// AABB represents an axis-aligned bounding box.
// Min should not exceed Max on any axis; nothing enforces it.
//
// The zero value is the degenerate box sitting on the origin. It is not an
// identity for Union: folding boxes into an AABB{} keeps the origin inside the
// result. Start a fold from the first real box, or use UnionAll / BoundsOf.
type AABB struct {
	Min Vec3
	Max Vec3
}

func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

func NewAABBFromScalars(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	return AABB{
		Min: Vec3{minX, minY, minZ},
		Max: Vec3{maxX, maxY, maxZ},
	}
}

// NewUniformAABB spans [minValue, maxValue] on all three axes.
func NewUniformAABB(minValue, maxValue float32) AABB {
	return AABB{Min: Splat(minValue), Max: Splat(maxValue)}
}

// SphereBounds returns the box enclosing a sphere.
func SphereBounds(center Vec3, radius float32) AABB {
	return AABB{
		Min: center.SubScalar(radius),
		Max: center.AddScalar(radius),
	}
}

// BoundsOf returns the tightest box around the points.
// ok is false when no point is given.
func BoundsOf(points ...Vec3) (bounds AABB, ok bool) {
	if len(points) == 0 {
		return AABB{}, false
	}

	bounds = AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		bounds.Min = Minimum(bounds.Min, point)
		bounds.Max = Maximum(bounds.Max, point)
	}

	return bounds, true
}

// UnionAll merges the boxes, seeding the fold with the first one.
// ok is false when no box is given.
func UnionAll(boxes ...AABB) (bounds AABB, ok bool) {
	if len(boxes) == 0 {
		return AABB{}, false
	}

	bounds = boxes[0]
	for _, box := range boxes[1:] {
		bounds.Merge(box)
	}

	return bounds, true
}

// Union returns the smallest box holding both a and other.
func (a AABB) Union(other AABB) AABB {
	return AABB{
		Min: Minimum(a.Min, other.Min),
		Max: Maximum(a.Max, other.Max),
	}
}

// Merge grows a in place to hold other.
func (a *AABB) Merge(other AABB) {
	a.Min = Minimum(a.Min, other.Min)
	a.Max = Maximum(a.Max, other.Max)
}

// ContainsPoint checks if a point is inside the AABB, boundary included
func (a AABB) ContainsPoint(point Vec3) bool {
	return a.Min.X() <= point.X() && point.X() <= a.Max.X() &&
		a.Min.Y() <= point.Y() && point.Y() <= a.Max.Y() &&
		a.Min.Z() <= point.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap, touching faces included
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

func (a AABB) Extents() Vec3 {
	return a.Max.Sub(a.Min)
}

func (a AABB) Center() Vec3 {
	return a.Min.Add(a.Max).MulScalar(0.5)
}

// Area sums the pairwise products of the extents, which is half the surface
// area. Use it to compare box sizes, not as a physical measure.
func (a AABB) Area() float32 {
	extents := a.Extents()
	return extents.X()*extents.Y() + extents.Y()*extents.Z() + extents.Z()*extents.X()
}

// OverlapSphere reports whether the sphere touches or intersects the box.
//
// The test is exact when the center lies in one of the 8 corner regions of the
// box, and when it lies in a face region (the grown-box reject covers those).
// In the 12 edge regions it only proves the center is within radius of both
// slabs, so it accepts some spheres that miss the edge. Callers culling with it
// get a few extra candidates, never a missed one.
func (a AABB) OverlapSphere(center Vec3, radius float32) bool {
	if a.ContainsPoint(center) {
		return true
	}

	grown := AABB{
		Min: a.Min.SubScalar(radius),
		Max: a.Max.AddScalar(radius),
	}
	if !grown.ContainsPoint(center) {
		return false
	}

	dMax := center.Sub(a.Max)
	dMin := a.Min.Sub(center)

	var cornerDistance float32
	for axis := 0; axis < 3; axis++ {
		var excursion float32
		switch {
		case dMax[axis] > 0:
			excursion = dMax[axis]
		case dMin[axis] > 0:
			excursion = dMin[axis]
		default:
			// The center projects inside the slab on this axis: face or edge region.
			return true
		}
		cornerDistance += excursion * excursion
	}

	return cornerDistance <= radius*radius
}

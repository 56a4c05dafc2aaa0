package geometry

// Axis identifies one component of a Vec3.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "Axis(?)"
}

// MinimumAxis returns the smallest component and the axis holding it.
// Ties go to the earliest axis, X before Y before Z.
func (v Vec3) MinimumAxis() (float32, Axis) {
	result, axis := v[0], AxisX
	if v[1] < result {
		result, axis = v[1], AxisY
	}
	if v[2] < result {
		result, axis = v[2], AxisZ
	}

	return result, axis
}

// MaximumAxis returns the largest component and the axis holding it.
// Ties go to the earliest axis, X before Y before Z.
func (v Vec3) MaximumAxis() (float32, Axis) {
	result, axis := v[0], AxisX
	if v[1] > result {
		result, axis = v[1], AxisY
	}
	if v[2] > result {
		result, axis = v[2], AxisZ
	}

	return result, axis
}

// Minimum returns the smallest component.
// Unlike MinimumAxis, a NaN in X is skipped: (NaN, 1, 2) gives 1.
func (v Vec3) Minimum() float32 {
	if v[0] < v[1] {
		return min32(v[0], v[2])
	}
	return min32(v[1], v[2])
}

// Maximum returns the largest component, with the same NaN handling as Minimum.
func (v Vec3) Maximum() float32 {
	if v[0] > v[1] {
		return max32(v[0], v[2])
	}
	return max32(v[1], v[2])
}

// Minimum returns the componentwise minimum of a and b.
func Minimum(a, b Vec3) Vec3 {
	return Vec3{min32(a[0], b[0]), min32(a[1], b[1]), min32(a[2], b[2])}
}

// Maximum returns the componentwise maximum of a and b.
func Maximum(a, b Vec3) Vec3 {
	return Vec3{max32(a[0], b[0]), max32(a[1], b[1]), max32(a[2], b[2])}
}

// min32 and max32 return b whenever the comparison fails, NaN included,
// unlike the min and max builtins.
func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

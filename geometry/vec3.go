// Package geometry provides the single-precision vector and axis-aligned box
// types used for transforms, shading math and spatial culling.
//
// Every operation is a pure value computation: nothing is shared between calls,
// nothing returns an error, and IEEE-754 special values (NaN, ±Inf) propagate
// unchanged through the arithmetic. Normalizing a zero vector, for instance,
// yields NaN components instead of a guarded fallback.
package geometry

import (
	"github.com/akmonengine/prism/color"
	"github.com/akmonengine/prism/scalar"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3-component float32 vector.
// The same three values are readable as a position (X, Y, Z), a texture
// coordinate (U, V, W) or a color (R, G, B).
type Vec3 mgl32.Vec3

var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// Splat returns a vector with every component set to value.
func Splat[T scalar.Number](value T) Vec3 {
	s := float32(value)
	return Vec3{s, s, s}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

func (v Vec3) U() float32 { return v[0] }
func (v Vec3) V() float32 { return v[1] }
func (v Vec3) W() float32 { return v[2] }

func (v Vec3) R() float32 { return v[0] }
func (v Vec3) G() float32 { return v[1] }
func (v Vec3) B() float32 { return v[2] }

func (v *Vec3) SetX(value float32) { v[0] = value }
func (v *Vec3) SetY(value float32) { v[1] = value }
func (v *Vec3) SetZ(value float32) { v[2] = value }

// Component returns the value stored on the given axis.
func (v Vec3) Component(axis Axis) float32 {
	return v[axis]
}

// ToColor reads the vector as an RGB color.
func (v Vec3) ToColor() color.Color {
	return color.Color{R: v[0], G: v[1], B: v[2]}
}

// Equal compares components exactly, without any tolerance.
func (v Vec3) Equal(other Vec3) bool {
	return v[0] == other[0] && v[1] == other[1] && v[2] == other[2]
}

// NonZero reports whether any component differs from zero.
func (v Vec3) NonZero() bool {
	return v[0] != 0 || v[1] != 0 || v[2] != 0
}

// IsZero reports whether every component equals zero.
func (v Vec3) IsZero() bool {
	return !v.NonZero()
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3(mgl32.Vec3(v).Add(mgl32.Vec3(other)))
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3(mgl32.Vec3(v).Sub(mgl32.Vec3(other)))
}

// Mul is the componentwise product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// Div is the componentwise quotient.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v[0] / other[0], v[1] / other[1], v[2] / other[2]}
}

func (v *Vec3) AddAssign(other Vec3) {
	v[0] += other[0]
	v[1] += other[1]
	v[2] += other[2]
}

func (v *Vec3) SubAssign(other Vec3) {
	v[0] -= other[0]
	v[1] -= other[1]
	v[2] -= other[2]
}

func (v *Vec3) MulAssign(other Vec3) {
	v[0] *= other[0]
	v[1] *= other[1]
	v[2] *= other[2]
}

func (v *Vec3) DivAssign(other Vec3) {
	v[0] /= other[0]
	v[1] /= other[1]
	v[2] /= other[2]
}

func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{v[0] + s, v[1] + s, v[2] + s}
}

func (v Vec3) SubScalar(s float32) Vec3 {
	return Vec3{v[0] - s, v[1] - s, v[2] - s}
}

func (v Vec3) MulScalar(s float32) Vec3 {
	return Vec3(mgl32.Vec3(v).Mul(s))
}

// DivScalar multiplies by the reciprocal of s.
// A zero s gives infinite (or NaN) components.
func (v Vec3) DivScalar(s float32) Vec3 {
	factor := 1 / s
	return Vec3{v[0] * factor, v[1] * factor, v[2] * factor}
}

func (v *Vec3) AddScalarAssign(s float32) {
	*v = v.AddScalar(s)
}

func (v *Vec3) SubScalarAssign(s float32) {
	*v = v.SubScalar(s)
}

func (v *Vec3) MulScalarAssign(s float32) {
	*v = v.MulScalar(s)
}

func (v *Vec3) DivScalarAssign(s float32) {
	*v = v.DivScalar(s)
}

// ScalarSub returns s - v for every component.
func ScalarSub(s float32, v Vec3) Vec3 {
	return Vec3{s - v[0], s - v[1], s - v[2]}
}

// ScalarDiv returns s / v for every component.
func ScalarDiv(s float32, v Vec3) Vec3 {
	return Vec3{s / v[0], s / v[1], s / v[2]}
}

func (v Vec3) Dot(other Vec3) float32 {
	return mgl32.Vec3(v).Dot(mgl32.Vec3(other))
}

// Cross is the right-handed cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3(mgl32.Vec3(v).Cross(mgl32.Vec3(other)))
}

// PerpZ rotates the vector a quarter turn around the Z axis.
func (v Vec3) PerpZ() Vec3 {
	return Vec3{-v[1], v[0], v[2]}
}

func (v Vec3) LenSqr() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3) Len() float32 {
	return scalar.Sqrt(v.LenSqr())
}

// Normalize divides the vector by its length. There is no zero-length guard.
func (v Vec3) Normalize() Vec3 {
	return v.DivScalar(v.Len())
}

// ReflectedAround mirrors v about the unit normal n: v - 2(v·n)n.
// n is used as given, it is the caller's job to normalize it.
func (v Vec3) ReflectedAround(n Vec3) Vec3 {
	return n.ScaleAdd(-2*v.Dot(n), v)
}

// ScaleAdd returns v*factor + addend, fused per component.
func (v Vec3) ScaleAdd(factor float32, addend Vec3) Vec3 {
	return Vec3{
		scalar.MulAdd(v[0], factor, addend[0]),
		scalar.MulAdd(v[1], factor, addend[1]),
		scalar.MulAdd(v[2], factor, addend[2]),
	}
}

// MulAdd returns v*factors + addend, fused per component.
func (v Vec3) MulAdd(factors, addend Vec3) Vec3 {
	return Vec3{
		scalar.MulAdd(v[0], factors[0], addend[0]),
		scalar.MulAdd(v[1], factors[1], addend[1]),
		scalar.MulAdd(v[2], factors[2], addend[2]),
	}
}

// LerpTo interpolates from v toward to: v + (to - v)*t.
func (v Vec3) LerpTo(to Vec3, t float32) Vec3 {
	return to.Sub(v).ScaleAdd(t, v)
}

// Lerp interpolates linearly between from and to.
func Lerp(from, to Vec3, t float32) Vec3 {
	return to.Sub(from).ScaleAdd(t, from)
}

// ApproachTo moves every component toward target by at most maxDelta.
func (v Vec3) ApproachTo(target Vec3, maxDelta float32) Vec3 {
	return Vec3{
		scalar.Approach(v[0], target[0], maxDelta),
		scalar.Approach(v[1], target[1], maxDelta),
		scalar.Approach(v[2], target[2], maxDelta),
	}
}

// Clamped restricts every component to [0, 1].
func (v Vec3) Clamped() Vec3 {
	return Vec3{
		scalar.ClampUnit(v[0]),
		scalar.ClampUnit(v[1]),
		scalar.ClampUnit(v[2]),
	}
}

// ClampedTo restricts every component to [low, high].
func (v Vec3) ClampedTo(low, high float32) Vec3 {
	return Vec3{
		scalar.Clamp(v[0], low, high),
		scalar.Clamp(v[1], low, high),
		scalar.Clamp(v[2], low, high),
	}
}

// ClampedBelow restricts every component to [0, upper] on its own axis.
func (v Vec3) ClampedBelow(upper Vec3) Vec3 {
	return Vec3{
		scalar.ClampUpper(v[0], upper[0]),
		scalar.ClampUpper(v[1], upper[1]),
		scalar.ClampUpper(v[2], upper[2]),
	}
}

// ClampedBetween restricts every component to [lower, upper] on its own axis.
func (v Vec3) ClampedBetween(lower, upper Vec3) Vec3 {
	return Vec3{
		scalar.Clamp(v[0], lower[0], upper[0]),
		scalar.Clamp(v[1], lower[1], upper[1]),
		scalar.Clamp(v[2], lower[2], upper[2]),
	}
}

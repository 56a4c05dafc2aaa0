// Package scalar holds the float32 primitives the vector types are built on:
// fused multiply-add, clamping and stepping toward a target.
package scalar

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type that can be widened to float32.
type Number interface {
	constraints.Integer | constraints.Float
}

// Of converts any numeric value to the float32 scalar type.
func Of[T Number](value T) float32 {
	return float32(value)
}

// MulAdd returns a*b + c.
// The product of two float32 values is exact in float64, so the only rounding
// steps are the one of the fused operation and the final narrowing. When the
// float64 sum lands exactly halfway between two float32 values, that second
// rounding can differ from a true single-precision FMA by one ulp.
func MulAdd(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

// Clamp restricts value to [low, high].
func Clamp(value, low, high float32) float32 {
	return mgl32.Clamp(value, low, high)
}

// ClampUnit restricts value to [0, 1].
func ClampUnit(value float32) float32 {
	return mgl32.Clamp(value, 0, 1)
}

// ClampUpper restricts value to [0, upper].
func ClampUpper(value, upper float32) float32 {
	return mgl32.Clamp(value, 0, upper)
}

// Approach moves current toward target by at most maxDelta, without overshooting.
func Approach(current, target, maxDelta float32) float32 {
	diff := target - current
	if diff > maxDelta {
		return current + maxDelta
	}
	if diff < -maxDelta {
		return current - maxDelta
	}

	return target
}

// Sqrt is the single-precision square root.
func Sqrt(value float32) float32 {
	return math32.Sqrt(value)
}

// Floor is the single-precision floor.
func Floor(value float32) float32 {
	return math32.Floor(value)
}

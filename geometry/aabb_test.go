package geometry

import (
	"math/rand"
	"sync"
	"testing"
)

var unitBox = AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}

// =============================================================================
// Construction
// =============================================================================

func TestAABBConstructors(t *testing.T) {
	want := AABB{Min: Vec3{-1, -2, -3}, Max: Vec3{4, 5, 6}}

	if got := NewAABB(Vec3{-1, -2, -3}, Vec3{4, 5, 6}); got != want {
		t.Errorf("NewAABB = %v, want %v", got, want)
	}
	if got := NewAABBFromScalars(-1, -2, -3, 4, 5, 6); got != want {
		t.Errorf("NewAABBFromScalars = %v, want %v", got, want)
	}
	if got := NewUniformAABB(-2, 3); got != (AABB{Min: Vec3{-2, -2, -2}, Max: Vec3{3, 3, 3}}) {
		t.Errorf("NewUniformAABB(-2, 3) = %v", got)
	}

	var zero AABB
	if zero.Min != (Vec3{}) || zero.Max != (Vec3{}) {
		t.Errorf("zero AABB should sit on the origin, got %v", zero)
	}
}

func TestSphereBounds(t *testing.T) {
	got := SphereBounds(Vec3{1, 2, 3}, 0.5)
	want := AABB{Min: Vec3{0.5, 1.5, 2.5}, Max: Vec3{1.5, 2.5, 3.5}}
	if got != want {
		t.Errorf("SphereBounds = %v, want %v", got, want)
	}
}

func TestBoundsOf(t *testing.T) {
	t.Run("no points", func(t *testing.T) {
		if _, ok := BoundsOf(); ok {
			t.Error("BoundsOf() should report ok=false")
		}
	})

	t.Run("single point", func(t *testing.T) {
		bounds, ok := BoundsOf(Vec3{3, 4, 5})
		if !ok || bounds.Min != (Vec3{3, 4, 5}) || bounds.Max != (Vec3{3, 4, 5}) {
			t.Errorf("BoundsOf(single) = %v, %v", bounds, ok)
		}
	})

	t.Run("points away from the origin", func(t *testing.T) {
		bounds, ok := BoundsOf(Vec3{5, 6, 7}, Vec3{8, 5, 9}, Vec3{6, 7, 6})
		want := AABB{Min: Vec3{5, 5, 6}, Max: Vec3{8, 7, 9}}
		if !ok || bounds != want {
			t.Errorf("BoundsOf = %v, want %v", bounds, want)
		}
		if bounds.ContainsPoint(Vec3{}) {
			t.Error("bounds of far points should not include the origin")
		}
	})
}

// =============================================================================
// Union
// =============================================================================

func TestAABBUnion(t *testing.T) {
	a := AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	b := AABB{Min: Vec3{-1, 0.5, 2}, Max: Vec3{0.5, 3, 4}}
	want := AABB{Min: Vec3{-1, 0, 0}, Max: Vec3{1, 3, 4}}

	if got := a.Union(b); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}

	merged := a
	merged.Merge(b)
	if merged != want {
		t.Errorf("Merge = %v, want %v", merged, want)
	}
	if a != (AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}) {
		t.Error("Union must not modify its receiver")
	}
}

func TestAABBUnion_CommutativeAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randomBox := func() AABB {
		var lo, hi Vec3
		for i := 0; i < 3; i++ {
			lo[i] = rng.Float32()*20 - 10
			hi[i] = lo[i] + rng.Float32()*5
		}
		return AABB{Min: lo, Max: hi}
	}

	for i := 0; i < 200; i++ {
		a, b, c := randomBox(), randomBox(), randomBox()
		if a.Union(b) != b.Union(a) {
			t.Fatalf("Union not commutative for %v and %v", a, b)
		}
		if a.Union(b).Union(c) != a.Union(b.Union(c)) {
			t.Fatalf("Union not associative for %v, %v, %v", a, b, c)
		}
	}
}

// Folding into the zero value pulls the origin into the result.
func TestAABBUnion_ZeroValueAccumulatorIncludesOrigin(t *testing.T) {
	boxes := []AABB{
		{Min: Vec3{5, 5, 5}, Max: Vec3{6, 6, 6}},
		{Min: Vec3{7, 5, 5}, Max: Vec3{8, 9, 6}},
	}

	var accumulated AABB
	for _, box := range boxes {
		accumulated.Merge(box)
	}

	if accumulated.Min != (Vec3{0, 0, 0}) {
		t.Errorf("zero-seeded fold Min = %v, want the origin", accumulated.Min)
	}
	if !accumulated.ContainsPoint(Vec3{}) {
		t.Error("zero-seeded fold should contain the origin")
	}

	seeded, ok := UnionAll(boxes...)
	want := AABB{Min: Vec3{5, 5, 5}, Max: Vec3{8, 9, 6}}
	if !ok || seeded != want {
		t.Errorf("UnionAll = %v, want %v", seeded, want)
	}
	if _, ok := UnionAll(); ok {
		t.Error("UnionAll() should report ok=false")
	}
}

// =============================================================================
// ContainsPoint
// =============================================================================

func TestAABBContainsPoint(t *testing.T) {
	aabb := AABB{Min: Vec3{0, 0, 0}, Max: Vec3{2, 2, 2}}

	tests := []struct {
		name     string
		point    Vec3
		expected bool
	}{
		{"Center point", Vec3{1, 1, 1}, true},
		{"Min corner", Vec3{0, 0, 0}, true},
		{"Max corner", Vec3{2, 2, 2}, true},
		{"Mixed corner", Vec3{0, 2, 0}, true},
		{"Face center", Vec3{2, 1, 1}, true},
		{"Edge midpoint", Vec3{2, 2, 1}, true},
		{"Outside (X too large)", Vec3{2.001, 1, 1}, false},
		{"Outside (X too small)", Vec3{-0.001, 1, 1}, false},
		{"Outside (Y too large)", Vec3{1, 3, 1}, false},
		{"Outside (Y too small)", Vec3{1, -1, 1}, false},
		{"Outside (Z too large)", Vec3{1, 1, 3}, false},
		{"Outside (Z too small)", Vec3{1, 1, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := aabb.ContainsPoint(tt.point)
			if result != tt.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tt.point, result, tt.expected)
			}
		})
	}
}

func TestAABBContainsPoint_ZeroVolume(t *testing.T) {
	point := AABB{Min: Vec3{1, 1, 1}, Max: Vec3{1, 1, 1}}
	if !point.ContainsPoint(Vec3{1, 1, 1}) {
		t.Error("point box should contain its own point")
	}
	if point.ContainsPoint(Vec3{1, 1, 1.0001}) {
		t.Error("point box should not contain a nearby point")
	}
}

// =============================================================================
// Overlaps
// =============================================================================

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aabb1    AABB
		aabb2    AABB
		expected bool
	}{
		{"Separated on X axis", unitBox, AABB{Min: Vec3{2, 0, 0}, Max: Vec3{3, 1, 1}}, false},
		{"Separated on Y axis", unitBox, AABB{Min: Vec3{0, -2, 0}, Max: Vec3{1, -1, 1}}, false},
		{"Separated on Z axis", unitBox, AABB{Min: Vec3{0, 0, 2}, Max: Vec3{1, 1, 3}}, false},
		{"Separated on X and Y only", AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 2}}, AABB{Min: Vec3{2, 2, 1}, Max: Vec3{3, 3, 3}}, false},
		{"Identical", unitBox, unitBox, true},
		{"Partial overlap", AABB{Min: Vec3{0, 0, 0}, Max: Vec3{2, 2, 2}}, AABB{Min: Vec3{1, 1, 1}, Max: Vec3{3, 3, 3}}, true},
		{"Containment", AABB{Min: Vec3{0, 0, 0}, Max: Vec3{10, 10, 10}}, AABB{Min: Vec3{2, 2, 2}, Max: Vec3{3, 3, 3}}, true},
		{"Face touching", unitBox, AABB{Min: Vec3{1, 0, 0}, Max: Vec3{2, 1, 1}}, true},
		{"Corner touching", unitBox, AABB{Min: Vec3{1, 1, 1}, Max: Vec3{2, 2, 2}}, true},
		{"Corner near but not touching", unitBox, AABB{Min: Vec3{1.01, 1.01, 1.01}, Max: Vec3{2, 2, 2}}, false},
		{"Flat box crossing", AABB{Min: Vec3{0, 0, 0}, Max: Vec3{2, 2, 2}}, AABB{Min: Vec3{-1, -1, 1}, Max: Vec3{3, 3, 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.aabb1.Overlaps(tt.aabb2); got != tt.expected {
				t.Errorf("Overlaps = %v, expected %v", got, tt.expected)
			}
			// Test symmetry
			if got := tt.aabb2.Overlaps(tt.aabb1); got != tt.expected {
				t.Errorf("Overlaps (symmetry) = %v, expected %v", got, tt.expected)
			}
		})
	}
}

// =============================================================================
// Measures
// =============================================================================

func TestAABBArea(t *testing.T) {
	tests := []struct {
		name     string
		aabb     AABB
		expected float32
	}{
		{"Unit cube", unitBox, 3},
		{"Box 1x2x3", AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 2, 3}}, 1*2 + 2*3 + 3*1},
		{"Translated box", AABB{Min: Vec3{-5, 10, 2}, Max: Vec3{-4, 12, 5}}, 11},
		{"Degenerate", AABB{}, 0},
		{"Flat", AABB{Min: Vec3{0, 0, 0}, Max: Vec3{2, 3, 0}}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.aabb.Area(); got != tt.expected {
				t.Errorf("Area() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestAABBExtentsCenter(t *testing.T) {
	aabb := AABB{Min: Vec3{-1, 0, 2}, Max: Vec3{3, 4, 4}}
	if got := aabb.Extents(); got != (Vec3{4, 4, 2}) {
		t.Errorf("Extents() = %v", got)
	}
	if got := aabb.Center(); got != (Vec3{1, 2, 3}) {
		t.Errorf("Center() = %v", got)
	}
}

// =============================================================================
// OverlapSphere
// =============================================================================

func TestAABBOverlapSphere(t *testing.T) {
	tests := []struct {
		name     string
		center   Vec3
		radius   float32
		expected bool
	}{
		{"Center inside box", Vec3{0.5, 0.5, 0.5}, 0.1, true},
		{"Center on box face", Vec3{1, 0.5, 0.5}, 0, true},
		{"Far outside grown box", Vec3{5, 5, 5}, 1, false},
		{"Corner region, corner outside sphere", Vec3{1.5, 1.5, 1.5}, 0.5, false},
		{"Corner region, corner inside sphere", Vec3{1.5, 1.5, 1.5}, 1, true},
		{"Negative corner region, corner outside", Vec3{-0.5, -0.5, -0.5}, 0.8, false},
		{"Negative corner region, corner inside", Vec3{-0.5, -0.5, -0.5}, 0.9, true},
		{"Mixed corner region (+x, -y, +z)", Vec3{1.3, -0.3, 1.3}, 0.5, false},
		{"Mixed corner region touching", Vec3{1.3, -0.3, 1.3}, 0.6, true},
		{"Face region, sphere reaches face", Vec3{1.5, 0.5, 0.5}, 0.5, true},
		{"Face region, sphere short of face", Vec3{1.5, 0.5, 0.5}, 0.1, false},
		{"Face region below", Vec3{0.5, -2, 0.5}, 1.5, false},
		{"Zero radius outside", Vec3{1.0001, 0.5, 0.5}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unitBox.OverlapSphere(tt.center, tt.radius); got != tt.expected {
				t.Errorf("OverlapSphere(%v, %v) = %v, expected %v", tt.center, tt.radius, got, tt.expected)
			}
		})
	}
}

// In an edge region only the two slab distances are checked, so a sphere
// missing the edge is still accepted.
func TestAABBOverlapSphere_EdgeRegionIsConservative(t *testing.T) {
	center := Vec3{1.4, 1.4, 0.5}
	radius := float32(0.5)

	// Nearest box point is the edge point (1, 1, 0.5), about 0.566 away.
	nearest := Vec3{1, 1, 0.5}
	if distance := center.Sub(nearest).Len(); distance <= radius {
		t.Fatalf("test setup: edge distance %v should exceed radius %v", distance, radius)
	}

	if !unitBox.OverlapSphere(center, radius) {
		t.Error("edge region should be accepted without distance refinement")
	}
}

func TestAABBOverlapSphere_ExactOutsideEdgeRegions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	box := AABB{Min: Vec3{-1, -2, -3}, Max: Vec3{2, 1, 0}}

	for i := 0; i < 2000; i++ {
		center := Vec3{rng.Float32()*12 - 6, rng.Float32()*12 - 6, rng.Float32()*12 - 6}
		radius := rng.Float32() * 3

		closest := center.ClampedBetween(box.Min, box.Max)
		distanceSqr := center.Sub(closest).LenSqr()
		got := box.OverlapSphere(center, radius)

		// Whatever the region, a real overlap must never be rejected.
		if distanceSqr < radius*radius-1e-3 && !got {
			t.Fatalf("OverlapSphere(%v, %v) rejected a touching sphere", center, radius)
		}

		outside := 0
		for axis := 0; axis < 3; axis++ {
			if center[axis] < box.Min[axis] || center[axis] > box.Max[axis] {
				outside++
			}
		}
		if outside != 2 && distanceSqr > radius*radius+1e-3 && got {
			t.Fatalf("OverlapSphere(%v, %v) accepted a distant sphere outside an edge region", center, radius)
		}
	}
}

func TestAABBOverlapSphere_Concurrent(t *testing.T) {
	boxes := []AABB{
		unitBox,
		{Min: Vec3{10, 10, 10}, Max: Vec3{12, 12, 12}},
		{Min: Vec3{-5, -5, -5}, Max: Vec3{-4, -4, -4}},
	}
	centers := []Vec3{{0.5, 0.5, 0.5}, {1.5, 1.5, 1.5}, {11, 11, 13}, {-6, -6, -6}, {100, 0, 0}}
	radii := []float32{0.1, 0.5, 1, 2}

	expected := make([]bool, 0, len(boxes)*len(centers)*len(radii))
	for _, box := range boxes {
		for _, center := range centers {
			for _, radius := range radii {
				expected = append(expected, box.OverlapSphere(center, radius))
			}
		}
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for n8 := 0; n8 < 8; n8++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n200 := 0; n200 < 200; n200++ {
				i := 0
				for _, box := range boxes {
					for _, center := range centers {
						for _, radius := range radii {
							if box.OverlapSphere(center, radius) != expected[i] {
								errs <- "concurrent OverlapSphere disagreed with sequential result"
								return
							}
							i++
						}
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

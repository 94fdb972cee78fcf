package frontier

import (
	"strings"
	"testing"

	"github.com/Faultbox/vipo/pkg/math"
)

func TestComputeAABBScansEveryVertex(t *testing.T) {
	// Extremes deliberately placed at odd indices so a stride-2 scan
	// would miss them.
	vertices := []math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: -5, Y: 2, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 3, Y: -4, Z: 7},
	}
	box := ComputeAABB(vertices)

	if box.Min != (math.Vec3{X: -5, Y: -4, Z: 0}) {
		t.Errorf("Min = %v, want (-5, -4, 0)", box.Min)
	}
	if box.Max != (math.Vec3{X: 3, Y: 2, Z: 7}) {
		t.Errorf("Max = %v, want (3, 2, 7)", box.Max)
	}
}

func TestCornersEnumeration(t *testing.T) {
	box := AABB{Min: math.Vec3{X: 0, Y: 0, Z: 0}, Max: math.Vec3{X: 1, Y: 2, Z: 3}}
	c := box.Corners()

	want := [8]math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 3},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 3},
		{X: 0, Y: 2, Z: 0},
		{X: 0, Y: 2, Z: 3},
		{X: 1, Y: 2, Z: 0},
		{X: 1, Y: 2, Z: 3},
	}
	if c != want {
		t.Errorf("Corners() = %v, want %v", c, want)
	}
}

func TestAABBEdgesAxisOrder(t *testing.T) {
	box := AABB{Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	c := box.Corners()

	// The first three edges start at the min corner and run along +x,
	// +y, and +z respectively.
	axes := [3]math.Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	for i := 0; i < 3; i++ {
		e := AABBEdges[i]
		if c[e.A] != box.Min {
			t.Errorf("edge %d does not start at the min corner", i)
		}
		if got := c[e.B].Sub(c[e.A]); got != axes[i] {
			t.Errorf("edge %d direction = %v, want %v", i, got, axes[i])
		}
	}

	// Each corner appears in exactly three edges.
	var degree [8]int
	for _, e := range AABBEdges {
		degree[e.A]++
		degree[e.B]++
	}
	for i, d := range degree {
		if d != 3 {
			t.Errorf("corner %d has degree %d, want 3", i, d)
		}
	}
}

func TestModelMatrixMapsBoxToUnitCube(t *testing.T) {
	box := AABB{Min: math.Vec3{X: -1, Y: 2, Z: 0}, Max: math.Vec3{X: 3, Y: 10, Z: 4}}
	m := box.ModelMatrix()

	lo := m.TransformVec3(box.Min)
	hi := m.TransformVec3(box.Max)

	const eps = 1e-5
	for _, c := range []struct {
		name string
		got  math.Vec3
		want float32
	}{
		{"min", lo, -1},
		{"max", hi, 1},
	} {
		if abs(c.got.X-c.want) > eps || abs(c.got.Y-c.want) > eps || abs(c.got.Z-c.want) > eps {
			t.Errorf("%s corner mapped to %v, want (%v, %v, %v)", c.name, c.got, c.want, c.want, c.want)
		}
	}

	// The center must land on the origin.
	center := box.Min.Add(box.Max).Scale(0.5)
	if got := m.TransformVec3(center); got != (math.Vec3{}) {
		t.Errorf("center mapped to %v, want origin", got)
	}
}

func TestModelMatrixDegenerateExtent(t *testing.T) {
	// Single edge along x: y and z extents are zero.
	fr, err := Parse(strings.NewReader("v -2 0 0\nv 2 0 0\nl 0 1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	box := ComputeAABB(fr.Vertices)
	m := box.ModelMatrix()

	for i, v := range m {
		if isNaN(v) || isInf(v) {
			t.Fatalf("model matrix element %d is not finite: %v", i, v)
		}
	}

	// The non-degenerate axis still normalizes.
	hi := m.TransformVec3(math.Vec3{X: 2})
	if abs(hi.X-1) > 1e-5 {
		t.Errorf("max.x mapped to %v, want 1", hi.X)
	}
}

func TestModelMatrixSingleVertex(t *testing.T) {
	box := ComputeAABB([]math.Vec3{{X: 7, Y: -3, Z: 2}})
	m := box.ModelMatrix()

	for i, v := range m {
		if isNaN(v) || isInf(v) {
			t.Fatalf("model matrix element %d is not finite: %v", i, v)
		}
	}
	// The lone vertex is the box center and must land on the origin.
	if got := m.TransformVec3(math.Vec3{X: 7, Y: -3, Z: 2}); got != (math.Vec3{}) {
		t.Errorf("vertex mapped to %v, want origin", got)
	}
}

func TestFramerDeterminism(t *testing.T) {
	vertices := []math.Vec3{
		{X: 0.1, Y: 0.2, Z: 0.3},
		{X: -1.5, Y: 2.25, Z: 0},
		{X: 3, Y: -4, Z: 7},
	}

	boxA := ComputeAABB(vertices)
	boxB := ComputeAABB(vertices)
	if boxA != boxB {
		t.Fatalf("AABB not deterministic: %v vs %v", boxA, boxB)
	}
	if boxA.Corners() != boxB.Corners() {
		t.Error("corners not bit-identical across runs")
	}
	if boxA.ModelMatrix() != boxB.ModelMatrix() {
		t.Error("model matrix not bit-identical across runs")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func isNaN(x float32) bool { return x != x }

func isInf(x float32) bool { return x > 3.4e38 || x < -3.4e38 }

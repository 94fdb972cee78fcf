package frontier

import "github.com/Faultbox/vipo/pkg/math"

// AABB is the axis-aligned bounding box of a frontier.
type AABB struct {
	Min, Max math.Vec3
}

// AABBEdges is the fixed index table over Corners describing the twelve box
// edges. The first three run from corner 0 along +x, +y, and +z; the
// renderer draws them thicker than the remaining nine.
var AABBEdges = [12]Edge{
	{0, 2}, // +x
	{0, 4}, // +y
	{0, 1}, // +z
	{1, 3}, {3, 2}, {5, 7}, {7, 6}, {6, 4}, {4, 5}, {1, 5}, {3, 7}, {2, 6},
}

// degenerateExtent substitutes a zero extent on an axis so the model
// normalization stays non-singular (single vertex, flat frontier).
const degenerateExtent = 1e-6

// ComputeAABB returns the bounding box over every vertex.
func ComputeAABB(vertices []math.Vec3) AABB {
	box := AABB{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		box.Min = box.Min.Min(v)
		box.Max = box.Max.Max(v)
	}
	return box
}

// Corners returns the eight box corners in a fixed enumeration: index bit 2
// selects max.x, bit 1 selects max.y, bit 0 selects max.z.
func (b AABB) Corners() [8]math.Vec3 {
	return [8]math.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// ModelMatrix returns the normalization transform scale(2/extent) *
// translate(-center) that maps the box onto the cube [-1,+1]^3. A zero
// extent on any axis is widened to degenerateExtent first.
func (b AABB) ModelMatrix() math.Mat4 {
	extent := b.Max.Sub(b.Min)
	if extent.X == 0 {
		extent.X = degenerateExtent
	}
	if extent.Y == 0 {
		extent.Y = degenerateExtent
	}
	if extent.Z == 0 {
		extent.Z = degenerateExtent
	}

	center := b.Min.Add(b.Max).Scale(0.5)
	scale := math.Scale(2/extent.X, 2/extent.Y, 2/extent.Z)
	return scale.Mul(math.Translate(-center.X, -center.Y, -center.Z))
}

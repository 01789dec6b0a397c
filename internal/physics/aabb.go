package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) HalfSize() rl.Vector3 {
	return rl.Vector3Scale(a.Size(), 0.5)
}

// Corners returns the 8 corner points of the box.
func (a AABB) Corners() [8]rl.Vector3 {
	return [8]rl.Vector3{
		{X: a.Min.X, Y: a.Min.Y, Z: a.Min.Z},
		{X: a.Max.X, Y: a.Min.Y, Z: a.Min.Z},
		{X: a.Min.X, Y: a.Max.Y, Z: a.Min.Z},
		{X: a.Max.X, Y: a.Max.Y, Z: a.Min.Z},
		{X: a.Min.X, Y: a.Min.Y, Z: a.Max.Z},
		{X: a.Max.X, Y: a.Min.Y, Z: a.Max.Z},
		{X: a.Min.X, Y: a.Max.Y, Z: a.Max.Z},
		{X: a.Max.X, Y: a.Max.Y, Z: a.Max.Z},
	}
}

// Union returns the smallest AABB containing both boxes.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: rl.Vector3{
			X: minf(a.Min.X, b.Min.X),
			Y: minf(a.Min.Y, b.Min.Y),
			Z: minf(a.Min.Z, b.Min.Z),
		},
		Max: rl.Vector3{
			X: maxf(a.Max.X, b.Max.X),
			Y: maxf(a.Max.Y, b.Max.Y),
			Z: maxf(a.Max.Z, b.Max.Z),
		},
	}
}

// Inflate grows the box uniformly by a fraction of its size on every axis.
func (a AABB) Inflate(fraction float32) AABB {
	half := a.HalfSize()
	grow := rl.Vector3{
		X: half.X * fraction,
		Y: half.Y * fraction,
		Z: half.Z * fraction,
	}
	return AABB{
		Min: rl.Vector3Subtract(a.Min, grow),
		Max: rl.Vector3Add(a.Max, grow),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

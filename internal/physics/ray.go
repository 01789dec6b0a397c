package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RayHit describes a single ray intersection against scene geometry.
type RayHit struct {
	Collider Collider
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RayAABB intersects a ray with an axis-aligned box using the slab method.
func RayAABB(origin, direction rl.Vector3, box AABB, maxDistance float32) (RayHit, bool) {
	min := box.Min
	max := box.Max

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return RayHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return RayHit{}, false
	}

	if tmin > tmax {
		return RayHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return RayHit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return RayHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RayHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal from whichever face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if absf(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1}
	} else if absf(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1}
	} else if absf(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{Y: -1}
	} else if absf(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{Y: 1}
	} else if absf(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{Z: -1}
	} else {
		normal = rl.Vector3{Z: 1}
	}

	return RayHit{Point: point, Normal: normal, Distance: t}, true
}

// RayTriangle intersects a ray with a single triangle (Moller-Trumbore).
// The returned normal always opposes the ray direction.
func RayTriangle(origin, direction, v0, v1, v2 rl.Vector3, maxDistance float32) (RayHit, bool) {
	const epsilon = 1e-7

	edge1 := rl.Vector3Subtract(v1, v0)
	edge2 := rl.Vector3Subtract(v2, v0)

	p := rl.Vector3CrossProduct(direction, edge2)
	det := rl.Vector3DotProduct(edge1, p)
	if det > -epsilon && det < epsilon {
		return RayHit{}, false // ray parallel to the triangle plane
	}
	invDet := 1 / det

	s := rl.Vector3Subtract(origin, v0)
	u := invDet * rl.Vector3DotProduct(s, p)
	if u < 0 || u > 1 {
		return RayHit{}, false
	}

	q := rl.Vector3CrossProduct(s, edge1)
	v := invDet * rl.Vector3DotProduct(direction, q)
	if v < 0 || u+v > 1 {
		return RayHit{}, false
	}

	t := invDet * rl.Vector3DotProduct(edge2, q)
	if t < 0 || t > maxDistance {
		return RayHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3CrossProduct(edge1, edge2))
	if rl.Vector3DotProduct(normal, direction) > 0 {
		normal = rl.Vector3Scale(normal, -1)
	}

	return RayHit{Point: point, Normal: normal, Distance: t}, true
}

// RaySphere intersects a ray with a sphere.
func RaySphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RayHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RayHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RayHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RayHit{Point: point, Normal: normal, Distance: t}, true
}

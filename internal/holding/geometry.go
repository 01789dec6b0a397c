package holding

import (
	"fmt"

	"persp3d/internal/components"
	"persp3d/internal/engine"
	"persp3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// screenRect is the camera-space bounding rectangle of a point set,
// measured on the plane z = Depth (the depth of the closest point).
type screenRect struct {
	Left, Right float32
	Bottom, Top float32
	Depth       float32
}

func (r screenRect) Width() float32  { return r.Right - r.Left }
func (r screenRect) Height() float32 { return r.Top - r.Bottom }

func (r screenRect) Center() rl.Vector2 {
	return rl.Vector2{X: (r.Left + r.Right) / 2, Y: (r.Bottom + r.Top) / 2}
}

func (r screenRect) clampX(x float32) float32 { return clampf(x, r.Left, r.Right) }
func (r screenRect) clampY(y float32) float32 { return clampf(y, r.Bottom, r.Top) }

// projectedRect computes the axis-aligned rectangle covering a set of
// camera-space points, perspective-projected onto the plane of the closest
// point. Panics if that closest depth is not positive: bounds behind or at
// the camera mean broken authoring or state, and the geometry downstream
// is undefined.
func projectedRect(corners []rl.Vector3) screenRect {
	depth := corners[0].Z
	for _, c := range corners[1:] {
		if c.Z < depth {
			depth = c.Z
		}
	}
	if depth <= 0 {
		panic(fmt.Sprintf("holding: object bounds behind camera (closest depth %v)", depth))
	}

	first := true
	var rect screenRect
	rect.Depth = depth
	for _, c := range corners {
		// Project onto the plane z = depth through the camera origin.
		x := c.X * depth / c.Z
		y := c.Y * depth / c.Z
		if first {
			rect.Left, rect.Right = x, x
			rect.Bottom, rect.Top = y, y
			first = false
			continue
		}
		if x < rect.Left {
			rect.Left = x
		}
		if x > rect.Right {
			rect.Right = x
		}
		if y < rect.Bottom {
			rect.Bottom = y
		}
		if y > rect.Top {
			rect.Top = y
		}
	}
	return rect
}

// renderLocalBounds unions the local bounds of every renderer on the object
// and its children (child bounds offset by the child's local position).
func renderLocalBounds(g *engine.GameObject) (physics.AABB, bool) {
	var union physics.AABB
	found := false

	for _, r := range engine.GetComponents[*components.ModelRenderer](g) {
		b := r.LocalBounds()
		if !found {
			union = b
			found = true
		} else {
			union = union.Union(b)
		}
	}
	for _, child := range g.Children {
		if b, ok := renderLocalBounds(child); ok {
			shifted := physics.AABB{
				Min: rl.Vector3Add(b.Min, child.Transform.Position),
				Max: rl.Vector3Add(b.Max, child.Transform.Position),
			}
			if !found {
				union = shifted
				found = true
			} else {
				union = union.Union(shifted)
			}
		}
	}
	return union, found
}

// cameraSpaceBoundsCorners transforms the 8 corners of the held object's
// proxy bounds into camera space.
func (h *Holdable) cameraSpaceBoundsCorners() []rl.Vector3 {
	obj := h.GetGameObject()
	cam := h.Coord.Camera
	corners := h.proxyBounds.Corners()
	out := make([]rl.Vector3, 0, len(corners))
	for _, corner := range corners {
		out = append(out, cam.WorldToCamera(obj.TransformPoint(corner)))
	}
	return out
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

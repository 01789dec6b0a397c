package components

import (
	"persp3d/internal/engine"
	"persp3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

// ModelRenderer draws a primitive mesh and exposes its local-space bounds,
// which the silhouette sampler and the proxy collider are built from.
type ModelRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
}

func NewModelRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *ModelRenderer {
	return &ModelRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// LocalBounds returns the mesh bounding box in the owner's local space,
// before any transform is applied.
func (m *ModelRenderer) LocalBounds() physics.AABB {
	switch m.MeshType {
	case MeshSphere:
		d := m.Size.X * 2
		return physics.NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: d, Y: d, Z: d})
	case MeshPlane:
		return physics.NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: m.Size.X, Y: 0, Z: m.Size.Z})
	default:
		return physics.NewAABBFromCenter(rl.Vector3{}, m.Size)
	}
}

// WorldBoundsCenter returns the world position of the local bounds center.
func (m *ModelRenderer) WorldBoundsCenter() rl.Vector3 {
	g := m.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return g.TransformPoint(m.LocalBounds().Center())
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()

	switch m.MeshType {
	case MeshCube:
		size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}
		rl.DrawCubeV(pos, size, m.Color)
		rl.DrawCubeWiresV(pos, size, rl.Black)
	case MeshSphere:
		rl.DrawSphere(pos, m.Size.X*scale.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: m.Size.X * scale.X, Y: m.Size.Z * scale.Z}, m.Color)
	}
}

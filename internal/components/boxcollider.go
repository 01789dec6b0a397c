package components

import (
	"persp3d/internal/engine"
	"persp3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an axis-aligned box in world space, sized in local units
// and scaled by the owner's world scale.
type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	OnLayer   physics.Layer
	IsTrigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:    size,
		Offset:  rl.Vector3{},
		OnLayer: physics.LayerDefault,
	}
}

func (b *BoxCollider) Owner() *engine.GameObject { return b.GetGameObject() }
func (b *BoxCollider) Layer() physics.Layer { return b.OnLayer }
func (b *BoxCollider) SetLayer(l physics.Layer) { b.OnLayer = l }
func (b *BoxCollider) Trigger() bool { return b.IsTrigger }

func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	s := g.WorldScale()
	return rl.Vector3{
		X: absf(b.Size.X * s.X),
		Y: absf(b.Size.Y * s.Y),
		Z: absf(b.Size.Z * s.Z),
	}
}

func (b *BoxCollider) Bounds() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}

func (b *BoxCollider) RayIntersect(origin, direction rl.Vector3, maxDistance float32) (physics.RayHit, bool) {
	hit, ok := physics.RayAABB(origin, direction, b.Bounds(), maxDistance)
	if ok {
		hit.Collider = b
	}
	return hit, ok
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

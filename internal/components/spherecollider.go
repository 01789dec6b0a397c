package components

import (
	"persp3d/internal/engine"
	"persp3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius    float32
	Offset    rl.Vector3
	OnLayer   physics.Layer
	IsTrigger bool
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius:  radius,
		OnLayer: physics.LayerDefault,
	}
}

func (s *SphereCollider) Owner() *engine.GameObject { return s.GetGameObject() }
func (s *SphereCollider) Layer() physics.Layer { return s.OnLayer }
func (s *SphereCollider) SetLayer(l physics.Layer) { s.OnLayer = l }
func (s *SphereCollider) Trigger() bool { return s.IsTrigger }

func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	if g == nil {
		return s.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// WorldRadius scales the radius by the largest world scale axis.
func (s *SphereCollider) WorldRadius() float32 {
	g := s.GetGameObject()
	if g == nil {
		return s.Radius
	}
	ws := g.WorldScale()
	r := absf(ws.X)
	if absf(ws.Y) > r {
		r = absf(ws.Y)
	}
	if absf(ws.Z) > r {
		r = absf(ws.Z)
	}
	return s.Radius * r
}

func (s *SphereCollider) RayIntersect(origin, direction rl.Vector3, maxDistance float32) (physics.RayHit, bool) {
	hit, ok := physics.RaySphere(origin, direction, s.GetCenter(), s.WorldRadius(), maxDistance)
	if ok {
		hit.Collider = s
	}
	return hit, ok
}

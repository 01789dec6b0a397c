package physics

import (
	"sort"

	"persp3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is implemented by component types that expose a raycastable
// shape. Colliders register themselves with a PhysicsWorld; keeping this an
// interface means the physics package never depends on concrete components.
type Collider interface {
	Owner() *engine.GameObject
	Layer() Layer
	Trigger() bool
	RayIntersect(origin, direction rl.Vector3, maxDistance float32) (RayHit, bool)
}

// PhysicsWorld owns the set of scene colliders and answers ray queries
// against them.
type PhysicsWorld struct {
	colliders []Collider
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		colliders: make([]Collider, 0),
	}
}

func (p *PhysicsWorld) AddCollider(c Collider) {
	p.colliders = append(p.colliders, c)
}

func (p *PhysicsWorld) RemoveCollider(c Collider) {
	for i, existing := range p.colliders {
		if existing == c {
			p.colliders = append(p.colliders[:i], p.colliders[i+1:]...)
			return
		}
	}
}

func (p *PhysicsWorld) Colliders() []Collider {
	return p.colliders
}

func (p *PhysicsWorld) accepts(c Collider, mask Layer, triggers TriggerPolicy) bool {
	if c.Layer()&mask == 0 {
		return false
	}
	if c.Trigger() && triggers == IgnoreTriggers {
		return false
	}
	return true
}

// Raycast returns the closest hit against colliders matching the layer mask.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask Layer, triggers TriggerPolicy) (RayHit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closestHit RayHit
	closestHit.Distance = maxDistance
	hit := false

	for _, c := range p.colliders {
		if !p.accepts(c, mask, triggers) {
			continue
		}
		if hitInfo, ok := c.RayIntersect(origin, direction, maxDistance); ok {
			if hitInfo.Distance < closestHit.Distance {
				closestHit = hitInfo
				closestHit.Collider = c
				hit = true
			}
		}
	}

	return closestHit, hit
}

// RaycastAll returns every hit against colliders matching the layer mask,
// sorted by distance ascending.
func (p *PhysicsWorld) RaycastAll(origin, direction rl.Vector3, maxDistance float32, mask Layer, triggers TriggerPolicy) []RayHit {
	direction = rl.Vector3Normalize(direction)
	var hits []RayHit

	for _, c := range p.colliders {
		if !p.accepts(c, mask, triggers) {
			continue
		}
		if hitInfo, ok := c.RayIntersect(origin, direction, maxDistance); ok {
			hitInfo.Collider = c
			hits = append(hits, hitInfo)
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

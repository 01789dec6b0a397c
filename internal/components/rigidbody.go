package components

import (
	"persp3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rigidbody carries the simulation flags the holding lifecycle toggles.
// Free-object dynamics themselves are the host physics step's business.
type Rigidbody struct {
	engine.BaseComponent
	Velocity         rl.Vector3
	AngularVelocity  rl.Vector3 // degrees per second on each axis
	Mass             float32
	UseGravity       bool
	IsKinematic      bool // moves but doesn't get pushed by physics
	DetectCollisions bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:             1.0,
		UseGravity:       true,
		IsKinematic:      false,
		DetectCollisions: true,
	}
}

// SimulationState is a snapshot of the flags a grab suppresses,
// restored exactly on release.
type SimulationState struct {
	Velocity         rl.Vector3
	AngularVelocity  rl.Vector3
	UseGravity       bool
	IsKinematic      bool
	DetectCollisions bool
}

// Freeze stops simulation and returns the prior state.
func (r *Rigidbody) Freeze() SimulationState {
	saved := SimulationState{
		Velocity:         r.Velocity,
		AngularVelocity:  r.AngularVelocity,
		UseGravity:       r.UseGravity,
		IsKinematic:      r.IsKinematic,
		DetectCollisions: r.DetectCollisions,
	}
	r.Velocity = rl.Vector3{}
	r.AngularVelocity = rl.Vector3{}
	r.UseGravity = false
	r.IsKinematic = true
	r.DetectCollisions = false
	return saved
}

// Restore reapplies a snapshot taken by Freeze.
func (r *Rigidbody) Restore(s SimulationState) {
	r.Velocity = s.Velocity
	r.AngularVelocity = s.AngularVelocity
	r.UseGravity = s.UseGravity
	r.IsKinematic = s.IsKinematic
	r.DetectCollisions = s.DetectCollisions
}

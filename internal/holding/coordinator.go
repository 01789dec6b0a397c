package holding

import (
	"persp3d/internal/components"
	"persp3d/internal/engine"
	"persp3d/internal/input"
	"persp3d/internal/physics"

	"github.com/rs/zerolog"
)

// Coordinator owns the process-wide holding state: the single "currently
// held" slot and the per-frame gaze cache. One instance is created at
// system start and injected into every Holdable; there are no package-level
// statics.
//
// The gaze cache exists because several candidate Holdables may be polled
// in the same frame: the first grab moves its object's colliders to the
// ignore-raycast layer, which would change what a fresh gaze ray sees for
// the remaining candidates. Caching the topmost hit once per frame keeps
// every candidate's view of the frame consistent.
type Coordinator struct {
	Camera   *components.Camera
	World    *physics.PhysicsWorld
	Settings Settings
	Log      zerolog.Logger

	HoldingStarted engine.EventWithArg[*Holdable]
	HoldingEnded   engine.EventWithArg[*Holdable]

	press   input.TwoHandPress
	frame   uint64
	current *Holdable

	gazeFrame uint64
	gazeHit   physics.RayHit
	gazeOK    bool
}

func NewCoordinator(camera *components.Camera, world *physics.PhysicsWorld, settings Settings) *Coordinator {
	return &Coordinator{
		Camera:   camera,
		World:    world,
		Settings: settings,
		Log:      zerolog.Nop(),
	}
}

// BeginFrame advances the frame counter and edge-detects the two hold
// signals. Call exactly once per frame, before Scene.Update.
func (c *Coordinator) BeginFrame(left, right bool) {
	c.frame++
	c.press.Update(left, right)
}

// Frame returns the current frame index.
func (c *Coordinator) Frame() uint64 { return c.frame }

// GrabEdge reports the rising edge of the simultaneous press this frame.
func (c *Coordinator) GrabEdge() bool { return c.press.Pressed() }

// ReleaseEdge reports the falling edge of the simultaneous press this frame.
func (c *Coordinator) ReleaseEdge() bool { return c.press.Released() }

// Current returns the Holdable occupying the holding slot, or nil.
func (c *Coordinator) Current() *Holdable { return c.current }

// GazeHit returns the topmost collider along the camera's forward ray.
// The result is computed at most once per frame; every candidate polled in
// the same frame sees the same answer regardless of layer changes made by
// an earlier grab.
func (c *Coordinator) GazeHit() (physics.RayHit, bool) {
	if c.Camera == nil || c.World == nil {
		return physics.RayHit{}, false
	}
	if c.gazeFrame != c.frame {
		c.gazeFrame = c.frame
		c.gazeHit, c.gazeOK = c.World.Raycast(
			c.Camera.Position(), c.Camera.Forward(),
			c.Settings.GazeRange, physics.MaskAll, physics.IgnoreTriggers)
	}
	return c.gazeHit, c.gazeOK
}

func (c *Coordinator) setCurrent(h *Holdable) {
	c.current = h
}

func (c *Coordinator) clearCurrent(h *Holdable) {
	if c.current == h {
		c.current = nil
	}
}

// Reset clears the holding slot and gaze cache, releasing the holder if
// one exists. Intended for scene teardown.
func (c *Coordinator) Reset() {
	if c.current != nil {
		c.current.Release()
	}
	c.gazeFrame = 0
	c.gazeOK = false
	c.frame = 0
	c.press = input.TwoHandPress{}
}

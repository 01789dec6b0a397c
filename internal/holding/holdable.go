package holding

import (
	"errors"
	"fmt"

	"persp3d/internal/components"
	"persp3d/internal/engine"
	"persp3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Grab refusals. Ordinary contention and visibility outcomes, not faults.
var (
	ErrSlotTaken    = errors.New("holding: another object is already held")
	ErrNotUnderGaze = errors.New("holding: object is not the gaze target")
	ErrSightBlocked = errors.New("holding: line of sight to object is blocked")
)

// Holdable turns a GameObject into a forced-perspective pickup. While held,
// the object lives under the camera's GameObject; every pre-render tick the
// pipeline rebuilds its silhouette grid, resolves the closest obstruction
// depth along it, rescales the object to keep its apparent size, and pins
// its projection to the viewport anchor.
//
// Exactly one Holdable can be held at a time; the Coordinator enforces the
// slot and must be the same instance for all candidates.
type Holdable struct {
	engine.BaseComponent
	Coord *Coordinator

	held           bool
	originalParent *engine.GameObject

	// Captured at grab, restored or destroyed at release.
	ratio       float32 // camera distance / uniform scale at grab time
	anchor      rl.Vector2
	grabPose    rl.Vector3 // camera-space position at grab
	heldDepth   float32
	savedSim    components.SimulationState
	hasBody     bool
	savedLayers map[mutableCollider]physics.Layer
	proxy       *components.BoxCollider
	proxyBounds physics.AABB // object-local, padding included

	anim   anchorAnim
	smooth smoothWindow
}

// mutableCollider is a collider whose layer the grab lifecycle can park on
// the ignore-raycast layer and restore later.
type mutableCollider interface {
	physics.Collider
	SetLayer(physics.Layer)
}

func NewHoldable(coord *Coordinator) *Holdable {
	return &Holdable{Coord: coord}
}

func (h *Holdable) IsHeld() bool { return h.held }

// Ratio returns the grab-time distance/scale ratio. Zero before first grab.
func (h *Holdable) Ratio() float32 { return h.ratio }

func (h *Holdable) Update(deltaTime float32) {
	if h.Coord == nil {
		return
	}
	if !h.held {
		if h.Coord.GrabEdge() {
			if err := h.TryGrab(); err != nil {
				h.Coord.Log.Debug().Err(err).
					Str("object", h.objectName()).
					Msg("grab refused")
			}
		}
		return
	}
	if h.Coord.ReleaseEdge() {
		h.Release()
		return
	}
	h.advanceAnimations(deltaTime)
}

// LateUpdate runs the pre-render pipeline: geometry, silhouette, depth,
// scale, anchor. The host must invoke it after transform updates and before
// drawing. A missing camera skips the whole tick.
func (h *Holdable) LateUpdate() {
	if !h.held {
		return
	}
	cam := h.Coord.Camera
	if cam == nil || cam.GetGameObject() == nil {
		return
	}

	rect := projectedRect(h.cameraSpaceBoundsCorners())

	if obstruction, ok := h.resolveDepth(h.silhouetteFrom(rect)); ok {
		h.applyDepth(obstruction)
	}
	h.UpdateScale()
	h.applyAnchor(rect)
	h.applySmoothing()
}

// TryGrab attempts the Free -> Held transition. Refusals (slot taken, gaze
// mismatch, blocked sight line) come back as errors; a non-uniform scale is
// a fatal fault and panics, since all depth/scale math downstream assumes
// uniform scale.
func (h *Holdable) TryGrab() error {
	coord := h.Coord
	obj := h.GetGameObject()
	cam := coord.Camera
	if obj == nil || cam == nil || cam.GetGameObject() == nil || coord.World == nil {
		return ErrNotUnderGaze
	}

	if coord.Current() != nil {
		return ErrSlotTaken
	}

	// The per-frame shared gaze cache decides who is under the crosshair.
	hit, ok := coord.GazeHit()
	if !ok || hit.Collider == nil || hit.Collider.Owner() != obj {
		return ErrNotUnderGaze
	}

	if err := h.checkLineOfSight(); err != nil {
		return err
	}

	ws := obj.WorldScale()
	tol := coord.Settings.ScaleTolerance
	if absf(ws.X-ws.Y) > tol || absf(ws.Y-ws.Z) > tol || absf(ws.X-ws.Z) > tol {
		panic(fmt.Sprintf("holding: non-uniform scale on %q at grab time: %v", obj.Name, ws))
	}

	h.grab(ws.X)
	return nil
}

// checkLineOfSight walks the all-hits ray from the camera to the renderer
// bounds center, nearest first. The object's own collider must come before
// any obstacle-layer collider.
func (h *Holdable) checkLineOfSight() error {
	coord := h.Coord
	obj := h.GetGameObject()
	cam := coord.Camera

	center := obj.WorldPosition()
	if bounds, ok := renderLocalBounds(obj); ok {
		center = obj.TransformPoint(bounds.Center())
	}
	origin := cam.Position()
	dir := rl.Vector3Subtract(center, origin)
	if rl.Vector3Length(dir) == 0 {
		return nil
	}

	hits := coord.World.RaycastAll(origin, dir, coord.Settings.GazeRange, physics.MaskAll, physics.IgnoreTriggers)
	for _, hit := range hits {
		if hit.Collider.Owner() == obj {
			return nil
		}
		if hit.Collider.Layer()&coord.Settings.ObstacleMask != 0 {
			return ErrSightBlocked
		}
	}
	return ErrSightBlocked
}

func (h *Holdable) grab(uniformScale float32) {
	coord := h.Coord
	obj := h.GetGameObject()
	cam := coord.Camera
	camObj := cam.GetGameObject()
	s := coord.Settings

	worldPos := obj.WorldPosition()
	worldRot := obj.WorldRotation()

	// Reparent into camera space, preserving the world pose.
	h.originalParent = obj.Parent
	if obj.Parent != nil {
		obj.Parent.RemoveChild(obj)
	}
	camObj.AddChild(obj)
	pose := cam.WorldToCamera(worldPos)
	obj.Transform.Position = cam.LocalFromCameraSpace(pose)
	obj.Transform.Rotation = rl.Vector3Subtract(worldRot, camObj.WorldRotation())
	obj.Transform.Scale = rl.Vector3{X: uniformScale, Y: uniformScale, Z: uniformScale}

	// Grab-time snapshots driving the whole held lifetime.
	h.ratio = rl.Vector3Distance(cam.Position(), worldPos) / uniformScale
	h.anchor, _ = cam.WorldToViewport(worldPos)
	h.grabPose = pose
	h.heldDepth = pose.Z

	if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
		h.savedSim = rb.Freeze()
		h.hasBody = true
	} else {
		h.hasBody = false
	}

	// Park every collider on the ignore-raycast layer so the object can
	// never occlude its own depth rays or the shared gaze ray.
	h.savedLayers = make(map[mutableCollider]physics.Layer)
	for _, col := range objectColliders(obj) {
		if mc, ok := col.(mutableCollider); ok {
			h.savedLayers[mc] = mc.Layer()
			mc.SetLayer(physics.LayerIgnoreRaycast)
		}
	}

	h.buildProxy()

	h.smooth = smoothWindow{active: s.SmoothDuration > 0, duration: s.SmoothDuration}
	h.anim = anchorAnim{}
	if s.CenterAnchor {
		h.anim = anchorAnim{
			active:   true,
			duration: s.CenterDuration,
			from:     h.anchor,
			to:       s.TargetAnchor,
		}
	}

	h.held = true
	coord.setCurrent(h)
	coord.Log.Info().
		Str("object", obj.Name).
		Float32("ratio", h.ratio).
		Msg("holding started")
	coord.HoldingStarted.Invoke(h)
}

// Release is the exact inverse of grab: restore parent, simulation flags,
// and collider layers, destroy the proxy collider, clear the slot, and
// cancel any in-flight animation.
func (h *Holdable) Release() {
	if !h.held {
		return
	}
	coord := h.Coord
	obj := h.GetGameObject()

	worldPos := obj.WorldPosition()
	worldRot := obj.WorldRotation()
	worldScale := obj.WorldScale()

	// Detach from whatever holds us now. The camera may already be torn
	// down at this point, so the detach goes through the object itself.
	if obj.Parent != nil {
		obj.Parent.RemoveChild(obj)
	}
	if h.originalParent != nil {
		parent := h.originalParent
		parent.AddChild(obj)
		obj.Transform.Position = parent.InverseTransformPoint(worldPos)
		obj.Transform.Rotation = rl.Vector3Subtract(worldRot, parent.WorldRotation())
		ps := parent.WorldScale()
		obj.Transform.Scale = rl.Vector3{
			X: worldScale.X / ps.X,
			Y: worldScale.Y / ps.Y,
			Z: worldScale.Z / ps.Z,
		}
	} else {
		obj.Transform.Position = worldPos
		obj.Transform.Rotation = worldRot
		obj.Transform.Scale = worldScale
	}
	h.originalParent = nil

	if h.hasBody {
		if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
			rb.Restore(h.savedSim)
		}
	}

	if h.proxy != nil {
		obj.RemoveComponent(h.proxy)
		h.proxy = nil
	}

	for col, layer := range h.savedLayers {
		col.SetLayer(layer)
	}
	h.savedLayers = nil

	// Cancel, not pause: no animation may touch the object after release.
	h.anim = anchorAnim{}
	h.smooth = smoothWindow{}

	h.held = false
	coord.clearCurrent(h)
	coord.Log.Info().Str("object", obj.Name).Msg("holding ended")
	coord.HoldingEnded.Invoke(h)
}

// buildProxy creates the temporary bounding collider encapsulating the
// union of all renderer local bounds plus the configured padding.
func (h *Holdable) buildProxy() {
	obj := h.GetGameObject()
	bounds, ok := renderLocalBounds(obj)
	if !ok {
		bounds = physics.NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	}
	bounds = bounds.Inflate(h.Coord.Settings.ProxyPadding)
	h.proxyBounds = bounds

	h.proxy = components.NewBoxCollider(bounds.Size())
	h.proxy.Offset = bounds.Center()
	h.proxy.OnLayer = physics.LayerIgnoreRaycast
	h.proxy.IsTrigger = true
	obj.AddComponent(h.proxy)
}

// cameraSpacePosition reads the object's position in camera space (+Z depth).
func (h *Holdable) cameraSpacePosition() rl.Vector3 {
	return h.Coord.Camera.CameraSpaceFromLocal(h.GetGameObject().Transform.Position)
}

// setCameraSpacePosition writes the object's camera-space position through
// its local transform under the camera's GameObject.
func (h *Holdable) setCameraSpacePosition(p rl.Vector3) {
	h.GetGameObject().Transform.Position = h.Coord.Camera.LocalFromCameraSpace(p)
}

func (h *Holdable) objectName() string {
	if g := h.GetGameObject(); g != nil {
		return g.Name
	}
	return "<detached>"
}

// objectColliders collects the colliders attached to the object and its
// children.
func objectColliders(g *engine.GameObject) []physics.Collider {
	var out []physics.Collider
	for _, c := range g.Components() {
		if col, ok := c.(physics.Collider); ok {
			out = append(out, col)
		}
	}
	for _, child := range g.Children {
		out = append(out, objectColliders(child)...)
	}
	return out
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

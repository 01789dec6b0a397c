package holding

import (
	"github.com/gen2brain/raylib-go/easings"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// anchorAnim eases the viewport anchor from its grab-time value toward a
// target anchor. Once complete the anchor is pinned to the target. An
// explicit state machine advanced by Update(dt); release clears it
// outright, never pauses it.
type anchorAnim struct {
	active   bool
	elapsed  float32
	duration float32
	from     rl.Vector2
	to       rl.Vector2
}

func (a *anchorAnim) advance(dt float32) (rl.Vector2, bool) {
	if !a.active {
		return rl.Vector2{}, false
	}
	a.elapsed += dt
	if a.elapsed >= a.duration || a.duration <= 0 {
		a.active = false
		return a.to, true
	}
	f := easings.CubicOut(a.elapsed, 0, 1, a.duration)
	return rl.Vector2{
		X: a.from.X + (a.to.X-a.from.X)*f,
		Y: a.from.Y + (a.to.Y-a.from.Y)*f,
	}, true
}

// smoothWindow blends the held pose from the grab pose over a short window
// right after grab, so the object does not teleport to its resolved pose.
type smoothWindow struct {
	active   bool
	elapsed  float32
	duration float32
}

func (w *smoothWindow) advance(dt float32) {
	if !w.active {
		return
	}
	w.elapsed += dt
	if w.elapsed >= w.duration || w.duration <= 0 {
		w.active = false
	}
}

// fraction returns the eased blend fraction toward the resolved pose.
func (w *smoothWindow) fraction() float32 {
	if !w.active {
		return 1
	}
	return easings.CubicOut(w.elapsed, 0, 1, w.duration)
}

// UpdateScale applies the uniform scale that keeps the object's apparent
// size constant: current camera distance divided by the ratio captured at
// grab time.
func (h *Holdable) UpdateScale() {
	obj := h.GetGameObject()
	cam := h.Coord.Camera
	d := rl.Vector3Distance(cam.Position(), obj.WorldPosition())
	s := d / h.ratio
	obj.Transform.Scale = rl.Vector3{X: s, Y: s, Z: s}
}

// applyAnchor repositions the object along the camera's view rays so its
// projection lands on the stored viewport anchor at its current depth.
// While the centering animation is still in flight, the intermediate
// anchor point is clamped to the object's own projected rectangle.
func (h *Holdable) applyAnchor(rect screenRect) {
	cam := h.Coord.Camera
	depth := h.heldDepth

	target := cam.WorldToCamera(cam.ViewportToWorld(h.anchor, depth))
	if h.anim.active {
		// Scale the rectangle from its own plane to the current depth.
		k := depth / rect.Depth
		target.X = clampf(target.X, rect.Left*k, rect.Right*k)
		target.Y = clampf(target.Y, rect.Bottom*k, rect.Top*k)
	}
	target.Z = depth

	h.setCameraSpacePosition(target)
}

// applySmoothing blends the pose written this tick with the grab-time pose
// while the post-grab smoothing window is active.
func (h *Holdable) applySmoothing() {
	if !h.smooth.active {
		return
	}
	f := h.smooth.fraction()
	resolved := h.cameraSpacePosition()
	blended := rl.Vector3{
		X: h.grabPose.X + (resolved.X-h.grabPose.X)*f,
		Y: h.grabPose.Y + (resolved.Y-h.grabPose.Y)*f,
		Z: h.grabPose.Z + (resolved.Z-h.grabPose.Z)*f,
	}
	h.setCameraSpacePosition(blended)
}

// advanceAnimations steps the timed helpers by one frame. Both are owned by
// the current hold; Release clears them so a cancelled animation can never
// touch the object again.
func (h *Holdable) advanceAnimations(dt float32) {
	h.smooth.advance(dt)
	if anchor, ok := h.anim.advance(dt); ok {
		h.anchor = anchor
	}
}

// Anchor returns the current viewport anchor.
func (h *Holdable) Anchor() rl.Vector2 { return h.anchor }

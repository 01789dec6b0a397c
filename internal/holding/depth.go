package holding

import (
	"iter"

	"persp3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// resolveDepth casts every silhouette sample against the obstacle layers
// and returns the minimum obstruction depth in camera-space Z. ok is false
// when no sample produced a hit, in which case no depth constraint applies
// this tick.
func (h *Holdable) resolveDepth(samples iter.Seq[rl.Vector3]) (float32, bool) {
	cam := h.Coord.Camera
	world := h.Coord.World
	s := h.Coord.Settings

	best := s.MaxDistance
	found := false
	for c := range samples {
		target := cam.CameraToWorld(c)
		origin := cam.NearPlanePoint(target)
		dir := rl.Vector3Subtract(target, origin)
		if rl.Vector3Length(dir) == 0 {
			continue
		}
		hit, ok := world.Raycast(origin, dir, s.MaxDistance, s.ObstacleMask, physics.IgnoreTriggers)
		if !ok {
			continue
		}
		depth := cam.WorldToCamera(hit.Point).Z
		if depth < best {
			best = depth
			found = true
		}
	}
	return best, found
}

// halfThickness projects the object's oriented bounding extents, at the
// given uniform scale, onto the camera's forward axis.
func (h *Holdable) halfThickness(scale float32) float32 {
	obj := h.GetGameObject()
	size := h.proxyBounds.Size()
	scaled := rl.Vector3{X: size.X * scale, Y: size.Y * scale, Z: size.Z * scale}
	obb := physics.NewOBB(rl.Vector3{}, scaled, obj.WorldRotation())
	return obb.ProjectOntoAxis(h.Coord.Camera.Forward())
}

// applyDepth clamps the resolved obstruction depth and writes the object's
// camera-space Z. The half-thickness uses the uniform scale the object is
// predicted to take at that depth, so the far extent cannot cross the
// obstruction after rescaling.
func (h *Holdable) applyDepth(obstruction float32) {
	s := h.Coord.Settings

	predicted := obstruction / h.ratio
	half := h.halfThickness(predicted)

	minDistance := s.NearGap + half
	depth := clampf(obstruction, minDistance, s.MaxDistance)

	z := depth - half
	if z < s.CameraGap {
		z = s.CameraGap
	}
	h.heldDepth = z

	pose := h.cameraSpacePosition()
	pose.Z = z
	h.setCameraSpacePosition(pose)
}

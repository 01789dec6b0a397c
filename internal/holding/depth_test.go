package holding

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The canonical corridor: a unit cube grabbed 5 units out (ratio 5) with a
// wall whose front face sits at camera depth 11.8.
//
// Predicted scale at the obstruction is 11.8/5 = 2.36, so the half
// thickness along the view axis is 1.18 and the object center lands at
// 11.8 - 1.18 = 10.62. The scale then follows the actual distance:
// 10.62/5 = 2.124.
func TestDepthPushesObjectToObstruction(t *testing.T) {
	r := newRig(t, testSettings())
	obj, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)
	r.addWall("Wall", rl.Vector3{Z: -12}, rl.Vector3{X: 10, Y: 10, Z: 0.4})

	r.grab(t, h)
	h.LateUpdate()

	assert.InDelta(t, 10.62, h.heldDepth, 1e-3)
	requireV3InDelta(t, rl.Vector3{Z: -10.62}, obj.Transform.Position, 1e-3)

	scale := obj.Transform.Scale
	assert.InDelta(t, 2.124, scale.X, 1e-3)
	assert.Equal(t, scale.X, scale.Y)
	assert.Equal(t, scale.X, scale.Z)

	// The far extent never crosses the obstruction.
	half := h.halfThickness(scale.X)
	assert.LessOrEqual(t, h.heldDepth+half, float32(11.8)+1e-3)
}

// Same corridor, but the wall is a triangle mesh instead of a box. The
// resolved depth must not depend on the obstacle's collider kind.
func TestDepthResolvedAgainstMeshObstacle(t *testing.T) {
	r := newRig(t, testSettings())
	obj, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)
	r.addMeshWall("MeshWall", 11.8, 5)

	r.grab(t, h)
	h.LateUpdate()

	assert.InDelta(t, 10.62, h.heldDepth, 1e-3)
	requireV3InDelta(t, rl.Vector3{Z: -10.62}, obj.Transform.Position, 1e-3)
	assert.InDelta(t, 2.124, obj.Transform.Scale.X, 1e-3)
}

func TestDepthUnobstructedKeepsGrabDepth(t *testing.T) {
	r := newRig(t, testSettings())
	obj, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)

	r.grab(t, h)
	h.LateUpdate()

	assert.InDelta(t, 5.0, h.heldDepth, 1e-4)
	requireV3InDelta(t, rl.Vector3{Z: -5}, obj.Transform.Position, 1e-4)
	assert.InDelta(t, 1.0, obj.Transform.Scale.X, 1e-4)
}

func TestObstructionBeyondMaxDistanceIgnored(t *testing.T) {
	s := testSettings()
	s.MaxDistance = 11.0
	r := newRig(t, s)
	obj, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)
	// Front face at depth 11.8, past the ray length.
	r.addWall("Wall", rl.Vector3{Z: -12}, rl.Vector3{X: 10, Y: 10, Z: 0.4})

	r.grab(t, h)
	h.LateUpdate()

	requireV3InDelta(t, rl.Vector3{Z: -5}, obj.Transform.Position, 1e-4)
}

func TestApplyDepthClampedToMaxDistance(t *testing.T) {
	s := testSettings()
	s.MaxDistance = 8
	r := newRig(t, s)
	_, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)

	r.grab(t, h)
	h.applyDepth(11.8)

	// Depth capped at 8; the predicted half thickness 11.8/5/2 = 1.18
	// backs the center off to 6.82.
	assert.InDelta(t, 6.82, h.heldDepth, 1e-3)
}

func TestDepthClampedToNearGap(t *testing.T) {
	s := testSettings()
	s.NearGap = 2
	r := newRig(t, s)
	_, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)

	r.grab(t, h)
	// A wall pressed almost against the camera: front face at depth 1.
	r.addWall("CloseWall", rl.Vector3{Z: -1.2}, rl.Vector3{X: 10, Y: 10, Z: 0.4})
	h.LateUpdate()

	// Obstruction 1.0 is below NearGap + halfThickness; the clamp raises it
	// there, and backing off by the half thickness leaves the center at
	// exactly NearGap.
	assert.InDelta(t, 2.0, h.heldDepth, 1e-3)
}

func TestDepthClampedToCameraGap(t *testing.T) {
	r := newRig(t, testSettings())
	_, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)

	r.grab(t, h)
	// Front face at depth 0.4: even after the near clamp the center would
	// sit closer than the camera gap allows.
	r.addWall("CloseWall", rl.Vector3{Z: -0.6}, rl.Vector3{X: 10, Y: 10, Z: 0.4})
	h.LateUpdate()

	assert.InDelta(t, 0.5, h.heldDepth, 1e-3)
	// Apparent size holds even jammed against the camera.
	obj := h.GetGameObject()
	assert.InDelta(t, 0.1, obj.Transform.Scale.X, 1e-3)
}

func TestDepthIgnoresNonObstacleLayers(t *testing.T) {
	s := testSettings()
	s.ObstacleMask = 0 // nothing counts as an obstacle
	r := newRig(t, s)
	obj, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)
	r.addWall("Wall", rl.Vector3{Z: -12}, rl.Vector3{X: 10, Y: 10, Z: 0.4})

	r.grab(t, h)
	h.LateUpdate()

	requireV3InDelta(t, rl.Vector3{Z: -5}, obj.Transform.Position, 1e-4)
}

func TestDepthEmptySilhouetteKeepsPrevious(t *testing.T) {
	s := testSettings()
	s.GridRows = 2
	s.GridCols = 2
	r := newRig(t, s)
	obj, h := r.addSphere("Ball", rl.Vector3{Z: -5}, 0.5)
	r.addWall("Wall", rl.Vector3{Z: -12}, rl.Vector3{X: 10, Y: 10, Z: 0.4})

	r.grab(t, h)
	h.LateUpdate()

	// All four corner samples miss the sphere, so no depth ray is cast and
	// the wall never pushes the object despite being dead ahead.
	assert.InDelta(t, 5.0, h.heldDepth, 1e-4)
	requireV3InDelta(t, rl.Vector3{Z: -5}, obj.Transform.Position, 1e-4)
}

func TestDepthStableOverRepeatedTicks(t *testing.T) {
	r := newRig(t, testSettings())
	obj, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)
	r.addWall("Wall", rl.Vector3{Z: -12}, rl.Vector3{X: 10, Y: 10, Z: 0.4})

	r.grab(t, h)
	h.LateUpdate()
	first := obj.Transform.Position

	for i := 0; i < 5; i++ {
		h.LateUpdate()
	}

	// A static scene must not make the resolved pose drift.
	requireV3InDelta(t, first, obj.Transform.Position, 5e-3)
}

func TestHalfThicknessScalesWithObject(t *testing.T) {
	r := newRig(t, testSettings())
	_, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)

	r.grab(t, h)

	assert.InDelta(t, 0.5, h.halfThickness(1), 1e-5)
	assert.InDelta(t, 1.0, h.halfThickness(2), 1e-5)
}

func TestHalfThicknessRotatedUsesDiagonal(t *testing.T) {
	r := newRig(t, testSettings())
	obj, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)
	obj.Transform.Rotation = rl.Vector3{Y: 45}

	r.grab(t, h)

	// A unit cube yawed 45 degrees spans sqrt(2)/2 along the view axis.
	assert.InDelta(t, 0.70710678, h.halfThickness(1), 1e-4)
}

func TestResolveDepthPicksClosestObstruction(t *testing.T) {
	r := newRig(t, testSettings())
	_, h := r.addCube("Cube", rl.Vector3{Z: -5}, 1)
	r.addWall("Far", rl.Vector3{Z: -20}, rl.Vector3{X: 10, Y: 10, Z: 0.4})
	r.addWall("Near", rl.Vector3{Z: -12}, rl.Vector3{X: 10, Y: 10, Z: 0.4})

	r.grab(t, h)

	rect := projectedRect(h.cameraSpaceBoundsCorners())
	depth, ok := h.resolveDepth(h.silhouetteFrom(rect))
	require.True(t, ok)
	assert.InDelta(t, 11.8, depth, 1e-3)
}

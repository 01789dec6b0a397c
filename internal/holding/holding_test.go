package holding

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"

	"persp3d/internal/components"
	"persp3d/internal/engine"
	"persp3d/internal/physics"
)

// rig is a minimal scene: a camera at the origin looking down -Z, a physics
// world, and a coordinator. Objects placed at negative Z are in front of
// the camera.
type rig struct {
	scene  *engine.Scene
	camObj *engine.GameObject
	cam    *components.Camera
	world  *physics.PhysicsWorld
	coord  *Coordinator
}

// testSettings turns off the animated parts so single-tick assertions are
// exact: a 1x1 grid samples only the rectangle center.
func testSettings() Settings {
	s := DefaultSettings()
	s.GridMode = GridRectangular
	s.GridRows = 1
	s.GridCols = 1
	s.ProxyPadding = 0
	s.CenterAnchor = false
	s.SmoothDuration = 0
	return s
}

func newRig(t *testing.T, s Settings) *rig {
	t.Helper()

	camObj := engine.NewGameObject("Camera")
	cam := components.NewCamera()
	camObj.AddComponent(cam)

	scene := engine.NewScene("Test")
	scene.AddGameObject(camObj)

	world := physics.NewPhysicsWorld()
	return &rig{
		scene:  scene,
		camObj: camObj,
		cam:    cam,
		world:  world,
		coord:  NewCoordinator(cam, world, s),
	}
}

// addCube places a holdable cube of the given side length.
func (r *rig) addCube(name string, pos rl.Vector3, side float32) (*engine.GameObject, *Holdable) {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos

	size := rl.Vector3{X: side, Y: side, Z: side}
	obj.AddComponent(components.NewModelRenderer(components.MeshCube, rl.Red, size))

	col := components.NewBoxCollider(size)
	col.OnLayer = physics.LayerHoldable
	obj.AddComponent(col)
	r.world.AddCollider(col)

	obj.AddComponent(components.NewRigidbody())

	h := NewHoldable(r.coord)
	obj.AddComponent(h)

	r.scene.AddGameObject(obj)
	return obj, h
}

// addSphere places a holdable sphere of the given radius.
func (r *rig) addSphere(name string, pos rl.Vector3, radius float32) (*engine.GameObject, *Holdable) {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos

	obj.AddComponent(components.NewModelRenderer(
		components.MeshSphere, rl.Blue, rl.Vector3{X: radius, Y: radius, Z: radius}))

	col := components.NewSphereCollider(radius)
	col.OnLayer = physics.LayerHoldable
	obj.AddComponent(col)
	r.world.AddCollider(col)

	h := NewHoldable(r.coord)
	obj.AddComponent(h)

	r.scene.AddGameObject(obj)
	return obj, h
}

// addWall places an obstacle-layer box.
func (r *rig) addWall(name string, pos, size rl.Vector3) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos

	col := components.NewBoxCollider(size)
	col.OnLayer = physics.LayerObstacle
	obj.AddComponent(col)
	r.world.AddCollider(col)

	r.scene.AddGameObject(obj)
	return obj
}

// addMeshWall places an obstacle-layer triangle-mesh quad facing the
// camera at the given depth, spanning half units on X and Y.
func (r *rig) addMeshWall(name string, depth, half float32) *engine.GameObject {
	obj := engine.NewGameObject(name)

	v0 := rl.Vector3{X: -half, Y: -half, Z: -depth}
	v1 := rl.Vector3{X: half, Y: -half, Z: -depth}
	v2 := rl.Vector3{X: half, Y: half, Z: -depth}
	v3 := rl.Vector3{X: -half, Y: half, Z: -depth}

	col := components.NewMeshCollider()
	col.OnLayer = physics.LayerObstacle
	obj.AddComponent(col)
	col.Build([]components.Triangle{
		{V0: v0, V1: v1, V2: v2},
		{V0: v0, V1: v2, V2: v3},
	})
	r.world.AddCollider(col)

	r.scene.AddGameObject(obj)
	return obj
}

// grab runs a frame with both hold signals down and requires the grab to
// succeed.
func (r *rig) grab(t *testing.T, h *Holdable) {
	t.Helper()
	r.coord.BeginFrame(true, true)
	require.NoError(t, h.TryGrab())
}

func requireV3InDelta(t *testing.T, want, got rl.Vector3, delta float64) {
	t.Helper()
	require.InDelta(t, want.X, got.X, delta)
	require.InDelta(t, want.Y, got.Y, delta)
	require.InDelta(t, want.Z, got.Z, delta)
}

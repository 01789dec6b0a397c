package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persp3d/internal/physics"
)

// quadAt builds two triangles forming a square facing +Z in the z=depth
// plane, extending half units from the local origin on X and Y.
func quadAt(depth, half float32) []Triangle {
	v0 := rl.Vector3{X: -half, Y: -half, Z: depth}
	v1 := rl.Vector3{X: half, Y: -half, Z: depth}
	v2 := rl.Vector3{X: half, Y: half, Z: depth}
	v3 := rl.Vector3{X: -half, Y: half, Z: depth}
	return []Triangle{
		{V0: v0, V1: v1, V2: v2},
		{V0: v0, V1: v2, V2: v3},
	}
}

func TestMeshColliderRayIntersect(t *testing.T) {
	mesh := NewMeshCollider()
	attach(t, "Panel", rl.Vector3{}, mesh)
	mesh.Build(quadAt(-5, 2))

	hit, ok := mesh.RayIntersect(rl.Vector3{}, rl.Vector3{Z: -1}, 100)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.Distance, 1e-5)
	assert.InDelta(t, -5.0, hit.Point.Z, 1e-5)
	assert.Same(t, mesh, hit.Collider)
}

func TestMeshColliderMiss(t *testing.T) {
	mesh := NewMeshCollider()
	attach(t, "Panel", rl.Vector3{}, mesh)
	mesh.Build(quadAt(-5, 2))

	_, ok := mesh.RayIntersect(rl.Vector3{X: 3}, rl.Vector3{Z: -1}, 100)
	assert.False(t, ok)
}

func TestMeshColliderUnbuiltNeverHits(t *testing.T) {
	mesh := NewMeshCollider()
	attach(t, "Panel", rl.Vector3{}, mesh)

	assert.False(t, mesh.IsBuilt())
	_, ok := mesh.RayIntersect(rl.Vector3{}, rl.Vector3{Z: -1}, 100)
	assert.False(t, ok)
}

func TestMeshColliderBakesOwnerTransform(t *testing.T) {
	mesh := NewMeshCollider()
	obj := attach(t, "Panel", rl.Vector3{Z: -3}, mesh)
	obj.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	// A quad of half extent 1 at the local origin plane.
	mesh.Build(quadAt(0, 1))

	// World scale widens the quad to half extent 2.
	hit, ok := mesh.RayIntersect(rl.Vector3{X: 1.5}, rl.Vector3{Z: -1}, 100)
	require.True(t, ok)
	assert.InDelta(t, 3.0, hit.Distance, 1e-5)

	// Moving the owner after Build must not move the geometry.
	obj.Transform.Position = rl.Vector3{Z: -10}
	hit, ok = mesh.RayIntersect(rl.Vector3{}, rl.Vector3{Z: -1}, 100)
	require.True(t, ok)
	assert.InDelta(t, 3.0, hit.Distance, 1e-5)
}

func TestMeshColliderClosestTriangleWins(t *testing.T) {
	mesh := NewMeshCollider()
	attach(t, "Corridor", rl.Vector3{}, mesh)
	mesh.Build(append(quadAt(-8, 2), quadAt(-5, 2)...))

	hit, ok := mesh.RayIntersect(rl.Vector3{}, rl.Vector3{Z: -1}, 100)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.Distance, 1e-5)
}

func TestMeshColliderBVHGrid(t *testing.T) {
	// A 10x10 grid of unit quads in the z=-5 plane, enough triangles to
	// force several hierarchy levels.
	var tris []Triangle
	for ix := 0; ix < 10; ix++ {
		for iy := 0; iy < 10; iy++ {
			cx := float32(ix) - 5
			cy := float32(iy) - 5
			v0 := rl.Vector3{X: cx, Y: cy, Z: -5}
			v1 := rl.Vector3{X: cx + 1, Y: cy, Z: -5}
			v2 := rl.Vector3{X: cx + 1, Y: cy + 1, Z: -5}
			v3 := rl.Vector3{X: cx, Y: cy + 1, Z: -5}
			tris = append(tris,
				Triangle{V0: v0, V1: v1, V2: v2},
				Triangle{V0: v0, V1: v2, V2: v3})
		}
	}

	mesh := NewMeshCollider()
	attach(t, "Grid", rl.Vector3{}, mesh)
	mesh.Build(tris)

	require.Equal(t, 200, mesh.TriangleCount())

	// Through a cell near the corner of the grid.
	hit, ok := mesh.RayIntersect(rl.Vector3{X: -4.5, Y: 4.5}, rl.Vector3{Z: -1}, 100)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.Distance, 1e-5)

	// Just past the grid edge.
	_, ok = mesh.RayIntersect(rl.Vector3{X: 5.5}, rl.Vector3{Z: -1}, 100)
	assert.False(t, ok)
}

func TestMeshColliderBounds(t *testing.T) {
	mesh := NewMeshCollider()
	attach(t, "Panel", rl.Vector3{}, mesh)
	mesh.Build(quadAt(-5, 2))

	bounds := mesh.Bounds()
	assert.InDelta(t, -2.0, bounds.Min.X, 1e-5)
	assert.InDelta(t, 2.0, bounds.Max.Y, 1e-5)
	assert.InDelta(t, -5.0, bounds.Min.Z, 1e-5)
}

func TestMeshColliderInWorldRaycast(t *testing.T) {
	world := physics.NewPhysicsWorld()

	mesh := NewMeshCollider()
	mesh.OnLayer = physics.LayerObstacle
	attach(t, "Panel", rl.Vector3{}, mesh)
	mesh.Build(quadAt(-5, 2))
	world.AddCollider(mesh)

	hit, ok := world.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 100, physics.LayerObstacle, physics.IgnoreTriggers)
	require.True(t, ok)
	assert.Same(t, mesh, hit.Collider)

	// Masked out, the mesh is invisible to the query.
	_, ok = world.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 100, physics.LayerHoldable, physics.IgnoreTriggers)
	assert.False(t, ok)
}

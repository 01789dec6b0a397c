package main

import (
	"persp3d/internal/components"
	"persp3d/internal/engine"
	"persp3d/internal/holding"
	"persp3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// buildRoom assembles a small test room: floor and walls on the obstacle
// layer, a far pillar to squeeze held objects against, and two holdable
// cubes.
func (g *game) buildRoom() {
	g.addObstacle("Floor", rl.Vector3{Y: -0.1}, rl.Vector3{X: 40, Y: 0.2, Z: 40}, rl.LightGray)
	g.addObstacle("WallNorth", rl.Vector3{Y: 3, Z: -20}, rl.Vector3{X: 40, Y: 6, Z: 0.4}, rl.Gray)
	g.addObstacle("WallSouth", rl.Vector3{Y: 3, Z: 20}, rl.Vector3{X: 40, Y: 6, Z: 0.4}, rl.Gray)
	g.addObstacle("WallEast", rl.Vector3{X: 20, Y: 3}, rl.Vector3{X: 0.4, Y: 6, Z: 40}, rl.Gray)
	g.addObstacle("WallWest", rl.Vector3{X: -20, Y: 3}, rl.Vector3{X: 0.4, Y: 6, Z: 40}, rl.Gray)
	g.addObstacle("Pillar", rl.Vector3{X: -3, Y: 2, Z: -12}, rl.Vector3{X: 1.5, Y: 4, Z: 1.5}, rl.DarkGray)
	g.addMeshObstacle("Ramp", rl.Vector3{X: 4, Z: -10}, rampTriangles(4, 2.5, 5), rl.Beige)

	g.addHoldable("RedCube", rl.Vector3{X: 0, Y: 0.5, Z: -4}, 1.0, rl.Red)
	g.addHoldable("BlueCube", rl.Vector3{X: 2.5, Y: 0.75, Z: -6}, 1.5, rl.Blue)
}

// rampTriangles builds a wedge rising from y=0 at the front (+Z) to the
// given height at the back, centered on the local origin.
func rampTriangles(width, height, depth float32) []components.Triangle {
	w, d := width/2, depth/2

	front0 := rl.Vector3{X: -w, Z: d}
	front1 := rl.Vector3{X: w, Z: d}
	back0 := rl.Vector3{X: -w, Z: -d}
	back1 := rl.Vector3{X: w, Z: -d}
	top0 := rl.Vector3{X: -w, Y: height, Z: -d}
	top1 := rl.Vector3{X: w, Y: height, Z: -d}

	return []components.Triangle{
		// slope
		{V0: front0, V1: front1, V2: top1},
		{V0: front0, V1: top1, V2: top0},
		// back face
		{V0: back1, V1: back0, V2: top0},
		{V0: back1, V1: top0, V2: top1},
		// sides
		{V0: front0, V1: top0, V2: back0},
		{V0: front1, V1: back1, V2: top1},
	}
}

func (g *game) addObstacle(name string, pos, size rl.Vector3, color rl.Color) {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	obj.AddComponent(components.NewModelRenderer(components.MeshCube, color, size))

	col := components.NewBoxCollider(size)
	col.OnLayer = physics.LayerObstacle
	obj.AddComponent(col)
	g.world.AddCollider(col)

	g.scene.AddGameObject(obj)
}

func (g *game) addMeshObstacle(name string, pos rl.Vector3, tris []components.Triangle, color rl.Color) {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos

	col := components.NewMeshCollider()
	col.OnLayer = physics.LayerObstacle
	obj.AddComponent(col)
	col.Build(tris)
	g.world.AddCollider(col)

	g.scene.AddGameObject(obj)
	g.meshes = append(g.meshes, meshProp{col: col, color: color})
}

func (g *game) addHoldable(name string, pos rl.Vector3, side float32, color rl.Color) {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	size := rl.Vector3{X: side, Y: side, Z: side}
	obj.AddComponent(components.NewModelRenderer(components.MeshCube, color, size))

	col := components.NewBoxCollider(size)
	col.OnLayer = physics.LayerHoldable
	obj.AddComponent(col)
	g.world.AddCollider(col)

	obj.AddComponent(components.NewRigidbody())
	obj.AddComponent(holding.NewHoldable(g.coord))

	g.scene.AddGameObject(obj)
}

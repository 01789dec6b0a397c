package main

import (
	"fmt"

	"persp3d/internal/components"
	"persp3d/internal/engine"
	"persp3d/internal/holding"
	"persp3d/internal/physics"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

type game struct {
	scene  *engine.Scene
	world  *physics.PhysicsWorld
	coord  *holding.Coordinator
	camera *components.Camera
	meshes []meshProp
	log    zerolog.Logger
}

// meshProp pairs a baked mesh collider with its draw color. Mesh geometry
// has no ModelRenderer primitive, so draw walks the triangles directly.
type meshProp struct {
	col   *components.MeshCollider
	color rl.Color
}

func newGame(settings holding.Settings, log zerolog.Logger) *game {
	g := &game{
		scene: engine.NewScene("Room"),
		world: physics.NewPhysicsWorld(),
		log:   log,
	}

	player := engine.NewGameObject("Player")
	player.Transform.Position = rl.Vector3{Y: 1.7, Z: 8}
	player.AddComponent(newWalkController())
	g.camera = components.NewCamera()
	g.camera.IsMain = true
	player.AddComponent(g.camera)
	g.scene.AddGameObject(player)

	g.coord = holding.NewCoordinator(g.camera, g.world, settings)
	g.coord.Log = log
	g.coord.HoldingStarted.AddListener(func(h *holding.Holdable) {
		log.Info().Str("object", h.GetGameObject().Name).Msg("picked up")
	})
	g.coord.HoldingEnded.AddListener(func(h *holding.Holdable) {
		log.Info().Str("object", h.GetGameObject().Name).Msg("dropped")
	})

	g.buildRoom()
	g.scene.Start()
	return g
}

func (g *game) run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "forced perspective")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	g.camera.Aspect = float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	for !rl.WindowShouldClose() {
		deltaTime := rl.GetFrameTime()

		left := rl.IsMouseButtonDown(rl.MouseButtonLeft)
		right := rl.IsMouseButtonDown(rl.MouseButtonRight)
		g.coord.BeginFrame(left, right)

		g.scene.Update(deltaTime)
		g.scene.LateUpdate()

		g.draw()
	}
}

func (g *game) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	rl.BeginMode3D(g.camera.Raylib())
	for _, obj := range sceneRoots(g.scene) {
		drawRenderers(obj)
	}
	g.drawMeshes()
	rl.EndMode3D()

	g.drawHUD()
	rl.EndDrawing()
}

func (g *game) drawMeshes() {
	for _, m := range g.meshes {
		for _, tri := range m.col.Triangles() {
			// Both windings so the face is visible from either side.
			rl.DrawTriangle3D(tri.V0, tri.V1, tri.V2, m.color)
			rl.DrawTriangle3D(tri.V2, tri.V1, tri.V0, m.color)
		}
	}
}

func (g *game) drawHUD() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	rl.DrawCircle(int32(w/2), int32(h/2), 3, rl.DarkGray)

	if held := g.coord.Current(); held != nil {
		gui.Label(rl.NewRectangle(10, 10, 300, 24),
			fmt.Sprintf("holding: %s", held.GetGameObject().Name))
		gui.Label(rl.NewRectangle(10, 34, 300, 24),
			fmt.Sprintf("ratio: %.2f", held.Ratio()))
	} else {
		gui.Label(rl.NewRectangle(10, 10, 340, 24),
			"press both mouse buttons to grab what you look at")
	}
	rl.DrawFPS(int32(w)-100, 10)
}

// sceneRoots filters the scene list down to objects that are not parented
// elsewhere. A held object stays in the scene while reparented under the
// camera, so drawing it at the top level would render it twice.
func sceneRoots(scene *engine.Scene) []*engine.GameObject {
	roots := make([]*engine.GameObject, 0, len(scene.GameObjects))
	for _, obj := range scene.GameObjects {
		if obj.Parent != nil {
			continue
		}
		roots = append(roots, obj)
	}
	return roots
}

func drawRenderers(obj *engine.GameObject) {
	if !obj.Active {
		return
	}
	for _, r := range engine.GetComponents[*components.ModelRenderer](obj) {
		r.Draw()
	}
	for _, child := range obj.Children {
		drawRenderers(child)
	}
}

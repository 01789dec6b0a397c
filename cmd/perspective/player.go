package main

import (
	"math"

	"persp3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WalkController is a minimal fly-free FPS rig: mouse look, WASD on the
// horizontal plane, fixed eye height. It writes the owning object's
// rotation, which the Camera component derives its basis from.
type WalkController struct {
	engine.BaseComponent
	MoveSpeed float32
	LookSpeed float32
	EyeHeight float32
}

func newWalkController() *WalkController {
	return &WalkController{
		MoveSpeed: 6.0,
		LookSpeed: 0.1,
		EyeHeight: 1.7,
	}
}

func (w *WalkController) Update(deltaTime float32) {
	g := w.GetGameObject()
	if g == nil {
		return
	}

	mouseDelta := rl.GetMouseDelta()
	g.Transform.Rotation.Y -= mouseDelta.X * w.LookSpeed
	g.Transform.Rotation.X -= mouseDelta.Y * w.LookSpeed
	if g.Transform.Rotation.X > 89 {
		g.Transform.Rotation.X = 89
	}
	if g.Transform.Rotation.X < -89 {
		g.Transform.Rotation.X = -89
	}

	yaw := float64(g.Transform.Rotation.Y) * math.Pi / 180
	forward := rl.Vector3{X: float32(-math.Sin(yaw)), Z: float32(-math.Cos(yaw))}
	right := rl.Vector3{X: float32(math.Cos(yaw)), Z: float32(-math.Sin(yaw))}

	var move rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		move = rl.Vector3Add(move, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = rl.Vector3Subtract(move, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = rl.Vector3Add(move, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = rl.Vector3Subtract(move, right)
	}

	if rl.Vector3Length(move) > 0 {
		move = rl.Vector3Normalize(move)
		g.Transform.Position = rl.Vector3Add(g.Transform.Position,
			rl.Vector3Scale(move, w.MoveSpeed*deltaTime))
	}
	g.Transform.Position.Y = w.EyeHeight
}

package components

import (
	"math"

	"persp3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is the active viewpoint. The holding pipeline only reads from it:
// position, orientation basis, and the world/camera/viewport conversions.
//
// Camera space uses +Z along the view direction, so a point's Z coordinate
// is its depth in front of the camera. When an object is parented under the
// camera's GameObject, LocalFromCameraSpace converts to the child-local
// frame (which keeps the engine's -Z forward convention).
type Camera struct {
	engine.BaseComponent
	FOV    float32 // vertical field of view, degrees
	Aspect float32 // width / height
	Near   float32
	Far    float32
	IsMain bool
}

func NewCamera() *Camera {
	return &Camera{
		FOV:    60.0,
		Aspect: 16.0 / 9.0,
		Near:   0.1,
		Far:    1000.0,
	}
}

func (c *Camera) Position() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return g.WorldPosition()
}

func (c *Camera) rotationMatrix() rl.Matrix {
	g := c.GetGameObject()
	if g == nil {
		return rl.MatrixIdentity()
	}
	return engine.EulerToMatrix(g.WorldRotation())
}

// Forward returns the view direction. Yaw 0 / pitch 0 faces world -Z.
func (c *Camera) Forward() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{Z: -1}, c.rotationMatrix())
}

func (c *Camera) Right() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{X: 1}, c.rotationMatrix())
}

func (c *Camera) Up() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{Y: 1}, c.rotationMatrix())
}

// WorldToCamera converts a world point into camera space (+Z = depth).
func (c *Camera) WorldToCamera(p rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(p, c.Position())
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, c.Right()),
		Y: rl.Vector3DotProduct(d, c.Up()),
		Z: rl.Vector3DotProduct(d, c.Forward()),
	}
}

// CameraToWorld converts a camera-space point (+Z = depth) back to world space.
func (c *Camera) CameraToWorld(p rl.Vector3) rl.Vector3 {
	out := c.Position()
	out = rl.Vector3Add(out, rl.Vector3Scale(c.Right(), p.X))
	out = rl.Vector3Add(out, rl.Vector3Scale(c.Up(), p.Y))
	out = rl.Vector3Add(out, rl.Vector3Scale(c.Forward(), p.Z))
	return out
}

// LocalFromCameraSpace converts a camera-space point into the local
// coordinates of a child parented under the camera's GameObject.
// The engine's child transform maps local (0,0,1) to -Forward, hence the
// negated Z. The camera object is assumed to have unit scale.
func (c *Camera) LocalFromCameraSpace(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: p.X, Y: p.Y, Z: -p.Z}
}

// CameraSpaceFromLocal is the inverse of LocalFromCameraSpace.
func (c *Camera) CameraSpaceFromLocal(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: p.X, Y: p.Y, Z: -p.Z}
}

func (c *Camera) tanHalfFOV() float32 {
	return float32(math.Tan(float64(c.FOV) * math.Pi / 360.0))
}

// WorldToViewport projects a world point to normalized viewport coordinates
// ((0,0) bottom-left, (1,1) top-right) and returns its camera depth.
// Depth <= 0 means the point is behind or at the camera plane and the
// viewport coordinates are meaningless.
func (c *Camera) WorldToViewport(p rl.Vector3) (rl.Vector2, float32) {
	cam := c.WorldToCamera(p)
	if cam.Z <= 0 {
		return rl.Vector2{}, cam.Z
	}
	th := c.tanHalfFOV()
	return rl.Vector2{
		X: 0.5 + 0.5*cam.X/(cam.Z*th*c.Aspect),
		Y: 0.5 + 0.5*cam.Y/(cam.Z*th),
	}, cam.Z
}

// ViewportToWorld returns the world point that projects to the given
// normalized viewport coordinate at the given camera depth.
func (c *Camera) ViewportToWorld(vp rl.Vector2, depth float32) rl.Vector3 {
	th := c.tanHalfFOV()
	return c.CameraToWorld(rl.Vector3{
		X: (vp.X - 0.5) * 2 * depth * th * c.Aspect,
		Y: (vp.Y - 0.5) * 2 * depth * th,
		Z: depth,
	})
}

// NearPlanePoint returns the point where the camera-to-target ray crosses
// the near plane. Rays probing scene depth originate here rather than at
// the camera position itself.
func (c *Camera) NearPlanePoint(target rl.Vector3) rl.Vector3 {
	cam := c.WorldToCamera(target)
	if cam.Z <= 0 {
		return c.Position()
	}
	t := c.Near / cam.Z
	return c.CameraToWorld(rl.Vector3Scale(cam, t))
}

// Raylib returns the camera as rl.Camera3D for rendering.
func (c *Camera) Raylib() rl.Camera3D {
	pos := c.Position()
	return rl.Camera3D{
		Position:   pos,
		Target:     rl.Vector3Add(pos, c.Forward()),
		Up:         c.Up(),
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}

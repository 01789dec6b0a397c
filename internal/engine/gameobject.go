package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

var nextUID uint64

type GameObject struct {
	Name       string
	UID        uint64
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:   name,
		UID:    atomic.AddUint64(&nextUID, 1),
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// RemoveComponent detaches a component from this GameObject.
// Used for components with a shorter lifetime than their owner,
// like a temporary proxy collider.
func (g *GameObject) RemoveComponent(target Component) {
	for i, c := range g.components {
		if c == target {
			g.components = append(g.components[:i], g.components[i+1:]...)
			target.SetGameObject(nil)
			return
		}
	}
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// GetComponents returns all components of type T.
func GetComponents[T Component](g *GameObject) []T {
	var result []T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

// FindComponent searches this object and its children (depth-first)
// for a component of type T.
func FindComponent[T Component](g *GameObject) (T, bool) {
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	for _, child := range g.Children {
		if typed, ok := FindComponent[T](child); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// EulerToMatrix builds a rotation matrix from euler angles in degrees,
// applied in X then Y then Z order (same convention everywhere in the engine).
func EulerToMatrix(euler rl.Vector3) rl.Matrix {
	rotX := rl.MatrixRotateX(euler.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(euler.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(euler.Z * rl.Deg2rad)
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	rotated := rl.Vector3Transform(scaled, EulerToMatrix(parentRot))
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// TransformPoint converts a point from this object's local space to world space,
// applying world scale, rotation, and translation.
func (g *GameObject) TransformPoint(local rl.Vector3) rl.Vector3 {
	scale := g.WorldScale()
	scaled := rl.Vector3{
		X: local.X * scale.X,
		Y: local.Y * scale.Y,
		Z: local.Z * scale.Z,
	}
	rotated := rl.Vector3Transform(scaled, EulerToMatrix(g.WorldRotation()))
	return rl.Vector3Add(g.WorldPosition(), rotated)
}

// InverseTransformPoint converts a world point into this object's local
// space. Inverse of TransformPoint; world scale axes must be non-zero.
func (g *GameObject) InverseTransformPoint(world rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(world, g.WorldPosition())
	unrotated := rl.Vector3Transform(d, rl.MatrixTranspose(EulerToMatrix(g.WorldRotation())))
	scale := g.WorldScale()
	return rl.Vector3{
		X: unrotated.X / scale.X,
		Y: unrotated.Y / scale.Y,
		Z: unrotated.Z / scale.Z,
	}
}

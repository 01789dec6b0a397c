package components

import (
	"persp3d/internal/engine"
	"persp3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Triangle is a single face of a mesh collider, stored in world space.
type Triangle struct {
	V0, V1, V2 rl.Vector3
}

// MeshCollider raycasts against an arbitrary triangle soup through a
// bounding volume hierarchy. Triangles are baked into world space when
// Build is called: this is for static geometry only, moving the owner
// afterwards won't update the collider.
type MeshCollider struct {
	engine.BaseComponent
	OnLayer   physics.Layer
	IsTrigger bool

	triangles []Triangle
	root      *bvhNode
	built     bool
}

// bvhNode is one node of the hierarchy. Leaves carry triangle indices,
// inner nodes only bounds and children.
type bvhNode struct {
	bounds    physics.AABB
	left      *bvhNode
	right     *bvhNode
	triangles []int
}

const (
	bvhLeafSize = 4
	bvhMaxDepth = 20
)

func NewMeshCollider() *MeshCollider {
	return &MeshCollider{OnLayer: physics.LayerDefault}
}

func (m *MeshCollider) Owner() *engine.GameObject { return m.GetGameObject() }
func (m *MeshCollider) Layer() physics.Layer { return m.OnLayer }
func (m *MeshCollider) SetLayer(l physics.Layer) { m.OnLayer = l }
func (m *MeshCollider) Trigger() bool { return m.IsTrigger }

// Build bakes the given local-space triangles through the owner's world
// transform and constructs the hierarchy over them. An owner with no
// game object bakes the triangles as-is.
func (m *MeshCollider) Build(tris []Triangle) {
	transform := rl.MatrixIdentity()
	if g := m.GetGameObject(); g != nil {
		ws := g.WorldScale()
		scale := rl.MatrixScale(ws.X, ws.Y, ws.Z)
		rot := engine.EulerToMatrix(g.WorldRotation())
		wp := g.WorldPosition()
		trans := rl.MatrixTranslate(wp.X, wp.Y, wp.Z)
		transform = rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
	}

	m.triangles = make([]Triangle, 0, len(tris))
	for _, tri := range tris {
		m.triangles = append(m.triangles, Triangle{
			V0: rl.Vector3Transform(tri.V0, transform),
			V1: rl.Vector3Transform(tri.V1, transform),
			V2: rl.Vector3Transform(tri.V2, transform),
		})
	}

	indices := make([]int, len(m.triangles))
	for i := range indices {
		indices[i] = i
	}
	m.root = m.buildNode(indices, 0)
	m.built = true
}

func (m *MeshCollider) IsBuilt() bool { return m.built }

func (m *MeshCollider) TriangleCount() int { return len(m.triangles) }

// Triangles returns the baked world-space faces, for debug drawing.
func (m *MeshCollider) Triangles() []Triangle { return m.triangles }

// Bounds returns the world-space bounds of the whole mesh.
func (m *MeshCollider) Bounds() physics.AABB {
	if m.root == nil {
		return physics.AABB{}
	}
	return m.root.bounds
}

func (m *MeshCollider) RayIntersect(origin, direction rl.Vector3, maxDistance float32) (physics.RayHit, bool) {
	if !m.built || m.root == nil {
		return physics.RayHit{}, false
	}

	best := physics.RayHit{Distance: maxDistance}
	found := false
	m.raycastNode(m.root, origin, direction, maxDistance, &best, &found)
	if !found {
		return physics.RayHit{}, false
	}
	best.Collider = m
	return best, true
}

func (m *MeshCollider) raycastNode(node *bvhNode, origin, direction rl.Vector3, maxDistance float32, best *physics.RayHit, found *bool) {
	if node == nil {
		return
	}
	if _, ok := physics.RayAABB(origin, direction, node.bounds, maxDistance); !ok {
		return
	}

	if node.triangles != nil {
		for _, idx := range node.triangles {
			tri := m.triangles[idx]
			hit, ok := physics.RayTriangle(origin, direction, tri.V0, tri.V1, tri.V2, maxDistance)
			if ok && hit.Distance < best.Distance {
				*best = hit
				*found = true
			}
		}
		return
	}

	m.raycastNode(node.left, origin, direction, maxDistance, best, found)
	m.raycastNode(node.right, origin, direction, maxDistance, best, found)
}

func (m *MeshCollider) buildNode(indices []int, depth int) *bvhNode {
	if len(indices) == 0 {
		return nil
	}

	node := &bvhNode{bounds: m.boundsOf(indices)}

	if len(indices) <= bvhLeafSize || depth > bvhMaxDepth {
		node.triangles = indices
		return node
	}

	axis := longestAxis(node.bounds)
	left, right := m.partition(indices, axis)

	// Degenerate split, all centroids on one side. Keep a leaf.
	if len(left) == 0 || len(right) == 0 {
		node.triangles = indices
		return node
	}

	node.left = m.buildNode(left, depth+1)
	node.right = m.buildNode(right, depth+1)
	return node
}

// partition splits triangle indices around the mean centroid on the
// given axis.
func (m *MeshCollider) partition(indices []int, axis int) (left, right []int) {
	var mean float32
	for _, idx := range indices {
		mean += axisValue(m.centroid(idx), axis)
	}
	mean /= float32(len(indices))

	for _, idx := range indices {
		if axisValue(m.centroid(idx), axis) < mean {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	return left, right
}

func (m *MeshCollider) centroid(idx int) rl.Vector3 {
	tri := m.triangles[idx]
	return rl.Vector3Scale(rl.Vector3Add(rl.Vector3Add(tri.V0, tri.V1), tri.V2), 1.0/3.0)
}

func (m *MeshCollider) boundsOf(indices []int) physics.AABB {
	tri := m.triangles[indices[0]]
	bounds := physics.AABB{
		Min: vec3Min(tri.V0, vec3Min(tri.V1, tri.V2)),
		Max: vec3Max(tri.V0, vec3Max(tri.V1, tri.V2)),
	}
	for _, idx := range indices[1:] {
		tri = m.triangles[idx]
		bounds.Min = vec3Min(bounds.Min, vec3Min(tri.V0, vec3Min(tri.V1, tri.V2)))
		bounds.Max = vec3Max(bounds.Max, vec3Max(tri.V0, vec3Max(tri.V1, tri.V2)))
	}
	return bounds
}

func longestAxis(b physics.AABB) int {
	size := b.Size()
	if size.X >= size.Y && size.X >= size.Z {
		return 0
	}
	if size.Y >= size.Z {
		return 1
	}
	return 2
}

func axisValue(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func vec3Min(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: minf(a.X, b.X), Y: minf(a.Y, b.Y), Z: minf(a.Z, b.Z)}
}

func vec3Max(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: maxf(a.X, b.X), Y: maxf(a.Y, b.Y), Z: maxf(a.Z, b.Z)}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

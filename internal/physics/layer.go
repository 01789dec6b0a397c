package physics

// Layer is a collision category bitmask. Colliders declare one layer;
// scene queries filter on a mask of layers.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerHoldable
	LayerObstacle
	// LayerIgnoreRaycast marks colliders that scene queries should skip
	// unless a mask names it explicitly. Held objects park their colliders
	// here so they never occlude their own depth rays.
	LayerIgnoreRaycast
)

// MaskAll matches every layer except LayerIgnoreRaycast.
const MaskAll = ^Layer(0) &^ LayerIgnoreRaycast

// TriggerPolicy controls whether trigger colliders participate in a query.
type TriggerPolicy int

const (
	IgnoreTriggers TriggerPolicy = iota
	IncludeTriggers
)

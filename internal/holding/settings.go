package holding

import (
	"persp3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Grid sampling strategies for the silhouette builder.
const (
	GridRectangular = "rect"
	GridPolar       = "polar"
)

// Settings are the tunables of the holding pipeline. A zero value is not
// usable; start from DefaultSettings.
type Settings struct {
	// Silhouette grid
	GridMode    string
	GridRows    int
	GridCols    int
	GridRings   int
	GridSectors int
	// EdgeBias > 1 biases polar ring density toward the silhouette edge,
	// where contact with scene geometry is detected.
	EdgeBias float32

	// Depth resolution
	CameraGap   float32 // closest the object center may sit to the camera
	NearGap     float32 // fixed near gap in the minimum depth clamp
	MaxDistance float32 // depth ceiling and ray length

	// Grab
	ProxyPadding   float32 // proxy collider growth, fraction of bounds size
	ScaleTolerance float32 // max per-axis deviation still considered uniform
	GazeRange      float32
	ObstacleMask   physics.Layer

	// Anchor animation
	CenterAnchor   bool
	TargetAnchor   rl.Vector2
	CenterDuration float32
	SmoothDuration float32
}

func DefaultSettings() Settings {
	return Settings{
		GridMode:       GridPolar,
		GridRows:       5,
		GridCols:       5,
		GridRings:      3,
		GridSectors:    8,
		EdgeBias:       2.0,
		CameraGap:      0.5,
		NearGap:        0.3,
		MaxDistance:    100.0,
		ProxyPadding:   0.05,
		ScaleTolerance: 0.001,
		GazeRange:      50.0,
		ObstacleMask:   physics.LayerObstacle | physics.LayerDefault,
		CenterAnchor:   true,
		TargetAnchor:   rl.Vector2{X: 0.5, Y: 0.5},
		CenterDuration: 0.4,
		SmoothDuration: 0.15,
	}
}

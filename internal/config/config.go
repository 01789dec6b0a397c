package config

import (
	"fmt"
	"strings"

	"persp3d/internal/holding"
	"persp3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/viper"
)

// Config is the file-facing shape of the engine settings. Layer masks are
// written as names in the file and translated when building the holding
// settings.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	Grid struct {
		Mode     string  `mapstructure:"mode"`
		Rows     int     `mapstructure:"rows"`
		Cols     int     `mapstructure:"cols"`
		Rings    int     `mapstructure:"rings"`
		Sectors  int     `mapstructure:"sectors"`
		EdgeBias float32 `mapstructure:"edge_bias"`
	} `mapstructure:"grid"`

	Hold struct {
		CameraGap      float32  `mapstructure:"camera_gap"`
		NearGap        float32  `mapstructure:"near_gap"`
		MaxDistance    float32  `mapstructure:"max_distance"`
		ProxyPadding   float32  `mapstructure:"proxy_padding"`
		ScaleTolerance float32  `mapstructure:"scale_tolerance"`
		GazeRange      float32  `mapstructure:"gaze_range"`
		ObstacleLayers []string `mapstructure:"obstacle_layers"`
		CenterAnchor   bool     `mapstructure:"center_anchor"`
		TargetAnchorX  float32  `mapstructure:"target_anchor_x"`
		TargetAnchorY  float32  `mapstructure:"target_anchor_y"`
		CenterDuration float32  `mapstructure:"center_duration"`
		SmoothDuration float32  `mapstructure:"smooth_duration"`
	} `mapstructure:"hold"`
}

var layerNames = map[string]physics.Layer{
	"default":  physics.LayerDefault,
	"holdable": physics.LayerHoldable,
	"obstacle": physics.LayerObstacle,
}

func setDefaults(v *viper.Viper) {
	d := holding.DefaultSettings()

	v.SetDefault("log_level", "info")

	v.SetDefault("grid.mode", d.GridMode)
	v.SetDefault("grid.rows", d.GridRows)
	v.SetDefault("grid.cols", d.GridCols)
	v.SetDefault("grid.rings", d.GridRings)
	v.SetDefault("grid.sectors", d.GridSectors)
	v.SetDefault("grid.edge_bias", d.EdgeBias)

	v.SetDefault("hold.camera_gap", d.CameraGap)
	v.SetDefault("hold.near_gap", d.NearGap)
	v.SetDefault("hold.max_distance", d.MaxDistance)
	v.SetDefault("hold.proxy_padding", d.ProxyPadding)
	v.SetDefault("hold.scale_tolerance", d.ScaleTolerance)
	v.SetDefault("hold.gaze_range", d.GazeRange)
	v.SetDefault("hold.obstacle_layers", []string{"default", "obstacle"})
	v.SetDefault("hold.center_anchor", d.CenterAnchor)
	v.SetDefault("hold.target_anchor_x", d.TargetAnchor.X)
	v.SetDefault("hold.target_anchor_y", d.TargetAnchor.Y)
	v.SetDefault("hold.center_duration", d.CenterDuration)
	v.SetDefault("hold.smooth_duration", d.SmoothDuration)
}

// Load reads the config file at path, or defaults only when path is empty.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Settings translates the file shape into holding pipeline settings.
func (c Config) Settings() (holding.Settings, error) {
	s := holding.DefaultSettings()

	s.GridMode = c.Grid.Mode
	s.GridRows = c.Grid.Rows
	s.GridCols = c.Grid.Cols
	s.GridRings = c.Grid.Rings
	s.GridSectors = c.Grid.Sectors
	s.EdgeBias = c.Grid.EdgeBias

	s.CameraGap = c.Hold.CameraGap
	s.NearGap = c.Hold.NearGap
	s.MaxDistance = c.Hold.MaxDistance
	s.ProxyPadding = c.Hold.ProxyPadding
	s.ScaleTolerance = c.Hold.ScaleTolerance
	s.GazeRange = c.Hold.GazeRange
	s.CenterAnchor = c.Hold.CenterAnchor
	s.TargetAnchor = rl.Vector2{X: c.Hold.TargetAnchorX, Y: c.Hold.TargetAnchorY}
	s.CenterDuration = c.Hold.CenterDuration
	s.SmoothDuration = c.Hold.SmoothDuration

	if len(c.Hold.ObstacleLayers) > 0 {
		var mask physics.Layer
		for _, name := range c.Hold.ObstacleLayers {
			layer, ok := layerNames[strings.ToLower(name)]
			if !ok {
				return s, fmt.Errorf("config: unknown obstacle layer %q", name)
			}
			mask |= layer
		}
		s.ObstacleMask = mask
	}

	return s, nil
}

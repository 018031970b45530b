// Package config provides configuration loading and access for the animation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all animation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Canvas    CanvasConfig    `yaml:"canvas"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Grid      GridConfig      `yaml:"grid"`
	Flow      FlowConfig      `yaml:"flow"`
	Behavior  BehaviorConfig  `yaml:"behavior"`
	Formation FormationConfig `yaml:"formation"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Figures   FiguresConfig   `yaml:"figures"`
	Debris    DebrisConfig    `yaml:"debris"`
	Audio     AudioConfig     `yaml:"audio"`
	Assets    AssetsConfig    `yaml:"assets"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings. The canvas is letterboxed into it.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CanvasConfig holds the logical drawing area the particles live in.
type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // #rrggbb
}

// PhysicsConfig holds tick timing.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // seconds per tick
}

// GridConfig holds mosaic dimensions.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// FlowConfig holds flow field parameters for the wander behaviors.
type FlowConfig struct {
	Scale      float64 `yaml:"scale"`       // position -> noise space
	Strength   float64 `yaml:"strength"`    // push magnitude
	Push       float64 `yaml:"push"`        // extra multiplier on strength
	TimeStep   float64 `yaml:"time_step"`   // noise time advance per tick
	AngleTurns float64 `yaml:"angle_turns"` // noise [0,1] -> angle in turns
}

// BehaviorConfig holds per-behavior motion constants.
type BehaviorConfig struct {
	WanderDamping  float64 `yaml:"wander_damping"`
	WanderSpeedMin float64 `yaml:"wander_speed_min"`
	WanderSpeedMax float64 `yaml:"wander_speed_max"`
	Restitution    float64 `yaml:"restitution"`
	SeekPull       float64 `yaml:"seek_pull"`
	JitterGain     float64 `yaml:"jitter_gain"`
	JitterNoise    float64 `yaml:"jitter_noise"`
	JitterDamping  float64 `yaml:"jitter_damping"`
	ChaosDelta     float64 `yaml:"chaos_delta"`
	ChaosMaxSpeed  float64 `yaml:"chaos_max_speed"`
	RelaxRate      float64 `yaml:"relax_rate"`
	RelaxDamping   float64 `yaml:"relax_damping"`
}

// FormationConfig holds scene transition parameters.
type FormationConfig struct {
	WanderTicks    int     `yaml:"wander_ticks"` // CAT_FORMATION wander phase before seeking
	FloatImpulse   float64 `yaml:"float_impulse"`
	ScatterImpulse float64 `yaml:"scatter_impulse"`
}

// SpawnerConfig holds walking figure admission parameters.
type SpawnerConfig struct {
	Budget       int     `yaml:"budget"`   // total figures per walk
	Capacity     int     `yaml:"capacity"` // max live figures
	Headroom     int     `yaml:"headroom"` // batch considered only when live <= capacity-headroom
	BatchMin     int     `yaml:"batch_min"`
	BatchMax     int     `yaml:"batch_max"` // exclusive
	Spacing      float64 `yaml:"spacing"`   // horizontal stagger per batch index
	DelayStartMS float64 `yaml:"delay_start_ms"`
	DelayEndMS   float64 `yaml:"delay_end_ms"`
}

// FiguresConfig holds walking figure animation parameters.
type FiguresConfig struct {
	FrameCount     int     `yaml:"frame_count"`
	FrameHoldTicks int     `yaml:"frame_hold_ticks"`
	SpeedMin       float64 `yaml:"speed_min"`
	SpeedMax       float64 `yaml:"speed_max"`
	ScaleMin       float64 `yaml:"scale_min"`
	ScaleMax       float64 `yaml:"scale_max"`
	BobAmplitude   float64 `yaml:"bob_amplitude"`
	BobStep        float64 `yaml:"bob_step"`
	SpawnX         float64 `yaml:"spawn_x"`
	BandMin        float64 `yaml:"band_min"` // fraction of canvas height
	BandMax        float64 `yaml:"band_max"`
	ExitMargin     float64 `yaml:"exit_margin"`
	PointRadius    float64 `yaml:"point_radius"`
}

// DebrisConfig holds freed particle parameters.
type DebrisConfig struct {
	ExplodeSpeed  float64 `yaml:"explode_speed"`
	DriftDrag     float64 `yaml:"drift_drag"`
	ChaosFriction float64 `yaml:"chaos_friction"`
	BoundPadding  float64 `yaml:"bound_padding"`
}

// AudioConfig holds synth output and mapping parameters.
type AudioConfig struct {
	Enabled        bool    `yaml:"enabled"`
	SampleRate     int     `yaml:"sample_rate"`
	BufferMS       int     `yaml:"buffer_ms"`
	WobbleRate     float64 `yaml:"wobble_rate"`  // radians per tick
	WobbleDepth    float64 `yaml:"wobble_depth"` // Hz
	ClimaxHoldSec  float64 `yaml:"climax_hold_sec"`
	ClimaxFadeSec  float64 `yaml:"climax_fade_sec"`
	WatchThreshold int     `yaml:"watch_threshold"` // spawned figures before scatter is suggested
}

// AssetsConfig holds image paths and extraction thresholds.
type AssetsConfig struct {
	Mosaic           string   `yaml:"mosaic"`
	Silhouette       string   `yaml:"silhouette"`
	Frames           []string `yaml:"frames"`
	SilhouetteStride int      `yaml:"silhouette_stride"`
	FrameStride      int      `yaml:"frame_stride"`
	AlphaMin         uint8    `yaml:"alpha_min"`
	MaxLuma          float64  `yaml:"max_luma"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds of sim time
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CanvasW       float64 // Canvas.Width as float64
	CanvasH       float64 // Canvas.Height as float64
	CellSize      float64 // Canvas.Width / Grid.Cols
	MSPerTick     float64 // Physics.DT in milliseconds
	BackgroundRGB [3]uint8
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	case c.Grid.Cols <= 0 || c.Grid.Rows <= 0:
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Grid.Cols, c.Grid.Rows)
	case c.Physics.DT <= 0:
		return fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT)
	case c.Spawner.BatchMax <= c.Spawner.BatchMin:
		return fmt.Errorf("spawner.batch_max (%d) must exceed batch_min (%d)", c.Spawner.BatchMax, c.Spawner.BatchMin)
	case c.Spawner.Budget < 0 || c.Spawner.Capacity <= 0:
		return fmt.Errorf("spawner budget/capacity invalid: %d/%d", c.Spawner.Budget, c.Spawner.Capacity)
	case c.Figures.FrameCount <= 0:
		return fmt.Errorf("figures.frame_count must be positive, got %d", c.Figures.FrameCount)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.CanvasW = float64(c.Canvas.Width)
	c.Derived.CanvasH = float64(c.Canvas.Height)
	c.Derived.CellSize = c.Derived.CanvasW / float64(c.Grid.Cols)
	c.Derived.MSPerTick = c.Physics.DT * 1000
	c.Derived.BackgroundRGB = parseHexColor(c.Canvas.Background)
}

// parseHexColor parses "#rrggbb". Malformed input yields black.
func parseHexColor(s string) [3]uint8 {
	var rgb [3]uint8
	if len(s) != 7 || s[0] != '#' {
		return rgb
	}
	for i := 0; i < 3; i++ {
		var v uint8
		if _, err := fmt.Sscanf(s[1+i*2:3+i*2], "%02x", &v); err != nil {
			return [3]uint8{}
		}
		rgb[i] = v
	}
	return rgb
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

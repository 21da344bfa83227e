package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers. Default holds the world and goes through bloom; UI is drawn on top after it.
const (
	Default ecs.LayerID = iota
	LayerUI
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ShooterConfig contains the firing entity and fire speed settings
type ShooterConfig struct {
	InitialSpeed float64 // Units per second
	SpeedStep    float64 // Applied per Up/Down key press
	Radius       float64 // Unscaled circle mesh radius
	Scale        float64
	Color        color.RGBA
}

// TrailConfig contains the ribbon trail particle effect settings
type TrailConfig struct {
	Width          float64 // Initial particle size, used as ribbon width
	Lifetime       float64 // Seconds
	SpawnRate      float64 // Particles per second
	CapacityFactor float64 // Headroom over rate*lifetime
	StartColor     [4]float32
	EndColor       [4]float32
}

// CameraConfig contains the orthographic projection and post-processing settings
type CameraConfig struct {
	Scale          float64
	MaxWidth       float64 // AutoMax scaling bounds
	MaxHeight      float64
	ViewportOrigin [2]float64
	Bloom          BloomConfig
}

// BloomConfig contains the bloom post-process settings
type BloomConfig struct {
	Enabled   bool
	Threshold float32 // Luminance above which pixels bloom
	Intensity float32
	Radius    float32 // Sample spacing in pixels
}

// PhysicsConfig contains the collision space settings
type PhysicsConfig struct {
	SpaceWidth  int
	SpaceHeight int
	CellWidth   int
	CellHeight  int

	ProjectileSize float64 // Collider edge length
}

// TimeConfig contains the fixed timestep settings
type TimeConfig struct {
	FixedTimestep    float64 // Seconds per fixed step
	MaxStepsPerFrame int     // Caps catch-up after a stall
}

// UIConfig contains HUD settings
type UIConfig struct {
	FontSize  float64
	Margin    int
	LineGap   int
	TextColor color.RGBA
}

// PauseConfig contains pause overlay settings
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug overlay defaults
type DebugConfig struct {
	ShowColliders bool
	ColliderColor color.RGBA
	ShooterColor  color.RGBA
}

// Global configuration instances
var C *Config
var Shooter ShooterConfig
var Trail TrailConfig
var Camera CameraConfig
var Physics PhysicsConfig
var Time TimeConfig
var UI UIConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1920,
		Height: 1080,
		Title:  "ribbonshot",
	}

	Shooter = ShooterConfig{
		InitialSpeed: 1000.0,
		SpeedStep:    200.0,
		Radius:       0.5,
		Scale:        10.0,
		Color:        White,
	}

	// Capacity works out to 60 * 0.25 * 1.5 = 22 particles per trail
	Trail = TrailConfig{
		Width:          3.0,
		Lifetime:       0.25,
		SpawnRate:      60.0,
		CapacityFactor: 1.5,
		StartColor:     [4]float32{1.0, 1.0, 0.0, 0.8},
		EndColor:       [4]float32{1.0, 1.0, 1.0, 0.0},
	}

	Camera = CameraConfig{
		Scale:          1.0,
		MaxWidth:       1920.0,
		MaxHeight:      1080.0,
		ViewportOrigin: [2]float64{0.5, 0.5},
		Bloom: BloomConfig{
			Enabled:   true,
			Threshold: 0.6,
			Intensity: 1.4,
			Radius:    2.0,
		},
	}

	Physics = PhysicsConfig{
		SpaceWidth:  1920,
		SpaceHeight: 1080,
		CellWidth:   16,
		CellHeight:  16,

		ProjectileSize: 4,
	}

	// Matches the common 64Hz fixed update rate
	Time = TimeConfig{
		FixedTimestep:    1.0 / 64.0,
		MaxStepsPerFrame: 8,
	}

	UI = UIConfig{
		FontSize:  20,
		Margin:    16,
		LineGap:   26,
		TextColor: White,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Esc/P: Resume",
	}

	Debug = DebugConfig{
		ShowColliders: false,
		ColliderColor: Cyan,
		ShooterColor:  Green,
	}
}

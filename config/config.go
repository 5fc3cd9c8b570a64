package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only draw layer; every entity is spawned into it.
const Default ecs.LayerID = 0

// Config is the immutable set of tuning values a level is built with.
// It is passed by value into each level at construction.
type Config struct {
	// Screen
	Width  int
	Height int
	TPS    int
	Title  string

	Physics PhysicsConfig
	Player  PlayerConfig
	Box     BoxConfig
	Colors  ColorConfig
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity          float64 // added to VelocityY every frame once falling
	InitialFallSpeed float64 // VelocityY assigned when a body starts to fall
	GroundProbe      float64 // pixels probed below a body when checking jump eligibility
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MoveSpeed float64
	JumpSpeed float64

	CollisionWidth  float64
	CollisionHeight float64
}

// BoxConfig contains breakable box configuration
type BoxConfig struct {
	Lift            float64 // distance above the box the replacement platform appears
	DebrisDuration  float32 // seconds
	DebrisRiseDelta float32 // pixels the debris drifts up while fading
}

// ColorConfig holds the flat colors used by the renderer.
type ColorConfig struct {
	Background color.RGBA
	Platform   color.RGBA
	Box        color.RGBA
	Item       color.RGBA
	Body       color.RGBA
	Players    []color.RGBA
	HUDText    color.RGBA
}

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	SkyBlue   = color.RGBA{R: 110, G: 170, B: 230, A: 255}
	Green     = color.RGBA{R: 40, G: 160, B: 70, A: 255}
	Brown     = color.RGBA{R: 150, G: 95, B: 40, A: 255}
	Yellow    = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	Grey      = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	Red       = color.RGBA{R: 220, G: 50, B: 50, A: 255}
	LightBlue = color.RGBA{R: 60, G: 90, B: 230, A: 255}
)

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		Width:  1300,
		Height: 750,
		TPS:    60,
		Title:  "Boxhop",

		Physics: PhysicsConfig{
			Gravity:          0.35,
			InitialFallSpeed: 1,
			GroundProbe:      2,
		},

		Player: PlayerConfig{
			MoveSpeed:       6,
			JumpSpeed:       10,
			CollisionWidth:  30,
			CollisionHeight: 40,
		},

		Box: BoxConfig{
			Lift:            70,
			DebrisDuration:  0.4,
			DebrisRiseDelta: 20,
		},

		Colors: ColorConfig{
			Background: SkyBlue,
			Platform:   Green,
			Box:        Brown,
			Item:       Yellow,
			Body:       Grey,
			Players:    []color.RGBA{Red, LightBlue},
			HUDText:    White,
		},
	}
}

// FloorY returns the Y position at which a body of the given height rests on
// the bottom of the play area.
func (c Config) FloorY(height float64) float64 {
	return float64(c.Height) - height
}

var (
	ErrInvalidScreen  = errors.New("screen size must be positive")
	ErrInvalidTPS     = errors.New("tick rate must be positive")
	ErrInvalidPhysics = errors.New("invalid physics tuning")
	ErrInvalidPlayer  = errors.New("invalid player tuning")
)

// Validate reports the first tuning value that would break the simulation.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidScreen, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTPS, c.TPS)
	}
	if c.Physics.Gravity <= 0 || c.Physics.InitialFallSpeed <= 0 {
		return fmt.Errorf("%w: gravity %.2f, initial fall %.2f",
			ErrInvalidPhysics, c.Physics.Gravity, c.Physics.InitialFallSpeed)
	}
	if c.Physics.GroundProbe <= 0 {
		return fmt.Errorf("%w: ground probe %.2f", ErrInvalidPhysics, c.Physics.GroundProbe)
	}
	if c.Player.CollisionWidth <= 0 || c.Player.CollisionHeight <= 0 {
		return fmt.Errorf("%w: collision size %.0fx%.0f",
			ErrInvalidPlayer, c.Player.CollisionWidth, c.Player.CollisionHeight)
	}
	if c.Player.MoveSpeed < 0 || c.Player.JumpSpeed < 0 {
		return fmt.Errorf("%w: negative speed", ErrInvalidPlayer)
	}
	return nil
}

package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/boxhop/assets"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/systems"
	"github.com/automoto/boxhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a WorldScene. Keys defaults to the real keyboard; a nil
// Sound plays nothing.
type Options struct {
	Config  cfg.Config
	Layout  assets.Layout
	Players int
	Keys    systems.KeySource
	Sound   systems.SoundPlayer
}

// WorldScene runs one copy of the level per player. Levels share nothing and
// are updated one after another, each drawn into its own viewport.
type WorldScene struct {
	conf     cfg.Config
	keys     systems.KeySource
	levels   []*ecs.ECS
	canvases []*ebiten.Image
}

func NewWorldScene(opts Options) (*WorldScene, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("world scene: %w", err)
	}
	if err := opts.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("world scene: %w", err)
	}
	if opts.Players <= 0 {
		opts.Players = 2
	}
	if opts.Keys == nil {
		opts.Keys = systems.EbitenKeys
	}

	ws := &WorldScene{conf: opts.Config, keys: opts.Keys}
	for i := 0; i < opts.Players; i++ {
		ws.levels = append(ws.levels, newLevel(opts, i))
	}
	return ws, nil
}

func newLevel(opts Options, playerIndex int) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.NewInputSystem(opts.Keys))
	ecs.AddSystem(systems.UpdateLevel)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateItems)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.NewAudioSystem(opts.Sound))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateLevel(ecs, opts.Config, opts.Layout, playerIndex)

	scheme := cfg.ControlSchemeArrows
	if playerIndex%2 == 1 {
		scheme = cfg.ControlSchemeWASD
	}
	factory.CreatePlayer(ecs, playerIndex, scheme, opts.Layout.SpawnFor(playerIndex).X)

	return ecs
}

// Update checks for quit once, then advances every level by one frame.
func (ws *WorldScene) Update() error {
	for _, key := range cfg.Input.QuitKeys {
		if ws.keys.IsKeyPressed(key) {
			return ebiten.Termination
		}
	}

	for _, level := range ws.levels {
		level.Update()
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for i, level := range ws.levels {
		if len(ws.canvases) <= i {
			ws.canvases = append(ws.canvases, ebiten.NewImage(ws.conf.Width, ws.conf.Height))
		}
		canvas := ws.canvases[i]
		canvas.Clear()
		level.Draw(canvas)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(i*ws.conf.Width), 0)
		screen.DrawImage(canvas, op)
	}
}

// Layout places the viewports side by side.
func (ws *WorldScene) Layout() (int, int) {
	return ws.conf.Width * len(ws.levels), ws.conf.Height
}

// Levels exposes each player's level, in player order.
func (ws *WorldScene) Levels() []*ecs.ECS {
	return ws.levels
}

// Player returns the player entry of level i.
func (ws *WorldScene) Player(i int) (*donburi.Entry, bool) {
	return components.Player.First(ws.levels[i].World)
}

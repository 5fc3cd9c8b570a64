package main

import (
	"log"
	"os"

	"github.com/automoto/boxhop/assets"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/fonts"
	"github.com/automoto/boxhop/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout() (int, int)
}

type Game struct {
	scene Scene
}

func NewGame(conf cfg.Config) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: HUD disabled: %v", err)
	}

	ctx := audio.NewContext(cfg.Audio.SampleRate)
	sound := assets.NewAudioLoader(ctx, os.DirFS("assets"))
	if err := sound.Preload(); err != nil {
		log.Printf("Warning: could not preload sounds: %v", err)
	}

	scene, err := scenes.NewWorldScene(scenes.Options{
		Config:  conf,
		Layout:  assets.DefaultLayout,
		Players: 2,
		Sound:   sound,
	})
	if err != nil {
		return nil, err
	}

	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout()
}

func main() {
	conf := cfg.DefaultConfig()

	game, err := NewGame(conf)
	if err != nil {
		log.Fatal(err)
	}

	// Two viewports side by side, shown at half size.
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w/2, h/2)
	ebiten.SetWindowTitle(conf.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(conf.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

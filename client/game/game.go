package game

import (
	"fmt"

	"github.com/cbodonnell/cangua/client/flow"
	"github.com/cbodonnell/cangua/client/input"
	"github.com/cbodonnell/cangua/client/objects"
	"github.com/cbodonnell/cangua/client/scenes"
	"github.com/cbodonnell/cangua/pkg/board"
	core "github.com/cbodonnell/cangua/pkg/game"
	"github.com/cbodonnell/cangua/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// sessionOpts is the template for every new session; its seed moves on after each game.
	sessionOpts core.NewSessionOptions
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
	// session is the game being played.
	session *core.Session
}

type NewGameOptions struct {
	Debug   bool
	Session core.NewSessionOptions
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug:       opts.Debug,
		sessionOpts: opts.Session,
	}

	if err := g.loadGame(); err != nil {
		return nil, fmt.Errorf("failed to load game scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadGame() error {
	session, err := core.NewSession(g.sessionOpts)
	if err != nil {
		return fmt.Errorf("failed to create session: %v", err)
	}
	log.Info("New game %s with seed %d", session.ID(), g.sessionOpts.Seed)

	gameScene, err := scenes.NewGameScene(scenes.NewGameSceneOptions{
		Session: session,
		OnGameOver: func(winner *core.Player) {
			log.Info("Game %s won by %s", session.ID(), winner.Name())
			g.mode = flow.GameModeOver
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.session = session
	g.mode = flow.GameModePlay
	return nil
}

// restart starts a fresh session with the next seed.
func (g *Game) restart() error {
	g.sessionOpts.Seed++
	return g.loadGame()
}

func (g *Game) Update() error {
	if input.IsNegativeJustPressed() {
		return ebiten.Termination
	}

	switch g.mode {
	case flow.GameModePlay:
		if input.IsRestartJustPressed() {
			if err := g.restart(); err != nil {
				return fmt.Errorf("failed to restart game: %v", err)
			}
			return nil
		}
	case flow.GameModeOver:
		if input.IsPositiveJustPressed() || input.IsRestartJustPressed() {
			if err := g.restart(); err != nil {
				return fmt.Errorf("failed to restart game: %v", err)
			}
			return nil
		}
	}

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(objects.BackgroundColor)
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	sk := g.session.Statekeep()
	for i, color := range board.Colors {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-6s %v", color, sk.Counters(color)), HUDDebugX, DefaultScreenHeight-128+16*i)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f  TPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), HUDDebugX, DefaultScreenHeight-48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Mode: %s  Moving: %t", g.mode, g.session.Moving()), HUDDebugX, DefaultScreenHeight-32)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Session: %s", g.session.ID()), HUDDebugX, DefaultScreenHeight-16)
}

const (
	DefaultScreenWidth  = 1100
	DefaultScreenHeight = 704
	HUDDebugX           = scenes.HUDOffsetX
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}

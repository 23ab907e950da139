package scenes

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/cbodonnell/cangua/client/input"
	"github.com/cbodonnell/cangua/client/objects"
	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/cbodonnell/cangua/pkg/game"
	"github.com/cbodonnell/cangua/pkg/game/types"
	"github.com/cbodonnell/cangua/pkg/log"
)

const (
	// HUDOffsetX is where the side panel starts, right of the board.
	HUDOffsetX = board.GridSize*board.TileSize - board.TileSize + 16
	// EffectTTL is how long floating labels stay on screen, in milliseconds.
	EffectTTL = 1200
)

// GameScene plays one session: it forwards input to the session, advances
// its animations every tick and turns its events into on-screen feedback.
type GameScene struct {
	*BaseScene

	session    *game.Session
	hud        *objects.HUDObject
	effects    int
	overShown  bool
	onGameOver func(winner *game.Player)
}

type NewGameSceneOptions struct {
	// Session is the game being played.
	Session *game.Session
	// OnGameOver is called once the winner's last move finished animating.
	OnGameOver func(winner *game.Player)
}

var _ Scene = &GameScene{}

func NewGameScene(opts NewGameSceneOptions) (Scene, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("game scene requires a session")
	}
	return &GameScene{
		BaseScene:  NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		session:    opts.Session,
		onGameOver: opts.OnGameOver,
	}, nil
}

func (g *GameScene) Init() error {
	root := g.GetRoot()
	if len(root.GetChildren()) == 0 {
		if err := root.AddChild("board", objects.NewBoardObject("board", g.session.Board(), g.session.Stars())); err != nil {
			return fmt.Errorf("failed to add board: %v", err)
		}
		for _, pawn := range g.session.Pawns() {
			id := fmt.Sprintf("pawn-%s-%d", pawn.Color(), pawn.Number())
			if err := root.AddChild(id, objects.NewPawnObject(id, pawn)); err != nil {
				return fmt.Errorf("failed to add pawn %s: %v", id, err)
			}
		}
		g.hud = objects.NewHUDObject("hud", g.session, HUDOffsetX, 16)
		if err := root.AddChild("hud", g.hud); err != nil {
			return fmt.Errorf("failed to add hud: %v", err)
		}
	}
	return g.BaseScene.Init()
}

func (g *GameScene) Update() error {
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	g.session.Update()

	if err := g.processEvents(); err != nil {
		return fmt.Errorf("failed to process events: %v", err)
	}

	if err := g.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}

	if g.session.Over() && !g.session.Moving() && !g.overShown {
		g.overShown = true
		if err := g.showGameOver(); err != nil {
			return fmt.Errorf("failed to show game over: %v", err)
		}
	}

	return nil
}

func (g *GameScene) handleInput() error {
	if input.IsSkipJustPressed() {
		g.session.SkipAnimations()
		return nil
	}
	if !input.IsPositiveJustPressed() {
		return nil
	}

	report, err := g.session.Roll()
	switch {
	case errors.Is(err, game.ErrMoveInProgress):
		log.Debug("Roll ignored: %v", err)
		return nil
	case errors.Is(err, game.ErrGameOver):
		return nil
	case err != nil:
		return err
	}
	log.Debug("%s played %d turn(s), next is %s", report.Color, len(report.Turns), report.Next)
	return nil
}

func (g *GameScene) processEvents() error {
	events, err := g.session.Events().ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read events: %v", err)
	}

	for _, event := range events {
		log.Trace("Event: %s", event)
		g.hud.AddLine(event.String())

		switch e := event.(type) {
		case types.PawnCapturedEvent:
			if err := g.addEffect("kick!", e.At, objects.PlayerColor(e.Color)); err != nil {
				return err
			}
		case types.StarEffectEvent:
			if err := g.addEffect(e.Outcome.String(), e.Star, objects.PlayerColor(e.Color)); err != nil {
				return err
			}
		case types.PawnFinishedEvent:
			at, err := g.session.Board().PositionToCoordinate(e.Color, board.HomePosition)
			if err != nil {
				return err
			}
			if err := g.addEffect("home!", at, objects.PlayerColor(e.Color)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *GameScene) addEffect(text string, at board.Coordinate, clr color.Color) error {
	pos := board.ToPixel(at)
	id := fmt.Sprintf("effect-%d", g.effects)
	g.effects++
	return g.GetRoot().AddChild(id, objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   text,
		X:      pos.X,
		Y:      pos.Y - board.TileSize/2,
		Color:  clr,
		Scroll: true,
		TTL:    EffectTTL,
	}))
}

func (g *GameScene) showGameOver() error {
	winner := g.session.Winner()
	title := fmt.Sprintf("%s wins!", winner.Name())
	overlay := objects.NewTextOverlayObject("overlay-gameover", title, "press enter for a new game", objects.PlayerColor(winner.Color()))
	if err := g.GetRoot().AddChild("overlay-gameover", overlay); err != nil {
		return err
	}
	if g.onGameOver != nil {
		g.onGameOver(winner)
	}
	return nil
}

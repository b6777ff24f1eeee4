// Package desktop runs Walk the Dog in an ebiten window with real sprites
// and sound.
package desktop

import (
	"context"
	"errors"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
	"github.com/vovakirdan/walk-the-dog/internal/games/walkdog"
)

const restartLabel = "New Game"

var buttonColor = color.RGBA{R: 230, G: 140, B: 30, A: 255}

// keyBindings maps window keys to the logical keys the game reads.
var keyBindings = map[ebiten.Key]string{
	ebiten.KeyArrowRight: core.KeyArrowRight,
	ebiten.KeyArrowDown:  core.KeyArrowDown,
	ebiten.KeySpace:      core.KeySpace,
}

// Options configures the desktop frontend.
type Options struct {
	Game          *walkdog.Game // an initialized game
	Button        *engine.Button
	Canvas        core.Rect
	TickRate      int
	ShowFrameRate bool
	Logger        *log.Logger
}

// Game adapts a walkdog game to ebiten.Game. Ebiten runs Update at a
// fixed rate, so every Update is one simulation tick.
type Game struct {
	ctx      context.Context
	game     *walkdog.Game
	button   *engine.Button
	keys     *core.KeyState
	renderer *Renderer
	canvas   core.Rect
	showRate bool
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps opts.Game. Update stops the window once ctx is done.
func NewGame(ctx context.Context, opts Options) *Game {
	return &Game{
		ctx:      ctx,
		game:     opts.Game,
		button:   opts.Button,
		keys:     core.NewKeyState(),
		renderer: NewRenderer(),
		canvas:   opts.Canvas,
		showRate: opts.ShowFrameRate,
	}
}

// restartButton is the button's area: centred, a third of the way down.
func (g *Game) restartButton() core.Rect {
	const w, h = 120, 40
	return core.NewRect(g.canvas.X+(g.canvas.W-w)/2, g.canvas.Y+g.canvas.H/3, w, h)
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for k, code := range keyBindings {
		if ebiten.IsKeyPressed(k) {
			g.keys.Press(code)
		} else {
			g.keys.Release(code)
		}
	}

	if g.button.Visible() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if g.restartButton().Contains(int16(x), int16(y)) {
				g.button.Click()
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.button.Click()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showRate = !g.showRate
	}

	g.game.Update(g.keys)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Target(screen)
	g.game.Draw(g.renderer)

	if g.button.Visible() {
		b := g.restartButton()
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), buttonColor, false)
		ebitenutil.DebugPrintAt(screen, restartLabel, int(b.X)+36, int(b.Y)+12)
	}
	if g.showRate {
		engine.DrawFrameRate(g.renderer, int(ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.canvas.W), int(g.canvas.H)
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	ebiten.SetWindowSize(int(opts.Canvas.W), int(opts.Canvas.H))
	ebiten.SetWindowTitle("Walk the Dog")

	opts.Logger.Info("opening window", "width", opts.Canvas.W, "height", opts.Canvas.H, "tps", ebiten.TPS())
	err := ebiten.RunGame(NewGame(ctx, opts))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

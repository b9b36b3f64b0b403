// Package demo runs a scenario's buttons in an ebiten window.
package demo

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/embedui/cmd/embedui/internal/scenario"
	"github.com/go-drift/embedui/pkg/draw"
	uierrors "github.com/go-drift/embedui/pkg/errors"
	"github.com/go-drift/embedui/pkg/focus"
	"github.com/go-drift/embedui/pkg/graphics"
)

// Game implements ebiten.Game on top of a scene. The scene runs on the
// system clock.
type Game struct {
	ctx    context.Context
	scene  *scenario.Scene
	raster *draw.Raster
	logger *log.Logger
	width  int
	height int
}

var keys = []struct {
	ebiten ebiten.Key
	key    focus.Key
}{
	{ebiten.KeyEnter, focus.KeyEnter},
	{ebiten.KeySpace, focus.KeyEnter},
	{ebiten.KeyUp, focus.KeyUp},
	{ebiten.KeyDown, focus.KeyDown},
	{ebiten.KeyLeft, focus.KeyLeft},
	{ebiten.KeyRight, focus.KeyRight},
	{ebiten.KeyEscape, focus.KeyEsc},
}

// New builds the scene for f. The caller must Close the game.
func New(ctx context.Context, f *scenario.File, opts scenario.Options) *Game {
	opts.Clock = nil
	scene := scenario.Build(f, opts)
	b := scene.Display.Bounds()
	w, h := int(b.Width()), int(b.Height())
	return &Game{
		ctx:    ctx,
		scene:  scene,
		raster: draw.NewRaster(w, h),
		logger: opts.Logger,
		width:  w,
		height: h,
	}
}

// Update feeds the mouse, the first touch and the keyboard to the scene.
func (g *Game) Update() error {
	defer uierrors.Recover("demo.Update")
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
		pressed = true
	}
	g.scene.Input(graphics.Pt(graphics.Coord(x), graphics.Coord(y)), pressed)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.sendKey(focus.KeyPrev)
		} else {
			g.sendKey(focus.KeyNext)
		}
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			g.sendKey(k.key)
		}
	}

	g.scene.Scheduler.Step()
	return nil
}

func (g *Game) sendKey(k focus.Key) {
	if g.logger != nil {
		g.logger.Debug("key", "key", k)
	}
	g.scene.Group.SendKey(k)
}

// Draw copies the refreshed frame to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	defer uierrors.Recover("demo.Draw")
	g.scene.Render(g.raster)
	screen.WritePixels(g.raster.Image().Pix)
}

// Layout keeps the logical size equal to the display resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close stops the scene's ripple.
func (g *Game) Close() {
	g.scene.Close()
}

// Run opens a window titled title and blocks until it is closed or ctx is
// done.
func Run(ctx context.Context, title string, f *scenario.File, opts scenario.Options) error {
	g := New(ctx, f, opts)
	defer g.Close()

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return ctx.Err()
}

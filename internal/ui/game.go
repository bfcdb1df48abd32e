package ui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/core/geom"
	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/core/session"
	game_log "github.com/haruo-gabriel/kaleidoscope-vinyl-generator/internal/log"
)

const (
	defaultWinW = 900
	defaultWinH = 700
)

// Game wires the control bar, the drawing session and the stroke canvas into
// ebiten's frame loop. Update ticks the session exactly once per frame.
type Game struct {
	logger   *game_log.Logger
	session  *session.Session
	controls *Controls
	canvas   *Canvas

	winW, winH   int
	prevX, prevY int
	started      bool
	prevKey      map[ebiten.Key]bool
}

func New(logger *game_log.Logger) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	controls := NewControls()
	cfg := controls.Config()

	g := &Game{
		logger:   logger,
		controls: controls,
		session:  session.New(logger, rng, strokePalette, cfg),
		canvas:   NewCanvas(defaultWinW, defaultWinH, cfg.Radius),
		winW:     defaultWinW,
		winH:     defaultWinH,
		prevKey:  map[ebiten.Key]bool{},
	}
	controls.Layout(defaultWinW)
	controls.OnPointerMode = g.session.SwitchToPointer
	controls.OnProceduralMode = g.session.SwitchToProcedural
	controls.OnTogglePause = g.session.TogglePause
	controls.OnClear = g.clear
	g.session.SetCenter(g.canvas.Center())
	return g
}

func (g *Game) clear() {
	g.canvas.Clear()
	g.logger.Infof("[GAME] canvas cleared")
}

func (g *Game) justPressed(k ebiten.Key) bool {
	pressed := isKeyPressed(k)
	jp := pressed && !g.prevKey[k]
	g.prevKey[k] = pressed
	return jp
}

func (g *Game) Update() error {
	consumed := g.controls.Update()

	if g.justPressed(ebiten.KeyD) {
		g.session.SwitchToPointer()
	}
	if g.justPressed(ebiten.KeyO) {
		g.session.SwitchToProcedural()
	}
	if g.justPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if g.justPressed(ebiten.KeyC) {
		g.clear()
	}
	if g.justPressed(ebiten.KeyEscape) || g.justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.session.SetConfig(g.controls.Config())
	g.canvas.SetRadius(g.session.Config().Radius)

	mx, my := cursorPosition()
	if !g.started {
		g.prevX, g.prevY = mx, my
		g.started = true
	}
	pressed := isMouseButtonPressed(ebiten.MouseButtonLeft) &&
		!consumed && my >= barHeight && g.prevY >= barHeight
	ptr := session.Pointer{
		Pressed: pressed,
		Pos:     geom.Vec2{X: float64(mx), Y: float64(my)},
		Prev:    geom.Vec2{X: float64(g.prevX), Y: float64(g.prevY)},
	}
	g.session.Frame(ptr, g.canvas.Stroke)
	g.prevX, g.prevY = mx, my
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBG)
	g.canvas.Draw(screen)
	g.controls.Draw(screen, g.session.Mode(), g.session.Paused())

	status := fmt.Sprintf("mode: %s", g.session.Mode())
	if g.session.Paused() {
		status += "  (paused)"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, g.winH-18)
}

func (g *Game) Layout(w, h int) (int, int) {
	if w != g.winW || h != g.winH {
		g.winW, g.winH = w, h
		g.canvas.Resize(w, h)
		g.controls.Layout(w)
		g.session.SetCenter(g.canvas.Center())
		g.logger.Debugf("[GAME] layout %dx%d", w, h)
	}
	return w, h
}

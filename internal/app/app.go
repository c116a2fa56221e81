//go:build ebiten

package app

import (
	"image/color"
	"time"

	"falling-sand/internal/core"
	"falling-sand/internal/render"
	"falling-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. Each Update
// drains pointer input into the sim, then advances the frame counter and
// runs a step when it fires; Draw renders a snapshot and never mutates.
type Game struct {
	sim     core.Sim
	brush   core.Brush
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	ticker  *core.FrameCounter

	onColor    color.Color
	offColor   color.Color
	background color.RGBA

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64

	stroking     bool
	lastX, lastY int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, hudWidth int, seed int64) *Game {
	size := sim.Size()
	scale := 1
	brush, _ := sim.(core.Brush)
	if brush != nil && brush.CellSize() > 0 {
		scale = brush.CellSize()
	}
	if hudWidth < 0 {
		hudWidth = 0
	}
	g := &Game{
		sim:        sim,
		brush:      brush,
		painter:    render.NewGridPainter(size.W, size.H),
		overlay:    ui.NewOverlay(sim, scale),
		ticker:     core.NewFrameCounter(ticksPerUpdate(sim)),
		onColor:    color.White,
		offColor:   color.Black,
		background: color.RGBA{A: 255},
		scale:      scale,
		hudWidth:   hudWidth,
		seed:       seed,
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(sim, hudWidth)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.ticker.SetEvery(ticksPerUpdate(g.sim))
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	if g.hud != nil {
		g.hud.Update(g.viewWidth())
	}
	g.handlePointer()

	if every := ticksPerUpdate(g.sim); every != g.ticker.Every() {
		g.ticker.SetEvery(every)
	}
	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.ticker.Advance() {
		g.sim.Step()
	}
	return nil
}

// handlePointer places grains while the left button is held and the pointer
// moves over the simulation view. Releasing the button ends the stroke.
func (g *Game) handlePointer() {
	if g.brush == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.stroking {
			g.brush.EndStroke()
		}
		g.stroking = false
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if justPressed && mx >= g.viewWidth() {
		return
	}
	moved := mx != g.lastX || my != g.lastY
	g.lastX, g.lastY = mx, my
	if !justPressed && !moved {
		return
	}
	if mx < g.viewWidth() && g.brush.Paint(mx, my) {
		g.stroking = true
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if s, ok := g.sim.(core.Snapshotter); ok {
		g.painter.BlitGrid(screen, s.Snapshot(), g.background, g.scale)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	}
	g.overlay.Draw(screen)
	if g.hud != nil {
		g.hud.Draw(screen, g.viewWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.viewWidth() + g.hudWidth, s.H * g.scale
}

// WindowSize returns the window dimensions needed for the view and HUD.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

func (g *Game) viewWidth() int {
	return g.sim.Size().W * g.scale
}

func ticksPerUpdate(sim core.Sim) int {
	if p, ok := sim.(core.Pacer); ok {
		return p.TicksPerUpdate()
	}
	return 1
}

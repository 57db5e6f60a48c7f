package player

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/EcstasyEngineer/trance"
)

// Config configures a Player. Zero values select the documented defaults.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the render resolution in pixels. Zero selects
	// 960x540.
	Width  int
	Height int

	// Archetype is the pattern to play. Ignored when Playlist is set.
	Archetype trance.ArchetypeDescriptor
	// Playlist sequences several patterns with timed crossfades.
	Playlist *Playlist

	// Speed multiplies pattern time. Zero selects 1; the player clock is
	// what feeds evaluation, so slowing it slows the pattern, not the frame
	// rate.
	Speed float64
	// CrossfadeSeconds is the pattern switch dissolve length. Zero selects
	// 1.5.
	CrossfadeSeconds float64
	// Workers is the render worker count. Zero selects GOMAXPROCS.
	Workers int

	// ShowHUD overlays the pattern name, timing, and frame rate.
	ShowHUD bool
	// Debug prints per-frame render timings to stderr.
	Debug bool
	// ScreenshotDir receives queued captures. Empty selects "screenshots".
	ScreenshotDir string

	// OnUpdate, when set, runs once per tick after the player's own update.
	// Returning an error stops the game loop.
	OnUpdate func() error
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 960
	}
	if c.Height <= 0 {
		c.Height = 540
	}
	if c.Speed == 0 {
		c.Speed = 1
	}
	if c.CrossfadeSeconds <= 0 {
		c.CrossfadeSeconds = 1.5
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.Title == "" {
		c.Title = "Trance"
	}
	return c
}

// Player hosts evaluators in an Ebitengine game loop: it advances the
// pattern clock, samples the pointer, renders frames on the CPU worker pool,
// and uploads them to the screen. It implements ebiten.Game.
type Player struct {
	cfg      Config
	renderer *frameRenderer
	frame    *ebiten.Image
	pr       pointerReader

	current  *trance.Evaluator
	fade     *crossfade
	playlist *Playlist

	clock   float64
	pointer trance.Pointer

	screenshotQueue []string
	stats           frameStats
}

// frameStats holds per-frame timing metrics, populated in debug mode.
type frameStats struct {
	renderTime time.Duration
	uploadTime time.Duration
}

// NewPlayer compiles the configured pattern and starts the render workers.
// The caller owns the Player and should Close it when done; Run does both.
func NewPlayer(cfg Config) (*Player, error) {
	cfg = cfg.withDefaults()

	desc := cfg.Archetype
	if cfg.Playlist != nil {
		desc = cfg.Playlist.Current()
	}
	eval, err := trance.NewEvaluator(desc)
	if err != nil {
		return nil, err
	}

	return &Player{
		cfg:      cfg,
		renderer: newFrameRenderer(cfg.Width, cfg.Height, cfg.Workers),
		current:  eval,
		playlist: cfg.Playlist,
	}, nil
}

// Play crossfades to a new pattern. A fade already in flight snaps to its
// target first so the new fade starts from a settled frame.
func (p *Player) Play(desc trance.ArchetypeDescriptor) error {
	next, err := trance.NewEvaluator(desc)
	if err != nil {
		return err
	}
	if p.fade != nil {
		p.current = p.fade.to
		p.fade = nil
	}
	p.fade = newCrossfade(p.current, next, p.cfg.CrossfadeSeconds)
	return nil
}

// Next advances a playlist-driven player to its next entry immediately.
// Without a playlist it does nothing.
func (p *Player) Next() error {
	if p.playlist == nil {
		return nil
	}
	desc, label, switched := p.playlist.skip()
	if !switched {
		return nil
	}
	if label != "" {
		p.Screenshot(label)
	}
	return p.Play(desc)
}

// Name returns the name of the pattern being faded in, or the settled
// pattern outside a fade.
func (p *Player) Name() string {
	if p.fade != nil {
		return p.fade.to.Name()
	}
	return p.current.Name()
}

// Time returns the pattern clock in seconds.
func (p *Player) Time() float64 {
	return p.clock
}

// SetSpeed changes the pattern time multiplier. Zero freezes the pattern
// while the loop keeps running.
func (p *Player) SetSpeed(speed float64) {
	p.cfg.Speed = speed
}

// Update advances the clock, the pointer, any active fade, and the
// playlist. Part of ebiten.Game.
func (p *Player) Update() error {
	dt := p.cfg.Speed / float64(ebiten.TPS())
	p.clock += dt
	p.pointer = p.pr.read(p.cfg.Width, p.cfg.Height)

	if p.fade != nil && p.fade.update(1.0/float64(ebiten.TPS())) {
		p.current = p.fade.to
		p.fade = nil
	}

	if p.playlist != nil {
		desc, label, switched := p.playlist.step(1.0 / float64(ebiten.TPS()))
		if switched {
			if label != "" {
				p.Screenshot(label)
			}
			if err := p.Play(desc); err != nil {
				return err
			}
		}
		if p.playlist.Done() && p.fade == nil {
			return ebiten.Termination
		}
	}

	if p.cfg.OnUpdate != nil {
		return p.cfg.OnUpdate()
	}
	return nil
}

// Draw renders the current frame on the worker pool and uploads it. Part of
// ebiten.Game.
func (p *Player) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if p.cfg.Debug {
		t0 = time.Now()
	}

	a, b := p.current, (*trance.Evaluator)(nil)
	mix := 0.0
	if p.fade != nil {
		a, b, mix = p.fade.from, p.fade.to, p.fade.mix
	}
	pix := p.renderer.Render(a, b, mix, p.clock, p.pointer)

	if p.cfg.Debug {
		p.stats.renderTime = time.Since(t0)
		t0 = time.Now()
	}

	if p.frame == nil {
		p.frame = ebiten.NewImage(p.cfg.Width, p.cfg.Height)
	}
	p.frame.WritePixels(pix)
	screen.DrawImage(p.frame, nil)

	if p.cfg.Debug {
		p.stats.uploadTime = time.Since(t0)
		p.debugLog()
	}
	if p.cfg.ShowHUD {
		p.drawHUD(screen)
	}

	p.flushScreenshots(pix, p.cfg.Width, p.cfg.Height)
}

// Layout fixes the internal resolution to the configured size; the window
// scales it. Part of ebiten.Game.
func (p *Player) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.cfg.Width, p.cfg.Height
}

// Close stops the render workers.
func (p *Player) Close() {
	p.renderer.Close()
}

// drawHUD overlays pattern and timing info in the top-left corner.
func (p *Player) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("%s\nt: %6.1fs  FPS: %.1f  TPS: %.1f",
		p.Name(), p.clock, ebiten.ActualFPS(), ebiten.ActualTPS())
	if p.playlist != nil {
		i, n := p.playlist.Index()
		hud += fmt.Sprintf("\npattern %d/%d", i+1, n)
	}
	ebitenutil.DebugPrint(screen, hud)
}

// debugLog prints per-frame timings to stderr.
func (p *Player) debugLog() {
	total := p.stats.renderTime + p.stats.uploadTime
	fmt.Fprintf(os.Stderr, "[player] render: %v | upload: %v | total: %v\n",
		p.stats.renderTime, p.stats.uploadTime, total)
}

// Run opens the window and blocks in the game loop until the window closes
// or a non-looping playlist finishes. The caller still owns the Player and
// should Close it afterwards.
func (p *Player) Run() error {
	ebiten.SetWindowSize(p.cfg.Width, p.cfg.Height)
	ebiten.SetWindowTitle(p.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(p)
}

// Run plays a configuration in a window until the window closes or a
// non-looping playlist finishes. It owns the Player for its whole life.
func Run(cfg Config) error {
	p, err := NewPlayer(cfg)
	if err != nil {
		return err
	}
	defer p.Close()
	return p.Run()
}

package player

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/EcstasyEngineer/trance"
)

// frameRenderer rasterizes evaluators into an RGBA byte buffer on the CPU.
// A fixed pool of workers splits each frame into horizontal bands; the pool
// persists across frames so rendering allocates nothing after construction.
//
// Render must not be called concurrently with itself. The workers only read
// the per-frame fields, which Render sets before dispatching any band.
type frameRenderer struct {
	width  int
	height int
	pix    []byte // RGBA, 4 bytes per pixel
	bandH  int

	jobs    chan int // y offset of a band
	bandWG  sync.WaitGroup
	workers sync.WaitGroup
	running atomic.Bool

	// Per-frame state, written by Render, read by workers.
	a   *trance.Evaluator
	b   *trance.Evaluator
	mix float64
	t   float64
	ptr trance.Pointer
}

// newFrameRenderer starts a renderer with the given worker count. Zero or
// negative picks GOMAXPROCS.
func newFrameRenderer(width, height, workers int) *frameRenderer {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	// Aim for a few bands per worker so a slow band cannot stall the frame.
	bands := workers * 4
	bandH := (height + bands - 1) / bands
	if bandH < 1 {
		bandH = 1
	}

	r := &frameRenderer{
		width:  width,
		height: height,
		pix:    make([]byte, 4*width*height),
		bandH:  bandH,
		jobs:   make(chan int, bands+1),
	}
	r.running.Store(true)
	r.workers.Add(workers)
	for i := 0; i < workers; i++ {
		go r.worker()
	}
	return r
}

func (r *frameRenderer) worker() {
	defer r.workers.Done()
	for y0 := range r.jobs {
		r.renderBand(y0)
		r.bandWG.Done()
	}
}

// Render draws one frame of a into the buffer and returns it. When b is
// non-nil the frame is the per-pixel blend of both evaluators by mix, which
// is how crossfades stay correct through the palette and post chain.
// The returned slice is reused by the next Render call.
func (r *frameRenderer) Render(a, b *trance.Evaluator, mix, t float64, ptr trance.Pointer) []byte {
	if !r.running.Load() {
		return r.pix
	}
	r.a, r.b, r.mix, r.t, r.ptr = a, b, mix, t, ptr
	for y0 := 0; y0 < r.height; y0 += r.bandH {
		r.bandWG.Add(1)
		r.jobs <- y0
	}
	r.bandWG.Wait()
	return r.pix
}

func (r *frameRenderer) renderBand(y0 int) {
	y1 := min(y0+r.bandH, r.height)
	ctx := trance.PixelContext{
		Res:     trance.Vec2{X: float64(r.width), Y: float64(r.height)},
		T:       r.t,
		Pointer: r.ptr,
	}
	i := 4 * y0 * r.width
	for y := y0; y < y1; y++ {
		ctx.Pos.Y = float64(y) + 0.5
		for x := 0; x < r.width; x++ {
			ctx.Pos.X = float64(x) + 0.5
			c := r.a.Eval(ctx)
			if r.b != nil {
				c = c.Lerp(r.b.Eval(ctx), r.mix)
			}
			r.pix[i] = uint8(c.R*255 + 0.5)
			r.pix[i+1] = uint8(c.G*255 + 0.5)
			r.pix[i+2] = uint8(c.B*255 + 0.5)
			r.pix[i+3] = 0xff
			i += 4
		}
	}
}

// Size returns the buffer dimensions in pixels.
func (r *frameRenderer) Size() (int, int) {
	return r.width, r.height
}

// Close stops the workers. Safe to call more than once; Render becomes a
// no-op afterwards.
func (r *frameRenderer) Close() {
	if !r.running.CompareAndSwap(true, false) {
		return
	}
	close(r.jobs)
	r.workers.Wait()
}

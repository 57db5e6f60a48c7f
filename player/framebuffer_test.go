package player

import (
	"testing"

	"github.com/EcstasyEngineer/trance"
)

func presetEvaluator(t *testing.T, name string) *trance.Evaluator {
	t.Helper()
	desc, ok := trance.Preset(name)
	if !ok {
		t.Fatalf("unknown preset %q", name)
	}
	eval, err := trance.NewEvaluator(desc)
	if err != nil {
		t.Fatalf("NewEvaluator(%q): %v", name, err)
	}
	return eval
}

// copyPix snapshots a render result, since the renderer reuses its buffer.
func copyPix(pix []byte) []byte {
	return append([]byte(nil), pix...)
}

func TestFrameRendererBandHeight(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		workers int
		want    int
	}{
		{"even split", 64, 48, 2, 6},
		{"single worker", 32, 10, 1, 3},
		{"more bands than rows", 16, 5, 4, 1},
		{"rounds up", 64, 100, 3, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFrameRenderer(tt.width, tt.height, tt.workers)
			defer r.Close()
			if r.bandH != tt.want {
				t.Errorf("bandH = %d, want %d", r.bandH, tt.want)
			}
			if got := len(r.pix); got != 4*tt.width*tt.height {
				t.Errorf("len(pix) = %d, want %d", got, 4*tt.width*tt.height)
			}
		})
	}
}

func TestFrameRendererSize(t *testing.T) {
	r := newFrameRenderer(20, 30, 1)
	defer r.Close()
	w, h := r.Size()
	if w != 20 || h != 30 {
		t.Errorf("Size() = %d, %d, want 20, 30", w, h)
	}
}

// TestFrameRendererMatchesEval checks that the banded parallel render of a
// frame is byte-identical to evaluating every pixel directly.
func TestFrameRendererMatchesEval(t *testing.T) {
	const width, height = 16, 12
	eval := presetEvaluator(t, "vortex")
	ptr := trance.Pointer{Pos: trance.Vec2{X: 3, Y: 9}, Pressed: true, Active: true}

	r := newFrameRenderer(width, height, 3)
	defer r.Close()
	pix := r.Render(eval, nil, 0, 1.7, ptr)

	ctx := trance.PixelContext{
		Res:     trance.Vec2{X: width, Y: height},
		T:       1.7,
		Pointer: ptr,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ctx.Pos = trance.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			c := eval.Eval(ctx)
			i := 4 * (y*width + x)
			want := [4]byte{
				uint8(c.R*255 + 0.5),
				uint8(c.G*255 + 0.5),
				uint8(c.B*255 + 0.5),
				0xff,
			}
			got := [4]byte{pix[i], pix[i+1], pix[i+2], pix[i+3]}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFrameRendererDeterministic(t *testing.T) {
	eval := presetEvaluator(t, "maelstrom")
	r := newFrameRenderer(24, 17, 4)
	defer r.Close()

	first := copyPix(r.Render(eval, nil, 0, 3.25, trance.Pointer{}))
	second := r.Render(eval, nil, 0, 3.25, trance.Pointer{})
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("byte %d = %d on second render, want %d", i, second[i], first[i])
		}
	}
}

// TestFrameRendererCrossfade checks the blend endpoints against solo renders
// of each evaluator. Mix 0 must be exact; mix 1 goes through the lerp
// arithmetic, so it may land one quantization step off.
func TestFrameRendererCrossfade(t *testing.T) {
	a := presetEvaluator(t, "vortex")
	b := presetEvaluator(t, "emberfield")
	r := newFrameRenderer(8, 8, 2)
	defer r.Close()

	soloA := copyPix(r.Render(a, nil, 0, 0.5, trance.Pointer{}))
	soloB := copyPix(r.Render(b, nil, 0, 0.5, trance.Pointer{}))

	mix0 := copyPix(r.Render(a, b, 0, 0.5, trance.Pointer{}))
	for i := range mix0 {
		if mix0[i] != soloA[i] {
			t.Fatalf("mix 0 byte %d = %d, want %d", i, mix0[i], soloA[i])
		}
	}

	mix1 := copyPix(r.Render(a, b, 1, 0.5, trance.Pointer{}))
	for i := range mix1 {
		d := int(mix1[i]) - int(soloB[i])
		if d < -1 || d > 1 {
			t.Fatalf("mix 1 byte %d = %d, want %d within 1", i, mix1[i], soloB[i])
		}
	}

	half := r.Render(a, b, 0.5, 0.5, trance.Pointer{})
	for i := range half {
		lo, hi := soloA[i], soloB[i]
		if lo > hi {
			lo, hi = hi, lo
		}
		if int(half[i]) < int(lo)-1 || int(half[i]) > int(hi)+1 {
			t.Fatalf("mix 0.5 byte %d = %d, outside [%d, %d]", i, half[i], lo, hi)
		}
	}
}

// TestFrameRendererCoversOddHeight renders a frame whose height does not
// divide evenly into bands and checks every row got written. The buffer
// starts zeroed and the renderer sets alpha opaque, so a skipped row would
// show as transparent pixels.
func TestFrameRendererCoversOddHeight(t *testing.T) {
	eval := presetEvaluator(t, "halcyon")
	r := newFrameRenderer(10, 7, 2)
	defer r.Close()

	pix := r.Render(eval, nil, 0, 0, trance.Pointer{})
	if len(pix) != 4*10*7 {
		t.Fatalf("len(pix) = %d, want %d", len(pix), 4*10*7)
	}
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xff {
			t.Fatalf("alpha byte %d = %d, want 255", i, pix[i])
		}
	}
}

func TestFrameRendererCloseIdempotent(t *testing.T) {
	eval := presetEvaluator(t, "vortex")
	r := newFrameRenderer(4, 4, 1)
	r.Close()
	r.Close()

	// Render after Close must neither block nor panic.
	pix := r.Render(eval, nil, 0, 0, trance.Pointer{})
	if len(pix) != 4*4*4 {
		t.Errorf("len(pix) = %d, want %d", len(pix), 4*4*4)
	}
}

// --- Benchmarks ---

func BenchmarkFrameRender(b *testing.B) {
	desc, _ := trance.Preset("maelstrom")
	eval, err := trance.NewEvaluator(desc)
	if err != nil {
		b.Fatal(err)
	}
	r := newFrameRenderer(256, 256, 0)
	defer r.Close()

	b.ReportAllocs()
	t := 0.0
	for b.Loop() {
		t += 1.0 / 60
		r.Render(eval, nil, 0, t, trance.Pointer{})
	}
}

func BenchmarkFrameRenderCrossfade(b *testing.B) {
	da, _ := trance.Preset("vortex")
	db, _ := trance.Preset("inkflow")
	a, err := trance.NewEvaluator(da)
	if err != nil {
		b.Fatal(err)
	}
	bb, err := trance.NewEvaluator(db)
	if err != nil {
		b.Fatal(err)
	}
	r := newFrameRenderer(256, 256, 0)
	defer r.Close()

	b.ReportAllocs()
	t := 0.0
	for b.Loop() {
		t += 1.0 / 60
		r.Render(a, bb, 0.5, t, trance.Pointer{})
	}
}

package player

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/EcstasyEngineer/trance"
)

// crossfade blends the outgoing evaluator into the incoming one over a fixed
// duration. The mix value eases through InOutQuad so a switch reads as a
// dissolve rather than a linear wipe.
type crossfade struct {
	from  *trance.Evaluator
	to    *trance.Evaluator
	tween *gween.Tween
	mix   float64
	done  bool
}

func newCrossfade(from, to *trance.Evaluator, seconds float64) *crossfade {
	return &crossfade{
		from:  from,
		to:    to,
		tween: gween.New(0, 1, float32(seconds), ease.InOutQuad),
	}
}

// update advances the fade and reports whether it has finished. After the
// last step mix rests at exactly 1.
func (f *crossfade) update(dt float64) bool {
	if f.done {
		return true
	}
	val, done := f.tween.Update(float32(dt))
	f.mix = float64(val)
	f.done = done
	return done
}

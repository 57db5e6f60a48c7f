package player

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/EcstasyEngineer/trance"
)

// pointerReader converts mouse and touch state into the evaluator's pointer
// input. The first active touch wins over the mouse, so patterns respond the
// same way on desktop and on touch screens.
type pointerReader struct {
	touchIDs []ebiten.TouchID
}

// read samples the pointer in logical screen coordinates. The mouse only
// counts as active while the cursor is inside the w by h screen area.
func (pr *pointerReader) read(w, h int) trance.Pointer {
	pr.touchIDs = ebiten.AppendTouchIDs(pr.touchIDs[:0])
	if len(pr.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(pr.touchIDs[0])
		return trance.Pointer{
			Pos:     trance.Vec2{X: float64(x), Y: float64(y)},
			Pressed: true,
			Active:  true,
		}
	}

	mx, my := ebiten.CursorPosition()
	return trance.Pointer{
		Pos:     trance.Vec2{X: float64(mx), Y: float64(my)},
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Active:  mx >= 0 && mx < w && my >= 0 && my < h,
	}
}

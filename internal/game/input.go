package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is polled once per tick.
type Input interface {
	// Tapped reports a jump: a touch, a click or the space bar.
	Tapped() bool
	// Restart reports the request to play again after a crash.
	Restart() bool
}

// EbitenInput reads the keyboard, mouse and touch screen.
type EbitenInput struct{}

func (in EbitenInput) Tapped() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (in EbitenInput) Restart() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || in.Tapped()
}

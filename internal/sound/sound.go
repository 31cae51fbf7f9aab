// Package sound synthesizes the scene's effects and plays them through the
// engine's audio context.
package sound

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Bank holds one ready player per effect.
type Bank struct {
	players map[Effect]*audio.Player
	muted   bool
}

// NewBank renders every effect once and wraps it in a player. A muted bank
// plays nothing and never touches the audio device.
func NewBank(muted bool) (*Bank, error) {
	b := &Bank{players: map[Effect]*audio.Player{}, muted: muted}
	if muted {
		return b, nil
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(SampleRate))
	}
	for _, e := range []Effect{EffectJump, EffectScore, EffectHit} {
		pcm := Render(e.Streamer())
		if len(pcm) == 0 {
			return nil, fmt.Errorf("sound %s: empty", e)
		}
		b.players[e] = ctx.NewPlayerFromBytes(pcm)
	}
	return b, nil
}

// Play restarts the effect from its beginning.
func (b *Bank) Play(e Effect) error {
	if b.muted {
		return nil
	}
	p, ok := b.players[e]
	if !ok {
		return fmt.Errorf("sound %s: no player", e)
	}
	if err := p.Rewind(); err != nil {
		return fmt.Errorf("sound %s: %w", e, err)
	}
	p.Play()
	return nil
}

func (b *Bank) Muted() bool { return b.muted }

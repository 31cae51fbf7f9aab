package world

import (
	"github.com/pleirosei/Flappy-Swift/internal/config"
	"github.com/pleirosei/Flappy-Swift/internal/physics"
)

// GroundPiece is one recycled floor tile.
type GroundPiece struct {
	X, Y float64
	W, H float64
}

func (g GroundPiece) Rect() physics.Rect {
	return physics.Rect{X: g.X, Y: g.Y, W: g.W, H: g.H}
}

// Ground is a strip of tiles laid edge to edge that scrolls left forever.
type Ground struct {
	Pieces []GroundPiece
	resetX float64
}

func NewGround(tun config.Tuning) *Ground {
	g := &Ground{resetX: tun.GroundResetX}
	w, h := tun.GroundPieceWidth, tun.GroundPieceHeight
	for i := 0; i < tun.GroundPieces; i++ {
		p := GroundPiece{W: w, H: h, Y: h / 2}
		if i == 0 {
			p.X = w / 2
		} else {
			p.X = g.Pieces[i-1].X + w
		}
		g.Pieces = append(g.Pieces, p)
	}
	return g
}

func (g *Ground) Move(dx float64) {
	for i := range g.Pieces {
		g.Pieces[i].X += dx
	}
}

// Recycle moves every tile that scrolled past the reset line behind its
// predecessor. The first tile follows the last one.
func (g *Ground) Recycle() {
	n := len(g.Pieces)
	for i := range g.Pieces {
		if g.Pieces[i].X > g.resetX {
			continue
		}
		prev := n - 1
		if i != 0 {
			prev = i - 1
		}
		g.Pieces[i].X = g.Pieces[prev].X + g.Pieces[i].W
	}
}

// Top is the y of the walkable surface.
func (g *Ground) Top() float64 {
	if len(g.Pieces) == 0 {
		return 0
	}
	return g.Pieces[0].Y + g.Pieces[0].H/2
}

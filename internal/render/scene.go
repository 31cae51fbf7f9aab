package render

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/pleirosei/Flappy-Swift/internal/config"
	"github.com/pleirosei/Flappy-Swift/internal/world"
)

// Renderer draws a world in screen space. World coordinates have y up and
// name sprite centres; the screen has y down and wants top-left corners.
type Renderer struct {
	tun   config.Tuning
	atlas *Atlas
	face  *text.GoTextFaceSource
}

func NewRenderer(tun config.Tuning) (*Renderer, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, err
	}
	return &Renderer{tun: tun, atlas: NewAtlas(tun), face: s}, nil
}

// ScreenPos converts a world centre of a w x h sprite to its screen top-left.
func ScreenPos(tun config.Tuning, x, y, w, h float64) (float64, float64) {
	return x - w/2, tun.WorldHeight - (y + h/2)
}

func (r *Renderer) sprite(screen *ebiten.Image, name string, x, y float64) {
	img := r.atlas.Texture(name)
	if img == nil {
		return
	}
	b := img.Bounds()
	sx, sy := ScreenPos(r.tun, x, y, float64(b.Dx()), float64(b.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(img, op)
}

// DrawWorld paints the scenery, obstacles, ground and bird, back to front.
func (r *Renderer) DrawWorld(screen *ebiten.Image, w *world.World) {
	sky := r.atlas.Texture("sky")
	screen.DrawImage(sky, &ebiten.DrawImageOptions{})

	hills := r.atlas.Texture("hills")
	hb := hills.Bounds()
	r.sprite(screen, "hills", float64(hb.Dx())/2, 300)

	// Tikis sit under the ground so their feet are hidden.
	for _, s := range w.Tikis.Sets {
		r.sprite(screen, TikiBottomName(s.Variant), s.X, s.BottomY)
		r.sprite(screen, TikiTopName(s.Variant), s.X, s.TopY)
	}
	for _, p := range w.Ground.Pieces {
		r.sprite(screen, "groundpiece", p.X, p.Y)
	}
	r.drawBird(screen, w.Bird)
}

func (r *Renderer) drawBird(screen *ebiten.Image, b *world.Bird) {
	img := r.atlas.Texture(BirdFrameName(b.Frame))
	if img == nil {
		return
	}
	bw, bh := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-bw/2, -bh/2)
	// Positive rotation is counter-clockwise in world space, which is
	// clockwise once y is flipped.
	op.GeoM.Rotate(-b.Rotation)
	op.GeoM.Translate(b.X, r.tun.WorldHeight-b.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// Text draws a centred line with its top edge at screen y.
func (r *Renderer) Text(screen *ebiten.Image, msg string, y, size float64) {
	face := &text.GoTextFace{Source: r.face, Size: size}

	shadow := &text.DrawOptions{}
	shadow.GeoM.Translate(r.tun.WorldWidth/2+3, y+3)
	shadow.ColorScale.ScaleWithColor(color.Black)
	shadow.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, shadow)

	op := &text.DrawOptions{}
	op.GeoM.Translate(r.tun.WorldWidth/2, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, op)
}

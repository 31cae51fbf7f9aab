// Package render draws the scene. Sprites are painted procedurally once at
// start-up and kept by name in an Atlas.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pleirosei/Flappy-Swift/internal/config"
)

// Atlas maps texture names to images.
type Atlas struct {
	textures map[string]*ebiten.Image
}

func (a *Atlas) Texture(name string) *ebiten.Image {
	return a.textures[name]
}

func BirdFrameName(i int) string  { return fmt.Sprintf("bird-%02d", i+1) }
func TikiBottomName(v int) string { return fmt.Sprintf("tiki-bottom-%02d", v) }
func TikiTopName(v int) string    { return fmt.Sprintf("tiki-top-%02d", v) }

var (
	skyTop    = color.RGBA{0x4e, 0xc0, 0xca, 0xff}
	skyBottom = color.RGBA{0xd8, 0xf3, 0xf5, 0xff}
	hillFar   = color.RGBA{0x7c, 0xc5, 0x76, 0xff}
	hillNear  = color.RGBA{0x5e, 0xa8, 0x58, 0xff}
	sand      = color.RGBA{0xde, 0xd8, 0x95, 0xff}
	sandDark  = color.RGBA{0xc9, 0xbf, 0x74, 0xff}
	grass     = color.RGBA{0x73, 0xbf, 0x2e, 0xff}
	grassDark = color.RGBA{0x55, 0x8c, 0x22, 0xff}
	birdBody  = color.RGBA{0xf8, 0xc8, 0x2c, 0xff}
	birdWing  = color.RGBA{0xfa, 0xf0, 0xd0, 0xff}
	birdBeak  = color.RGBA{0xf3, 0x6b, 0x20, 0xff}
	black     = color.RGBA{0x20, 0x20, 0x20, 0xff}
	white     = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

var tikiPalette = [][2]color.RGBA{
	{{0x8b, 0x5a, 0x2b, 0xff}, {0x5c, 0x3a, 0x1a, 0xff}},
	{{0x9c, 0x6b, 0x3c, 0xff}, {0x3f, 0x6e, 0x5a, 0xff}},
	{{0x7a, 0x4a, 0x32, 0xff}, {0xa8, 0x3a, 0x2a, 0xff}},
}

// NewAtlas paints every sprite the scene uses, sized from the tuning.
func NewAtlas(tun config.Tuning) *Atlas {
	a := &Atlas{textures: map[string]*ebiten.Image{}}
	a.textures["sky"] = paintSky(int(tun.WorldWidth), int(tun.WorldHeight))
	a.textures["hills"] = paintHills(int(tun.WorldWidth), 340)
	a.textures["groundpiece"] = paintGroundPiece(int(tun.GroundPieceWidth), int(tun.GroundPieceHeight))
	for i := 0; i < tun.BirdFrames; i++ {
		a.textures[BirdFrameName(i)] = paintBird(int(tun.BirdWidth), int(tun.BirdHeight), i, tun.BirdFrames)
	}
	for v := 1; v <= tun.TikiVariants; v++ {
		bottom := paintTiki(int(tun.TikiWidth), int(tun.TikiHeight), v)
		a.textures[TikiBottomName(v)] = bottom
		a.textures[TikiTopName(v)] = flipped(bottom)
	}
	return a
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}

func paintSky(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	const bands = 32
	bh := float32(h) / bands
	for i := 0; i < bands; i++ {
		c := lerp(skyTop, skyBottom, float64(i)/(bands-1))
		vector.DrawFilledRect(img, 0, float32(i)*bh, float32(w), bh+1, c, false)
	}
	return img
}

func paintHills(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	for x := -60; x < w+120; x += 180 {
		vector.DrawFilledCircle(img, float32(x), float32(h), 150, hillFar, true)
	}
	for x := 30; x < w+120; x += 220 {
		vector.DrawFilledCircle(img, float32(x), float32(h)+40, 130, hillNear, true)
	}
	return img
}

func paintGroundPiece(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(sand)
	vector.DrawFilledRect(img, 0, 0, float32(w), 22, grass, false)
	vector.DrawFilledRect(img, 0, 22, float32(w), 4, grassDark, false)
	for x := 0; x < w; x += 24 {
		vector.StrokeLine(img, float32(x), 6, float32(x+12), 18, 3, grassDark, true)
	}
	for y := 40; y < h; y += 28 {
		vector.DrawFilledRect(img, 0, float32(y), float32(w), 3, sandDark, false)
	}
	return img
}

// paintBird draws frame i of n; the wing moves from up to down across the
// cycle.
func paintBird(w, h, i, n int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	r := fh * 0.45
	cx, cy := fw*0.45, fh/2
	vector.DrawFilledCircle(img, cx, cy, r, black, true)
	vector.DrawFilledCircle(img, cx, cy, r-2, birdBody, true)
	vector.DrawFilledCircle(img, cx+r*0.9, cy, r*0.25, birdBody, true)

	// eye
	vector.DrawFilledCircle(img, cx+r*0.45, cy-r*0.35, r*0.32, white, true)
	vector.DrawFilledCircle(img, cx+r*0.55, cy-r*0.35, r*0.12, black, true)

	// beak
	vector.DrawFilledRect(img, cx+r*0.7, cy+r*0.05, r*0.8, r*0.22, birdBeak, true)
	vector.DrawFilledRect(img, cx+r*0.7, cy+r*0.3, r*0.65, r*0.2, birdBeak, true)

	// wing
	phase := float32(0)
	if n > 1 {
		phase = float32(i)/float32(n-1)*2 - 1
	}
	wx, wy := cx-r*0.55, cy+phase*r*0.35
	vector.DrawFilledCircle(img, wx, wy, r*0.42, black, true)
	vector.DrawFilledCircle(img, wx, wy, r*0.42-2, birdWing, true)
	return img
}

func paintTiki(w, h, variant int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	pal := tikiPalette[(variant-1)%len(tikiPalette)]
	wood, trim := pal[0], pal[1]
	fw := float32(w)

	img.Fill(wood)
	vector.StrokeRect(img, 1, 1, fw-2, float32(h)-2, 3, black, false)

	// A face at the head of the pillar, repeated plain bands below it.
	head := float32(150)
	vector.DrawFilledRect(img, 0, head, fw, 10, trim, false)
	vector.DrawFilledRect(img, fw*0.2, 30, fw*0.2, 26, white, false)
	vector.DrawFilledRect(img, fw*0.6, 30, fw*0.2, 26, white, false)
	vector.DrawFilledRect(img, fw*0.26, 38, fw*0.08, 14, black, false)
	vector.DrawFilledRect(img, fw*0.66, 38, fw*0.08, 14, black, false)
	vector.DrawFilledRect(img, fw*0.45, 62, fw*0.1, 34, trim, false)
	mouth := fw * 0.5
	if variant%2 == 0 {
		mouth = fw * 0.7
	}
	vector.DrawFilledRect(img, (fw-mouth)/2, 108, mouth, 18, black, false)
	vector.DrawFilledRect(img, (fw-mouth)/2+4, 112, mouth-8, 6, white, false)

	for y := head + 60; y < float32(h); y += 70 {
		vector.DrawFilledRect(img, 0, y, fw, 6, trim, false)
	}
	return img
}

// flipped returns src mirrored vertically.
func flipped(src *ebiten.Image) *ebiten.Image {
	b := src.Bounds()
	img := ebiten.NewImage(b.Dx(), b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, -1)
	op.GeoM.Translate(0, float64(b.Dy()))
	img.DrawImage(src, op)
	return img
}

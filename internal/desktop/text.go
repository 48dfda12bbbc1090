package desktop

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"jungle/internal/game"
)

// Point sizes of the HUD and banner faces.
const (
	hudSize    = 22
	bannerSize = 35
)

// textTTL is how many frames an unused text texture survives.
const textTTL = 120

type textKey struct {
	text string
	face game.Face
	col  game.RGBA
}

type textEntry struct {
	tex  *Texture
	used uint64
}

// textCache rasterises strings once and keeps them as textures while they
// stay on screen. Score lines change every few seconds, so stale entries are
// swept rather than kept forever.
type textCache struct {
	faces   map[game.Face]font.Face
	entries map[textKey]*textEntry
	frame   uint64
}

func newTextCache() (*textCache, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gobold: %w", err)
	}
	faces := make(map[game.Face]font.Face, 2)
	for face, size := range map[game.Face]float64{game.FaceHUD: hudSize, game.FaceBanner: bannerSize} {
		ff, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", face, err)
		}
		faces[face] = ff
	}
	return &textCache{faces: faces, entries: make(map[textKey]*textEntry)}, nil
}

func (c *textCache) get(text string, face game.Face, col game.RGBA) *Texture {
	key := textKey{text, face, col}
	if e, ok := c.entries[key]; ok {
		e.used = c.frame
		return e.tex
	}
	img := rasterize(c.faces[face], text, col)
	if img == nil {
		return nil
	}
	t := uploadTexture(img)
	c.entries[key] = &textEntry{tex: t, used: c.frame}
	return t
}

func (c *textCache) sweep() {
	c.frame++
	for k, e := range c.entries {
		if c.frame-e.used > textTTL {
			gl.DeleteTextures(1, &e.tex.id)
			delete(c.entries, k)
		}
	}
}

func (c *textCache) clear() {
	for k, e := range c.entries {
		gl.DeleteTextures(1, &e.tex.id)
		delete(c.entries, k)
	}
	for _, f := range c.faces {
		f.Close()
	}
}

// rasterize draws text into a tight image, or returns nil for empty text.
func rasterize(face font.Face, text string, col game.RGBA) *image.NRGBA {
	if face == nil || text == "" {
		return nil
	}
	m := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A}),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)
	return img
}

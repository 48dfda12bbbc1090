package game

// RGBA is an 8-bit per channel colour with alpha.
type RGBA struct {
	R, G, B, A uint8
}

// Opaque builds a colour with full alpha.
func Opaque(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns a copy of c with alpha a.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

var Palette = struct {
	White       RGBA
	Gold        RGBA
	Cyan        RGBA
	Heart       RGBA
	NitroBar    RGBA
	NitroTint   RGBA
	GameOverRed RGBA
	MenuShade   RGBA
	DeadShade   RGBA
}{
	White:       Opaque(255, 255, 255),
	Gold:        Opaque(255, 215, 0),
	Cyan:        Opaque(0, 255, 255),
	Heart:       Opaque(255, 0, 0),
	NitroBar:    Opaque(0, 200, 255),
	NitroTint:   Opaque(0, 100, 255).WithAlpha(70),
	GameOverRed: Opaque(255, 50, 50),
	MenuShade:   Opaque(0, 0, 0).WithAlpha(180),
	DeadShade:   Opaque(0, 0, 0).WithAlpha(220),
}

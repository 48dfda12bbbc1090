package game

import "fmt"

// Heart layout in the top-right HUD corner.
const (
	heartSize    = 8
	heartSpacing = 25
	heartY       = 25
)

// RenderScene draws the whole frame for the current phase and presents it.
func RenderScene(c Canvas, s *Session, sp Sprites) error {
	drawBackground(c, s.State.ScrollOffset, sp.Background)

	switch s.Phase {
	case PhaseMenu:
		c.DrawRect(0, 0, ScreenWidth, ScreenHeight, Palette.MenuShade)
		if sp.Logo != nil {
			c.DrawImage(sp.Logo, ScreenWidth/2-60, ScreenHeight/2-220)
		}
		drawText(c, "JUNGLE NITRO: EXTREME", FaceHUD, Palette.Gold, 80, 250)
		drawText(c, "CLICK TO START", FaceHUD, Palette.White, 115, 320)

	case PhasePlaying:
		drawWorld(c, s.State, s.Last.NitroEngaged, sp)
		drawHUD(c, s.State)

	case PhaseGameOver:
		c.DrawRect(0, 0, ScreenWidth, ScreenHeight, Palette.DeadShade)
		drawText(c, "GAME OVER", FaceHUD, Palette.GameOverRed, 130, 250)
		drawText(c, fmt.Sprintf("Final Score: %d", s.State.Score), FaceHUD, Palette.White, 130, 300)
		drawText(c, "Click to Restart", FaceHUD, Palette.Gold, 115, 350)
	}

	return c.Present()
}

// drawBackground draws the road twice, one screen apart, so the wrapped
// scroll offset reads as an endless road.
func drawBackground(c Canvas, offset float64, bg Image) {
	if bg == nil {
		return
	}
	y := int(offset)
	c.DrawImage(bg, 0, y)
	c.DrawImage(bg, 0, y-ScreenHeight)
}

func drawWorld(c Canvas, st *State, nitro bool, sp Sprites) {
	if nitro {
		c.DrawRect(0, 0, ScreenWidth, ScreenHeight, Palette.NitroTint)
		drawText(c, "NITRO BOOST", FaceBanner, Palette.Cyan, ScreenWidth/2-90, ScreenHeight-180)
	}

	for _, e := range st.Enemies {
		if img := sp.Enemy(e.Sprite); img != nil {
			c.DrawImage(img, e.Rect.X, e.Rect.Y)
		}
	}

	if sp.Player != nil && PlayerVisible(st.HitCooldown) {
		c.DrawImage(sp.Player, st.Player.Rect.X, st.Player.Rect.Y)
	}
}

func drawHUD(c Canvas, st *State) {
	drawText(c, fmt.Sprintf("Score: %d", st.Score), FaceHUD, Palette.White, 15, 10)
	c.DrawRect(15, 40, int(st.Nitro), 10, Palette.NitroBar)
	for i := 0; i < st.Lives; i++ {
		c.DrawFilledPolygon(HeartPoints(ScreenWidth-heartSpacing-i*heartSpacing, heartY, heartSize), Palette.Heart)
	}
}

func drawText(c Canvas, text string, face Face, col RGBA, x, y int) {
	if img := c.RenderText(text, face, col); img != nil {
		c.DrawImage(img, x, y)
	}
}

// HeartPoints returns the six-point heart outline anchored at (x, y).
// Every vertex is visible from the first one (the top notch), so a triangle
// fan from points[0] fills it.
func HeartPoints(x, y, size int) []Point {
	return []Point{
		{x, y + size/4},
		{x - size/2, y - size/2},
		{x - size, y + size/4},
		{x, y + size},
		{x + size, y + size/4},
		{x + size/2, y - size/2},
	}
}

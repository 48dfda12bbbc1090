package game

import (
	"errors"
	"slices"
	"testing"
)

func testSprites() Sprites {
	return Sprites{
		Player:     &fakeImage{name: "player", w: CarWidth, h: CarHeight},
		Background: &fakeImage{name: "bg", w: ScreenWidth, h: ScreenHeight},
		Logo:       &fakeImage{name: "logo", w: 120, h: 120},
	}
}

func TestRenderMenu(t *testing.T) {
	c := &recordingCanvas{}
	s := NewSession(NewState(&seqRand{}, 1))

	if err := RenderScene(c, s, testSprites()); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}

	bg := c.imagesNamed("bg")
	if len(bg) != 2 || bg[0].y != 0 || bg[1].y != -ScreenHeight {
		t.Fatalf("background draws = %+v, want y 0 and %d", bg, -ScreenHeight)
	}
	logo := c.imagesNamed("logo")
	if len(logo) != 1 || logo[0].x != 140 || logo[0].y != 80 {
		t.Fatalf("logo draws = %+v, want one at (140, 80)", logo)
	}
	if c.count("rect") != 1 || c.calls[2].col != Palette.MenuShade {
		t.Fatalf("want one menu shade overlay after the background, got %+v", c.calls)
	}
	if !slices.Equal(c.texts, []string{"JUNGLE NITRO: EXTREME", "CLICK TO START"}) {
		t.Fatalf("texts = %q", c.texts)
	}
	if c.presents != 1 {
		t.Fatalf("presents = %d, want 1", c.presents)
	}
}

func TestRenderMenuWithoutAssets(t *testing.T) {
	c := &recordingCanvas{}
	s := NewSession(NewState(&seqRand{}, 1))

	if err := RenderScene(c, s, Sprites{}); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}
	// Only text images are drawn.
	if got := c.count("image"); got != 2 {
		t.Fatalf("image draws = %d, want 2", got)
	}
}

func TestRenderPlaying(t *testing.T) {
	c := &recordingCanvas{}
	s := NewSession(NewState(&seqRand{}, 1))
	s.Phase = PhasePlaying
	s.State.Score = 12
	s.State.Nitro = 64.9
	s.State.ScrollOffset = 123.7

	if err := RenderScene(c, s, testSprites()); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}

	bg := c.imagesNamed("bg")
	if len(bg) != 2 || bg[0].y != 123 || bg[1].y != 123-ScreenHeight {
		t.Fatalf("background draws = %+v", bg)
	}
	// Three enemies fall back to the player sprite, plus the player itself.
	if got := len(c.imagesNamed("player")); got != EnemyCount+1 {
		t.Fatalf("car draws = %d, want %d", got, EnemyCount+1)
	}
	if !slices.Contains(c.texts, "Score: 12") {
		t.Fatalf("texts = %q, want score line", c.texts)
	}
	if slices.Contains(c.texts, "NITRO BOOST") {
		t.Fatal("nitro banner drawn without boost")
	}

	var bar *drawCall
	for i := range c.calls {
		if c.calls[i].kind == "rect" && c.calls[i].col == Palette.NitroBar {
			bar = &c.calls[i]
		}
	}
	if bar == nil || bar.x != 15 || bar.y != 40 || bar.w != 64 || bar.h != 10 {
		t.Fatalf("nitro bar = %+v, want (15, 40, 64, 10)", bar)
	}
	if got := c.count("poly"); got != InitialLives {
		t.Fatalf("hearts = %d, want %d", got, InitialLives)
	}
}

func TestRenderPlayingNitroAndBlink(t *testing.T) {
	c := &recordingCanvas{}
	s := NewSession(NewState(&seqRand{}, 1))
	s.Phase = PhasePlaying
	s.Last.NitroEngaged = true
	s.State.HitCooldown = 57
	s.State.Lives = 1

	if err := RenderScene(c, s, testSprites()); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}

	if !slices.Contains(c.texts, "NITRO BOOST") {
		t.Fatalf("texts = %q, want nitro banner", c.texts)
	}
	if got := len(c.imagesNamed("player")); got != EnemyCount {
		t.Fatalf("car draws = %d, want only the %d enemies while blinking", got, EnemyCount)
	}
	if got := c.count("poly"); got != 1 {
		t.Fatalf("hearts = %d, want 1", got)
	}
}

func TestRenderEnemyVariants(t *testing.T) {
	c := &recordingCanvas{}
	s := NewSession(NewState(&seqRand{}, 1))
	s.Phase = PhasePlaying
	s.State.Enemies[1].Sprite = 1

	sp := testSprites()
	sp.Enemies = []Image{&fakeImage{name: "yellow"}, &fakeImage{name: "blue"}}

	if err := RenderScene(c, s, sp); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}
	if got := len(c.imagesNamed("yellow")); got != 2 {
		t.Fatalf("yellow draws = %d, want 2", got)
	}
	if got := len(c.imagesNamed("blue")); got != 1 {
		t.Fatalf("blue draws = %d, want 1", got)
	}
}

func TestRenderGameOver(t *testing.T) {
	c := &recordingCanvas{}
	s := NewSession(NewState(&seqRand{}, 1))
	s.Phase = PhaseGameOver
	s.State.Score = 7

	if err := RenderScene(c, s, testSprites()); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}
	want := []string{"GAME OVER", "Final Score: 7", "Click to Restart"}
	if !slices.Equal(c.texts, want) {
		t.Fatalf("texts = %q, want %q", c.texts, want)
	}
	if c.count("poly") != 0 || len(c.imagesNamed("player")) != 0 {
		t.Fatal("game over screen drew the world")
	}
}

func TestRenderPresentError(t *testing.T) {
	boom := errors.New("swap failed")
	c := &recordingCanvas{err: boom}
	s := NewSession(NewState(&seqRand{}, 1))

	if err := RenderScene(c, s, testSprites()); !errors.Is(err, boom) {
		t.Fatalf("RenderScene = %v, want %v", err, boom)
	}
}

func TestHeartPoints(t *testing.T) {
	pts := HeartPoints(375, 25, 8)
	want := []Point{
		{375, 27},
		{371, 21},
		{367, 27},
		{375, 33},
		{383, 27},
		{379, 21},
	}
	if !slices.Equal(pts, want) {
		t.Fatalf("HeartPoints = %v, want %v", pts, want)
	}
}

func TestSpritesEnemyFallback(t *testing.T) {
	player := &fakeImage{name: "player"}
	red := &fakeImage{name: "red"}
	sp := Sprites{Player: player, Enemies: []Image{red, nil}}

	if sp.Enemy(0) != Image(red) {
		t.Error("Enemy(0) did not return its variant")
	}
	if sp.Enemy(1) != Image(player) {
		t.Error("nil variant did not fall back to the player sprite")
	}
	if sp.Enemy(5) != Image(player) {
		t.Error("out of range variant did not fall back to the player sprite")
	}
}

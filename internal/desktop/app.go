package desktop

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"jungle/internal/assets"
	"jungle/internal/config"
	"jungle/internal/game"
)

var enemySpriteFiles = []string{"car_yellow.png", "car_blue_top.png", "car_red.png", "enemy_car.png"}

// Platform is the desktop game.Platform: GL drawing, the audio provider and
// glfw input behind one value.
type Platform struct {
	*Renderer
	game.Audio

	window *glfw.Window
	input  *Input
}

func (p *Platform) PollInput() game.Input {
	return p.input.Poll(p.window)
}

// Present shows the finished frame and clears for the next one.
func (p *Platform) Present() error {
	p.EndFrame()
	p.window.SwapBuffers()
	if e := gl.GetError(); e == gl.OUT_OF_MEMORY {
		return errors.New("gl: out of memory")
	}
	fbW, fbH := p.window.GetFramebufferSize()
	p.BeginFrame(fbW, fbH)
	return nil
}

// Run opens the window and plays until the player quits or ctx is cancelled.
// It must be called from the main goroutine.
func Run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg.Title, cfg.Scale)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	var audio game.Audio = game.Silent
	if cfg.Mute {
		logger.Info("audio muted")
	} else if mix, err := NewMixer(cfg.MusicVolume, cfg.SFXVolume); err != nil {
		logger.Warn("audio init failed, continuing without sound", "err", err)
	} else {
		defer mix.Close()
		audio = mix
	}

	res := assets.NewResolver(cfg.AssetDir)
	logger.Debug("asset search path", "dirs", res.Dirs)
	sprites := loadSprites(rend, res, logger)
	var sounds game.Sounds
	if audio != game.Silent {
		sounds = loadSounds(res, logger)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	fbW, fbH := window.GetFramebufferSize()
	logger.Info("starting", "framebuffer", fmt.Sprintf("%dx%d", fbW, fbH), "seed", seed, "enemy_sprites", len(sprites.Enemies))

	rend.BeginFrame(fbW, fbH)
	p := &Platform{Renderer: rend, Audio: audio, window: window, input: NewInput()}
	st := game.NewState(game.NewRand(seed), len(sprites.Enemies))
	return game.NewLoop(p, st, sprites, sounds, logger).Run(ctx)
}

func loadSprites(rend *Renderer, res *assets.Resolver, logger *log.Logger) game.Sprites {
	load := func(name string, w, h int) game.Image {
		img, err := res.LoadImage(name, w, h)
		if err != nil {
			logger.Warn("image unavailable", "name", name, "err", err)
			return nil
		}
		return rend.NewTexture(img)
	}

	sp := game.Sprites{
		Player:     load("car.png", game.CarWidth, game.CarHeight),
		Background: load("jungle_road.png", game.ScreenWidth, game.ScreenHeight),
		Logo:       load("icon.jpeg", 120, 120),
	}
	for _, name := range enemySpriteFiles {
		if img := load(name, game.CarWidth, game.CarHeight); img != nil {
			sp.Enemies = append(sp.Enemies, img)
		}
	}
	return sp
}

func loadSounds(res *assets.Resolver, logger *log.Logger) game.Sounds {
	load := func(name string) game.Sound {
		clip, err := res.LoadSound(name, SampleRate)
		if err != nil {
			logger.Warn("sound unavailable", "name", name, "err", err)
			return nil
		}
		return clip
	}
	return game.Sounds{
		Crash: load("crash.mp3"),
		Nitro: load("nitro_dubstep.mp3"),
		Music: load("jungle_bg.mp3"),
	}
}

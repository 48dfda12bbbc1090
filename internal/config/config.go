package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"gopkg.in/ini.v1"
)

const (
	DefaultPath  = "jungle.ini"
	DefaultTitle = "Jungle Nitro Racing - Extreme"
)

// Config is the runtime configuration. Values are resolved from defaults, then
// the INI file, then the environment.
type Config struct {
	AssetDir    string // "" resolves next to the binary or the working dir
	Scale       float64
	Seed        uint64 // 0 seeds from the clock
	MusicVolume float64
	SFXVolume   float64
	Mute        bool
	LogLevel    string
	Title       string

	// File is the INI path that was read, or "" if none was found.
	File string
}

func Default() Config {
	return Config{
		Scale:       1,
		MusicVolume: 0.5,
		SFXVolume:   0.8,
		LogLevel:    "info",
		Title:       DefaultTitle,
	}
}

// GetEnv returns the environment value for key, or fallback when unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load resolves the configuration. An empty path falls back to JUNGLE_CONFIG
// and then DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = GetEnv("JUNGLE_CONFIG", DefaultPath)
	}

	if err := cfg.applyFile(path); err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	c.File = path

	window := f.Section("window")
	if window.HasKey("scale") {
		if c.Scale, err = window.Key("scale").Float64(); err != nil {
			return fmt.Errorf("%s [window] scale: %w", path, err)
		}
	}
	if window.HasKey("title") {
		c.Title = window.Key("title").String()
	}

	audio := f.Section("audio")
	if audio.HasKey("music_volume") {
		if c.MusicVolume, err = audio.Key("music_volume").Float64(); err != nil {
			return fmt.Errorf("%s [audio] music_volume: %w", path, err)
		}
	}
	if audio.HasKey("sfx_volume") {
		if c.SFXVolume, err = audio.Key("sfx_volume").Float64(); err != nil {
			return fmt.Errorf("%s [audio] sfx_volume: %w", path, err)
		}
	}
	if audio.HasKey("mute") {
		if c.Mute, err = audio.Key("mute").Bool(); err != nil {
			return fmt.Errorf("%s [audio] mute: %w", path, err)
		}
	}

	game := f.Section("game")
	if game.HasKey("seed") {
		if c.Seed, err = game.Key("seed").Uint64(); err != nil {
			return fmt.Errorf("%s [game] seed: %w", path, err)
		}
	}
	if game.HasKey("assets") {
		c.AssetDir = game.Key("assets").String()
	}

	if lv := f.Section("log"); lv.HasKey("level") {
		c.LogLevel = lv.Key("level").String()
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.AssetDir = GetEnv("JUNGLE_ASSETS", c.AssetDir)
	c.LogLevel = GetEnv("JUNGLE_LOG_LEVEL", c.LogLevel)

	if s := GetEnv("JUNGLE_SEED", ""); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("JUNGLE_SEED: %w", err)
		}
		c.Seed = v
	}
	if s := GetEnv("JUNGLE_SCALE", ""); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("JUNGLE_SCALE: %w", err)
		}
		c.Scale = v
	}
	if s := GetEnv("JUNGLE_MUTE", ""); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("JUNGLE_MUTE: %w", err)
		}
		c.Mute = v
	}
	return nil
}

// Validate checks ranges the rest of the program relies on.
func (c Config) Validate() error {
	if c.Scale <= 0 || c.Scale > 4 {
		return fmt.Errorf("scale %v out of range (0, 4]", c.Scale)
	}
	if c.MusicVolume < 0 || c.MusicVolume > 1 {
		return fmt.Errorf("music volume %v out of range [0, 1]", c.MusicVolume)
	}
	if c.SFXVolume < 0 || c.SFXVolume > 1 {
		return fmt.Errorf("sfx volume %v out of range [0, 1]", c.SFXVolume)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, or info if it does not parse.
func (c Config) Level() log.Level {
	lv, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lv
}

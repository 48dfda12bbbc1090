package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"JUNGLE_CONFIG", "JUNGLE_ASSETS", "JUNGLE_SEED", "JUNGLE_SCALE", "JUNGLE_MUTE", "JUNGLE_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeINI(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jungle.ini")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeINI(t, `
[window]
scale = 2
title = Jungle

[audio]
music_volume = 0.25
sfx_volume = 1
mute = true

[game]
seed = 1234
assets = /opt/jungle

[log]
level = debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		AssetDir:    "/opt/jungle",
		Scale:       2,
		Seed:        1234,
		MusicVolume: 0.25,
		SFXVolume:   1,
		Mute:        true,
		LogLevel:    "debug",
		Title:       "Jungle",
		File:        path,
	}
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
	if cfg.Level() != log.DebugLevel {
		t.Fatalf("Level() = %v, want debug", cfg.Level())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeINI(t, "[game]\nseed = 1\n[window]\nscale = 2\n")
	t.Setenv("JUNGLE_SEED", "99")
	t.Setenv("JUNGLE_SCALE", "1.5")
	t.Setenv("JUNGLE_MUTE", "1")
	t.Setenv("JUNGLE_ASSETS", "/tmp/a")
	t.Setenv("JUNGLE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 99 || cfg.Scale != 1.5 || !cfg.Mute || cfg.AssetDir != "/tmp/a" || cfg.LogLevel != "warn" {
		t.Fatalf("cfg = %+v, want env values", cfg)
	}
}

func TestConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeINI(t, "[game]\nseed = 7\n")
	t.Setenv("JUNGLE_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 7 || cfg.File != path {
		t.Fatalf("seed = %d file = %q, want 7 %q", cfg.Seed, cfg.File, path)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		ini     string
		env     map[string]string
		wantErr string
	}{
		{name: "bad scale", ini: "[window]\nscale = big\n", wantErr: "scale"},
		{name: "scale out of range", ini: "[window]\nscale = 0\n", wantErr: "scale"},
		{name: "volume out of range", ini: "[audio]\nmusic_volume = 3\n", wantErr: "music volume"},
		{name: "bad log level", ini: "[log]\nlevel = loud\n", wantErr: "log level"},
		{name: "bad env seed", env: map[string]string{"JUNGLE_SEED": "-1"}, wantErr: "JUNGLE_SEED"},
		{name: "bad env mute", env: map[string]string{"JUNGLE_MUTE": "maybe"}, wantErr: "JUNGLE_MUTE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeINI(t, tt.ini))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("JUNGLE_TEST_KEY", "")
	if got := GetEnv("JUNGLE_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv unset = %q, want fallback", got)
	}
	t.Setenv("JUNGLE_TEST_KEY", "set")
	if got := GetEnv("JUNGLE_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("GetEnv set = %q, want set", got)
	}
}

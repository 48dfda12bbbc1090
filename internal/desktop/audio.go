package desktop

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/hajimehoshi/oto/v2"

	"jungle/internal/assets"
	"jungle/internal/game"
)

const (
	SampleRate   = beep.SampleRate(44100)
	ChannelCount = 2
)

// Mixer plays clips through a single oto device. Sounds are mixed by a beep
// mixer that the device pulls from on its own goroutine, so every mixer
// access holds mu.
type Mixer struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	channels map[game.Channel]*beep.Ctrl
	buf      [][2]float64

	musicVolume float64
	sfxVolume   float64

	ctx    *oto.Context
	player oto.Player
}

func NewMixer(musicVolume, sfxVolume float64) (*Mixer, error) {
	ctx, ready, err := oto.NewContext(int(SampleRate), ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	<-ready

	m := &Mixer{
		mixer:       &beep.Mixer{},
		channels:    make(map[game.Channel]*beep.Ctrl),
		musicVolume: musicVolume,
		sfxVolume:   sfxVolume,
		ctx:         ctx,
	}
	m.player = ctx.NewPlayer(m)
	m.player.Play()
	return m, nil
}

// Read feeds the device: it mixes len(p)/8 stereo float32 frames.
func (m *Mixer) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	if cap(m.buf) < frames {
		m.buf = make([][2]float64, frames)
	}
	buf := m.buf[:frames]

	m.mu.Lock()
	n, _ := m.mixer.Stream(buf)
	m.mu.Unlock()

	for i := n; i < frames; i++ {
		buf[i] = [2]float64{}
	}
	for i, s := range buf {
		putStereoF32LR(p, i, clampSample(s[0]), clampSample(s[1]))
	}
	return frames * 8, nil
}

func (m *Mixer) PlayOnce(s game.Sound) {
	clip, ok := s.(*assets.Clip)
	if !ok || clip == nil {
		return
	}
	m.mu.Lock()
	m.mixer.Add(newVolume(clip.Streamer(), m.sfxVolume))
	m.mu.Unlock()
}

// PlayLooping replaces whatever ch was playing with s, repeated forever.
func (m *Mixer) PlayLooping(ch game.Channel, s game.Sound) {
	clip, ok := s.(*assets.Clip)
	if !ok || clip == nil {
		return
	}
	vol := m.sfxVolume
	if ch == game.ChannelMusic {
		vol = m.musicVolume
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(beep.Loop(-1, clip.Streamer()), vol)}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked(ch)
	m.channels[ch] = ctrl
	m.mixer.Add(ctrl)
}

func (m *Mixer) Stop(ch game.Channel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked(ch)
}

func (m *Mixer) IsBusy(ch game.Channel) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.channels[ch] != nil
}

// stopLocked drains the channel's control; the mixer drops it on its next pass.
func (m *Mixer) stopLocked(ch game.Channel) {
	if c := m.channels[ch]; c != nil {
		c.Streamer = nil
		delete(m.channels, ch)
	}
}

func (m *Mixer) Close() error {
	m.mu.Lock()
	m.mixer.Clear()
	m.channels = make(map[game.Channel]*beep.Ctrl)
	m.mu.Unlock()
	return m.player.Close()
}

// newVolume scales s by a linear gain; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func clampSample(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

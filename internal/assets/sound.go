package assets

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
)

// resampleQuality trades CPU for fidelity; clips are resampled once at load.
const resampleQuality = 4

// Clip is a fully decoded sound held in memory at the mixer's sample rate.
type Clip struct {
	Name string
	buf  *beep.Buffer
}

// NewClip drains s into memory. s must already run at format.SampleRate.
func NewClip(name string, format beep.Format, s beep.Streamer) (*Clip, error) {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Clip{Name: name, buf: buf}, nil
}

// Streamer returns a fresh seekable reader over the whole clip.
func (c *Clip) Streamer() beep.StreamSeeker {
	return c.buf.Streamer(0, c.buf.Len())
}

// Len is the clip length in samples.
func (c *Clip) Len() int { return c.buf.Len() }

func (c *Clip) Duration() time.Duration {
	return c.buf.Format().SampleRate.D(c.buf.Len())
}

// DecodeSound decodes an MP3 stream and resamples it to rate.
func DecodeSound(name string, rc io.ReadCloser, rate beep.SampleRate) (*Clip, error) {
	s, format, err := mp3.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: decode: %w", name, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, s)
	}
	format.SampleRate = rate
	return NewClip(name, format, src)
}

// LoadSound resolves name and decodes it at rate.
func (r *Resolver) LoadSound(name string, rate beep.SampleRate) (*Clip, error) {
	path, err := r.Path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// mp3.Decode takes ownership and closes f through the returned streamer.
	return DecodeSound(name, f, rate)
}

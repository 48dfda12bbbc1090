package game

import (
	"fmt"
	"math"
)

// seqRand replays vals in order, wrapping around; with no vals it always
// returns 0 (leftmost lane, top of the spawn range, no speed offset).
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	if len(r.vals) == 0 || n <= 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

type fakeImage struct {
	name string
	w, h int
}

func (f *fakeImage) Size() (int, int) { return f.w, f.h }

type drawCall struct {
	kind string // "image", "rect", "poly"
	name string
	x, y int
	w, h int
	col  RGBA
	pts  []Point
}

type recordingCanvas struct {
	calls    []drawCall
	texts    []string
	presents int
	err      error
}

func (c *recordingCanvas) DrawImage(img Image, x, y int) {
	name := "?"
	if f, ok := img.(*fakeImage); ok {
		name = f.name
	}
	c.calls = append(c.calls, drawCall{kind: "image", name: name, x: x, y: y})
}

func (c *recordingCanvas) DrawFilledPolygon(points []Point, col RGBA) {
	c.calls = append(c.calls, drawCall{kind: "poly", pts: points, col: col})
}

func (c *recordingCanvas) DrawRect(x, y, w, h int, col RGBA) {
	c.calls = append(c.calls, drawCall{kind: "rect", x: x, y: y, w: w, h: h, col: col})
}

func (c *recordingCanvas) RenderText(text string, face Face, col RGBA) Image {
	c.texts = append(c.texts, text)
	return &fakeImage{name: "text:" + text, w: len(text) * 10, h: 22}
}

func (c *recordingCanvas) Present() error {
	c.presents++
	return c.err
}

func (c *recordingCanvas) count(kind string) int {
	n := 0
	for _, call := range c.calls {
		if call.kind == kind {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) imagesNamed(name string) []drawCall {
	var out []drawCall
	for _, call := range c.calls {
		if call.kind == "image" && call.name == name {
			out = append(out, call)
		}
	}
	return out
}

func (c *recordingCanvas) reset() {
	c.calls = nil
	c.texts = nil
	c.presents = 0
}

type recordingAudio struct {
	log     []string
	playing map[Channel]bool
}

func newRecordingAudio() *recordingAudio {
	return &recordingAudio{playing: map[Channel]bool{}}
}

func (a *recordingAudio) PlayOnce(s Sound) {
	a.log = append(a.log, fmt.Sprintf("once %v", s))
}

func (a *recordingAudio) PlayLooping(ch Channel, s Sound) {
	a.playing[ch] = true
	a.log = append(a.log, fmt.Sprintf("loop %d %v", ch, s))
}

func (a *recordingAudio) Stop(ch Channel) {
	a.playing[ch] = false
	a.log = append(a.log, fmt.Sprintf("stop %d", ch))
}

func (a *recordingAudio) IsBusy(ch Channel) bool { return a.playing[ch] }

// fakePlatform replays scripted inputs; once they run out it asks to quit.
type fakePlatform struct {
	*recordingCanvas
	*recordingAudio
	inputs []Input
	polls  int
}

func (p *fakePlatform) PollInput() Input {
	p.polls++
	if len(p.inputs) == 0 {
		return Input{Quit: true}
	}
	in := p.inputs[0]
	p.inputs = p.inputs[1:]
	return in
}

func newFakePlatform(inputs ...Input) *fakePlatform {
	return &fakePlatform{
		recordingCanvas: &recordingCanvas{},
		recordingAudio:  newRecordingAudio(),
		inputs:          inputs,
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// overlapPlayer parks e so that after one tick at base speed it overlaps the
// player car.
func overlapPlayer(st *State, e *Enemy) {
	e.Rect.X = st.Player.Rect.X
	e.Rect.Y = st.Player.Rect.Y - 50
	e.SpeedOffset = 0
}

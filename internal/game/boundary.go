package game

// Image is an opaque drawable handle owned by the render provider.
type Image interface {
	Size() (w, h int)
}

// Sound is an opaque clip handle owned by the audio provider.
type Sound any

// Point is a vertex in screen pixels.
type Point struct {
	X, Y int
}

// Face selects one of the two text styles.
type Face int

const (
	FaceHUD    Face = iota // menus, HUD
	FaceBanner             // "NITRO BOOST"
)

// Canvas is the draw provider. Coordinates are logical screen pixels.
type Canvas interface {
	DrawImage(img Image, x, y int)
	DrawFilledPolygon(points []Point, col RGBA)
	DrawRect(x, y, w, h int, col RGBA)
	RenderText(text string, face Face, col RGBA) Image
	Present() error
}

// Channel names a mixer channel that holds at most one playing sound.
type Channel int

const (
	ChannelMusic Channel = iota
	ChannelNitro
)

// Audio is the sound provider. Every method must accept a nil Sound and do
// nothing with it.
type Audio interface {
	PlayOnce(s Sound)
	PlayLooping(ch Channel, s Sound)
	Stop(ch Channel)
	IsBusy(ch Channel) bool
}

// Sprites are the images the scene draws. Any of them may be nil.
type Sprites struct {
	Player     Image
	Enemies    []Image
	Background Image
	Logo       Image
}

// Enemy returns the sprite for variant i, falling back to the player car.
func (sp Sprites) Enemy(i int) Image {
	if i >= 0 && i < len(sp.Enemies) && sp.Enemies[i] != nil {
		return sp.Enemies[i]
	}
	return sp.Player
}

// Sounds are the clips the game cues. Any of them may be nil.
type Sounds struct {
	Crash Sound
	Nitro Sound
	Music Sound
}

// Platform bundles the collaborators one desktop session provides.
type Platform interface {
	Canvas
	Audio
	PollInput() Input
}

// silentAudio satisfies Audio when no device is available.
type silentAudio struct{}

func (silentAudio) PlayOnce(Sound)             {}
func (silentAudio) PlayLooping(Channel, Sound) {}
func (silentAudio) Stop(Channel)               {}
func (silentAudio) IsBusy(Channel) bool        { return false }

// Silent is an Audio that plays nothing.
var Silent Audio = silentAudio{}

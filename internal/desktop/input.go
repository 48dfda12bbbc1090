package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"jungle/internal/game"
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// Poll pumps the window events and snapshots the controls for one tick.
func (in *Input) Poll(window *glfw.Window) game.Input {
	glfw.PollEvents()

	// Both edges must be sampled every tick to keep their history current.
	clicked := in.JustClicked(window, glfw.MouseButtonLeft)
	entered := in.JustPressed(window, glfw.KeyEnter)

	return game.Input{
		Left:    window.GetKey(glfw.KeyLeft) == glfw.Press,
		Right:   window.GetKey(glfw.KeyRight) == glfw.Press,
		Nitro:   window.GetKey(glfw.KeySpace) == glfw.Press,
		Primary: clicked || entered,
		Quit:    window.ShouldClose() || window.GetKey(glfw.KeyEscape) == glfw.Press,
	}
}

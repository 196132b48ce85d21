package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Input tracks previous key/button state for edge detection.
type Input struct {
	prevKeys  map[glfw.Key]bool
	prevMouse map[glfw.MouseButton]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys:  make(map[glfw.Key]bool),
		prevMouse: make(map[glfw.MouseButton]bool),
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

// Gather converts this frame's input edges into the discrete per-tick
// input the session consumes: space or left click flaps, enter restarts.
func (in *Input) Gather(window *glfw.Window) TickInput {
	flap := in.JustPressed(window, glfw.KeySpace) || in.JustClicked(window, glfw.MouseButtonLeft)
	restart := in.JustPressed(window, glfw.KeyEnter)
	return TickInput{Flap: flap, Restart: restart}
}

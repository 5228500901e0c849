// Package display is the windowing backend: a resizable faiface/pixel
// window that presents the CHIP-8 framebuffer, scaled and centered, and
// reports host keyboard edges as chip8.Events.
package display

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"

	"github.com/bradford-hamilton/gochip8/internal/chip8"
)

const (
	initialWidth  = 1024
	initialHeight = 768
	borderPx      = 1
)

var clearColor = pixel.RGB(0, 0, 0)
var pixelColor = pixel.RGB(60.0/255, 163.0/255, 214.0/255)

// keyMap is the fixed 4x4 hex layout plus the four reserved tuning keys
// from spec.md §6.
var keyMap = map[chip8.HostKey]pixelgl.Button{
	chip8.Key1: pixelgl.Key1, chip8.Key2: pixelgl.Key2,
	chip8.Key3: pixelgl.Key3, chip8.KeyC: pixelgl.Key4,
	chip8.Key4: pixelgl.KeyQ, chip8.Key5: pixelgl.KeyW,
	chip8.Key6: pixelgl.KeyE, chip8.KeyD: pixelgl.KeyR,
	chip8.Key7: pixelgl.KeyA, chip8.Key8: pixelgl.KeyS,
	chip8.Key9: pixelgl.KeyD, chip8.KeyE: pixelgl.KeyF,
	chip8.KeyA: pixelgl.KeyZ, chip8.Key0: pixelgl.KeyX,
	chip8.KeyB: pixelgl.KeyC, chip8.KeyF: pixelgl.KeyV,
	chip8.KeyTuneRateUp: pixelgl.KeyUp, chip8.KeyTuneRateDown: pixelgl.KeyDown,
	chip8.KeyTuneIPFUp: pixelgl.KeyRight, chip8.KeyTuneIPFDown: pixelgl.KeyLeft,
}

// Window embeds a pixelgl window and implements both chip8.Display and
// chip8.EventSource.
type Window struct {
	*pixelgl.Window
	imDraw *imdraw.IMDraw
}

// New opens a resizable window titled "gochip8".
func New() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:     "gochip8",
		Bounds:    pixel.R(0, 0, initialWidth, initialHeight),
		VSync:     true,
		Resizable: true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	return &Window{Window: w, imDraw: imdraw.New(nil)}, nil
}

// Clear paints the window the CHIP-8 background color.
func (w *Window) Clear() {
	w.Window.Clear(clearColor)
}

// Present draws fb centered in the window, scaled by the largest integer
// block size that fits, with a 1px border around the whole screen.
func (w *Window) Present(fb *chip8.Framebuffer) {
	w.Clear()

	bounds := w.Window.Bounds()
	scale := blockSize(bounds.W(), bounds.H())
	screenW := float64(chip8.FramebufferWidth * scale)
	screenH := float64(chip8.FramebufferHeight * scale)
	offX := (bounds.W() - screenW) / 2
	offY := (bounds.H() - screenH) / 2

	w.imDraw.Clear()
	w.imDraw.Color = pixelColor

	w.imDraw.Push(
		pixel.V(offX-borderPx, offY-borderPx),
		pixel.V(offX+screenW+borderPx, offY+screenH+borderPx),
	)
	w.imDraw.Rectangle(borderPx)

	for y := 0; y < chip8.FramebufferHeight; y++ {
		for x := 0; x < chip8.FramebufferWidth; x++ {
			if !fb.At(x, y) {
				continue
			}
			// Framebuffer row 0 is the top; pixel's Y axis grows up.
			flippedY := chip8.FramebufferHeight - 1 - y
			px, py := offX+float64(x*scale), offY+float64(flippedY*scale)
			w.imDraw.Push(pixel.V(px, py), pixel.V(px+float64(scale), py+float64(scale)))
			w.imDraw.Rectangle(0)
		}
	}

	w.imDraw.Draw(w.Window)
	w.Window.Update()
}

func blockSize(winW, winH float64) int {
	scaleW := int(winW) / chip8.FramebufferWidth
	scaleH := int(winH) / chip8.FramebufferHeight
	if scaleW < scaleH {
		if scaleW < 1 {
			return 1
		}
		return scaleW
	}
	if scaleH < 1 {
		return 1
	}
	return scaleH
}

// Drain implements chip8.EventSource: it pumps the window's event queue
// and reports key edges (JustPressed/JustReleased) for every mapped key,
// plus a quit event if the window has been closed.
func (w *Window) Drain() []chip8.Event {
	w.Window.UpdateInput()

	if w.Window.Closed() {
		return []chip8.Event{{Kind: chip8.EventQuit}}
	}

	var events []chip8.Event
	for host, btn := range keyMap {
		if w.Window.JustPressed(btn) {
			events = append(events, chip8.Event{Kind: chip8.EventKeyDown, Key: host})
		}
		if w.Window.JustReleased(btn) {
			events = append(events, chip8.Event{Kind: chip8.EventKeyUp, Key: host})
		}
	}
	return events
}

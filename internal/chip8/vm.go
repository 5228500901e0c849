package chip8

import (
	"fmt"
	"time"
)

// Display is the narrow capability a windowing backend must provide: clear
// the screen and present the current framebuffer. Scaling, centering, and
// color are entirely the backend's concern.
type Display interface {
	Clear()
	Present(fb *Framebuffer)
}

// Speaker is the narrow capability an audio backend must provide: start
// and stop a continuous tone. The frame loop only ever sends on/off edges,
// never samples.
type Speaker interface {
	Start()
	Stop()
}

// VM drives the frame loop described in spec.md §4.5: poll input, tick
// timers, run up to ipf instructions (stopping early on a vblank-gated
// draw), render, and sleep for 1000/rate milliseconds.
type VM struct {
	CPU     *CPU
	Display Display
	Speaker Speaker

	blocked bool
}

// NewVM wires a CPU to its display and speaker collaborators.
func NewVM(cpu *CPU, display Display, speaker Speaker) *VM {
	return &VM{CPU: cpu, Display: display, Speaker: speaker}
}

// Run drives the frame loop until a quit signal is observed or a fault
// occurs, at which point it returns (nil on a clean quit, non-nil on a
// fault).
func (vm *VM) Run() error {
	for {
		if !vm.blocked {
			if !vm.CPU.Keypad.Poll(vm.CPU.Profile) {
				return nil
			}
		}

		if vm.CPU.Timers.TickSound() {
			vm.Speaker.Start()
		} else {
			vm.Speaker.Stop()
		}
		vm.CPU.Timers.TickDelay()

		vm.blocked = false
		for i := uint(0); i < vm.CPU.Profile.IPF; i++ {
			result, err := vm.CPU.Step()
			if err != nil {
				return fmt.Errorf("fatal fault: %w", err)
			}
			if result.Quit {
				return nil
			}
			if result.Blocked {
				vm.blocked = true
				break
			}
			if result.Drew && vm.CPU.Profile.Vblank {
				break
			}
		}

		vm.Display.Present(&vm.CPU.Framebuffer)
		time.Sleep(time.Second / time.Duration(vm.CPU.Profile.Rate))
	}
}

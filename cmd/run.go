package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bradford-hamilton/gochip8/internal/audio"
	"github.com/bradford-hamilton/gochip8/internal/chip8"
	"github.com/bradford-hamilton/gochip8/internal/display"
	"github.com/bradford-hamilton/gochip8/internal/quirkdb"
)

// quirksDBDir is where the two-file quirk database lives, relative to the
// working directory the binary is launched from.
const quirksDBDir = "./db"

// runCmd runs the gochip8 virtual machine until the window is closed.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the gochip8 emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  runGochip8,
}

func runGochip8(cmd *cobra.Command, args []string) error {
	pathToROM := args[0]

	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		return fmt.Errorf("reading ROM %q: %w", pathToROM, err)
	}

	win, err := display.New()
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}

	keypad := chip8.NewKeypad(win)
	cpu := chip8.New(keypad)
	if err := cpu.LoadROMBytes(rom); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	quirkdb.Resolve(quirksDBDir, rom, cpu.Profile)

	spkr, err := audio.New()
	if err != nil {
		return fmt.Errorf("initializing audio: %w", err)
	}

	vm := chip8.NewVM(cpu, win, spkr)
	return vm.Run()
}

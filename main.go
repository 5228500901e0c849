package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/bradford-hamilton/gochip8/cmd"
)

func main() {
	// pixelgl needs access to the main thread, so cobra's Execute runs inside it.
	pixelgl.Run(cmd.Execute)
}

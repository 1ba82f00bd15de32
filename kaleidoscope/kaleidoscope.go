// Kaleidoscope is a small demo for fortio.org/hues: it rotates a color
// around the hue wheel at the requested fps, showing the swatch and its
// models. 'c' reshuffles brightness/saturation, 'i' toggles the info line,
// 'q' quits.
package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"strings"

	"fortio.org/cli"
	"fortio.org/hues"
	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
)

func main() {
	os.Exit(Main())
}

// randomColor seeds the marquee with a cube color (17-230), all of which
// are classified in the spectrum.
func randomColor() hues.Color {
	return hues.FromCode(hues.Channel(17 + rand.IntN(214))) //nolint:gosec // decorative, not crypto.
}

func reshuffle(c hues.Color) hues.Color {
	if n, err := c.Brighten(rand.IntN(2*hues.MaxLevel+1) - hues.MaxLevel); err == nil { //nolint:gosec // decorative.
		c = n
	}
	if n, err := c.Saturate(rand.IntN(2*hues.MaxSat+1) - hues.MaxSat); err == nil { //nolint:gosec // decorative.
		c = n
	}
	return c
}

func draw(ap *ansipixels.AnsiPixels, c hues.Color, showInfo bool) {
	w := min(ap.W-2, 48)
	block := c.ColorizeBg(strings.Repeat(" ", w))
	for y := ap.H/2 - 2; y <= ap.H/2+2; y++ {
		ap.WriteCentered(y, "%s", block)
	}
	if showInfo {
		ap.WriteCentered(ap.H-3, "%s %s", c.Colorize(c.Hue()), c.String())
		ap.WriteCentered(ap.H-2, "q to quit, c to reshuffle, i to toggle info")
	}
}

func Main() int {
	fpsFlag := flag.Float64("fps", 30, "Hue rotation steps per second")
	cli.Main()
	ap := ansipixels.NewAnsiPixels(*fpsFlag)
	if err := ap.Open(); err != nil {
		return log.FErrf("Error opening AnsiPixels: %v", err)
	}
	defer ap.Restore()
	ap.HideCursor()
	c := randomColor()
	showInfo := true
	for {
		ap.StartSyncMode()
		ap.ClearScreen()
		draw(ap, c, showInfo)
		ap.EndSyncMode()
		n, err := ap.ReadOrResizeOrSignalOnce()
		if err != nil {
			return log.FErrf("Error reading: %v", err)
		}
		if n > 0 {
			switch ap.Data[0] {
			case 'q', 'Q', 3:
				ap.MoveCursor(0, 0)
				return 0
			case 'c', 'C':
				c = reshuffle(c)
			case 'i', 'I':
				showInfo = !showInfo
			}
		}
		next, err := c.RotateHue(1)
		if err != nil {
			// Grey colors can rotate into a sparse row; reseed instead of aborting.
			log.Debugf("Rotate from %d: %v", c.Code, err)
			next = randomColor()
		}
		c = next
	}
}

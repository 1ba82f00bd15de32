// Palette prints the hue family grids of the 256 color palette: every
// family by default, a single one with -hue.
package main

import (
	"flag"
	"fmt"
	"os"

	"fortio.org/cli"
	"fortio.org/hues"
	"fortio.org/log"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	hueFlag := flag.String("hue", "", "Print a single hue family (see -list for names)")
	listFlag := flag.Bool("list", false, "List the hue family names and exit")
	codeFlag := flag.Int("code", -1, "Describe a single color `code` (0-255) and exit")
	cli.Main()
	if *listFlag {
		fmt.Println(hues.HueHelp)
		return 0
	}
	if *codeFlag >= 0 {
		code, err := hues.NewChannel(*codeFlag)
		if err != nil {
			return log.FErrf("Bad -code: %v", err)
		}
		c := hues.FromCode(code)
		fmt.Println(c.Colorize(c.String()))
		return 0
	}
	if *hueFlag != "" {
		h, err := hues.ByName(*hueFlag)
		if err != nil {
			return log.FErrf("Bad -hue: %v", err)
		}
		fmt.Print(h.Grid())
		return 0
	}
	fmt.Print(hues.SpectrumGrid())
	return 0
}

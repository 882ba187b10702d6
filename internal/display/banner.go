package display

import (
	"fmt"
	"os"

	"github.com/backmassage/ugen/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` _   _  __ _  ___ _ __
| | | |/ _`+"`"+` |/ _ \ '_ \
| |_| | (_| |  __/ | | |
 \__,_|\__, |\___|_| |_|
       |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}

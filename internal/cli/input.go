package cli

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readLines pumps input lines into the channel and closes it on EOF. It is
// the only reader of r; both the REPL and ConsoleUI.Confirm consume from the
// channel, one line at a time.
func readLines(r io.Reader, lines chan<- string) {
	defer close(lines)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines <- sc.Text()
	}
}

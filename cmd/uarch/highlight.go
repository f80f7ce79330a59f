package main

import (
	"os"
)

// highlight renders text in bold when diagnostics go to a terminal.
func highlight(text string) string {
	if !isTerminal(os.Stderr) {
		return text
	}

	return "\x1b[1m" + text + "\x1b[0m"
}

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package main

import (
	"os"
)

func isTerminal(file *os.File) bool {
	return false
}

//go:build freebsd || linux || netbsd || openbsd || solaris || dragonfly

package clipboard

import "github.com/atotto/clipboard"

func readSelection(read func() (string, error)) (string, error) {
	prev := clipboard.Primary
	clipboard.Primary = true
	defer func() { clipboard.Primary = prev }()
	return read()
}

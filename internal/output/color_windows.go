//go:build windows

package output

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

// enableANSI turns on virtual terminal processing for the stdout console
// handle so ANSI color escapes render instead of printing literally.
// Skipped when stdout is not a terminal (redirected output needs no
// console mode changes).
func enableANSI() error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) {
		return nil
	}

	handle := windows.Handle(fd)
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return err
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}

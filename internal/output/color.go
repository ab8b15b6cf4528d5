package output

import "sync"

// ANSI escapes used for match highlighting. The bright-red/reset pair is
// what the highlighted record format promises; stripping both from a
// highlighted record yields the plain record byte for byte.
const (
	ansiRed   = "\x1b[91m"
	ansiReset = "\x1b[0m"
)

var ansiOnce sync.Once

// enableANSIOnce performs the one-time platform setup needed for ANSI
// escapes to render on stdout. On legacy Windows consoles this flips on
// virtual terminal processing; everywhere else it is a no-op. Failure is
// non-fatal — colors may simply not display — so the error is dropped.
func enableANSIOnce() {
	ansiOnce.Do(func() {
		_ = enableANSI()
	})
}

package utils

import (
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/term"
)

// ANSI color codes used for the CLI status output.
const (
	DefaultColor = "\x1b[0m"
	SuccessColor = "\x1b[92m"
	ErrorColor   = "\x1b[91m"
)

// IsTerminal reports whether the file descriptor is attached to a
// terminal. Colored output and the spinner are disabled otherwise.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// DecorateText wraps the text into the given color code when stderr is a
// terminal, otherwise it returns the text unchanged.
func DecorateText(s, color string) string {
	if !IsTerminal(os.Stderr) {
		return s
	}
	return color + s + DefaultColor
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm:%ds", int64(d.Minutes()), int64(remainingSeconds))
	}
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dh:%dm:%ds",
		int64(d.Hours()), int64(remainingMinutes), int64(remainingSeconds))
}

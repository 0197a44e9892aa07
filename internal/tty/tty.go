// Package tty provides TTY detection for download output decisions.
package tty

import "os"

// IsTTY returns true if the given file is a TTY.
// Used to decide whether yt-dlp may emit terminal title escape sequences.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	// Check if it's a character device (terminal)
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// Package debug provides global debug logging flags
package debug

import "fmt"

// Enabled controls whether debug logging is active
var Enabled bool

// Detection controls whether verbose per-frame logs are shown (segment
// counts, cluster picks, smoothing). Use --debug-frames to enable these
// very chatty logs.
var Detection bool

// Log prints a message only if debug mode is enabled
func Log(format string, args ...interface{}) {
	if Enabled {
		fmt.Printf(format, args...)
	}
}

// Logln prints a message with newline only if debug mode is enabled
func Logln(msg string) {
	if Enabled {
		fmt.Println(msg)
	}
}

// DetectLog prints a message only if per-frame debug mode is enabled
func DetectLog(format string, args ...interface{}) {
	if Detection {
		fmt.Printf(format, args...)
	}
}

// DetectLogln prints a message with newline only if per-frame debug mode is enabled
func DetectLogln(msg string) {
	if Detection {
		fmt.Println(msg)
	}
}

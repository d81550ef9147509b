// Command siginfo samples a test signal and prints its time-domain and
// spectral properties.
//
// Usage:
//
//	siginfo [flags]
//	siginfo list
//
// Every flag can also be set from a YAML config file (--config) or from an
// environment variable with the SIGINFO_ prefix, e.g. SIGINFO_RATE=8000.
//
// Examples:
//
//	siginfo --signal sine --frequency 440 --rate 8000 --duration 0.1
//	siginfo --signal phasor --frequency -1000 --output yaml
//	siginfo --signal square --backend gonum --peaks 8
//	siginfo --signal impulse --rate 8 --duration 1 --strict
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

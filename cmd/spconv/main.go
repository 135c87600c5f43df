// SPDX-License-Identifier: EPL-2.0

// Package main is the entry point of the spconv command.
//
// Usage:
//
//	spconv [flags] <file-or-directory>
//
// Every eligible file is normalized to 48 kHz, stereo, 16-bit PCM WAV. A
// single file is written next to itself with "-SPC" before its extension; a
// directory is mirrored into a sibling "<dir>-SPC" tree.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/spconv/cmd/spconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

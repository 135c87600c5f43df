// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files through github.com/go-audio/aiff.
//
// Samples of 8, 16, 24 and 32 bits are accepted; the Descriptor carries the
// stored depth so 16-bit files classify as already canonical. The frame count
// is not reported up front (Frames is -1).
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not FORM/AIFF
//	}
//
// AIFF is not part of the default extension allow-list; add ".aif" or ".aiff"
// to the configuration to have batches pick it up.
package aiff

// SPDX-License-Identifier: EPL-2.0

// Package converter normalizes one audio file to the canonical target.
//
// Convert opens the input, sniffs its container, decodes the header and
// classifies the sample subformat. 16-bit PCM input is copied byte for byte;
// anything else is read whole, resampled, folded to the target channel layout,
// quantized to int16 and written as WAV. Output always goes through a
// temporary file in the destination directory followed by a rename, so a
// failure never leaves a partial file behind.
//
// Failures are *Error values carrying a Kind:
//
//	outcome, err := conv.Convert(ctx, "in.flac", "in-SPC.flac")
//	if errors.Is(err, converter.ErrInputOpen) {
//	    // unreadable, corrupt or unsupported input
//	}
package converter

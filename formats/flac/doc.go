// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC files using github.com/mewkiz/flac.
//
// Frames are decoded one at a time and interleaved on demand, so memory use is
// bounded by the largest block. Any bit depth the format allows is accepted;
// the Descriptor reports PCM8/16/24/32 for the standard depths and
// audio.FormatUnknown for the rest, which always classify as needing a
// transform.
package flac

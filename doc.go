// SPDX-License-Identifier: EPL-2.0

// Package spconv normalizes audio files to 48 kHz, stereo, 16-bit PCM WAV.
//
// Point Normalize at a file or a directory. A single file song.mp3 produces
// song-SPC.mp3 next to it; a directory X is mirrored into a sibling X-SPC
// with every eligible file renamed the same way:
//
//	cfg := config.Default()
//	report, err := spconv.Normalize(ctx, "X", cfg, batch.LogReporter{}, nil)
//
// Files whose samples are already 16-bit PCM are copied byte for byte. Every
// other file is decoded, resampled to 48000 Hz, folded to two channels and
// written as a 16-bit PCM WAV, whatever the extension of the output name.
//
// # Supported Formats
//
//   - WAV (8/16/24/32-bit PCM, 32-bit float) via formats/wav
//   - FLAC via formats/flac
//   - Ogg Vorbis via formats/vorbis
//   - MP3 via formats/mp3
//   - AIFF via formats/aiff, when its extension is added to the allow-list
//
// The container is detected from the file content first and the extension
// second, see formats/detect.
//
// # Resampling
//
// Two engines are available. "soxr" is a polyphase resampler with selectable
// quality and is the default. "cubic" is a Catmull-Rom interpolator with no
// dependency beyond this module.
//
// # Command Line
//
// cmd/spconv wraps Normalize:
//
//	spconv [flags] <path>
package spconv

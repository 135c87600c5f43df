// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files using github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit little-endian stereo, mono sources included,
// so the Descriptor reports two channels. Its Format is audio.MPEG rather
// than PCM16: the stream is lossy-coded and is always transformed, never
// byte-copied.
//
// Frames is known only when the reader supports io.Seeker; otherwise it is -1.
package mp3

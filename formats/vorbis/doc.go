// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files using github.com/jfreymuth/oggvorbis.
//
// Any channel count is supported. Samples come straight from the decoder as
// float32 in [-1.0, 1.0]; the Descriptor Format is audio.Vorbis so callers
// always run the stream through the transform.
//
//	f, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrNotVorbisFile)
//	}
//	buf, err := audio.ReadAll(src)
package vorbis

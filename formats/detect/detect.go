// SPDX-License-Identifier: EPL-2.0

package detect

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/dhowden/tag"
	"github.com/ik5/spconv/audio"
)

const headerLen = 12

// Sniff identifies the container from the leading bytes of rs. RIFF/WAVE and
// FORM/AIFF are matched directly, headerless MPEG audio by its frame sync,
// everything else through tag.Identify. The read position is restored before
// returning. An unrecognised stream yields ContainerUnknown and a nil error;
// only I/O failures are reported.
func Sniff(rs io.ReadSeeker) (audio.Container, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return audio.ContainerUnknown, fmt.Errorf("%w: %w", ErrSeek, err)
	}

	c, sniffErr := sniff(rs)

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return audio.ContainerUnknown, fmt.Errorf("%w: %w", ErrSeek, err)
	}

	return c, sniffErr
}

func sniff(rs io.ReadSeeker) (audio.Container, error) {
	head := make([]byte, headerLen)
	n, err := io.ReadFull(rs, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return audio.ContainerUnknown, fmt.Errorf("reading header: %w", err)
	}
	head = head[:n]

	if c := magic(head); c != audio.ContainerUnknown {
		return c, nil
	}

	if _, err := rs.Seek(-int64(n), io.SeekCurrent); err != nil {
		return audio.ContainerUnknown, fmt.Errorf("%w: %w", ErrSeek, err)
	}

	// tag reports missing tags and short files as errors, neither of which
	// is fatal here
	_, fileType, err := tag.Identify(rs)
	if err != nil {
		return audio.ContainerUnknown, nil
	}

	switch fileType {
	case tag.FLAC:
		return audio.FLAC, nil
	case tag.OGG:
		return audio.OGG, nil
	case tag.MP3:
		return audio.MP3, nil
	default:
		return audio.ContainerUnknown, nil
	}
}

func magic(head []byte) audio.Container {
	if len(head) >= headerLen {
		switch {
		case bytes.Equal(head[0:4], []byte("RIFF")) && bytes.Equal(head[8:12], []byte("WAVE")):
			return audio.WAV
		case bytes.Equal(head[0:4], []byte("FORM")) &&
			(bytes.Equal(head[8:12], []byte("AIFF")) || bytes.Equal(head[8:12], []byte("AIFC"))):
			return audio.AIFF
		}
	}

	// MPEG audio frame sync: 11 set bits, layer III
	if len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0 && head[1]&0x06 == 0x02 {
		return audio.MP3
	}

	return audio.ContainerUnknown
}

// Container sniffs rs and falls back to the extension of name when the
// content is not recognised.
func Container(rs io.ReadSeeker, name string) (audio.Container, error) {
	c, err := Sniff(rs)
	if err != nil {
		return audio.ContainerUnknown, err
	}

	if c == audio.ContainerUnknown {
		return audio.ContainerForPath(name), nil
	}

	return c, nil
}

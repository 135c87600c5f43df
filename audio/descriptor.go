// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"path/filepath"
	"strings"
)

// SampleFormat is the sample encoding of a stream, independent of container
// and sample rate.
type SampleFormat int

const (
	FormatUnknown SampleFormat = iota
	PCM8
	PCM16
	PCM24
	PCM32
	Float32
	Float64
	Vorbis
	MPEG
)

var sampleFormatNames = map[SampleFormat]string{
	FormatUnknown: "unknown",
	PCM8:          "pcm8",
	PCM16:         "pcm16",
	PCM24:         "pcm24",
	PCM32:         "pcm32",
	Float32:       "float32",
	Float64:       "float64",
	Vorbis:        "vorbis",
	MPEG:          "mpeg",
}

func (f SampleFormat) String() string {
	if s, ok := sampleFormatNames[f]; ok {
		return s
	}

	return "unknown"
}

// PCMFormat maps an integer PCM bit depth to its SampleFormat.
func PCMFormat(bitDepth int) SampleFormat {
	switch bitDepth {
	case 8:
		return PCM8
	case 16:
		return PCM16
	case 24:
		return PCM24
	case 32:
		return PCM32
	default:
		return FormatUnknown
	}
}

// Container is the file format wrapping the sample data.
type Container int

const (
	ContainerUnknown Container = iota
	WAV
	FLAC
	OGG
	MP3
	AIFF
)

var containerNames = map[Container]string{
	ContainerUnknown: "unknown",
	WAV:              "wav",
	FLAC:             "flac",
	OGG:              "ogg",
	MP3:              "mp3",
	AIFF:             "aiff",
}

func (c Container) String() string {
	if s, ok := containerNames[c]; ok {
		return s
	}

	return "unknown"
}

// ContainerForExt maps a file extension (with or without the leading dot) to
// a Container. The lookup ignores case; allow-list matching does not happen
// here.
func ContainerForExt(ext string) Container {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "wav", "wave":
		return WAV
	case "flac":
		return FLAC
	case "ogg", "oga":
		return OGG
	case "mp3":
		return MP3
	case "aif", "aiff":
		return AIFF
	default:
		return ContainerUnknown
	}
}

// ContainerForPath is ContainerForExt applied to the extension of path.
func ContainerForPath(path string) Container {
	return ContainerForExt(filepath.Ext(path))
}

// Descriptor is the stream metadata of one opened file. Frames is -1 when the
// decoder cannot know the length before reading the whole stream.
type Descriptor struct {
	SampleRate int
	Channels   int
	Frames     int64
	Format     SampleFormat
	Container  Container
}

// Target is the fixed output descriptor every converted file must reach.
type Target struct {
	SampleRate int
	Channels   int
	Format     SampleFormat
	Container  Container
}

// CanonicalTarget returns 48 kHz, stereo, 16-bit PCM in a WAV container.
// Each call returns a fresh copy.
func CanonicalTarget() Target {
	return Target{
		SampleRate: 48000,
		Channels:   2,
		Format:     PCM16,
		Container:  WAV,
	}
}

// Matches reports whether d already has every property of t.
func (t Target) Matches(d Descriptor) bool {
	return d.SampleRate == t.SampleRate &&
		d.Channels == t.Channels &&
		d.Format == t.Format &&
		d.Container == t.Container
}

// Classification is the verdict of Classify.
type Classification int

const (
	RequiresTransform Classification = iota
	AlreadyCanonicalSubformat
)

func (c Classification) String() string {
	if c == AlreadyCanonicalSubformat {
		return "already-canonical-subformat"
	}

	return "requires-transform"
}

// Classify decides whether a stream needs transforming. Only the sample
// subformat is evaluated: 16-bit PCM is already canonical whatever its rate,
// channel count or container.
func Classify(d Descriptor) Classification {
	if d.Format == PCM16 {
		return AlreadyCanonicalSubformat
	}

	return RequiresTransform
}

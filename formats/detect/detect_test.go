// SPDX-License-Identifier: EPL-2.0

package detect

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/spconv/audio"
	"github.com/ik5/spconv/internal/audiotest"
)

func pad(head string) []byte {
	// ID3v1 lookups seek 128 bytes back from the end
	return append([]byte(head), make([]byte, 200)...)
}

func TestSniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want audio.Container
	}{
		{"wav", pad("RIFF\x24\x00\x00\x00WAVEfmt "), audio.WAV},
		{"riff avi", pad("RIFF\x24\x00\x00\x00AVI LIST"), audio.ContainerUnknown},
		{"aiff", pad("FORM\x00\x00\x00\x20AIFFCOMM"), audio.AIFF},
		{"aifc", pad("FORM\x00\x00\x00\x20AIFCFVER"), audio.AIFF},
		{"flac", pad("fLaC\x00\x00\x00\x22\x10\x00\x10\x00"), audio.FLAC},
		{"ogg", pad("OggS\x00\x02\x00\x00\x00\x00\x00\x00"), audio.OGG},
		{"id3v2", pad("ID3\x03\x00\x00\x00\x00\x00\x00\x00\x00"), audio.MP3},
		{"mpeg frame", pad("\xFF\xFB\x90\x64\x00\x00\x00\x00\x00\x00\x00\x00"), audio.MP3},
		{"text", pad("hello, world"), audio.ContainerUnknown},
		{"tiny", []byte("RI"), audio.ContainerUnknown},
		{"empty", nil, audio.ContainerUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := bytes.NewReader(tt.data)
			got, err := Sniff(r)
			if err != nil {
				t.Fatalf("Sniff() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Sniff() = %v, want %v", got, tt.want)
			}

			if pos, _ := r.Seek(0, io.SeekCurrent); pos != 0 {
				t.Errorf("position after Sniff() = %d, want 0", pos)
			}
		})
	}
}

func TestSniff_RestoresOffset(t *testing.T) {
	t.Parallel()

	data := append([]byte("junk"), pad("OggS\x00\x02\x00\x00\x00\x00\x00\x00")...)
	r := bytes.NewReader(data)
	if _, err := r.Seek(4, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	got, err := Sniff(r)
	if err != nil || got != audio.OGG {
		t.Fatalf("Sniff() = %v, %v; want ogg, nil", got, err)
	}

	if pos, _ := r.Seek(0, io.SeekCurrent); pos != 4 {
		t.Errorf("position after Sniff() = %d, want 4", pos)
	}
}

func TestContainer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	wavPath := filepath.Join(dir, "real.wav")
	audiotest.WriteWAV(t, wavPath, 8000, 1, 16, audiotest.SineFrames(8000, 100, 440))

	tests := []struct {
		name string
		data []byte
		file string
		want audio.Container
	}{
		{"content wins over extension", pad("fLaC\x00\x00\x00\x22"), "mislabelled.mp3", audio.FLAC},
		{"extension fallback", pad("no magic here"), "track.ogg", audio.OGG},
		{"nothing known", pad("no magic here"), "notes.txt", audio.ContainerUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Container(bytes.NewReader(tt.data), tt.file)
			if err != nil {
				t.Fatalf("Container() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Container() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("encoded wav", func(t *testing.T) {
		t.Parallel()

		f, err := os.Open(wavPath)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		if got, err := Container(f, "renamed.flac"); err != nil || got != audio.WAV {
			t.Errorf("Container() = %v, %v; want wav, nil", got, err)
		}
	})
}

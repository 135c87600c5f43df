// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"sync"
)

// Source is an opened audio stream.
type Source interface {
	// Descriptor reports the stream metadata read from the container header.
	Descriptor() Descriptor
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by container kind.
type Registry struct {
	codecs map[Container]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[Container]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(c Container, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[c] = d
}

func (r *Registry) Get(c Container) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[c]
	return d, ok
}

// Containers lists the registered container kinds in ascending order.
func (r *Registry) Containers() []Container {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]Container, 0, len(r.codecs))
	for c := range r.codecs {
		out = append(out, c)
	}
	slices.Sort(out)

	return out
}

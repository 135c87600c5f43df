// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"sync"

	"github.com/ik5/spconv/audio"
)

// Transformer turns a decoded Buffer into one at the target rate and channel
// count. Channels are resampled independently; with Parallel set each channel
// runs on its own goroutine and writes only its own slot, so the result does
// not depend on scheduling.
type Transformer struct {
	Engine   Engine
	Target   audio.Target
	Parallel bool
}

func NewTransformer(engine Engine, target audio.Target) *Transformer {
	return &Transformer{
		Engine: engine,
		Target: target,
	}
}

// Transform resamples buf to t.Target.SampleRate and folds it to
// t.Target.Channels. The frame count of the result is exactly
// OutputLength(buf.Frames(), buf.SampleRate, t.Target.SampleRate).
func (t *Transformer) Transform(buf audio.Buffer) (audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return audio.Buffer{}, err
	}
	if t.Target.SampleRate <= 0 {
		return audio.Buffer{}, audio.ErrInvalidRate
	}
	if t.Target.Channels <= 0 {
		return audio.Buffer{}, audio.ErrNoChannels
	}

	planes := buf.Deinterleave()

	if buf.SampleRate != t.Target.SampleRate {
		resampled, err := t.resamplePlanes(planes, buf.SampleRate)
		if err != nil {
			return audio.Buffer{}, err
		}
		planes = resampled
	}

	out, err := audio.Interleave(audio.FoldChannels(planes, t.Target.Channels), t.Target.SampleRate)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("interleaving: %w", err)
	}

	return out, nil
}

func (t *Transformer) resamplePlanes(planes [][]float64, srcRate int) ([][]float64, error) {
	if t.Engine == nil {
		return nil, ErrUnknownEngine
	}

	want := OutputLength(len(planes[0]), srcRate, t.Target.SampleRate)
	out := make([][]float64, len(planes))
	errs := make([]error, len(planes))

	one := func(c int) {
		res, err := t.Engine.Resample(planes[c], srcRate, t.Target.SampleRate)
		if err != nil {
			errs[c] = fmt.Errorf("channel %d: %w", c, err)
			return
		}
		out[c] = fit(res, want)
	}

	if t.Parallel && len(planes) > 1 {
		var wg sync.WaitGroup
		for c := range planes {
			wg.Add(1)
			go func() {
				defer wg.Done()
				one(c)
			}()
		}
		wg.Wait()
	} else {
		for c := range planes {
			one(c)
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

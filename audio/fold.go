// SPDX-License-Identifier: EPL-2.0

package audio

// FoldChannels maps channel planes onto the wanted channel count.
//
// Mono fans out to every output channel. With more inputs than outputs, input
// channel c is averaged into output c % channels, so a 5.1 layout folds its
// even channels to the left and odd ones to the right. With fewer, the
// missing outputs repeat the inputs round-robin. Planes must be of equal
// length; the returned planes never alias the input.
func FoldChannels(planes [][]float64, channels int) [][]float64 {
	if channels <= 0 || len(planes) == 0 {
		return nil
	}

	frames := len(planes[0])
	out := make([][]float64, channels)

	switch {
	case len(planes) == channels:
		for c := range out {
			out[c] = append([]float64(nil), planes[c]...)
		}

	case len(planes) < channels:
		for c := range out {
			out[c] = append([]float64(nil), planes[c%len(planes)]...)
		}

	default:
		counts := make([]int, channels)
		for c := range out {
			out[c] = make([]float64, frames)
		}

		for c, p := range planes {
			dst := out[c%channels]
			counts[c%channels]++
			for f := range frames {
				dst[f] += p[f]
			}
		}

		for c := range out {
			inv := 1.0 / float64(counts[c])
			for f := range frames {
				out[c][f] *= inv
			}
		}
	}

	return out
}

// SPDX-License-Identifier: EPL-2.0

package resample

import "errors"

var (
	ErrEmptyInput     = errors.New("resample input is empty")
	ErrInvalidRate    = errors.New("sample rates must be positive")
	ErrUnknownEngine  = errors.New("unknown resampler engine")
	ErrUnknownQuality = errors.New("unknown resampler quality")
)

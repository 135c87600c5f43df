// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrEmptyBuffer      = errors.New("sample buffer is empty")
	ErrInvalidBuffer    = errors.New("sample buffer length must be multiple of channels")
	ErrInvalidRate      = errors.New("sample rate must be positive")
	ErrNoChannels       = errors.New("channel count must be positive")
	ErrNoFrames         = errors.New("stream holds no audio frames")
	ErrUnknownContainer = errors.New("unknown container")
)

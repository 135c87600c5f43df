// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNotFlacFile       = errors.New("not a FLAC file")
	ErrInvalidStreamInfo = errors.New("invalid FLAC stream info")
	ErrCorruptFrame      = errors.New("corrupt FLAC frame")
)

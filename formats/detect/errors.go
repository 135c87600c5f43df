// SPDX-License-Identifier: EPL-2.0

package detect

import "errors"

// ErrSeek is returned when the stream cannot be rewound after sniffing.
var ErrSeek = errors.New("cannot seek stream")

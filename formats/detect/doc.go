// SPDX-License-Identifier: EPL-2.0

// Package detect recognises an audio container from file content, so that a
// file whose extension lies is still routed to the right decoder. Tagged
// formats are identified with github.com/dhowden/tag.
package detect

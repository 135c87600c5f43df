// SPDX-License-Identifier: EPL-2.0

// Package config builds the immutable settings of a normalizer run.
//
// Values are layered: Default, then an optional YAML file (parsed with
// github.com/goccy/go-yaml), then SPCONV_* environment variables. Command
// line flags are applied last by the caller. Example file:
//
//	extensions: [".wav", ".flac", ".ogg", ".mp3", ".aiff"]
//	suffix: -SPC
//	recursive: true
//	sort: true
//	workers: 4
//	engine: soxr
//	quality: veryhigh
//
// The conversion target is not configurable from files or the environment.
package config

// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrInvalidFile      = errors.New("invalid config file")
	ErrInvalidEnv       = errors.New("invalid environment value")
	ErrNoExtensions     = errors.New("extension allow-list is empty")
	ErrInvalidExtension = errors.New("extension must start with a dot")
	ErrInvalidSuffix    = errors.New("invalid output suffix")
	ErrInvalidWorkers   = errors.New("workers must be at least 1")
	ErrInvalidTarget    = errors.New("invalid conversion target")
)

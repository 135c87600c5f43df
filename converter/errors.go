// SPDX-License-Identifier: EPL-2.0

package converter

import (
	"errors"
	"fmt"
)

// Kind classifies why a conversion failed.
type Kind int

const (
	KindPath Kind = iota + 1
	KindInputOpen
	KindOutputOpen
	KindTransform
	KindCopy
	KindDirectoryCreation
)

// Sentinels matched by (*Error).Is, one per Kind.
var (
	ErrPath              = errors.New("path error")
	ErrInputOpen         = errors.New("input open error")
	ErrOutputOpen        = errors.New("output open error")
	ErrTransform         = errors.New("transform error")
	ErrCopy              = errors.New("copy error")
	ErrDirectoryCreation = errors.New("directory creation error")
)

var kindSentinels = map[Kind]error{
	KindPath:              ErrPath,
	KindInputOpen:         ErrInputOpen,
	KindOutputOpen:        ErrOutputOpen,
	KindTransform:         ErrTransform,
	KindCopy:              ErrCopy,
	KindDirectoryCreation: ErrDirectoryCreation,
}

func (k Kind) String() string {
	if err, ok := kindSentinels[k]; ok {
		return err.Error()
	}

	return "unknown error"
}

// Error is the failure of one conversion step on Path.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func NewError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}

	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInputOpen) and friends match by Kind.
func (e *Error) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

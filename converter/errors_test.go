// SPDX-License-Identifier: EPL-2.0

package converter

import (
	"errors"
	"io/fs"
	"testing"
)

func TestError_Is(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrPath, ErrInputOpen, ErrOutputOpen, ErrTransform, ErrCopy, ErrDirectoryCreation}
	kinds := []Kind{KindPath, KindInputOpen, KindOutputOpen, KindTransform, KindCopy, KindDirectoryCreation}

	for i, kind := range kinds {
		err := error(NewError(kind, "x.wav", fs.ErrPermission))

		for j, s := range sentinels {
			if got := errors.Is(err, s); got != (i == j) {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", kind, s, got, i == j)
			}
		}

		if !errors.Is(err, fs.ErrPermission) {
			t.Errorf("%v: cause not reachable through Unwrap", kind)
		}
		if KindOf(err) != kind {
			t.Errorf("KindOf() = %v, want %v", KindOf(err), kind)
		}
	}
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *Error
		want string
	}{
		{NewError(KindInputOpen, "a.wav", errors.New("boom")), "input open error: a.wav: boom"},
		{NewError(KindPath, "/nope", nil), "path error: /nope"},
		{NewError(Kind(99), "z", nil), "unknown error: z"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindOf_NotAnError(t *testing.T) {
	t.Parallel()

	if k := KindOf(errors.New("plain")); k != 0 {
		t.Errorf("KindOf(plain) = %v, want 0", k)
	}
	if k := KindOf(nil); k != 0 {
		t.Errorf("KindOf(nil) = %v, want 0", k)
	}
}

// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ik5/spconv/config"
	"github.com/ik5/spconv/converter"
	"github.com/mewkiz/pkg/pathutil"
)

var (
	ErrNotEligible     = errors.New("extension is not on the allow-list")
	ErrUnsupportedType = errors.New("neither a regular file nor a directory")
)

// Task is one input file and where its normalized rendition goes.
type Task struct {
	Input  string
	Output string
}

// Plan is the work derived from one root path. OutputRoot is the mirror
// directory for directory roots and empty for single files.
type Plan struct {
	Root       string
	OutputRoot string
	Tasks      []Task
}

// Walk turns root into a Plan. A regular file with an allowed extension
// becomes a single task written next to it; a directory is enumerated
// (recursively when cfg.Recursive) and mirrored into a sibling directory
// named after it with cfg.Suffix appended. Anything else is a
// *converter.Error of KindPath.
func Walk(root string, cfg config.Config) (*Plan, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, converter.NewError(converter.KindPath, root, err)
	}

	switch {
	case info.Mode().IsRegular():
		return planFile(root, cfg)
	case info.IsDir():
		return planDir(root, cfg)
	default:
		return nil, converter.NewError(converter.KindPath, root, ErrUnsupportedType)
	}
}

func planFile(path string, cfg config.Config) (*Plan, error) {
	if !cfg.Allowed(filepath.Ext(path)) {
		return nil, converter.NewError(converter.KindPath, path, ErrNotEligible)
	}

	return &Plan{
		Root:  path,
		Tasks: []Task{{Input: path, Output: OutputName(path, cfg.Suffix)}},
	}, nil
}

func planDir(root string, cfg config.Config) (*Plan, error) {
	root = filepath.Clean(root)

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, converter.NewError(converter.KindPath, root, err)
	}
	if filepath.Dir(abs) == abs {
		// a filesystem root has no sibling to mirror into
		return nil, converter.NewError(converter.KindPath, root, ErrUnsupportedType)
	}

	plan := &Plan{
		Root:       root,
		OutputRoot: filepath.Join(filepath.Dir(abs), filepath.Base(abs)+cfg.Suffix),
	}
	out := pathutil.Base(plan.OutputRoot)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && !cfg.Recursive {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !cfg.Allowed(filepath.Ext(path)) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		output, err := out.Path(OutputName(rel, cfg.Suffix))
		if err != nil {
			return err
		}

		plan.Tasks = append(plan.Tasks, Task{Input: path, Output: output})
		return nil
	})
	if err != nil {
		return nil, converter.NewError(converter.KindPath, root, fmt.Errorf("enumerating: %w", err))
	}

	if cfg.Sort {
		slices.SortFunc(plan.Tasks, func(a, b Task) int {
			return strings.Compare(a.Input, b.Input)
		})
	}

	return plan, nil
}

// OutputName inserts suffix between the stem and the extension of path:
// "dir/song.mp3" becomes "dir/song-SPC.mp3".
func OutputName(path, suffix string) string {
	return pathutil.TrimExt(path) + suffix + filepath.Ext(path)
}

// SPDX-License-Identifier: EPL-2.0

// Package batch walks an input path and drives a converter over every
// eligible file.
//
// Walk builds a Plan: a single file maps to "<stem>-SPC<ext>" beside it, a
// directory X maps to a sibling X-SPC that mirrors the relative path of each
// eligible file, the suffix applied to every file name:
//
//	X/a.wav           -> X-SPC/a-SPC.wav
//	X/sub/b.flac      -> X-SPC/sub/b-SPC.flac
//	X/sub/ignore.txt  -> (skipped)
//
// A Runner executes the plan, creating directories on demand, reporting
// progress before each file and isolating failures: one bad file never stops
// the others. With Workers above one, tasks run on a bounded pool; results
// stay in plan order either way.
package batch

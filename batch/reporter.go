// SPDX-License-Identifier: EPL-2.0

package batch

import "log/slog"

// LogReporter writes batch progress as structured log records.
type LogReporter struct {
	Logger *slog.Logger
}

func (l LogReporter) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

func (l LogReporter) Progress(index, total int, task Task) {
	l.logger().Info("converting",
		slog.Int("index", index),
		slog.Int("total", total),
		slog.String("path", task.Input),
	)
}

func (l LogReporter) Copied(task Task) {
	l.logger().Warn("already 16-bit PCM, copied instead of resampled",
		slog.String("path", task.Input),
		slog.String("output", task.Output),
	)
}

func (l LogReporter) Failed(task Task, err error) {
	l.logger().Error("conversion failed",
		slog.String("path", task.Input),
		slog.Any("error", err),
	)
}

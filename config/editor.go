package config

import (
	"log/slog"

	"github.com/katalvlaran/molkit/editor"
)

// EditorOptions translates the undo section into editor options.
func (c *Config) EditorOptions() []editor.Option {
	return []editor.Option{
		editor.WithUndoLimit(c.Undo.Limit),
		editor.WithMergeInteractive(c.Undo.Merge()),
	}
}

// Logger builds the editor logger described by the log section and sets
// level from it. Sharing level across reloads lets a running process
// follow log.level changes; the format is fixed at construction.
func (c *Config) Logger(level *slog.LevelVar) *editor.Logger {
	level.Set(c.Log.SlogLevel())
	if c.Log.Format == "json" {
		return editor.NewJSONLogger(level)
	}
	return editor.NewTextLogger(level)
}

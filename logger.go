package fixedhashtable

import (
	"context"
	"log/slog"
)

// Logger wraps slog.Logger with table specific helpers.
// Tables only log lifecycle events, inserts and lookups report through their return values alone.
type Logger struct {
	*slog.Logger
}

// NewLogger returns a Logger writing lifecycle events to handler.
// A nil handler discards everything.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.DiscardHandler
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger returns the Logger used when none is configured.
func NoopLogger() *Logger {
	return NewLogger(nil)
}

// LogCreate logs the creation of a table.
func (l *Logger) LogCreate(ctx context.Context, info HashTableInfo) {
	l.DebugContext(ctx, "table created",
		"bucket_size", info.BucketSize,
		"buckets", info.NumberOfBuckets,
		"capacity", info.Capacity,
		"storage_bytes", info.StorageSize,
	)
}

// LogClose logs the release of a table's storage.
func (l *Logger) LogClose(ctx context.Context, records int64, storageSize int64) {
	l.DebugContext(ctx, "table closed",
		"records", records,
		"storage_bytes", storageSize,
	)
}

// LogRebuild logs a rebuild into a new table.
func (l *Logger) LogRebuild(ctx context.Context, from, to HashTableInfo, records int64, err error) {
	if err != nil {
		l.DebugContext(ctx, "rebuild failed",
			"from_capacity", from.Capacity,
			"to_capacity", to.Capacity,
			"records_moved", records,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "rebuild completed",
			"from_capacity", from.Capacity,
			"to_capacity", to.Capacity,
			"records", records,
		)
	}
}

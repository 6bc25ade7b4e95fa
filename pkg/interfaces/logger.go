package interfaces

import "context"

// Logger is the leveled logging surface the CMS services write to. The
// method set lines up with github.com/goliatone/go-logger, which is the
// provider hosts are expected to plug in, but any implementation works.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out loggers by name. A provider may scope children
// per module (cms.blocks, cms.http, ...) or return one shared instance.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is the optional extension for persistent structured fields.
// Implementations return a logger that stamps the fields on every entry;
// callers probe for it with a type assertion and fall back gracefully.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}

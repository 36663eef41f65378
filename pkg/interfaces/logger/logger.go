package logger

import glog "github.com/goliatone/go-logger/glog"

// Logger is the contract expected by go-trails services. It is the go-logger
// glog interface so hosts can pass their own provider loggers straight in.
type Logger = glog.Logger

// FieldsLogger is implemented by loggers that support structured fields.
type FieldsLogger = glog.FieldsLogger

// Nop returns a logger that discards everything.
func Nop() Logger {
	return glog.Nop()
}

// Ensure returns lgr or a no-op logger when lgr is nil.
func Ensure(lgr Logger) Logger {
	return glog.Ensure(lgr)
}

// Named resolves the logger for a component using provider > logger > nop
// precedence.
func Named(name string, provider glog.LoggerProvider, lgr Logger) Logger {
	_, resolved := glog.Resolve(name, provider, lgr)
	return glog.Ensure(resolved)
}

// WithFields attaches fields when the logger supports them, returning lgr
// unchanged otherwise.
func WithFields(lgr Logger, fields map[string]any) Logger {
	if lgr == nil || len(fields) == 0 {
		return Ensure(lgr)
	}
	if fl, ok := lgr.(FieldsLogger); ok {
		return fl.WithFields(fields)
	}
	return lgr
}

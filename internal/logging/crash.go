package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// RecoverPanic logs a panic with its stack trace and re-panics.
// It must be deferred directly:
//
//	defer logging.RecoverPanic(ctx)
func RecoverPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	LogPanic(ctx, r, debug.Stack())
	panic(r)
}

// LogPanic writes a panic value and stack at error level along with basic
// runtime information.
func LogPanic(ctx context.Context, value any, stack []byte) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	FromContext(ctx).Error().
		Interface("panic", value).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint32("num_gc", m.NumGC).
		Bytes("stack", stack).
		Msg("PANIC")
}

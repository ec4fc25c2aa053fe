package pseudostates

import (
	"sync"

	"go.uber.org/zap"
)

// Diagnostics receives fire-and-forget warnings and errors from the patcher
type Diagnostics interface {
	Warn(msg string)
	Error(err error, href string)
}

// LogDiagnostics writes diagnostics through a zap logger
type LogDiagnostics struct {
	log *zap.Logger
}

// NewLogDiagnostics returns diagnostics backed by log (a no-op logger if nil)
func NewLogDiagnostics(log *zap.Logger) *LogDiagnostics {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogDiagnostics{log: log}
}

// Warn implements Diagnostics
func (d *LogDiagnostics) Warn(msg string) {
	d.log.Warn(msg)
}

// Error implements Diagnostics
func (d *LogDiagnostics) Error(err error, href string) {
	d.log.Error("Unable to rewrite stylesheet", zap.Error(err), zap.String("href", href))
}

// WarnOnce forwards each distinct warning message at most once. Errors are
// never deduplicated.
type WarnOnce struct {
	next Diagnostics

	mu   sync.Mutex
	seen map[string]struct{}
}

// NewWarnOnce wraps next with warning deduplication
func NewWarnOnce(next Diagnostics) *WarnOnce {
	return &WarnOnce{
		next: next,
		seen: make(map[string]struct{}),
	}
}

// Warn implements Diagnostics
func (w *WarnOnce) Warn(msg string) {
	w.mu.Lock()
	if _, ok := w.seen[msg]; ok {
		w.mu.Unlock()
		return
	}
	w.seen[msg] = struct{}{}
	w.mu.Unlock()

	w.next.Warn(msg)
}

// Error implements Diagnostics
func (w *WarnOnce) Error(err error, href string) {
	w.next.Error(err, href)
}

var (
	sharedWarnings     *WarnOnce
	sharedWarningsOnce sync.Once
)

// SharedWarnings returns the process-wide deduplicating diagnostics sink.
// It logs through zap's global logger, see zap.ReplaceGlobals.
func SharedWarnings() *WarnOnce {
	sharedWarningsOnce.Do(func() {
		sharedWarnings = NewWarnOnce(globalDiagnostics{})
	})
	return sharedWarnings
}

// globalDiagnostics resolves zap.L() on every call so loggers installed
// after the first warning are still honoured.
type globalDiagnostics struct{}

func (globalDiagnostics) Warn(msg string) {
	NewLogDiagnostics(zap.L().Named("pseudostates")).Warn(msg)
}

func (globalDiagnostics) Error(err error, href string) {
	NewLogDiagnostics(zap.L().Named("pseudostates")).Error(err, href)
}

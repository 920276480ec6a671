// Package fatal implements the abort path for programmer errors: contract
// violations that spec.md §7 says are "treated as programmer errors and
// abort" rather than returned as recoverable *errors.
//
// Recoverable conditions (builder/compiler validation, submission,
// DeviceLost) must never go through this package — they are ordinary Go
// errors. fatal is reserved for the command-recording contract violations
// of §7 (NoPipelineBound, NoRenderPassActive, WrongPipelineKindForOp,
// PushConstantSizeMismatch, UndefinedTransition) and for driver-level
// invariant breaks the Device layer treats as fatal (consistent with the
// source engine's VK_CHECK discipline, §7).
package fatal

import (
	"context"
	"fmt"
	"log/slog"
)

// Diagnostic is the structured payload emitted before aborting (§7:
// "Fatal errors emit a single structured diagnostic {kind, message, pass?,
// resource?} before aborting").
type Diagnostic struct {
	Kind     string
	Message  string
	Pass     string
	Resource string
}

// exitFunc is the process-termination hook. Tests replace it to observe
// fatal calls without killing the test binary.
var exitFunc = func(code int) { panicExit(code) }

// Logger returns the logger that receives the diagnostic before exit. It
// returns slog.Default() unless replaced; rhi.SetLogger does not change it.
var Logger = func() *slog.Logger { return slog.Default() }

type exitPanic struct{ code int }

// panicExit is the production exit hook: os.Exit cannot be intercepted by
// tests, so the default hook panics with a sentinel type and main()
// (or TestMain) is expected to let it propagate to process exit. Tests
// install their own exitFunc that records the call instead of panicking.
func panicExit(code int) {
	panic(exitPanic{code: code})
}

// SetExitFunc overrides the termination hook. Used only by tests.
func SetExitFunc(f func(code int)) (restore func()) {
	prev := exitFunc
	exitFunc = f
	return func() { exitFunc = prev }
}

// Abort logs the diagnostic at Error level and terminates the process.
func Abort(d Diagnostic) {
	Logger().Log(context.Background(), slog.LevelError, d.Message,
		"kind", d.Kind, "pass", d.Pass, "resource", d.Resource)
	exitFunc(1)
}

// Check aborts with a formatted message when cond is false. kind identifies
// the §7 error kind (e.g. "NoPipelineBound").
func Check(cond bool, kind, format string, args ...any) {
	if cond {
		return
	}
	Abort(Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// CheckPass is like Check but records the offending pass name in the
// diagnostic.
func CheckPass(cond bool, kind, pass, format string, args ...any) {
	if cond {
		return
	}
	Abort(Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Pass: pass})
}

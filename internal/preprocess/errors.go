package preprocess

import "fmt"

// Kind is one of the four error classes spec.md §7 surfaces verbatim in a
// response envelope's error string.
type Kind string

const (
	// KindParse covers AST parser rejections and envelope-shape mismatches.
	KindParse Kind = "parse"
	// KindPreprocess covers matcher ambiguity (zero or >=2 distinct
	// candidates for sig or n) and emission failures (UTF-8 re-encoding).
	KindPreprocess Kind = "preprocess"
	// KindRuntime names the class of bridge initialization, program-load,
	// and per-challenge invocation failures. Run never returns it, and
	// internal/protocol reports bridge errors with their own message and no
	// kind prefix.
	KindRuntime Kind = "runtime"
	// KindIo names the class of failures reading the player source. Run never
	// returns it, and cmd/playerpp reports a failed read as a plain message on
	// stderr.
	KindIo Kind = "io"
)

// Error is a typed preprocessing failure. Its string form is what the
// response envelope surfaces to callers, so it never embeds Go-internal
// detail beyond what Kind+Msg already conveys.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, if any; not part of Error()
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func parseErr(format string, args ...any) *Error {
	return &Error{Kind: KindParse, Msg: fmt.Sprintf(format, args...)}
}

func parseErrWrap(err error, format string, args ...any) *Error {
	return &Error{Kind: KindParse, Msg: fmt.Sprintf(format, args...), Err: err}
}

func preprocessErr(format string, args ...any) *Error {
	return &Error{Kind: KindPreprocess, Msg: fmt.Sprintf(format, args...)}
}

func runtimeErr(format string, args ...any) *Error {
	return &Error{Kind: KindRuntime, Msg: fmt.Sprintf(format, args...)}
}

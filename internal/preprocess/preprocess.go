// Package preprocess implements the Preprocessor API of spec.md §6.1: it
// wires jsast, envelope, sigmatch, nmatch, rewrite, and emit into the single
// `preprocess(player) -> EmittedProgram | Error` operation.
package preprocess

import (
	"errors"

	"github.com/elucid503/playerpp/v2/internal/emit"
	"github.com/elucid503/playerpp/v2/internal/envelope"
	"github.com/elucid503/playerpp/v2/internal/jsast"
	"github.com/elucid503/playerpp/v2/internal/nmatch"
	"github.com/elucid503/playerpp/v2/internal/rewrite"
	"github.com/elucid503/playerpp/v2/internal/sigmatch"
	"github.com/sirupsen/logrus"
)

// Run preprocesses a player source and returns its EmittedProgram. The
// returned error, when non-nil, is always a *Error.
func Run(source string) (string, error) {
	mod, err := jsast.Parse(source)
	if err != nil {
		return "", parseErrWrap(err, "parse failed: %v", err)
	}

	inner, err := envelope.Extract(mod)
	if err != nil {
		var shapeErr *envelope.ErrShape
		if errors.As(err, &shapeErr) {
			return "", parseErrWrap(err, "envelope: %s", shapeErr.Reason)
		}
		return "", parseErrWrap(err, "envelope extraction failed")
	}

	sigCandidates := map[string]struct{}{}
	nCandidates := map[string]struct{}{}
	filtered := make([]jsast.Stmt, 0, len(inner))

	for _, stmt := range inner {
		if thunk, ok := sigmatch.Match(stmt); ok {
			sigCandidates[thunk] = struct{}{}
		}
		if thunk, ok := nmatch.Match(stmt); ok {
			nCandidates[thunk] = struct{}{}
		}
		filtered = append(filtered, rewrite.Stmt(stmt))
	}

	if len(nCandidates) != 1 {
		return "", preprocessErr("found %d n functions", len(nCandidates))
	}
	if len(sigCandidates) != 1 {
		return "", preprocessErr("found %d sig functions", len(sigCandidates))
	}

	nThunk := soleKey(nCandidates)
	sigThunk := soleKey(sigCandidates)

	body := jsast.Print(filtered, mod.Source)

	program, err := emit.Program(body, nThunk, sigThunk)
	if err != nil {
		return "", preprocessErr("emit failed: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"player_fingerprint": Fingerprint(source),
		"stmt_count":         len(inner),
	}).Debug("preprocess: succeeded")

	return program, nil
}

func soleKey(m map[string]struct{}) string {
	for k := range m {
		return k
	}
	return ""
}

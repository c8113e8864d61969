// Package emit assembles the four-part EmittedProgram of spec.md §3 from a
// pretty-printed, rewritten inner block plus the discovered sig/n thunks —
// spec §4.6.
package emit

import (
	"embed"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

//go:embed assets/intl.js assets/setup.js
var assets embed.FS

var (
	intlPolyfill string
	setupCode    string
)

func init() {
	b, err := assets.ReadFile("assets/intl.js")
	if err != nil {
		panic(err)
	}
	intlPolyfill = string(b)

	b, err = assets.ReadFile("assets/setup.js")
	if err != nil {
		panic(err)
	}
	setupCode = string(b)
}

// Program concatenates the Intl polyfill, the browser-environment shim, the
// pretty-printed rewritten module body, and the two `_result` assignments,
// in that order, separated by single newlines. It then round-trips the
// result through a UTF-8 decode/encode pass. Byte sequences that aren't
// valid UTF-8 are replaced with U+FFFD rather than reported (the printer
// only ever reproduces source bytes and formats ASCII punctuation); an
// error is returned only if the transform itself fails.
func Program(body string, nThunk, sigThunk string) (string, error) {
	assembled := fmt.Sprintf("%s\n%s\n%s\n_result.n = %s;\n_result.sig = %s;",
		intlPolyfill, setupCode, body, nThunk, sigThunk)

	clean, err := reencodeUTF8(assembled)
	if err != nil {
		return "", fmt.Errorf("emit: utf-8 re-encoding failed: %w", err)
	}
	return clean, nil
}

func reencodeUTF8(s string) (string, error) {
	decoder := unicode.UTF8.NewDecoder()
	decoded, err := decoder.Bytes([]byte(s))
	if err != nil {
		return "", err
	}
	encoder := unicode.UTF8.NewEncoder()
	encoded, err := encoder.Bytes(decoded)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

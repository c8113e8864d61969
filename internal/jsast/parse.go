package jsast

import (
	"fmt"

	"github.com/dop251/goja/parser"
)

// ParseError wraps a failure from the underlying ECMAScript parser.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("jsast: parse: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// Parse parses source into a Module. Full ECMAScript (let/const, arrow
// functions, template literals) is accepted; the player is minified but not
// syntactically transformed, so goja's parser — the same one goja uses to
// compile scripts before evaluating them — accepts it unmodified.
func Parse(source string) (*Module, error) {
	prog, err := parser.ParseFile(nil, "player.js", source, 0)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return convertProgram(prog, source), nil
}

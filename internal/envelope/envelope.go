// Package envelope recognizes the IIFE (or top-level-call) shape that wraps
// a YouTube player bundle and returns the flattened statement sequence
// inside it — spec §4.2.
package envelope

import (
	"fmt"

	"github.com/elucid503/playerpp/v2/internal/jsast"
)

// ErrShape reports a module body that doesn't match any accepted envelope.
type ErrShape struct {
	Reason string
}

func (e *ErrShape) Error() string { return fmt.Sprintf("envelope: %s", e.Reason) }

// Extract returns the inner statement block of mod's IIFE, in source order.
//
// Three shapes are accepted:
//
//  1. body length 1: ExprStmt(Call(callee=Member(obj=Fn|Paren(Fn), prop="call"), args=[This])).
//     The inner block is the function's body, unmodified.
//  2. body length 2: the second statement is ExprStmt(Call(...)) whose callee is
//     one of four shapes (.call(this) directly or parenthesized, or a bare/
//     parenthesized IIFE). The first statement of the resulting inner block
//     (conventionally `var window = this;`) is dropped.
//  3. anything else fails with ErrShape.
func Extract(mod *jsast.Module) ([]jsast.Stmt, error) {
	switch len(mod.Body) {
	case 1:
		fn, ok := matchLength1(mod.Body[0])
		if !ok {
			return nil, &ErrShape{Reason: "unexpected structure (single statement)"}
		}
		return fn.Body.Body, nil

	case 2:
		fn, ok := matchLength2Callee(mod.Body[1])
		if !ok {
			return nil, &ErrShape{Reason: "unexpected structure (two statements)"}
		}
		body := fn.Body.Body
		if len(body) > 0 {
			body = body[1:]
		}
		return body, nil

	default:
		return nil, &ErrShape{Reason: fmt.Sprintf("unexpected module length: %d", len(mod.Body))}
	}
}

// matchLength1 matches ExprStmt(Call(callee=Member(obj=Fn|Paren(Fn), prop="call"), args=[This])).
func matchLength1(s jsast.Stmt) (*jsast.Fn, bool) {
	es, ok := s.(*jsast.ExprStmt)
	if !ok {
		return nil, false
	}
	call, ok := es.X.(*jsast.Call)
	if !ok {
		return nil, false
	}
	member, ok := call.Callee.(*jsast.Member)
	if !ok || member.Computed || member.Prop != "call" {
		return nil, false
	}
	if len(call.Args) != 1 {
		return nil, false
	}
	if _, ok := call.Args[0].(*jsast.This); !ok {
		return nil, false
	}
	return unwrapFn(member.Obj)
}

// matchLength2Callee matches the second statement's call expression against
// the four accepted callee shapes of spec §4.2 shape 2.
func matchLength2Callee(s jsast.Stmt) (*jsast.Fn, bool) {
	es, ok := s.(*jsast.ExprStmt)
	if !ok {
		return nil, false
	}
	call, ok := es.X.(*jsast.Call)
	if !ok {
		return nil, false
	}

	// a) Member(obj=Fn|Paren(Fn), prop="call") with args=[This] -- .call(this)
	if fn, ok := matchLength1(s); ok {
		return fn, true
	}

	// b) Fn directly -- (function(){...})()
	if fn, ok := call.Callee.(*jsast.Fn); ok {
		return fn, true
	}

	// c) Paren(Fn) or Paren(Call(Member(.call), [This])) -- doubly wrapped forms
	if paren, ok := call.Callee.(*jsast.Paren); ok {
		if fn, ok := unwrapFn(paren.Inner); ok {
			return fn, true
		}
		if innerCall, ok := paren.Inner.(*jsast.Call); ok {
			if fn, ok := matchLength1(&jsast.ExprStmt{X: innerCall}); ok {
				return fn, true
			}
		}
	}

	return nil, false
}

// unwrapFn accepts Fn or Paren(Fn) and returns the underlying function
// literal, requiring it to carry a body.
func unwrapFn(e jsast.Expr) (*jsast.Fn, bool) {
	switch n := e.(type) {
	case *jsast.Fn:
		if n.Body == nil {
			return nil, false
		}
		return n, true
	case *jsast.Paren:
		return unwrapFn(n.Inner)
	default:
		return nil, false
	}
}

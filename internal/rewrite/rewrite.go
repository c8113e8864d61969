// Package rewrite applies the two statement-level normalizations the
// preprocessor performs on every inner-block statement before re-emitting
// it — spec §4.5.
package rewrite

import "github.com/elucid503/playerpp/v2/internal/jsast"

// Stmt applies ThisOrSelf, then GFunction, to a single statement and
// returns the replacement to splice into the filtered body. Neither
// rewrite recurses into nested statements or function bodies; both only
// ever match a single top-level inner-block statement shape.
func Stmt(s jsast.Stmt) jsast.Stmt {
	return GFunction(ThisOrSelf(s))
}

// ThisOrSelf rewrites `x = this || self;` to `x = self;`. YouTube players
// use this to pick a global object that works both in a window and in a
// worker, where `this` is undefined; since the emitted program's browser
// shim (emit/assets/setup.js) always defines `self`, the `this` branch is
// dead weight worth collapsing.
func ThisOrSelf(s jsast.Stmt) jsast.Stmt {
	es, ok := s.(*jsast.ExprStmt)
	if !ok {
		return s
	}
	assign, ok := es.X.(*jsast.Assign)
	if !ok {
		return s
	}
	bin, ok := assign.Right.(*jsast.Bin)
	if !ok || bin.Op != "||" {
		return s
	}
	if _, ok := bin.Left.(*jsast.This); !ok {
		return s
	}
	ident, ok := bin.Right.(*jsast.Ident)
	if !ok || ident.Name != "self" {
		return s
	}

	return &jsast.ExprStmt{Sp: es.Sp, X: &jsast.Assign{
		Sp:     assign.Sp,
		Target: assign.Target,
		Op:     assign.Op,
		Right:  bin.Right,
	}}
}

// GFunction rewrites `function g(...) { ... }` to `g = function(...) { ... };`.
// Named function declarations hoist, and the emitted program's browser shim
// (emit/assets/setup.js) declares `var g = {}` at the same top level; turning
// the named `g` declaration into a plain assignment of an anonymous function
// expression lets the shim's initializer run first and the player's
// assignment take effect at its own position in the statement order.
func GFunction(s jsast.Stmt) jsast.Stmt {
	decl, ok := s.(*jsast.FnDecl)
	if !ok || decl.Name != "g" {
		return s
	}

	fn := &jsast.Fn{Sp: decl.Sp, Params: decl.Params, Body: decl.Body}
	return &jsast.ExprStmt{Sp: decl.Sp, X: &jsast.Assign{
		Sp:     decl.Sp,
		Target: &jsast.Ident{Name: "g"},
		Op:     "=",
		Right:  fn,
	}}
}

// Package nmatch scans inner-block statements for the n-parameter
// throttling function and emits its thunk — spec §4.4. Two independent
// patterns are tried; either firing is sufficient.
package nmatch

import (
	"fmt"

	"github.com/elucid503/playerpp/v2/internal/jsast"
)

// Match inspects a single statement and returns a thunk if it matches
// either the array-wrapper pattern (A) or the try/catch fallback (B).
func Match(stmt jsast.Stmt) (thunk string, ok bool) {
	if name, ok := matchArrayWrapper(stmt); ok {
		return fmt.Sprintf("(n) => %s(n)", name), true
	}
	if name, ok := matchTryCatchFallback(stmt); ok {
		return fmt.Sprintf("(n) => %s(n)", name), true
	}
	return "", false
}

// matchArrayWrapper matches `var x = [ident];` (kind must be exactly "var")
// or `x = [ident];`.
func matchArrayWrapper(stmt jsast.Stmt) (string, bool) {
	switch s := stmt.(type) {
	case *jsast.VarDecl:
		if s.Kind != jsast.VarKindVar {
			return "", false
		}
		if len(s.Decls) != 1 {
			return "", false
		}
		return identInSingletonArray(s.Decls[0].Init)

	case *jsast.ExprStmt:
		assign, ok := s.X.(*jsast.Assign)
		if !ok || assign.Op != "=" {
			return "", false
		}
		if _, ok := assign.Target.(*jsast.Ident); !ok {
			return "", false
		}
		return identInSingletonArray(assign.Right)

	default:
		return "", false
	}
}

func identInSingletonArray(e jsast.Expr) (string, bool) {
	arr, ok := e.(*jsast.Array)
	if !ok || len(arr.Elems) != 1 {
		return "", false
	}
	ident, ok := arr.Elems[0].(*jsast.Ident)
	if !ok {
		return "", false
	}
	return ident.Name, true
}

// matchTryCatchFallback matches a one-parameter function (FnDecl or
// ExprStmt(Assign(=, Fn))) whose body's second-to-last statement is a
// TryStmt whose catch block contains exactly `return X[<number>] + Y`.
func matchTryCatchFallback(stmt jsast.Stmt) (string, bool) {
	var body []jsast.Stmt
	var name string

	switch s := stmt.(type) {
	case *jsast.FnDecl:
		if len(s.Params) != 1 || s.Body == nil {
			return "", false
		}
		body, name = s.Body.Body, s.Name

	case *jsast.ExprStmt:
		assign, ok := s.X.(*jsast.Assign)
		if !ok || assign.Op != "=" {
			return "", false
		}
		ident, ok := assign.Target.(*jsast.Ident)
		if !ok {
			return "", false
		}
		fn, ok := assign.Right.(*jsast.Fn)
		if !ok || len(fn.Params) != 1 || fn.Body == nil {
			return "", false
		}
		body, name = fn.Body.Body, ident.Name

	default:
		return "", false
	}

	if len(body) < 2 {
		return "", false
	}
	try, ok := body[len(body)-2].(*jsast.TryStmt)
	if !ok || try.CatchBody == nil {
		return "", false
	}
	if len(try.CatchBody.Body) != 1 {
		return "", false
	}
	ret, ok := try.CatchBody.Body[0].(*jsast.ReturnStmt)
	if !ok || ret.Arg == nil {
		return "", false
	}
	bin, ok := ret.Arg.(*jsast.Bin)
	if !ok || bin.Op != "+" {
		return "", false
	}
	member, ok := bin.Left.(*jsast.Member)
	if !ok || !member.Computed {
		return "", false
	}
	if _, ok := member.PropExpr.(*jsast.NumLit); !ok {
		return "", false
	}

	return name, true
}

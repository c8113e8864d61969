// Package sigmatch scans inner-block statements for the signature
// decryption function and emits the thunk that invokes it — spec §4.3.
package sigmatch

import (
	"fmt"
	"strconv"

	"github.com/elucid503/playerpp/v2/internal/jsast"
)

// Match inspects a single inner-block statement and, if it is a candidate
// definition of the sig routine, returns the thunk text that calls it with
// YouTube's calling convention. It returns ("", false) otherwise.
func Match(stmt jsast.Stmt) (thunk string, ok bool) {
	body, name, ok := hostFunction(stmt)
	if !ok {
		return "", false
	}
	_ = name // the thunk calls the callee discovered inside the gate, not the host's own name

	if len(body) < 2 {
		return "", false
	}
	gate := body[len(body)-2]

	callee, args, ok := matchGate(gate)
	if !ok {
		return "", false
	}

	switch {
	case len(args) == 1:
		return fmt.Sprintf("(sig) => %s(sig)", callee), true
	case len(args) >= 2:
		return fmt.Sprintf("(sig) => %s(%s, sig)", callee, literalText(args[0])), true
	default:
		return "", false
	}
}

// hostFunction recognizes the three accepted three-parameter host shapes:
// FnDecl, VarDecl-with-function-initializer, and ExprStmt(Assign(=, Fn)).
func hostFunction(stmt jsast.Stmt) (body []jsast.Stmt, name string, ok bool) {
	switch s := stmt.(type) {
	case *jsast.FnDecl:
		if len(s.Params) != 3 || s.Body == nil {
			return nil, "", false
		}
		return s.Body.Body, s.Name, true

	case *jsast.VarDecl:
		for _, d := range s.Decls {
			fn, ok := d.Init.(*jsast.Fn)
			if !ok || len(fn.Params) != 3 || fn.Body == nil {
				continue
			}
			return fn.Body.Body, d.Name, true
		}
		return nil, "", false

	case *jsast.ExprStmt:
		assign, ok := s.X.(*jsast.Assign)
		if !ok || assign.Op != "=" {
			return nil, "", false
		}
		target, ok := assign.Target.(*jsast.Ident)
		if !ok {
			return nil, "", false
		}
		fn, ok := assign.Right.(*jsast.Fn)
		if !ok || len(fn.Params) != 3 || fn.Body == nil {
			return nil, "", false
		}
		return fn.Body.Body, target.Name, true

	default:
		return nil, "", false
	}
}

// matchGate matches `identifier && (<assign>, ...)` where the assignment's
// right-hand side is a call with at least one argument that is itself a
// call to the bare identifier decodeURIComponent.
func matchGate(stmt jsast.Stmt) (callee string, args []jsast.Expr, ok bool) {
	es, ok := stmt.(*jsast.ExprStmt)
	if !ok {
		return "", nil, false
	}
	bin, ok := es.X.(*jsast.Bin)
	if !ok || bin.Op != "&&" {
		return "", nil, false
	}

	right := bin.Right
	if paren, ok := right.(*jsast.Paren); ok {
		right = paren.Inner
	}
	seq, ok := right.(*jsast.Seq)
	if !ok || len(seq.Exprs) == 0 {
		return "", nil, false
	}

	assign, ok := seq.Exprs[0].(*jsast.Assign)
	if !ok {
		return "", nil, false
	}
	call, ok := assign.Right.(*jsast.Call)
	if !ok {
		return "", nil, false
	}

	if !anyArgCallsDecodeURIComponent(call.Args) {
		return "", nil, false
	}

	ident, ok := call.Callee.(*jsast.Ident)
	if !ok {
		return "", nil, false
	}
	return ident.Name, call.Args, true
}

// anyArgCallsDecodeURIComponent requires decodeURIComponent to appear as the
// identifier callee of a nested call — a textual occurrence inside a string
// literal argument does not count.
func anyArgCallsDecodeURIComponent(args []jsast.Expr) bool {
	for _, a := range args {
		call, ok := a.(*jsast.Call)
		if !ok {
			continue
		}
		ident, ok := call.Callee.(*jsast.Ident)
		if ok && ident.Name == "decodeURIComponent" {
			return true
		}
	}
	return false
}

// literalText renders the first call argument per spec §4.3: number -> its
// decimal text, string -> a quoted string literal, identifier -> its name,
// anything else -> the literal null.
func literalText(e jsast.Expr) string {
	switch n := e.(type) {
	case *jsast.NumLit:
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	case *jsast.StrLit:
		return strconv.Quote(n.Value)
	case *jsast.Ident:
		return n.Name
	default:
		return "null"
	}
}

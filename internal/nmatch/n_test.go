package nmatch_test

import (
	"testing"

	"github.com/elucid503/playerpp/v2/internal/jsast"
	"github.com/elucid503/playerpp/v2/internal/nmatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchArrayWrapperVarDecl(t *testing.T) {
	stmt := &jsast.VarDecl{
		Kind:  jsast.VarKindVar,
		Decls: []*jsast.Declarator{{Name: "x", Init: &jsast.Array{Elems: []jsast.Expr{&jsast.Ident{Name: "foo"}}}}},
	}
	thunk, ok := nmatch.Match(stmt)
	require.True(t, ok)
	assert.Equal(t, "(n) => foo(n)", thunk)
}

func TestMatchArrayWrapperRejectsLetAndConst(t *testing.T) {
	for _, kind := range []jsast.VarKind{jsast.VarKindLet, jsast.VarKindConst} {
		stmt := &jsast.VarDecl{
			Kind:  kind,
			Decls: []*jsast.Declarator{{Name: "x", Init: &jsast.Array{Elems: []jsast.Expr{&jsast.Ident{Name: "foo"}}}}},
		}
		_, ok := nmatch.Match(stmt)
		assert.False(t, ok, "kind=%s", kind)
	}
}

func TestMatchArrayWrapperAssignExprStmt(t *testing.T) {
	stmt := &jsast.ExprStmt{X: &jsast.Assign{
		Target: &jsast.Ident{Name: "x"},
		Op:     "=",
		Right:  &jsast.Array{Elems: []jsast.Expr{&jsast.Ident{Name: "foo"}}},
	}}
	thunk, ok := nmatch.Match(stmt)
	require.True(t, ok)
	assert.Equal(t, "(n) => foo(n)", thunk)
}

func TestMatchArrayWrapperRejectsMultiElementArray(t *testing.T) {
	stmt := &jsast.VarDecl{
		Kind: jsast.VarKindVar,
		Decls: []*jsast.Declarator{{Name: "x", Init: &jsast.Array{Elems: []jsast.Expr{
			&jsast.Ident{Name: "foo"}, &jsast.Ident{Name: "bar"},
		}}}},
	}
	_, ok := nmatch.Match(stmt)
	assert.False(t, ok)
}

func tryCatchBody(retArg jsast.Expr) []jsast.Stmt {
	try := &jsast.TryStmt{
		Block:      &jsast.BlockStmt{},
		CatchParam: "e",
		CatchBody: &jsast.BlockStmt{Body: []jsast.Stmt{
			&jsast.ReturnStmt{Arg: retArg},
		}},
	}
	return []jsast.Stmt{try, &jsast.ReturnStmt{}}
}

func validCatchReturn() jsast.Expr {
	return &jsast.Bin{
		Op:   "+",
		Left: &jsast.Member{Obj: &jsast.Ident{Name: "a"}, Computed: true, PropExpr: &jsast.NumLit{Raw: "1", Value: 1}},
		Right: &jsast.Ident{Name: "b"},
	}
}

func TestMatchTryCatchFallbackFnDecl(t *testing.T) {
	fn := &jsast.FnDecl{Name: "nfn", Params: []string{"n"}, Body: &jsast.BlockStmt{Body: tryCatchBody(validCatchReturn())}}
	thunk, ok := nmatch.Match(fn)
	require.True(t, ok)
	assert.Equal(t, "(n) => nfn(n)", thunk)
}

func TestMatchTryCatchFallbackAssignExprStmt(t *testing.T) {
	stmt := &jsast.ExprStmt{X: &jsast.Assign{
		Target: &jsast.Ident{Name: "nfn"},
		Op:     "=",
		Right:  &jsast.Fn{Params: []string{"n"}, Body: &jsast.BlockStmt{Body: tryCatchBody(validCatchReturn())}},
	}}
	thunk, ok := nmatch.Match(stmt)
	require.True(t, ok)
	assert.Equal(t, "(n) => nfn(n)", thunk)
}

func TestMatchTryCatchFallbackRejectsWrongParamCount(t *testing.T) {
	fn := &jsast.FnDecl{Name: "nfn", Params: []string{"n", "extra"}, Body: &jsast.BlockStmt{Body: tryCatchBody(validCatchReturn())}}
	_, ok := nmatch.Match(fn)
	assert.False(t, ok)
}

func TestMatchTryCatchFallbackRejectsNonComputedMember(t *testing.T) {
	retArg := &jsast.Bin{
		Op:   "+",
		Left: &jsast.Member{Obj: &jsast.Ident{Name: "a"}, Computed: false, Prop: "length"},
		Right: &jsast.Ident{Name: "b"},
	}
	fn := &jsast.FnDecl{Name: "nfn", Params: []string{"n"}, Body: &jsast.BlockStmt{Body: tryCatchBody(retArg)}}
	_, ok := nmatch.Match(fn)
	assert.False(t, ok)
}

func TestMatchTryCatchFallbackRejectsNonNumericProp(t *testing.T) {
	retArg := &jsast.Bin{
		Op:   "+",
		Left: &jsast.Member{Obj: &jsast.Ident{Name: "a"}, Computed: true, PropExpr: &jsast.Ident{Name: "i"}},
		Right: &jsast.Ident{Name: "b"},
	}
	fn := &jsast.FnDecl{Name: "nfn", Params: []string{"n"}, Body: &jsast.BlockStmt{Body: tryCatchBody(retArg)}}
	_, ok := nmatch.Match(fn)
	assert.False(t, ok)
}

func TestMatchTryCatchFallbackRejectsWrongOperator(t *testing.T) {
	retArg := &jsast.Bin{
		Op:   "-",
		Left: &jsast.Member{Obj: &jsast.Ident{Name: "a"}, Computed: true, PropExpr: &jsast.NumLit{Raw: "1", Value: 1}},
		Right: &jsast.Ident{Name: "b"},
	}
	fn := &jsast.FnDecl{Name: "nfn", Params: []string{"n"}, Body: &jsast.BlockStmt{Body: tryCatchBody(retArg)}}
	_, ok := nmatch.Match(fn)
	assert.False(t, ok)
}

func TestMatchTryCatchFallbackRejectsNonGateSecondToLast(t *testing.T) {
	fn := &jsast.FnDecl{Name: "nfn", Params: []string{"n"}, Body: &jsast.BlockStmt{
		Body: []jsast.Stmt{&jsast.ExprStmt{X: &jsast.Ident{Name: "noop"}}, &jsast.ReturnStmt{}},
	}}
	_, ok := nmatch.Match(fn)
	assert.False(t, ok)
}

func TestMatchRejectsUnrelatedStatement(t *testing.T) {
	_, ok := nmatch.Match(&jsast.ExprStmt{X: &jsast.Ident{Name: "noop"}})
	assert.False(t, ok)
}

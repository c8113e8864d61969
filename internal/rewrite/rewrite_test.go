package rewrite_test

import (
	"testing"

	"github.com/elucid503/playerpp/v2/internal/jsast"
	"github.com/elucid503/playerpp/v2/internal/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThisOrSelfRewritesMatchingAssign(t *testing.T) {
	stmt := &jsast.ExprStmt{X: &jsast.Assign{
		Target: &jsast.Ident{Name: "window"},
		Op:     "=",
		Right:  &jsast.Bin{Op: "||", Left: &jsast.This{}, Right: &jsast.Ident{Name: "self"}},
	}}

	got := rewrite.ThisOrSelf(stmt)
	es, ok := got.(*jsast.ExprStmt)
	require.True(t, ok)
	assign, ok := es.X.(*jsast.Assign)
	require.True(t, ok)
	ident, ok := assign.Right.(*jsast.Ident)
	require.True(t, ok)
	assert.Equal(t, "self", ident.Name)
}

func TestThisOrSelfLeavesOtherOperatorsAlone(t *testing.T) {
	stmt := &jsast.ExprStmt{X: &jsast.Assign{
		Target: &jsast.Ident{Name: "window"},
		Op:     "=",
		Right:  &jsast.Bin{Op: "&&", Left: &jsast.This{}, Right: &jsast.Ident{Name: "self"}},
	}}
	assert.Same(t, jsast.Stmt(stmt), rewrite.ThisOrSelf(stmt))
}

func TestThisOrSelfRequiresLeftThis(t *testing.T) {
	stmt := &jsast.ExprStmt{X: &jsast.Assign{
		Target: &jsast.Ident{Name: "window"},
		Op:     "=",
		Right:  &jsast.Bin{Op: "||", Left: &jsast.Ident{Name: "globalThis"}, Right: &jsast.Ident{Name: "self"}},
	}}
	assert.Same(t, jsast.Stmt(stmt), rewrite.ThisOrSelf(stmt))
}

func TestThisOrSelfRequiresRightSelf(t *testing.T) {
	stmt := &jsast.ExprStmt{X: &jsast.Assign{
		Target: &jsast.Ident{Name: "window"},
		Op:     "=",
		Right:  &jsast.Bin{Op: "||", Left: &jsast.This{}, Right: &jsast.Ident{Name: "globalThis"}},
	}}
	assert.Same(t, jsast.Stmt(stmt), rewrite.ThisOrSelf(stmt))
}

func TestThisOrSelfIgnoresUnrelatedStatements(t *testing.T) {
	stmt := &jsast.ReturnStmt{}
	assert.Same(t, jsast.Stmt(stmt), rewrite.ThisOrSelf(stmt))
}

func TestGFunctionRewritesNamedGDeclaration(t *testing.T) {
	decl := &jsast.FnDecl{Name: "g", Params: []string{"a"}, Body: &jsast.BlockStmt{}}
	got := rewrite.GFunction(decl)

	es, ok := got.(*jsast.ExprStmt)
	require.True(t, ok)
	assign, ok := es.X.(*jsast.Assign)
	require.True(t, ok)
	assert.Equal(t, "=", assign.Op)
	ident, ok := assign.Target.(*jsast.Ident)
	require.True(t, ok)
	assert.Equal(t, "g", ident.Name)
	fn, ok := assign.Right.(*jsast.Fn)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, fn.Params)
	assert.Empty(t, fn.Name)
}

func TestGFunctionIgnoresOtherNames(t *testing.T) {
	decl := &jsast.FnDecl{Name: "h", Params: []string{"a"}, Body: &jsast.BlockStmt{}}
	assert.Same(t, jsast.Stmt(decl), rewrite.GFunction(decl))
}

func TestGFunctionIgnoresNonFnDecl(t *testing.T) {
	stmt := &jsast.ReturnStmt{}
	assert.Same(t, jsast.Stmt(stmt), rewrite.GFunction(stmt))
}

func TestStmtComposesBothRewrites(t *testing.T) {
	decl := &jsast.FnDecl{Name: "g", Params: nil, Body: &jsast.BlockStmt{}}
	got := rewrite.Stmt(decl)
	es, ok := got.(*jsast.ExprStmt)
	require.True(t, ok)
	_, ok = es.X.(*jsast.Assign)
	require.True(t, ok)
}

package jsast

import (
	"github.com/dop251/goja/ast"
)

// convertProgram walks a goja *ast.Program and builds the read-only facade
// over it. Shapes outside the set §4.1 enumerates degrade to Opaque* nodes
// carrying only their span; the emitter reproduces them from source.
func convertProgram(prog *ast.Program, source string) *Module {
	m := &Module{
		Sp:     spanOf(prog.Body),
		Source: source,
	}
	for _, s := range prog.Body {
		m.Body = append(m.Body, convertStmt(s, source))
	}
	return m
}

func spanOf(body []ast.Statement) Span {
	if len(body) == 0 {
		return Span{}
	}
	return Span{Start: int(body[0].Idx0()), End: int(body[len(body)-1].Idx1())}
}

func convertStmt(s ast.Statement, src string) Stmt {
	sp := Span{Start: int(s.Idx0()), End: int(s.Idx1())}

	switch n := s.(type) {
	case *ast.ExpressionStatement:
		return &ExprStmt{Sp: sp, X: convertExpr(n.Expression, src)}

	case *ast.VariableStatement:
		return &VarDecl{Sp: sp, Kind: VarKindVar, Decls: convertBindings(n.List, src)}

	case *ast.LexicalDeclaration:
		kind := VarKindLet
		if n.Token.String() == "const" {
			kind = VarKindConst
		}
		return &VarDecl{Sp: sp, Kind: kind, Decls: convertBindings(n.List, src)}

	case *ast.FunctionDeclaration:
		fn := n.Function
		name := ""
		if fn.Name != nil {
			name = string(fn.Name.Name)
		}
		return &FnDecl{
			Sp:     sp,
			Name:   name,
			Params: paramNames(fn.ParameterList),
			Body:   convertBlock(fn.Body, src),
		}

	case *ast.TryStatement:
		ts := &TryStmt{Sp: sp, Block: convertBlock(n.Body, src)}
		if n.Catch != nil {
			if id, ok := n.Catch.Parameter.(*ast.Identifier); ok && id != nil {
				ts.CatchParam = string(id.Name)
			}
			ts.CatchBody = convertBlock(n.Catch.Body, src)
		}
		if n.Finally != nil {
			ts.Finally = convertBlock(n.Finally, src)
		}
		return ts

	case *ast.ReturnStatement:
		var arg Expr
		if n.Argument != nil {
			arg = convertExpr(n.Argument, src)
		}
		return &ReturnStmt{Sp: sp, Arg: arg}

	case *ast.BlockStatement:
		return convertBlock(n, src)

	default:
		return &OpaqueStmt{Sp: sp}
	}
}

func convertBlock(b *ast.BlockStatement, src string) *BlockStmt {
	if b == nil {
		return &BlockStmt{}
	}
	blk := &BlockStmt{Sp: Span{Start: int(b.Idx0()), End: int(b.Idx1())}}
	for _, s := range b.List {
		blk.Body = append(blk.Body, convertStmt(s, src))
	}
	return blk
}

func convertBindings(list []*ast.Binding, src string) []*Declarator {
	out := make([]*Declarator, 0, len(list))
	for _, b := range list {
		d := &Declarator{Sp: Span{Start: int(b.Idx0()), End: int(b.Idx1())}}
		if id, ok := b.Target.(*ast.Identifier); ok && id != nil {
			d.Name = string(id.Name)
		}
		if b.Initializer != nil {
			d.Init = convertExpr(b.Initializer, src)
		}
		out = append(out, d)
	}
	return out
}

func paramNames(pl *ast.ParameterList) []string {
	if pl == nil {
		return nil
	}
	out := make([]string, 0, len(pl.List))
	for _, b := range pl.List {
		if id, ok := b.Target.(*ast.Identifier); ok && id != nil {
			out = append(out, string(id.Name))
		} else {
			out = append(out, "")
		}
	}
	return out
}

func convertExpr(e ast.Expression, src string) Expr {
	if e == nil {
		return nil
	}
	sp := Span{Start: int(e.Idx0()), End: int(e.Idx1())}

	switch n := e.(type) {
	case *ast.CallExpression:
		c := &Call{Sp: sp, Callee: convertExpr(n.Callee, src)}
		for _, a := range n.ArgumentList {
			c.Args = append(c.Args, convertExpr(a, src))
		}
		return c

	case *ast.DotExpression:
		return &Member{Sp: sp, Obj: convertExpr(n.Left, src), Computed: false, Prop: string(n.Identifier.Name)}

	case *ast.PrivateDotExpression:
		return &Member{Sp: sp, Obj: convertExpr(n.Left, src), Computed: false, Prop: string(n.Identifier.Name)}

	case *ast.BracketExpression:
		return &Member{Sp: sp, Obj: convertExpr(n.Left, src), Computed: true, PropExpr: convertExpr(n.Member, src)}

	case *ast.FunctionLiteral:
		name := ""
		if n.Name != nil {
			name = string(n.Name.Name)
		}
		return &Fn{Sp: sp, Name: name, Params: paramNames(n.ParameterList), Body: convertBlock(n.Body, src)}

	case *ast.ParenthesizedExpression:
		return &Paren{Sp: sp, Inner: convertExpr(n.Expr, src)}

	case *ast.AssignExpression:
		return &Assign{Sp: sp, Target: convertExpr(n.Left, src), Op: n.Operator.String(), Right: convertExpr(n.Right, src)}

	case *ast.BinaryExpression:
		return &Bin{Sp: sp, Op: n.Operator.String(), Left: convertExpr(n.Left, src), Right: convertExpr(n.Right, src)}

	case *ast.SequenceExpression:
		seq := &Seq{Sp: sp}
		for _, x := range n.Sequence {
			seq.Exprs = append(seq.Exprs, convertExpr(x, src))
		}
		return seq

	case *ast.ArrayLiteral:
		arr := &Array{Sp: sp}
		for _, x := range n.Value {
			arr.Elems = append(arr.Elems, convertExpr(x, src))
		}
		return arr

	case *ast.Identifier:
		return &Ident{Sp: sp, Name: string(n.Name)}

	case *ast.NumberLiteral:
		return &NumLit{Sp: sp, Raw: n.Literal, Value: n.Value}

	case *ast.StringLiteral:
		return &StrLit{Sp: sp, Raw: n.Literal, Value: string(n.Value)}

	case *ast.ThisExpression:
		return &This{Sp: sp}

	default:
		return &OpaqueExpr{Sp: sp}
	}
}

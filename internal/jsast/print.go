package jsast

import "strings"

// Print pretty-prints body (typically a rewritten inner block) back into a
// source string using default formatting. Recognized node shapes are
// re-serialized from their fields, so a node the rewriter produced fresh
// prints its new content even if it still carries a stale span; any
// Opaque* leaf — the bulk of a real player body, which this package never
// needed to understand — is reproduced verbatim by slicing src at its span.
func Print(body []Stmt, src string) string {
	var b strings.Builder
	for _, s := range body {
		printStmt(&b, s, src)
		b.WriteString("\n")
	}
	return b.String()
}

func slice(src string, sp Span) string {
	if sp.Start < 0 || sp.End > len(src) || sp.Start > sp.End {
		return ""
	}
	return src[sp.Start:sp.End]
}

func printStmt(b *strings.Builder, s Stmt, src string) {
	switch n := s.(type) {
	case *ExprStmt:
		printExpr(b, n.X, src)
		b.WriteString(";")

	case *VarDecl:
		b.WriteString(string(n.Kind))
		b.WriteString(" ")
		for i, d := range n.Decls {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(d.Name)
			if d.Init != nil {
				b.WriteString("=")
				printExpr(b, d.Init, src)
			}
		}
		b.WriteString(";")

	case *FnDecl:
		b.WriteString("function ")
		b.WriteString(n.Name)
		b.WriteString("(")
		b.WriteString(strings.Join(n.Params, ","))
		b.WriteString(")")
		printBlock(b, n.Body, src)

	case *TryStmt:
		b.WriteString("try")
		printBlock(b, n.Block, src)
		if n.CatchBody != nil {
			b.WriteString("catch(")
			b.WriteString(n.CatchParam)
			b.WriteString(")")
			printBlock(b, n.CatchBody, src)
		}
		if n.Finally != nil {
			b.WriteString("finally")
			printBlock(b, n.Finally, src)
		}

	case *ReturnStmt:
		b.WriteString("return")
		if n.Arg != nil {
			b.WriteString(" ")
			printExpr(b, n.Arg, src)
		}
		b.WriteString(";")

	case *BlockStmt:
		printBlock(b, n, src)

	case *OpaqueStmt:
		b.WriteString(slice(src, n.Sp))

	default:
		// Unreachable for nodes produced by this package.
	}
}

func printBlock(b *strings.Builder, blk *BlockStmt, src string) {
	b.WriteString("{")
	if blk != nil {
		for _, s := range blk.Body {
			printStmt(b, s, src)
		}
	}
	b.WriteString("}")
}

func printExpr(b *strings.Builder, e Expr, src string) {
	switch n := e.(type) {
	case *Call:
		printExpr(b, n.Callee, src)
		b.WriteString("(")
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(",")
			}
			printExpr(b, a, src)
		}
		b.WriteString(")")

	case *Member:
		printExpr(b, n.Obj, src)
		if n.Computed {
			b.WriteString("[")
			printExpr(b, n.PropExpr, src)
			b.WriteString("]")
		} else {
			b.WriteString(".")
			b.WriteString(n.Prop)
		}

	case *Fn:
		b.WriteString("function ")
		b.WriteString(n.Name)
		b.WriteString("(")
		b.WriteString(strings.Join(n.Params, ","))
		b.WriteString(")")
		printBlock(b, n.Body, src)

	case *Paren:
		b.WriteString("(")
		printExpr(b, n.Inner, src)
		b.WriteString(")")

	case *Assign:
		printExpr(b, n.Target, src)
		b.WriteString(n.Op)
		printExpr(b, n.Right, src)

	case *Bin:
		printExpr(b, n.Left, src)
		b.WriteString(n.Op)
		printExpr(b, n.Right, src)

	case *Seq:
		for i, x := range n.Exprs {
			if i > 0 {
				b.WriteString(",")
			}
			printExpr(b, x, src)
		}

	case *Array:
		b.WriteString("[")
		for i, x := range n.Elems {
			if i > 0 {
				b.WriteString(",")
			}
			printExpr(b, x, src)
		}
		b.WriteString("]")

	case *Ident:
		b.WriteString(n.Name)

	case *NumLit:
		b.WriteString(n.Raw)

	case *StrLit:
		b.WriteString(n.Raw)

	case *This:
		b.WriteString("this")

	case *OpaqueExpr:
		b.WriteString(slice(src, n.Sp))

	default:
		// Unreachable for nodes produced by this package.
	}
}

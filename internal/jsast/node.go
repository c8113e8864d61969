// Package jsast is a thin, read-only facade over an ECMAScript AST.
//
// It exposes only the node shapes the preprocessor's envelope extractor and
// sig/n matchers pattern-match on (see spec §4.1). Everything else in a
// player bundle — the bulk of it — round-trips as an opaque node carrying
// just its source span, so the emitter can reproduce it byte-for-byte
// without this package needing to understand it.
package jsast

// Span is a half-open byte range into the original source.
type Span struct {
	Start int
	End   int
}

// Node is the common interface for every facade type.
type Node interface {
	Span() Span
}

// Stmt is a statement-level node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression-level node.
type Expr interface {
	Node
	exprNode()
}

// VarKind distinguishes the three declaration keywords.
type VarKind string

const (
	VarKindVar   VarKind = "var"
	VarKindLet   VarKind = "let"
	VarKindConst VarKind = "const"
)

// Module is the parsed top-level program.
type Module struct {
	Sp     Span
	Body   []Stmt
	Source string // full original source, used for opaque pass-through printing
}

func (m *Module) Span() Span { return m.Sp }

// --- statements -------------------------------------------------------

type ExprStmt struct {
	Sp Span
	X  Expr
}

func (s *ExprStmt) Span() Span { return s.Sp }
func (*ExprStmt) stmtNode()    {}

// Declarator is one binding within a VarDecl, e.g. `x = 1` in `var x = 1, y`.
// Only simple identifier targets are modeled; minified player code never
// destructures a top-level declaration.
type Declarator struct {
	Sp   Span
	Name string
	Init Expr // nil if there is no initializer
}

type VarDecl struct {
	Sp    Span
	Kind  VarKind
	Decls []*Declarator
}

func (s *VarDecl) Span() Span { return s.Sp }
func (*VarDecl) stmtNode()    {}

type FnDecl struct {
	Sp     Span
	Name   string
	Params []string
	Body   *BlockStmt
}

func (s *FnDecl) Span() Span { return s.Sp }
func (*FnDecl) stmtNode()    {}

type TryStmt struct {
	Sp         Span
	Block      *BlockStmt
	CatchParam string // empty if the catch clause binds no parameter
	CatchBody  *BlockStmt
	Finally    *BlockStmt // nil if there is no finally block
}

func (s *TryStmt) Span() Span { return s.Sp }
func (*TryStmt) stmtNode()    {}

type ReturnStmt struct {
	Sp  Span
	Arg Expr // nil for a bare `return;`
}

func (s *ReturnStmt) Span() Span { return s.Sp }
func (*ReturnStmt) stmtNode()    {}

type BlockStmt struct {
	Sp   Span
	Body []Stmt
}

func (s *BlockStmt) Span() Span { return s.Sp }
func (*BlockStmt) stmtNode()    {}

// OpaqueStmt is any statement shape the facade does not model. It carries
// only its span; the emitter reproduces it by slicing the original source.
type OpaqueStmt struct {
	Sp Span
}

func (s *OpaqueStmt) Span() Span { return s.Sp }
func (*OpaqueStmt) stmtNode()    {}

// --- expressions --------------------------------------------------------

type Call struct {
	Sp     Span
	Callee Expr
	Args   []Expr
}

func (e *Call) Span() Span { return e.Sp }
func (*Call) exprNode()    {}

// Member models both `a.b` (Computed=false, Prop="b") and `a[b]`
// (Computed=true, PropExpr=<b>).
type Member struct {
	Sp       Span
	Obj      Expr
	Computed bool
	Prop     string // set when !Computed
	PropExpr Expr   // set when Computed
}

func (e *Member) Span() Span { return e.Sp }
func (*Member) exprNode()    {}

type Fn struct {
	Sp     Span
	Name   string // empty for an anonymous function expression
	Params []string
	Body   *BlockStmt
}

func (e *Fn) Span() Span { return e.Sp }
func (*Fn) exprNode()    {}

type Paren struct {
	Sp    Span
	Inner Expr
}

func (e *Paren) Span() Span { return e.Sp }
func (*Paren) exprNode()    {}

// Assign models target op= right, e.g. `a = b`, `a && (b = c, d)`'s inner `b = c`.
// Target is usually an *Ident in the shapes this package matches.
type Assign struct {
	Sp     Span
	Target Expr
	Op     string // "="  for every shape this package matches
	Right  Expr
}

func (e *Assign) Span() Span { return e.Sp }
func (*Assign) exprNode()    {}

type Bin struct {
	Sp    Span
	Op    string // "+", "||", "&&", ...
	Left  Expr
	Right Expr
}

func (e *Bin) Span() Span { return e.Sp }
func (*Bin) exprNode()    {}

type Seq struct {
	Sp    Span
	Exprs []Expr
}

func (e *Seq) Span() Span { return e.Sp }
func (*Seq) exprNode()    {}

type Array struct {
	Sp    Span
	Elems []Expr
}

func (e *Array) Span() Span { return e.Sp }
func (*Array) exprNode()    {}

type Ident struct {
	Sp   Span
	Name string
}

func (e *Ident) Span() Span { return e.Sp }
func (*Ident) exprNode()    {}

type NumLit struct {
	Sp    Span
	Raw   string
	Value float64
}

func (e *NumLit) Span() Span { return e.Sp }
func (*NumLit) exprNode()    {}

type StrLit struct {
	Sp    Span
	Raw   string // source text, including quotes
	Value string // decoded value
}

func (e *StrLit) Span() Span { return e.Sp }
func (*StrLit) exprNode()    {}

type This struct {
	Sp Span
}

func (e *This) Span() Span { return e.Sp }
func (*This) exprNode()    {}

// OpaqueExpr is any expression shape the facade does not model.
type OpaqueExpr struct {
	Sp Span
}

func (e *OpaqueExpr) Span() Span { return e.Sp }
func (*OpaqueExpr) exprNode()    {}

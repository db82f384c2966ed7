package ast

import "github.com/lumen-lang/lumen/pkg/token"

// Literal is a number, string, boolean, or null literal.
type Literal struct {
	base
	Kind  token.Type // NUMBER, STRING, TRUE, FALSE, or NULL
	Num   float64
	Str   string
}

func (*Literal) exprNode() {}

// ListLiteral is the empty list literal `[]`. The language has no other
// list literal syntax; non-empty lists are built via std::list.
type ListLiteral struct {
	base
}

func (*ListLiteral) exprNode() {}

// Variable is a bare identifier reference.
type Variable struct {
	base
	Name string
}

func (*Variable) exprNode() {}

// This is a `this` reference, valid only inside a method body.
type This struct {
	base
}

func (*This) exprNode() {}

// Super is a `super.method` reference.
type Super struct {
	base
	Method string
}

func (*Super) exprNode() {}

// Grouping is a parenthesized expression.
type Grouping struct {
	base
	Inner Expr
}

func (*Grouping) exprNode() {}

// Unary is a prefix `-` or `!` expression.
type Unary struct {
	base
	Op      token.Type
	Operand Expr
}

func (*Unary) exprNode() {}

// Binary is an infix arithmetic, comparison, or equality expression.
type Binary struct {
	base
	Op    token.Type
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}

// Logical is a short-circuiting `&&`/`||` expression.
type Logical struct {
	base
	Op    token.Type
	Left  Expr
	Right Expr
}

func (*Logical) exprNode() {}

// Assign is `name = value`.
type Assign struct {
	base
	Name  string
	Value Expr
}

func (*Assign) exprNode() {}

// Call is a function/method/class invocation: `callee(args...)`.
type Call struct {
	base
	Callee Expr
	Args   []Expr
}

func (*Call) exprNode() {}

// ModuleCall is a standard-library qualified call: `module::fn(args...)`.
type ModuleCall struct {
	base
	Module string
	Method string
	Args   []Expr
}

func (*ModuleCall) exprNode() {}

// ModuleProperty is a standard-library qualified constant read:
// `module::NAME`.
type ModuleProperty struct {
	base
	Module string
	Name   string
}

func (*ModuleProperty) exprNode() {}

// Get is an instance field or bound-method read: `obj.name`.
type Get struct {
	base
	Object Expr
	Name   string
}

func (*Get) exprNode() {}

// Set is an instance field write: `obj.name = value`.
type Set struct {
	base
	Object Expr
	Name   string
	Value  Expr
}

func (*Set) exprNode() {}

// FunctionExpr is an anonymous function literal: `fc(params){ body }`.
type FunctionExpr struct {
	base
	Params []string
	Body   []Stmt
}

func (*FunctionExpr) exprNode() {}

// NewLiteral builds a Literal node.
func NewLiteral(id int, pos token.Position, kind token.Type, num float64, str string) *Literal {
	return &Literal{base: base{id, pos}, Kind: kind, Num: num, Str: str}
}

// NewListLiteral builds a ListLiteral node.
func NewListLiteral(id int, pos token.Position) *ListLiteral {
	return &ListLiteral{base: base{id, pos}}
}

// NewVariable builds a Variable node.
func NewVariable(id int, pos token.Position, name string) *Variable {
	return &Variable{base: base{id, pos}, Name: name}
}

// NewThis builds a This node.
func NewThis(id int, pos token.Position) *This {
	return &This{base: base{id, pos}}
}

// NewSuper builds a Super node.
func NewSuper(id int, pos token.Position, method string) *Super {
	return &Super{base: base{id, pos}, Method: method}
}

// NewGrouping builds a Grouping node.
func NewGrouping(id int, pos token.Position, inner Expr) *Grouping {
	return &Grouping{base: base{id, pos}, Inner: inner}
}

// NewUnary builds a Unary node.
func NewUnary(id int, pos token.Position, op token.Type, operand Expr) *Unary {
	return &Unary{base: base{id, pos}, Op: op, Operand: operand}
}

// NewBinary builds a Binary node.
func NewBinary(id int, pos token.Position, op token.Type, left, right Expr) *Binary {
	return &Binary{base: base{id, pos}, Op: op, Left: left, Right: right}
}

// NewLogical builds a Logical node.
func NewLogical(id int, pos token.Position, op token.Type, left, right Expr) *Logical {
	return &Logical{base: base{id, pos}, Op: op, Left: left, Right: right}
}

// NewAssign builds an Assign node.
func NewAssign(id int, pos token.Position, name string, value Expr) *Assign {
	return &Assign{base: base{id, pos}, Name: name, Value: value}
}

// NewCall builds a Call node.
func NewCall(id int, pos token.Position, callee Expr, args []Expr) *Call {
	return &Call{base: base{id, pos}, Callee: callee, Args: args}
}

// NewModuleCall builds a ModuleCall node.
func NewModuleCall(id int, pos token.Position, module, method string, args []Expr) *ModuleCall {
	return &ModuleCall{base: base{id, pos}, Module: module, Method: method, Args: args}
}

// NewModuleProperty builds a ModuleProperty node.
func NewModuleProperty(id int, pos token.Position, module, name string) *ModuleProperty {
	return &ModuleProperty{base: base{id, pos}, Module: module, Name: name}
}

// NewGet builds a Get node.
func NewGet(id int, pos token.Position, object Expr, name string) *Get {
	return &Get{base: base{id, pos}, Object: object, Name: name}
}

// NewSet builds a Set node.
func NewSet(id int, pos token.Position, object Expr, name string, value Expr) *Set {
	return &Set{base: base{id, pos}, Object: object, Name: name, Value: value}
}

// NewFunctionExpr builds a FunctionExpr node.
func NewFunctionExpr(id int, pos token.Position, params []string, body []Stmt) *FunctionExpr {
	return &FunctionExpr{base: base{id, pos}, Params: params, Body: body}
}

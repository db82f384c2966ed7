// Package ast defines the Lumen expression and statement tree node types.
//
// Every node carries a unique, monotonically increasing ID assigned by the
// parser. The resolver keys its scope-distance map by this ID, and the
// interpreter consults that map during variable, this, and super lookups.
package ast

import "github.com/lumen-lang/lumen/pkg/token"

// Node is the base interface implemented by every expression and statement.
type Node interface {
	ID() int
	Pos() token.Position
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action.
type Stmt interface {
	Node
	stmtNode()
}

// base carries the fields common to every node: its unique id and source
// position. Embedded by every concrete node type.
type base struct {
	id  int
	pos token.Position
}

func (b base) ID() int            { return b.id }
func (b base) Pos() token.Position { return b.pos }

// IDGen assigns monotonically increasing node ids. The parser owns one
// instance per parse.
type IDGen struct {
	next int
}

// Next returns the next unused id.
func (g *IDGen) Next() int {
	g.next++
	return g.next
}

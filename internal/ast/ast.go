// Package ast defines the syntax tree produced by the parser.
//
// Nodes are plain structs behind the Node, Statement and Expression
// interfaces. A tree is owned by its root and is not modified after Parse
// returns it.
package ast

import (
	"strconv"
	"strings"
)

const (
	KindProgram              = "Program"
	KindBlockStatement       = "BlockStatement"
	KindEmptyStatement       = "EmptyStatement"
	KindVariableStatement    = "VariableStatement"
	KindVariableDeclaration  = "VariableDeclaration"
	KindExpressionStatement  = "ExpressionStatement"
	KindAssignmentExpression = "AssignmentExpression"
	KindBinaryExpression     = "BinaryExpression"
	KindIdentifier           = "Identifier"
	KindNumericLiteral       = "NumericLiteral"
	KindStringLiteral        = "StringLiteral"
)

type Node interface {
	// Type returns the node kind name, e.g. "BinaryExpression".
	Type() string
	// String renders the node as a compact s-expression.
	String() string
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Body []Statement
}

type BlockStatement struct {
	Body []Statement
}

type EmptyStatement struct{}

type VariableStatement struct {
	Declarations []*VariableDeclaration
}

// VariableDeclaration is a single `id [= init]` entry of a let statement.
// Init is nil when no initializer is given.
type VariableDeclaration struct {
	ID   *Identifier
	Init Expression
}

type ExpressionStatement struct {
	Expression Expression
}

type AssignmentExpression struct {
	Operator string
	Left     Expression
	Right    Expression
}

type BinaryExpression struct {
	Operator string
	Left     Expression
	Right    Expression
}

type Identifier struct {
	Name string
}

type NumericLiteral struct {
	Value float64
}

type StringLiteral struct {
	Value string
}

func (*Program) Type() string              { return KindProgram }
func (*BlockStatement) Type() string       { return KindBlockStatement }
func (*EmptyStatement) Type() string       { return KindEmptyStatement }
func (*VariableStatement) Type() string    { return KindVariableStatement }
func (*VariableDeclaration) Type() string  { return KindVariableDeclaration }
func (*ExpressionStatement) Type() string  { return KindExpressionStatement }
func (*AssignmentExpression) Type() string { return KindAssignmentExpression }
func (*BinaryExpression) Type() string     { return KindBinaryExpression }
func (*Identifier) Type() string           { return KindIdentifier }
func (*NumericLiteral) Type() string       { return KindNumericLiteral }
func (*StringLiteral) Type() string        { return KindStringLiteral }

func (*BlockStatement) statementNode()      {}
func (*EmptyStatement) statementNode()      {}
func (*VariableStatement) statementNode()   {}
func (*ExpressionStatement) statementNode() {}

func (*AssignmentExpression) expressionNode() {}
func (*BinaryExpression) expressionNode()     {}
func (*Identifier) expressionNode()           {}
func (*NumericLiteral) expressionNode()       {}
func (*StringLiteral) expressionNode()        {}

// String methods share one builder per call so rendering stays linear in
// the size of the tree.

func (n *Program) String() string              { return render(n) }
func (n *BlockStatement) String() string       { return render(n) }
func (n *EmptyStatement) String() string       { return render(n) }
func (n *VariableStatement) String() string    { return render(n) }
func (n *VariableDeclaration) String() string  { return render(n) }
func (n *ExpressionStatement) String() string  { return render(n) }
func (n *AssignmentExpression) String() string { return render(n) }
func (n *BinaryExpression) String() string     { return render(n) }
func (n *Identifier) String() string           { return render(n) }
func (n *NumericLiteral) String() string       { return render(n) }
func (n *StringLiteral) String() string        { return render(n) }

func render(n Node) string {
	var b strings.Builder
	sexpr(&b, n)
	return b.String()
}

func sexpr(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Program:
		b.WriteString("(program")
		statements(b, n.Body)
		b.WriteByte(')')
	case *BlockStatement:
		b.WriteString("(block")
		statements(b, n.Body)
		b.WriteByte(')')
	case *EmptyStatement:
		b.WriteString("(empty)")
	case *VariableStatement:
		b.WriteString("(let")
		for _, d := range n.Declarations {
			b.WriteByte(' ')
			sexpr(b, d)
		}
		b.WriteByte(')')
	case *VariableDeclaration:
		if n.Init == nil {
			sexpr(b, n.ID)
			return
		}
		b.WriteByte('(')
		sexpr(b, n.ID)
		b.WriteByte(' ')
		sexpr(b, n.Init)
		b.WriteByte(')')
	case *ExpressionStatement:
		b.WriteString("(expr ")
		sexpr(b, n.Expression)
		b.WriteByte(')')
	case *AssignmentExpression:
		operation(b, n.Operator, n.Left, n.Right)
	case *BinaryExpression:
		operation(b, n.Operator, n.Left, n.Right)
	case *Identifier:
		b.WriteString(n.Name)
	case *NumericLiteral:
		b.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
	case *StringLiteral:
		b.WriteString(strconv.Quote(n.Value))
	}
}

func operation(b *strings.Builder, op string, left, right Expression) {
	b.WriteByte('(')
	b.WriteString(op)
	b.WriteByte(' ')
	sexpr(b, left)
	b.WriteByte(' ')
	sexpr(b, right)
	b.WriteByte(')')
}

func statements(b *strings.Builder, body []Statement) {
	for _, s := range body {
		b.WriteByte(' ')
		sexpr(b, s)
	}
}

// Depth returns the number of nodes on the longest path from n down to a
// leaf. A nil node has depth 0.
func Depth(n Node) int {
	switch n := n.(type) {
	case *Program:
		return 1 + maxDepth(n.Body)
	case *BlockStatement:
		return 1 + maxDepth(n.Body)
	case *VariableStatement:
		d := 0
		for _, decl := range n.Declarations {
			d = max(d, Depth(decl))
		}
		return 1 + d
	case *VariableDeclaration:
		return 1 + max(Depth(n.ID), Depth(n.Init))
	case *ExpressionStatement:
		return 1 + Depth(n.Expression)
	case *AssignmentExpression:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	case *BinaryExpression:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	case nil:
		return 0
	default:
		return 1
	}
}

func maxDepth(body []Statement) int {
	d := 0
	for _, s := range body {
		d = max(d, Depth(s))
	}
	return d
}

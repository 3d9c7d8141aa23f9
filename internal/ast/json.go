package ast

import (
	"bytes"
	"encoding/json"
)

// Every node marshals as an object carrying a "type" discriminator. The
// whole subtree is written in one pass by encoder, so MarshalJSON on the
// root is the only call encoding/json makes for a tree.

func (n *Program) MarshalJSON() ([]byte, error)              { return marshal(n) }
func (n *BlockStatement) MarshalJSON() ([]byte, error)       { return marshal(n) }
func (n *EmptyStatement) MarshalJSON() ([]byte, error)       { return marshal(n) }
func (n *VariableStatement) MarshalJSON() ([]byte, error)    { return marshal(n) }
func (n *VariableDeclaration) MarshalJSON() ([]byte, error)  { return marshal(n) }
func (n *ExpressionStatement) MarshalJSON() ([]byte, error)  { return marshal(n) }
func (n *AssignmentExpression) MarshalJSON() ([]byte, error) { return marshal(n) }
func (n *BinaryExpression) MarshalJSON() ([]byte, error)     { return marshal(n) }
func (n *Identifier) MarshalJSON() ([]byte, error)           { return marshal(n) }
func (n *NumericLiteral) MarshalJSON() ([]byte, error)       { return marshal(n) }
func (n *StringLiteral) MarshalJSON() ([]byte, error)        { return marshal(n) }

func marshal(n Node) ([]byte, error) {
	e := &encoder{}
	e.node(n)
	if e.err != nil {
		return nil, e.err
	}
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf bytes.Buffer
	err error
}

func (e *encoder) node(n Node) {
	if e.err != nil {
		return
	}

	switch n := n.(type) {
	case *Program:
		e.open(n)
		e.key("body")
		e.statements(n.Body)
	case *BlockStatement:
		e.open(n)
		e.key("body")
		e.statements(n.Body)
	case *EmptyStatement:
		e.open(n)
	case *VariableStatement:
		e.open(n)
		e.key("declarations")
		e.buf.WriteByte('[')
		for i, d := range n.Declarations {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.node(d)
		}
		e.buf.WriteByte(']')
	case *VariableDeclaration:
		e.open(n)
		e.key("id")
		e.node(n.ID)
		e.key("init")
		e.node(n.Init)
	case *ExpressionStatement:
		e.open(n)
		e.key("expression")
		e.node(n.Expression)
	case *AssignmentExpression:
		e.open(n)
		e.binary(n.Operator, n.Left, n.Right)
	case *BinaryExpression:
		e.open(n)
		e.binary(n.Operator, n.Left, n.Right)
	case *Identifier:
		e.open(n)
		e.key("name")
		e.value(n.Name)
	case *NumericLiteral:
		e.open(n)
		e.key("value")
		e.value(n.Value)
	case *StringLiteral:
		e.open(n)
		e.key("value")
		e.value(n.Value)
	default:
		// absent child, e.g. a declaration without an initializer
		e.buf.WriteString("null")
		return
	}
	e.buf.WriteByte('}')
}

// open starts an object and writes its "type" member.
func (e *encoder) open(n Node) {
	e.buf.WriteString(`{"type":`)
	e.value(n.Type())
}

func (e *encoder) key(name string) {
	e.buf.WriteByte(',')
	e.value(name)
	e.buf.WriteByte(':')
}

func (e *encoder) binary(op string, left, right Expression) {
	e.key("operator")
	e.value(op)
	e.key("left")
	e.node(left)
	e.key("right")
	e.node(right)
}

func (e *encoder) statements(body []Statement) {
	e.buf.WriteByte('[')
	for i, s := range body {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.node(s)
	}
	e.buf.WriteByte(']')
}

// value encodes a leaf. Leaves never nest, so encoding/json stays linear here.
func (e *encoder) value(v any) {
	if e.err != nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		e.err = err
		return
	}
	e.buf.Write(data)
}

package token

import "fmt"

type Type int

const (
	EOF Type = iota
	NUMBER
	STRING
	IDENTIFIER
	SIMPLE_ASSIGN
	COMPLEX_ASSIGN
	ADDITIVE_OPERATOR
	MULTIPLICATIVE_OPERATOR
	SEMICOLON
	LBRACE
	RBRACE
	LPAREN
	RPAREN
	COMMA
	LET
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case IDENTIFIER:
		return "IDENTIFIER"
	case SIMPLE_ASSIGN:
		return "SIMPLE_ASSIGN"
	case COMPLEX_ASSIGN:
		return "COMPLEX_ASSIGN"
	case ADDITIVE_OPERATOR:
		return "ADDITIVE_OPERATOR"
	case MULTIPLICATIVE_OPERATOR:
		return "MULTIPLICATIVE_OPERATOR"
	case SEMICOLON:
		return ";"
	case LBRACE:
		return "{"
	case RBRACE:
		return "}"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case COMMA:
		return ","
	case LET:
		return "let"
	default:
		return "UNKNOWN"
	}
}

// Describe renders the type for error messages: punctuation and keywords are
// quoted, named kinds are not.
func (t Type) Describe() string {
	switch t {
	case SEMICOLON, LBRACE, RBRACE, LPAREN, RPAREN, COMMA, LET:
		return fmt.Sprintf("%q", t.String())
	default:
		return t.String()
	}
}

// Position locates a token in the source. Offset is in bytes, Line and Column start at 1.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with its type, literal value and position.
type Token struct {
	Type  Type
	Value string
	Pos   Position
}

// End returns the offset just past the token.
func (t Token) End() int {
	return t.Pos.Offset + len(t.Value)
}

package parser_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/letter-rdp/internal/apperr"
	"github.com/DjordjeVuckovic/letter-rdp/internal/ast"
	"github.com/DjordjeVuckovic/letter-rdp/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := parser.New().Parse(source)
	require.NoError(t, err, "parse %q", source)
	return program
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "empty source", source: "", want: "(program)"},
		{name: "only trivia", source: "  /* nothing */ // here\n", want: "(program)"},
		{name: "numeric literal", source: "42;", want: "(program (expr 42))"},
		{name: "double quoted string", source: `"hello";`, want: `(program (expr "hello"))`},
		{name: "single quoted string", source: `'hello';`, want: `(program (expr "hello"))`},
		{name: "empty string", source: `"";`, want: `(program (expr ""))`},
		{name: "identifier", source: "x;", want: "(program (expr x))"},
		{name: "statement list", source: "1; 'two'; three;", want: `(program (expr 1) (expr "two") (expr three))`},
		{name: "empty statement", source: ";", want: "(program (empty))"},
		{name: "empty block", source: "{}", want: "(program (block))"},
		{name: "nested blocks", source: "{ 1; { 2; } }", want: "(program (block (expr 1) (block (expr 2))))"},
		{name: "block followed by statements", source: "{ a; } b; {}", want: "(program (block (expr a)) (expr b) (block))"},
		{name: "left associative subtraction", source: "2 - 3 - 4;", want: "(program (expr (- (- 2 3) 4)))"},
		{name: "left associative division", source: "8 / 4 * 2;", want: "(program (expr (* (/ 8 4) 2)))"},
		{name: "multiplication binds tighter", source: "2 + 3 * 4;", want: "(program (expr (+ 2 (* 3 4))))"},
		{name: "parentheses override precedence", source: "(2 + 3) * 4;", want: "(program (expr (* (+ 2 3) 4)))"},
		{name: "parentheses add no node", source: "((x));", want: "(program (expr x))"},
		{name: "simple assignment", source: "x = 1;", want: "(program (expr (= x 1)))"},
		{name: "right associative assignment", source: "x = y = 1;", want: "(program (expr (= x (= y 1))))"},
		{name: "complex assignment", source: "x += y * 2;", want: "(program (expr (+= x (* y 2))))"},
		{name: "mixed assignment chain", source: "a -= b /= c;", want: "(program (expr (-= a (/= b c))))"},
		{name: "parenthesized target", source: "(x) = 1;", want: "(program (expr (= x 1)))"},
		{name: "let without initializer", source: "let x;", want: "(program (let x))"},
		{name: "let with initializer", source: "let y = 42;", want: "(program (let (y 42)))"},
		{name: "let declaration list", source: "let a, b = 2, c = d = 3;", want: "(program (let a (b 2) (c (= d 3))))"},
		{name: "let inside block", source: "{ let x = 'a' + 'b'; x; }", want: `(program (block (let (x (+ "a" "b"))) (expr x)))`},
		{name: "comments between tokens", source: "x /* c */ = // c\n 1;", want: "(program (expr (= x 1)))"},
	}

	p := parser.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := p.Parse(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, program.String())
		})
	}
}

func TestParser_NodeShapes(t *testing.T) {
	t.Run("left associativity builds nested binary expressions", func(t *testing.T) {
		program := mustParse(t, "2 - 3 - 4;")
		require.Len(t, program.Body, 1)

		stmt, ok := program.Body[0].(*ast.ExpressionStatement)
		require.True(t, ok)

		outer, ok := stmt.Expression.(*ast.BinaryExpression)
		require.True(t, ok)
		assert.Equal(t, "-", outer.Operator)
		assert.Equal(t, &ast.NumericLiteral{Value: 4}, outer.Right)

		inner, ok := outer.Left.(*ast.BinaryExpression)
		require.True(t, ok)
		assert.Equal(t, &ast.BinaryExpression{
			Operator: "-",
			Left:     &ast.NumericLiteral{Value: 2},
			Right:    &ast.NumericLiteral{Value: 3},
		}, inner)
	})

	t.Run("empty block has a non-nil body", func(t *testing.T) {
		program := mustParse(t, "{}")
		block, ok := program.Body[0].(*ast.BlockStatement)
		require.True(t, ok)
		assert.NotNil(t, block.Body)
		assert.Empty(t, block.Body)
	})

	t.Run("string literal drops quotes", func(t *testing.T) {
		program := mustParse(t, `'say "hi"';`)
		stmt := program.Body[0].(*ast.ExpressionStatement)
		assert.Equal(t, &ast.StringLiteral{Value: `say "hi"`}, stmt.Expression)
	})

	t.Run("declaration without initializer has nil init", func(t *testing.T) {
		program := mustParse(t, "let x;")
		stmt := program.Body[0].(*ast.VariableStatement)
		require.Len(t, stmt.Declarations, 1)
		assert.Equal(t, "x", stmt.Declarations[0].ID.Name)
		assert.Nil(t, stmt.Declarations[0].Init)
	})
}

func TestParser_Deterministic(t *testing.T) {
	source := "let a = 1, b; { a += (b - 2) * 'x'; ; } c = d = e / f;"
	p := parser.New()

	first, err := p.Parse(source)
	require.NoError(t, err)
	second, err := p.Parse(source)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestParser_ReuseAfterError(t *testing.T) {
	p := parser.New()

	_, err := p.Parse("1 +")
	require.Error(t, err)

	program, err := p.Parse("1 + 2;")
	require.NoError(t, err)
	assert.Equal(t, "(program (expr (+ 1 2)))", program.String())
}

func TestParser_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		sentinel error
		expected string
		found    string
		line     int
		column   int
	}{
		{
			name:     "invalid assignment target literal",
			source:   "2 = 3;",
			sentinel: apperr.ErrInvalidAssignmentTarget,
			found:    "SIMPLE_ASSIGN",
			line:     1,
			column:   3,
		},
		{
			name:     "invalid assignment target binary",
			source:   "a + b += 1;",
			sentinel: apperr.ErrInvalidAssignmentTarget,
			found:    "COMPLEX_ASSIGN",
			line:     1,
			column:   7,
		},
		{
			name:     "missing operand at end of input",
			source:   "2 +",
			sentinel: apperr.ErrUnexpectedEOF,
			expected: `NUMBER, STRING, IDENTIFIER or "("`,
			found:    "EOF",
			line:     1,
			column:   4,
		},
		{
			name:     "missing semicolon",
			source:   "2 + 3",
			sentinel: apperr.ErrUnexpectedEOF,
			expected: `";"`,
			found:    "EOF",
			line:     1,
			column:   6,
		},
		{
			name:     "unclosed block",
			source:   "{ 1;",
			sentinel: apperr.ErrUnexpectedEOF,
			expected: `"}"`,
			found:    "EOF",
			line:     1,
			column:   5,
		},
		{
			name:     "unclosed parenthesis",
			source:   "(1 + 2;",
			sentinel: apperr.ErrUnexpectedToken,
			expected: `")"`,
			found:    ";",
			line:     1,
			column:   7,
		},
		{
			name:     "stray closing brace",
			source:   "}",
			sentinel: apperr.ErrUnexpectedToken,
			expected: `NUMBER, STRING, IDENTIFIER or "("`,
			found:    "}",
			line:     1,
			column:   1,
		},
		{
			name:     "let requires an identifier",
			source:   "let 1;",
			sentinel: apperr.ErrUnexpectedToken,
			expected: "IDENTIFIER",
			found:    "NUMBER",
			line:     1,
			column:   5,
		},
		{
			name:     "let initializer uses simple assign only",
			source:   "let x += 1;",
			sentinel: apperr.ErrUnexpectedToken,
			expected: `";"`,
			found:    "COMPLEX_ASSIGN",
			line:     1,
			column:   7,
		},
		{
			name:     "trailing comma in declaration list",
			source:   "let a, ;",
			sentinel: apperr.ErrUnexpectedToken,
			expected: "IDENTIFIER",
			found:    ";",
			line:     1,
			column:   8,
		},
		{
			name:     "error on later line",
			source:   "x = 1;\ny = ;",
			sentinel: apperr.ErrUnexpectedToken,
			expected: `NUMBER, STRING, IDENTIFIER or "("`,
			found:    ";",
			line:     2,
			column:   5,
		},
	}

	p := parser.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := p.Parse(tt.source)
			require.Error(t, err)
			assert.Nil(t, program)
			assert.ErrorIs(t, err, tt.sentinel)

			var synErr *apperr.SyntaxError
			require.ErrorAs(t, err, &synErr)
			assert.Equal(t, tt.expected, synErr.Expected)
			assert.Equal(t, tt.found, synErr.Found)
			assert.Equal(t, tt.line, synErr.Line)
			assert.Equal(t, tt.column, synErr.Column)
		})
	}
}

func TestParser_InvalidAssignmentMessage(t *testing.T) {
	_, err := parser.New().Parse("2 = 3;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid left-hand side in assignment")
}

func TestParser_NumberOutOfRange(t *testing.T) {
	digits := make([]byte, 400)
	for i := range digits {
		digits[i] = '9'
	}

	_, err := parser.New().Parse(string(digits) + ";")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidNumber)
}

func TestParser_LexicalErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		char   rune
		offset int
	}{
		{name: "unterminated string", source: `x = "abc;`, char: '"', offset: 4},
		{name: "unknown character", source: "x = 1 # 2;", char: '#', offset: 6},
		{name: "unknown first character", source: "@", char: '@', offset: 0},
	}

	p := parser.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := p.Parse(tt.source)
			require.Error(t, err)
			assert.Nil(t, program)

			var lexErr *apperr.LexicalError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.char, lexErr.Char)
			assert.Equal(t, tt.offset, lexErr.Offset)

			var synErr *apperr.SyntaxError
			assert.NotErrorAs(t, err, &synErr)
		})
	}
}

func TestParser_NestingLimit(t *testing.T) {
	n := parser.MaxDepth

	tests := []struct {
		name   string
		source string
		column int
	}{
		{
			name:   "assignment chain",
			source: strings.Repeat("x=", n+1) + "1;",
			column: 2*n + 3,
		},
		{
			name:   "parentheses",
			source: strings.Repeat("(", n+1) + "1" + strings.Repeat(")", n+1) + ";",
			column: n + 1,
		},
		{
			name:   "blocks",
			source: strings.Repeat("{", n+1) + strings.Repeat("}", n+1),
			column: n + 1,
		},
		{
			name:   "left associative chain",
			source: strings.Repeat("1+", n) + "1;",
			column: 1,
		},
		{
			name:   "chain inside blocks",
			source: strings.Repeat("{", 10) + strings.Repeat("1*", n-10) + "1;" + strings.Repeat("}", 10),
			column: 11,
		},
		{
			name:   "declaration initializer",
			source: "let a = " + strings.Repeat("a-", n) + "a;",
			column: 9,
		},
	}

	p := parser.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := p.Parse(tt.source)
			require.Error(t, err)
			assert.Nil(t, program)
			assert.ErrorIs(t, err, apperr.ErrNestingTooDeep)

			var synErr *apperr.SyntaxError
			require.ErrorAs(t, err, &synErr)
			assert.Equal(t, 1, synErr.Line)
			assert.Equal(t, tt.column, synErr.Column)
		})
	}
}

func TestParser_NestingAtLimit(t *testing.T) {
	n := parser.MaxDepth

	sources := []string{
		strings.Repeat("x=", n-1) + "1;",
		strings.Repeat("1+", n-1) + "1;",
		strings.Repeat("(", n) + "1" + strings.Repeat(")", n) + ";",
	}

	p := parser.New()

	for _, source := range sources {
		program, err := p.Parse(source)
		require.NoError(t, err)

		data, err := json.Marshal(program)
		require.NoError(t, err)
		assert.True(t, json.Valid(data))
	}

	// the counter is reset between parses
	_, err := p.Parse(strings.Repeat("x=", n+1) + "1;")
	require.ErrorIs(t, err, apperr.ErrNestingTooDeep)
	program, err := p.Parse("{ x = y = 1; }")
	require.NoError(t, err)
	assert.Equal(t, "(program (block (expr (= x (= y 1)))))", program.String())
}

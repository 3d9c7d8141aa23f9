package parser

import (
	"fmt"
	"strconv"

	"github.com/DjordjeVuckovic/letter-rdp/internal/apperr"
	"github.com/DjordjeVuckovic/letter-rdp/internal/ast"
	"github.com/DjordjeVuckovic/letter-rdp/internal/token"
)

// MaxDepth bounds how deeply a program may nest: blocks, parentheses and
// assignment chains while parsing, and the height of each expression tree
// on top of the enclosing blocks.
const MaxDepth = 1000

// Parser is a predictive recursive-descent parser with one token of
// lookahead. A Parser may be reused for sequential parses but must not be
// shared between goroutines.
type Parser struct {
	tokenizer token.Stream
	lookahead token.Token
	depth     int
}

func New() *Parser {
	return NewWithTokenizer(token.NewRuleTokenizer())
}

func NewWithTokenizer(tokenizer token.Stream) *Parser {
	return &Parser{tokenizer: tokenizer}
}

// Parse parses source into a Program. The first lexical or syntax error
// aborts the parse and no partial tree is returned.
func (p *Parser) Parse(source string) (*ast.Program, error) {
	p.tokenizer.Init(source)
	p.lookahead = token.Token{}
	p.depth = 0

	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.program()
}

// Program
//
//	: StatementList
//	;
func (p *Parser) program() (*ast.Program, error) {
	body := []ast.Statement{}
	if p.lookahead.Type != token.EOF {
		var err error
		body, err = p.statementList(token.EOF)
		if err != nil {
			return nil, err
		}
	}
	return &ast.Program{Body: body}, nil
}

// StatementList
//
//	: Statement
//	| StatementList Statement
//	;
//
// Iteration stops at EOF or at the stop token, which is left unconsumed.
func (p *Parser) statementList(stop token.Type) ([]ast.Statement, error) {
	first, err := p.statement()
	if err != nil {
		return nil, err
	}
	list := []ast.Statement{first}

	for p.lookahead.Type != token.EOF && p.lookahead.Type != stop {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		list = append(list, stmt)
	}
	return list, nil
}

// Statement
//
//	: ExpressionStatement
//	| BlockStatement
//	| EmptyStatement
//	| VariableStatement
//	;
func (p *Parser) statement() (ast.Statement, error) {
	switch p.lookahead.Type {
	case token.SEMICOLON:
		return p.emptyStatement()
	case token.LBRACE:
		return p.blockStatement()
	case token.LET:
		return p.variableStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) emptyStatement() (*ast.EmptyStatement, error) {
	if _, err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.EmptyStatement{}, nil
}

// BlockStatement
//
//	: '{' OptStatementList '}'
//	;
func (p *Parser) blockStatement() (*ast.BlockStatement, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if _, err := p.eat(token.LBRACE); err != nil {
		return nil, err
	}

	body := []ast.Statement{}
	if p.lookahead.Type != token.RBRACE {
		var err error
		body, err = p.statementList(token.RBRACE)
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.BlockStatement{Body: body}, nil
}

// VariableStatement
//
//	: 'let' VariableDeclarationList ';'
//	;
func (p *Parser) variableStatement() (*ast.VariableStatement, error) {
	if _, err := p.eat(token.LET); err != nil {
		return nil, err
	}

	declarations, err := p.variableDeclarationList()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.VariableStatement{Declarations: declarations}, nil
}

// VariableDeclarationList
//
//	: VariableDeclaration
//	| VariableDeclarationList ',' VariableDeclaration
//	;
func (p *Parser) variableDeclarationList() ([]*ast.VariableDeclaration, error) {
	var declarations []*ast.VariableDeclaration
	for {
		decl, err := p.variableDeclaration()
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, decl)

		if p.lookahead.Type != token.COMMA {
			return declarations, nil
		}
		if _, err := p.eat(token.COMMA); err != nil {
			return nil, err
		}
	}
}

// VariableDeclaration
//
//	: Identifier OptVariableInitializer
//	;
func (p *Parser) variableDeclaration() (*ast.VariableDeclaration, error) {
	id, err := p.identifier()
	if err != nil {
		return nil, err
	}

	decl := &ast.VariableDeclaration{ID: id}
	if p.lookahead.Type != token.SIMPLE_ASSIGN {
		return decl, nil
	}

	if _, err := p.eat(token.SIMPLE_ASSIGN); err != nil {
		return nil, err
	}
	decl.Init, err = p.boundedExpression(p.assignmentExpression)
	if err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) expressionStatement() (*ast.ExpressionStatement, error) {
	expr, err := p.boundedExpression(p.expression)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr}, nil
}

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignmentExpression()
}

// boundedExpression parses a top-level expression and rejects it when its
// tree, stacked under the enclosing blocks, is taller than MaxDepth. Left
// associative chains grow the tree without recursing, so they are only
// caught here.
func (p *Parser) boundedExpression(parse func() (ast.Expression, error)) (ast.Expression, error) {
	start := p.lookahead
	expr, err := parse()
	if err != nil {
		return nil, err
	}
	if p.depth+ast.Depth(expr) > MaxDepth {
		return nil, errorAt(start, fmt.Sprintf("expression nests deeper than %d levels", MaxDepth), "", apperr.ErrNestingTooDeep)
	}
	return expr, nil
}

// AssignmentExpression
//
//	: AdditiveExpression
//	| LeftHandSideExpression AssignmentOperator AssignmentExpression
//	;
func (p *Parser) assignmentExpression() (ast.Expression, error) {
	left, err := p.additiveExpression()
	if err != nil {
		return nil, err
	}

	if !isAssignmentOperator(p.lookahead.Type) {
		return left, nil
	}

	// reported at the operator
	if _, ok := left.(*ast.Identifier); !ok {
		return nil, errorAt(p.lookahead, "Invalid left-hand side in assignment", "", apperr.ErrInvalidAssignmentTarget)
	}

	op, err := p.eat(p.lookahead.Type)
	if err != nil {
		return nil, err
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	right, err := p.assignmentExpression()
	if err != nil {
		return nil, err
	}

	return &ast.AssignmentExpression{
		Operator: op.Value,
		Left:     left,
		Right:    right,
	}, nil
}

func isAssignmentOperator(t token.Type) bool {
	return t == token.SIMPLE_ASSIGN || t == token.COMPLEX_ASSIGN
}

func (p *Parser) additiveExpression() (ast.Expression, error) {
	return p.binaryExpression(p.multiplicativeExpression, token.ADDITIVE_OPERATOR)
}

func (p *Parser) multiplicativeExpression() (ast.Expression, error) {
	return p.binaryExpression(p.primaryExpression, token.MULTIPLICATIVE_OPERATOR)
}

// binaryExpression parses a left-associative chain `next (op next)*`,
// folding the result so far into the left operand of each new node.
func (p *Parser) binaryExpression(next func() (ast.Expression, error), op token.Type) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for p.lookahead.Type == op {
		operator, err := p.eat(op)
		if err != nil {
			return nil, err
		}

		right, err := next()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpression{
			Operator: operator.Value,
			Left:     left,
			Right:    right,
		}
	}

	return left, nil
}

// PrimaryExpression
//
//	: Literal
//	| ParenthesizedExpression
//	| LeftHandSideExpression
//	;
func (p *Parser) primaryExpression() (ast.Expression, error) {
	switch p.lookahead.Type {
	case token.NUMBER, token.STRING:
		return p.literal()
	case token.LPAREN:
		return p.parenthesizedExpression()
	case token.IDENTIFIER:
		return p.leftHandSideExpression()
	default:
		return nil, p.unexpected(`NUMBER, STRING, IDENTIFIER or "("`)
	}
}

func (p *Parser) parenthesizedExpression() (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) leftHandSideExpression() (ast.Expression, error) {
	return p.identifier()
}

func (p *Parser) identifier() (*ast.Identifier, error) {
	tok, err := p.eat(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{Name: tok.Value}, nil
}

// Literal
//
//	: NumericLiteral
//	| StringLiteral
//	;
func (p *Parser) literal() (ast.Expression, error) {
	switch p.lookahead.Type {
	case token.NUMBER:
		return p.numericLiteral()
	case token.STRING:
		return p.stringLiteral()
	default:
		return nil, p.unexpected("NUMBER or STRING")
	}
}

func (p *Parser) numericLiteral() (*ast.NumericLiteral, error) {
	tok, err := p.eat(token.NUMBER)
	if err != nil {
		return nil, err
	}

	value, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return nil, errorAt(tok, fmt.Sprintf("numeric literal %s is out of range", tok.Value), "", apperr.ErrInvalidNumber)
	}
	return &ast.NumericLiteral{Value: value}, nil
}

func (p *Parser) stringLiteral() (*ast.StringLiteral, error) {
	tok, err := p.eat(token.STRING)
	if err != nil {
		return nil, err
	}
	return &ast.StringLiteral{Value: tok.Value[1 : len(tok.Value)-1]}, nil
}

// eat consumes the lookahead if it has the expected type and pulls the next
// token from the tokenizer.
func (p *Parser) eat(expected token.Type) (token.Token, error) {
	tok := p.lookahead
	if tok.Type != expected {
		return token.Token{}, p.unexpected(expected.Describe())
	}

	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

func (p *Parser) advance() error {
	next, err := p.tokenizer.GetNextToken()
	if err != nil {
		return err
	}
	p.lookahead = next
	return nil
}

// enter descends one nesting level. On failure the parse is aborted, and
// Parse resets the counter, so callers only pair leave with a successful
// enter.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return errorAt(p.lookahead, fmt.Sprintf("nesting exceeds %d levels", MaxDepth), "", apperr.ErrNestingTooDeep)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) unexpected(expected string) error {
	tok := p.lookahead
	if tok.Type == token.EOF {
		return errorAt(tok, "unexpected end of input", expected, apperr.ErrUnexpectedEOF)
	}
	return errorAt(tok, fmt.Sprintf("unexpected token %q", tok.Value), expected, apperr.ErrUnexpectedToken)
}

func errorAt(tok token.Token, msg, expected string, sentinel error) *apperr.SyntaxError {
	return &apperr.SyntaxError{
		Message:  msg,
		Expected: expected,
		Found:    tok.Type.String(),
		Offset:   tok.Pos.Offset,
		Line:     tok.Pos.Line,
		Column:   tok.Pos.Column,
		Err:      sentinel,
	}
}

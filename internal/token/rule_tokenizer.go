package token

import (
	"regexp"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/letter-rdp/internal/apperr"
)

type rule struct {
	re   *regexp.Regexp
	typ  Type
	skip bool
}

// rules is evaluated top to bottom and the first match wins, so the order is
// part of the language: skip rules must come before the operators they
// overlap with, COMPLEX_ASSIGN before ADDITIVE_OPERATOR, and so on.
var rules = []rule{
	// ASCII whitespace, \v, Unicode space separators, BOM and the line and
	// paragraph separators.
	{re: regexp.MustCompile(`^[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]+`), skip: true},
	{re: regexp.MustCompile(`^//.*`), skip: true},
	{re: regexp.MustCompile(`^/\*[\s\S]*?\*/`), skip: true},

	{re: regexp.MustCompile(`^;`), typ: SEMICOLON},
	{re: regexp.MustCompile(`^\{`), typ: LBRACE},
	{re: regexp.MustCompile(`^\}`), typ: RBRACE},
	{re: regexp.MustCompile(`^\(`), typ: LPAREN},
	{re: regexp.MustCompile(`^\)`), typ: RPAREN},
	{re: regexp.MustCompile(`^,`), typ: COMMA},

	{re: regexp.MustCompile(`^let\b`), typ: LET},

	{re: regexp.MustCompile(`^\d+`), typ: NUMBER},
	{re: regexp.MustCompile(`^[A-Za-z_]\w*`), typ: IDENTIFIER},

	{re: regexp.MustCompile(`^=`), typ: SIMPLE_ASSIGN},
	{re: regexp.MustCompile(`^[*/+\-]=`), typ: COMPLEX_ASSIGN},

	{re: regexp.MustCompile(`^[+\-]`), typ: ADDITIVE_OPERATOR},
	{re: regexp.MustCompile(`^[*/]`), typ: MULTIPLICATIVE_OPERATOR},

	{re: regexp.MustCompile(`^"[^"]*"`), typ: STRING},
	{re: regexp.MustCompile(`^'[^']*'`), typ: STRING},
}

// RuleTokenizer turns a source string into tokens on demand using the
// ordered rule table. It is not safe for concurrent use; Init may be called
// again to reuse it for another source.
type RuleTokenizer struct {
	source string
	cursor int
	line   int
	column int
}

func NewRuleTokenizer() *RuleTokenizer {
	return &RuleTokenizer{line: 1, column: 1}
}

func (t *RuleTokenizer) Init(source string) {
	t.source = source
	t.cursor = 0
	t.line = 1
	t.column = 1
}

func (t *RuleTokenizer) HasMoreTokens() bool {
	return t.cursor < len(t.source)
}

func (t *RuleTokenizer) IsEOF() bool {
	return t.cursor == len(t.source)
}

// GetNextToken returns the next token, or an EOF token once the input is
// exhausted. Whitespace and comments are consumed silently.
func (t *RuleTokenizer) GetNextToken() (Token, error) {
	for t.HasMoreTokens() {
		rest := t.source[t.cursor:]

		r, value, ok := match(rest)
		if !ok {
			ch, _ := utf8.DecodeRuneInString(rest)
			return Token{}, &apperr.LexicalError{
				Char:   ch,
				Offset: t.cursor,
				Line:   t.line,
				Column: t.column,
			}
		}

		pos := t.position()
		t.advance(value)
		if r.skip {
			continue
		}
		return Token{Type: r.typ, Value: value, Pos: pos}, nil
	}

	return Token{Type: EOF, Pos: t.position()}, nil
}

// Tokenize drains input into a slice terminated by an EOF token.
func (t *RuleTokenizer) Tokenize(input string) ([]Token, error) {
	t.Init(input)

	var tokens []Token
	for {
		tok, err := t.GetNextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

func match(rest string) (rule, string, bool) {
	for _, r := range rules {
		loc := r.re.FindStringIndex(rest)
		if loc == nil || loc[1] == 0 {
			continue
		}
		return r, rest[:loc[1]], true
	}
	return rule{}, "", false
}

func (t *RuleTokenizer) position() Position {
	return Position{Offset: t.cursor, Line: t.line, Column: t.column}
}

func (t *RuleTokenizer) advance(value string) {
	for _, ch := range value {
		if ch == '\n' {
			t.line++
			t.column = 1
		} else {
			t.column++
		}
	}
	t.cursor += len(value)
}

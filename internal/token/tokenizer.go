package token

// Tokenizer interface defines the method for tokenizing input strings.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}

// Stream is a pull-based token source used by the parser.
type Stream interface {
	Init(source string)
	GetNextToken() (Token, error)
}

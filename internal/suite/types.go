package suite

// ErrorKind names the class of error a failing case expects.
type ErrorKind string

const (
	ErrorLexical ErrorKind = "lexical"
	ErrorSyntax  ErrorKind = "syntax"
)

type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Cases       []Case `yaml:"cases"`
}

// Case is a single source snippet and its expected outcome: either the
// s-expression form of the parsed program (Expect) or an error (Error, with
// an optional Message substring).
type Case struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description,omitempty"`
	Source      string    `yaml:"source"`
	Expect      string    `yaml:"expect,omitempty"`
	Error       ErrorKind `yaml:"error,omitempty"`
	Message     string    `yaml:"message,omitempty"`
}

func (c Case) ExpectsError() bool {
	return c.Error != ""
}

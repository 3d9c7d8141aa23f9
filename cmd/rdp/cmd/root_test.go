package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/letter-rdp/internal/apperr"
	"github.com/DjordjeVuckovic/letter-rdp/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCmd_Sexpr(t *testing.T) {
	out, err := execute(t, "let x = 2 + 3 * 4;", "parse")
	require.NoError(t, err)
	assert.Equal(t, "(program (let (x (+ 2 (* 3 4)))))\n", out)
}

func TestParseCmd_FromFile(t *testing.T) {
	path := writeFile(t, "prog.rdp", "{ a = b = 1; }")

	out, err := execute(t, "", "parse", path)
	require.NoError(t, err)
	assert.Equal(t, "(program (block (expr (= a (= b 1)))))\n", out)
}

func TestParseCmd_JSON(t *testing.T) {
	out, err := execute(t, "42;", "parse", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "Program",
		"body": [{
			"type": "ExpressionStatement",
			"expression": {"type": "NumericLiteral", "value": 42}
		}]
	}`, out)
}

func TestParseCmd_Errors(t *testing.T) {
	tests := []struct {
		name   string
		stdin  string
		args   []string
		errMsg string
	}{
		{name: "syntax error", stdin: "2 = 3;", args: []string{"parse"}, errMsg: "<stdin>: syntax error at line 1, column 3: Invalid left-hand side in assignment"},
		{name: "lexical error", stdin: "x = #;", args: []string{"parse"}, errMsg: "<stdin>: lexical error at line 1, column 5: unexpected character '#'"},
		{name: "tokens lexical error", stdin: "\n  @", args: []string{"tokens"}, errMsg: "<stdin>: lexical error at line 2, column 3"},
		{name: "unknown format", stdin: "1;", args: []string{"parse", "-f", "xml"}, errMsg: `unknown format "xml"`},
		{name: "missing file", args: []string{"parse", "does-not-exist.rdp"}, errMsg: "read source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseCmd_FileErrorNamesFile(t *testing.T) {
	path := writeFile(t, "bad.rdp", "let x = ;")

	_, err := execute(t, "", "parse", path)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), path+": syntax error at line 1, column 9"), err.Error())
	assert.ErrorIs(t, err, apperr.ErrUnexpectedToken)
}

func TestParseCmd_DeepNesting(t *testing.T) {
	out, err := execute(t, strings.Repeat("x=", parser.MaxDepth-1)+"1;", "parse", "--format", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))

	_, err = execute(t, strings.Repeat("x=", 10001)+"1;", "parse", "--format", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNestingTooDeep)
}

func TestTokensCmd(t *testing.T) {
	out, err := execute(t, "let x = 'a';", "tokens")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, []string{"POS", "TYPE", "VALUE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1:1", "let", "let"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1:5", "IDENTIFIER", "x"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"1:9", "STRING", "'a'"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"1:13", "EOF"}, strings.Fields(lines[6]))
}

func TestSuiteCmd(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.json")

	out, err := execute(t, "",
		"suite",
		"../../../internal/suite/testdata/grammar.yaml",
		"../../../internal/suite/testdata/errors.yaml",
		"--workers", "2",
		"--output", reportPath,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "--- Suite: grammar ---")
	assert.Contains(t, out, "0 failed")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var rep struct {
		Summary struct {
			Suites int `json:"suites"`
			Failed int `json:"failed"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Equal(t, 2, rep.Summary.Suites)
	assert.Zero(t, rep.Summary.Failed)
}

func TestSuiteCmd_Failure(t *testing.T) {
	path := writeFile(t, "bad.yaml", `name: bad
cases:
  - id: wrong-precedence
    source: "1 + 2 * 3;"
    expect: "(program (expr (* (+ 1 2) 3)))"
  - id: ok
    source: "1;"
    expect: "(program (expr 1))"
`)

	out, err := execute(t, "", "suite", path)
	require.Error(t, err)
	assert.Equal(t, "1 of 2 cases failed", err.Error())
	assert.Contains(t, out, "FAIL")
}

func TestSuiteCmd_RequiresFile(t *testing.T) {
	_, err := execute(t, "", "suite")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "rdp v"+Version+"\n"))
}

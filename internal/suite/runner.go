package suite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/letter-rdp/internal/apperr"
	"github.com/DjordjeVuckovic/letter-rdp/internal/parser"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	// Workers bounds the number of cases parsed concurrently. Zero means GOMAXPROCS.
	Workers int
}

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{config: cfg}
}

type CaseResult struct {
	CaseID   string        `json:"case_id"`
	Passed   bool          `json:"passed"`
	Actual   string        `json:"actual,omitempty"`
	Failure  string        `json:"failure,omitempty"`
	Duration time.Duration `json:"duration"`
}

type Result struct {
	SuiteName string        `json:"suite"`
	Cases     []CaseResult  `json:"cases"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"duration"`
}

func (r *Result) OK() bool {
	return r.Failed == 0
}

// Run checks every case of s. Each worker owns its own Parser, since a
// Parser holds per-parse state. Results keep the order of s.Cases.
func (r *Runner) Run(ctx context.Context, s *Suite) (*Result, error) {
	start := time.Now()
	results := make([]CaseResult, len(s.Cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)

	for i, c := range s.Cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Check(parser.New(), c)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run suite %q: %w", s.Name, err)
	}

	res := &Result{
		SuiteName: s.Name,
		Cases:     results,
		Duration:  time.Since(start),
	}
	for _, cr := range results {
		if cr.Passed {
			res.Passed++
			continue
		}
		res.Failed++
		slog.Debug("case failed", "suite", s.Name, "case", cr.CaseID, "failure", cr.Failure)
	}

	slog.Info("suite finished",
		"suite", s.Name,
		"passed", res.Passed,
		"failed", res.Failed,
		"duration", res.Duration,
	)
	return res, nil
}

// Check parses a single case with p and compares the outcome.
func Check(p *parser.Parser, c Case) CaseResult {
	start := time.Now()
	program, err := p.Parse(c.Source)
	cr := CaseResult{CaseID: c.ID, Duration: time.Since(start)}

	if !c.ExpectsError() {
		if err != nil {
			cr.Failure = "unexpected error: " + err.Error()
			return cr
		}
		cr.Actual = program.String()
		if cr.Actual != strings.TrimSpace(c.Expect) {
			cr.Failure = fmt.Sprintf("expected %s", strings.TrimSpace(c.Expect))
			return cr
		}
		cr.Passed = true
		return cr
	}

	if err == nil {
		cr.Actual = program.String()
		cr.Failure = fmt.Sprintf("expected %s error, parse succeeded", c.Error)
		return cr
	}

	cr.Actual = err.Error()
	if kind := classify(err); kind != c.Error {
		cr.Failure = fmt.Sprintf("expected %s error, got %s error", c.Error, kind)
		return cr
	}
	if c.Message != "" && !strings.Contains(err.Error(), c.Message) {
		cr.Failure = fmt.Sprintf("error does not mention %q", c.Message)
		return cr
	}
	cr.Passed = true
	return cr
}

func classify(err error) ErrorKind {
	var le *apperr.LexicalError
	if errors.As(err, &le) {
		return ErrorLexical
	}
	var se *apperr.SyntaxError
	if errors.As(err, &se) {
		return ErrorSyntax
	}
	return "unknown"
}

package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/letter-rdp/internal/suite"
)

type Report struct {
	Meta    Meta            `json:"meta"`
	Suites  []*suite.Result `json:"suites"`
	Summary Summary         `json:"summary"`
}

type Meta struct {
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

type Summary struct {
	Suites   int           `json:"suites"`
	Cases    int           `json:"cases"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

func New(results []*suite.Result) *Report {
	r := &Report{
		Meta: Meta{
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Suites: results,
	}

	for _, res := range results {
		r.Summary.Suites++
		r.Summary.Cases += len(res.Cases)
		r.Summary.Passed += res.Passed
		r.Summary.Failed += res.Failed
		r.Summary.Duration += res.Duration
	}
	return r
}

func (r *Report) OK() bool {
	return r.Summary.Failed == 0
}

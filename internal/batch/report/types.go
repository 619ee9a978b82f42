package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/proplogic/internal/batch/runner"
)

type Report struct {
	Meta    Meta    `json:"meta"`
	Summary Summary `json:"summary"`
	Cases   []Entry `json:"cases"`
}

type Meta struct {
	Suite       string          `json:"suite"`
	Version     string          `json:"version,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Runs        int             `json:"runs"`
	WarmupRuns  int             `json:"warmup_runs"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Summary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
	// PassRate is Passed/Total in percent.
	PassRate float64      `json:"pass_rate"`
	Latency  LatencyStats `json:"latency"`
}

type Entry struct {
	CaseID   string       `json:"case_id"`
	Kind     string       `json:"kind"`
	Input    string       `json:"input"`
	Expect   string       `json:"expect"`
	Outcome  string       `json:"outcome"`
	Message  string       `json:"message,omitempty"`
	Results  []bool       `json:"results,omitempty"`
	Passed   bool         `json:"passed"`
	Failures []string     `json:"failures,omitempty"`
	Error    string       `json:"error,omitempty"`
	Latency  LatencyStats `json:"latency"`
}

type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Median      time.Duration         `json:"median"`
	Stddev      time.Duration         `json:"stddev"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	SampleCount int                   `json:"sample_count"`
}

func fromRunnerLatencyStats(s runner.LatencyStats) LatencyStats {
	return LatencyStats{
		Min:         s.Min,
		Max:         s.Max,
		Mean:        s.Mean,
		Median:      s.Median,
		Stddev:      s.Stddev,
		Percentiles: s.Percentiles,
		SampleCount: s.SampleCount,
	}
}

func (s LatencyStats) P50() time.Duration { return s.Percentiles[50] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }

package report

import (
	"time"

	"github.com/DjordjeVuckovic/proplogic/internal/batch/runner"
	"github.com/DjordjeVuckovic/proplogic/pkg/utils"
)

func Generate(sr *runner.SuiteResult) *Report {
	r := &Report{
		Meta: Meta{
			Suite:       sr.SuiteName,
			Version:     sr.Version,
			Timestamp:   time.Now().UTC(),
			Runs:        sr.Config.Runs,
			WarmupRuns:  sr.Config.WarmupRuns,
			Environment: NewEnvironmentInfo(),
		},
		Cases: make([]Entry, 0, len(sr.Cases)),
	}

	all := make([]runner.LatencyStats, 0, len(sr.Cases))
	for i := range sr.Cases {
		cr := &sr.Cases[i]
		entry := Entry{
			CaseID:   cr.CaseID,
			Kind:     string(cr.Kind),
			Input:    cr.Input,
			Expect:   string(cr.Expect),
			Outcome:  cr.Outcome,
			Message:  cr.Message,
			Results:  cr.Results,
			Passed:   cr.Passed(),
			Failures: cr.Failures,
			Latency:  fromRunnerLatencyStats(cr.Latency),
		}
		if cr.Error != nil {
			entry.Error = cr.Error.Error()
			r.Summary.Errored++
		}

		r.Summary.Total++
		if entry.Passed {
			r.Summary.Passed++
		} else {
			r.Summary.Failed++
		}
		all = append(all, cr.Latency)
		r.Cases = append(r.Cases, entry)
	}

	r.Summary.PassRate = utils.Percent(r.Summary.Passed, r.Summary.Total)
	r.Summary.Latency = fromRunnerLatencyStats(runner.MergeLatencyStats(all...))

	return r
}

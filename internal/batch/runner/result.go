package runner

import (
	"github.com/DjordjeVuckovic/proplogic/internal/batch/suite"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
)

const outcomeAccept = "accept"

type CaseResult struct {
	CaseID string
	Kind   verdict.Kind
	// Input is the resolved formula or the program source.
	Input  string
	Expect suite.Expectation
	// Outcome is "accept" or the name of the rejecting stage.
	Outcome   string
	Message   string
	Tree      string
	Results   []bool
	Tautology *bool
	Latency   LatencyStats
	Failures  []string
	// Error is set when the case could not be run at all.
	Error error
}

func (cr *CaseResult) Passed() bool {
	return cr.Error == nil && len(cr.Failures) == 0
}

type SuiteResult struct {
	SuiteName string
	Version   string
	Cases     []CaseResult
	Config    Config
}

func (sr *SuiteResult) Counts() (passed, failed int) {
	for i := range sr.Cases {
		if sr.Cases[i].Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// Records converts the case results to verdict records for storage.
func (sr *SuiteResult) Records() []verdict.Record {
	records := make([]verdict.Record, 0, len(sr.Cases))
	for i := range sr.Cases {
		cr := &sr.Cases[i]
		if cr.Error != nil {
			continue
		}

		rec := verdict.New(cr.Kind, cr.Input)
		rec.Suite = sr.SuiteName
		rec.CaseID = cr.CaseID
		rec.LatencyNs = cr.Latency.Mean.Nanoseconds()
		if cr.Outcome == outcomeAccept {
			rec.Accept(cr.Tree, cr.Results)
		} else {
			rec.Stage = cr.Outcome
			rec.Error = cr.Message
		}
		records = append(records, rec)
	}
	return records
}

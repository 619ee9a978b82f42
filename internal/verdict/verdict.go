// Package verdict defines the record kept for every checked formula or run
// program, whichever backend stores it.
package verdict

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindFormula Kind = "formula"
	KindProgram Kind = "program"
)

type Record struct {
	ID      uuid.UUID `json:"id"`
	Suite   string    `json:"suite,omitempty"`
	CaseID  string    `json:"caseId,omitempty"`
	Kind    Kind      `json:"kind"`
	Formula string    `json:"formula"`
	// Stage is empty for accepted input, otherwise the rejecting stage.
	Stage     string    `json:"stage,omitempty"`
	Error     string    `json:"error,omitempty"`
	Accepted  bool      `json:"accepted"`
	Tree      string    `json:"tree,omitempty"`
	Results   []bool    `json:"results,omitempty"`
	LatencyNs int64     `json:"latencyNs"`
	CreatedAt time.Time `json:"createdAt"`
}

// New returns a record with a fresh ID and creation time.
func New(kind Kind, formula string) Record {
	return Record{
		ID:        uuid.New(),
		Kind:      kind,
		Formula:   formula,
		CreatedAt: time.Now().UTC(),
	}
}

// Reject marks r as refused by stage with err.
func (r *Record) Reject(stage string, err error) {
	r.Accepted = false
	r.Stage = stage
	if err != nil {
		r.Error = err.Error()
	}
}

// Accept marks r as accepted with the printed tree and VM results, if any.
func (r *Record) Accept(tree string, results []bool) {
	r.Accepted = true
	r.Stage = ""
	r.Error = ""
	r.Tree = tree
	r.Results = results
}

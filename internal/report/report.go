// Package report accumulates per-archive outcomes into an egrn.BatchReport.
package report

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/egrn/pkg/egrn"
)

// Aggregator records exactly one outcome per processed archive.
// All methods are goroutine-safe.
type Aggregator struct {
	mu     sync.Mutex
	report egrn.BatchReport
	now    func() time.Time
}

// NewAggregator starts a report for one batch run.
func NewAggregator(runID uuid.UUID, targetRoot string) *Aggregator {
	return newAggregator(runID, targetRoot, time.Now)
}

func newAggregator(runID uuid.UUID, targetRoot string, now func() time.Time) *Aggregator {
	return &Aggregator{
		report: egrn.BatchReport{
			RunID:      runID,
			TargetRoot: targetRoot,
			StartedAt:  now(),
		},
		now: now,
	}
}

// Succeeded records a fully processed archive.
func (a *Aggregator) Succeeded(o egrn.FileOutcome) egrn.FileOutcome {
	o.Kind = egrn.OutcomeSucceeded
	o.Err = nil
	o.Message = fmt.Sprintf("processed: %s -> %s", filepath.Base(o.Source), o.Identifier)
	return a.record(o)
}

// NoIdentifier records an archive whose XML yields no cadastral number.
// detail, when non-empty, is appended to the message (e.g. a parse error).
func (a *Aggregator) NoIdentifier(o egrn.FileOutcome, detail string) egrn.FileOutcome {
	o.Kind = egrn.OutcomeNoIdentifier
	o.Err = nil
	o.Message = fmt.Sprintf("skipped %s: cadastral number not found", filepath.Base(o.Source))
	if detail != "" {
		o.Message += " (" + detail + ")"
	}
	return a.record(o)
}

// NoXML records an archive without an XML member.
func (a *Aggregator) NoXML(o egrn.FileOutcome) egrn.FileOutcome {
	o.Kind = egrn.OutcomeNoXML
	o.Err = nil
	o.Message = fmt.Sprintf("skipped %s: no XML member", filepath.Base(o.Source))
	return a.record(o)
}

// Errored records an archive that failed with cause.
func (a *Aggregator) Errored(o egrn.FileOutcome, cause error) egrn.FileOutcome {
	o.Kind = egrn.OutcomeErrored
	o.Err = cause
	o.Message = fmt.Sprintf("error %s: %v", filepath.Base(o.Source), cause)
	return a.record(o)
}

func (a *Aggregator) record(o egrn.FileOutcome) egrn.FileOutcome {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.report.Total++
	switch o.Kind {
	case egrn.OutcomeSucceeded:
		a.report.Succeeded++
	case egrn.OutcomeNoIdentifier:
		a.report.SkippedNoIdentifier++
	case egrn.OutcomeNoXML:
		a.report.SkippedNoXML++
	case egrn.OutcomeErrored:
		a.report.Errored++
	}
	a.report.Outcomes = append(a.report.Outcomes, o)
	return o
}

// Report returns a snapshot of the accumulated report. The snapshot does not
// share slices with the aggregator, so later records do not alter it.
func (a *Aggregator) Report() egrn.BatchReport {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.report
	r.FinishedAt = a.now()
	r.Outcomes = make([]egrn.FileOutcome, len(a.report.Outcomes))
	for i, o := range a.report.Outcomes {
		o.Outputs = append([]string(nil), o.Outputs...)
		o.Discarded = append([]string(nil), o.Discarded...)
		r.Outcomes[i] = o
	}
	return r
}

package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/egrn/pkg/egrn"
)

func TestRenderBatchReport(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	r := egrn.BatchReport{
		TargetRoot: "/out",
		Total:      2,
		Succeeded:  1,
		Errored:    1,
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Outcomes: []egrn.FileOutcome{
			{Kind: egrn.OutcomeSucceeded, Message: "processed: a.zip -> 1"},
			{Kind: egrn.OutcomeErrored, Message: "error b.zip: boom"},
		},
	}

	var buf bytes.Buffer
	renderBatchReport(&buf, r)

	out := buf.String()
	assert.Contains(t, out, "processed: a.zip -> 1")
	assert.Contains(t, out, "error b.zip: boom")
	assert.Contains(t, out, "Unpacked into /out")
	assert.Contains(t, out, "1.5s")
}

func TestRenderRenameResults(t *testing.T) {
	var buf bytes.Buffer
	renderRenameResults(&buf, []egrn.RenameResult{
		{Source: "/d/a.xml", Destination: "/d/1.xml", Status: egrn.RenameRenamed},
		{Source: "/d/1.xml", Destination: "/d/1.xml", Status: egrn.RenameUnchanged},
	})

	assert.Contains(t, buf.String(), "renamed: a.xml -> 1.xml")
	assert.Contains(t, buf.String(), "already named: 1.xml")
}

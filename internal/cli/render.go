package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vvka-141/egrn/internal/tui"
	"github.com/vvka-141/egrn/pkg/egrn"
)

// renderBatchReport writes the per-archive lines followed by a summary box.
func renderBatchReport(w io.Writer, r egrn.BatchReport) {
	for _, o := range r.Outcomes {
		fmt.Fprintln(w, outcomeLine(o))
	}
	if len(r.Outcomes) > 0 {
		fmt.Fprintln(w)
	}

	rows := []struct {
		label string
		value int
		style func(int) string
	}{
		{"Total archives", r.Total, plain},
		{"Succeeded", r.Succeeded, styledIf(tui.SuccessStyle.Render)},
		{"Skipped (no number)", r.SkippedNoIdentifier, styledIf(tui.WarningStyle.Render)},
		{"Skipped (no XML)", r.SkippedNoXML, styledIf(tui.WarningStyle.Render)},
		{"Errors", r.Errored, styledIf(tui.ErrorStyle.Render)},
	}

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Unpacked into "+r.TargetRoot) + "\n")
	for _, row := range rows {
		b.WriteString(tui.LabelStyle.Render(row.label) + row.style(row.value) + "\n")
	}
	b.WriteString(tui.LabelStyle.Render("Duration") + r.Duration().Round(time.Millisecond).String())
	fmt.Fprintln(w, tui.BoxStyle.Render(b.String()))
}

func outcomeLine(o egrn.FileOutcome) string {
	switch o.Kind {
	case egrn.OutcomeSucceeded:
		return tui.SuccessStyle.Render(tui.SymbolCheck) + " " + o.Message
	case egrn.OutcomeErrored:
		return tui.ErrorStyle.Render(tui.SymbolCross) + " " + o.Message
	default:
		return tui.WarningStyle.Render(tui.SymbolSkip) + " " + o.Message
	}
}

// renderRenameResults writes one line per rename result.
func renderRenameResults(w io.Writer, results []egrn.RenameResult) {
	for _, r := range results {
		var symbol string
		switch r.Status {
		case egrn.RenameRenamed, egrn.RenameUnchanged:
			symbol = tui.SuccessStyle.Render(tui.SymbolCheck)
		case egrn.RenameSkipped:
			symbol = tui.WarningStyle.Render(tui.SymbolSkip)
		default:
			symbol = tui.ErrorStyle.Render(tui.SymbolCross)
		}
		fmt.Fprintln(w, symbol+" "+r.Message())
	}
}

// renderHarvestReport writes the harvest statistics.
func renderHarvestReport(w io.Writer, r egrn.HarvestReport, output string) {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Stage URLs") + "\n")
	b.WriteString(tui.LabelStyle.Render("Total files") + fmt.Sprint(r.TotalFiles) + "\n")
	b.WriteString(tui.LabelStyle.Render("With URLs") + fmt.Sprint(r.WithURLs) + "\n")
	b.WriteString(tui.LabelStyle.Render("Without URLs") + fmt.Sprint(r.WithoutURLs) + "\n")
	if len(r.Unreadable) > 0 {
		b.WriteString(tui.LabelStyle.Render("Unreadable") + tui.ErrorStyle.Render(fmt.Sprint(len(r.Unreadable))) + "\n")
	}
	b.WriteString(tui.LabelStyle.Render("URLs written") + fmt.Sprint(len(r.URLs)))
	if output != "" {
		b.WriteString("\n" + tui.LabelStyle.Render("Output") + output)
	}
	fmt.Fprintln(w, tui.BoxStyle.Render(b.String()))
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func plain(n int) string { return fmt.Sprint(n) }

func styledIf(render func(...string) string) func(int) string {
	return func(n int) string {
		if n == 0 {
			return fmt.Sprint(n)
		}
		return render(fmt.Sprint(n))
	}
}

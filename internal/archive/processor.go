package archive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/vvka-141/egrn/internal/cadastral"
	"github.com/vvka-141/egrn/internal/checksum"
	"github.com/vvka-141/egrn/internal/files/scanner"
	"github.com/vvka-141/egrn/internal/files/transfer"
	"github.com/vvka-141/egrn/internal/logging"
	"github.com/vvka-141/egrn/internal/naming"
	"github.com/vvka-141/egrn/internal/report"
	"github.com/vvka-141/egrn/pkg/egrn"
)

// Processor unpacks batches of registry archives. A Processor holds no
// per-batch state and may be reused.
type Processor struct {
	logger   egrn.Logger
	policy   egrn.CollisionPolicy
	transfer *transfer.Transfer
	checksum checksum.Calculator
	scanner  *scanner.Scanner
	progress   func(egrn.Progress)
	discovered func([]string)
	newID      func() uuid.UUID
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(logger egrn.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithCollisionPolicy sets how existing outputs are handled.
func WithCollisionPolicy(policy egrn.CollisionPolicy) Option {
	return func(p *Processor) {
		p.policy = policy
	}
}

// WithTransfer sets the file transfer used for copies and moves.
func WithTransfer(t *transfer.Transfer) Option {
	return func(p *Processor) {
		if t != nil {
			p.transfer = t
		}
	}
}

// WithChecksum sets the calculator used to verify archive copies.
func WithChecksum(c checksum.Calculator) Option {
	return func(p *Processor) {
		if c != nil {
			p.checksum = c
		}
	}
}

// WithScanner sets the scanner used for input discovery and validation.
func WithScanner(s *scanner.Scanner) Option {
	return func(p *Processor) {
		if s != nil {
			p.scanner = s
		}
	}
}

// WithProgress registers a callback invoked after each archive.
// The callback runs on the processing goroutine and should return quickly.
func WithProgress(fn func(egrn.Progress)) Option {
	return func(p *Processor) {
		p.progress = fn
	}
}

// WithDiscovered registers a callback that ProcessDirectory invokes with the
// archives it found, before the first one is processed. It is not called when
// the directory holds no archives.
func WithDiscovered(fn func(archives []string)) Option {
	return func(p *Processor) {
		p.discovered = fn
	}
}

// NewProcessor creates a processor with suffix collision handling, SHA-256
// copy verification and no logging unless overridden by opts.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		logger:   logging.NewNullLogger(),
		policy:   egrn.CollisionSuffix,
		transfer: transfer.New(),
		checksum: checksum.New(),
		scanner:  scanner.NewScanner(),
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessDirectory processes every .zip file directly inside sourceDir.
// Both directories must exist. A source without archives yields an empty
// report and an error wrapping egrn.ErrNothingToDo.
func (p *Processor) ProcessDirectory(ctx context.Context, sourceDir, targetRoot string) (egrn.BatchReport, error) {
	if err := p.scanner.RequireDirectory("source", sourceDir); err != nil {
		return egrn.BatchReport{}, err
	}
	if err := p.scanner.RequireDirectory("target", targetRoot); err != nil {
		return egrn.BatchReport{}, err
	}

	archives, err := p.scanner.FindArchives(sourceDir)
	if err != nil {
		return egrn.BatchReport{}, fmt.Errorf("list %s: %w", sourceDir, err)
	}
	if len(archives) == 0 {
		r := report.NewAggregator(p.newID(), targetRoot).Report()
		return r, fmt.Errorf("no .zip files in %s: %w", sourceDir, egrn.ErrNothingToDo)
	}
	p.logger.Verbose("Found %d archive(s) in %s", len(archives), sourceDir)
	if p.discovered != nil {
		p.discovered(archives)
	}

	return p.ProcessArchives(ctx, archives, targetRoot)
}

// ProcessArchives processes sourcePaths in order into targetRoot.
//
// Per-archive failures are recorded in the report and never returned.
// The returned error is non-nil only for an unusable target root or when ctx
// is cancelled; in the latter case the report covers the archives finished
// before cancellation was observed.
func (p *Processor) ProcessArchives(ctx context.Context, sourcePaths []string, targetRoot string) (egrn.BatchReport, error) {
	if err := p.scanner.RequireDirectory("target", targetRoot); err != nil {
		return egrn.BatchReport{}, err
	}

	outputs := NewOutputSet(targetRoot)
	if err := outputs.Ensure(); err != nil {
		return egrn.BatchReport{}, err
	}

	agg := report.NewAggregator(p.newID(), targetRoot)
	total := len(sourcePaths)

	for i, src := range sourcePaths {
		if err := ctx.Err(); err != nil {
			p.logger.Info("Cancelled after %d of %d archive(s)", i, total)
			return agg.Report(), err
		}

		p.logger.Verbose("[%d/%d] %s", i+1, total, filepath.Base(src))
		outcome := p.record(agg, p.processArchive(context.WithoutCancel(ctx), src, targetRoot, outputs))

		if p.progress != nil {
			p.progress(egrn.Progress{Index: i + 1, Total: total, Outcome: outcome})
		}
	}

	return agg.Report(), nil
}

// skipError marks an expected skip outcome. detail carries diagnostic text
// such as an XML parse error.
type skipError struct {
	reason error
	detail string
}

func (e *skipError) Error() string {
	if e.detail == "" {
		return e.reason.Error()
	}
	return e.reason.Error() + ": " + e.detail
}

func (e *skipError) Unwrap() error { return e.reason }

type result struct {
	outcome egrn.FileOutcome
	err     error
}

func (p *Processor) record(agg *report.Aggregator, r result) egrn.FileOutcome {
	var skip *skipError
	switch {
	case r.err == nil:
		p.logger.Verbose("  -> %s", r.outcome.Identifier)
		return agg.Succeeded(r.outcome)
	case errors.Is(r.err, egrn.ErrNoXMLMember):
		p.logger.Verbose("  no XML member")
		return agg.NoXML(r.outcome)
	case errors.Is(r.err, egrn.ErrNoIdentifier):
		detail := ""
		if errors.As(r.err, &skip) {
			detail = skip.detail
		}
		p.logger.Verbose("  cadastral number not found")
		return agg.NoIdentifier(r.outcome, detail)
	default:
		p.logger.Error("%s: %v", filepath.Base(r.outcome.Source), r.err)
		return agg.Errored(r.outcome, r.err)
	}
}

// processArchive runs every step for one archive. The scratch area is removed
// before it returns.
func (p *Processor) processArchive(ctx context.Context, src, targetRoot string, outputs OutputSet) (res result) {
	res.outcome = egrn.FileOutcome{Source: src}

	zr, err := zip.OpenReader(src)
	if err != nil {
		res.err = fmt.Errorf("open archive: %w", err)
		return res
	}
	defer zr.Close()

	xmlMember := firstMember(&zr.Reader, egrn.ExtXML)
	if xmlMember == nil {
		res.err = &skipError{reason: egrn.ErrNoXMLMember}
		return res
	}

	data, err := readMember(xmlMember, egrn.MaxXMLMemberSize)
	if err != nil {
		res.err = err
		return res
	}

	match, found, perr := cadastral.Lookup(data)
	if perr != nil {
		res.err = &skipError{reason: egrn.ErrNoIdentifier, detail: perr.Error()}
		return res
	}
	if !found {
		res.err = &skipError{reason: egrn.ErrNoIdentifier}
		return res
	}
	res.outcome.Identifier = match.Identifier
	p.logger.Verbose("  %s via %s", match.Raw, match.Strategy)

	if err := naming.ValidBaseName(match.Identifier); err != nil {
		res.err = err
		return res
	}

	base, err := outputs.ResolveBase(match.Identifier, p.policy)
	if err != nil {
		res.err = err
		return res
	}

	area, err := newScratch(targetRoot, p.newID())
	if err != nil {
		res.err = err
		return res
	}
	defer func() {
		if rmErr := area.Remove(); rmErr != nil {
			p.logger.Error("remove scratch area %s: %v", area.root, rmErr)
		}
	}()

	members, err := area.ExtractAll(&zr.Reader)
	if err != nil {
		res.err = err
		return res
	}

	sum, err := p.copyVerified(ctx, src, outputs.ZIPPath(base))
	if err != nil {
		res.err = err
		return res
	}
	res.outcome.Checksum = sum
	res.outcome.Outputs = append(res.outcome.Outputs, outputs.ZIPPath(base))

	var xmlDone, pdfDone bool
	for _, m := range members {
		var dst string
		switch {
		case !xmlDone && scanner.HasExt(m.Name, egrn.ExtXML):
			xmlDone, dst = true, outputs.XMLPath(base)
		case !pdfDone && scanner.HasExt(m.Name, egrn.ExtPDF):
			pdfDone, dst = true, outputs.PDFPath(base)
		default:
			res.outcome.Discarded = append(res.outcome.Discarded, m.Name)
			continue
		}
		if err := p.transfer.Move(ctx, m.Path, dst); err != nil {
			res.err = fmt.Errorf("move %s: %w", m.Name, err)
			return res
		}
		res.outcome.Outputs = append(res.outcome.Outputs, dst)
	}

	if len(res.outcome.Discarded) > 0 {
		p.logger.Verbose("  discarded %d member(s)", len(res.outcome.Discarded))
	}
	return res
}

// copyVerified copies src to dst and checks that both hash the same.
// It returns the source checksum.
func (p *Processor) copyVerified(ctx context.Context, src, dst string) (string, error) {
	want, err := p.checksum.CalculateFile(src)
	if err != nil {
		return "", fmt.Errorf("checksum %s: %w", filepath.Base(src), err)
	}
	if err := p.transfer.Copy(ctx, src, dst); err != nil {
		return "", fmt.Errorf("copy archive: %w", err)
	}
	got, err := p.checksum.CalculateFile(dst)
	if err != nil {
		return "", fmt.Errorf("checksum %s: %w", filepath.Base(dst), err)
	}
	if got != want {
		return "", fmt.Errorf("archive copy %s differs from source (sha256 %s != %s)", filepath.Base(dst), got, want)
	}
	return want, nil
}

package harvest

import (
	"context"
	"fmt"

	"github.com/vvka-141/egrn/internal/files/filesystem"
	"github.com/vvka-141/egrn/internal/files/scanner"
	"github.com/vvka-141/egrn/internal/logging"
	"github.com/vvka-141/egrn/pkg/egrn"
)

// Harvester walks a directory tree for prefixed XML documents.
type Harvester struct {
	fsProvider filesystem.FileSystemProvider
	scanner    *scanner.Scanner
	logger     egrn.Logger
	prefix     string
}

// NewHarvester creates a harvester over fsProvider. A nil logger discards output.
// Panics if fsProvider is nil.
func NewHarvester(fsProvider filesystem.FileSystemProvider, logger egrn.Logger) *Harvester {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Harvester{
		fsProvider: fsProvider,
		scanner:    scanner.NewScannerWithFS(fsProvider),
		logger:     logger,
		prefix:     egrn.DefaultURLFilePrefix,
	}
}

// WithPrefix returns a copy of h matching file names that start with prefix.
func (h *Harvester) WithPrefix(prefix string) *Harvester {
	clone := *h
	if prefix != "" {
		clone.prefix = prefix
	}
	return &clone
}

// HarvestDirectory collects URLs from every matching file under dir.
// Unreadable or malformed files are listed in the report and do not count as
// files with or without URLs. A tree without matching files returns an error
// wrapping egrn.ErrNothingToDo.
func (h *Harvester) HarvestDirectory(ctx context.Context, dir string) (egrn.HarvestReport, error) {
	var report egrn.HarvestReport

	if err := h.scanner.RequireDirectory("source", dir); err != nil {
		return report, err
	}

	paths, err := h.scanner.FindPrefixedXML(dir, h.prefix)
	if err != nil {
		return report, err
	}
	if len(paths) == 0 {
		return report, fmt.Errorf("no %s*.xml files in %s: %w", h.prefix, dir, egrn.ErrNothingToDo)
	}
	report.TotalFiles = len(paths)
	h.logger.Verbose("Found %d %s*.xml file(s)", len(paths), h.prefix)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		data, err := h.fsProvider.ReadFile(path)
		if err == nil {
			var urls []string
			if urls, err = StageURLs(data); err == nil {
				if len(urls) > 0 {
					report.WithURLs++
					report.URLs = append(report.URLs, urls...)
				} else {
					report.WithoutURLs++
				}
				continue
			}
		}
		h.logger.Error("read %s: %v", path, err)
		report.Unreadable = append(report.Unreadable, path)
	}
	return report, nil
}

package egrn

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CollisionPolicy decides what the archive processor does when an output
// file for an identifier already exists under the target root.
type CollisionPolicy string

const (
	// CollisionSuffix picks the first free base name <id>, <id>_1, <id>_2, ...
	// shared by all three outputs of an archive.
	CollisionSuffix CollisionPolicy = "suffix"

	// CollisionOverwrite replaces existing outputs.
	CollisionOverwrite CollisionPolicy = "overwrite"

	// CollisionError records the archive as an error outcome.
	CollisionError CollisionPolicy = "error"
)

// CollisionPolicies lists the accepted policy names in display order.
var CollisionPolicies = []CollisionPolicy{CollisionSuffix, CollisionOverwrite, CollisionError}

// ParseCollisionPolicy converts a user-supplied name into a CollisionPolicy.
// An empty string yields the default (CollisionSuffix).
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CollisionSuffix:
		return CollisionSuffix, nil
	case CollisionOverwrite:
		return CollisionOverwrite, nil
	case CollisionError:
		return CollisionError, nil
	}
	return "", fmt.Errorf("unknown collision policy %q (want suffix, overwrite or error): %w", s, ErrInvalidConfig)
}

// OutcomeKind classifies what happened to one archive in a batch.
// Exactly one kind is recorded per processed archive.
type OutcomeKind int

const (
	OutcomeSucceeded OutcomeKind = iota
	OutcomeNoIdentifier
	OutcomeNoXML
	OutcomeErrored
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeNoIdentifier:
		return "no-identifier"
	case OutcomeNoXML:
		return "no-xml"
	case OutcomeErrored:
		return "error"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// MarshalText renders the kind by name so JSON reports stay readable.
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// FileOutcome is the recorded result for a single archive.
type FileOutcome struct {
	// Source is the archive path as supplied by the caller.
	Source string `json:"source"`

	Kind OutcomeKind `json:"kind"`

	// Identifier is the normalized cadastral number (empty unless extracted).
	Identifier string `json:"identifier,omitempty"`

	// Outputs lists the files written under the target root, in write order.
	// On error it holds whatever was written before the failure.
	Outputs []string `json:"outputs,omitempty"`

	// Discarded lists archive members that were extracted but not relocated.
	Discarded []string `json:"discarded,omitempty"`

	// Checksum is the SHA-256 of the source archive (set on success).
	Checksum string `json:"checksum,omitempty"`

	// Err is the cause for OutcomeErrored.
	Err error `json:"-"`

	// Message is the human-readable report line.
	Message string `json:"message"`
}

// BatchReport summarizes one archive-processing run.
// Total always equals Succeeded + SkippedNoIdentifier + SkippedNoXML + Errored.
type BatchReport struct {
	RunID               uuid.UUID     `json:"run_id"`
	TargetRoot          string        `json:"target_root"`
	Total               int           `json:"total"`
	Succeeded           int           `json:"succeeded"`
	SkippedNoIdentifier int           `json:"skipped_no_identifier"`
	SkippedNoXML        int           `json:"skipped_no_xml"`
	Errored             int           `json:"errored"`
	Outcomes            []FileOutcome `json:"outcomes"`
	StartedAt           time.Time     `json:"started_at"`
	FinishedAt          time.Time     `json:"finished_at"`
}

// Messages returns the per-file report lines in processing order.
func (r BatchReport) Messages() []string {
	lines := make([]string, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		lines = append(lines, o.Message)
	}
	return lines
}

// Skipped returns the number of archives skipped for any reason.
func (r BatchReport) Skipped() int {
	return r.SkippedNoIdentifier + r.SkippedNoXML
}

// Duration returns the wall time of the run.
func (r BatchReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Progress is delivered to progress observers after each archive.
type Progress struct {
	Index   int // 1-based position of the archive just finished
	Total   int // number of archives in the batch
	Outcome FileOutcome
}

// RenameStatus classifies a single-file rename.
type RenameStatus int

const (
	RenameRenamed RenameStatus = iota
	RenameUnchanged
	RenameSkipped
	RenameFailed
)

func (s RenameStatus) String() string {
	switch s {
	case RenameRenamed:
		return "renamed"
	case RenameUnchanged:
		return "unchanged"
	case RenameSkipped:
		return "skipped"
	case RenameFailed:
		return "failed"
	}
	return fmt.Sprintf("RenameStatus(%d)", int(s))
}

// RenameResult describes the outcome of renaming one file by its identifier.
type RenameResult struct {
	Source      string
	Destination string // equal to Source unless Status is RenameRenamed
	Identifier  string
	Status      RenameStatus
	Reason      string // why the file was skipped or failed
}

// Message renders the result as a single report line.
func (r RenameResult) Message() string {
	base := baseName(r.Source)
	switch r.Status {
	case RenameRenamed:
		return fmt.Sprintf("renamed: %s -> %s", base, baseName(r.Destination))
	case RenameUnchanged:
		return fmt.Sprintf("already named: %s", base)
	case RenameSkipped:
		return fmt.Sprintf("skipped %s: %s", base, r.Reason)
	default:
		return fmt.Sprintf("error %s: %s", base, r.Reason)
	}
}

// HarvestReport summarizes a Stage URL harvest across a directory tree.
type HarvestReport struct {
	TotalFiles  int      `json:"total_files"`
	WithURLs    int      `json:"with_urls"`
	WithoutURLs int      `json:"without_urls"`
	Unreadable  []string `json:"unreadable,omitempty"`
	URLs        []string `json:"urls"`
}

func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

package egrn

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Batch completed, every file accounted for
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitNothingToDo  = 14 // Source directory contains no matching files
	ExitInvalidInput = 15 // Source or target directory missing
	ExitPartialBatch = 16 // Batch finished but some files errored
)

// Output layout under the target root.
const (
	ZIPDirName = "ZIP"
	XMLDirName = "XML"
	PDFDirName = "PDF"

	// ScratchDirPrefix names the per-archive extraction directory created
	// under the target root. A UUID suffix keeps concurrent runs apart.
	ScratchDirPrefix = "_temp_extract-"
)

// File extensions recognised by the pipeline (compared case-insensitively).
const (
	ExtZIP = ".zip"
	ExtXML = ".xml"
	ExtPDF = ".pdf"
	ExtCSV = ".csv"
)

const (
	// DefaultURLFilePrefix is the file name prefix of documents harvested for Stage URLs.
	DefaultURLFilePrefix = "proto_"

	// DefaultRetryInitialDelay is the initial delay before retrying a filesystem operation.
	DefaultRetryInitialDelay = 50 * time.Millisecond

	// DefaultRetryMaxDelay caps the delay between filesystem retries.
	DefaultRetryMaxDelay = 2 * time.Second

	// DefaultRetryMaxAttempts is the default number of retries for transient
	// filesystem errors (files briefly locked by antivirus or indexers).
	DefaultRetryMaxAttempts = 3

	// MaxXMLMemberSize bounds how much of an archive's XML member is read into memory.
	MaxXMLMemberSize = 256 << 20
)

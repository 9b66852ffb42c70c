// Package transfer copies and moves files into output directories so that a
// destination path is either absent or complete, never partially written.
//
// Copies are written to a temporary file in the destination directory and
// renamed into place. Moves use rename and fall back to copy-and-remove when
// source and destination live on different devices. Renames run through a
// retry executor so files briefly locked by other processes do not fail a batch.
package transfer

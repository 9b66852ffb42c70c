// Package naming derives output file names from cadastral identifiers and
// resolves collisions by appending numeric suffixes (<id>_1, <id>_2, ...).
package naming

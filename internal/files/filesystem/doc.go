// Package filesystem provides a read-only filesystem abstraction used for
// input discovery.
//
// Key interfaces:
//   - FileSystemProvider: opens directories, reads and stats files
//   - Directory: a directory tree that can be walked in lexical order
//   - File: an individual file with metadata and a content accessor
//
// Implementations:
//   - OSFileSystem: production implementation on the OS filesystem
//   - MemoryFileSystem: in-memory implementation for tests
//
// Writes never go through this package; output files are produced by the
// transfer package so they become visible atomically.
package filesystem

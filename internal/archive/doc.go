// Package archive fans registry ZIP archives out into identifier-named files.
//
// For each archive the processor locates the first XML member, extracts the
// cadastral number from it and writes up to three outputs under the target
// root:
//
//	ZIP/<base>.zip   byte-identical copy of the source archive
//	XML/<base>.xml   the first XML member
//	PDF/<base>.pdf   the first PDF member, if any
//
// <base> is the identifier, possibly suffixed according to the configured
// egrn.CollisionPolicy. Members are extracted into a private scratch directory
// under the target root which is removed after every archive regardless of
// outcome.
//
// Failures are contained per archive. Only unusable top-level inputs abort a
// batch; everything else becomes an outcome in the returned egrn.BatchReport.
package archive

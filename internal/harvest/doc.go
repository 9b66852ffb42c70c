// Package harvest collects Stage/URL values from proto_*.xml documents and
// writes them as a single-column CSV.
//
// A document contributes the text of the URL child of every Stage element
// directly under its root, in document order. Stages without a URL, or with
// an empty one, are ignored.
package harvest

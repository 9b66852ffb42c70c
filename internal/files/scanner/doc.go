// Package scanner discovers input files for the batch commands.
//
// Archives are looked up in the top level of the source directory only;
// harvestable XML documents are searched for recursively. Results are
// sorted so batches run in a stable order.
package scanner

// Package checksum computes SHA-256 checksums of archives and their copies.
//
// The archive processor copies every source archive into the ZIP output
// directory; comparing the checksum of the copy with the source proves the
// copy is byte-identical before the archive is reported as processed.
//
// Usage:
//
//	calc := checksum.New()
//	sum, err := calc.CalculateFile("/data/in/package.zip")
package checksum

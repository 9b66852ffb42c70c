// Package files provides file-related functionality organized into sub-packages:
//   - filesystem: read-only filesystem abstraction (OS and in-memory)
//   - scanner: discovery of input archives and harvestable XML documents
//   - transfer: atomic copy, move and rename of output files
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/egrn/internal/files/scanner"
//	    "github.com/vvka-141/egrn/internal/files/transfer"
//	)
//
//	archives, err := scanner.NewScanner().FindArchives("./incoming")
//	err = transfer.New().Copy(ctx, archives[0], "./out/ZIP/77_01.zip")
package files

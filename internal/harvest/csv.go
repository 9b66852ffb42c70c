package harvest

import (
	"encoding/csv"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// WriteCSV writes urls to w as a UTF-8 CSV with a byte order mark, one value
// per row, rows terminated by CRLF.
func WriteCSV(w io.Writer, urls []string) error {
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bw)
	cw.UseCRLF = true
	for _, u := range urls {
		if err := cw.Write([]string{u}); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Close()
}

// WriteCSVFile writes urls to path, replacing any existing file.
func WriteCSVFile(path string, urls []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, urls); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

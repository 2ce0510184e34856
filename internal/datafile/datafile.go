// Package datafile reads the delimited source tables published by the
// ISO 639 registration authorities.
//
// The files are plain UTF-8 text, one record per line, with tab or pipe
// delimited fields and no quoting. Some downloads carry a UTF-8 BOM and
// CRLF line endings; both are stripped. All fields are normalized to NFC
// so that names compare bytewise regardless of how the authority encoded
// combining characters.
package datafile

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/FocuswithJustin/iso639/core/errors"
)

// Format describes the shape of a delimited source file.
type Format struct {
	Delim  string // field delimiter, "\t" or "|"
	Header bool   // first line is a header row to skip
}

var (
	// Tab is the format of the SIL *.tab and *.tsv files (header row).
	Tab = Format{Delim: "\t", Header: true}
	// Pipe is the format of the Library of Congress ISO-639-2 file (no header).
	Pipe = Format{Delim: "|", Header: false}
)

// Read reads a delimited source file into rows of NFC-normalized fields.
// Blank lines are skipped.
func Read(path string, f Format) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer file.Close()

	var rows [][]string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimSuffix(line, "\r")
		skip := first && f.Header
		first = false
		if skip || line == "" {
			continue
		}
		fields := strings.Split(line, f.Delim)
		for i, field := range fields {
			fields[i] = norm.NFC.String(strings.TrimSpace(field))
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return rows, nil
}

// ReadTab reads a tab-delimited file with a header row.
func ReadTab(path string) ([][]string, error) {
	return Read(path, Tab)
}

// ReadPipe reads a pipe-delimited file without a header row.
func ReadPipe(path string) ([][]string, error) {
	return Read(path, Pipe)
}

// Field returns the i-th field of a row, or "" when the row is short.
// Registry files occasionally omit trailing empty columns.
func Field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

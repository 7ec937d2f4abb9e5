// Package parsers provides row readers for delimiter-separated filing files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// Row is one record keyed by header column name. Columns missing from a
// short record are simply absent; callers treat absent as empty.
type Row map[string]string

// Parser streams rows from a reader. The callback is invoked once per record
// in file order; a callback error aborts the scan and is returned unchanged.
type Parser interface {
	Parse(r io.Reader, fn func(Row) error) error
}

// ForFormat returns the parser for an explicit format name.
// Supported formats: "tsv", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "tsv":
		return &DelimitedParser{Comma: '\t'}
	case "csv":
		return &DelimitedParser{Comma: ','}
	default:
		return nil
	}
}

// ForFile returns a parser based on file extension. Everything that is not
// ".csv" is read as tab-separated: the regulator publishes the directory as
// tab-separated text under .xls and .txt extensions alike.
func ForFile(filename string) Parser {
	if strings.ToLower(filepath.Ext(filename)) == ".csv" {
		return &DelimitedParser{Comma: ','}
	}
	return &DelimitedParser{Comma: '\t'}
}

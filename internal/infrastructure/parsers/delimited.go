package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
)

// DelimitedParser reads delimiter-separated records with a header row.
type DelimitedParser struct {
	Comma rune
}

// Parse reads the header, then streams each data record to fn as a Row.
// Records shorter than the header yield rows without the trailing columns;
// extra fields beyond the header are dropped.
func (p *DelimitedParser) Parse(r io.Reader, fn func(Row) error) error {
	reader := csv.NewReader(r)
	reader.Comma = p.Comma
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return fmt.Errorf("reading header: file is empty")
	}
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	lineNum := 1
	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		row := make(Row, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}

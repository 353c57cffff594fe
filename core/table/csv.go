package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const bomRune = "\uFEFF"

// ReadCSV parses a delimited text table whose first record is the header.
// Records narrower than the header are padded with empty values and wider records
// are truncated; both are counted in Table.Ragged. An empty input yields a table
// with no columns and no rows.
func ReadCSV(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = false

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &Table{Name: name, Schema: NewSchema(nil)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", name, err)
	}
	header = stripHeaderBOM(header)

	t := &Table{Name: name, Schema: NewSchema(header)}
	width := len(header)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if len(record) != width {
			t.Ragged++
		}
		t.Rows = append(t.Rows, rowFromRecord(t.Schema, header, record))
	}
	return t, nil
}

// rowFromRecord binds a record by header position. A repeated header name keeps
// the value of its first occurrence.
func rowFromRecord(schema *Schema, header, record []string) Row {
	if schema.Len() == len(header) {
		return NewRow(schema, record)
	}
	values := make([]string, schema.Len())
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if i < len(record) {
			values[schema.Index(name)] = record[i]
		}
	}
	return Row{schema: schema, values: values}
}

// WriteCSV writes a header and records as CSV. Lines end in CRLF.
func WriteCSV(w io.Writer, header []string, records [][]string) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

// stripHeaderBOM removes a UTF-8 BOM from the first header cell if present.
func stripHeaderBOM(headers []string) []string {
	if len(headers) == 0 {
		return headers
	}
	headers[0] = strings.TrimPrefix(headers[0], bomRune)
	return headers
}

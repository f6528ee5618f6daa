package ingest

import (
	"encoding/csv"
	"io"
	"strings"
)

// Row is one header-keyed CSV record as delivered by the tokenizer. Values
// stay raw strings; nothing past this layer sees an untyped row.
type Row map[string]string

// ReadRows tokenizes a CSV stream into header-keyed rows. The first record
// is the header. Ragged rows are tolerated: missing trailing cells simply
// leave fields absent. Row order is input order.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(Row, len(header))
		empty := true
		for i, name := range header {
			if name == "" || i >= len(record) {
				continue
			}
			row[name] = record[i]
			if strings.TrimSpace(record[i]) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

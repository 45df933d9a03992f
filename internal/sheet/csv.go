package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

var utf8BOM = []byte("\xef\xbb\xbf")

func decodeCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.Comma = sniffDelimiter(data)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	for i, row := range rows {
		rows[i] = trimRow(row)
	}
	return rows, nil
}

// sniffDelimiter looks at the first line only. Spreadsheet exports in
// locales with a decimal comma use ';'.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	commas := bytes.Count(line, []byte{','})
	semis := bytes.Count(line, []byte{';'})
	tabs := bytes.Count(line, []byte{'\t'})
	switch {
	case semis > commas && semis >= tabs:
		return ';'
	case tabs > commas && tabs > semis:
		return '\t'
	default:
		return ','
	}
}

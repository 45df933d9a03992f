// Package sheet decodes uploaded spreadsheets into rows of cell text and
// writes the example template offered to users.
//
// Only the first worksheet of a workbook is read. Cells come back as their
// display strings; trailing empty cells of a row are not reported, so a row
// with an empty second column has a single cell.
package sheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format identifies a supported container format.
type Format int

const (
	FormatUnknown Format = iota
	FormatXLSX
	FormatXLS
	FormatCSV
)

func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatXLS:
		return "xls"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat is returned by Decode when neither the file name nor
// the content identifies a known format.
var ErrUnsupportedFormat = errors.New("unsupported format")

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Detect picks a format from the file extension, falling back to the
// leading magic bytes of data.
func Detect(name string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	case ".csv", ".txt":
		return FormatCSV
	}
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX
	case bytes.HasPrefix(data, oleMagic):
		return FormatXLS
	case len(data) > 0 && utf8.Valid(data):
		return FormatCSV
	}
	return FormatUnknown
}

// Decode returns the rows of the first worksheet in data.
func Decode(ctx context.Context, name string, data []byte) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		rows [][]string
		err  error
	)
	switch f := Detect(name, data); f {
	case FormatXLSX:
		rows, err = decodeXLSX(data)
	case FormatXLS:
		rows, err = decodeXLS(data)
	case FormatCSV:
		rows, err = decodeCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(name))
	}
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// trimRow drops trailing empty cells.
func trimRow(cells []string) []string {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	return cells[:n]
}

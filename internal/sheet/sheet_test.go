package sheet

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want Format
	}{
		{"xlsx extension", "Woorden.XLSX", nil, FormatXLSX},
		{"xls extension", "oud.xls", nil, FormatXLS},
		{"csv extension", "lijst.csv", []byte{0xff}, FormatCSV},
		{"zip magic", "upload", []byte("PK\x03\x04rest"), FormatXLSX},
		{"ole magic", "upload", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0}, FormatXLS},
		{"plain text", "upload", []byte("a,b\n"), FormatCSV},
		{"binary", "upload.bin", []byte{0xff, 0xfe, 0x00}, FormatUnknown},
		{"empty", "upload", nil, FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.file, tt.data))
		})
	}
}

func TestDecodeCSV_Delimiters(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"comma", "Hond,Blaft\nKat,Miauwt\n"},
		{"semicolon", "Hond;Blaft\nKat;Miauwt\n"},
		{"tab", "Hond\tBlaft\nKat\tMiauwt\n"},
		{"bom", "\xef\xbb\xbfHond,Blaft\nKat,Miauwt\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Decode(context.Background(), "x.csv", []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, [][]string{{"Hond", "Blaft"}, {"Kat", "Miauwt"}}, rows)
		})
	}
}

func TestDecodeCSV_RaggedRows(t *testing.T) {
	rows, err := Decode(context.Background(), "x.csv", []byte("a\nb,c,d\n\"e, f\",g\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"b", "c", "d"}, {"e, f", "g"}}, rows)
}

func TestDecodeCSV_DropsTrailingBlanks(t *testing.T) {
	rows, err := Decode(context.Background(), "x.csv", []byte("Hond,\n,Muis\nKat,Miauwt,,\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Hond"}, {"", "Muis"}, {"Kat", "Miauwt"}}, rows)
}

func TestDecode_Unsupported(t *testing.T) {
	_, err := Decode(context.Background(), "plaatje.bin", []byte{0xff, 0xd8, 0xff})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecode_CorruptWorkbooks(t *testing.T) {
	_, err := Decode(context.Background(), "kapot.xlsx", []byte("PK\x03\x04not a zip"))
	assert.Error(t, err)

	_, err = Decode(context.Background(), "kapot.xls", []byte{0xD0, 0xCF, 0x11, 0xE0, 1, 2, 3})
	assert.Error(t, err)
}

func TestDecode_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Decode(ctx, "x.csv", []byte("a,b\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTemplate_FirstSheetRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))

	rows, err := Decode(context.Background(), TemplateFilename, buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, len(TemplateRows)+1)
	assert.Equal(t, []string{TemplateHeader[0], TemplateHeader[1]}, rows[0])
	assert.Equal(t, []string{"Hond", TemplateRows[0][1]}, rows[1])
}

func TestTrimRow(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, trimRow([]string{"a", "", "b", "", ""}))
	assert.Empty(t, trimRow([]string{"", ""}))
}

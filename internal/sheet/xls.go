package sheet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/extrame/xls"
)

// decodeXLS reads legacy BIFF workbooks. The underlying parser panics on
// some malformed files; those panics are turned into errors.
func decodeXLS(data []byte) (rows [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("corrupt workbook: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, errors.New("workbook has no sheets")
	}

	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for c := range cells {
			cells[c] = row.Col(c)
		}
		rows = append(rows, trimRow(cells))
	}
	return rows, nil
}

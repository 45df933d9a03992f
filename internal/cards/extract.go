package cards

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// HeaderKeywords are matched case-insensitively as substrings of the first
// cell of row 0. A match marks the row as a header.
var HeaderKeywords = []string{"term", "begrip", "front", "vraag", "question"}

// IsHeader reports whether row looks like a column header. The check is a
// best-effort classifier: a data row whose first cell happens to contain a
// keyword ("Determinant") is classified as a header as well.
func IsHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	first := cases.Fold().String(row[0])
	for _, kw := range HeaderKeywords {
		if strings.Contains(first, kw) {
			return true
		}
	}
	return false
}

// Extract turns decoded rows into an ordered card set. Rows with fewer than
// two cells, or whose first two cells are both blank, are skipped. Cell text
// is kept verbatim. An empty result is not an error here; callers decide how
// to surface it.
func Extract(rows [][]string) Set {
	start := 0
	if len(rows) > 0 && IsHeader(rows[0]) {
		start = 1
	}

	out := Set{}
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			continue
		}
		c := Card{
			ID:         fmt.Sprintf("card-%d", i),
			Term:       row[0],
			Definition: row[1],
		}
		if !c.Valid() {
			continue
		}
		out = append(out, c)
	}
	return out
}

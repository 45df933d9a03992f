package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/youruser/flashcards/internal/fonts"
	"github.com/youruser/flashcards/internal/layout"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var printTemplate = template.Must(template.ParseFS(templateFS, "templates/print.html.tmpl"))

// PrintOptions configures the print document.
type PrintOptions struct {
	Title string
	Font  fonts.Font
	// AutoPrint opens the print dialog once the layout is ready.
	AutoPrint bool
	MarginMM  float64
}

type printData struct {
	Title     string
	FontURL   string
	Family    template.CSS
	Width     template.CSS
	Height    template.CSS
	Margin    template.CSS
	Columns   int
	Rows      int
	AutoPrint bool
	CardCount int
	PageCount int
	Sheets    []sheetView
}

type sheetView struct {
	Side   string
	Number int
	Cells  []cellView
}

type cellView struct {
	Blank bool
	Key   string
	Text  string
}

// PrintDocument writes the HTML document for pairs: one A4 section per
// page side, in front, back, front, back order. Blank slots render as empty
// cells without key or text.
//
// The document marks <html data-layout-ready="true"> and fires a
// "layoutready" event once the window has loaded, fonts are ready and two
// frames have been painted; with AutoPrint the print dialog opens then.
func PrintDocument(w io.Writer, pairs []layout.PagePair, opts PrintOptions) error {
	if opts.Title == "" {
		opts.Title = "Flashcards"
	}
	if opts.Font.Family == "" {
		opts.Font = fonts.Font{Name: "Standaard (Sans-Serif)", Family: "sans-serif"}
	}
	if opts.MarginMM <= 0 {
		opts.MarginMM = DefaultMarginMM
	}

	data := printData{
		Title:     opts.Title,
		FontURL:   opts.Font.StylesheetURL(),
		Family:    template.CSS(opts.Font.Family),
		Width:     mm(A4WidthMM),
		Height:    mm(A4HeightMM),
		Margin:    mm(opts.MarginMM),
		Columns:   layout.Columns,
		Rows:      layout.Rows,
		AutoPrint: opts.AutoPrint,
		PageCount: 2 * len(pairs),
	}
	for _, p := range pairs {
		data.CardCount += p.Front.Filled()
	}
	for i, page := range layout.Stream(pairs) {
		sv := sheetView{Side: page.Side.String(), Number: i + 1}
		for _, slot := range page.Slots {
			if slot.Blank() {
				sv.Cells = append(sv.Cells, cellView{Blank: true})
				continue
			}
			sv.Cells = append(sv.Cells, cellView{Key: slot.Key(), Text: slot.Text(page.Side)})
		}
		data.Sheets = append(data.Sheets, sv)
	}

	if err := printTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering print document: %w", err)
	}
	return nil
}

func mm(v float64) template.CSS {
	return template.CSS(strconv.FormatFloat(v, 'f', -1, 64) + "mm")
}

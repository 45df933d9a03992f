package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	// TemplateFilename is the suggested download name of the template.
	TemplateFilename = "flashcard_template.xlsx"
	// TemplateSheet is the worksheet the template rows are written to.
	TemplateSheet = "Flashcards"
)

// TemplateHeader is the first row of the template.
var TemplateHeader = [2]string{"Begrip", "Betekenis"}

// TemplateRows are the example cards shipped in the template.
var TemplateRows = [][2]string{
	{"Hond", "Een trouw huisdier dat blaft."},
	{"Kat", "Een eigenzinnig huisdier dat miauwt."},
	{"Olifant", "Het grootste landdier met een slurf."},
	{"Muis", "Een klein knaagdier dat van kaas houdt."},
	{"Vogel", "Een dier met veren dat eieren legt."},
	{"Vis", "Een dier dat onder water ademt via kieuwen."},
}

// WriteTemplate writes an xlsx workbook showing the expected two-column
// layout: a header row followed by the example rows.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TemplateSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	rows := append([][2]string{TemplateHeader}, TemplateRows...)
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(TemplateSheet, cell, &[]interface{}{r[0], r[1]}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(TemplateSheet, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(TemplateSheet, "B", "B", 48); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}
	return nil
}

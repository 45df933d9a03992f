// Package render turns composed pages into output: the HTML print document
// handed to the browser's print facility, PNG previews of single pages and
// QR codes pointing at the print view.
package render

const (
	// A4WidthMM and A4HeightMM are the portrait A4 sheet dimensions.
	A4WidthMM  = 210
	A4HeightMM = 297

	// DefaultMarginMM keeps the grid clear of the unprintable border so
	// printers do not shrink the page to fit.
	DefaultMarginMM = 10.0
)

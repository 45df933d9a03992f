package render

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/youruser/flashcards/internal/layout"
)

// PreviewOptions controls raster previews.
type PreviewOptions struct {
	// Scale is pixels per millimetre; 4 gives an 840x1188 page.
	Scale    int
	MarginMM float64
}

func (o PreviewOptions) withDefaults() PreviewOptions {
	if o.Scale <= 0 {
		o.Scale = 4
	}
	if o.MarginMM < 0 {
		o.MarginMM = 0
	}
	return o
}

var (
	paper = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ink   = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// RenderPage draws one physical page side. Cell text is drawn with a fixed
// bitmap face, so the preview approximates the print document rather than
// reproducing the selected typeface.
func RenderPage(p layout.Page, opts PreviewOptions) *image.NRGBA {
	opts = opts.withDefaults()
	w := A4WidthMM * opts.Scale
	h := A4HeightMM * opts.Scale
	canvas := imaging.New(w, h, paper)

	margin := int(opts.MarginMM * float64(opts.Scale))
	cellW := (w - 2*margin) / layout.Columns
	cellH := (h - 2*margin) / layout.Rows

	for r := 0; r < layout.Rows; r++ {
		for c := 0; c < layout.Columns; c++ {
			slot := p.Cell(r, c)
			if slot.Blank() {
				continue
			}
			cell := renderCell(slot.Text(p.Side), cellW, cellH, opts.Scale)
			canvas = imaging.Paste(canvas, cell, image.Pt(margin+c*cellW, margin+r*cellH))
		}
	}

	drawGrid(canvas, image.Rect(margin, margin, margin+cellW*layout.Columns, margin+cellH*layout.Rows), cellW, cellH)
	return canvas
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// drawGrid draws the outer border and the shared cut lines, one pixel wide.
func drawGrid(dst draw.Image, grid image.Rectangle, cellW, cellH int) {
	src := image.NewUniform(ink)
	for c := 0; c <= layout.Columns; c++ {
		x := grid.Min.X + c*cellW
		if c == layout.Columns {
			x = grid.Max.X - 1
		}
		draw.Draw(dst, image.Rect(x, grid.Min.Y, x+1, grid.Max.Y), src, image.Point{}, draw.Src)
	}
	for r := 0; r <= layout.Rows; r++ {
		y := grid.Min.Y + r*cellH
		if r == layout.Rows {
			y = grid.Max.Y - 1
		}
		draw.Draw(dst, image.Rect(grid.Min.X, y, grid.Max.X, y+1), src, image.Point{}, draw.Src)
	}
}

// renderCell lays text out on a small canvas and scales it up, which keeps
// the bitmap face legible at print resolutions.
func renderCell(text string, w, h, scale int) *image.NRGBA {
	zoom := scale / 2
	if zoom < 1 {
		zoom = 1
	}
	sw, sh := w/zoom, h/zoom
	if sw < 1 || sh < 1 {
		return imaging.New(w, h, paper)
	}
	small := imaging.New(sw, sh, paper)

	face := basicfont.Face7x13
	pad := 4 * scale / zoom
	lines := wrap(face, text, sw-2*pad)
	lineH := face.Metrics().Height.Ceil()
	if maxLines := (sh - 2*pad) / lineH; len(lines) > maxLines {
		if maxLines < 1 {
			maxLines = 1
		}
		lines = append(lines[:maxLines-1], "...")
	}

	d := font.Drawer{Dst: small, Src: image.NewUniform(ink), Face: face}
	top := (sh-len(lines)*lineH)/2 + face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		width := font.MeasureString(face, line).Ceil()
		d.Dot = fixed.P((sw-width)/2, top+i*lineH)
		d.DrawString(line)
	}

	if zoom == 1 {
		return small
	}
	return imaging.Resize(small, w, h, imaging.NearestNeighbor)
}

// wrap breaks text into lines no wider than limit pixels. Explicit newlines
// are kept; words longer than a line are split.
func wrap(face font.Face, text string, limit int) []string {
	var lines []string
	fits := func(s string) bool { return font.MeasureString(face, s).Ceil() <= limit }

	for _, para := range strings.Split(strings.TrimSpace(text), "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for !fits(word) && len([]rune(word)) > 1 {
				head, rest := splitToFit(word, fits)
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				lines = append(lines, head)
				word = rest
			}
			switch {
			case line == "":
				line = word
			case fits(line + " " + word):
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func splitToFit(word string, fits func(string) bool) (head, rest string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && fits(string(runes[:n+1])) {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}

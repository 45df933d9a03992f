package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/youruser/flashcards/internal/cards"
	"github.com/youruser/flashcards/internal/fonts"
	"github.com/youruser/flashcards/internal/layout"
)

func makeSet(n int) cards.Set {
	set := make(cards.Set, n)
	for i := range set {
		set[i] = cards.Card{
			ID:         fmt.Sprintf("card-%d", i),
			Term:       fmt.Sprintf("Term%d", i),
			Definition: fmt.Sprintf("Def%d", i),
		}
	}
	return set
}

func renderDoc(t *testing.T, n int, opts PrintOptions) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, PrintDocument(&buf, layout.Compose(makeSet(n)), opts))
	return buf.String()
}

func TestPrintDocument_SheetOrderAndMirroring(t *testing.T) {
	t.Parallel()
	doc := renderDoc(t, 5, PrintOptions{})

	sides := regexp.MustCompile(`data-side="(\w+)"`).FindAllStringSubmatch(doc, -1)
	require.Len(t, sides, 4)
	for i, want := range []string{"front", "back", "front", "back"} {
		assert.Equal(t, want, sides[i][1])
	}

	texts := regexp.MustCompile(`<div class="text">([^<]*)</div>`).FindAllStringSubmatch(doc, -1)
	var got []string
	for _, m := range texts {
		got = append(got, m[1])
	}
	assert.Equal(t, []string{
		"Term0", "Term1", "Term2", "Term3",
		"Def1", "Def0", "Def3", "Def2",
		"Term4",
		"Def4",
	}, got)
}

func TestPrintDocument_BlanksLeakNothing(t *testing.T) {
	t.Parallel()
	doc := renderDoc(t, 1, PrintOptions{})

	assert.Equal(t, 6, strings.Count(doc, `<div class="cell"></div>`))
	assert.Equal(t, 2, strings.Count(doc, `data-card=`))
	assert.NotContains(t, doc, "empty-")
	assert.NotContains(t, doc, `data-card=""`)
}

func TestPrintDocument_PageGeometryAndFont(t *testing.T) {
	t.Parallel()
	lato, err := fonts.Builtin().Lookup("Lato")
	require.NoError(t, err)
	doc := renderDoc(t, 2, PrintOptions{Font: lato, MarginMM: 12.5, Title: "Dieren"})

	assert.Contains(t, doc, "<title>Dieren</title>")
	assert.Contains(t, doc, "width: 210mm;")
	assert.Contains(t, doc, "height: 297mm;")
	assert.Contains(t, doc, "padding: 12.5mm;")
	assert.Contains(t, doc, "font-family: 'Lato', sans-serif;")
	assert.Contains(t, doc, "https://fonts.googleapis.com/css2?")
	assert.Contains(t, doc, "2 kaarten, 2 pagina")
	assert.Regexp(t, `var autoPrint =\s*false\s*;`, doc)
}

func TestPrintDocument_AutoPrintAndSystemFont(t *testing.T) {
	t.Parallel()
	doc := renderDoc(t, 1, PrintOptions{AutoPrint: true})

	assert.Regexp(t, `var autoPrint =\s*true\s*;`, doc)
	assert.NotContains(t, doc, "fonts.googleapis.com")
	assert.Contains(t, doc, `data-layout-ready="false"`)
	assert.Contains(t, doc, "layoutready")
}

func TestPrintDocument_Empty(t *testing.T) {
	t.Parallel()
	doc := renderDoc(t, 0, PrintOptions{})
	assert.NotContains(t, doc, `class="sheet`)
	assert.Contains(t, doc, "Geen kaarten geladen.")
}

func TestPrintDocument_EscapesText(t *testing.T) {
	t.Parallel()
	set := cards.Set{{ID: "card-0", Term: "<b>x</b>", Definition: "a & b"}}
	var buf bytes.Buffer
	require.NoError(t, PrintDocument(&buf, layout.Compose(set), PrintOptions{}))
	assert.Contains(t, buf.String(), "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, buf.String(), "a &amp; b")
}

func TestRenderPage_Dimensions(t *testing.T) {
	t.Parallel()
	page := layout.Compose(makeSet(3))[0].Front

	img := RenderPage(page, PreviewOptions{})
	assert.Equal(t, image.Rect(0, 0, 840, 1188), img.Bounds())

	img = RenderPage(page, PreviewOptions{Scale: 2, MarginMM: 10})
	assert.Equal(t, image.Rect(0, 0, 420, 594), img.Bounds())
	// margin stays white, the grid corner is inked
	assert.Equal(t, paper, img.NRGBAAt(5, 5))
	assert.Equal(t, ink, img.NRGBAAt(20, 20))
}

func TestRenderPage_BlankCellsStayEmpty(t *testing.T) {
	t.Parallel()
	back := layout.Compose(makeSet(1))[0].Back
	img := RenderPage(back, PreviewOptions{Scale: 2, MarginMM: 0})

	// back slot 0 (top-left) is a blank: only paper inside the cut lines
	for y := 2; y < 594/2-2; y++ {
		for x := 2; x < 420/2-2; x++ {
			require.Equal(t, paper, img.NRGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()
	img := RenderPage(layout.Compose(makeSet(1))[0].Front, PreviewOptions{Scale: 1})
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestWrap(t *testing.T) {
	t.Parallel()
	face := basicfont.Face7x13

	lines := wrap(face, "een trouw huisdier dat blaft", 7*12)
	assert.Equal(t, []string{"een trouw", "huisdier dat", "blaft"}, lines)

	lines = wrap(face, "regel een\nregel twee", 7*40)
	assert.Equal(t, []string{"regel een", "regel twee"}, lines)

	lines = wrap(face, "abcdefghij", 7*4)
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, lines)

	assert.Empty(t, wrap(face, "   ", 100))
}

func TestQRCodePNG(t *testing.T) {
	t.Parallel()
	b, err := QRCodePNG("http://localhost:8080/api/sessions/x/print", 200)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	_, err = QRCodePNG("", 200)
	assert.Error(t, err)
}

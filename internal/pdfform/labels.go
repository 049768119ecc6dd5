// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfform

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// word is one positioned text chunk on a page. h is the font size,
// which stands in for the word height when computing line tolerances.
type word struct {
	page int
	x, y float64
	h    float64
	text string
}

// DefaultLabelProximity is the maximum horizontal gap in points between a
// widget's right edge and the first word of its label.
const DefaultLabelProximity = 80.0

// verticalTolerance bounds how far a text row's baseline may sit from the
// widget's vertical center and still count as the same line.
const verticalTolerance = 6.0

// pageWords extracts positioned text rows from every page. Chunks within a
// row are merged into words before the label search runs.
func pageWords(path string) ([]word, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF for text: %w", err)
	}
	defer f.Close()

	var words []word
	for pageNo := 1; pageNo <= reader.NumPage(); pageNo++ {
		page := reader.Page(pageNo)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			words = append(words, mergeRow(pageNo, row)...)
		}
	}
	return words, nil
}

// mergeRow joins a row's text chunks into words. ledongthuc/pdf often
// yields per-glyph chunks; adjacent chunks are glued together and a gap
// wider than wordGap starts a new word.
func mergeRow(pageNo int, row *pdf.Row) []word {
	const wordGap = 2.5

	var words []word
	var cur *word
	var curRight float64

	for _, t := range row.Content {
		if strings.TrimSpace(t.S) == "" {
			if cur != nil {
				curRight += t.W
			}
			continue
		}
		if cur != nil && t.X-curRight <= wordGap {
			cur.text += t.S
			curRight = t.X + t.W
			continue
		}
		if cur != nil {
			words = append(words, *cur)
		}
		cur = &word{page: pageNo, x: t.X, y: t.Y, h: t.FontSize, text: t.S}
		curRight = t.X + t.W
	}
	if cur != nil {
		words = append(words, *cur)
	}
	return words
}

// findLabel locates the text label belonging to a widget: words on the same
// text line, to the right of the widget, with the first word no farther
// than proximity points away. When the fixed line band turns up nothing,
// the scan repeats with a tolerance derived from the heights of the words
// nearest the widget, which catches forms with irregular line spacing.
// Survey forms place the option text right of its checkbox, so a left-side
// search is not attempted.
func findLabel(f Field, words []word, proximity float64) string {
	if proximity <= 0 {
		proximity = DefaultLabelProximity
	}
	midY := f.Rect.MidY()

	var page []word
	for _, w := range words {
		if w.page == f.Page {
			page = append(page, w)
		}
	}

	if label := labelRightOf(f, page, midY, verticalTolerance, proximity); label != "" {
		return label
	}

	tol := bandTolerance(page, midY)
	if tol <= verticalTolerance {
		return ""
	}
	return labelRightOf(f, page, midY, tol, proximity)
}

// labelRightOf collects the words within tolerance of the widget's line
// and to its right, joining them into the label text.
func labelRightOf(f Field, words []word, midY, tolerance, proximity float64) string {
	var line []word
	for _, w := range words {
		if math.Abs(w.y-midY) > tolerance {
			continue
		}
		if w.x < f.Rect.URx-1 {
			continue
		}
		line = append(line, w)
	}
	if len(line) == 0 {
		return ""
	}

	sort.Slice(line, func(i, j int) bool { return line[i].x < line[j].x })
	if line[0].x-f.Rect.URx > proximity {
		return ""
	}

	// A large jump between consecutive words usually means another
	// column; stop collecting there.
	parts := []string{line[0].text}
	prev := line[0].x
	for _, w := range line[1:] {
		if w.x-prev > proximity {
			break
		}
		parts = append(parts, w.text)
		prev = w.x
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// bandTolerance derives the fallback line tolerance from the average
// height of the fifty words nearest the widget's vertical center, never
// tighter than 3 points.
func bandTolerance(words []word, midY float64) float64 {
	if len(words) == 0 {
		return 0
	}
	nearest := append([]word(nil), words...)
	sort.Slice(nearest, func(i, j int) bool {
		return math.Abs(nearest[i].y-midY) < math.Abs(nearest[j].y-midY)
	})
	if len(nearest) > 50 {
		nearest = nearest[:50]
	}

	var total float64
	for _, w := range nearest {
		total += w.h
	}
	return math.Max(3, 0.6*total/float64(len(nearest)))
}

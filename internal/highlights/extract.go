// Package highlights extracts highlighted passages from a Kindle notebook
// HTML export (a saved copy of read.amazon.co.jp/notebook).
package highlights

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noteLabel is the literal label Kindle prefixes to every note's text.
const noteLabel = "メモ"

// Record is one (location, highlight, note word) triple. A highlighted
// block with K whitespace-separated note words yields K records sharing
// the same location and highlight.
type Record struct {
	Location  string
	Highlight string
	Note      string
}

// Result holds the extracted records plus the locations of highlight
// blocks that carry no note, so the caller can warn about each one.
type Result struct {
	Records          []Record
	MissingNoteLocs  []string
	HighlightedBlock int
}

// Extract parses a notebook export. Blocks without a highlight element
// (note-only blocks and section markers) are skipped entirely.
func Extract(r io.Reader) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse notebook html: %w", err)
	}

	res := &Result{}
	doc.Find("#kp-notebook-annotations div[id]").Each(func(_ int, block *goquery.Selection) {
		highlightEl := block.Find(".kp-notebook-highlight").First()
		if highlightEl.Length() == 0 {
			return
		}
		res.HighlightedBlock++

		// Kindle inserts stray ASCII spaces inside Japanese passages.
		highlight := strings.ReplaceAll(strings.TrimSpace(highlightEl.Text()), " ", "")

		location := ""
		if v, ok := block.Find("input#kp-annotation-location").First().Attr("value"); ok {
			location = strings.TrimSpace(v)
		}

		noteEl := block.Find(".kp-notebook-note").First()
		if noteEl.Length() == 0 {
			res.MissingNoteLocs = append(res.MissingNoteLocs, location)
			return
		}

		noteText := strings.ReplaceAll(joinedText(noteEl), noteLabel, "")
		for _, word := range strings.Fields(noteText) {
			res.Records = append(res.Records, Record{
				Location:  location,
				Highlight: highlight,
				Note:      word,
			})
		}
	})

	return res, nil
}

// joinedText collects the text nodes under sel separated by single spaces,
// so words kept in sibling elements stay distinct words.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) == "#text" {
				if t := strings.TrimSpace(c.Text()); t != "" {
					parts = append(parts, t)
				}
				return
			}
			walk(c)
		})
	}
	walk(sel)
	return strings.Join(parts, " ")
}

// WriteCSV writes the records once, header included, UTF-8 encoded.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Location", "Highlight", "Note"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write([]string{rec.Location, rec.Highlight, rec.Note}); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

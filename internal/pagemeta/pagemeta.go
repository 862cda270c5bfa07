// Package pagemeta extracts lightweight metadata from rendered page markup
// for capture history records.
package pagemeta

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Meta is what we keep about a rendered page.
type Meta struct {
	Title       string
	Description string
}

// Extract pulls the title and meta description out of rendered HTML. It never
// fails: unparseable markup yields an empty Meta, since metadata is advisory.
func Extract(html string) Meta {
	var m Meta
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return m
	}

	m.Title = strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(`meta[name="description"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if content, ok := s.Attr("content"); ok {
			m.Description = strings.TrimSpace(content)
			return false
		}
		return true
	})

	return m
}

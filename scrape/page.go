// Package scrape wraps a downloaded HTML page with the lookups extractors need:
// regex searches over the raw markup and <meta> content by name.
package scrape

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"
)

// NotFoundError reports a required field that could not be located in a page.
type NotFoundError struct {
	Field string
	URL   string
}

func (e *NotFoundError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("unable to extract %s", e.Field)
	}
	return fmt.Sprintf("unable to extract %s from %s", e.Field, e.URL)
}

// metaAttrs are the attributes a <meta> element may name itself by.
var metaAttrs = []string{"itemprop", "name", "property", "id", "http-equiv"}

// Page is a parsed HTML document together with its raw source.
type Page struct {
	URL  string
	HTML string
	doc  *goquery.Document
}

// NewPage parses html. Malformed markup never fails; the HTML parser
// recovers the same way a browser would.
func NewPage(url, html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	return &Page{URL: url, HTML: html, doc: doc}, nil
}

// Search returns the first capture group of re in the raw page source.
// field names what is being looked for in the error.
func (p *Page) Search(re *regexp.Regexp, field string) (string, error) {
	match := re.FindStringSubmatch(p.HTML)
	if len(match) < 2 || match[1] == "" {
		return "", &NotFoundError{Field: field, URL: p.URL}
	}

	return match[1], nil
}

// Meta returns the content of the first <meta> element whose
// itemprop, name, property, id or http-equiv equals name.
// Empty or whitespace-only content counts as absent.
func (p *Page) Meta(name string) mo.Option[string] {
	var found mo.Option[string]

	p.doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !namedAs(s, name) {
			return true
		}

		content, ok := s.Attr("content")
		content = strings.TrimSpace(content)
		if !ok || content == "" {
			return true
		}

		found = mo.Some(content)
		return false
	})

	return found
}

// OpenGraph returns the og:<property> meta content.
func (p *Page) OpenGraph(property string) mo.Option[string] {
	return p.Meta("og:" + property)
}

// Title returns the text of the <title> element.
func (p *Page) Title() mo.Option[string] {
	title := strings.TrimSpace(p.doc.Find("title").First().Text())
	if title == "" {
		return mo.None[string]()
	}
	return mo.Some(title)
}

func namedAs(s *goquery.Selection, name string) bool {
	for _, attr := range metaAttrs {
		if v, ok := s.Attr(attr); ok && strings.EqualFold(strings.TrimSpace(v), name) {
			return true
		}
	}
	return false
}

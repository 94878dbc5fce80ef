package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newscrawl"
)

// Ensure Extractor implements newscrawl.Extractor at compile time.
var _ newscrawl.Extractor = (*Extractor)(nil)

// Extractor recovers article fields using publisher rule sets.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the article HTML once and applies the rule set's
// headline, body and date selector chains.
func (e *Extractor) Extract(html string, rules newscrawl.RuleSet) (*newscrawl.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newscrawl.Errorf(newscrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	extraction := &newscrawl.Extraction{
		Headline: ExtractText(doc, rules.Headline),
		Body:     ExtractText(doc, rules.Body),
	}
	if t, ok := ExtractDate(doc, rules.Date); ok {
		extraction.PublishedAt = &t
	}

	return extraction, nil
}

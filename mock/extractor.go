package mock

import "github.com/fwojciec/newscrawl"

var _ newscrawl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newscrawl.Extractor.
type Extractor struct {
	ExtractFn func(html string, rules newscrawl.RuleSet) (*newscrawl.Extraction, error)
}

func (e *Extractor) Extract(html string, rules newscrawl.RuleSet) (*newscrawl.Extraction, error) {
	return e.ExtractFn(html, rules)
}

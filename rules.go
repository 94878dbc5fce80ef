package newscrawl

import (
	"net/url"
	"strings"
)

// RuleSet bundles the CSS selector lists governing how one publisher's
// pages are parsed. Each list is evaluated in order with first-match-wins
// semantics.
type RuleSet struct {
	// Body selects the article body container.
	Body []string

	// Headline selects the article headline.
	Headline []string

	// Links selects article anchors on the landing page.
	Links []string

	// Date selects the publication timestamp. An empty list means only
	// the generic metadata-tag fallback applies.
	Date []string
}

// GenericRules returns the fallback rule set applied to publishers with no
// registered entry.
func GenericRules() RuleSet {
	return RuleSet{
		Body:     []string{"article", "main", "body"},
		Headline: []string{"h1", "title"},
		Links:    []string{"a"},
	}
}

// Registry maps publisher domains to rule sets. It is built once at
// startup and read-only afterwards, so lookups are safe for concurrent use.
type Registry struct {
	rules   map[string]RuleSet
	generic RuleSet
}

// NewRegistry creates a Registry from a domain-to-rules table. Domain keys
// are normalized the same way request hosts are, so "www.reuters.com" and
// "reuters.com" register the same entry.
func NewRegistry(rules map[string]RuleSet) *Registry {
	m := make(map[string]RuleSet, len(rules))
	for domain, rs := range rules {
		m[NormalizeHost(domain)] = rs
	}
	return &Registry{rules: m, generic: GenericRules()}
}

// RulesFor returns the rule set for the URL's host. Subdomains resolve to
// their registered parent domain, so "markets.reuters.com" matches a
// "reuters.com" entry. Unknown hosts and unparseable URLs get the generic
// rule set; there is no error path.
func (r *Registry) RulesFor(rawURL string) RuleSet {
	u, err := url.Parse(rawURL)
	if err != nil {
		return r.generic
	}
	host := NormalizeHost(u.Hostname())
	for host != "" {
		if rs, ok := r.rules[host]; ok {
			return rs
		}
		i := strings.Index(host, ".")
		if i < 0 {
			break
		}
		host = host[i+1:]
	}
	return r.generic
}

// Generic returns the registry's fallback rule set.
func (r *Registry) Generic() RuleSet {
	return r.generic
}

// NormalizeHost lowercases a host and strips a leading "www." prefix.
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	return strings.TrimPrefix(host, "www.")
}

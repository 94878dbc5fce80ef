// Package yaml loads optional crawl configuration from a YAML file:
// extra landing pages and per-publisher selector rules that extend or
// override the built-in table.
package yaml

import (
	"os"

	"github.com/fwojciec/newscrawl"
	"gopkg.in/yaml.v3"
)

// Config is the file-supplied crawl configuration.
type Config struct {
	// Sites replaces the default landing-page list when non-empty.
	Sites []string `yaml:"sites"`

	// Rules extends the built-in publisher table. Entries for already
	// registered domains override the built-in rule set wholesale.
	Rules map[string]RuleConfig `yaml:"rules"`
}

// RuleConfig mirrors newscrawl.RuleSet in YAML form.
type RuleConfig struct {
	Body     []string `yaml:"body"`
	Headline []string `yaml:"headline"`
	Links    []string `yaml:"links"`
	Date     []string `yaml:"date"`
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newscrawl.Errorf(newscrawl.ENOTFOUND, "read config %s: %v", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, newscrawl.Errorf(newscrawl.EINVALID, "parse config %s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	for domain, rule := range c.Rules {
		if domain == "" {
			return newscrawl.Errorf(newscrawl.EINVALID, "rule with empty domain")
		}
		if len(rule.Body) == 0 && len(rule.Headline) == 0 && len(rule.Links) == 0 && len(rule.Date) == 0 {
			return newscrawl.Errorf(newscrawl.EINVALID, "rule for %s has no selectors", domain)
		}
	}
	return nil
}

// Registry merges the config's rules over the built-in publisher table and
// returns the resulting registry.
func (c *Config) Registry() *newscrawl.Registry {
	rules := newscrawl.DefaultRules()
	for domain, rule := range c.Rules {
		merged := newscrawl.RuleSet{
			Body:     rule.Body,
			Headline: rule.Headline,
			Links:    rule.Links,
			Date:     rule.Date,
		}
		// Partial overrides keep the built-in lists for omitted fields.
		if existing, ok := rules[newscrawl.NormalizeHost(domain)]; ok {
			if merged.Body == nil {
				merged.Body = existing.Body
			}
			if merged.Headline == nil {
				merged.Headline = existing.Headline
			}
			if merged.Links == nil {
				merged.Links = existing.Links
			}
			if merged.Date == nil {
				merged.Date = existing.Date
			}
		}
		rules[newscrawl.NormalizeHost(domain)] = merged
	}
	return newscrawl.NewRegistry(rules)
}

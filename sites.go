package newscrawl

// DefaultSites are the landing pages crawled when no site list is supplied.
func DefaultSites() []string {
	return []string{
		"https://www.marketwatch.com/",
		"https://www.reuters.com/markets/",
		"https://www.cnbc.com/markets/",
		"https://www.barrons.com/",
		"https://www.bloomberg.com/markets",
		"https://www.ft.com/markets",
		"https://www.forbes.com/markets/",
		"https://www.thestreet.com/markets",
		"https://seekingalpha.com/market-news",
		"https://www.moneyweek.com/",
	}
}

// DefaultRules returns the built-in per-publisher selector table.
// Selector lists are ordered by reliability; publishers rework their markup
// often, so each field carries fallbacks.
func DefaultRules() map[string]RuleSet {
	return map[string]RuleSet{
		"marketwatch.com": {
			Body:     []string{"div.article__content", "div.article__body"},
			Headline: []string{"h1.article__headline"},
			Links:    []string{"a.element--article", "a.link"},
			Date:     []string{"time[datetime]", "span.timestamp__date"},
		},
		"reuters.com": {
			Body:     []string{"div.article-body__content", "div.article-body__container"},
			Headline: []string{"h1[data-testid='Heading']", "h1.headline_2zdFM"},
			Links:    []string{"a[data-testid='Heading']", "a.story-card-link", "a.text__text__1FZLe"},
			Date:     []string{"time[data-testid='Timestamp']", "time[datetime]"},
		},
		"cnbc.com": {
			Body:     []string{"div.ArticleBody-articleBody", "div.group"},
			Headline: []string{"h1.ArticleHeader-headline"},
			Links:    []string{"a.Card-title", "a.LatestNews-headline", "a.HeroLedeHero-hed"},
			Date:     []string{"time[datetime]", "span.ArticleHeader-time"},
		},
		"barrons.com": {
			Body:     []string{"div.articleBody"},
			Headline: []string{"h1"},
			Links:    []string{"a[href*='/articles/']"},
			Date:     []string{"time[datetime]", "span.ttdateline__time"},
		},
		"bloomberg.com": {
			Body:     []string{"section[data-component='story-body']", "div.body-copy"},
			Headline: []string{"h1"},
			Links:    []string{"a[href*='/news/']", "a[href*='/articles/']"},
			Date:     []string{"time[datetime]"},
		},
		"ft.com": {
			Body:     []string{"div.article__content", "div.o-typography-wrapper"},
			Headline: []string{"h1"},
			Links:    []string{"a.js-teaser-heading-link", "a.o-teaser__heading"},
			Date:     []string{"time[datetime]"},
		},
		"forbes.com": {
			Body:     []string{"div.f-article-body"},
			Headline: []string{"h1"},
			Links:    []string{"a[href*='/sites/'][href*='/202']", "a.card__headline"},
			Date:     []string{"time[datetime]", "div.date"},
		},
		"thestreet.com": {
			Body:     []string{"div#article-content", "div.body"},
			Headline: []string{"h1"},
			Links:    []string{"a[href*='/markets/']", "a[href*='/investing/']"},
			Date:     []string{"time[datetime]"},
		},
		"seekingalpha.com": {
			Body:     []string{"div[data-test-id='content-container']"},
			Headline: []string{"h1[data-test-id='quote-header']", "h1"},
			Links:    []string{"a[href*='/news/']", "a[href*='/news/stock-market-news']"},
			Date:     []string{"time[datetime]"},
		},
		"moneyweek.com": {
			Body:     []string{"div.article__content"},
			Headline: []string{"h1"},
			Links:    []string{"a.card__title", "a[href*='/news/']"},
			Date:     []string{"time[datetime]"},
		},
	}
}

// DefaultRegistry returns a Registry loaded with the built-in publisher
// table.
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultRules())
}

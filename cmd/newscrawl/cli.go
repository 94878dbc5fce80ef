package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Out         string `arg:"" optional:"" default:"news.csv" help:"Output CSV path"`
	MaxPerSite  int    `default:"50" help:"Maximum article links pursued per site"`
	SitesFile   string `help:"File with landing-page URLs, one per line"`
	SinceDays   *int   `help:"Only keep articles published within the last N days"`
	Concurrency int    `default:"1" help:"Number of sites crawled in parallel"`
	Rules       string `help:"YAML file with extra sites and publisher rules"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
}

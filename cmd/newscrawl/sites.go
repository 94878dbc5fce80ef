package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/fwojciec/newscrawl"
)

// loadSites reads landing-page URLs from a file, one absolute URL per
// line. Blank lines are skipped.
func loadSites(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newscrawl.Errorf(newscrawl.ENOTFOUND, "open sites file %s: %v", path, err)
	}
	defer f.Close()

	var sites []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sites = append(sites, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, newscrawl.Errorf(newscrawl.EINTERNAL, "read sites file %s: %v", path, err)
	}
	if len(sites) == 0 {
		return nil, newscrawl.Errorf(newscrawl.EINVALID, "sites file %s contains no URLs", path)
	}

	return sites, nil
}

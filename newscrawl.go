// Package newscrawl crawls a fixed set of financial-news sites, discovers
// article links on each landing page, extracts headline, body text and
// publication dates using per-publisher selector rules, and emits the
// surviving records as a flat table.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, csv/).
package newscrawl

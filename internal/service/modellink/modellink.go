// Package modellink provides locally used types and their structure for link handling between modules.
package modellink

// LinkSummary describes one user-owned link as exposed to callers, the slug is
// recomputed from the link identifier at read time and never stored.
type LinkSummary struct {
	Slug       string
	URL        string
	VisitCount int64
}

package models

import "fmt"

// CaseRecord is one raw row of weekly case data as it arrives from upstream
// (scraped CDC table, CSV file, or an edited grid). Both fields stay strings
// until aggregation, where unparseable rows are dropped.
type CaseRecord struct {
	WeekStart string `json:"week_start"`
	Cases     string `json:"cases"`
}

func (r *CaseRecord) ToString() string {
	return fmt.Sprintf("CaseRecord(week_start=%s, cases=%s)", r.WeekStart, r.Cases)
}

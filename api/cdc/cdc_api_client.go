package cdc

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"mf-server/api"
	"mf-server/models"
	"mf-server/util"
)

// CDCApiClient embeds the common HTTPClient
type CDCApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	dataPage        string
}

// NewCDCApiClient creates a new instance of CDCApiClient scraping the given
// data page under the client's base URL
func NewCDCApiClient(httpClient *api.HTTPClient, dataPage string) *CDCApiClient {
	return &CDCApiClient{
		HTTPClient: httpClient,
		dataPage:   dataPage,
	}
}

// GetWeeklyCases fetches the CDC data page and extracts the HTML table that
// carries the week_start/cases columns. The page holds several tables; the
// right one is identified by its (normalized) header names, not by position.
func (c *CDCApiClient) GetWeeklyCases() ([]models.CaseRecord, error) {
	body, err := c.Get(c.dataPage, nil)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CDC page: %w", err)
	}

	for _, table := range findTables(doc) {
		rows := tableRows(table)
		if records, ok := recordsFromRows(rows); ok {
			return records, nil
		}
	}
	return nil, fmt.Errorf("no table with columns %q and %q on %s",
		util.WEEK_START_COLUMN, util.CASES_COLUMN, c.dataPage)
}

// recordsFromRows interprets the first row as a header and returns the
// week_start/cases cells of the remaining rows. ok is false when the header
// doesn't carry both columns.
func recordsFromRows(rows [][]string) ([]models.CaseRecord, bool) {
	if len(rows) == 0 {
		return nil, false
	}
	weekIdx, casesIdx := -1, -1
	for i, col := range rows[0] {
		switch util.NormalizeColumnName(col) {
		case util.WEEK_START_COLUMN:
			weekIdx = i
		case util.CASES_COLUMN:
			casesIdx = i
		}
	}
	if weekIdx < 0 || casesIdx < 0 {
		return nil, false
	}

	records := make([]models.CaseRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if weekIdx >= len(row) || casesIdx >= len(row) {
			continue
		}
		records = append(records, models.CaseRecord{
			WeekStart: row[weekIdx],
			Cases:     row[casesIdx],
		})
	}
	return records, true
}

// findTables collects every <table> node in document order.
func findTables(n *html.Node) []*html.Node {
	var tables []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "table" {
			tables = append(tables, node)
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return tables
}

// tableRows flattens a <table> into its cell texts, one slice per <tr>.
func tableRows(table *html.Node) [][]string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			var cells []string
			for cell := node.FirstChild; cell != nil; cell = cell.NextSibling {
				if cell.Type == html.ElementNode && (cell.Data == "td" || cell.Data == "th") {
					cells = append(cells, strings.TrimSpace(nodeText(cell)))
				}
			}
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(table)
	return rows
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		sb.WriteString(nodeText(child))
	}
	return sb.String()
}

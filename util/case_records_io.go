package util

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"mf-server/models"
)

const WEEK_START_COLUMN = "week_start"
const CASES_COLUMN = "cases"

// ReadCaseRecordsFromCSV loads raw case records from a CSV file on disk. The
// header row is located by normalized column name, so "Week Start" and
// "week_start" both resolve. Rows are returned as-is; coercion and dropping
// of malformed values happen later in the pipeline.
func ReadCaseRecordsFromCSV(filePath string) ([]models.CaseRecord, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %q: %w", filePath, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV %q has no header row", filePath)
	}

	weekIdx, casesIdx := -1, -1
	for i, col := range rows[0] {
		switch NormalizeColumnName(col) {
		case WEEK_START_COLUMN:
			weekIdx = i
		case CASES_COLUMN:
			casesIdx = i
		}
	}
	if weekIdx < 0 || casesIdx < 0 {
		return nil, fmt.Errorf("CSV %q must contain the columns %q and %q", filePath, WEEK_START_COLUMN, CASES_COLUMN)
	}

	records := make([]models.CaseRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if weekIdx >= len(row) || casesIdx >= len(row) {
			continue
		}
		records = append(records, models.CaseRecord{
			WeekStart: strings.TrimSpace(row[weekIdx]),
			Cases:     strings.TrimSpace(row[casesIdx]),
		})
	}
	return records, nil
}

// WriteCaseRecordsToCSV saves case records back to a CSV file, the same shape
// ReadCaseRecordsFromCSV loads. Used to keep a local snapshot of scraped or
// edited data.
func WriteCaseRecordsToCSV(filePath string, records []models.CaseRecord) error {
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", filePath, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{WEEK_START_COLUMN, CASES_COLUMN}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write([]string{rec.WeekStart, rec.Cases}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV %q: %w", filePath, err)
	}
	return nil
}

// NormalizeColumnName cleans a header cell the way the upstream tables are
// cleaned: trim, lowercase, spaces to underscores.
func NormalizeColumnName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

package cdc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"mf-server/config"
	"mf-server/util"
)

func TestGetWeeklyCases_MockReadsFixture(t *testing.T) {
	// Arrange: point the resource lookup at the repo root
	root, err := filepath.Abs("../..")
	if err != nil {
		t.Fatalf("failed to resolve repo root: %v", err)
	}
	t.Setenv("PROJECT_ROOT", root)

	client := NewCDCApiClientMock()

	expected_records, err := util.ReadCaseRecordsFromCSV(config.GetResourcePath(config.MEASLES_CASES_RESOURCE))
	if err != nil {
		t.Errorf("expected no error when reading expected records, got %v", err)
	}

	// Act
	records, err := client.GetWeeklyCases()

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	assert.Equal(t, expected_records, records, "Records dont match")
	assert.NotEmpty(t, records)
}

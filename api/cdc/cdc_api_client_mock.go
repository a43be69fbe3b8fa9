package cdc

import (
	"fmt"

	"mf-server/config"
	"mf-server/models"
	"mf-server/util"
)

// CDCApiClientMock embeds mocked logic for the CDC api client
type CDCApiClientMock struct {
}

// NewCDCApiClientMock creates a new instance of CDCApiClientMock
func NewCDCApiClientMock() *CDCApiClientMock {
	return &CDCApiClientMock{}
}

// GetWeeklyCases loads the weekly case records from the bundled CSV fixture
// instead of scraping the live CDC page
func (c *CDCApiClientMock) GetWeeklyCases() ([]models.CaseRecord, error) {
	records, err := util.ReadCaseRecordsFromCSV(config.GetResourcePath(config.MEASLES_CASES_RESOURCE))
	if err != nil {
		fmt.Println("Could not read case records from csv")
		return nil, err
	}

	return records, nil
}

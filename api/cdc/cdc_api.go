package cdc

import (
	"mf-server/models"
)

// CDCAPI defines the interface for sourcing weekly case data from the CDC
type CDCAPI interface {
	GetWeeklyCases() ([]models.CaseRecord, error)
}

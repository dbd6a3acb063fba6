package interfaces

import (
	"time"

	"nishad_gateway/internal/domain/entities"
)

// IReportRenderer renders the downloadable estimate report.
type IReportRenderer interface {
	RenderEstimate(sub entities.EstimateSubmission, res entities.EstimateResult) ([]byte, error)
}

// ILeadExporter renders the admin lead spreadsheet.
type ILeadExporter interface {
	ExportLeads(leads []entities.Lead, loc *time.Location) ([]byte, error)
}

package request

import (
	"strings"

	"nishad_gateway/internal/domain/entities"
)

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateLeadStatusRequest) LeadStatus() entities.LeadStatus {
	return entities.LeadStatus(strings.TrimSpace(r.Status))
}

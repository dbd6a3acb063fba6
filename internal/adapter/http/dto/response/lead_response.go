package response

import "nishad_gateway/internal/domain/entities"

// LeadsResponse keeps the {success, leads} shape the admin panel reads.
type LeadsResponse struct {
	Success bool            `json:"success"`
	Leads   []entities.Lead `json:"leads"`
}

func FromLeads(leads []entities.Lead) LeadsResponse {
	if leads == nil {
		leads = []entities.Lead{}
	}
	return LeadsResponse{Success: true, Leads: leads}
}

package request

import "nishad_gateway/internal/usecase"

// ServiceRequest is used for create and partial update. Absent fields are nil.
type ServiceRequest struct {
	Index    *string `json:"index" binding:"omitempty,max=16"`
	Title    *string `json:"title" binding:"omitempty,max=160"`
	Slug     *string `json:"slug" binding:"omitempty,max=160"`
	IsActive *bool   `json:"isActive"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Index:    r.Index,
		Title:    r.Title,
		Slug:     r.Slug,
		IsActive: r.IsActive,
	}
}

package entities

import "time"

// Service is a top level offering shown in the website menu
// (e.g. "Company Formation").
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (slug-index): slug
type Service struct {
	ID        string    `json:"id"`
	Index     string    `json:"index"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubService is a page under a Service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (service_id-index): service_id
type SubService struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"serviceId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MenuSubService struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// MenuItem is an active service with its active subservices, as rendered by
// the navbar.
type MenuItem struct {
	ID          string           `json:"id"`
	Index       string           `json:"index"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	SubServices []MenuSubService `json:"subservices"`
}

package entities

import "time"

// LeadStatus is the sales follow-up state of a lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
)

// LeadSourceCalculator marks leads captured by the KSA expansion cost calculator.
const LeadSourceCalculator = "ksa-expansion-cost-calculator"

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted:
		return true
	}
	return false
}

// LeadSupports mirrors the add-on toggles of the calculator.
type LeadSupports struct {
	BankSupport       bool `json:"bankSupport"`
	AccountingSupport bool `json:"accountingSupport"`
	VROSupport        bool `json:"vroSupport"`
}

// LeadEstimate is the part of the EstimateResult kept with the lead so sales
// sees what the prospect was shown.
type LeadEstimate struct {
	Min              int    `json:"min"`
	Max              int    `json:"max"`
	TimelineText     string `json:"timelineText"`
	RecommendedSetup string `json:"recommendedSetup"`
	SuggestedCity    string `json:"suggestedCity"`
	ReportID         string `json:"reportId"`
}

// Lead is a calculator submission persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
type Lead struct {
	ID           string       `json:"id"`
	FullName     string       `json:"fullName"`
	Email        string       `json:"email"`
	Mobile       string       `json:"mobile"`
	InvestorType string       `json:"investorType"`
	Activity     string       `json:"activity"`
	City         string       `json:"city"`
	Timeline     string       `json:"timeline"`
	Visas        int          `json:"visas"`
	Supports     LeadSupports `json:"supports"`
	Estimate     LeadEstimate `json:"estimate"`
	Source       string       `json:"source"`
	Status       LeadStatus   `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// LeadStats feeds the admin dashboard cards.
type LeadStats struct {
	Total  int    `json:"total"`
	Today  int    `json:"today"`
	Recent []Lead `json:"recent"`
}

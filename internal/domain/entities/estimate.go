package entities

import "strings"

// InvestorType is who is setting up the Saudi entity.
type InvestorType string

const (
	InvestorIndividual InvestorType = "Individual"
	InvestorCompany    InvestorType = "Company"
	InvestorStartup    InvestorType = "Startup"
	InvestorInvestor   InvestorType = "Investor"
)

// Activity is the business activity the licence is requested for.
type Activity string

const (
	ActivityITSoftware   Activity = "IT / Software"
	ActivityTrading      Activity = "Trading"
	ActivityConsulting   Activity = "Consulting"
	ActivityRestaurant   Activity = "Restaurant"
	ActivityConstruction Activity = "Construction"
	ActivityLogistics    Activity = "Logistics"
	ActivityHealthcare   Activity = "Healthcare"
)

// City is the preferred KSA city for the setup.
type City string

const (
	CityRiyadh City = "Riyadh"
	CityJeddah City = "Jeddah"
	CityDammam City = "Dammam"
	CityKhobar City = "Khobar"
)

// Timeline is the setup speed the investor asked for.
type Timeline string

const (
	TimelineUrgent   Timeline = "Urgent"
	TimelineNormal   Timeline = "Normal"
	TimelineFlexible Timeline = "Flexible"
)

var (
	InvestorTypes = []InvestorType{InvestorIndividual, InvestorCompany, InvestorStartup, InvestorInvestor}
	Activities    = []Activity{ActivityITSoftware, ActivityTrading, ActivityConsulting, ActivityRestaurant, ActivityConstruction, ActivityLogistics, ActivityHealthcare}
	Cities        = []City{CityRiyadh, CityJeddah, CityDammam, CityKhobar}
	Timelines     = []Timeline{TimelineUrgent, TimelineNormal, TimelineFlexible}
)

var timelineLabels = map[Timeline]string{
	TimelineUrgent:   "Urgent (1-2 weeks)",
	TimelineNormal:   "Normal (3-4 weeks)",
	TimelineFlexible: "Flexible (1-2 months)",
}

// Label is the wording shown on the calculator form. Unknown values are
// returned unchanged.
func (t Timeline) Label() string {
	if l, ok := timelineLabels[t]; ok {
		return l
	}
	return string(t)
}

// ParseInvestorType matches case-insensitively. ok is false for unknown values.
func ParseInvestorType(v string) (InvestorType, bool) {
	v = strings.TrimSpace(v)
	for _, it := range InvestorTypes {
		if strings.EqualFold(v, string(it)) {
			return it, true
		}
	}
	return InvestorType(v), false
}

// ParseActivity ignores spacing around the slash so "IT/Software" and
// "IT / Software" are the same activity.
func ParseActivity(v string) (Activity, bool) {
	v = strings.TrimSpace(v)
	key := compactActivity(v)
	for _, a := range Activities {
		if compactActivity(string(a)) == key {
			return a, true
		}
	}
	return Activity(v), false
}

func compactActivity(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}

func ParseCity(v string) (City, bool) {
	v = strings.TrimSpace(v)
	for _, c := range Cities {
		if strings.EqualFold(v, string(c)) {
			return c, true
		}
	}
	return City(v), false
}

// ParseTimeline accepts both the short value ("Urgent") and the form label
// ("Urgent (1-2 weeks)").
func ParseTimeline(v string) (Timeline, bool) {
	v = strings.TrimSpace(v)
	for _, t := range Timelines {
		if strings.EqualFold(v, string(t)) || strings.EqualFold(v, t.Label()) {
			return t, true
		}
	}
	return Timeline(v), false
}

// EstimateInput is the calculator questionnaire.
//
// Enum fields are expected to be validated by the caller. The estimator treats
// unknown or empty values as "no adjustment".
type EstimateInput struct {
	InvestorType      InvestorType `json:"investorType"`
	Activity          Activity     `json:"activity"`
	City              City         `json:"city"`
	Timeline          Timeline     `json:"timeline"`
	VisaCount         int          `json:"visas"`
	BankSupport       bool         `json:"bankSupport"`
	AccountingSupport bool         `json:"accountingSupport"`
	VROSupport        bool         `json:"vroSupport"`
}

// BreakdownItem is one line of the itemized estimate, in SAR.
type BreakdownItem struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// IsZero reports whether the line contributes nothing (disabled add-on, no visas).
func (b BreakdownItem) IsZero() bool {
	return b.Min == 0 && b.Max == 0
}

// EstimateResult is the computed cost band. It is a value object: it is never
// persisted on its own, only snapshotted into a Lead.
type EstimateResult struct {
	Min              int             `json:"min"`
	Max              int             `json:"max"`
	TimelineText     string          `json:"timelineText"`
	RecommendedSetup string          `json:"recommendedSetup"`
	SuggestedCity    string          `json:"suggestedCity"`
	Includes         []string        `json:"includes"`
	ExtraAddons      []string        `json:"extraAddons"`
	Notes            []string        `json:"notes"`
	Breakdown        []BreakdownItem `json:"breakdown"`
	ReportID         string          `json:"reportId"`
	ReportDate       string          `json:"reportDate"`
}

// Contact is who asked for the estimate.
type Contact struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
}

// EstimateSubmission is a calculator form as posted by the website.
type EstimateSubmission struct {
	Contact Contact
	Input   EstimateInput
}

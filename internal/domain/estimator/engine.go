// Package estimator prices a KSA business setup from the calculator
// questionnaire.
//
// The engine is a pure function of its input, its pricing tables, its clock
// and its report id generator. It never validates: unknown or empty enum
// values simply skip their adjustment.
package estimator

import (
	"fmt"
	"math"
	"time"

	"nishad_gateway/internal/domain/entities"
)

const (
	setupStartup  = "LLC (Startup Friendly Setup)"
	setupCompany  = "LLC (Foreign Company Expansion)"
	setupStandard = "LLC (Standard Business Setup)"

	disclaimerNote = "This estimate is an approximate range. Final cost may vary based on approvals and documentation."

	reportDateLayout = "02 Jan 2006"

	addonVRO        = "VRO support"
	addonAccounting = "Accounting package"
	addonBank       = "Bank setup support"
)

var baselineIncludes = []string{
	"Company registration",
	"Documentation support",
	"Initial compliance guidance",
}

// Clock returns the current time.
type Clock func() time.Time

// ReportIDGenerator builds the identifier printed on the downloadable report.
type ReportIDGenerator func(now time.Time) string

type Option func(*Engine)

func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.now = c
		}
	}
}

func WithReportIDGenerator(g ReportIDGenerator) Option {
	return func(e *Engine) {
		if g != nil {
			e.reportID = g
		}
	}
}

// WithLocation sets the timezone reportDate is rendered in.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

type Engine struct {
	tables   PricingTables
	now      Clock
	reportID ReportIDGenerator
	loc      *time.Location
}

func New(tables PricingTables, opts ...Option) *Engine {
	e := &Engine{
		tables:   tables.clone(),
		now:      time.Now,
		reportID: NewRandomReportID,
		loc:      time.UTC,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate computes the cost band for in.
//
// Multipliers compound on the running total in the order activity, city,
// timeline. Visa and add-on costs are added afterwards, then both bounds are
// rounded once.
func (e *Engine) Estimate(in entities.EstimateInput) entities.EstimateResult {
	t := e.tables
	lo, hi := t.Base.Min, t.Base.Max

	if m, ok := t.ActivityMultipliers[in.Activity]; ok {
		lo *= m
		hi *= m
	}
	if m, ok := t.CityMultipliers[in.City]; ok {
		lo *= m
		hi *= m
	}

	timelineText := t.DefaultTimelineText
	if rule, ok := t.Timelines[in.Timeline]; ok {
		lo *= rule.MinFactor
		hi *= rule.MaxFactor
		timelineText = rule.Text
	}

	visas := float64(in.VisaCount)
	lo += visas * t.VisaPerUnit.Min
	hi += visas * t.VisaPerUnit.Max

	if in.BankSupport {
		lo += t.BankSupport.Min
		hi += t.BankSupport.Max
	}
	if in.AccountingSupport {
		lo += t.AccountingSupport.Min
		hi += t.AccountingSupport.Max
	}
	if in.VROSupport {
		lo += t.VROSupport.Min
		hi += t.VROSupport.Max
	}

	// report id year and report date must agree in the business timezone
	now := e.now().In(e.loc)
	suggestedCity := string(in.City)
	if suggestedCity == "" {
		suggestedCity = string(t.FallbackCity)
	}

	return entities.EstimateResult{
		Min:              int(math.Round(lo)),
		Max:              int(math.Round(hi)),
		TimelineText:     timelineText,
		RecommendedSetup: recommendedSetup(in.InvestorType),
		SuggestedCity:    suggestedCity,
		Includes:         append([]string(nil), baselineIncludes...),
		ExtraAddons:      extraAddons(in),
		Notes:            buildNotes(in),
		Breakdown:        e.breakdown(in),
		ReportID:         e.reportID(now),
		ReportDate:       now.Format(reportDateLayout),
	}
}

func recommendedSetup(it entities.InvestorType) string {
	switch it {
	case entities.InvestorStartup:
		return setupStartup
	case entities.InvestorCompany:
		return setupCompany
	default:
		return setupStandard
	}
}

func extraAddons(in entities.EstimateInput) []string {
	addons := []string{}
	if in.VROSupport {
		addons = append(addons, addonVRO)
	}
	if in.AccountingSupport {
		addons = append(addons, addonAccounting)
	}
	if in.BankSupport {
		addons = append(addons, addonBank)
	}
	return addons
}

// buildNotes explains the estimate. The order is fixed and the disclaimer is
// always last.
func buildNotes(in entities.EstimateInput) []string {
	notes := make([]string, 0, 5)
	if in.Activity != "" {
		notes = append(notes, fmt.Sprintf("Because you selected “%s”, your licensing and compliance requirements may affect the final cost.", in.Activity))
	}
	if in.City != "" {
		notes = append(notes, fmt.Sprintf("Your preferred city “%s” influences operational and setup support cost based on local requirements.", in.City))
	}
	if in.VisaCount > 0 {
		notes = append(notes, fmt.Sprintf("You selected %d visa(s) for Year 1, which adds visa & residency processing cost.", in.VisaCount))
	}
	if in.Timeline != "" {
		notes = append(notes, fmt.Sprintf("Your timeline preference is “%s”.", in.Timeline.Label()))
	}
	return append(notes, disclaimerNote)
}

func (e *Engine) breakdown(in entities.EstimateInput) []entities.BreakdownItem {
	t := e.tables
	visas := float64(in.VisaCount)
	return []entities.BreakdownItem{
		line("Company registration & licensing", t.Registration, true),
		line("Documentation & compliance support", t.Documentation, true),
		line("Visa processing (per visa)", Range{Min: visas * t.VisaPerUnit.Min, Max: visas * t.VisaPerUnit.Max}, true),
		line(addonBank, t.BankSupport, in.BankSupport),
		line(addonAccounting, t.AccountingSupport, in.AccountingSupport),
		line(addonVRO, t.VROSupport, in.VROSupport),
	}
}

func line(label string, r Range, enabled bool) entities.BreakdownItem {
	if !enabled {
		return entities.BreakdownItem{Label: label}
	}
	return entities.BreakdownItem{Label: label, Min: int(math.Round(r.Min)), Max: int(math.Round(r.Max))}
}

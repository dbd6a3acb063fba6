package estimator

import "nishad_gateway/internal/domain/entities"

// Range is a SAR cost band.
type Range struct {
	Min float64
	Max float64
}

// TimelineRule scales the running range and sets the quoted duration.
type TimelineRule struct {
	MinFactor float64
	MaxFactor float64
	Text      string
}

// PricingTables holds every constant the engine prices with. Engines copy the
// tables they are given, so callers may keep mutating their own value.
type PricingTables struct {
	Base                Range
	ActivityMultipliers map[entities.Activity]float64
	CityMultipliers     map[entities.City]float64
	Timelines           map[entities.Timeline]TimelineRule
	DefaultTimelineText string

	VisaPerUnit       Range
	BankSupport       Range
	AccountingSupport Range
	VROSupport        Range

	// Breakdown-only lines. They are informative and do not feed Min/Max.
	Registration  Range
	Documentation Range

	FallbackCity entities.City
}

// DefaultPricingTables returns the published 2025 price list. Each call
// returns a fresh value.
func DefaultPricingTables() PricingTables {
	return PricingTables{
		Base: Range{Min: 18000, Max: 28000},
		ActivityMultipliers: map[entities.Activity]float64{
			entities.ActivityITSoftware:   1.15,
			entities.ActivityTrading:      1.25,
			entities.ActivityConsulting:   1.1,
			entities.ActivityRestaurant:   1.35,
			entities.ActivityConstruction: 1.4,
			entities.ActivityLogistics:    1.3,
			entities.ActivityHealthcare:   1.5,
		},
		CityMultipliers: map[entities.City]float64{
			entities.CityRiyadh: 1.15,
			entities.CityJeddah: 1.1,
			entities.CityDammam: 1.05,
			entities.CityKhobar: 1.05,
		},
		Timelines: map[entities.Timeline]TimelineRule{
			entities.TimelineUrgent:   {MinFactor: 1.15, MaxFactor: 1.25, Text: "7–14 working days"},
			entities.TimelineNormal:   {MinFactor: 1, MaxFactor: 1, Text: "3–4 weeks"},
			entities.TimelineFlexible: {MinFactor: 0.95, MaxFactor: 1, Text: "4–8 weeks"},
		},
		DefaultTimelineText: "3–4 weeks",

		VisaPerUnit:       Range{Min: 3500, Max: 5500},
		BankSupport:       Range{Min: 2500, Max: 4500},
		AccountingSupport: Range{Min: 1500, Max: 3500},
		VROSupport:        Range{Min: 4000, Max: 7000},

		Registration:  Range{Min: 12000, Max: 18000},
		Documentation: Range{Min: 3000, Max: 6000},

		FallbackCity: entities.CityRiyadh,
	}
}

func (t PricingTables) clone() PricingTables {
	out := t
	out.ActivityMultipliers = make(map[entities.Activity]float64, len(t.ActivityMultipliers))
	for k, v := range t.ActivityMultipliers {
		out.ActivityMultipliers[k] = v
	}
	out.CityMultipliers = make(map[entities.City]float64, len(t.CityMultipliers))
	for k, v := range t.CityMultipliers {
		out.CityMultipliers[k] = v
	}
	out.Timelines = make(map[entities.Timeline]TimelineRule, len(t.Timelines))
	for k, v := range t.Timelines {
		out.Timelines[k] = v
	}
	return out
}

package request

import (
	"testing"

	"nishad_gateway/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

func validRequest() EstimateRequest {
	return EstimateRequest{
		FullName:     " Omar Haddad ",
		Email:        "omar@example.com",
		Mobile:       "0501234567",
		InvestorType: "company",
		Activity:     "IT/Software",
		City:         "riyadh",
		Timeline:     "Urgent (1-2 weeks)",
		Visas:        3,
		VROSupport:   true,
	}
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	if err := RegisterEnumValidations(v); err != nil {
		t.Fatalf("register: %v", err)
	}
	return v
}

func TestEstimateRequest_ToSubmission(t *testing.T) {
	sub := validRequest().ToSubmission()

	if sub.Contact.FullName != "Omar Haddad" {
		t.Fatalf("expected trimmed name, got %q", sub.Contact.FullName)
	}
	want := entities.EstimateInput{
		InvestorType: entities.InvestorCompany,
		Activity:     entities.ActivityITSoftware,
		City:         entities.CityRiyadh,
		Timeline:     entities.TimelineUrgent,
		VisaCount:    3,
		VROSupport:   true,
	}
	if sub.Input != want {
		t.Fatalf("unexpected input: %+v", sub.Input)
	}
}

func TestEstimateRequest_Validation(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		name  string
		mut   func(r *EstimateRequest)
		valid bool
	}{
		{name: "valid", mut: func(r *EstimateRequest) {}, valid: true},
		{name: "unknown activity", mut: func(r *EstimateRequest) { r.Activity = "Mining" }},
		{name: "unknown city", mut: func(r *EstimateRequest) { r.City = "Mecca" }},
		{name: "unknown investor", mut: func(r *EstimateRequest) { r.InvestorType = "Government" }},
		{name: "unknown timeline", mut: func(r *EstimateRequest) { r.Timeline = "Yesterday" }},
		{name: "too many visas", mut: func(r *EstimateRequest) { r.Visas = 101 }},
		{name: "negative visas", mut: func(r *EstimateRequest) { r.Visas = -1 }},
		{name: "bad email", mut: func(r *EstimateRequest) { r.Email = "not-an-email" }},
		{name: "missing name", mut: func(r *EstimateRequest) { r.FullName = "" }},
		{name: "zero visas allowed", mut: func(r *EstimateRequest) { r.Visas = 0 }, valid: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRequest()
			tc.mut(&r)
			err := v.Struct(r)
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestEstimateReportRequest_Validation(t *testing.T) {
	v := newValidator(t)
	r := EstimateReportRequest{EstimateRequest: validRequest(), ReportID: "NG-2026-123456"}
	if err := v.Struct(r); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

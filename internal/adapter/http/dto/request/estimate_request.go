package request

import (
	"strings"

	"nishad_gateway/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// EstimateRequest is the calculator form posted by the website.
type EstimateRequest struct {
	FullName          string `json:"fullName" binding:"required,max=120"`
	Email             string `json:"email" binding:"required,email,max=254"`
	Mobile            string `json:"mobile" binding:"required,max=32"`
	InvestorType      string `json:"investorType" binding:"required,investor_type"`
	Activity          string `json:"activity" binding:"required,business_activity"`
	City              string `json:"city" binding:"required,ksa_city"`
	Timeline          string `json:"timeline" binding:"required,setup_timeline"`
	Visas             int    `json:"visas" binding:"min=0,max=100"`
	BankSupport       bool   `json:"bankSupport"`
	AccountingSupport bool   `json:"accountingSupport"`
	VROSupport        bool   `json:"vroSupport"`
}

// EstimateReportRequest asks for the PDF of an estimate. ReportID is the id
// the visitor was shown, so the PDF carries the same reference.
type EstimateReportRequest struct {
	EstimateRequest
	ReportID string `json:"reportId" binding:"omitempty,max=32"`
}

func (r EstimateRequest) ToSubmission() entities.EstimateSubmission {
	investor, _ := entities.ParseInvestorType(r.InvestorType)
	activity, _ := entities.ParseActivity(r.Activity)
	city, _ := entities.ParseCity(r.City)
	timeline, _ := entities.ParseTimeline(r.Timeline)

	return entities.EstimateSubmission{
		Contact: entities.Contact{
			FullName: strings.TrimSpace(r.FullName),
			Email:    strings.TrimSpace(r.Email),
			Mobile:   strings.TrimSpace(r.Mobile),
		},
		Input: entities.EstimateInput{
			InvestorType:      investor,
			Activity:          activity,
			City:              city,
			Timeline:          timeline,
			VisaCount:         r.Visas,
			BankSupport:       r.BankSupport,
			AccountingSupport: r.AccountingSupport,
			VROSupport:        r.VROSupport,
		},
	}
}

// RegisterValidators adds the calculator enum tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterEnumValidations(v)
}

func RegisterEnumValidations(v *validator.Validate) error {
	rules := map[string]func(string) bool{
		"investor_type": func(s string) bool {
			_, ok := entities.ParseInvestorType(s)
			return ok
		},
		"business_activity": func(s string) bool {
			_, ok := entities.ParseActivity(s)
			return ok
		},
		"ksa_city": func(s string) bool {
			_, ok := entities.ParseCity(s)
			return ok
		},
		"setup_timeline": func(s string) bool {
			_, ok := entities.ParseTimeline(s)
			return ok
		},
	}
	for tag, valid := range rules {
		valid := valid
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
		if err != nil {
			return err
		}
	}
	return nil
}

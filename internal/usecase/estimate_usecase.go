package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/domain/estimator"
	"nishad_gateway/internal/infrastructure/metrics"
	"nishad_gateway/internal/usecase/interfaces"
)

var (
	ErrInvalidEstimateInput = errors.New("invalid estimate input")
	ErrReportUnavailable    = errors.New("report rendering unavailable")
)

const (
	leadCaptureTimeout = 15 * time.Second
	reportFileNameFmt  = "KSA_Expansion_Report_%s.pdf"
)

var reportIDPattern = regexp.MustCompile(`^NG-\d{4}-\d{6}$`)

// EstimateReport is the rendered PDF for a calculator submission.
type EstimateReport struct {
	Result   entities.EstimateResult
	FileName string
	Content  []byte
}

// IEstimateUseCase exposes the KSA expansion cost calculator.
//
//   - POST /estimates        => Calculate()
//   - POST /estimates/report => RenderReport()
type IEstimateUseCase interface {
	Calculate(ctx context.Context, sub entities.EstimateSubmission) (entities.EstimateResult, error)
	RenderReport(ctx context.Context, sub entities.EstimateSubmission, reportID string) (EstimateReport, error)
}

type EstimateUseCase struct {
	engine   *estimator.Engine
	leads    ILeadUseCase
	renderer interfaces.IReportRenderer
	metrics  *metrics.Metrics
	// dispatch runs lead capture off the request path.
	dispatch func(func())
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(engine *estimator.Engine, leads ILeadUseCase, renderer interfaces.IReportRenderer, m *metrics.Metrics) *EstimateUseCase {
	return &EstimateUseCase{
		engine:   engine,
		leads:    leads,
		renderer: renderer,
		metrics:  m,
		dispatch: func(f func()) { go f() },
	}
}

// Calculate prices the submission and hands the lead to the lead use case
// without waiting for it. Capture failures are logged and never reach the caller.
func (u *EstimateUseCase) Calculate(ctx context.Context, sub entities.EstimateSubmission) (entities.EstimateResult, error) {
	if err := validateSubmission(sub); err != nil {
		return entities.EstimateResult{}, err
	}

	start := time.Now()
	res := u.engine.Estimate(sub.Input)
	u.metrics.ObserveEstimate(string(sub.Input.Activity), string(sub.Input.City), start)
	log.Printf("[estimate][usecase] calculated report_id=%s min=%d max=%d", res.ReportID, res.Min, res.Max)

	if u.leads != nil {
		bg := context.WithoutCancel(ctx)
		u.dispatch(func() {
			cctx, cancel := context.WithTimeout(bg, leadCaptureTimeout)
			defer cancel()
			if _, err := u.leads.Capture(cctx, sub, res); err != nil {
				log.Printf("[estimate][usecase] lead capture failed report_id=%s err=%v", res.ReportID, err)
			}
		})
	}

	return res, nil
}

// RenderReport prices the submission again and renders the PDF. When reportID
// is a well-formed id (the one the visitor was shown) it is kept on the report.
func (u *EstimateUseCase) RenderReport(ctx context.Context, sub entities.EstimateSubmission, reportID string) (EstimateReport, error) {
	if u.renderer == nil {
		return EstimateReport{}, ErrReportUnavailable
	}
	if err := validateSubmission(sub); err != nil {
		return EstimateReport{}, err
	}

	res := u.engine.Estimate(sub.Input)
	if reportID = strings.TrimSpace(reportID); reportIDPattern.MatchString(reportID) {
		res.ReportID = reportID
	}

	content, err := u.renderer.RenderEstimate(sub, res)
	if err != nil {
		log.Printf("[estimate][usecase] report render failed report_id=%s err=%v", res.ReportID, err)
		return EstimateReport{}, err
	}
	u.metrics.IncrementReportsRendered()

	return EstimateReport{
		Result:   res,
		FileName: fmt.Sprintf(reportFileNameFmt, res.ReportID),
		Content:  content,
	}, nil
}

func validateSubmission(sub entities.EstimateSubmission) error {
	if err := validateContact(sub.Contact); err != nil {
		return err
	}
	if sub.Input.VisaCount < 0 {
		return ErrInvalidEstimateInput
	}
	return nil
}

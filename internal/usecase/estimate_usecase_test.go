package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/domain/estimator"
	"nishad_gateway/internal/infrastructure/metrics"
	mock_interfaces "nishad_gateway/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

func newTestEstimateEngine() *estimator.Engine {
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	return estimator.New(estimator.DefaultPricingTables(),
		estimator.WithClock(func() time.Time { return now }),
		estimator.WithReportIDGenerator(func(t time.Time) string { return estimator.FormatReportID(t, 654321) }),
	)
}

func syncDispatch(f func()) { f() }

func TestEstimateUseCase_Calculate(t *testing.T) {
	t.Run("invalid contact", func(t *testing.T) {
		uc := NewEstimateUseCase(newTestEstimateEngine(), nil, nil, nil)
		sub := sampleSubmission()
		sub.Contact.FullName = ""
		_, err := uc.Calculate(context.Background(), sub)
		if !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("expected ErrInvalidContact, got %v", err)
		}
	})

	t.Run("negative visas", func(t *testing.T) {
		uc := NewEstimateUseCase(newTestEstimateEngine(), nil, nil, nil)
		sub := sampleSubmission()
		sub.Input.VisaCount = -1
		_, err := uc.Calculate(context.Background(), sub)
		if !errors.Is(err, ErrInvalidEstimateInput) {
			t.Fatalf("expected ErrInvalidEstimateInput, got %v", err)
		}
	})

	t.Run("success captures lead with same report id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		m := metrics.New(prometheus.NewRegistry())
		leads := NewLeadUseCase(repo, nil, nil, nil, m)
		uc := NewEstimateUseCase(newTestEstimateEngine(), leads, nil, m)
		uc.dispatch = syncDispatch

		var captured entities.Lead
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.Lead) (entities.Lead, error) {
			captured = l
			return l, nil
		})

		res, err := uc.Calculate(context.Background(), sampleSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ReportID != "NG-2026-654321" {
			t.Fatalf("unexpected report id %q", res.ReportID)
		}
		if res.Min <= 0 || res.Min > res.Max {
			t.Fatalf("unexpected band %d-%d", res.Min, res.Max)
		}
		if captured.Estimate.ReportID != res.ReportID || captured.Estimate.Min != res.Min || captured.Estimate.Max != res.Max {
			t.Fatalf("lead snapshot does not match result: %+v", captured.Estimate)
		}
		if got := testutil.ToFloat64(m.LeadsCaptured); got != 1 {
			t.Fatalf("expected 1 lead captured, got %v", got)
		}
		if got := testutil.ToFloat64(m.EstimatesTotal.WithLabelValues(string(entities.ActivityTrading), string(entities.CityJeddah))); got != 1 {
			t.Fatalf("expected 1 estimate counted, got %v", got)
		}
	})

	t.Run("lead capture failure does not fail estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		m := metrics.New(prometheus.NewRegistry())
		leads := NewLeadUseCase(repo, nil, nil, nil, m)
		uc := NewEstimateUseCase(newTestEstimateEngine(), leads, nil, m)
		uc.dispatch = syncDispatch

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Lead{}, errors.New("db"))

		if _, err := uc.Calculate(context.Background(), sampleSubmission()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := testutil.ToFloat64(m.LeadCaptureFailures); got != 1 {
			t.Fatalf("expected 1 capture failure, got %v", got)
		}
	})

	t.Run("capture outlives cancelled request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		leads := NewLeadUseCase(repo, nil, nil, nil, nil)
		uc := NewEstimateUseCase(newTestEstimateEngine(), leads, nil, nil)

		var deferred func()
		uc.dispatch = func(f func()) { deferred = f }

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, l entities.Lead) (entities.Lead, error) {
			if err := ctx.Err(); err != nil {
				t.Fatalf("capture context already done: %v", err)
			}
			return l, nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		if _, err := uc.Calculate(ctx, sampleSubmission()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cancel()
		if deferred == nil {
			t.Fatalf("expected capture to be dispatched")
		}
		deferred()
	})
}

func TestEstimateUseCase_RenderReport(t *testing.T) {
	t.Run("renderer missing", func(t *testing.T) {
		uc := NewEstimateUseCase(newTestEstimateEngine(), nil, nil, nil)
		_, err := uc.RenderReport(context.Background(), sampleSubmission(), "")
		if !errors.Is(err, ErrReportUnavailable) {
			t.Fatalf("expected ErrReportUnavailable, got %v", err)
		}
	})

	t.Run("keeps well formed report id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		m := metrics.New(prometheus.NewRegistry())
		uc := NewEstimateUseCase(newTestEstimateEngine(), nil, renderer, m)

		renderer.EXPECT().RenderEstimate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ entities.EstimateSubmission, res entities.EstimateResult) ([]byte, error) {
			if res.ReportID != "NG-2026-000042" {
				t.Fatalf("expected client report id, got %q", res.ReportID)
			}
			return []byte("%PDF"), nil
		})

		rep, err := uc.RenderReport(context.Background(), sampleSubmission(), " NG-2026-000042 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rep.FileName != "KSA_Expansion_Report_NG-2026-000042.pdf" {
			t.Fatalf("unexpected file name %q", rep.FileName)
		}
		if string(rep.Content) != "%PDF" {
			t.Fatalf("unexpected content %q", rep.Content)
		}
		if got := testutil.ToFloat64(m.ReportsRendered); got != 1 {
			t.Fatalf("expected 1 report rendered, got %v", got)
		}
	})

	t.Run("malformed report id is replaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewEstimateUseCase(newTestEstimateEngine(), nil, renderer, nil)

		renderer.EXPECT().RenderEstimate(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)

		rep, err := uc.RenderReport(context.Background(), sampleSubmission(), "../../etc/passwd")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rep.Result.ReportID != "NG-2026-654321" {
			t.Fatalf("expected generated report id, got %q", rep.Result.ReportID)
		}
	})

	t.Run("render error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewEstimateUseCase(newTestEstimateEngine(), nil, renderer, nil)

		renderer.EXPECT().RenderEstimate(gomock.Any(), gomock.Any()).Return(nil, errors.New("pdf"))

		_, err := uc.RenderReport(context.Background(), sampleSubmission(), "")
		if err == nil || err.Error() != "pdf" {
			t.Fatalf("expected pdf error, got %v", err)
		}
	})
}

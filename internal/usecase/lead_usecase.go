package usecase

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/infrastructure/metrics"
	"nishad_gateway/internal/infrastructure/phone"
	"nishad_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadID     = errors.New("invalid lead id")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
	ErrInvalidContact    = errors.New("invalid contact details")
	ErrExportFailed      = errors.New("lead export failed")
)

const recentLeadsLimit = 5

// ILeadUseCase exposes the calculator leads to the admin panel.
type ILeadUseCase interface {
	Capture(ctx context.Context, sub entities.EstimateSubmission, res entities.EstimateResult) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
	Stats(ctx context.Context, now time.Time) (entities.LeadStats, error)
	Export(ctx context.Context) ([]byte, error)
}

type LeadUseCase struct {
	repo     interfaces.ILeadRepository
	notifier interfaces.ILeadNotifier
	exporter interfaces.ILeadExporter
	loc      *time.Location
	metrics  *metrics.Metrics
	now      func() time.Time
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

// NewLeadUseCase wires lead persistence. notifier and exporter may be nil;
// loc is the business timezone used for "today" and for exported timestamps.
func NewLeadUseCase(
	repo interfaces.ILeadRepository,
	notifier interfaces.ILeadNotifier,
	exporter interfaces.ILeadExporter,
	loc *time.Location,
	m *metrics.Metrics,
) *LeadUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &LeadUseCase{
		repo:     repo,
		notifier: notifier,
		exporter: exporter,
		loc:      loc,
		metrics:  m,
		now:      time.Now,
	}
}

func (u *LeadUseCase) Capture(ctx context.Context, sub entities.EstimateSubmission, res entities.EstimateResult) (entities.Lead, error) {
	if err := validateContact(sub.Contact); err != nil {
		return entities.Lead{}, err
	}

	now := u.now().UTC()
	lead := entities.Lead{
		ID:           uuid.NewString(),
		FullName:     strings.TrimSpace(sub.Contact.FullName),
		Email:        strings.ToLower(strings.TrimSpace(sub.Contact.Email)),
		Mobile:       phone.NormalizeE164(sub.Contact.Mobile),
		InvestorType: string(sub.Input.InvestorType),
		Activity:     string(sub.Input.Activity),
		City:         string(sub.Input.City),
		Timeline:     sub.Input.Timeline.Label(),
		Visas:        sub.Input.VisaCount,
		Supports: entities.LeadSupports{
			BankSupport:       sub.Input.BankSupport,
			AccountingSupport: sub.Input.AccountingSupport,
			VROSupport:        sub.Input.VROSupport,
		},
		Estimate: entities.LeadEstimate{
			Min:              res.Min,
			Max:              res.Max,
			TimelineText:     res.TimelineText,
			RecommendedSetup: res.RecommendedSetup,
			SuggestedCity:    res.SuggestedCity,
			ReportID:         res.ReportID,
		},
		Source:    entities.LeadSourceCalculator,
		Status:    entities.LeadStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	log.Printf("[lead][usecase] capture start lead_id=%s report_id=%s", lead.ID, lead.Estimate.ReportID)
	created, err := u.repo.Create(ctx, lead)
	if err != nil {
		u.metrics.IncrementLeadCaptureFailures()
		log.Printf("[lead][usecase] capture failed lead_id=%s err=%v", lead.ID, err)
		return entities.Lead{}, err
	}
	u.metrics.IncrementLeadsCaptured()

	if u.notifier != nil {
		if err := u.notifier.NotifyNewLead(ctx, created); err != nil {
			log.Printf("[lead][usecase] notification failed lead_id=%s err=%v", created.ID, err)
		}
	}

	log.Printf("[lead][usecase] capture success lead_id=%s", created.ID)
	return created, nil
}

// List returns every lead, newest first.
func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	leads, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(leads, func(a, b entities.Lead) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return leads, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	status = entities.LeadStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.Valid() {
		return entities.Lead{}, ErrInvalidLeadStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	log.Printf("[lead][usecase] status updated lead_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

// Stats counts leads created on now's calendar day in the business timezone.
func (u *LeadUseCase) Stats(ctx context.Context, now time.Time) (entities.LeadStats, error) {
	leads, err := u.List(ctx)
	if err != nil {
		return entities.LeadStats{}, err
	}

	y, m, d := now.In(u.loc).Date()
	today := 0
	for _, l := range leads {
		ly, lm, ld := l.CreatedAt.In(u.loc).Date()
		if ly == y && lm == m && ld == d {
			today++
		}
	}

	recent := leads
	if len(recent) > recentLeadsLimit {
		recent = recent[:recentLeadsLimit]
	}
	return entities.LeadStats{
		Total:  len(leads),
		Today:  today,
		Recent: append([]entities.Lead{}, recent...),
	}, nil
}

func (u *LeadUseCase) Export(ctx context.Context) ([]byte, error) {
	if u.exporter == nil {
		return nil, ErrExportFailed
	}
	leads, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	data, err := u.exporter.ExportLeads(leads, u.loc)
	if err != nil {
		log.Printf("[lead][usecase] export failed count=%d err=%v", len(leads), err)
		return nil, errors.Join(ErrExportFailed, err)
	}
	return data, nil
}

func validateContact(c entities.Contact) error {
	if strings.TrimSpace(c.FullName) == "" || strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Mobile) == "" {
		return ErrInvalidContact
	}
	return nil
}

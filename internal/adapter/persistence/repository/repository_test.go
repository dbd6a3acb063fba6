package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"nishad_gateway/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ts = time.Date(2026, 1, 15, 9, 30, 15, 123000000, time.UTC)

func TestLeadItemConversion(t *testing.T) {
	l := entities.Lead{
		ID:           "l-1",
		FullName:     "Omar Haddad",
		Email:        "omar@example.com",
		Mobile:       "+966501234567",
		InvestorType: "Company",
		Activity:     "Trading",
		City:         "Jeddah",
		Timeline:     "Urgent (1-2 weeks)",
		Visas:        3,
		Supports:     entities.LeadSupports{BankSupport: true, VROSupport: true},
		Estimate: entities.LeadEstimate{
			Min: 30000, Max: 50000, TimelineText: "1-2 weeks (Fast Track)",
			RecommendedSetup: "LLC", SuggestedCity: "Jeddah", ReportID: "NG-2026-123456",
		},
		Source:    entities.LeadSourceCalculator,
		Status:    entities.LeadStatusContacted,
		CreatedAt: ts,
		UpdatedAt: ts.Add(time.Minute),
	}

	got := fromLeadItem(toLeadItem(l))
	if !reflect.DeepEqual(got, l) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, l)
	}

	if s := fromLeadItem(leadItem{ID: "x"}).Status; s != entities.LeadStatusNew {
		t.Fatalf("expected missing status to read as new, got %q", s)
	}
}

func TestLeadDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewLeadDynamoRepository(newFakeDynamo())

	l := entities.Lead{ID: "l-1", Email: "a@b.c", Status: entities.LeadStatusNew, CreatedAt: ts, UpdatedAt: ts}
	if _, err := repo.Create(ctx, l); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("duplicate id rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, l)
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			t.Fatalf("expected conditional check failure, got %v", err)
		}
	})

	t.Run("get missing returns zero", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("update status", func(t *testing.T) {
		got, err := repo.UpdateStatus(ctx, "l-1", entities.LeadStatusConverted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.LeadStatusConverted || !got.UpdatedAt.After(ts) || got.Email != "a@b.c" {
			t.Fatalf("unexpected lead: %+v", got)
		}
	})

	t.Run("update missing returns zero", func(t *testing.T) {
		got, err := repo.UpdateStatus(ctx, "nope", entities.LeadStatusConverted)
		if err != nil || got.ID != "" {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("list", func(t *testing.T) {
		if _, err := repo.Create(ctx, entities.Lead{ID: "l-2", CreatedAt: ts}); err != nil {
			t.Fatalf("create: %v", err)
		}
		leads, err := repo.List(ctx)
		if err != nil || len(leads) != 2 {
			t.Fatalf("unexpected result: %d %v", len(leads), err)
		}
	})
}

func TestServiceDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceDynamoRepository(newFakeDynamo())

	s := entities.Service{ID: "s-1", Index: "1", Title: "Company Formation", Slug: "company-formation", IsActive: true, CreatedAt: ts, UpdatedAt: ts}
	if _, err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetBySlug(ctx, "company-formation")
	if err != nil || !reflect.DeepEqual(got, s) {
		t.Fatalf("unexpected GetBySlug result: %+v %v", got, err)
	}

	s.Title = "Business Setup"
	if got, err := repo.Update(ctx, s); err != nil || got.Title != "Business Setup" {
		t.Fatalf("unexpected update result: %+v %v", got, err)
	}
	if got, err := repo.Update(ctx, entities.Service{ID: "missing"}); err != nil || got.ID != "" {
		t.Fatalf("expected zero service for missing update, got %+v %v", got, err)
	}

	if err := repo.Delete(ctx, "s-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, err := repo.GetByID(ctx, "s-1"); err != nil || got.ID != "" {
		t.Fatalf("expected deleted service, got %+v %v", got, err)
	}
}

func TestSubServiceDynamoRepository_ListByServiceID(t *testing.T) {
	ctx := context.Background()
	repo := NewSubServiceDynamoRepository(newFakeDynamo())

	for _, s := range []entities.SubService{
		{ID: "a", ServiceID: "s-1", Title: "MISA", CreatedAt: ts},
		{ID: "b", ServiceID: "s-1", Title: "CR", CreatedAt: ts},
		{ID: "c", ServiceID: "s-2", Title: "VAT", CreatedAt: ts},
	} {
		if _, err := repo.Create(ctx, s); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	subs, err := repo.ListByServiceID(ctx, "s-1")
	if err != nil || len(subs) != 2 {
		t.Fatalf("unexpected result: %+v %v", subs, err)
	}
	for _, s := range subs {
		if s.ServiceID != "s-1" {
			t.Fatalf("unexpected subservice %+v", s)
		}
	}
}

func TestContentDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContentDynamoRepository(newFakeDynamo())

	c := entities.SubServiceContent{
		SubServiceID: "sub-1",
		SectionOrder: []string{entities.SectionHero, entities.SectionFAQ},
		HeroTitle:    "Start in Riyadh",
		WhySlides:    []entities.WhySlide{{Title: "Fast", Description: "Two weeks", Image: "https://cdn/why.png"}},
		DocumentGroups: []entities.DocumentGroup{{
			EntityValue: "llc",
			Cards:       []entities.DocumentCard{{Title: "Passport", Items: []string{"Copy", "Translation"}}},
		}},
		FAQs:      []entities.FAQ{{Q: "How long?", A: "Two weeks."}},
		UpdatedAt: ts,
	}
	if _, err := repo.Put(ctx, c); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "sub-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HeroTitle != c.HeroTitle || !reflect.DeepEqual(got.SectionOrder, c.SectionOrder) ||
		!reflect.DeepEqual(got.DocumentGroups, c.DocumentGroups) || !got.UpdatedAt.Equal(ts) {
		t.Fatalf("unexpected content: %+v", got)
	}

	if err := repo.Delete(ctx, "sub-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, err := repo.Get(ctx, "sub-1"); err != nil || got.SubServiceID != "" {
		t.Fatalf("expected empty content, got %+v %v", got, err)
	}
}

func TestAdminDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminDynamoRepository(newFakeDynamo())

	a := entities.Admin{ID: "adm-1", Email: "admin@nishad.sa", Name: "Admin", PasswordHash: "hash", CreatedAt: ts, UpdatedAt: ts}
	if _, err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "admin@nishad.sa")
	if err != nil || !reflect.DeepEqual(got, a) {
		t.Fatalf("unexpected GetByEmail result: %+v %v", got, err)
	}
	if got, err := repo.GetByEmail(ctx, "other@nishad.sa"); err != nil || got.ID != "" {
		t.Fatalf("expected zero admin, got %+v %v", got, err)
	}
	if got, err := repo.GetByID(ctx, "adm-1"); err != nil || got.PasswordHash != "hash" {
		t.Fatalf("unexpected GetByID result: %+v %v", got, err)
	}
}

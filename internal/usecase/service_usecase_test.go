package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nishad_gateway/internal/domain/entities"
	mock_interfaces "nishad_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

type serviceMocks struct {
	services *mock_interfaces.MockIServiceRepository
	subs     *mock_interfaces.MockISubServiceRepository
	contents *mock_interfaces.MockISubServiceContentRepository
}

func newServiceUseCase(ctrl *gomock.Controller) (*ServiceUseCase, serviceMocks) {
	m := serviceMocks{
		services: mock_interfaces.NewMockIServiceRepository(ctrl),
		subs:     mock_interfaces.NewMockISubServiceRepository(ctrl),
		contents: mock_interfaces.NewMockISubServiceContentRepository(ctrl),
	}
	return NewServiceUseCase(m.services, m.subs, m.contents), m
}

func TestNormalizeSlug(t *testing.T) {
	cases := map[string]string{
		"Company Formation":      "company-formation",
		"  --Saudi  Premium-- ":  "saudi-premium",
		"VAT & Zakat Filing":     "vat-zakat-filing",
		"already-a-slug":         "already-a-slug",
		"!!!":                    "",
		"MISA License (Foreign)": "misa-license-foreign",
	}
	for in, want := range cases {
		if got := NormalizeSlug(in); got != want {
			t.Fatalf("NormalizeSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestServiceUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newServiceUseCase(ctrl)

	m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{
		{ID: "c", Index: "10"},
		{ID: "x", Index: "b"},
		{ID: "a", Index: "2"},
		{ID: "b", Index: "2", Title: "Z"},
		{ID: "y", Index: "a"},
	}, nil)

	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ""
	for _, s := range items {
		got += s.ID
	}
	if got != "abcyx" {
		t.Fatalf("unexpected order %q", got)
	}
}

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newServiceUseCase(ctrl)
		_, err := uc.Create(context.Background(), ServiceInput{Title: strPtr("  ")})
		if !errors.Is(err, ErrInvalidServiceInput) {
			t.Fatalf("expected ErrInvalidServiceInput, got %v", err)
		}
	})

	t.Run("slug taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newServiceUseCase(ctrl)

		m.services.EXPECT().GetBySlug(gomock.Any(), "company-formation").Return(entities.Service{ID: "other"}, nil)

		_, err := uc.Create(context.Background(), ServiceInput{Title: strPtr("Company Formation")})
		if !errors.Is(err, ErrServiceSlugTaken) {
			t.Fatalf("expected ErrServiceSlugTaken, got %v", err)
		}
	})

	t.Run("success derives slug and defaults active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newServiceUseCase(ctrl)

		m.services.EXPECT().GetBySlug(gomock.Any(), "company-formation").Return(entities.Service{}, nil)
		m.services.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Service) (entities.Service, error) {
			return s, nil
		})

		s, err := uc.Create(context.Background(), ServiceInput{Title: strPtr(" Company Formation "), Index: strPtr("01")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" || s.Slug != "company-formation" || s.Title != "Company Formation" || s.Index != "01" || !s.IsActive {
			t.Fatalf("unexpected service: %+v", s)
		}
	})
}

func TestServiceUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newServiceUseCase(ctrl)
		_, err := uc.Update(context.Background(), "", ServiceInput{})
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newServiceUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{}, nil)

		_, err := uc.Update(context.Background(), "s-1", ServiceInput{})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newServiceUseCase(ctrl)

		created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{
			ID: "s-1", Index: "1", Title: "Old", Slug: "old", IsActive: true, CreatedAt: created,
		}, nil)
		m.services.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Service) (entities.Service, error) {
			return s, nil
		})

		s, err := uc.Update(context.Background(), "s-1", ServiceInput{IsActive: boolPtr(false)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Title != "Old" || s.Slug != "old" || s.IsActive || !s.CreatedAt.Equal(created) || !s.UpdatedAt.After(created) {
			t.Fatalf("unexpected service: %+v", s)
		}
	})

	t.Run("slug change checks uniqueness", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newServiceUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Title: "Old", Slug: "old"}, nil)
		m.services.EXPECT().GetBySlug(gomock.Any(), "new-slug").Return(entities.Service{ID: "s-2"}, nil)

		_, err := uc.Update(context.Background(), "s-1", ServiceInput{Slug: strPtr("New Slug")})
		if !errors.Is(err, ErrServiceSlugTaken) {
			t.Fatalf("expected ErrServiceSlugTaken, got %v", err)
		}
	})
}

func TestServiceUseCase_Delete(t *testing.T) {
	t.Run("cascades to subservices and content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newServiceUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1"}, nil)
		m.subs.EXPECT().ListByServiceID(gomock.Any(), "s-1").Return([]entities.SubService{{ID: "sub-1"}, {ID: "sub-2"}}, nil)
		gomock.InOrder(
			m.contents.EXPECT().Delete(gomock.Any(), "sub-1").Return(nil),
			m.subs.EXPECT().Delete(gomock.Any(), "sub-1").Return(nil),
			m.contents.EXPECT().Delete(gomock.Any(), "sub-2").Return(nil),
			m.subs.EXPECT().Delete(gomock.Any(), "sub-2").Return(nil),
			m.services.EXPECT().Delete(gomock.Any(), "s-1").Return(nil),
		)

		if err := uc.Delete(context.Background(), "s-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stops on subservice error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newServiceUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1"}, nil)
		m.subs.EXPECT().ListByServiceID(gomock.Any(), "s-1").Return([]entities.SubService{{ID: "sub-1"}}, nil)
		m.contents.EXPECT().Delete(gomock.Any(), "sub-1").Return(errors.New("db"))

		if err := uc.Delete(context.Background(), "s-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestServiceUseCase_GetBySlug(t *testing.T) {
	t.Run("inactive service is hidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newServiceUseCase(ctrl)

		m.services.EXPECT().GetBySlug(gomock.Any(), "formation").Return(entities.Service{ID: "s-1", IsActive: false}, nil)

		_, err := uc.GetBySlug(context.Background(), "Formation")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("returns active subservices only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newServiceUseCase(ctrl)

		m.services.EXPECT().GetBySlug(gomock.Any(), "formation").Return(entities.Service{ID: "s-1", IsActive: true}, nil)
		m.subs.EXPECT().ListByServiceID(gomock.Any(), "s-1").Return([]entities.SubService{
			{ID: "a", IsActive: true},
			{ID: "b", IsActive: false},
		}, nil)

		d, err := uc.GetBySlug(context.Background(), "formation")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.SubServices) != 1 || d.SubServices[0].ID != "a" {
			t.Fatalf("unexpected subservices: %+v", d.SubServices)
		}
	})
}

func TestServiceUseCase_Menu(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newServiceUseCase(ctrl)

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{
		{ID: "s-2", Index: "2", Title: "Tax", Slug: "tax", IsActive: true},
		{ID: "s-off", Index: "0", IsActive: false},
		{ID: "s-1", Index: "1", Title: "Formation", Slug: "formation", IsActive: true},
	}, nil)
	m.subs.EXPECT().ListByServiceID(gomock.Any(), "s-1").Return([]entities.SubService{
		{ID: "late", Title: "Late", Slug: "late", IsActive: true, CreatedAt: t0.Add(time.Hour)},
		{ID: "early", Title: "Early", Slug: "early", IsActive: true, CreatedAt: t0},
		{ID: "hidden", IsActive: false},
	}, nil)
	m.subs.EXPECT().ListByServiceID(gomock.Any(), "s-2").Return(nil, nil)

	menu, err := uc.Menu(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(menu) != 2 || menu[0].ID != "s-1" || menu[1].ID != "s-2" {
		t.Fatalf("unexpected menu: %+v", menu)
	}
	if len(menu[0].SubServices) != 2 || menu[0].SubServices[0].ID != "early" {
		t.Fatalf("unexpected subservices: %+v", menu[0].SubServices)
	}
	if menu[1].SubServices == nil {
		t.Fatalf("expected empty, non-nil subservices")
	}
}

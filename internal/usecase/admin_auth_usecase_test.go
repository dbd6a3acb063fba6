package usecase

import (
	"context"
	"errors"
	"testing"

	"nishad_gateway/internal/domain/entities"
	mock_interfaces "nishad_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type adminMocks struct {
	repo   *mock_interfaces.MockIAdminRepository
	tokens *mock_interfaces.MockITokenService
	hasher *mock_interfaces.MockIPasswordHasher
}

func newAdminAuthUseCase(ctrl *gomock.Controller) (*AdminAuthUseCase, adminMocks) {
	m := adminMocks{
		repo:   mock_interfaces.NewMockIAdminRepository(ctrl),
		tokens: mock_interfaces.NewMockITokenService(ctrl),
		hasher: mock_interfaces.NewMockIPasswordHasher(ctrl),
	}
	return NewAdminAuthUseCase(m.repo, m.tokens, m.hasher), m
}

func TestAdminAuthUseCase_Login(t *testing.T) {
	admin := entities.Admin{ID: "adm-1", Email: "admin@nishad.sa", PasswordHash: "hash"}

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminAuthUseCase(ctrl)
		m.repo.EXPECT().GetByEmail(gomock.Any(), "admin@nishad.sa").Return(entities.Admin{}, nil)

		_, _, err := uc.Login(context.Background(), " Admin@Nishad.sa ", "secret123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminAuthUseCase(ctrl)
		m.repo.EXPECT().GetByEmail(gomock.Any(), "admin@nishad.sa").Return(admin, nil)
		m.hasher.EXPECT().Compare("hash", "wrong").Return(errors.New("mismatch"))

		_, _, err := uc.Login(context.Background(), "admin@nishad.sa", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success issues tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminAuthUseCase(ctrl)
		m.repo.EXPECT().GetByEmail(gomock.Any(), "admin@nishad.sa").Return(admin, nil)
		m.hasher.EXPECT().Compare("hash", "secret123").Return(nil)
		m.tokens.EXPECT().Issue(admin).Return(entities.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

		got, pair, err := uc.Login(context.Background(), "admin@nishad.sa", "secret123")
		if err != nil || got.ID != "adm-1" || pair.AccessToken != "a" || pair.RefreshToken != "r" {
			t.Fatalf("unexpected result: %+v %+v %v", got, pair, err)
		}
	})
}

func TestAdminAuthUseCase_Refresh(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminAuthUseCase(ctrl)
		m.tokens.EXPECT().ParseRefresh("bad").Return("", errors.New("invalid"))

		_, _, err := uc.Refresh(context.Background(), "bad")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("deleted admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminAuthUseCase(ctrl)
		m.tokens.EXPECT().ParseRefresh("r").Return("adm-1", nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "adm-1").Return(entities.Admin{}, nil)

		_, _, err := uc.Refresh(context.Background(), "r")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("rotates tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminAuthUseCase(ctrl)
		admin := entities.Admin{ID: "adm-1"}
		m.tokens.EXPECT().ParseRefresh("r").Return("adm-1", nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "adm-1").Return(admin, nil)
		m.tokens.EXPECT().Issue(admin).Return(entities.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

		_, pair, err := uc.Refresh(context.Background(), "r")
		if err != nil || pair.RefreshToken != "r2" {
			t.Fatalf("unexpected result: %+v %v", pair, err)
		}
	})
}

func TestAdminAuthUseCase_Authenticate(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAdminAuthUseCase(ctrl)
		if _, err := uc.Authenticate(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminAuthUseCase(ctrl)
		m.tokens.EXPECT().ParseAccess("a").Return("adm-1", nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "adm-1").Return(entities.Admin{ID: "adm-1", Email: "admin@nishad.sa"}, nil)

		admin, err := uc.Authenticate(context.Background(), "a")
		if err != nil || admin.Email != "admin@nishad.sa" {
			t.Fatalf("unexpected result: %+v %v", admin, err)
		}
	})
}

func TestAdminAuthUseCase_EnsureBootstrapAdmin(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAdminAuthUseCase(ctrl)
		_, err := uc.EnsureBootstrapAdmin(context.Background(), "admin@nishad.sa", "short", "Admin")
		if !errors.Is(err, ErrInvalidAdminInput) {
			t.Fatalf("expected ErrInvalidAdminInput, got %v", err)
		}
	})

	t.Run("existing admin untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminAuthUseCase(ctrl)
		m.repo.EXPECT().GetByEmail(gomock.Any(), "admin@nishad.sa").Return(entities.Admin{ID: "adm-1"}, nil)

		admin, err := uc.EnsureBootstrapAdmin(context.Background(), "admin@nishad.sa", "secret123", "Admin")
		if err != nil || admin.ID != "adm-1" {
			t.Fatalf("unexpected result: %+v %v", admin, err)
		}
	})

	t.Run("creates admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminAuthUseCase(ctrl)
		m.repo.EXPECT().GetByEmail(gomock.Any(), "admin@nishad.sa").Return(entities.Admin{}, nil)
		m.hasher.EXPECT().Hash("secret123").Return("bcrypt-hash", nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Admin) (entities.Admin, error) {
			return a, nil
		})

		admin, err := uc.EnsureBootstrapAdmin(context.Background(), "Admin@Nishad.sa", "secret123", " Site Admin ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if admin.ID == "" || admin.Email != "admin@nishad.sa" || admin.Name != "Site Admin" || admin.PasswordHash != "bcrypt-hash" {
			t.Fatalf("unexpected admin: %+v", admin)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidAdminInput  = errors.New("invalid admin input")
)

const minAdminPasswordLength = 8

// IAdminAuthUseCase authenticates back-office users.
type IAdminAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.Admin, entities.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (entities.Admin, entities.TokenPair, error)
	Authenticate(ctx context.Context, accessToken string) (entities.Admin, error)
	EnsureBootstrapAdmin(ctx context.Context, email, password, name string) (entities.Admin, error)
}

type AdminAuthUseCase struct {
	repo   interfaces.IAdminRepository
	tokens interfaces.ITokenService
	hasher interfaces.IPasswordHasher
}

var _ IAdminAuthUseCase = (*AdminAuthUseCase)(nil)

func NewAdminAuthUseCase(repo interfaces.IAdminRepository, tokens interfaces.ITokenService, hasher interfaces.IPasswordHasher) *AdminAuthUseCase {
	return &AdminAuthUseCase{repo: repo, tokens: tokens, hasher: hasher}
}

func (u *AdminAuthUseCase) Login(ctx context.Context, email, password string) (entities.Admin, entities.TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return entities.Admin{}, entities.TokenPair{}, ErrInvalidCredentials
	}

	admin, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Admin{}, entities.TokenPair{}, err
	}
	if admin.ID == "" {
		log.Printf("[admin][usecase] login rejected unknown email")
		return entities.Admin{}, entities.TokenPair{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(admin.PasswordHash, password); err != nil {
		log.Printf("[admin][usecase] login rejected admin_id=%s", admin.ID)
		return entities.Admin{}, entities.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := u.tokens.Issue(admin)
	if err != nil {
		return entities.Admin{}, entities.TokenPair{}, err
	}
	log.Printf("[admin][usecase] login success admin_id=%s", admin.ID)
	return admin, pair, nil
}

// Refresh rotates both tokens.
func (u *AdminAuthUseCase) Refresh(ctx context.Context, refreshToken string) (entities.Admin, entities.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return entities.Admin{}, entities.TokenPair{}, ErrUnauthorized
	}
	adminID, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return entities.Admin{}, entities.TokenPair{}, ErrUnauthorized
	}

	admin, err := u.loadAdmin(ctx, adminID)
	if err != nil {
		return entities.Admin{}, entities.TokenPair{}, err
	}

	pair, err := u.tokens.Issue(admin)
	if err != nil {
		return entities.Admin{}, entities.TokenPair{}, err
	}
	return admin, pair, nil
}

func (u *AdminAuthUseCase) Authenticate(ctx context.Context, accessToken string) (entities.Admin, error) {
	if strings.TrimSpace(accessToken) == "" {
		return entities.Admin{}, ErrUnauthorized
	}
	adminID, err := u.tokens.ParseAccess(accessToken)
	if err != nil {
		return entities.Admin{}, ErrUnauthorized
	}
	return u.loadAdmin(ctx, adminID)
}

// EnsureBootstrapAdmin creates the first admin when no admin with email exists.
// It never changes the password of an existing admin.
func (u *AdminAuthUseCase) EnsureBootstrapAdmin(ctx context.Context, email, password, name string) (entities.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") || len(password) < minAdminPasswordLength {
		return entities.Admin{}, ErrInvalidAdminInput
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Admin{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.Admin{}, err
	}
	now := time.Now().UTC()
	admin := entities.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, admin)
	if err != nil {
		return entities.Admin{}, err
	}
	log.Printf("[admin][usecase] bootstrap admin created admin_id=%s", created.ID)
	return created, nil
}

// loadAdmin maps a deleted admin to ErrUnauthorized so stale tokens stop working.
func (u *AdminAuthUseCase) loadAdmin(ctx context.Context, id string) (entities.Admin, error) {
	admin, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Admin{}, err
	}
	if admin.ID == "" {
		return entities.Admin{}, ErrUnauthorized
	}
	return admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

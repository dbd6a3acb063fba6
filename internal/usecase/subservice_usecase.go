package usecase

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSubServiceNotFound     = errors.New("subservice not found")
	ErrInvalidSubServiceID    = errors.New("invalid subservice id")
	ErrInvalidSubServiceInput = errors.New("invalid subservice input")
)

// SubServiceInput carries create and update fields. Nil pointers are left
// untouched on update; Image, when set, replaces the stored image.
type SubServiceInput struct {
	Title       *string
	Slug        *string
	Description *string
	IsActive    *bool
	Image       *entities.FileUpload
}

// ISubServiceUseCase manages the pages under a service.
type ISubServiceUseCase interface {
	ListByService(ctx context.Context, serviceID string, includeInactive bool) ([]entities.SubService, error)
	GetByID(ctx context.Context, id string) (entities.SubService, error)
	Create(ctx context.Context, serviceID string, in SubServiceInput) (entities.SubService, error)
	Update(ctx context.Context, id string, in SubServiceInput) (entities.SubService, error)
	Delete(ctx context.Context, id string) error
}

type SubServiceUseCase struct {
	services    interfaces.IServiceRepository
	subServices interfaces.ISubServiceRepository
	contents    interfaces.ISubServiceContentRepository
	storage     interfaces.IObjectStorage
	maxBytes    int64
}

var _ ISubServiceUseCase = (*SubServiceUseCase)(nil)

// NewSubServiceUseCase accepts a nil storage; image uploads then fail with
// ErrStorageNotConfigured.
func NewSubServiceUseCase(
	services interfaces.IServiceRepository,
	subServices interfaces.ISubServiceRepository,
	contents interfaces.ISubServiceContentRepository,
	storage interfaces.IObjectStorage,
	maxBytes int64,
) *SubServiceUseCase {
	return &SubServiceUseCase{
		services:    services,
		subServices: subServices,
		contents:    contents,
		storage:     storage,
		maxBytes:    maxBytes,
	}
}

func (u *SubServiceUseCase) ListByService(ctx context.Context, serviceID string, includeInactive bool) ([]entities.SubService, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}
	subs, err := u.subServices.ListByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !includeInactive {
		return activeSubServices(subs), nil
	}
	slices.SortStableFunc(subs, func(a, b entities.SubService) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return subs, nil
}

func (u *SubServiceUseCase) GetByID(ctx context.Context, id string) (entities.SubService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SubService{}, ErrInvalidSubServiceID
	}
	s, err := u.subServices.GetByID(ctx, id)
	if err != nil {
		return entities.SubService{}, err
	}
	if s.ID == "" {
		return entities.SubService{}, ErrSubServiceNotFound
	}
	return s, nil
}

func (u *SubServiceUseCase) Create(ctx context.Context, serviceID string, in SubServiceInput) (entities.SubService, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.SubService{}, ErrInvalidServiceID
	}
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return entities.SubService{}, ErrInvalidSubServiceInput
	}

	parent, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return entities.SubService{}, err
	}
	if parent.ID == "" {
		return entities.SubService{}, ErrServiceNotFound
	}

	slug := ""
	if in.Slug != nil {
		slug = NormalizeSlug(*in.Slug)
	}
	if slug == "" {
		slug = NormalizeSlug(*in.Title)
	}
	if slug == "" {
		return entities.SubService{}, ErrInvalidSubServiceInput
	}

	now := time.Now().UTC()
	s := entities.SubService{
		ID:        uuid.NewString(),
		ServiceID: parent.ID,
		Title:     strings.TrimSpace(*in.Title),
		Slug:      slug,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Description != nil {
		s.Description = strings.TrimSpace(*in.Description)
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	if in.Image != nil {
		url, err := u.storeImage(ctx, parent.ID, *in.Image)
		if err != nil {
			return entities.SubService{}, err
		}
		s.Image = url
	}

	created, err := u.subServices.Create(ctx, s)
	if err != nil {
		return entities.SubService{}, err
	}
	log.Printf("[subservice][usecase] created subservice_id=%s service_id=%s", created.ID, created.ServiceID)
	return created, nil
}

func (u *SubServiceUseCase) Update(ctx context.Context, id string, in SubServiceInput) (entities.SubService, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.SubService{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return entities.SubService{}, ErrInvalidSubServiceInput
		}
		current.Title = title
	}
	if in.Slug != nil {
		slug := NormalizeSlug(*in.Slug)
		if slug == "" {
			return entities.SubService{}, ErrInvalidSubServiceInput
		}
		current.Slug = slug
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}
	if in.Image != nil {
		url, err := u.storeImage(ctx, current.ServiceID, *in.Image)
		if err != nil {
			return entities.SubService{}, err
		}
		current.Image = url
	}
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.subServices.Update(ctx, current)
	if err != nil {
		return entities.SubService{}, err
	}
	if updated.ID == "" {
		return entities.SubService{}, ErrSubServiceNotFound
	}
	log.Printf("[subservice][usecase] updated subservice_id=%s", updated.ID)
	return updated, nil
}

// Delete removes the subservice and its content document.
func (u *SubServiceUseCase) Delete(ctx context.Context, id string) error {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.contents.Delete(ctx, s.ID); err != nil {
		return err
	}
	if err := u.subServices.Delete(ctx, s.ID); err != nil {
		return err
	}
	log.Printf("[subservice][usecase] deleted subservice_id=%s", s.ID)
	return nil
}

func (u *SubServiceUseCase) storeImage(ctx context.Context, serviceID string, file entities.FileUpload) (string, error) {
	if u.storage == nil {
		return "", ErrStorageNotConfigured
	}
	if err := validateImage(file, u.maxBytes); err != nil {
		return "", err
	}
	obj, err := u.storage.Upload(ctx, entities.UploadFolderSubServices+"/"+serviceID, file)
	if err != nil {
		log.Printf("[subservice][usecase] image upload failed service_id=%s err=%v", serviceID, err)
		return "", err
	}
	return obj.URL, nil
}

package usecase

import (
	"cmp"
	"context"
	"errors"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidServiceInput = errors.New("invalid service input")
	ErrServiceSlugTaken    = errors.New("service slug already in use")
)

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// ServiceInput carries create and update fields. Nil pointers are left
// untouched on update.
type ServiceInput struct {
	Index    *string
	Title    *string
	Slug     *string
	IsActive *bool
}

// ServiceDetail is a public service page: the service plus its active subservices.
type ServiceDetail struct {
	Service     entities.Service      `json:"service"`
	SubServices []entities.SubService `json:"subservices"`
}

// IServiceUseCase manages the top level menu entries of the website.
type IServiceUseCase interface {
	List(ctx context.Context) ([]entities.Service, error)
	Create(ctx context.Context, in ServiceInput) (entities.Service, error)
	Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	GetBySlug(ctx context.Context, slug string) (ServiceDetail, error)
	Menu(ctx context.Context) ([]entities.MenuItem, error)
}

type ServiceUseCase struct {
	services    interfaces.IServiceRepository
	subServices interfaces.ISubServiceRepository
	contents    interfaces.ISubServiceContentRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(
	services interfaces.IServiceRepository,
	subServices interfaces.ISubServiceRepository,
	contents interfaces.ISubServiceContentRepository,
) *ServiceUseCase {
	return &ServiceUseCase{services: services, subServices: subServices, contents: contents}
}

// List returns every service ordered by index.
func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	items, err := u.services.List(ctx)
	if err != nil {
		return nil, err
	}
	sortServices(items)
	return items, nil
}

func (u *ServiceUseCase) Create(ctx context.Context, in ServiceInput) (entities.Service, error) {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return entities.Service{}, ErrInvalidServiceInput
	}

	slug := ""
	if in.Slug != nil {
		slug = NormalizeSlug(*in.Slug)
	}
	if slug == "" {
		slug = NormalizeSlug(*in.Title)
	}
	if slug == "" {
		return entities.Service{}, ErrInvalidServiceInput
	}
	if err := u.ensureSlugFree(ctx, slug, ""); err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(*in.Title),
		Slug:      slug,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Index != nil {
		s.Index = strings.TrimSpace(*in.Index)
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}

	created, err := u.services.Create(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	log.Printf("[service][usecase] created service_id=%s slug=%s", created.ID, created.Slug)
	return created, nil
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error) {
	current, err := u.get(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return entities.Service{}, ErrInvalidServiceInput
		}
		current.Title = title
	}
	if in.Slug != nil {
		slug := NormalizeSlug(*in.Slug)
		if slug == "" {
			return entities.Service{}, ErrInvalidServiceInput
		}
		if slug != current.Slug {
			if err := u.ensureSlugFree(ctx, slug, current.ID); err != nil {
				return entities.Service{}, err
			}
		}
		current.Slug = slug
	}
	if in.Index != nil {
		current.Index = strings.TrimSpace(*in.Index)
	}
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.services.Update(ctx, current)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	log.Printf("[service][usecase] updated service_id=%s", updated.ID)
	return updated, nil
}

// Delete removes the service together with its subservices and their content.
func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	s, err := u.get(ctx, id)
	if err != nil {
		return err
	}

	subs, err := u.subServices.ListByServiceID(ctx, s.ID)
	if err != nil {
		return err
	}
	for _, sub := range subs {
		if err := u.contents.Delete(ctx, sub.ID); err != nil {
			return err
		}
		if err := u.subServices.Delete(ctx, sub.ID); err != nil {
			return err
		}
	}

	if err := u.services.Delete(ctx, s.ID); err != nil {
		return err
	}
	log.Printf("[service][usecase] deleted service_id=%s subservices=%d", s.ID, len(subs))
	return nil
}

func (u *ServiceUseCase) GetBySlug(ctx context.Context, slug string) (ServiceDetail, error) {
	slug = NormalizeSlug(slug)
	if slug == "" {
		return ServiceDetail{}, ErrServiceNotFound
	}
	s, err := u.services.GetBySlug(ctx, slug)
	if err != nil {
		return ServiceDetail{}, err
	}
	if s.ID == "" || !s.IsActive {
		return ServiceDetail{}, ErrServiceNotFound
	}

	subs, err := u.subServices.ListByServiceID(ctx, s.ID)
	if err != nil {
		return ServiceDetail{}, err
	}
	return ServiceDetail{Service: s, SubServices: activeSubServices(subs)}, nil
}

// Menu lists active services with their active subservices.
func (u *ServiceUseCase) Menu(ctx context.Context) ([]entities.MenuItem, error) {
	services, err := u.List(ctx)
	if err != nil {
		return nil, err
	}

	menu := make([]entities.MenuItem, 0, len(services))
	for _, s := range services {
		if !s.IsActive {
			continue
		}
		subs, err := u.subServices.ListByServiceID(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		item := entities.MenuItem{
			ID:          s.ID,
			Index:       s.Index,
			Title:       s.Title,
			Slug:        s.Slug,
			SubServices: []entities.MenuSubService{},
		}
		for _, sub := range activeSubServices(subs) {
			item.SubServices = append(item.SubServices, entities.MenuSubService{
				ID:    sub.ID,
				Title: sub.Title,
				Slug:  sub.Slug,
			})
		}
		menu = append(menu, item)
	}
	return menu, nil
}

func (u *ServiceUseCase) get(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) ensureSlugFree(ctx context.Context, slug, ownID string) error {
	existing, err := u.services.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if existing.ID != "" && existing.ID != ownID {
		return ErrServiceSlugTaken
	}
	return nil
}

// NormalizeSlug lower-cases s and collapses every run of non alphanumerics
// into a single dash.
func NormalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugUnsafe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// sortServices orders by index, numerically when both indexes are numbers
// ("2" before "10"), then by title.
func sortServices(items []entities.Service) {
	slices.SortStableFunc(items, func(a, b entities.Service) int {
		ai, aErr := strconv.Atoi(a.Index)
		bi, bErr := strconv.Atoi(b.Index)
		switch {
		case aErr == nil && bErr == nil:
			if c := cmp.Compare(ai, bi); c != 0 {
				return c
			}
		case aErr == nil:
			return -1
		case bErr == nil:
			return 1
		default:
			if c := strings.Compare(a.Index, b.Index); c != 0 {
				return c
			}
		}
		return strings.Compare(a.Title, b.Title)
	})
}

func activeSubServices(subs []entities.SubService) []entities.SubService {
	out := make([]entities.SubService, 0, len(subs))
	for _, s := range subs {
		if s.IsActive {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(a, b entities.SubService) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

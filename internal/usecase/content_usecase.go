package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"
)

var (
	ErrInvalidSectionOrder = errors.New("invalid section order")
)

// IContentUseCase reads and writes the page document of a subservice.
type IContentUseCase interface {
	Get(ctx context.Context, subServiceID string, includeInactive bool) (entities.SubServiceContent, error)
	Save(ctx context.Context, subServiceID string, c entities.SubServiceContent) (entities.SubServiceContent, error)
}

type ContentUseCase struct {
	subServices interfaces.ISubServiceRepository
	contents    interfaces.ISubServiceContentRepository
	now         func() time.Time
}

var _ IContentUseCase = (*ContentUseCase)(nil)

func NewContentUseCase(subServices interfaces.ISubServiceRepository, contents interfaces.ISubServiceContentRepository) *ContentUseCase {
	return &ContentUseCase{subServices: subServices, contents: contents, now: time.Now}
}

// Get returns an empty document with the default section order when the
// subservice has no content yet. Inactive subservices are only visible with
// includeInactive.
func (u *ContentUseCase) Get(ctx context.Context, subServiceID string, includeInactive bool) (entities.SubServiceContent, error) {
	sub, err := u.subService(ctx, subServiceID)
	if err != nil {
		return entities.SubServiceContent{}, err
	}
	if !sub.IsActive && !includeInactive {
		return entities.SubServiceContent{}, ErrSubServiceNotFound
	}

	c, err := u.contents.Get(ctx, sub.ID)
	if err != nil {
		return entities.SubServiceContent{}, err
	}
	if c.SubServiceID == "" {
		return entities.SubServiceContent{
			SubServiceID: sub.ID,
			SectionOrder: append([]string{}, entities.DefaultSectionOrder...),
		}, nil
	}
	if len(c.SectionOrder) == 0 {
		c.SectionOrder = append([]string{}, entities.DefaultSectionOrder...)
	}
	return c, nil
}

// Save replaces the whole document.
func (u *ContentUseCase) Save(ctx context.Context, subServiceID string, c entities.SubServiceContent) (entities.SubServiceContent, error) {
	sub, err := u.subService(ctx, subServiceID)
	if err != nil {
		return entities.SubServiceContent{}, err
	}

	order, err := normalizeSectionOrder(c.SectionOrder)
	if err != nil {
		return entities.SubServiceContent{}, err
	}
	c.SubServiceID = sub.ID
	c.SectionOrder = order
	c.UpdatedAt = u.now().UTC()

	saved, err := u.contents.Put(ctx, c)
	if err != nil {
		return entities.SubServiceContent{}, err
	}
	log.Printf("[content][usecase] saved subservice_id=%s sections=%d", saved.SubServiceID, len(saved.SectionOrder))
	return saved, nil
}

func (u *ContentUseCase) subService(ctx context.Context, id string) (entities.SubService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SubService{}, ErrInvalidSubServiceID
	}
	sub, err := u.subServices.GetByID(ctx, id)
	if err != nil {
		return entities.SubService{}, err
	}
	if sub.ID == "" {
		return entities.SubService{}, ErrSubServiceNotFound
	}
	return sub, nil
}

func normalizeSectionOrder(order []string) ([]string, error) {
	if len(order) == 0 {
		return append([]string{}, entities.DefaultSectionOrder...), nil
	}
	seen := make(map[string]bool, len(order))
	out := make([]string, 0, len(order))
	for _, key := range order {
		key = strings.TrimSpace(key)
		if !entities.IsKnownSection(key) || seen[key] {
			return nil, ErrInvalidSectionOrder
		}
		seen[key] = true
		out = append(out, key)
	}
	return out, nil
}

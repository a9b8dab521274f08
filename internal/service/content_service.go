package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hackfest/internal/domain"
	"hackfest/internal/events"
	"hackfest/internal/port"
)

// InsertItemInput is the DTO for admin row creation. ImageURL is the public
// URL returned by a preceding media upload, or empty when no file was chosen.
type InsertItemInput struct {
	Collection  string
	Name        string
	Title       string
	Subtitle    string
	Description string
	Highlights  []string
	ImageURL    string
	LinkURL     string
	SortOrder   *int
}

// ContentService defines the content read and authoring contract.
type ContentService interface {
	// PublicList returns the visitor view of a collection: visible rows only,
	// ordered, capped. Store faults degrade to an empty list.
	PublicList(ctx context.Context, collection string) ([]domain.Item, error)
	// AdminList returns every row of a collection, ordered, unfiltered.
	AdminList(ctx context.Context, collection string) ([]domain.Item, error)
	// Insert creates a row and returns the re-fetched, ordered collection.
	Insert(ctx context.Context, input InsertItemInput) ([]domain.Item, error)
	// UpdateFields writes only the given fields of one row and returns the
	// re-fetched, ordered collection.
	UpdateFields(ctx context.Context, collection string, id uuid.UUID, fields map[string]interface{}) ([]domain.Item, error)
	Delete(ctx context.Context, collection string, id uuid.UUID) error
}

type contentService struct {
	repo port.ContentRepository
	bus  *events.Bus
}

// NewContentService creates a new ContentService implementation.
func NewContentService(repo port.ContentRepository, bus *events.Bus) ContentService {
	return &contentService{repo: repo, bus: bus}
}

func (s *contentService) PublicList(ctx context.Context, collection string) ([]domain.Item, error) {
	spec, ok := domain.LookupCollection(collection)
	if !ok {
		return nil, domain.ErrUnknownCollection
	}

	items, err := s.repo.List(ctx, collection)
	if err != nil {
		// Visitors see an empty section instead of an error banner.
		log.Printf("contentService.PublicList %s: %v", collection, err)
		return []domain.Item{}, nil
	}

	domain.SortItems(items)
	return domain.PublicView(items, spec.PublicCap), nil
}

func (s *contentService) AdminList(ctx context.Context, collection string) ([]domain.Item, error) {
	if _, ok := domain.LookupCollection(collection); !ok {
		return nil, domain.ErrUnknownCollection
	}

	items, err := s.repo.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	domain.SortItems(items)
	return items, nil
}

func (s *contentService) Insert(ctx context.Context, input InsertItemInput) ([]domain.Item, error) {
	if _, ok := domain.LookupCollection(input.Collection); !ok {
		return nil, domain.ErrUnknownCollection
	}

	item := &domain.Item{
		ID:          uuid.New(),
		Collection:  input.Collection,
		Name:        input.Name,
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		Description: input.Description,
		Highlights:  input.Highlights,
		ImageURL:    input.ImageURL,
		LinkURL:     input.LinkURL,
		SortOrder:   input.SortOrder,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Collection: input.Collection, Action: events.ActionInsert, ItemID: item.ID})

	return s.AdminList(ctx, input.Collection)
}

func (s *contentService) UpdateFields(ctx context.Context, collection string, id uuid.UUID, fields map[string]interface{}) ([]domain.Item, error) {
	if _, ok := domain.LookupCollection(collection); !ok {
		return nil, domain.ErrUnknownCollection
	}

	normalized, err := normalizeFields(fields)
	if err != nil {
		return nil, err
	}
	if len(normalized) == 0 {
		return nil, domain.ErrNoUpdatableFields
	}

	if err := s.repo.UpdateFields(ctx, collection, id, normalized); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Collection: collection, Action: events.ActionUpdate, ItemID: id})

	return s.AdminList(ctx, collection)
}

func (s *contentService) Delete(ctx context.Context, collection string, id uuid.UUID) error {
	if _, ok := domain.LookupCollection(collection); !ok {
		return domain.ErrUnknownCollection
	}

	if err := s.repo.Delete(ctx, collection, id); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Collection: collection, Action: events.ActionDelete, ItemID: id})
	return nil
}

// normalizeFields validates the per-field update payload and coerces JSON
// decoding artifacts into storable values.
func normalizeFields(fields map[string]interface{}) (map[string]interface{}, error) {
	normalized := make(map[string]interface{}, len(fields))
	for column, value := range fields {
		if !domain.UpdatableFields[column] {
			return nil, fmt.Errorf("%w: %q", domain.ErrNoUpdatableFields, column)
		}
		switch column {
		case "sort_order":
			switch v := value.(type) {
			case nil:
				normalized[column] = nil
			case float64:
				normalized[column] = int(v)
			case int:
				normalized[column] = v
			default:
				return nil, fmt.Errorf("sort_order must be a number or null, got %T", value)
			}
		case "highlights":
			raw, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("highlights must be a list of strings: %w", err)
			}
			var list domain.StringList
			if err := json.Unmarshal(raw, &list); err != nil {
				return nil, fmt.Errorf("highlights must be a list of strings: %w", err)
			}
			normalized[column] = list
		default:
			str, ok := value.(string)
			if !ok && value != nil {
				return nil, fmt.Errorf("%s must be a string", column)
			}
			normalized[column] = str
		}
	}
	return normalized, nil
}

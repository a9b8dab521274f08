package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hackfest/internal/domain"
	"hackfest/internal/port"
)

type contentRepo struct {
	acc *Accessor
}

// NewContentRepo creates a PostgreSQL-backed ContentRepository over the
// shared accessor.
func NewContentRepo(acc *Accessor) port.ContentRepository {
	return &contentRepo{acc: acc}
}

func (r *contentRepo) List(ctx context.Context, collection string) ([]domain.Item, error) {
	db, ok := r.acc.DB()
	if !ok {
		return nil, domain.ErrStoreNotConfigured
	}

	var items []domain.Item
	err := db.SelectContext(ctx, &items,
		`SELECT * FROM content_items
		 WHERE collection = $1
		 ORDER BY sort_order ASC NULLS LAST, created_at ASC`,
		collection)
	if err != nil {
		return nil, fmt.Errorf("contentRepo.List %s: %w", collection, err)
	}
	return items, nil
}

func (r *contentRepo) Insert(ctx context.Context, item *domain.Item) error {
	db, ok := r.acc.DB()
	if !ok {
		return domain.ErrStoreNotConfigured
	}

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO content_items
		(id, collection, name, title, subtitle, description, highlights,
		 image_url, link_url, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := db.ExecContext(ctx, query,
		item.ID, item.Collection, item.Name, item.Title, item.Subtitle,
		item.Description, item.Highlights, item.ImageURL, item.LinkURL,
		item.SortOrder, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("contentRepo.Insert %s: %w", item.Collection, err)
	}
	return nil
}

func (r *contentRepo) UpdateFields(ctx context.Context, collection string, id uuid.UUID, fields map[string]interface{}) error {
	db, ok := r.acc.DB()
	if !ok {
		return domain.ErrStoreNotConfigured
	}
	if len(fields) == 0 {
		return domain.ErrNoUpdatableFields
	}

	set := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+3)
	for column, value := range fields {
		if !domain.UpdatableFields[column] {
			return fmt.Errorf("contentRepo.UpdateFields: column %q is not updatable", column)
		}
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	args = append(args, time.Now().UTC())
	set = append(set, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, id, collection)

	query := fmt.Sprintf(
		"UPDATE content_items SET %s WHERE id = $%d AND collection = $%d",
		strings.Join(set, ", "), len(args)-1, len(args))

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("contentRepo.UpdateFields %s: %w", collection, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepo) Delete(ctx context.Context, collection string, id uuid.UUID) error {
	db, ok := r.acc.DB()
	if !ok {
		return domain.ErrStoreNotConfigured
	}

	result, err := db.ExecContext(ctx,
		"DELETE FROM content_items WHERE id = $1 AND collection = $2",
		id, collection)
	if err != nil {
		return fmt.Errorf("contentRepo.Delete %s: %w", collection, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hackfest/internal/config"
	"hackfest/internal/domain"
	"hackfest/internal/repository/postgres"
)

func TestAccessor_NotConfigured(t *testing.T) {
	acc := postgres.NewAccessor(&config.DBConfig{})

	db, ok := acc.DB()
	assert.Nil(t, db)
	assert.False(t, ok)

	// Memoized: repeated calls give the same answer.
	db, ok = acc.DB()
	assert.Nil(t, db)
	assert.False(t, ok)

	acc.Close()
}

func TestContentRepo_NotConfigured(t *testing.T) {
	acc := postgres.NewAccessor(&config.DBConfig{})
	repo := postgres.NewContentRepo(acc)
	ctx := context.Background()

	_, err := repo.List(ctx, domain.CollectionGuests)
	assert.ErrorIs(t, err, domain.ErrStoreNotConfigured)

	err = repo.Insert(ctx, &domain.Item{ID: uuid.New(), Collection: domain.CollectionGuests})
	assert.ErrorIs(t, err, domain.ErrStoreNotConfigured)

	err = repo.UpdateFields(ctx, domain.CollectionGuests, uuid.New(), map[string]interface{}{"name": "Ada"})
	assert.ErrorIs(t, err, domain.ErrStoreNotConfigured)

	err = repo.Delete(ctx, domain.CollectionGuests, uuid.New())
	assert.ErrorIs(t, err, domain.ErrStoreNotConfigured)
}

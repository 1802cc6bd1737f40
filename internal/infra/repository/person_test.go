package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzafar/marriage-bureau/internal/domain"
)

func TestPersonRepositoryCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testPerson("Omar Siddiqui"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Omar Siddiqui", got.FullName)
	assert.Equal(t, "1991-06-02", got.DateOfBirth.String())

	update := testPerson("Omar Siddiqui")
	update.Occupation = "Architect"
	updated, err := repo.Update(ctx, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Architect", updated.Occupation)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

	people, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, people, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestPersonRepositoryGetMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)

	_, err := repo.Get(context.Background(), 999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.True(t, errors.Is(repo.Delete(context.Background(), 999), domain.ErrNotFound))
}

func TestPersonRepositoryDeleteReferenced(t *testing.T) {
	db := newTestDB(t)
	persons := NewPersonRepository(db)
	letters := NewLetterRepository(db)
	ctx := context.Background()

	resp, err := letters.Create(ctx, testLetter(), "MB-2026-000001")
	require.NoError(t, err)

	letter, err := letters.Get(ctx, resp.ID)
	require.NoError(t, err)

	err = persons.Delete(ctx, letter.Husband.ID)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	// unreferenced persons still delete fine
	solo, err := persons.Create(ctx, testPerson("Unrelated Person"))
	require.NoError(t, err)
	assert.NoError(t, persons.Delete(ctx, solo.ID))
}

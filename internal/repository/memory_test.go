package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickprod/callsheet-api/internal/models"
)

func newProjectMemory() *Memory[models.Project, models.InsertProject, models.ProjectPatch] {
	return NewMemory[models.Project, models.InsertProject, models.ProjectPatch](models.NewProjectFromInsert)
}

func TestMemoryCreateAssignsServerFields(t *testing.T) {
	repo := newProjectMemory()

	created, err := repo.Create(context.Background(), models.InsertProject{Name: "Spot 30s"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Spot 30s", created.Name)
	assert.Equal(t, models.ProjectStatusActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.Before(created.CreatedAt))
}

func TestMemoryCreateKeepsClientID(t *testing.T) {
	repo := newProjectMemory()

	created, err := repo.Create(context.Background(), models.InsertProject{ID: "client-id-1", Name: "Docu"})
	require.NoError(t, err)
	assert.Equal(t, "client-id-1", created.ID)
}

func TestMemoryGetAfterCreate(t *testing.T) {
	repo := newProjectMemory()

	created, err := repo.Create(context.Background(), models.InsertProject{Name: "Feature"})
	require.NoError(t, err)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func TestMemoryGetUnknownID(t *testing.T) {
	repo := newProjectMemory()

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryUpdateMergesPartial(t *testing.T) {
	repo := newProjectMemory()

	created, err := repo.Create(context.Background(), models.InsertProject{Name: "Old name", Client: "ACME"})
	require.NoError(t, err)

	newName := "New name"
	updated, err := repo.Update(context.Background(), created.ID, models.ProjectPatch{Name: &newName})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "New name", updated.Name)
	assert.Equal(t, "ACME", updated.Client, "unpatched fields stay")
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt), "updatedAt never goes backwards")
}

func TestMemoryUpdateUnknownIDIsNotAnError(t *testing.T) {
	repo := newProjectMemory()

	name := "whatever"
	updated, err := repo.Update(context.Background(), "nope", models.ProjectPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestMemoryDelete(t *testing.T) {
	repo := newProjectMemory()

	created, err := repo.Create(context.Background(), models.InsertProject{Name: "Short-lived"})
	require.NoError(t, err)

	ok, err := repo.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "deleted record is gone")

	ok, err = repo.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete reports nothing removed")
}

func TestMemoryListPreservesInsertionOrder(t *testing.T) {
	repo := newProjectMemory()

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Create(context.Background(), models.InsertProject{Name: name})
		require.NoError(t, err)
	}

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "second", items[1].Name)
	assert.Equal(t, "third", items[2].Name)
}

func TestMemoryListReturnsCopy(t *testing.T) {
	repo := newProjectMemory()

	_, err := repo.Create(context.Background(), models.InsertProject{Name: "original"})
	require.NoError(t, err)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	items[0].Name = "mutated"

	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Name)
}

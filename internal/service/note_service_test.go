package service

import (
	"context"
	"testing"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/repository"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/store"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteAddListRemove(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(repository.NewNoteRepository(store.NewMemoryStore()))

	first, err := svc.Add(ctx, "npp", &transfer.NoteCreation{
		Author: "Dana", Role: "crew-lead", Content: "Hold the deck shots until the stain dries.",
	})
	require.NoError(t, err)

	second, err := svc.Add(ctx, "npp", &transfer.NoteCreation{
		Author: "Marco", Role: "owner", Content: "Push cabinet refits this month.",
	})
	require.NoError(t, err)

	notes, err := svc.List(ctx, "npp")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	// newest first
	assert.Equal(t, second, notes[0].ID)
	assert.Equal(t, first, notes[1].ID)

	notes, err = svc.List(ctx, "lumepaint")
	require.NoError(t, err)
	assert.Empty(t, notes)

	found, err := svc.Remove(ctx, "lumepaint", first)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = svc.Remove(ctx, "npp", first)
	require.NoError(t, err)
	assert.True(t, found)

	notes, err = svc.List(ctx, "npp")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, second, notes[0].ID)
}

func TestNoteAdd_EmptyContentRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(repository.NewNoteRepository(store.NewMemoryStore()))

	_, err := svc.Add(ctx, "npp", &transfer.NoteCreation{Author: "Dana"})
	assert.Error(t, err)
}

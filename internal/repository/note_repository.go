package repository

import (
	"context"
	"log/slog"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/store"
)

type NoteRepository interface {
	ListByBrand(ctx context.Context, brand string) ([]models.TeamNote, error)
	Insert(ctx context.Context, note models.TeamNote) error
	Remove(ctx context.Context, id string) (bool, error)
}

type noteRepository struct {
	st store.Store
}

func NewNoteRepository(st store.Store) NoteRepository {
	return &noteRepository{st: st}
}

func (r *noteRepository) list(ctx context.Context) ([]models.TeamNote, error) {
	var notes []models.TeamNote
	if err := r.st.Read(ctx, store.KeyNotes, &notes); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) ListByBrand(ctx context.Context, brand string) ([]models.TeamNote, error) {
	notes, err := r.list(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []models.TeamNote
	for _, n := range notes {
		if n.Brand == brand {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

func (r *noteRepository) Insert(ctx context.Context, note models.TeamNote) error {
	notes, err := r.list(ctx)
	if err != nil {
		return err
	}

	// newest first, matching how the notes board is read
	notes = append([]models.TeamNote{note}, notes...)
	return r.st.Write(ctx, store.KeyNotes, notes)
}

func (r *noteRepository) Remove(ctx context.Context, id string) (bool, error) {
	notes, err := r.list(ctx)
	if err != nil {
		return false, err
	}

	for i := range notes {
		if notes[i].ID == id {
			notes = append(notes[:i], notes[i+1:]...)
			return true, r.st.Write(ctx, store.KeyNotes, notes)
		}
	}
	return false, nil
}

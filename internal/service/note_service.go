package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/repository"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type NoteService interface {
	List(ctx context.Context, brand string) ([]models.TeamNote, error)
	Add(ctx context.Context, brand string, nc *transfer.NoteCreation) (string, error)
	Remove(ctx context.Context, brand, id string) (bool, error)
}

type noteService struct {
	nr repository.NoteRepository
}

func NewNoteService(nr repository.NoteRepository) NoteService {
	return &noteService{nr: nr}
}

func (s *noteService) List(ctx context.Context, brand string) ([]models.TeamNote, error) {
	return s.nr.ListByBrand(ctx, brand)
}

func (s *noteService) Add(ctx context.Context, brand string, nc *transfer.NoteCreation) (string, error) {
	if nc == nil || nc.Content == "" {
		err := errors.New("note content cannot be empty")
		slog.Info(err.Error())
		return "", err
	}

	note := models.TeamNote{
		ID:        "note-" + gonanoid.Must(12),
		Brand:     brand,
		Author:    nc.Author,
		Role:      nc.Role,
		Content:   nc.Content,
		CreatedAt: time.Now(),
	}

	if err := s.nr.Insert(ctx, note); err != nil {
		return "", err
	}
	return note.ID, nil
}

func (s *noteService) Remove(ctx context.Context, brand, id string) (bool, error) {
	notes, err := s.nr.ListByBrand(ctx, brand)
	if err != nil {
		return false, err
	}

	for _, n := range notes {
		if n.ID == id {
			return s.nr.Remove(ctx, id)
		}
	}
	return false, nil
}

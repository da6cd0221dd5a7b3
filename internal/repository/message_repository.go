package repository

import (
	"context"
	"log/slog"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/store"
)

type MessageRepository interface {
	List(ctx context.Context) ([]models.MessageTemplate, error)
	ListByBrand(ctx context.Context, brand string) ([]models.MessageTemplate, error)
	GetByID(ctx context.Context, id string) (*models.MessageTemplate, error)
	Insert(ctx context.Context, templates ...models.MessageTemplate) error
	Update(ctx context.Context, id string, mutate func(*models.MessageTemplate)) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type messageRepository struct {
	st store.Store
}

func NewMessageRepository(st store.Store) MessageRepository {
	return &messageRepository{st: st}
}

func (r *messageRepository) List(ctx context.Context) ([]models.MessageTemplate, error) {
	var templates []models.MessageTemplate
	if err := r.st.Read(ctx, store.KeyMessages, &templates); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return templates, nil
}

func (r *messageRepository) ListByBrand(ctx context.Context, brand string) ([]models.MessageTemplate, error) {
	templates, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []models.MessageTemplate
	for _, t := range templates {
		if t.Brand == brand {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (r *messageRepository) GetByID(ctx context.Context, id string) (*models.MessageTemplate, error) {
	templates, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range templates {
		if templates[i].ID == id {
			return &templates[i], nil
		}
	}
	return nil, nil
}

func (r *messageRepository) Insert(ctx context.Context, toAdd ...models.MessageTemplate) error {
	templates, err := r.List(ctx)
	if err != nil {
		return err
	}

	templates = append(templates, toAdd...)
	return r.st.Write(ctx, store.KeyMessages, templates)
}

func (r *messageRepository) Update(ctx context.Context, id string, mutate func(*models.MessageTemplate)) (bool, error) {
	templates, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range templates {
		if templates[i].ID == id {
			mutate(&templates[i])
			return true, r.st.Write(ctx, store.KeyMessages, templates)
		}
	}
	return false, nil
}

func (r *messageRepository) Remove(ctx context.Context, id string) (bool, error) {
	templates, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range templates {
		if templates[i].ID == id {
			templates = append(templates[:i], templates[i+1:]...)
			return true, r.st.Write(ctx, store.KeyMessages, templates)
		}
	}
	return false, nil
}

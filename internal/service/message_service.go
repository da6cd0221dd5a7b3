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

type MessageService interface {
	List(ctx context.Context, brand string) ([]models.MessageTemplate, error)
	Create(ctx context.Context, brand string, mc *transfer.MessageCreation) (string, error)
	Update(ctx context.Context, brand, id string, mu *transfer.MessageUpdate) (bool, error)
	Remove(ctx context.Context, brand, id string) (bool, error)
}

type messageService struct {
	mr repository.MessageRepository
}

func NewMessageService(mr repository.MessageRepository) MessageService {
	return &messageService{mr: mr}
}

func (s *messageService) List(ctx context.Context, brand string) ([]models.MessageTemplate, error) {
	return s.mr.ListByBrand(ctx, brand)
}

func (s *messageService) Create(ctx context.Context, brand string, mc *transfer.MessageCreation) (string, error) {
	if mc == nil || mc.Content == "" {
		err := errors.New("message content cannot be empty")
		slog.Info(err.Error())
		return "", err
	}

	subject := models.Subject(mc.Subject)
	tone := models.Tone(mc.Tone)
	cta := models.CallToAction(mc.CTA)
	platform := models.Platform(mc.Platform)
	if !subject.Valid() || !tone.Valid() || !cta.Valid() || !platform.Valid() {
		return "", ErrInvalidTag
	}

	template := models.MessageTemplate{
		ID:          "msg-" + gonanoid.Must(12),
		Brand:       brand,
		Content:     mc.Content,
		Subject:     subject,
		Tone:        tone,
		CTA:         cta,
		Platform:    platform,
		ContentType: mc.ContentType,
		Hashtags:    mc.Hashtags,
		CreatedAt:   time.Now(),
	}

	if err := s.mr.Insert(ctx, template); err != nil {
		return "", err
	}
	return template.ID, nil
}

func (s *messageService) Update(ctx context.Context, brand, id string, mu *transfer.MessageUpdate) (bool, error) {
	existing, err := s.mr.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil || existing.Brand != brand {
		return false, nil
	}

	if mu.Subject != nil && !models.Subject(*mu.Subject).Valid() {
		return false, ErrInvalidTag
	}
	if mu.Tone != nil && !models.Tone(*mu.Tone).Valid() {
		return false, ErrInvalidTag
	}
	if mu.CTA != nil && !models.CallToAction(*mu.CTA).Valid() {
		return false, ErrInvalidTag
	}
	if mu.Platform != nil && !models.Platform(*mu.Platform).Valid() {
		return false, ErrInvalidTag
	}

	return s.mr.Update(ctx, id, func(t *models.MessageTemplate) {
		if mu.Content != nil {
			t.Content = *mu.Content
		}
		if mu.Subject != nil {
			t.Subject = models.Subject(*mu.Subject)
		}
		if mu.Tone != nil {
			t.Tone = models.Tone(*mu.Tone)
		}
		if mu.CTA != nil {
			t.CTA = models.CallToAction(*mu.CTA)
		}
		if mu.Platform != nil {
			t.Platform = models.Platform(*mu.Platform)
		}
		if mu.ContentType != nil {
			t.ContentType = *mu.ContentType
		}
		if mu.Hashtags != nil {
			t.Hashtags = *mu.Hashtags
		}
	})
}

func (s *messageService) Remove(ctx context.Context, brand, id string) (bool, error) {
	existing, err := s.mr.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil || existing.Brand != brand {
		return false, nil
	}
	return s.mr.Remove(ctx, id)
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/freshness"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/repository"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// PostFilter narrows a post listing; zero values match everything.
type PostFilter struct {
	Platform models.Platform
	Kind     models.PostKind
	Category models.PostCategory
	Search   string
}

type PostService interface {
	List(ctx context.Context, brand string, f PostFilter) ([]models.ScheduledPost, error)
	Create(ctx context.Context, brand string, pc *transfer.PostCreation) (string, error)
	Update(ctx context.Context, brand, id string, pu *transfer.PostUpdate) (bool, error)
	Schedule(ctx context.Context, brand, id string, date time.Time, confirmed bool) (*transfer.ScheduleDecision, error)
	MarkPosted(ctx context.Context, brand, id string) (bool, error)
	Claim(ctx context.Context, brand, id, name string) (bool, error)
	Remove(ctx context.Context, brand, id string) (bool, error)
}

type postService struct {
	pr repository.PostRepository
}

func NewPostService(pr repository.PostRepository) PostService {
	return &postService{pr: pr}
}

func (s *postService) List(ctx context.Context, brand string, f PostFilter) ([]models.ScheduledPost, error) {
	posts, err := s.pr.ListByBrand(ctx, brand)
	if err != nil {
		return nil, err
	}

	var filtered []models.ScheduledPost
	for _, p := range posts {
		if f.Platform != "" && p.Platform != f.Platform {
			continue
		}
		if f.Kind != "" && p.Kind != f.Kind {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Content), strings.ToLower(f.Search)) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (s *postService) Create(ctx context.Context, brand string, pc *transfer.PostCreation) (string, error) {
	if pc == nil || pc.Content == "" {
		err := errors.New("post content cannot be empty")
		slog.Info(err.Error())
		return "", err
	}

	platform := models.Platform(pc.Platform)
	kind := models.PostKind(pc.Kind)
	category := models.PostCategory(pc.Category)
	if platform == models.PlatformAll || !platform.Valid() {
		return "", ErrInvalidTag
	}
	if kind != models.PostKindEvergreen && kind != models.PostKindSeasonal {
		return "", ErrInvalidTag
	}
	if !validCategory(category) {
		return "", ErrInvalidTag
	}

	post := models.ScheduledPost{
		ID:        "post-" + gonanoid.Must(12),
		Brand:     brand,
		Content:   pc.Content,
		Platform:  platform,
		Kind:      kind,
		Category:  category,
		ImageURL:  pc.ImageURL,
		Status:    models.PostStatusDraft,
		CreatedAt: time.Now(),
	}

	if err := s.pr.Insert(ctx, post); err != nil {
		return "", err
	}
	return post.ID, nil
}

func (s *postService) Update(ctx context.Context, brand, id string, pu *transfer.PostUpdate) (bool, error) {
	existing, err := s.getOwned(ctx, brand, id)
	if err != nil || existing == nil {
		return false, err
	}

	if pu.Platform != nil {
		p := models.Platform(*pu.Platform)
		if p == models.PlatformAll || !p.Valid() {
			return false, ErrInvalidTag
		}
	}
	if pu.Kind != nil {
		k := models.PostKind(*pu.Kind)
		if k != models.PostKindEvergreen && k != models.PostKindSeasonal {
			return false, ErrInvalidTag
		}
	}
	if pu.Category != nil && !validCategory(models.PostCategory(*pu.Category)) {
		return false, ErrInvalidTag
	}

	return s.pr.Update(ctx, id, func(p *models.ScheduledPost) {
		if pu.Content != nil {
			p.Content = *pu.Content
		}
		if pu.Platform != nil {
			p.Platform = models.Platform(*pu.Platform)
		}
		if pu.Kind != nil {
			p.Kind = models.PostKind(*pu.Kind)
		}
		if pu.Category != nil {
			p.Category = models.PostCategory(*pu.Category)
		}
		if pu.ImageURL != nil {
			p.ImageURL = *pu.ImageURL
		}
	})
}

// Schedule attaches a date and moves the post to scheduled, stamping LastUsed
// with that date. Recent reuse defers the request until repeated with
// confirmed set.
func (s *postService) Schedule(ctx context.Context, brand, id string, date time.Time, confirmed bool) (*transfer.ScheduleDecision, error) {
	post, err := s.getOwned(ctx, brand, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return &transfer.ScheduleDecision{}, nil
	}

	decision := &transfer.ScheduleDecision{Found: true}
	if !confirmed && freshness.RecentlyUsed(post.LastUsed, time.Now()) {
		decision.Deferred = true
		return decision, nil
	}

	ok, err := s.pr.Update(ctx, id, func(p *models.ScheduledPost) {
		p.Status = models.PostStatusScheduled
		p.ScheduledDate = &date
		p.LastUsed = &date
	})
	if err != nil {
		return nil, err
	}
	decision.Committed = ok
	return decision, nil
}

func (s *postService) MarkPosted(ctx context.Context, brand, id string) (bool, error) {
	existing, err := s.getOwned(ctx, brand, id)
	if err != nil || existing == nil {
		return false, err
	}

	now := time.Now()
	return s.pr.Update(ctx, id, func(p *models.ScheduledPost) {
		p.Status = models.PostStatusPosted
		p.LastUsed = &now
	})
}

func (s *postService) Claim(ctx context.Context, brand, id, name string) (bool, error) {
	existing, err := s.getOwned(ctx, brand, id)
	if err != nil || existing == nil {
		return false, err
	}

	return s.pr.Update(ctx, id, func(p *models.ScheduledPost) {
		p.ClaimedBy = name
	})
}

func (s *postService) Remove(ctx context.Context, brand, id string) (bool, error) {
	existing, err := s.getOwned(ctx, brand, id)
	if err != nil || existing == nil {
		return false, err
	}
	return s.pr.Remove(ctx, id)
}

func (s *postService) getOwned(ctx context.Context, brand, id string) (*models.ScheduledPost, error) {
	post, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Brand != brand {
		return nil, nil
	}
	return post, nil
}

func validCategory(c models.PostCategory) bool {
	for _, x := range models.PostCategories {
		if x == c {
			return true
		}
	}
	return false
}

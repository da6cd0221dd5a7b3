package repository

import (
	"context"
	"log/slog"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/store"
)

type PostRepository interface {
	List(ctx context.Context) ([]models.ScheduledPost, error)
	ListByBrand(ctx context.Context, brand string) ([]models.ScheduledPost, error)
	GetByID(ctx context.Context, id string) (*models.ScheduledPost, error)
	Insert(ctx context.Context, posts ...models.ScheduledPost) error
	Update(ctx context.Context, id string, mutate func(*models.ScheduledPost)) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type postRepository struct {
	st store.Store
}

func NewPostRepository(st store.Store) PostRepository {
	return &postRepository{st: st}
}

func (r *postRepository) List(ctx context.Context) ([]models.ScheduledPost, error) {
	var posts []models.ScheduledPost
	if err := r.st.Read(ctx, store.KeyPosts, &posts); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByBrand(ctx context.Context, brand string) ([]models.ScheduledPost, error) {
	posts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []models.ScheduledPost
	for _, p := range posts {
		if p.Brand == brand {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.ScheduledPost, error) {
	posts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, nil
}

func (r *postRepository) Insert(ctx context.Context, toAdd ...models.ScheduledPost) error {
	posts, err := r.List(ctx)
	if err != nil {
		return err
	}

	posts = append(posts, toAdd...)
	return r.st.Write(ctx, store.KeyPosts, posts)
}

func (r *postRepository) Update(ctx context.Context, id string, mutate func(*models.ScheduledPost)) (bool, error) {
	posts, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range posts {
		if posts[i].ID == id {
			mutate(&posts[i])
			return true, r.st.Write(ctx, store.KeyPosts, posts)
		}
	}
	return false, nil
}

func (r *postRepository) Remove(ctx context.Context, id string) (bool, error) {
	posts, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range posts {
		if posts[i].ID == id {
			posts = append(posts[:i], posts[i+1:]...)
			return true, r.st.Write(ctx, store.KeyPosts, posts)
		}
	}
	return false, nil
}

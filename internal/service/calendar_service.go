package service

import (
	"context"
	"time"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/calendar"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/repository"
)

type CalendarService interface {
	Week(ctx context.Context, brand string, weekStart time.Time) ([calendar.DaysPerWeek]calendar.Day, error)
}

type calendarService struct {
	pr repository.PostRepository
	br repository.BundleRepository
}

func NewCalendarService(pr repository.PostRepository, br repository.BundleRepository) CalendarService {
	return &calendarService{pr: pr, br: br}
}

func (s *calendarService) Week(ctx context.Context, brand string, weekStart time.Time) ([calendar.DaysPerWeek]calendar.Day, error) {
	var empty [calendar.DaysPerWeek]calendar.Day

	posts, err := s.pr.ListByBrand(ctx, brand)
	if err != nil {
		return empty, err
	}
	bundles, err := s.br.ListByBrand(ctx, brand)
	if err != nil {
		return empty, err
	}

	return calendar.Week(weekStart, posts, bundles), nil
}

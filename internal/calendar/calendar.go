// Package calendar projects scheduled items onto week views.
package calendar

import (
	"time"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
)

// DaysPerWeek is the size of one calendar page; navigation moves the week
// start by this many days.
const DaysPerWeek = 7

type Day struct {
	Date    time.Time              `json:"date"`
	Posts   []models.ScheduledPost `json:"posts"`
	Bundles []models.ContentBundle `json:"bundles"`
}

// Week buckets the given posts and bundles into seven days starting at
// weekStart (inclusive). An item lands in the bucket whose calendar date
// equals its scheduled date; time of day is ignored. The projection never
// mutates its inputs.
func Week(weekStart time.Time, posts []models.ScheduledPost, bundles []models.ContentBundle) [DaysPerWeek]Day {
	var days [DaysPerWeek]Day
	for i := 0; i < DaysPerWeek; i++ {
		date := weekStart.AddDate(0, 0, i)
		day := Day{Date: date}

		for _, p := range posts {
			if p.ScheduledDate != nil && SameDate(*p.ScheduledDate, date) {
				day.Posts = append(day.Posts, p)
			}
		}
		for _, b := range bundles {
			if b.ScheduledDate != nil && SameDate(*b.ScheduledDate, date) {
				day.Bundles = append(day.Bundles, b)
			}
		}
		days[i] = day
	}
	return days
}

// NextWeek and PrevWeek shift a week start by one calendar page.
func NextWeek(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, DaysPerWeek)
}

func PrevWeek(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, -DaysPerWeek)
}

// SameDate reports calendar-date equality, ignoring time of day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

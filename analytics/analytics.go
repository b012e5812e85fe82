// Package analytics computes the derived statistics bundle for a user's task
// collection. Everything here is recomputed from scratch on every request;
// nothing is cached or persisted.
package analytics

import (
	"time"

	"github.com/pveldman/tasklane/models"
)

// CategoryCompletion is the per-category completion breakdown.
type CategoryCompletion struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Rate      float64 `json:"rate"`
}

// ActivityPoint is one calendar day of created/completed counts.
type ActivityPoint struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

// TrendPoint is one calendar day of completed count.
type TrendPoint struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

// Snapshot is the full derived statistics bundle.
type Snapshot struct {
	Total                int                           `json:"total"`
	Completed            int                           `json:"completed"`
	Pending              int                           `json:"pending"`
	Overdue              int                           `json:"overdue"`
	CompletionRate       float64                       `json:"completionRate"`
	ByCategory           *GroupCount                   `json:"byCategory"`
	ByPriority           *GroupCount                   `json:"byPriority"`
	CompletionByCategory map[string]CategoryCompletion `json:"completionByCategory"`
	WeeklyActivity       []ActivityPoint               `json:"weeklyActivity"`
	MonthlyTrends        []TrendPoint                  `json:"monthlyTrends"`
}

// Compute derives a Snapshot from the task collection. Day buckets run local
// midnight to midnight; a completed task is attributed to the day its
// updatedAt falls in, which is the last write, not a dedicated completion
// timestamp.
func Compute(tasks []models.Task, now time.Time) Snapshot {
	snap := Snapshot{
		Total:                len(tasks),
		ByCategory:           NewGroupCount(),
		ByPriority:           NewGroupCount(),
		CompletionByCategory: map[string]CategoryCompletion{},
	}

	for _, t := range tasks {
		if t.IsCompleted {
			snap.Completed++
		}
		if t.Overdue(now) {
			snap.Overdue++
		}
		snap.ByCategory.Add(t.Category)
		snap.ByPriority.Add(string(t.Priority))
	}
	snap.Pending = snap.Total - snap.Completed
	snap.CompletionRate = rate(snap.Completed, snap.Total)

	for _, category := range snap.ByCategory.Keys() {
		var total, completed int
		for _, t := range tasks {
			if t.Category != category {
				continue
			}
			total++
			if t.IsCompleted {
				completed++
			}
		}
		snap.CompletionByCategory[category] = CategoryCompletion{
			Total:     total,
			Completed: completed,
			Rate:      rate(completed, total),
		}
	}

	snap.WeeklyActivity = weeklyActivity(tasks, now)
	snap.MonthlyTrends = monthlyTrends(tasks, now)
	return snap
}

func rate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// weeklyActivity buckets the last 7 calendar days, oldest first, ending
// today.
func weeklyActivity(tasks []models.Task, now time.Time) []ActivityPoint {
	points := make([]ActivityPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := startOfDay(now.AddDate(0, 0, -i))
		next := day.AddDate(0, 0, 1)

		p := ActivityPoint{Date: day.Format("2006-01-02")}
		for _, t := range tasks {
			if inRange(t.CreatedAt, day, next) {
				p.Created++
			}
			if t.IsCompleted && inRange(t.UpdatedAt, day, next) {
				p.Completed++
			}
		}
		points = append(points, p)
	}
	return points
}

// monthlyTrends buckets completed counts over the last 30 calendar days,
// oldest first, ending today.
func monthlyTrends(tasks []models.Task, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, 30)
	for i := 29; i >= 0; i-- {
		day := startOfDay(now.AddDate(0, 0, -i))
		next := day.AddDate(0, 0, 1)

		p := TrendPoint{Date: day.Format("2006-01-02")}
		for _, t := range tasks {
			if t.IsCompleted && inRange(t.UpdatedAt, day, next) {
				p.Completed++
			}
		}
		points = append(points, p)
	}
	return points
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/pveldman/tasklane/models"
)

var testNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)

func task(category string, priority models.Priority, opts ...func(*models.Task)) models.Task {
	t := models.Task{
		Title:     "t",
		Category:  category,
		Priority:  priority,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func completedOn(day time.Time) func(*models.Task) {
	return func(t *models.Task) {
		t.IsCompleted = true
		t.UpdatedAt = day
	}
}

func createdOn(day time.Time) func(*models.Task) {
	return func(t *models.Task) { t.CreatedAt = day }
}

func dueAt(due time.Time) func(*models.Task) {
	return func(t *models.Task) { t.DueDate = &due }
}

func TestEmptyCollection(t *testing.T) {
	snap := Compute(nil, testNow)

	if snap.Total != 0 || snap.Completed != 0 || snap.Pending != 0 || snap.Overdue != 0 {
		t.Fatalf("counts not zero: %+v", snap)
	}
	if snap.CompletionRate != 0 {
		t.Fatalf("completion rate = %v, want 0", snap.CompletionRate)
	}
	if len(snap.WeeklyActivity) != 7 || len(snap.MonthlyTrends) != 30 {
		t.Fatalf("series lengths %d/%d, want 7/30", len(snap.WeeklyActivity), len(snap.MonthlyTrends))
	}
}

func TestBasicCountsScenario(t *testing.T) {
	// 3 tasks, 2 completed, 1 overdue-and-incomplete.
	tasks := []models.Task{
		task("Work", models.PriorityHigh, completedOn(testNow)),
		task("Work", models.PriorityLow, completedOn(testNow)),
		task("Home", models.PriorityMedium, dueAt(testNow.Add(-48*time.Hour))),
	}

	snap := Compute(tasks, testNow)

	if snap.Total != 3 || snap.Completed != 2 || snap.Pending != 1 || snap.Overdue != 1 {
		t.Fatalf("counts = total %d completed %d pending %d overdue %d",
			snap.Total, snap.Completed, snap.Pending, snap.Overdue)
	}
	if math.Abs(snap.CompletionRate-200.0/3.0) > 1e-9 {
		t.Fatalf("completion rate = %v, want 66.67", snap.CompletionRate)
	}
	if snap.Completed+snap.Pending != snap.Total {
		t.Fatal("completed + pending != total")
	}
}

func TestOverdueRequiresDueBeforeNowAndIncomplete(t *testing.T) {
	tasks := []models.Task{
		task("Work", models.PriorityLow, dueAt(testNow.Add(time.Hour))),                  // future due
		task("Work", models.PriorityLow, dueAt(testNow.Add(-time.Hour)), completedOn(testNow)), // past due but done
		task("Work", models.PriorityLow),                                                // no due date
		task("Work", models.PriorityLow, dueAt(testNow.Add(-time.Hour))),                // overdue
	}

	if snap := Compute(tasks, testNow); snap.Overdue != 1 {
		t.Fatalf("overdue = %d, want 1", snap.Overdue)
	}
}

func TestGroupsFollowFirstSeenOrder(t *testing.T) {
	tasks := []models.Task{
		task("Home", models.PriorityUrgent),
		task("Work", models.PriorityLow),
		task("Home", models.PriorityLow),
		task("Study", models.PriorityUrgent),
	}

	snap := Compute(tasks, testNow)

	wantCats := []string{"Home", "Work", "Study"}
	gotCats := snap.ByCategory.Keys()
	if len(gotCats) != len(wantCats) {
		t.Fatalf("category keys %v, want %v", gotCats, wantCats)
	}
	for i := range wantCats {
		if gotCats[i] != wantCats[i] {
			t.Fatalf("category keys %v, want %v", gotCats, wantCats)
		}
	}
	if snap.ByCategory.Get("Home") != 2 || snap.ByCategory.Get("Work") != 1 {
		t.Fatalf("category counts wrong: Home=%d Work=%d", snap.ByCategory.Get("Home"), snap.ByCategory.Get("Work"))
	}
	if snap.ByPriority.Get("urgent") != 2 || snap.ByPriority.Get("low") != 2 {
		t.Fatalf("priority counts wrong")
	}
}

func TestCompletionByCategory(t *testing.T) {
	tasks := []models.Task{
		task("Work", models.PriorityLow, completedOn(testNow)),
		task("Work", models.PriorityLow),
		task("Home", models.PriorityLow),
	}

	snap := Compute(tasks, testNow)

	work := snap.CompletionByCategory["Work"]
	if work.Total != 2 || work.Completed != 1 || math.Abs(work.Rate-50) > 1e-9 {
		t.Fatalf("Work completion = %+v", work)
	}
	home := snap.CompletionByCategory["Home"]
	if home.Total != 1 || home.Completed != 0 || home.Rate != 0 {
		t.Fatalf("Home completion = %+v", home)
	}
}

func TestWeeklyActivityShapeAndBuckets(t *testing.T) {
	twoDaysAgo := testNow.AddDate(0, 0, -2)
	tasks := []models.Task{
		task("Work", models.PriorityLow, createdOn(twoDaysAgo)),
		task("Work", models.PriorityLow, createdOn(twoDaysAgo), completedOn(twoDaysAgo)),
		task("Work", models.PriorityLow, createdOn(testNow.AddDate(0, 0, -10))), // outside window
	}

	snap := Compute(tasks, testNow)

	if len(snap.WeeklyActivity) != 7 {
		t.Fatalf("weekly activity has %d entries", len(snap.WeeklyActivity))
	}
	if last := snap.WeeklyActivity[6].Date; last != testNow.Format("2006-01-02") {
		t.Fatalf("weekly activity ends on %s, want today", last)
	}
	for i := 1; i < len(snap.WeeklyActivity); i++ {
		if snap.WeeklyActivity[i-1].Date >= snap.WeeklyActivity[i].Date {
			t.Fatalf("weekly activity dates not ascending: %s then %s",
				snap.WeeklyActivity[i-1].Date, snap.WeeklyActivity[i].Date)
		}
	}

	bucket := snap.WeeklyActivity[4] // two days ago
	if bucket.Date != twoDaysAgo.Format("2006-01-02") {
		t.Fatalf("bucket date %s, want %s", bucket.Date, twoDaysAgo.Format("2006-01-02"))
	}
	if bucket.Created != 2 || bucket.Completed != 1 {
		t.Fatalf("bucket created %d completed %d, want 2/1", bucket.Created, bucket.Completed)
	}
}

func TestCompletedCountsUseUpdatedAtDay(t *testing.T) {
	// Completed five days ago, but a later edit moved updatedAt to yesterday:
	// the completion is attributed to yesterday's bucket.
	yesterday := testNow.AddDate(0, 0, -1)
	tasks := []models.Task{
		task("Work", models.PriorityLow,
			createdOn(testNow.AddDate(0, 0, -5)),
			completedOn(yesterday)),
	}

	snap := Compute(tasks, testNow)

	if got := snap.WeeklyActivity[5].Completed; got != 1 {
		t.Fatalf("yesterday completed = %d, want 1", got)
	}
	if got := snap.WeeklyActivity[1].Completed; got != 0 {
		t.Fatalf("five-days-ago completed = %d, want 0", got)
	}
}

func TestMonthlyTrendsShape(t *testing.T) {
	snap := Compute([]models.Task{
		task("Work", models.PriorityLow, completedOn(testNow.AddDate(0, 0, -15))),
	}, testNow)

	if len(snap.MonthlyTrends) != 30 {
		t.Fatalf("monthly trends has %d entries", len(snap.MonthlyTrends))
	}
	if last := snap.MonthlyTrends[29].Date; last != testNow.Format("2006-01-02") {
		t.Fatalf("monthly trends end on %s, want today", last)
	}
	if got := snap.MonthlyTrends[14].Completed; got != 1 {
		t.Fatalf("15-days-ago completed = %d, want 1", got)
	}
}

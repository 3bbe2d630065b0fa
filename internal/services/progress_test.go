package services

import "testing"

func TestProgressCountsAndStreak(t *testing.T) {
	app := &Application{
		ID: "a1",
		Submissions: []Submission{
			{Week: 1, Status: SubmissionReviewed},
			{Week: 2, Status: SubmissionNeedsRevision},
			{Week: 3, Status: SubmissionSubmitted},
			{Week: 5, Status: SubmissionSubmitted},
		},
	}
	p := Progress(app)
	if p.ReviewedCount != 1 {
		t.Fatalf("reviewed = %d, want 1", p.ReviewedCount)
	}
	if p.NeedsRevision != 1 {
		t.Fatalf("needs revision = %d, want 1", p.NeedsRevision)
	}
	if p.SubmittedCount != 2 {
		t.Fatalf("submitted = %d, want 2", p.SubmittedCount)
	}
	// streak stops at the week 4 gap
	if p.Streak != 3 {
		t.Fatalf("streak = %d, want 3", p.Streak)
	}
	if p.CurrentWeek != 5 {
		t.Fatalf("current week = %d, want 5", p.CurrentWeek)
	}
}

func TestProgressEmpty(t *testing.T) {
	p := Progress(&Application{ID: "a1"})
	if p.Streak != 0 || p.ReviewedCount != 0 {
		t.Fatalf("unexpected progress for empty application: %+v", p)
	}
	if p.CurrentWeek != MinWeek {
		t.Fatalf("current week = %d, want %d", p.CurrentWeek, MinWeek)
	}
}

func TestProgressCurrentWeekCapped(t *testing.T) {
	app := &Application{ID: "a1"}
	for w := MinWeek; w <= MaxWeek; w++ {
		app.Submissions = append(app.Submissions, Submission{Week: w, Status: SubmissionReviewed})
	}
	p := Progress(app)
	if p.CurrentWeek != MaxWeek {
		t.Fatalf("current week = %d, want capped at %d", p.CurrentWeek, MaxWeek)
	}
	if p.Streak != MaxWeek {
		t.Fatalf("streak = %d, want %d", p.Streak, MaxWeek)
	}
}

func TestCohortSummary(t *testing.T) {
	apps := []*Application{
		{Status: StatusAccepted, PaymentStatus: PaymentDepositPaid, Submissions: []Submission{
			{Week: 1, Status: SubmissionReviewed},
			{Week: 2, Status: SubmissionSubmitted},
		}},
		{Status: StatusAccepted, PaymentStatus: PaymentUnpaid, Submissions: []Submission{
			{Week: 1, Status: SubmissionNeedsRevision},
		}},
		{Status: StatusApplied, PaymentStatus: PaymentUnpaid},
		{Status: StatusDeclined, PaymentStatus: PaymentUnpaid},
	}
	sum := Cohort(apps)
	if sum.Total != 4 || sum.Accepted != 2 || sum.Applied != 1 || sum.Declined != 1 {
		t.Fatalf("funnel counts wrong: %+v", sum)
	}
	if sum.MilestonesDone != 1 || sum.PendingReviews != 1 || sum.OpenRevisions != 1 {
		t.Fatalf("review counts wrong: %+v", sum)
	}
	want := 1.0 / float64(2*MaxWeek)
	if sum.CompletionRate != want {
		t.Fatalf("completion rate = %v, want %v", sum.CompletionRate, want)
	}
	if sum.DepositPaid != 1 || sum.UnpaidCount != 3 {
		t.Fatalf("payment counts wrong: %+v", sum)
	}
}

func TestSortedSubmissions(t *testing.T) {
	app := &Application{Submissions: []Submission{{Week: 3}, {Week: 1}, {Week: 2}}}
	sorted := SortedSubmissions(app)
	for i, sub := range sorted {
		if sub.Week != i+1 {
			t.Fatalf("position %d holds week %d", i, sub.Week)
		}
	}
	// original order untouched
	if app.Submissions[0].Week != 3 {
		t.Fatalf("SortedSubmissions mutated the application")
	}
}

package services

import "sort"

// ApplicationProgress is the derived per-student view shown on both
// dashboards. Counts are computed, never stored.
type ApplicationProgress struct {
	ApplicationID  string `json:"application_id"`
	SubmittedCount int    `json:"submitted_count"`
	ReviewedCount  int    `json:"reviewed_count"`
	NeedsRevision  int    `json:"needs_revision_count"`
	Streak         int    `json:"streak"`
	CurrentWeek    int    `json:"current_week"`
}

// CohortSummary aggregates the enrollment funnel for the staff overview tab.
type CohortSummary struct {
	Total           int     `json:"total"`
	Applied         int     `json:"applied"`
	Accepted        int     `json:"accepted"`
	Waitlisted      int     `json:"waitlisted"`
	Declined        int     `json:"declined"`
	MilestonesDone  int     `json:"milestones_done"`
	CompletionRate  float64 `json:"completion_rate"`
	PendingReviews  int     `json:"pending_reviews"`
	OpenRevisions   int     `json:"open_revisions"`
	FullyPaidCount  int     `json:"fully_paid"`
	DepositPaid     int     `json:"deposit_paid"`
	UnpaidCount     int     `json:"unpaid"`
}

// Progress derives the review counters and the submission streak for one
// application. The streak is the number of consecutive weeks, starting at
// week 1, for which a submission exists.
func Progress(app *Application) ApplicationProgress {
	p := ApplicationProgress{ApplicationID: app.ID}
	weeks := map[int]bool{}
	for _, sub := range app.Submissions {
		weeks[sub.Week] = true
		switch sub.Status {
		case SubmissionReviewed:
			p.ReviewedCount++
		case SubmissionNeedsRevision:
			p.NeedsRevision++
		case SubmissionSubmitted:
			p.SubmittedCount++
		}
	}
	for w := MinWeek; w <= MaxWeek; w++ {
		if !weeks[w] {
			break
		}
		p.Streak++
	}
	p.CurrentWeek = len(app.Submissions) + 1
	if p.CurrentWeek > MaxWeek {
		p.CurrentWeek = MaxWeek
	}
	if len(app.Submissions) == 0 {
		p.CurrentWeek = MinWeek
	}
	return p
}

// Cohort summarizes the whole collection for the staff overview.
func Cohort(apps []*Application) CohortSummary {
	sum := CohortSummary{Total: len(apps)}
	totalPossible := 0
	for _, app := range apps {
		switch app.Status {
		case StatusApplied:
			sum.Applied++
		case StatusAccepted:
			sum.Accepted++
		case StatusWaitlisted:
			sum.Waitlisted++
		case StatusDeclined:
			sum.Declined++
		}
		switch app.PaymentStatus {
		case PaymentFullyPaid:
			sum.FullyPaidCount++
		case PaymentDepositPaid:
			sum.DepositPaid++
		case PaymentUnpaid:
			sum.UnpaidCount++
		}
		if app.Status != StatusAccepted {
			continue
		}
		totalPossible += MaxWeek
		for _, sub := range app.Submissions {
			switch sub.Status {
			case SubmissionReviewed:
				sum.MilestonesDone++
			case SubmissionSubmitted:
				sum.PendingReviews++
			case SubmissionNeedsRevision:
				sum.OpenRevisions++
			}
		}
	}
	if totalPossible > 0 {
		sum.CompletionRate = float64(sum.MilestonesDone) / float64(totalPossible)
	}
	return sum
}

// SortedSubmissions returns a copy of the application's submissions ordered
// by week for display.
func SortedSubmissions(app *Application) []Submission {
	out := append([]Submission(nil), app.Submissions...)
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}

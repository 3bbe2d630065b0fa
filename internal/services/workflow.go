package services

// Review workflow per submission:
//
//	(no record) -> Submitted -> Reviewed
//	                  ^            |
//	                  |            v via staff review with needsRevision
//	                  +---- Needs Revision
//
// A week is always in exactly one of: awaiting staff action (Submitted),
// awaiting student action (Needs Revision), or done (Reviewed). No transition
// ever removes a submission.

// mergeSubmission folds an incoming student submission over the existing
// record for the same week. Zero-valued incoming fields keep their prior
// values, so feedback and the revision prompt survive a resubmission and stay
// visible to the student until the next staff review overwrites them.
// If the prior state was Needs Revision, the resubmission stamps RevisedAt.
func mergeSubmission(existing Submission, incoming Submission, now string) Submission {
	out := existing
	if incoming.Title != "" {
		out.Title = incoming.Title
	}
	if incoming.Content != "" {
		out.Content = incoming.Content
	}
	if incoming.Feedback != "" {
		out.Feedback = incoming.Feedback
	}
	if incoming.RevisionPrompt != "" {
		out.RevisionPrompt = incoming.RevisionPrompt
	}
	if existing.Status == SubmissionNeedsRevision {
		out.RevisedAt = now
	}
	out.Status = SubmissionSubmitted
	if incoming.SubmittedAt != "" {
		out.SubmittedAt = incoming.SubmittedAt
	} else if out.SubmittedAt == "" {
		out.SubmittedAt = now
	}
	return out
}

// newSubmission builds the record created the first time a student submits a
// week's work. The week enters the workflow directly in Submitted.
func newSubmission(incoming Submission, now string) Submission {
	out := incoming
	out.Status = SubmissionSubmitted
	if out.SubmittedAt == "" {
		out.SubmittedAt = now
	}
	out.RevisedAt = ""
	return out
}

// applyReview records a staff review outcome on a submission. The revision
// prompt is only replaced when a new one is supplied; otherwise the previous
// prompt stays attached to the week.
func applyReview(sub Submission, feedback string, needsRevision bool, revisionPrompt string) Submission {
	out := sub
	out.Feedback = feedback
	if revisionPrompt != "" {
		out.RevisionPrompt = revisionPrompt
	}
	if needsRevision {
		out.Status = SubmissionNeedsRevision
	} else {
		out.Status = SubmissionReviewed
	}
	return out
}

func validWeek(week int) bool {
	return week >= MinWeek && week <= MaxWeek
}

func validStage(stage ImpactStage) bool {
	switch stage {
	case StageBaseline, StageMidpoint, StageFinal:
		return true
	}
	return false
}

// clampRating forces a rubric rating into the 1..4 ordinal scale.
func clampRating(v int) int {
	if v < 1 {
		return 1
	}
	if v > 4 {
		return 4
	}
	return v
}

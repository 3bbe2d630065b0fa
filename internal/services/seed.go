package services

// DefaultApplications is the documented fallback used when the persisted
// applications slot is missing or unreadable. It mirrors the demo cohort the
// portal ships with: one enrolled student with reviewed work, the inspector
// account with full module access, and one enrolled student yet to start.
func DefaultApplications() []*Application {
	return []*Application{
		{
			ID:            "101",
			StudentName:   "Emma Vance",
			Age:           11,
			AppliedDate:   "Oct 12",
			Status:        StatusAccepted,
			ParentName:    "Sarah Vance",
			ParentEmail:   "parent@test.com",
			Note:          "Strong tech interest",
			PaymentStatus: PaymentDepositPaid,
			Messages:      []Message{},
			Submissions: []Submission{
				{Week: 1, Title: "Identity & Goal Map", Content: "My goal is to learn how to lead a small team by the end of the year.", Status: SubmissionReviewed, Feedback: "Great clarity on your leadership style, Emma.", SubmittedAt: "Oct 15"},
				{Week: 2, Title: "The Value Scenarios", Content: "I chose to invest in the community garden because it creates long-term value for everyone.", Status: SubmissionReviewed, Feedback: "Thoughtful analysis of social capital.", SubmittedAt: "Oct 22"},
			},
		},
		{
			ID:            "tester",
			StudentName:   "Inspector Candidate",
			Age:           12,
			AppliedDate:   "Today",
			Status:        StatusAccepted,
			ParentName:    "HQ Evaluator",
			ParentEmail:   "tester@brightpath.org",
			Note:          "Full Module Access Account",
			PaymentStatus: PaymentFullyPaid,
			Messages:      []Message{},
			Submissions:   []Submission{},
		},
		{
			ID:            "102",
			StudentName:   "Julian Reed",
			Age:           12,
			AppliedDate:   "Oct 11",
			Status:        StatusAccepted,
			ParentName:    "Mark Reed",
			ParentEmail:   "j.reed@parent.com",
			Note:          "Entrepreneurial mindset",
			PaymentStatus: PaymentUnpaid,
			Messages:      []Message{},
			Submissions:   []Submission{},
		},
	}
}

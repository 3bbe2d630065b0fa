package services

import "time"

// ApplicationStatus tracks a candidate through the enrollment funnel.
// Applied is the initial state; staff move it from there.
type ApplicationStatus string

const (
	StatusApplied    ApplicationStatus = "Applied"
	StatusAccepted   ApplicationStatus = "Accepted"
	StatusWaitlisted ApplicationStatus = "Waitlisted"
	StatusDeclined   ApplicationStatus = "Declined"
)

// PaymentStatus mirrors the financials column on the staff dashboard.
type PaymentStatus string

const (
	PaymentUnpaid      PaymentStatus = "Unpaid"
	PaymentDepositPaid PaymentStatus = "Deposit Paid"
	PaymentFullyPaid   PaymentStatus = "Fully Paid"
)

// SubmissionStatus is the review workflow state of one week's work product.
// Draft is conceptual only: no record exists until the student first submits.
type SubmissionStatus string

const (
	SubmissionDraft         SubmissionStatus = "Draft"
	SubmissionSubmitted     SubmissionStatus = "Submitted"
	SubmissionReviewed      SubmissionStatus = "Reviewed"
	SubmissionNeedsRevision SubmissionStatus = "Needs Revision"
)

// ImpactStage identifies one of the three assessment checkpoints.
type ImpactStage string

const (
	StageBaseline ImpactStage = "baseline"
	StageMidpoint ImpactStage = "midpoint"
	StageFinal    ImpactStage = "final"
)

// MinWeek and MaxWeek bound the curriculum. Submissions are unique per week.
const (
	MinWeek = 1
	MaxWeek = 8
)

// Submission is one week's student work product plus its review state.
type Submission struct {
	Week           int
	Title          string
	Content        string
	Status         SubmissionStatus
	Feedback       string
	RevisionPrompt string
	SubmittedAt    string
	RevisedAt      string
}

// Message is a support-desk note between staff and a parent.
type Message struct {
	ID        string
	Sender    string
	Text      string
	Timestamp string
}

// ImpactSnapshot holds the five-domain 1..4 rubric recorded at one stage.
type ImpactSnapshot struct {
	DecisionQuality      int
	CommunicationClarity int
	SelfManagement       int
	FinancialReasoning   int
	Confidence           int
	Notes                string
	RecordedAt           time.Time
}

// Application is one prospective or enrolled student's enrollment record.
// The parent email doubles as the portal lookup key.
type Application struct {
	ID            string
	StudentName   string
	Age           int
	ParentName    string
	ParentEmail   string
	Status        ApplicationStatus
	AppliedDate   string
	PaymentStatus PaymentStatus
	Note          string
	Messages      []Message
	Submissions   []Submission
	Impact        map[ImpactStage]ImpactSnapshot
}

// Session is the persisted per-browser login state. UserType is "staff",
// "student" or empty; ActiveEmail resolves the portal's application.
type Session struct {
	UserType    string
	ActiveEmail string
}

type AuditEntry struct {
	Time   time.Time
	Actor  string
	Action string
	Target string
	Note   string
}

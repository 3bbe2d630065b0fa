package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath-labs/brightpath/internal/utils"
)

// RegistryStore abstracts persistence for the application collection.
// Lookups return nil (not an error) when no record matches; Replace reports
// whether a record with the same ID existed.
type RegistryStore interface {
	InsertApplication(app *Application) error
	GetApplication(id string) (*Application, error)
	FindApplicationByEmail(email string) (*Application, error)
	ListApplications() ([]*Application, error)
	ReplaceApplication(app *Application) (bool, error)
	AddAudit(entry AuditEntry)
}

// ApplicationDraft carries the public intake fields. Anything missing or
// malformed decodes to a zero value and is stored as such; intake never
// rejects an applicant.
type ApplicationDraft struct {
	StudentName string
	Age         int
	ParentName  string
	ParentEmail string
	Interest    string // collected on the form, not persisted on the record
}

// RegistryService is the sole mutator of application records. Every
// operation routes through the store as a whole-record replace, so a reader
// never observes a half-updated application.
type RegistryService struct {
	store RegistryStore
	now   func() time.Time
	idGen func() string
}

func NewRegistryService(store RegistryStore) *RegistryService {
	return &RegistryService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: func() string { return shortID(9) },
	}
}

func shortID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}

func (s *RegistryService) timestamp() string {
	return s.now().Format(time.RFC3339)
}

// Create registers a new application from the public intake form. Status and
// payment state are forced to their initial values regardless of input, and
// the record is prepended so dashboards list newest candidates first.
func (s *RegistryService) Create(draft ApplicationDraft) (*Application, error) {
	now := s.now()
	age := draft.Age
	if age < 0 {
		age = 0
	}
	app := &Application{
		ID:            s.idGen(),
		StudentName:   strings.TrimSpace(draft.StudentName),
		Age:           age,
		ParentName:    strings.TrimSpace(draft.ParentName),
		ParentEmail:   strings.TrimSpace(draft.ParentEmail),
		Status:        StatusApplied,
		AppliedDate:   utils.FormatAppliedDate(now),
		PaymentStatus: PaymentUnpaid,
		Note:          "",
		Messages:      []Message{},
		Submissions:   []Submission{},
	}
	if err := s.store.InsertApplication(app); err != nil {
		return nil, err
	}
	s.store.AddAudit(AuditEntry{Time: now, Actor: "public", Action: "apply", Target: app.ID})
	return app, nil
}

// SetStatus replaces the enrollment status. Any status may follow any other;
// the funnel deliberately carries no transition table. Returns nil for an
// unknown id, leaving the collection untouched.
func (s *RegistryService) SetStatus(id string, status ApplicationStatus, actor string) (*Application, error) {
	switch status {
	case StatusApplied, StatusAccepted, StatusWaitlisted, StatusDeclined:
	default:
		return nil, NewInvalidError("unknown application status")
	}
	app, err := s.store.GetApplication(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, nil
	}
	app.Status = status
	if _, err := s.store.ReplaceApplication(app); err != nil {
		return nil, err
	}
	s.store.AddAudit(AuditEntry{Time: s.now(), Actor: actor, Action: "set_status", Target: id, Note: string(status)})
	return app, nil
}

// SetPaymentStatus updates the financials column. Same no-op contract as
// SetStatus.
func (s *RegistryService) SetPaymentStatus(id string, payment PaymentStatus, actor string) (*Application, error) {
	switch payment {
	case PaymentUnpaid, PaymentDepositPaid, PaymentFullyPaid:
	default:
		return nil, NewInvalidError("unknown payment status")
	}
	app, err := s.store.GetApplication(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, nil
	}
	app.PaymentStatus = payment
	if _, err := s.store.ReplaceApplication(app); err != nil {
		return nil, err
	}
	s.store.AddAudit(AuditEntry{Time: s.now(), Actor: actor, Action: "set_payment", Target: id, Note: string(payment)})
	return app, nil
}

// UpdateNote replaces the staff note on an application.
func (s *RegistryService) UpdateNote(id, note, actor string) (*Application, error) {
	app, err := s.store.GetApplication(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, nil
	}
	app.Note = note
	if _, err := s.store.ReplaceApplication(app); err != nil {
		return nil, err
	}
	s.store.AddAudit(AuditEntry{Time: s.now(), Actor: actor, Action: "update_note", Target: id})
	return app, nil
}

// UpsertSubmission records a student's work for one curriculum week on the
// application matching parentEmail. An existing record for that week is
// merged over, never duplicated: after the call exactly one submission per
// week exists. Unknown emails are a silent no-op.
func (s *RegistryService) UpsertSubmission(parentEmail string, incoming Submission) (*Application, error) {
	if !validWeek(incoming.Week) {
		return nil, NewInvalidError("week out of range")
	}
	app, err := s.store.FindApplicationByEmail(parentEmail)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, nil
	}
	now := s.timestamp()
	replaced := false
	for i, existing := range app.Submissions {
		if existing.Week == incoming.Week {
			app.Submissions[i] = mergeSubmission(existing, incoming, now)
			replaced = true
			break
		}
	}
	if !replaced {
		app.Submissions = append(app.Submissions, newSubmission(incoming, now))
	}
	if _, err := s.store.ReplaceApplication(app); err != nil {
		return nil, err
	}
	s.store.AddAudit(AuditEntry{Time: s.now(), Actor: parentEmail, Action: "submit_week", Target: app.ID, Note: "week " + itoa(incoming.Week)})
	return app, nil
}

// PublishReview attaches staff feedback to the submission for week and moves
// it to Reviewed, or to Needs Revision when needsRevision is set. Feedback is
// required; the revision prompt is optional and retained from the previous
// review when omitted. Unknown id or week is a silent no-op.
func (s *RegistryService) PublishReview(id string, week int, feedback string, needsRevision bool, revisionPrompt, actor string) (*Application, error) {
	if strings.TrimSpace(feedback) == "" {
		return nil, NewInvalidError("feedback required")
	}
	if !validWeek(week) {
		return nil, NewInvalidError("week out of range")
	}
	app, err := s.store.GetApplication(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, nil
	}
	found := false
	for i, sub := range app.Submissions {
		if sub.Week == week {
			app.Submissions[i] = applyReview(sub, feedback, needsRevision, revisionPrompt)
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}
	if _, err := s.store.ReplaceApplication(app); err != nil {
		return nil, err
	}
	action := "publish_review"
	if needsRevision {
		action = "request_revision"
	}
	s.store.AddAudit(AuditEntry{Time: s.now(), Actor: actor, Action: action, Target: id, Note: "week " + itoa(week)})
	return app, nil
}

// RecordImpactSnapshot stores the rubric for one assessment stage, replacing
// any prior snapshot for that stage in full. Ratings are clamped to the 1..4
// scale and RecordedAt is stamped at call time.
func (s *RegistryService) RecordImpactSnapshot(id string, stage ImpactStage, snap ImpactSnapshot, actor string) (*Application, error) {
	if !validStage(stage) {
		return nil, NewInvalidError("unknown impact stage")
	}
	app, err := s.store.GetApplication(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, nil
	}
	snap.DecisionQuality = clampRating(snap.DecisionQuality)
	snap.CommunicationClarity = clampRating(snap.CommunicationClarity)
	snap.SelfManagement = clampRating(snap.SelfManagement)
	snap.FinancialReasoning = clampRating(snap.FinancialReasoning)
	snap.Confidence = clampRating(snap.Confidence)
	snap.RecordedAt = s.now()
	if app.Impact == nil {
		app.Impact = map[ImpactStage]ImpactSnapshot{}
	}
	app.Impact[stage] = snap
	if _, err := s.store.ReplaceApplication(app); err != nil {
		return nil, err
	}
	s.store.AddAudit(AuditEntry{Time: s.now(), Actor: actor, Action: "record_impact", Target: id, Note: string(stage)})
	return app, nil
}

// List returns all applications, newest first.
func (s *RegistryService) List() ([]*Application, error) {
	return s.store.ListApplications()
}

// FindByEmail resolves the application shown in the student portal.
func (s *RegistryService) FindByEmail(parentEmail string) (*Application, error) {
	return s.store.FindApplicationByEmail(parentEmail)
}

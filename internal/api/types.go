package api

import (
	"time"

	"github.com/brightpath-labs/brightpath/internal/services"
)

// Wire-level shapes. These are also the persisted snapshot layout: the slot
// store serializes exactly these structs.

type Application struct {
	ID            string                    `json:"id"`
	StudentName   string                    `json:"student_name"`
	Age           int                       `json:"age"`
	ParentName    string                    `json:"parent_name"`
	ParentEmail   string                    `json:"parent_email"`
	Status        string                    `json:"status"`
	AppliedDate   string                    `json:"applied_date"`
	PaymentStatus string                    `json:"payment_status"`
	Note          string                    `json:"note"`
	Messages      []Message                 `json:"messages"`
	Submissions   []Submission              `json:"submissions"`
	Impact        map[string]ImpactSnapshot `json:"impact,omitempty"`
}

type Submission struct {
	Week           int    `json:"week"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Status         string `json:"status"`
	Feedback       string `json:"feedback,omitempty"`
	RevisionPrompt string `json:"revision_prompt,omitempty"`
	SubmittedAt    string `json:"submitted_at,omitempty"`
	RevisedAt      string `json:"revised_at,omitempty"`
}

type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type ImpactSnapshot struct {
	DecisionQuality      int       `json:"decision_quality"`
	CommunicationClarity int       `json:"communication_clarity"`
	SelfManagement       int       `json:"self_management"`
	FinancialReasoning   int       `json:"financial_reasoning"`
	Confidence           int       `json:"confidence"`
	Notes                string    `json:"notes,omitempty"`
	RecordedAt           time.Time `json:"recorded_at"`
}

type Session struct {
	UserType    string `json:"user_type"`
	ActiveEmail string `json:"active_email"`
}

type AuditEntry struct {
	Time   time.Time `json:"time"`
	Actor  string    `json:"actor"`
	Action string    `json:"action"`
	Target string    `json:"target"`
	Note   string    `json:"note,omitempty"`
}

func toServiceApplication(a *Application) *services.Application {
	if a == nil {
		return nil
	}
	out := &services.Application{
		ID:            a.ID,
		StudentName:   a.StudentName,
		Age:           a.Age,
		ParentName:    a.ParentName,
		ParentEmail:   a.ParentEmail,
		Status:        services.ApplicationStatus(a.Status),
		AppliedDate:   a.AppliedDate,
		PaymentStatus: services.PaymentStatus(a.PaymentStatus),
		Note:          a.Note,
		Messages:      make([]services.Message, 0, len(a.Messages)),
		Submissions:   make([]services.Submission, 0, len(a.Submissions)),
	}
	for _, m := range a.Messages {
		out.Messages = append(out.Messages, services.Message{ID: m.ID, Sender: m.Sender, Text: m.Text, Timestamp: m.Timestamp})
	}
	for _, s := range a.Submissions {
		out.Submissions = append(out.Submissions, services.Submission{
			Week:           s.Week,
			Title:          s.Title,
			Content:        s.Content,
			Status:         services.SubmissionStatus(s.Status),
			Feedback:       s.Feedback,
			RevisionPrompt: s.RevisionPrompt,
			SubmittedAt:    s.SubmittedAt,
			RevisedAt:      s.RevisedAt,
		})
	}
	if len(a.Impact) > 0 {
		out.Impact = make(map[services.ImpactStage]services.ImpactSnapshot, len(a.Impact))
		for stage, snap := range a.Impact {
			out.Impact[services.ImpactStage(stage)] = services.ImpactSnapshot{
				DecisionQuality:      snap.DecisionQuality,
				CommunicationClarity: snap.CommunicationClarity,
				SelfManagement:       snap.SelfManagement,
				FinancialReasoning:   snap.FinancialReasoning,
				Confidence:           snap.Confidence,
				Notes:                snap.Notes,
				RecordedAt:           snap.RecordedAt,
			}
		}
	}
	return out
}

func fromServiceApplication(a *services.Application) *Application {
	if a == nil {
		return nil
	}
	out := &Application{
		ID:            a.ID,
		StudentName:   a.StudentName,
		Age:           a.Age,
		ParentName:    a.ParentName,
		ParentEmail:   a.ParentEmail,
		Status:        string(a.Status),
		AppliedDate:   a.AppliedDate,
		PaymentStatus: string(a.PaymentStatus),
		Note:          a.Note,
		Messages:      make([]Message, 0, len(a.Messages)),
		Submissions:   make([]Submission, 0, len(a.Submissions)),
	}
	for _, m := range a.Messages {
		out.Messages = append(out.Messages, Message{ID: m.ID, Sender: m.Sender, Text: m.Text, Timestamp: m.Timestamp})
	}
	for _, s := range a.Submissions {
		out.Submissions = append(out.Submissions, Submission{
			Week:           s.Week,
			Title:          s.Title,
			Content:        s.Content,
			Status:         string(s.Status),
			Feedback:       s.Feedback,
			RevisionPrompt: s.RevisionPrompt,
			SubmittedAt:    s.SubmittedAt,
			RevisedAt:      s.RevisedAt,
		})
	}
	if len(a.Impact) > 0 {
		out.Impact = make(map[string]ImpactSnapshot, len(a.Impact))
		for stage, snap := range a.Impact {
			out.Impact[string(stage)] = ImpactSnapshot{
				DecisionQuality:      snap.DecisionQuality,
				CommunicationClarity: snap.CommunicationClarity,
				SelfManagement:       snap.SelfManagement,
				FinancialReasoning:   snap.FinancialReasoning,
				Confidence:           snap.Confidence,
				Notes:                snap.Notes,
				RecordedAt:           snap.RecordedAt,
			}
		}
	}
	return out
}

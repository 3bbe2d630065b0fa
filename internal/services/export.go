package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// ExportRosterCSV renders one row per application for the financials view.
func ExportRosterCSV(apps []*Application) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"id", "student_name", "age", "parent_name", "parent_email", "status", "applied_date", "payment_status", "note"})
	for _, a := range apps {
		rec := []string{
			a.ID,
			a.StudentName,
			itoa(a.Age),
			a.ParentName,
			a.ParentEmail,
			string(a.Status),
			a.AppliedDate,
			string(a.PaymentStatus),
			a.Note,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportSubmissionsCSV renders one row per (application, week) submission in
// week order, for offline review.
func ExportSubmissionsCSV(apps []*Application) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"application_id", "student_name", "week", "title", "status", "feedback", "revision_prompt", "submitted_at", "revised_at"})
	for _, a := range apps {
		for _, s := range SortedSubmissions(a) {
			rec := []string{
				a.ID,
				a.StudentName,
				itoa(s.Week),
				s.Title,
				string(s.Status),
				s.Feedback,
				s.RevisionPrompt,
				s.SubmittedAt,
				s.RevisedAt,
			}
			if err := w.Write(rec); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func itoa(v int) string { return strconv.Itoa(v) }

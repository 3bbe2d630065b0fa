package services

import (
	"bytes"
	"encoding/csv"
	"testing"
)

func TestExportRosterCSV(t *testing.T) {
	apps := []*Application{
		{ID: "101", StudentName: "Emma Vance", Age: 11, ParentName: "Sarah Vance", ParentEmail: "parent@test.com", Status: StatusAccepted, AppliedDate: "Oct 12", PaymentStatus: PaymentDepositPaid, Note: "Strong tech interest"},
		{ID: "102", StudentName: "Julian Reed", Age: 12, Status: StatusApplied, PaymentStatus: PaymentUnpaid},
	}
	b, err := ExportRosterCSV(apps)
	if err != nil {
		t.Fatalf("ExportRosterCSV returned error: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "id" || rows[0][7] != "payment_status" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Emma Vance" || rows[1][7] != "Deposit Paid" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
}

func TestExportSubmissionsCSVWeekOrder(t *testing.T) {
	apps := []*Application{
		{ID: "101", StudentName: "Emma Vance", Submissions: []Submission{
			{Week: 2, Title: "The Value Scenarios", Status: SubmissionReviewed, Feedback: "Thoughtful"},
			{Week: 1, Title: "Identity & Goal Map", Status: SubmissionReviewed},
		}},
	}
	b, err := ExportSubmissionsCSV(apps)
	if err != nil {
		t.Fatalf("ExportSubmissionsCSV returned error: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[1][2] != "1" || rows[2][2] != "2" {
		t.Fatalf("rows not in week order: %v / %v", rows[1], rows[2])
	}
	if rows[2][5] != "Thoughtful" {
		t.Fatalf("feedback column wrong: %v", rows[2])
	}
}

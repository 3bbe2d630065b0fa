//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("BRIGHTPATH_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:18080"
}

// TestEnrollmentJourneyIntegration walks the whole funnel against a running
// server: public application, staff acceptance, student submission, a
// revision round, and the final review.
func TestEnrollmentJourneyIntegration(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	base := baseURL()

	parentEmail := fmt.Sprintf("integration_%d@example.com", time.Now().UnixNano())

	var applyResp struct {
		ID string `json:"id"`
	}
	doPost(t, client, base+"/api/applications", "", map[string]any{
		"student_name": "Integration Student",
		"age":          "11",
		"parent_name":  "Integration Parent",
		"parent_email": parentEmail,
		"interest":     "Wants to build a snack stand business.",
	}, &applyResp)
	if applyResp.ID == "" {
		t.Fatalf("expected application id in response")
	}

	staffEmail := os.Getenv("BRIGHTPATH_STAFF_EMAIL")
	if staffEmail == "" {
		staffEmail = "admin@brightpath.org"
	}
	staffPassword := os.Getenv("BRIGHTPATH_STAFF_PASSWORD")
	if staffPassword == "" {
		staffPassword = "admin"
	}

	doPost(t, client, base+"/api/auth/staff/login", "", map[string]string{
		"email":    staffEmail,
		"password": staffPassword,
	}, nil)
	var verifyResp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	doPost(t, client, base+"/api/auth/staff/verify", "", map[string]string{
		"email": staffEmail,
		"code":  "123456",
	}, &verifyResp)
	if verifyResp.Token == "" || verifyResp.Role != "staff" {
		t.Fatalf("unexpected staff verify response: %+v", verifyResp)
	}
	staffToken := verifyResp.Token

	var statusResp struct {
		OK          bool `json:"ok"`
		Found       bool `json:"found"`
		Application struct {
			Status string `json:"status"`
		} `json:"application"`
	}
	doPost(t, client, base+"/api/applications/"+applyResp.ID+"/status", staffToken, map[string]string{
		"status": "Accepted",
	}, &statusResp)
	if !statusResp.Found || statusResp.Application.Status != "Accepted" {
		t.Fatalf("unexpected status response: %+v", statusResp)
	}

	var studentLogin struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	doPost(t, client, base+"/api/auth/student/login", "", map[string]string{
		"email": parentEmail,
		"pin":   "0000",
	}, &studentLogin)
	if studentLogin.Token == "" || studentLogin.Role != "student" {
		t.Fatalf("unexpected student login response: %+v", studentLogin)
	}
	studentToken := studentLogin.Token

	var submitResp struct {
		OK          bool `json:"ok"`
		Found       bool `json:"found"`
		Application struct {
			Submissions []struct {
				Week        int    `json:"week"`
				Status      string `json:"status"`
				SubmittedAt string `json:"submitted_at"`
			} `json:"submissions"`
		} `json:"application"`
	}
	doPost(t, client, base+"/api/portal/submissions", studentToken, map[string]any{
		"week":    1,
		"content": "My week one plan.",
	}, &submitResp)
	if !submitResp.Found || len(submitResp.Application.Submissions) != 1 {
		t.Fatalf("unexpected submission response: %+v", submitResp)
	}
	if got := submitResp.Application.Submissions[0].Status; got != "Submitted" {
		t.Fatalf("expected Submitted, got %s", got)
	}

	doPost(t, client, base+"/api/applications/"+applyResp.ID+"/reviews", staffToken, map[string]any{
		"week":            1,
		"feedback":        "Good start, add a budget.",
		"needs_revision":  true,
		"revision_prompt": "Include projected costs.",
	}, nil)

	doPost(t, client, base+"/api/portal/submissions", studentToken, map[string]any{
		"week":    1,
		"content": "My week one plan, now with a budget.",
	}, &submitResp)
	if len(submitResp.Application.Submissions) != 1 {
		t.Fatalf("resubmission duplicated the week: %+v", submitResp)
	}

	var reviewResp struct {
		Application struct {
			Submissions []struct {
				Week     int    `json:"week"`
				Status   string `json:"status"`
				Feedback string `json:"feedback"`
			} `json:"submissions"`
		} `json:"application"`
	}
	doPost(t, client, base+"/api/applications/"+applyResp.ID+"/reviews", staffToken, map[string]any{
		"week":     1,
		"feedback": "Budget looks solid. Approved.",
	}, &reviewResp)
	if got := reviewResp.Application.Submissions[0].Status; got != "Reviewed" {
		t.Fatalf("expected Reviewed after final review, got %s", got)
	}

	var progress struct {
		SubmittedCount int `json:"submitted_count"`
		ReviewedCount  int `json:"reviewed_count"`
		Streak         int `json:"streak"`
	}
	doGet(t, client, base+"/api/applications/"+applyResp.ID+"/progress", staffToken, &progress)
	if progress.SubmittedCount != 0 || progress.ReviewedCount != 1 || progress.Streak != 1 {
		t.Fatalf("unexpected progress: %+v", progress)
	}
}

func doPost(t *testing.T, client *http.Client, url, token string, body any, out any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http post %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}

func doGet(t *testing.T, client *http.Client, url, token string, out any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http get %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}

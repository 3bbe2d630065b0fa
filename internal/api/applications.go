package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/brightpath-labs/brightpath/internal/services"
)

// handleApplications serves the public intake (POST, no auth) and the staff
// roster listing (GET).
func (rt *Router) handleApplications(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		rt.handleIntake(w, r)
	case http.MethodGet:
		if !rt.requireRole(w, r, services.RoleStaff) {
			return
		}
		writeJSON(w, rt.store.ListApplications())
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleIntake accepts whatever the public form sends. Fields are coerced,
// never rejected: a missing name stores as empty, a non-numeric age as zero.
func (rt *Router) handleIntake(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		raw = map[string]any{}
	}
	draft := services.ApplicationDraft{
		StudentName: toString(raw["student_name"]),
		Age:         toInt(raw["age"]),
		ParentName:  toString(raw["parent_name"]),
		ParentEmail: toString(raw["parent_email"]),
		Interest:    toString(raw["interest"]),
	}
	app, err := rt.registry.Create(draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, fromServiceApplication(app))
}

// handleApplicationScoped routes staff mutations and per-record queries:
//
//	POST /api/applications/{id}/status
//	POST /api/applications/{id}/payment
//	POST /api/applications/{id}/note
//	POST /api/applications/{id}/reviews
//	POST /api/applications/{id}/impact/{stage}
//	GET  /api/applications/{id}/progress
//	GET  /api/applications/{id}
func (rt *Router) handleApplicationScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/applications/"), "/")
	parts := strings.Split(rest, "/")
	if parts[0] == "" {
		http.Error(w, "application id required", http.StatusBadRequest)
		return
	}
	id := parts[0]
	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		app := rt.store.GetApplication(id)
		if app == nil {
			http.Error(w, "application not found", http.StatusNotFound)
			return
		}
		writeJSON(w, app)
		return
	}
	switch parts[1] {
	case "status":
		rt.handleSetStatus(w, r, id)
	case "payment":
		rt.handleSetPayment(w, r, id)
	case "note":
		rt.handleUpdateNote(w, r, id)
	case "reviews":
		rt.handlePublishReview(w, r, id)
	case "impact":
		if len(parts) < 3 {
			http.Error(w, "impact stage required", http.StatusBadRequest)
			return
		}
		rt.handleRecordImpact(w, r, id, parts[2])
	case "progress":
		rt.handleProgress(w, r, id)
	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

func (rt *Router) handleSetStatus(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	app, err := rt.registry.SetStatus(id, services.ApplicationStatus(req.Status), actor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	mutationResponse(w, app)
}

func (rt *Router) handleSetPayment(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	app, err := rt.registry.SetPaymentStatus(id, services.PaymentStatus(req.PaymentStatus), actor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	mutationResponse(w, app)
}

func (rt *Router) handleUpdateNote(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	app, err := rt.registry.UpdateNote(id, req.Note, actor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	mutationResponse(w, app)
}

func (rt *Router) handlePublishReview(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Week           int    `json:"week"`
		Feedback       string `json:"feedback"`
		NeedsRevision  bool   `json:"needs_revision"`
		RevisionPrompt string `json:"revision_prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	app, err := rt.registry.PublishReview(id, req.Week, req.Feedback, req.NeedsRevision, req.RevisionPrompt, actor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	mutationResponse(w, app)
}

func (rt *Router) handleRecordImpact(w http.ResponseWriter, r *http.Request, id, stage string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		DecisionQuality      int    `json:"decision_quality"`
		CommunicationClarity int    `json:"communication_clarity"`
		SelfManagement       int    `json:"self_management"`
		FinancialReasoning   int    `json:"financial_reasoning"`
		Confidence           int    `json:"confidence"`
		Notes                string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	snap := services.ImpactSnapshot{
		DecisionQuality:      req.DecisionQuality,
		CommunicationClarity: req.CommunicationClarity,
		SelfManagement:       req.SelfManagement,
		FinancialReasoning:   req.FinancialReasoning,
		Confidence:           req.Confidence,
		Notes:                req.Notes,
	}
	app, err := rt.registry.RecordImpactSnapshot(id, services.ImpactStage(stage), snap, actor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	mutationResponse(w, app)
}

func (rt *Router) handleProgress(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	app := toServiceApplication(rt.store.GetApplication(id))
	if app == nil {
		http.Error(w, "application not found", http.StatusNotFound)
		return
	}
	writeJSON(w, services.Progress(app))
}

func (rt *Router) handleCohort(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apps, err := rt.registry.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, services.Cohort(apps))
}

func (rt *Router) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apps, err := rt.registry.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	format := r.URL.Query().Get("format")
	var data []byte
	var name string
	switch format {
	case "", "roster":
		data, err = services.ExportRosterCSV(apps)
		name = "brightpath_roster.csv"
	case "submissions":
		data, err = services.ExportSubmissionsCSV(apps)
		name = "brightpath_submissions.csv"
	default:
		http.Error(w, "unknown export format", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+name)
	_, _ = w.Write(data)
}

func (rt *Router) handleAudit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, rt.store.ListAudit())
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

// toInt accepts the number or string the form happens to send.
func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(n))
		return i
	default:
		return 0
	}
}

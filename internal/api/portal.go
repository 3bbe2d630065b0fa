package api

import (
	"encoding/json"
	"net/http"

	"github.com/brightpath-labs/brightpath/internal/middleware"
	"github.com/brightpath-labs/brightpath/internal/services"
)

// handlePortal returns everything the student portal renders in one call:
// the application record, derived progress, and the curriculum catalog.
func (rt *Router) handlePortal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	email, _ := middleware.EmailFromContext(r.Context())
	app, err := rt.registry.FindByEmail(email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if app == nil {
		http.Error(w, "no application for this account", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{
		"application": fromServiceApplication(app),
		"progress":    services.Progress(app),
		"curriculum":  services.Curriculum(),
	})
}

// handlePortalSubmission records the signed-in student's work for one week.
// Identity comes from the token, never the body.
func (rt *Router) handlePortalSubmission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	email, _ := middleware.EmailFromContext(r.Context())
	var req struct {
		Week    int    `json:"week"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		if m := services.ModuleForWeek(req.Week); m != nil {
			req.Title = m.Title
		}
	}
	app, err := rt.registry.UpsertSubmission(email, services.Submission{
		Week:    req.Week,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	mutationResponse(w, app)
}

func (rt *Router) handleCurriculum(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, services.Curriculum())
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/brightpath-labs/brightpath/internal/middleware"
	"github.com/brightpath-labs/brightpath/internal/services"
	"github.com/brightpath-labs/brightpath/internal/utils"
)

type Router struct {
	store    Store
	registry *services.RegistryService
	sessions *services.SessionService
	coach    *services.CoachService
	upgrader websocket.Upgrader
}

func NewRouter(store Store, coach *services.CoachService) *Router {
	staffEmail := utils.SafeEnv("BRIGHTPATH_STAFF_EMAIL", "admin@brightpath.org")
	staffPassword := utils.SafeEnv("BRIGHTPATH_STAFF_PASSWORD", "admin")
	return &Router{
		store:    store,
		registry: services.NewRegistryService(newRegistryStoreAdapter(store)),
		sessions: services.NewSessionService(newSessionStoreAdapter(store), middleware.SignToken, staffEmail, staffPassword),
		coach:    coach,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	staff := middleware.RequireStaff
	student := middleware.RequireStudent

	// Public intake shares its path with the staff listing, so the role check
	// for GET lives in the handler.
	mux.HandleFunc("/api/applications", rt.handleApplications)
	mux.Handle("/api/applications/", staff(http.HandlerFunc(rt.handleApplicationScoped)))
	mux.Handle("/api/portal", student(http.HandlerFunc(rt.handlePortal)))
	mux.Handle("/api/portal/submissions", student(http.HandlerFunc(rt.handlePortalSubmission)))
	mux.HandleFunc("/api/curriculum", rt.handleCurriculum)
	mux.Handle("/api/cohort", staff(http.HandlerFunc(rt.handleCohort)))
	mux.Handle("/api/export", staff(http.HandlerFunc(rt.handleExport)))
	mux.Handle("/api/audit", staff(http.HandlerFunc(rt.handleAudit)))
	mux.HandleFunc("/api/auth/staff/login", rt.handleStaffLogin)
	mux.HandleFunc("/api/auth/staff/verify", rt.handleStaffVerify)
	mux.HandleFunc("/api/auth/student/login", rt.handleStudentLogin)
	mux.HandleFunc("/api/auth/logout", rt.handleLogout)
	mux.HandleFunc("/api/session", rt.handleSession)
	mux.Handle("/api/coach/narrate", student(http.HandlerFunc(rt.handleNarrate)))
	mux.Handle("/api/coach/image", student(http.HandlerFunc(rt.handleRenderImage)))
	mux.Handle("/api/coach/live", student(http.HandlerFunc(rt.handleLiveCoach)))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps domain error codes onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	se, ok := services.AsServiceError(err)
	if !ok {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	status := http.StatusInternalServerError
	switch se.Code {
	case services.ErrorInvalid:
		status = http.StatusBadRequest
	case services.ErrorUnauthorized:
		status = http.StatusUnauthorized
	case services.ErrorForbidden:
		status = http.StatusForbidden
	case services.ErrorNotFound:
		status = http.StatusNotFound
	case services.ErrorConflict:
		status = http.StatusConflict
	case services.ErrorBadGateway:
		status = http.StatusBadGateway
	}
	http.Error(w, se.Message, status)
}

func (rt *Router) requireRole(w http.ResponseWriter, r *http.Request, role string) bool {
	if got, ok := middleware.RoleFromContext(r.Context()); !ok || got != role {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func actor(r *http.Request) string {
	if email, ok := middleware.EmailFromContext(r.Context()); ok {
		return email
	}
	if role, ok := middleware.RoleFromContext(r.Context()); ok {
		return role
	}
	return "anonymous"
}

// mutationResponse is the uniform reply for registry mutations. Lookup
// misses are not errors: found=false with the collection untouched.
func mutationResponse(w http.ResponseWriter, app *services.Application) {
	if app == nil {
		writeJSON(w, map[string]any{"ok": true, "found": false})
		return
	}
	writeJSON(w, map[string]any{"ok": true, "found": true, "application": fromServiceApplication(app)})
}

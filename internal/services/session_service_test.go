package services

import (
	"testing"
	"time"
)

type stubSessionStore struct {
	apps    []*Application
	session Session
	audit   []AuditEntry
}

func (s *stubSessionStore) FindApplicationByEmail(email string) (*Application, error) {
	for _, a := range s.apps {
		if a.ParentEmail == email {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubSessionStore) GetSession() (Session, error) { return s.session, nil }

func (s *stubSessionStore) SetSession(sess Session) error {
	s.session = sess
	return nil
}

func (s *stubSessionStore) ClearSession() error {
	s.session = Session{}
	return nil
}

func (s *stubSessionStore) AddAudit(e AuditEntry) { s.audit = append(s.audit, e) }

func stubSigner(role, email string, ttl time.Duration) (string, error) {
	return "tok-" + role + "-" + email, nil
}

func newTestSessions(store *stubSessionStore) *SessionService {
	return NewSessionService(store, stubSigner, "admin@brightpath.org", "admin")
}

func TestStaffLoginChecksCredential(t *testing.T) {
	svc := newTestSessions(&stubSessionStore{})

	if err := svc.StaffLogin("admin@brightpath.org", "admin"); err != nil {
		t.Fatalf("expected demo credential to pass, got %v", err)
	}
	err := svc.StaffLogin("admin@brightpath.org", "wrong")
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	err = svc.StaffLogin("intruder@brightpath.org", "admin")
	se, ok = AsServiceError(err)
	if !ok || se.Code != ErrorUnauthorized {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
	if err := svc.StaffLogin("", ""); err == nil {
		t.Fatalf("expected invalid error for empty credentials")
	}
}

func TestVerifyStaffCodeAcceptsAnyDigits(t *testing.T) {
	store := &stubSessionStore{}
	svc := newTestSessions(store)

	res, err := svc.VerifyStaffCode("admin@brightpath.org", "000123")
	if err != nil {
		t.Fatalf("VerifyStaffCode returned error: %v", err)
	}
	if res.Role != RoleStaff || res.Token == "" {
		t.Fatalf("unexpected auth result: %+v", res)
	}
	if store.session.UserType != RoleStaff || store.session.ActiveEmail != "" {
		t.Fatalf("session not established: %+v", store.session)
	}

	for _, code := range []string{"12345", "1234567", "12a456", ""} {
		if _, err := svc.VerifyStaffCode("admin@brightpath.org", code); err == nil {
			t.Fatalf("code %q should be rejected", code)
		}
	}
}

func TestStudentLoginResolvesApplication(t *testing.T) {
	store := &stubSessionStore{apps: []*Application{{ID: "101", ParentEmail: "parent@test.com"}}}
	svc := newTestSessions(store)

	res, err := svc.StudentLogin("parent@test.com", "1234")
	if err != nil {
		t.Fatalf("StudentLogin returned error: %v", err)
	}
	if res.Role != RoleStudent || res.Email != "parent@test.com" {
		t.Fatalf("unexpected auth result: %+v", res)
	}
	if store.session.UserType != RoleStudent || store.session.ActiveEmail != "parent@test.com" {
		t.Fatalf("session not established: %+v", store.session)
	}

	_, err = svc.StudentLogin("stranger@test.com", "1234")
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorUnauthorized {
		t.Fatalf("expected unauthorized for unmatched email, got %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	store := &stubSessionStore{apps: []*Application{{ParentEmail: "parent@test.com"}}}
	svc := newTestSessions(store)

	if _, err := svc.StudentLogin("parent@test.com", "1234"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout("parent@test.com"); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	sess, err := svc.Current()
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if sess.UserType != "" || sess.ActiveEmail != "" {
		t.Fatalf("session not cleared: %+v", sess)
	}
}

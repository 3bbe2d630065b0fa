package api

import (
	"testing"
)

func TestInsertApplicationPrepends(t *testing.T) {
	s := NewMemoryStore(nil, Session{})
	s.InsertApplication(&Application{ID: "first"})
	s.InsertApplication(&Application{ID: "second"})

	apps := s.ListApplications()
	if len(apps) != 2 || apps[0].ID != "second" || apps[1].ID != "first" {
		t.Fatalf("expected newest first, got %+v", apps)
	}
}

func TestReplaceApplicationUnknownID(t *testing.T) {
	s := NewMemoryStore([]*Application{{ID: "known"}}, Session{})
	if s.ReplaceApplication(&Application{ID: "missing"}) {
		t.Fatal("replace of unknown id should report false")
	}
	if apps := s.ListApplications(); len(apps) != 1 || apps[0].ID != "known" {
		t.Fatalf("collection changed on failed replace: %+v", apps)
	}
}

func TestGetApplicationReturnsCopy(t *testing.T) {
	s := NewMemoryStore([]*Application{{ID: "a1", Submissions: []Submission{{Week: 1}}}}, Session{})

	got := s.GetApplication("a1")
	got.StudentName = "mutated"
	got.Submissions[0].Week = 99

	fresh := s.GetApplication("a1")
	if fresh.StudentName != "" || fresh.Submissions[0].Week != 1 {
		t.Fatalf("caller mutation leaked into store: %+v", fresh)
	}
}

func TestChangeHooksFireAfterMutation(t *testing.T) {
	s := NewMemoryStore(nil, Session{})
	var appSnapshots int
	var lastSession Session
	s.OnChange(
		func(apps []*Application) { appSnapshots = len(apps) },
		func(sess Session) { lastSession = sess },
	)

	s.InsertApplication(&Application{ID: "a1"})
	if appSnapshots != 1 {
		t.Fatalf("expected hook with 1 app, got %d", appSnapshots)
	}
	s.SetSession(Session{UserType: "student", ActiveEmail: "p@example.com"})
	if lastSession.ActiveEmail != "p@example.com" {
		t.Fatalf("session hook did not fire: %+v", lastSession)
	}
	s.ClearSession()
	if lastSession.UserType != "" {
		t.Fatalf("clear did not propagate: %+v", lastSession)
	}
}

func TestFindApplicationByEmailCaseInsensitive(t *testing.T) {
	s := NewMemoryStore([]*Application{{ID: "a1", ParentEmail: "Parent@Example.com"}}, Session{})
	if got := s.FindApplicationByEmail("parent@example.COM"); got == nil || got.ID != "a1" {
		t.Fatalf("expected case-insensitive match, got %+v", got)
	}
	if got := s.FindApplicationByEmail(""); got != nil {
		t.Fatalf("empty email must not match, got %+v", got)
	}
}

package api

import (
	"strings"
	"sync"
)

// MemoryStore holds the authoritative in-memory state: the application
// collection (newest first) plus the single session value. Mutations swap
// whole records, so a concurrent reader never sees a half-updated
// application. Change hooks fire after each mutation with a full copy; the
// snapshot adapter uses them to persist on every change.
type MemoryStore struct {
	mu      sync.RWMutex
	apps    []*Application
	session Session
	audit   []AuditEntry

	onAppsChange    func([]*Application)
	onSessionChange func(Session)
}

func NewMemoryStore(apps []*Application, session Session) *MemoryStore {
	s := &MemoryStore{session: session}
	for _, a := range apps {
		s.apps = append(s.apps, cloneApplication(a))
	}
	return s
}

// OnChange installs persistence hooks. Hooks run synchronously after the
// mutation, outside the lock.
func (s *MemoryStore) OnChange(apps func([]*Application), session func(Session)) {
	s.onAppsChange = apps
	s.onSessionChange = session
}

func cloneApplication(a *Application) *Application {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Messages = append([]Message(nil), a.Messages...)
	cp.Submissions = append([]Submission(nil), a.Submissions...)
	if a.Impact != nil {
		cp.Impact = make(map[string]ImpactSnapshot, len(a.Impact))
		for k, v := range a.Impact {
			cp.Impact[k] = v
		}
	}
	return &cp
}

func (s *MemoryStore) cloneAll() []*Application {
	out := make([]*Application, 0, len(s.apps))
	for _, a := range s.apps {
		out = append(out, cloneApplication(a))
	}
	return out
}

func (s *MemoryStore) notifyApps() {
	if s.onAppsChange == nil {
		return
	}
	s.mu.RLock()
	snapshot := s.cloneAll()
	s.mu.RUnlock()
	s.onAppsChange(snapshot)
}

// InsertApplication prepends so dashboards list newest candidates first.
func (s *MemoryStore) InsertApplication(a *Application) {
	s.mu.Lock()
	s.apps = append([]*Application{cloneApplication(a)}, s.apps...)
	s.mu.Unlock()
	s.notifyApps()
}

// ReplaceApplication swaps the record with the same ID wholesale. Reports
// false (and changes nothing) when the ID is unknown.
func (s *MemoryStore) ReplaceApplication(a *Application) bool {
	s.mu.Lock()
	replaced := false
	for i, existing := range s.apps {
		if existing.ID == a.ID {
			s.apps[i] = cloneApplication(a)
			replaced = true
			break
		}
	}
	s.mu.Unlock()
	if replaced {
		s.notifyApps()
	}
	return replaced
}

func (s *MemoryStore) GetApplication(id string) *Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.apps {
		if a.ID == id {
			return cloneApplication(a)
		}
	}
	return nil
}

func (s *MemoryStore) FindApplicationByEmail(email string) *Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.apps {
		if a.ParentEmail != "" && strings.EqualFold(a.ParentEmail, email) {
			return cloneApplication(a)
		}
	}
	return nil
}

func (s *MemoryStore) ListApplications() []*Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneAll()
}

func (s *MemoryStore) GetSession() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *MemoryStore) SetSession(sess Session) {
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
	if s.onSessionChange != nil {
		s.onSessionChange(sess)
	}
}

func (s *MemoryStore) ClearSession() {
	s.SetSession(Session{})
}

func (s *MemoryStore) AddAudit(e AuditEntry) {
	s.mu.Lock()
	s.audit = append(s.audit, e)
	s.mu.Unlock()
}

func (s *MemoryStore) ListAudit() []AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]AuditEntry, len(s.audit))
	copy(out, s.audit)
	return out
}

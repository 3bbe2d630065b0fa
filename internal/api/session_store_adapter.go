package api

import (
	"github.com/brightpath-labs/brightpath/internal/services"
)

type sessionStoreAdapter struct {
	store Store
}

func newSessionStoreAdapter(store Store) services.SessionStore {
	return &sessionStoreAdapter{store: store}
}

func (a *sessionStoreAdapter) FindApplicationByEmail(email string) (*services.Application, error) {
	return toServiceApplication(a.store.FindApplicationByEmail(email)), nil
}

func (a *sessionStoreAdapter) GetSession() (services.Session, error) {
	sess := a.store.GetSession()
	return services.Session{UserType: sess.UserType, ActiveEmail: sess.ActiveEmail}, nil
}

func (a *sessionStoreAdapter) SetSession(sess services.Session) error {
	a.store.SetSession(Session{UserType: sess.UserType, ActiveEmail: sess.ActiveEmail})
	return nil
}

func (a *sessionStoreAdapter) ClearSession() error {
	a.store.ClearSession()
	return nil
}

func (a *sessionStoreAdapter) AddAudit(e services.AuditEntry) {
	a.store.AddAudit(AuditEntry{Time: e.Time, Actor: e.Actor, Action: e.Action, Target: e.Target, Note: e.Note})
}

var _ services.SessionStore = (*sessionStoreAdapter)(nil)

package api

type Store interface {
	InsertApplication(a *Application)
	ReplaceApplication(a *Application) bool
	GetApplication(id string) *Application
	FindApplicationByEmail(email string) *Application
	ListApplications() []*Application

	GetSession() Session
	SetSession(sess Session)
	ClearSession()

	AddAudit(e AuditEntry)
	ListAudit() []AuditEntry
}

var _ Store = (*MemoryStore)(nil)

package api

import (
	"github.com/brightpath-labs/brightpath/internal/services"
)

type registryStoreAdapter struct {
	store Store
}

func newRegistryStoreAdapter(store Store) services.RegistryStore {
	return &registryStoreAdapter{store: store}
}

func (a *registryStoreAdapter) InsertApplication(app *services.Application) error {
	if app == nil {
		return services.NewInvalidError("application required")
	}
	a.store.InsertApplication(fromServiceApplication(app))
	return nil
}

func (a *registryStoreAdapter) GetApplication(id string) (*services.Application, error) {
	return toServiceApplication(a.store.GetApplication(id)), nil
}

func (a *registryStoreAdapter) FindApplicationByEmail(email string) (*services.Application, error) {
	return toServiceApplication(a.store.FindApplicationByEmail(email)), nil
}

func (a *registryStoreAdapter) ListApplications() ([]*services.Application, error) {
	apps := a.store.ListApplications()
	out := make([]*services.Application, 0, len(apps))
	for _, app := range apps {
		out = append(out, toServiceApplication(app))
	}
	return out, nil
}

func (a *registryStoreAdapter) ReplaceApplication(app *services.Application) (bool, error) {
	if app == nil {
		return false, services.NewInvalidError("application required")
	}
	return a.store.ReplaceApplication(fromServiceApplication(app)), nil
}

func (a *registryStoreAdapter) AddAudit(e services.AuditEntry) {
	a.store.AddAudit(AuditEntry{Time: e.Time, Actor: e.Actor, Action: e.Action, Target: e.Target, Note: e.Note})
}

var _ services.RegistryStore = (*registryStoreAdapter)(nil)

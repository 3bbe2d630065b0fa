package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"github.com/brightpath-labs/brightpath/internal/api"
)

// Slot keys. The version suffix lets a future schema change write a new slot
// and leave the old document readable.
const (
	slotApplications = "brightpath_apps_v1"
	slotSession      = "brightpath_session_v1"
)

// SnapshotStore persists the two application-state documents as whole JSON
// snapshots in the slots table. It is deliberately forgiving: a missing or
// corrupt slot reads as absent so the caller can seed defaults, and write
// failures are logged rather than surfaced, because losing a snapshot must
// never take down a request that already mutated memory.
type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// LoadApplications reads the persisted collection. The second return reports
// whether a usable snapshot existed; on false the caller should seed.
func (s *SnapshotStore) LoadApplications() ([]*api.Application, bool) {
	raw, ok := s.get(slotApplications)
	if !ok {
		return nil, false
	}
	var apps []*api.Application
	if err := json.Unmarshal(raw, &apps); err != nil {
		log.Printf("snapshot: corrupt %s slot, reseeding: %v", slotApplications, err)
		return nil, false
	}
	return apps, true
}

func (s *SnapshotStore) SaveApplications(apps []*api.Application) {
	if apps == nil {
		apps = []*api.Application{}
	}
	s.set(slotApplications, apps)
}

// LoadSession reads the persisted session. Absent or corrupt reads as a
// zero session, which the client treats as signed out.
func (s *SnapshotStore) LoadSession() api.Session {
	raw, ok := s.get(slotSession)
	if !ok {
		return api.Session{}
	}
	var sess api.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		log.Printf("snapshot: corrupt %s slot, ignoring: %v", slotSession, err)
		return api.Session{}
	}
	return sess
}

func (s *SnapshotStore) SaveSession(sess api.Session) {
	s.set(slotSession, sess)
}

func (s *SnapshotStore) get(key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		log.Printf("snapshot: read %s: %v", key, err)
		return nil, false
	}
	return []byte(value), true
}

func (s *SnapshotStore) set(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("snapshot: encode %s: %v", key, err)
		return
	}
	_, err = s.db.Exec(
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(data),
	)
	if err != nil {
		log.Printf("snapshot: write %s: %v", key, err)
	}
}

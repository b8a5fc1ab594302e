package daemon

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/drivemark/drivemark/internal/config"
	"github.com/drivemark/drivemark/internal/util"
)

// State remembers what the last successful upload looked like so
// unchanged bookmark sets don't get re-uploaded every cycle.
type State struct {
	LastHash   string    `json:"last_hash"`
	LastBackup time.Time `json:"last_backup"`
	LastCount  int       `json:"last_count"`
}

// StateStore persists daemon state next to the pid file
type StateStore struct {
	statePath string
	state     State
}

func NewStateStore(cfg config.ConfigProvider) *StateStore {
	statePath := filepath.Join(filepath.Dir(cfg.GetPidFile()), "backup_state.json")

	store := &StateStore{
		statePath: statePath,
	}
	store.loadState()
	return store
}

// LastHash returns the content hash of the last uploaded snapshot
func (s *StateStore) LastHash() string {
	return s.state.LastHash
}

// Record notes a successful upload and persists the state
func (s *StateStore) Record(hash string, count int) {
	s.state.LastHash = hash
	s.state.LastCount = count
	s.state.LastBackup = time.Now()

	if err := s.saveState(); err != nil {
		util.Red.Printf("Warning: failed to save backup state: %v\n", err)
	}
}

func (s *StateStore) loadState() {
	data, err := os.ReadFile(s.statePath)
	if err != nil {
		return
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		util.Red.Printf("Warning: failed to load backup state: %v\n", err)
		s.state = State{}
	}
}

func (s *StateStore) saveState() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.statePath, data, 0644)
}

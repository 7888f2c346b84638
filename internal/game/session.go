package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SessionState is the part of a run worth restoring next time.
type SessionState struct {
	OrbitRadius float64 `yaml:"orbitRadius"`
	EarthAngle  float64 `yaml:"earthAngle"`
	MoonAngle   float64 `yaml:"moonAngle"`
	Paused      bool    `yaml:"paused"`
}

const (
	sessionObject   = "session"
	sessionProperty = "state"
)

// SessionStore persists SessionState through gdata.
// A nil manager turns it into a no-op store.
type SessionStore struct {
	manager *gdata.Manager
}

// NewSessionStore wraps manager, which may be nil.
func NewSessionStore(manager *gdata.Manager) *SessionStore {
	return &SessionStore{manager: manager}
}

// Load returns the saved session. ok is false when nothing was saved or the
// store has no manager.
func (st *SessionStore) Load() (state SessionState, ok bool, err error) {
	if st.manager == nil || !st.manager.ObjectPropExists(sessionObject, sessionProperty) {
		return SessionState{}, false, nil
	}
	data, err := st.manager.LoadObjectProp(sessionObject, sessionProperty)
	if err != nil {
		return SessionState{}, false, fmt.Errorf("load session: %w", err)
	}
	if err := yaml.Unmarshal(data, &state); err != nil {
		return SessionState{}, false, fmt.Errorf("unmarshal session: %w", err)
	}
	return state, true, nil
}

// Save writes state. It is a no-op without a manager.
func (st *SessionStore) Save(state SessionState) error {
	if st.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := st.manager.SaveObjectProp(sessionObject, sessionProperty, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	log.Printf("[Session] Saved orbit radius %.0f", state.OrbitRadius)
	return nil
}

// Snapshot captures the restorable state of s.
func (s *Sim) Snapshot() SessionState {
	return SessionState{
		OrbitRadius: s.System.OrbitRadius(),
		EarthAngle:  s.System.EarthAngle(),
		MoonAngle:   s.System.MoonAngle(),
		Paused:      s.Paused,
	}
}

// Restore applies a saved session. The radius is clamped to the current
// layout and the angles are wrapped, so stale saves cannot break invariants.
func (s *Sim) Restore(state SessionState) {
	s.System.SetOrbitRadius(state.OrbitRadius)
	s.System.setAngles(state.EarthAngle, state.MoonAngle)
	s.System.Update(0)
	s.Paused = state.Paused
	s.lastTick = time.Time{}
	s.climate = s.Climate().State
	s.Log.Add(fmt.Sprintf("Restored last session at orbit radius %.0f.", s.System.OrbitRadius()), MsgInfo)
}

package session

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/freeroamgame/freeroam-server/internal/game"
	"github.com/freeroamgame/freeroam-server/internal/replay"
	"github.com/freeroamgame/freeroam-server/internal/store"
)

// Manager manages all active sessions.
type Manager struct {
	sessions map[string]*Session // code -> session
	mu       sync.RWMutex

	cfg       game.WorldConfig
	replayDir string
	store     store.SessionStore
}

// NewManager creates a session manager. replayDir may be empty to disable
// replay recording; st may be nil to disable persistence.
func NewManager(cfg game.WorldConfig, replayDir string, st store.SessionStore) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		cfg:       cfg,
		replayDir: replayDir,
		store:     st,
	}
}

// CreateSession generates a world from seed, starts its loop and returns
// the new session.
func (m *Manager) CreateSession(seed int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := make(map[string]bool, len(m.sessions))
	for code := range m.sessions {
		existing[code] = true
	}
	code := GenerateCode(existing)

	var rec *replay.Recorder
	if m.replayDir != "" {
		var err error
		rec, err = replay.NewRecorder(m.replayDir, code)
		if err != nil {
			log.Error().Err(err).Str("session", code).Msg("replay recording disabled")
			rec = nil
		}
	}

	s := New(code, seed, m.cfg, rec, m.store)
	m.sessions[code] = s
	s.Start()

	log.Info().Str("code", code).Int64("seed", seed).Msg("session created")
	return s
}

// GetSession returns a session by its code.
func (m *Manager) GetSession(code string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[code]
}

// RemoveSession stops a session and drops it from the registry.
func (m *Manager) RemoveSession(code string) {
	m.mu.Lock()
	s := m.sessions[code]
	delete(m.sessions, code)
	m.mu.Unlock()

	if s != nil {
		s.Stop()
	}
	log.Info().Str("code", code).Msg("session removed")
}

// SessionCount returns the number of active sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// FindSessionByClient finds the session a client is attached to.
func (m *Manager) FindSessionByClient(clientID string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		if s.HasClient(clientID) {
			return s
		}
	}
	return nil
}

package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/freeroamgame/freeroam-server/internal/game"
	"github.com/freeroamgame/freeroam-server/internal/replay"
	"github.com/freeroamgame/freeroam-server/internal/store"
	"github.com/freeroamgame/freeroam-server/internal/ws"
)

// Session owns one world and its simulation loop. The first client to join
// controls the player; later clients spectate. The loop is the single
// writer of world state: a tick fully completes before its snapshot is
// broadcast, so readers never observe a half-updated world.
type Session struct {
	ID   string
	Code string

	world *game.World

	// Client mapping: client ID -> ws client
	clients    map[string]*ws.Client
	controller string // client ID steering the player

	pending pendingInput

	recorder *replay.Recorder
	store    store.SessionStore

	stopCh   chan struct{}
	stopOnce sync.Once

	markerCaptures int

	mu sync.RWMutex
}

// New creates a session around a freshly generated world.
func New(code string, seed int64, cfg game.WorldConfig, rec *replay.Recorder, st store.SessionStore) *Session {
	return &Session{
		ID:       uuid.New().String(),
		Code:     code,
		world:    game.GenerateWorld(seed, cfg),
		clients:  make(map[string]*ws.Client),
		recorder: rec,
		store:    st,
		stopCh:   make(chan struct{}),
	}
}

// AttachClient adds a client and sends it the static world description.
// The first client becomes the controller.
func (s *Session) AttachClient(client *ws.Client) {
	s.mu.Lock()
	s.clients[client.ID] = client
	if s.controller == "" {
		s.controller = client.ID
	}
	isController := s.controller == client.ID
	init := s.world.InitState()
	s.mu.Unlock()

	if msg, err := ws.NewMessage(ws.TypeWorldInit, init); err == nil {
		client.SendMessage(msg)
	}
	if msg, err := ws.NewMessage(ws.TypeSessionInfo, sessionInfoMessage{
		Code:       s.Code,
		Controller: isController,
	}); err == nil {
		client.SendMessage(msg)
	}

	log.Info().Str("session", s.Code).Str("client", client.ID).
		Bool("controller", isController).Msg("client attached")
}

// DetachClient removes a client. When the controller leaves, control passes
// to an arbitrary remaining client.
func (s *Session) DetachClient(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.clients, clientID)
	if s.controller == clientID {
		s.controller = ""
		for id := range s.clients {
			s.controller = id
			break
		}
	}
}

// HasClient reports whether the client is attached to this session.
func (s *Session) HasClient(clientID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.clients[clientID]
	return ok
}

// ClientCount returns the number of attached clients.
func (s *Session) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// SetAxes updates the movement axis flags. Only the controller steers.
func (s *Session) SetAxes(clientID string, up, down, left, right bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if clientID != s.controller {
		return
	}
	s.pending.up = up
	s.pending.down = down
	s.pending.left = left
	s.pending.right = right
}

// QueueInteract flags the interact action for the next tick.
func (s *Session) QueueInteract(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if clientID == s.controller {
		s.pending.interact = true
	}
}

// QueueRelocate flags the marker-relocate action for the next tick.
func (s *Session) QueueRelocate(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if clientID == s.controller {
		s.pending.relocate = true
	}
}

// QueueKey appends one raw action to the input log.
func (s *Session) QueueKey(clientID, action string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if clientID == s.controller {
		s.pending.actions = append(s.pending.actions, action)
	}
}

// Start launches the simulation loop and records the session start.
func (s *Session) Start() {
	if s.store != nil {
		err := s.store.CreateSession(context.Background(), store.SessionRecord{
			ID:        s.ID,
			Code:      s.Code,
			Seed:      s.world.Seed,
			StartedAt: time.Now().UTC(),
		})
		if err != nil {
			log.Error().Err(err).Str("session", s.Code).Msg("failed to persist session start")
		}
	}
	go s.loop()
}

// Stop ends the simulation loop, closes the replay file and records the
// session outcome. Safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)

		if s.recorder != nil {
			if err := s.recorder.Close(); err != nil {
				log.Error().Err(err).Str("session", s.Code).Msg("failed to close replay")
			}
		}

		s.mu.RLock()
		ticks := s.world.Tick
		captures := s.markerCaptures
		s.mu.RUnlock()

		if s.store != nil {
			err := s.store.FinishSession(context.Background(), s.ID, ticks, captures)
			if err != nil {
				log.Error().Err(err).Str("session", s.Code).Msg("failed to persist session end")
			}
		}

		log.Info().Str("session", s.Code).Uint64("ticks", ticks).
			Int("marker_captures", captures).Msg("session stopped")
	})
}

type sessionInfoMessage struct {
	Code       string `json:"code"`
	Controller bool   `json:"controller"`
}

// loop runs the fixed-timestep simulation at TickRate. dt is measured from
// the wall clock rather than assumed, so the world logic stays correct when
// the ticker slips.
func (s *Session) loop() {
	ticker := time.NewTicker(game.TickInterval)
	defer ticker.Stop()

	last := time.Now()
	fps := float64(game.TickRate)

	for {
		select {
		case <-s.stopCh:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt <= 0 {
				dt = game.TickInterval.Seconds()
			}
			// Smoothed measured frame rate, passed through to snapshots.
			fps = fps*0.9 + (1/dt)*0.1

			snap := s.step(dt, fps)
			s.broadcast(snap)

			if s.recorder != nil {
				if err := s.recorder.Record(snap); err != nil {
					log.Error().Err(err).Str("session", s.Code).Msg("replay write failed")
				}
			}
		}
	}
}

// step advances the world one tick under the session lock.
func (s *Session) step(dt, fps float64) game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.world.Marker
	s.world.Step(s.pending.consume(fps), dt)
	if s.world.Marker != before {
		s.markerCaptures++
	}
	return s.world.Snapshot()
}

// broadcast sends the tick snapshot to every attached client.
func (s *Session) broadcast(snap game.Snapshot) {
	msg, err := ws.NewMessage(ws.TypeGameState, snap)
	if err != nil {
		log.Error().Err(err).Msg("failed to build snapshot message")
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, client := range s.clients {
		client.SendMessage(msg)
	}
}

// Snapshot returns the current world snapshot outside the loop, for tests
// and diagnostics.
func (s *Session) Snapshot() game.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.world.Snapshot()
}

// StepOnce advances the world a single tick synchronously. Used by tests;
// the live loop calls step directly.
func (s *Session) StepOnce(dt float64) game.Snapshot {
	return s.step(dt, 1/dt)
}

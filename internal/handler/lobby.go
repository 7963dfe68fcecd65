package handler

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/freeroamgame/freeroam-server/internal/session"
	"github.com/freeroamgame/freeroam-server/internal/ws"
)

// LobbyHandler handles session lifecycle messages.
type LobbyHandler struct {
	sm *session.Manager
}

// NewLobbyHandler creates a new lobby handler.
func NewLobbyHandler(sm *session.Manager) *LobbyHandler {
	return &LobbyHandler{sm: sm}
}

type createSessionRequest struct {
	// Seed pins world generation; omitted means a fresh random world.
	Seed *int64 `json:"seed,omitempty"`
}

// HandleCreateSession creates a new world and attaches the client as its
// controller.
func (h *LobbyHandler) HandleCreateSession(client *ws.Client, msg ws.Message) {
	if h.sm.FindSessionByClient(client.ID) != nil {
		client.SendMessage(ws.NewErrorMessage("already in a session"))
		return
	}

	var req createSessionRequest
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			client.SendMessage(ws.NewErrorMessage("invalid session request"))
			return
		}
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	s := h.sm.CreateSession(seed)
	s.AttachClient(client)

	log.Info().Str("client", client.ID).Str("session", s.Code).Msg("client created session")
}

type joinSessionRequest struct {
	Code string `json:"code"`
}

// HandleJoinSession attaches the client to an existing session as a
// spectator.
func (h *LobbyHandler) HandleJoinSession(client *ws.Client, msg ws.Message) {
	var req joinSessionRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" {
		client.SendMessage(ws.NewErrorMessage("code is required"))
		return
	}

	if h.sm.FindSessionByClient(client.ID) != nil {
		client.SendMessage(ws.NewErrorMessage("already in a session"))
		return
	}

	s := h.sm.GetSession(req.Code)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("session not found"))
		return
	}

	s.AttachClient(client)

	log.Info().Str("client", client.ID).Str("session", s.Code).Msg("client joined session")
}

// HandleLeaveSession detaches the client from its session.
func (h *LobbyHandler) HandleLeaveSession(client *ws.Client, _ ws.Message) {
	h.removeClient(client)
}

// HandleDisconnect handles client disconnection.
func (h *LobbyHandler) HandleDisconnect(client *ws.Client) {
	h.removeClient(client)
}

func (h *LobbyHandler) removeClient(client *ws.Client) {
	s := h.sm.FindSessionByClient(client.ID)
	if s == nil {
		return
	}

	s.DetachClient(client.ID)
	if s.ClientCount() == 0 {
		h.sm.RemoveSession(s.Code)
	}

	log.Info().Str("client", client.ID).Str("session", s.Code).Msg("client left session")
}

package handler

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/freeroamgame/freeroam-server/internal/game"
	"github.com/freeroamgame/freeroam-server/internal/session"
	"github.com/freeroamgame/freeroam-server/internal/ws"
)

// GameplayHandler handles in-game messages.
type GameplayHandler struct {
	sm *session.Manager
}

// NewGameplayHandler creates a new gameplay handler.
func NewGameplayHandler(sm *session.Manager) *GameplayHandler {
	return &GameplayHandler{sm: sm}
}

type inputRequest struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// HandleInput updates the held movement axes. Axes are level state: each
// message replaces the previous one and applies every tick until the next.
func (h *GameplayHandler) HandleInput(client *ws.Client, msg ws.Message) {
	var req inputRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid input data"))
		return
	}

	s := h.sm.FindSessionByClient(client.ID)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("not in a session"))
		return
	}

	s.SetAxes(client.ID, req.Up, req.Down, req.Left, req.Right)
}

// HandleInteract queues a vehicle enter/exit attempt for the next tick.
func (h *GameplayHandler) HandleInteract(client *ws.Client, _ ws.Message) {
	s := h.sm.FindSessionByClient(client.ID)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("not in a session"))
		return
	}

	s.QueueInteract(client.ID)
	log.Debug().Str("client", client.ID).Msg("interact queued")
}

// HandleRelocateMarker queues a marker relocation request for the next tick.
func (h *GameplayHandler) HandleRelocateMarker(client *ws.Client, _ ws.Message) {
	s := h.sm.FindSessionByClient(client.ID)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("not in a session"))
		return
	}

	s.QueueRelocate(client.ID)
}

type keyRequest struct {
	Action string `json:"action"`
}

var validActions = map[string]bool{
	game.ActionUp:    true,
	game.ActionDown:  true,
	game.ActionLeft:  true,
	game.ActionRight: true,
	game.ActionA:     true,
	game.ActionB:     true,
}

// HandleKey appends one key press to the session's action log.
func (h *GameplayHandler) HandleKey(client *ws.Client, msg ws.Message) {
	var req keyRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || !validActions[req.Action] {
		client.SendMessage(ws.NewErrorMessage("invalid key action"))
		return
	}

	s := h.sm.FindSessionByClient(client.ID)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("not in a session"))
		return
	}

	s.QueueKey(client.ID, req.Action)
}

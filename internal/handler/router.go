package handler

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/freeroamgame/freeroam-server/internal/session"
	"github.com/freeroamgame/freeroam-server/internal/ws"
)

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	lobby    *LobbyHandler
	gameplay *GameplayHandler
}

// NewRouter creates a new message router.
func NewRouter(sm *session.Manager) *Router {
	return &Router{
		lobby:    NewLobbyHandler(sm),
		gameplay: NewGameplayHandler(sm),
	}
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		log.Warn().Str("client", cm.Client.ID).Err(err).Msg("invalid message format")
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	// Session lifecycle
	case ws.TypeCreateSession:
		r.lobby.HandleCreateSession(cm.Client, msg)
	case ws.TypeJoinSession:
		r.lobby.HandleJoinSession(cm.Client, msg)
	case ws.TypeLeaveSession:
		r.lobby.HandleLeaveSession(cm.Client, msg)

	// Gameplay
	case ws.TypeInput:
		r.gameplay.HandleInput(cm.Client, msg)
	case ws.TypeInteract:
		r.gameplay.HandleInteract(cm.Client, msg)
	case ws.TypeRelocateMarker:
		r.gameplay.HandleRelocateMarker(cm.Client, msg)
	case ws.TypeKey:
		r.gameplay.HandleKey(cm.Client, msg)

	default:
		log.Warn().Str("type", msg.Type).Str("client", cm.Client.ID).Msg("unknown message type")
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.lobby.HandleDisconnect(client)
}

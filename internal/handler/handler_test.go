package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeroamgame/freeroam-server/internal/game"
	"github.com/freeroamgame/freeroam-server/internal/session"
	"github.com/freeroamgame/freeroam-server/internal/ws"
)

func setupTest() (*Router, *session.Manager) {
	sm := session.NewManager(game.DefaultWorldConfig(), "", nil)
	return NewRouter(sm), sm
}

func newTestClient(id string) *ws.Client {
	return &ws.Client{ID: id, Send: make(chan []byte, 256)}
}

// send routes a typed message with the given payload through the router.
func send(router *Router, client *ws.Client, msgType string, payload any) {
	var data json.RawMessage
	if payload != nil {
		data, _ = json.Marshal(payload)
	}
	raw, _ := json.Marshal(ws.Message{Type: msgType, Data: data})
	router.HandleMessage(&ws.ClientMessage{Client: client, Data: raw})
}

// readTyped reads messages until one of the wanted type arrives, skipping
// everything else (notably the game_state frames the live loop keeps
// broadcasting).
func readTyped(t *testing.T, client *ws.Client, msgType string) ws.Message {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case data := <-client.Send:
			var msg ws.Message
			require.NoError(t, json.Unmarshal(data, &msg))
			if msg.Type == msgType {
				return msg
			}
		case <-deadline:
			t.Fatalf("timeout waiting for %q", msgType)
			return ws.Message{}
		}
	}
}

func readError(t *testing.T, client *ws.Client) string {
	t.Helper()
	msg := readTyped(t, client, ws.TypeError)
	var errMsg ws.ErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &errMsg))
	return errMsg.Message
}

func TestHandleCreateSession(t *testing.T) {
	router, sm := setupTest()
	client := newTestClient("c1")

	seed := int64(42)
	send(router, client, ws.TypeCreateSession, map[string]int64{"seed": seed})

	msg := readTyped(t, client, ws.TypeWorldInit)
	var init game.WorldInit
	require.NoError(t, json.Unmarshal(msg.Data, &init))
	assert.Equal(t, seed, init.Seed)
	assert.NotEmpty(t, init.Buildings)

	msg = readTyped(t, client, ws.TypeSessionInfo)
	var info struct {
		Code       string `json:"code"`
		Controller bool   `json:"controller"`
	}
	require.NoError(t, json.Unmarshal(msg.Data, &info))
	assert.Len(t, info.Code, 4)
	assert.True(t, info.Controller)

	require.Equal(t, 1, sm.SessionCount())
	sm.RemoveSession(info.Code)
}

func TestHandleCreateSession_AlreadyInSession(t *testing.T) {
	router, sm := setupTest()
	client := newTestClient("c1")

	send(router, client, ws.TypeCreateSession, nil)
	readTyped(t, client, ws.TypeSessionInfo)

	send(router, client, ws.TypeCreateSession, nil)
	assert.Equal(t, "already in a session", readError(t, client))
	assert.Equal(t, 1, sm.SessionCount())

	sm.RemoveSession(sm.FindSessionByClient("c1").Code)
}

func TestHandleJoinSession_Spectator(t *testing.T) {
	router, sm := setupTest()
	host := newTestClient("host")
	viewer := newTestClient("viewer")

	send(router, host, ws.TypeCreateSession, nil)
	msg := readTyped(t, host, ws.TypeSessionInfo)
	var info struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(msg.Data, &info))

	send(router, viewer, ws.TypeJoinSession, map[string]string{"code": info.Code})
	msg = readTyped(t, viewer, ws.TypeSessionInfo)
	var viewerInfo struct {
		Controller bool `json:"controller"`
	}
	require.NoError(t, json.Unmarshal(msg.Data, &viewerInfo))
	assert.False(t, viewerInfo.Controller)

	s := sm.GetSession(info.Code)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.ClientCount())

	sm.RemoveSession(info.Code)
}

func TestHandleJoinSession_NotFound(t *testing.T) {
	router, _ := setupTest()
	client := newTestClient("c1")

	send(router, client, ws.TypeJoinSession, map[string]string{"code": "ZZZZ"})
	assert.Equal(t, "session not found", readError(t, client))
}

func TestHandleJoinSession_MissingCode(t *testing.T) {
	router, _ := setupTest()
	client := newTestClient("c1")

	send(router, client, ws.TypeJoinSession, map[string]string{})
	assert.Equal(t, "code is required", readError(t, client))
}

func TestHandleLeaveSession_RemovesEmptySession(t *testing.T) {
	router, sm := setupTest()
	client := newTestClient("c1")

	send(router, client, ws.TypeCreateSession, nil)
	readTyped(t, client, ws.TypeSessionInfo)
	require.Equal(t, 1, sm.SessionCount())

	send(router, client, ws.TypeLeaveSession, nil)
	assert.Equal(t, 0, sm.SessionCount())
}

func TestHandleDisconnect_HandsOffControl(t *testing.T) {
	router, sm := setupTest()
	host := newTestClient("host")
	viewer := newTestClient("viewer")

	send(router, host, ws.TypeCreateSession, nil)
	msg := readTyped(t, host, ws.TypeSessionInfo)
	var info struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(msg.Data, &info))
	send(router, viewer, ws.TypeJoinSession, map[string]string{"code": info.Code})
	readTyped(t, viewer, ws.TypeSessionInfo)

	router.HandleDisconnect(host)

	s := sm.GetSession(info.Code)
	require.NotNil(t, s, "session survives while a client remains")
	assert.Equal(t, 1, s.ClientCount())
	assert.False(t, s.HasClient("host"))

	sm.RemoveSession(info.Code)
}

func TestHandleInput_NotInSession(t *testing.T) {
	router, _ := setupTest()
	client := newTestClient("c1")

	send(router, client, ws.TypeInput, map[string]bool{"up": true})
	assert.Equal(t, "not in a session", readError(t, client))
}

func TestHandleKey_InvalidAction(t *testing.T) {
	router, sm := setupTest()
	client := newTestClient("c1")

	send(router, client, ws.TypeCreateSession, nil)
	readTyped(t, client, ws.TypeSessionInfo)

	send(router, client, ws.TypeKey, map[string]string{"action": "select"})
	assert.Equal(t, "invalid key action", readError(t, client))

	sm.RemoveSession(sm.FindSessionByClient("c1").Code)
}

func TestHandleMessage_InvalidJSON(t *testing.T) {
	router, _ := setupTest()
	client := newTestClient("c1")

	router.HandleMessage(&ws.ClientMessage{Client: client, Data: []byte("{not json")})
	assert.Equal(t, "invalid message format", readError(t, client))
}

func TestHandleMessage_UnknownType(t *testing.T) {
	router, _ := setupTest()
	client := newTestClient("c1")

	send(router, client, "teleport", nil)
	assert.Equal(t, "unknown message type: teleport", readError(t, client))
}

package handler_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workbench/backend/internal/models"
)

func dialWs(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err, "failed to open websocket")
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestServeWs_SpeakReachesAllSubscribers(t *testing.T) {
	// Arrange
	store := new(MockStorage)
	router := newTestRouter(store)

	created := time.Date(2025, 6, 1, 9, 41, 0, 0, time.UTC)
	store.On("SaveChatMessage", mock.AnythingOfType("*models.ChatMessage")).
		Run(func(args mock.Arguments) {
			msg := args.Get(0).(*models.ChatMessage)
			msg.ID = 1
			msg.CreatedAt = created
		}).
		Return(nil)

	srv := httptest.NewServer(router)
	defer srv.Close()

	sender := dialWs(t, srv)
	listener := dialWs(t, srv)
	time.Sleep(100 * time.Millisecond)

	// Act
	err := sender.WriteJSON(map[string]string{
		"action":    "speak",
		"user_name": "alice",
		"message":   "hello everyone",
	})
	require.NoError(t, err)

	// Assert - sender echo and listener delivery carry the stored row
	for _, conn := range []*websocket.Conn{sender, listener} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))

		var payload models.ChatMessagePayload
		require.NoError(t, conn.ReadJSON(&payload))
		assert.Equal(t, uint(1), payload.ID)
		assert.Equal(t, "alice", payload.UserName)
		assert.Equal(t, "hello everyone", payload.Message)
		assert.Equal(t, "09:41", payload.CreatedAt)
	}
}

func TestServeWs_InvalidSpeakIsDroppedSilently(t *testing.T) {
	store := new(MockStorage)
	router := newTestRouter(store)

	store.On("SaveChatMessage", mock.AnythingOfType("*models.ChatMessage")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.ChatMessage).ID = 1
		}).
		Return(nil)

	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialWs(t, srv)
	time.Sleep(100 * time.Millisecond)

	// A blank message is rejected without closing the connection.
	require.NoError(t, conn.WriteJSON(map[string]string{
		"action": "speak", "user_name": "alice", "message": "   ",
	}))
	time.Sleep(100 * time.Millisecond)
	store.AssertNotCalled(t, "SaveChatMessage", mock.Anything)

	// The session still works afterwards.
	require.NoError(t, conn.WriteJSON(map[string]string{
		"action": "speak", "user_name": "alice", "message": "still alive",
	}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var payload models.ChatMessagePayload
	require.NoError(t, conn.ReadJSON(&payload))
	assert.Equal(t, "still alive", payload.Message)
}

func TestServeWs_UnknownActionIgnored(t *testing.T) {
	store := new(MockStorage)
	router := newTestRouter(store)

	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialWs(t, srv)
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]string{
		"action": "shout", "user_name": "alice", "message": "ignored",
	}))
	time.Sleep(100 * time.Millisecond)

	store.AssertNotCalled(t, "SaveChatMessage", mock.Anything)
}

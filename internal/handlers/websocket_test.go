package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func dialTestClient(t *testing.T, serverURL string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(serverURL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	return conn
}

func waitForClientCount(t *testing.T, h *WebSocketHandler, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, want, h.ClientCount())
}

func TestScrapeProgressBroadcastsToAllClients(t *testing.T) {
	handler := NewWebSocketHandler(arbor.NewLogger())

	server := httptest.NewServer(http.HandlerFunc(handler.HandleWebSocket))
	defer server.Close()

	first := dialTestClient(t, server.URL)
	defer first.Close()
	second := dialTestClient(t, server.URL)
	defer second.Close()

	waitForClientCount(t, handler, 2)

	handler.ScrapeProgress("Searching LinkedIn for recruiters.")

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))

		var event progressEvent
		require.NoError(t, conn.ReadJSON(&event))
		assert.Equal(t, "scrape_progress", event.Type)
		assert.Equal(t, "Searching LinkedIn for recruiters.", event.Step)
		assert.NotEmpty(t, event.Timestamp)
	}
}

func TestWebSocketClientRemovedOnDisconnect(t *testing.T) {
	handler := NewWebSocketHandler(arbor.NewLogger())

	server := httptest.NewServer(http.HandlerFunc(handler.HandleWebSocket))
	defer server.Close()

	conn := dialTestClient(t, server.URL)
	waitForClientCount(t, handler, 1)

	conn.Close()
	waitForClientCount(t, handler, 0)

	// Broadcasting with no clients must not panic
	handler.ScrapeProgress("Crawling careers pages.")
}

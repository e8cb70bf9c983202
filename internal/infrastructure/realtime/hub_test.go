package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		server.Close()
		t.Fatalf("dial failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	return conn, func() {
		_ = conn.Close()
		server.Close()
	}
}

func TestBroadcastDeliversEnvelope(t *testing.T) {
	hub := NewHub()
	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	hub.Broadcast("chat.message", map[string]string{"id": "msg_1"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var envelope struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
		TS   time.Time         `json:"ts"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if envelope.Type != "chat.message" {
		t.Errorf("type = %q", envelope.Type)
	}
	if envelope.Data["id"] != "msg_1" {
		t.Errorf("data = %v", envelope.Data)
	}
	if envelope.TS.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestShutdownDisconnectsClients(t *testing.T) {
	hub := NewHub()
	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	hub.Shutdown()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("clients not removed after shutdown")
		}
		time.Sleep(5 * time.Millisecond)
	}

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("read after shutdown should fail")
	}
}

func TestBroadcastWithNoClients(t *testing.T) {
	hub := NewHub()
	hub.Broadcast("autonomy.tick", map[string]int{"personas": 0})
	if hub.ClientCount() != 0 {
		t.Fatalf("ClientCount = %d", hub.ClientCount())
	}
}

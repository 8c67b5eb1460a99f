package observer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/biomecraft/server/internal/server/world"
	"github.com/biomecraft/server/pkg/gamedata"
)

// Event is one entry on the observer feed.
type Event struct {
	Type     string `json:"type"`
	X        int    `json:"x,omitempty"`
	Y        int    `json:"y,omitempty"`
	Z        int    `json:"z,omitempty"`
	BiomeID  int    `json:"biome_id,omitempty"`
	Biome    string `json:"biome,omitempty"`
	Username string `json:"username,omitempty"`
}

const (
	EventBiomeChange = "biome_change"
	EventPlayerJoin  = "player_join"
	EventPlayerLeave = "player_leave"
)

// Hub serves a read-only websocket feed of world events. Clients that
// cannot keep up have events dropped rather than stalling the server.
type Hub struct {
	log      *slog.Logger
	upgrader websocket.Upgrader
	srv      *http.Server

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a Hub; call Serve to start accepting observers.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		clients: make(map[*client]struct{}),
	}
}

// Serve listens on addr and blocks until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", h.handleEvents)

	h.srv = &http.Server{
		Addr:        addr,
		Handler:     mux,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = h.srv.Shutdown(shutCtx)
	}()

	h.log.Info("observer feed listening", "addr", addr)
	err := h.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *Hub) handleEvents(rw http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 64)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.log.Info("observer connected", "addr", conn.RemoteAddr().String(), "observers", n)

	go h.writeLoop(c)

	// Observers never send data; the read loop only notices closes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.drop(c)
}

func (h *Hub) writeLoop(c *client) {
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.drop(c)
			return
		}
	}
	_ = c.conn.Close()
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	h.mu.Unlock()
	close(c.send)
}

// ObserverCount returns how many observers are connected.
func (h *Hub) ObserverCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish fans an event out to every observer, dropping it for clients
// with a full send buffer.
func (h *Hub) Publish(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("marshal observer event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// Slow observer; skip this event for them.
		}
	}
}

// BroadcastBiomeChange publishes a biome write to the feed.
func (h *Hub) BroadcastBiomeChange(pos world.BlockPos, b gamedata.Biome) {
	h.Publish(Event{
		Type:    EventBiomeChange,
		X:       pos.X,
		Y:       pos.Y,
		Z:       pos.Z,
		BiomeID: b.ID,
		Biome:   b.Name,
	})
}

// PlayerJoined publishes a join event.
func (h *Hub) PlayerJoined(username string) {
	h.Publish(Event{Type: EventPlayerJoin, Username: username})
}

// PlayerLeft publishes a leave event.
func (h *Hub) PlayerLeft(username string) {
	h.Publish(Event{Type: EventPlayerLeave, Username: username})
}

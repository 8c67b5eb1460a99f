package conn

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/biomecraft/server/internal/server/biome"
	"github.com/biomecraft/server/internal/server/config"
	"github.com/biomecraft/server/internal/server/packet"
	"github.com/biomecraft/server/internal/server/player"
	"github.com/biomecraft/server/internal/server/storage"
	"github.com/biomecraft/server/internal/server/world"
	"github.com/biomecraft/server/internal/server/world/gen"
	"github.com/biomecraft/server/pkg/gamedata"
	"github.com/biomecraft/server/pkg/protocol"
)

// State represents the connection state.
type State int

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StatePlay
)

// Connection manages a single client connection through the protocol state machine.
type Connection struct {
	conn    net.Conn
	rw      io.ReadWriter
	cfg     *config.Config
	log     *slog.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	world   *world.World
	gd      *gamedata.GameData
	locator *biome.Locator

	mu    sync.Mutex
	state State

	// Compression threshold negotiated during login. Negative until
	// SetCompression has been sent; guarded by mu alongside writes.
	compression int

	// Player management
	players *player.Manager
	self    *player.Player

	// Chunk and teleport tracking (only accessed from the Handle
	// goroutine, no mutex needed)
	loadedChunks map[gen.ChunkPos]struct{}
	teleportID   int32

	// KeepAlive tracking
	lastKeepAliveID   int64
	lastKeepAliveSent time.Time
	keepAliveAcked    bool

	// SaveAll is invoked by /save. Left nil when persistence is off.
	SaveAll func() error

	// Store persists this connection's player record across sessions.
	// Left nil when persistence is off.
	Store *storage.Store

	// OnJoin and OnLeave observe the player lifecycle for the event
	// feed. Either may be nil.
	OnJoin  func(username string)
	OnLeave func(username string)
}

// NewConnection creates a new Connection from a raw TCP connection.
func NewConnection(ctx context.Context, conn net.Conn, cfg *config.Config, log *slog.Logger, w *world.World, gd *gamedata.GameData, players *player.Manager, locator *biome.Locator) *Connection {
	ctx, cancel := context.WithCancel(ctx)
	return &Connection{
		conn:           conn,
		rw:             conn,
		cfg:            cfg,
		log:            log.With("addr", conn.RemoteAddr().String()),
		ctx:            ctx,
		cancel:         cancel,
		state:          StateHandshake,
		compression:    -1,
		world:          w,
		gd:             gd,
		locator:        locator,
		players:        players,
		loadedChunks:   make(map[gen.ChunkPos]struct{}),
		keepAliveAcked: true,
	}
}

// Handle runs the connection lifecycle. It reads packets and dispatches
// them to the appropriate state handler until the connection closes.
func (c *Connection) Handle() {
	defer func() {
		if c.self != nil {
			if c.Store != nil {
				if err := c.Store.SavePlayer(c.self); err != nil {
					c.log.Warn("save player on disconnect", "error", err)
				}
			}
			c.players.Remove(c.self)
			c.players.Broadcast(&packet.ChatCB{
				Message: fmt.Sprintf(`{"text":%s,"color":"yellow"}`, escapeJSON(c.self.Username+" left the game")),
			})
			if c.OnLeave != nil {
				c.OnLeave(c.self.Username)
			}
		}
		c.cancel()
		c.conn.Close()
		c.log.Info("connection closed")
	}()

	c.log.Info("connection accepted")

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		if err := c.handleNextPacket(); err != nil {
			if c.ctx.Err() != nil {
				return
			}
			if err == io.EOF {
				return
			}
			c.log.Error("handling packet", "state", c.state, "error", err)
			return
		}
	}
}

func (c *Connection) handleNextPacket() error {
	var (
		packetID int32
		data     []byte
		err      error
	)
	if c.compressionEnabled() {
		packetID, data, err = protocol.ReadRawPacketZlib(c.rw)
	} else {
		packetID, data, err = protocol.ReadRawPacket(c.rw)
	}
	if err != nil {
		return err
	}

	switch c.state {
	case StateHandshake:
		return c.handleHandshake(packetID, data)
	case StateStatus:
		return c.handleStatus(packetID, data)
	case StateLogin:
		return c.handleLogin(packetID, data)
	case StatePlay:
		return c.handlePlay(packetID, data)
	default:
		return fmt.Errorf("unknown state: %d", c.state)
	}
}

// writePacket writes a packet to the connection under the write lock.
func (c *Connection) writePacket(p protocol.Packet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.compression >= 0 {
		return protocol.WritePacketZlib(c.rw, p, c.compression)
	}
	return protocol.WritePacket(c.rw, p)
}

// enableCompression switches both directions of the connection to the
// length-prefixed zlib format. Must only be called after the
// SetCompression packet went out uncompressed.
func (c *Connection) enableCompression(threshold int) {
	c.mu.Lock()
	c.compression = threshold
	c.mu.Unlock()
}

func (c *Connection) compressionEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compression >= 0
}

// disconnect cancels the connection context and kicks a blocked read
// so Handle can unwind.
func (c *Connection) disconnect(reason string) {
	c.log.Info("disconnecting", "reason", reason)
	c.cancel()
	_ = c.conn.SetReadDeadline(time.Now())
}

// nextTeleportID returns a fresh ID for clientbound teleports.
func (c *Connection) nextTeleportID() int32 {
	c.teleportID++
	return c.teleportID
}

package conn

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/biomecraft/server/internal/server/packet"
	"github.com/biomecraft/server/internal/server/player"
	"github.com/biomecraft/server/internal/server/world/gen"
	"github.com/biomecraft/server/pkg/protocol"
)

func (c *Connection) startPlay(username string, id uuid.UUID) error {
	c.log = c.log.With("player", username)

	eid := c.players.AllocateEntityID()
	spawnY := c.world.SpawnHeight()
	spawn := player.Position{X: 0.5, Y: float64(spawnY), Z: 0.5}
	if c.Store != nil {
		pd, err := c.Store.LoadPlayer(id)
		switch {
		case err != nil:
			c.log.Warn("restore player", "error", err)
		case pd != nil:
			spawn = pd.PlayerPosition()
		}
	}

	// 1. Join Game
	if err := c.writePacket(&packet.JoinGame{
		EntityID:     eid,
		Hardcore:     false,
		GameMode:     packet.GameModeCreative,
		Dimension:    "minecraft:" + c.world.Dimension(),
		HashedSeed:   hashedSeed(c.world.Seed()),
		MaxPlayers:   int32(c.cfg.MaxPlayers),
		ViewDistance: int32(c.cfg.ViewDistance),
		ReducedDebug: false,
	}); err != nil {
		return fmt.Errorf("write join game: %w", err)
	}

	// 2. Spawn Position
	if err := c.writePacket(&packet.SpawnPosition{
		Location: protocol.EncodePosition(0, spawnY, 0),
	}); err != nil {
		return fmt.Errorf("write spawn position: %w", err)
	}

	// 3. Player Abilities (Creative: Invulnerable + AllowFlight + CreativeMode)
	if err := c.writePacket(&packet.AbilitiesCB{
		Flags:        packet.AbilityInvulnerable | packet.AbilityAllowFlight | packet.AbilityCreativeMode,
		FlyingSpeed:  0.05,
		WalkingSpeed: 0.1,
	}); err != nil {
		return fmt.Errorf("write player abilities: %w", err)
	}

	// 4. Player Position And Look
	if err := c.writePacket(&packet.PositionAndLookCB{
		X:          spawn.X,
		Y:          spawn.Y,
		Z:          spawn.Z,
		Yaw:        spawn.Yaw,
		Pitch:      spawn.Pitch,
		Flags:      0x00, // all absolute
		TeleportID: c.nextTeleportID(),
	}); err != nil {
		return fmt.Errorf("write position and look: %w", err)
	}

	// 5. Chunk grid around spawn, one column per view-distance cell
	ccx, ccz := int(math.Floor(spawn.X))>>4, int(math.Floor(spawn.Z))>>4
	v := c.cfg.ViewDistance
	for cx := ccx - v; cx <= ccx+v; cx++ {
		for cz := ccz - v; cz <= ccz+v; cz++ {
			cd := c.world.EncodeChunk(cx, cz)
			if err := c.writePacket(&cd); err != nil {
				return fmt.Errorf("write chunk %d,%d: %w", cx, cz, err)
			}
			c.loadedChunks[gen.ChunkPos{X: cx, Z: cz}] = struct{}{}
		}
	}

	// 6. World clock
	age, tod := c.world.GetTime()
	if err := c.writePacket(&packet.UpdateTime{
		WorldAge:  age,
		TimeOfDay: tod,
	}); err != nil {
		return fmt.Errorf("write update time: %w", err)
	}

	// 7. Register the player; Add announces the tab-list entries both ways
	c.self = player.New(eid, id, username, spawn, c.writePacket)
	c.players.Add(c.self)
	c.players.BroadcastExcept(&packet.ChatCB{
		Message: fmt.Sprintf(`{"text":%s,"color":"yellow"}`, escapeJSON(username+" joined the game")),
	}, eid)
	if c.OnJoin != nil {
		c.OnJoin(username)
	}

	// 8. Welcome message
	if err := c.writePacket(&packet.ChatCB{
		Message: fmt.Sprintf(`{"text":%s,"color":"gold"}`, escapeJSON("Welcome to the server, "+username+"!")),
	}); err != nil {
		return fmt.Errorf("write welcome message: %w", err)
	}

	// 9. Start KeepAlive goroutine
	go c.keepAliveLoop()

	c.log.Info("join sequence complete", "entityID", eid)
	return nil
}

// hashedSeed is the low 8 bytes of sha256(seed); the client uses it for
// client-side biome noise without learning the real seed.
func hashedSeed(seed int64) int64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(seed))
	sum := sha256.Sum256(buf[:])
	return int64(binary.BigEndian.Uint64(sum[:8]))
}

func (c *Connection) keepAliveLoop() {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	var id int64
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			if !c.keepAliveAcked && id > 0 {
				if time.Since(c.lastKeepAliveSent) > 30*time.Second {
					c.mu.Unlock()
					_ = c.writePacket(&packet.PlayDisconnect{
						Reason: `{"text":"Timed out"}`,
					})
					c.disconnect("keepalive timeout")
					return
				}
			}
			id++
			c.lastKeepAliveID = id
			c.lastKeepAliveSent = time.Now()
			c.keepAliveAcked = false
			c.mu.Unlock()

			if err := c.writePacket(&packet.KeepAliveCB{
				KeepAliveID: id,
			}); err != nil {
				c.log.Error("keep alive write failed", "error", err)
				c.cancel()
				return
			}
		}
	}
}

func (c *Connection) handlePlay(packetID int32, data []byte) error {
	switch packetID {
	case 0x07: // Chat Message
		var msg packet.ChatSB
		if err := protocol.Unmarshal(data, &msg); err != nil {
			return fmt.Errorf("unmarshal chat: %w", err)
		}
		c.handleChat(msg.Message)

	case 0x0C: // Client Settings
		var settings packet.ClientSettings
		if err := protocol.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("unmarshal client settings: %w", err)
		}
		c.log.Info("client settings", "locale", settings.Locale, "viewDistance", settings.ViewDistance)

	case 0x0D: // Tab Complete
		return c.handleTabComplete(data)

	case 0x1A: // Keep Alive
		var ka packet.KeepAliveSB
		if err := protocol.Unmarshal(data, &ka); err != nil {
			return fmt.Errorf("unmarshal keep alive: %w", err)
		}
		c.mu.Lock()
		if ka.KeepAliveID == c.lastKeepAliveID {
			c.keepAliveAcked = true
		}
		c.mu.Unlock()

	case 0x1C: // Player Position
		var mv packet.PlayerPosition
		if err := protocol.Unmarshal(data, &mv); err != nil {
			return fmt.Errorf("unmarshal player position: %w", err)
		}
		look := c.self.GetPosition()
		c.self.SetPosition(mv.X, mv.FeetY, mv.Z, look.Yaw, look.Pitch, mv.OnGround)
		c.updateChunks()

	case 0x1D: // Player Position And Look
		var mv packet.PlayerPositionAndLookSB
		if err := protocol.Unmarshal(data, &mv); err != nil {
			return fmt.Errorf("unmarshal player position and look: %w", err)
		}
		c.self.SetPosition(mv.X, mv.FeetY, mv.Z, mv.Yaw, mv.Pitch, mv.OnGround)
		c.updateChunks()

	case 0x1E: // Player Look
		var mv packet.PlayerLook
		if err := protocol.Unmarshal(data, &mv); err != nil {
			return fmt.Errorf("unmarshal player look: %w", err)
		}
		c.self.UpdateLook(mv.Yaw, mv.Pitch, mv.OnGround)

	case 0x1F: // Player Flags (ground state heartbeat), ignore

	default:
		// ignore unknown packets silently
	}

	return nil
}

// handleChat dispatches a typed line: slash commands locally, everything
// else to global chat.
func (c *Connection) handleChat(msg string) {
	if c.handleCommand(msg) {
		return
	}
	c.log.Info("chat", "message", msg)
	c.players.Broadcast(&packet.ChatCB{
		Message: fmt.Sprintf(`{"translate":"chat.type.text","with":[%s,%s]}`,
			escapeJSON(c.self.Username), escapeJSON(msg)),
	})
}

// updateChunks streams any chunk columns that entered the player's view
// distance since the last movement.
func (c *Connection) updateChunks() {
	ccx, ccz := c.self.ChunkX(), c.self.ChunkZ()
	v := c.cfg.ViewDistance
	for cx := ccx - v; cx <= ccx+v; cx++ {
		for cz := ccz - v; cz <= ccz+v; cz++ {
			pos := gen.ChunkPos{X: cx, Z: cz}
			if _, ok := c.loadedChunks[pos]; ok {
				continue
			}
			cd := c.world.EncodeChunk(cx, cz)
			if err := c.writePacket(&cd); err != nil {
				return
			}
			c.loadedChunks[pos] = struct{}{}
		}
	}
}

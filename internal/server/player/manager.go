package player

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/biomecraft/server/internal/server/packet"
	"github.com/biomecraft/server/internal/server/world"
	"github.com/biomecraft/server/pkg/gamedata"
	"github.com/biomecraft/server/pkg/protocol"
)

// Manager tracks all connected players.
type Manager struct {
	mu           sync.RWMutex
	players      map[int32]*Player // entityID → Player
	byUUID       map[uuid.UUID]int32
	nextEntityID atomic.Int32
}

// NewManager creates an empty player manager.
func NewManager() *Manager {
	return &Manager{
		players: make(map[int32]*Player),
		byUUID:  make(map[uuid.UUID]int32),
	}
}

// AllocateEntityID returns the next unique entity ID.
func (m *Manager) AllocateEntityID() int32 {
	return m.nextEntityID.Add(1)
}

// Add registers a player and announces it: the new player learns about
// everyone already online, everyone online learns about the new player.
func (m *Manager) Add(p *Player) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.players[p.EntityID] = p
	m.byUUID[p.UUID] = p.EntityID

	joined := &packet.PlayerInfo{
		Action: packet.PlayerInfoAdd,
		UUID:   p.UUID,
		Name:   p.Username,
	}

	// The player sees their own entry so the client's tab list is complete.
	_ = p.WritePacket(joined)

	for _, other := range m.players {
		if other.EntityID == p.EntityID {
			continue
		}
		_ = p.WritePacket(&packet.PlayerInfo{
			Action: packet.PlayerInfoAdd,
			UUID:   other.UUID,
			Name:   other.Username,
		})
		_ = other.WritePacket(joined)
	}
}

// Remove unregisters a player and clears it from everyone's tab list.
func (m *Manager) Remove(p *Player) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.players, p.EntityID)
	delete(m.byUUID, p.UUID)

	left := &packet.PlayerInfo{
		Action: packet.PlayerInfoRemove,
		UUID:   p.UUID,
		Name:   p.Username,
	}
	for _, other := range m.players {
		_ = other.WritePacket(left)
	}
}

// Broadcast sends a packet to all connected players.
func (m *Manager) Broadcast(p protocol.Packet) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, pl := range m.players {
		_ = pl.WritePacket(p)
	}
}

// BroadcastBiomeChange announces a rewritten biome cell to every player.
// The packet carries the changed coordinate itself, not the cell origin.
func (m *Manager) BroadcastBiomeChange(pos world.BlockPos, b gamedata.Biome) {
	m.Broadcast(&packet.BiomeChange{
		Location: protocol.EncodePosition(pos.X, pos.Y, pos.Z),
		BiomeID:  int32(b.ID),
		Biome:    b.Name,
	})
}

// BroadcastExcept sends a packet to all players except the one with
// excludeEntityID.
func (m *Manager) BroadcastExcept(p protocol.Packet, excludeEntityID int32) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, pl := range m.players {
		if pl.EntityID != excludeEntityID {
			_ = pl.WritePacket(p)
		}
	}
}

// PlayerCount returns the number of connected players.
func (m *Manager) PlayerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.players)
}

// GetByEntityID returns the player with the given entity ID, or nil.
func (m *Manager) GetByEntityID(entityID int32) *Player {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.players[entityID]
}

// GetByUUID returns the player with the given UUID, or nil.
func (m *Manager) GetByUUID(id uuid.UUID) *Player {
	m.mu.RLock()
	defer m.mu.RUnlock()
	eid, ok := m.byUUID[id]
	if !ok {
		return nil
	}
	return m.players[eid]
}

// GetByName returns the player with the given username
// (case-insensitive), or nil.
func (m *Manager) GetByName(name string) *Player {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.players {
		if strings.EqualFold(p.Username, name) {
			return p
		}
	}
	return nil
}

// Names returns every connected player's username.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.players))
	for _, p := range m.players {
		names = append(names, p.Username)
	}
	return names
}

// ForEach calls fn for every connected player under a read lock.
func (m *Manager) ForEach(fn func(*Player)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.players {
		fn(p)
	}
}

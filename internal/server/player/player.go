package player

import (
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/biomecraft/server/pkg/protocol"
)

// Position holds a player's world position and orientation.
type Position struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
}

// Player represents a connected player.
type Player struct {
	mu       sync.RWMutex
	EntityID int32
	UUID     uuid.UUID
	Username string

	pos Position

	// WritePacket delivers a packet to this player's connection. It
	// must be safe for concurrent use.
	WritePacket func(protocol.Packet) error
}

// New creates a Player standing at the given spawn position.
func New(entityID int32, id uuid.UUID, username string, spawn Position, writePacket func(protocol.Packet) error) *Player {
	return &Player{
		EntityID:    entityID,
		UUID:        id,
		Username:    username,
		pos:         spawn,
		WritePacket: writePacket,
	}
}

// GetPosition returns a copy of the player's current position.
func (p *Player) GetPosition() Position {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pos
}

// SetPosition updates the player's position.
func (p *Player) SetPosition(x, y, z float64, yaw, pitch float32, onGround bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = Position{X: x, Y: y, Z: z, Yaw: yaw, Pitch: pitch, OnGround: onGround}
}

// UpdateLook updates only the player's look direction.
func (p *Player) UpdateLook(yaw, pitch float32, onGround bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos.Yaw = yaw
	p.pos.Pitch = pitch
	p.pos.OnGround = onGround
}

// BlockX returns the X coordinate of the block the player stands in.
func (p *Player) BlockX() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return int(math.Floor(p.pos.X))
}

// BlockY returns the Y coordinate of the block the player stands in.
func (p *Player) BlockY() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return int(math.Floor(p.pos.Y))
}

// BlockZ returns the Z coordinate of the block the player stands in.
func (p *Player) BlockZ() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return int(math.Floor(p.pos.Z))
}

// ChunkX returns the chunk X coordinate for the player's current position.
func (p *Player) ChunkX() int {
	return p.BlockX() >> 4
}

// ChunkZ returns the chunk Z coordinate for the player's current position.
func (p *Player) ChunkZ() int {
	return p.BlockZ() >> 4
}

package player

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/biomecraft/server/internal/server/packet"
	"github.com/biomecraft/server/internal/server/world"
	"github.com/biomecraft/server/pkg/gamedata"
	"github.com/biomecraft/server/pkg/protocol"
)

// packetCollector records packets sent to a player.
type packetCollector struct {
	mu      sync.Mutex
	packets []protocol.Packet
}

func (pc *packetCollector) writePacket(p protocol.Packet) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.packets = append(pc.packets, p)
	return nil
}

func (pc *packetCollector) get() []protocol.Packet {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	cp := make([]protocol.Packet, len(pc.packets))
	copy(cp, pc.packets)
	return cp
}

func (pc *packetCollector) reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.packets = nil
}

func (pc *packetCollector) countByType(id int32) int {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	n := 0
	for _, p := range pc.packets {
		if p.PacketID() == id {
			n++
		}
	}
	return n
}

func newTestPlayer(m *Manager, name string) (*Player, *packetCollector) {
	pc := &packetCollector{}
	eid := m.AllocateEntityID()
	id := uuid.UUID{byte(eid)}
	p := New(eid, id, name, Position{X: 0.5, Y: -59, Z: 0.5}, pc.writePacket)
	return p, pc
}

func TestAllocateEntityID(t *testing.T) {
	m := NewManager()
	id1 := m.AllocateEntityID()
	id2 := m.AllocateEntityID()
	id3 := m.AllocateEntityID()
	if id1 != 1 || id2 != 2 || id3 != 3 {
		t.Errorf("expected 1,2,3 got %d,%d,%d", id1, id2, id3)
	}
}

func TestAddRemovePlayer(t *testing.T) {
	m := NewManager()
	p1, _ := newTestPlayer(m, "Alice")
	p2, _ := newTestPlayer(m, "Bob")

	m.Add(p1)
	if m.PlayerCount() != 1 {
		t.Errorf("expected 1, got %d", m.PlayerCount())
	}

	m.Add(p2)
	if m.PlayerCount() != 2 {
		t.Errorf("expected 2, got %d", m.PlayerCount())
	}

	m.Remove(p1)
	if m.PlayerCount() != 1 {
		t.Errorf("expected 1, got %d", m.PlayerCount())
	}

	m.Remove(p2)
	if m.PlayerCount() != 0 {
		t.Errorf("expected 0, got %d", m.PlayerCount())
	}
}

func TestBroadcast(t *testing.T) {
	m := NewManager()
	p1, pc1 := newTestPlayer(m, "Alice")
	p2, pc2 := newTestPlayer(m, "Bob")

	m.Add(p1)
	m.Add(p2)

	pc1.reset()
	pc2.reset()

	m.Broadcast(&packet.ChatCB{Message: `{"text":"hello"}`})

	if len(pc1.get()) != 1 {
		t.Errorf("p1 expected 1 packet, got %d", len(pc1.get()))
	}
	if len(pc2.get()) != 1 {
		t.Errorf("p2 expected 1 packet, got %d", len(pc2.get()))
	}
}

func TestBroadcastExcept(t *testing.T) {
	m := NewManager()
	p1, pc1 := newTestPlayer(m, "Alice")
	p2, pc2 := newTestPlayer(m, "Bob")

	m.Add(p1)
	m.Add(p2)

	pc1.reset()
	pc2.reset()

	m.BroadcastExcept(&packet.ChatCB{Message: `{"text":"hello"}`}, p1.EntityID)

	if len(pc1.get()) != 0 {
		t.Errorf("p1 (excluded) expected 0 packets, got %d", len(pc1.get()))
	}
	if len(pc2.get()) != 1 {
		t.Errorf("p2 expected 1 packet, got %d", len(pc2.get()))
	}
}

func TestPlayerInfoOnAdd(t *testing.T) {
	m := NewManager()
	p1, pc1 := newTestPlayer(m, "Alice")
	p2, pc2 := newTestPlayer(m, "Bob")

	m.Add(p1)
	pc1.reset()

	m.Add(p2)

	// p1 should receive p2's PlayerInfo.
	if n := pc1.countByType(packet.PlayerInfo{}.PacketID()); n < 1 {
		t.Errorf("p1 expected at least 1 PlayerInfo, got %d", n)
	}

	// p2 should receive p1's PlayerInfo (plus its own).
	if n := pc2.countByType(packet.PlayerInfo{}.PacketID()); n < 2 {
		t.Errorf("p2 expected at least 2 PlayerInfo, got %d", n)
	}
}

func TestPlayerInfoOnRemove(t *testing.T) {
	m := NewManager()
	p1, pc1 := newTestPlayer(m, "Alice")
	p2, _ := newTestPlayer(m, "Bob")

	m.Add(p1)
	m.Add(p2)
	pc1.reset()

	m.Remove(p2)

	got := pc1.get()
	if len(got) != 1 {
		t.Fatalf("p1 expected 1 packet, got %d", len(got))
	}
	info, ok := got[0].(*packet.PlayerInfo)
	if !ok {
		t.Fatalf("p1 expected PlayerInfo, got %T", got[0])
	}
	if info.Action != packet.PlayerInfoRemove {
		t.Errorf("Action = %d, want remove (%d)", info.Action, packet.PlayerInfoRemove)
	}
	if info.Name != "Bob" {
		t.Errorf("Name = %q, want %q", info.Name, "Bob")
	}
}

func TestGetByName(t *testing.T) {
	m := NewManager()
	p1, _ := newTestPlayer(m, "Alice")
	m.Add(p1)

	if got := m.GetByName("alice"); got != p1 {
		t.Error("GetByName is not case-insensitive")
	}
	if got := m.GetByName("Carol"); got != nil {
		t.Errorf("GetByName(Carol) = %v, want nil", got)
	}
}

func TestGetByUUID(t *testing.T) {
	m := NewManager()
	p1, _ := newTestPlayer(m, "Alice")
	m.Add(p1)

	if got := m.GetByUUID(p1.UUID); got != p1 {
		t.Error("GetByUUID did not find the player")
	}
	if got := m.GetByUUID(uuid.UUID{0xFF}); got != nil {
		t.Errorf("GetByUUID(unknown) = %v, want nil", got)
	}
}

func TestPlayerPosition(t *testing.T) {
	m := NewManager()
	p, _ := newTestPlayer(m, "Alice")

	p.SetPosition(100.7, 64, -33.2, 90, 10, true)
	pos := p.GetPosition()
	if pos.X != 100.7 || pos.Z != -33.2 {
		t.Errorf("position = (%.1f, %.1f), want (100.7, -33.2)", pos.X, pos.Z)
	}
	if p.BlockX() != 100 || p.BlockZ() != -34 {
		t.Errorf("block coords = (%d, %d), want (100, -34)", p.BlockX(), p.BlockZ())
	}
	if p.ChunkX() != 6 || p.ChunkZ() != -3 {
		t.Errorf("chunk coords = (%d, %d), want (6, -3)", p.ChunkX(), p.ChunkZ())
	}

	p.UpdateLook(45, -5, false)
	pos = p.GetPosition()
	if pos.Yaw != 45 || pos.Pitch != -5 {
		t.Errorf("look = (%.0f, %.0f), want (45, -5)", pos.Yaw, pos.Pitch)
	}
	if pos.X != 100.7 {
		t.Error("UpdateLook moved the player")
	}
}

func TestBroadcastBiomeChange(t *testing.T) {
	m := NewManager()
	p1, pc1 := newTestPlayer(m, "Alice")
	p2, pc2 := newTestPlayer(m, "Bob")
	m.Add(p1)
	m.Add(p2)
	pc1.reset()
	pc2.reset()

	m.BroadcastBiomeChange(world.BlockPos{X: -120, Y: -60, Z: 901}, gamedata.Biome{ID: 14, Name: "desert"})

	for name, pc := range map[string]*packetCollector{"Alice": pc1, "Bob": pc2} {
		var got *packet.BiomeChange
		for _, p := range pc.get() {
			if bc, ok := p.(*packet.BiomeChange); ok {
				got = bc
				break
			}
		}
		if got == nil {
			t.Fatalf("%s did not receive a BiomeChange", name)
		}
		if got.Location != protocol.EncodePosition(-120, -60, 901) {
			t.Errorf("%s: Location = %d, want encoded -120,-60,901", name, got.Location)
		}
		if got.BiomeID != 14 || got.Biome != "desert" {
			t.Errorf("%s: got id %d name %q, want 14 desert", name, got.BiomeID, got.Biome)
		}
	}
}

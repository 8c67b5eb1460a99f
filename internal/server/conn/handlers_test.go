package conn

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/biomecraft/server/internal/server/packet"
	"github.com/biomecraft/server/internal/server/world/gen"
	"github.com/biomecraft/server/pkg/protocol"
)

func mustMarshal(t *testing.T, p protocol.Packet) []byte {
	t.Helper()
	data, err := protocol.Marshal(p)
	if err != nil {
		t.Fatalf("marshal %T: %v", p, err)
	}
	return data
}

func handshakeData(t *testing.T, nextState int32) []byte {
	t.Helper()
	return mustMarshal(t, &packet.Handshake{
		ProtocolVersion: 770,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       nextState,
	})
}

func TestHandshakeToStatus(t *testing.T) {
	c := newBareConn(t)

	if err := c.handleHandshake(0x00, handshakeData(t, packet.StateStatus)); err != nil {
		t.Fatalf("handleHandshake: %v", err)
	}
	if c.state != StateStatus {
		t.Errorf("state = %d, want StateStatus", c.state)
	}
}

func TestHandshakeToLogin(t *testing.T) {
	c := newBareConn(t)

	if err := c.handleHandshake(0x00, handshakeData(t, packet.StateLogin)); err != nil {
		t.Fatalf("handleHandshake: %v", err)
	}
	if c.state != StateLogin {
		t.Errorf("state = %d, want StateLogin", c.state)
	}
}

func TestHandshakeInvalidNextState(t *testing.T) {
	c := newBareConn(t)

	if err := c.handleHandshake(0x00, handshakeData(t, 7)); err == nil {
		t.Error("expected error for next state 7")
	}
	if c.state != StateHandshake {
		t.Errorf("state = %d, want StateHandshake", c.state)
	}
}

func TestHandshakeWrongPacketID(t *testing.T) {
	c := newBareConn(t)

	if err := c.handleHandshake(0x05, nil); err == nil {
		t.Error("expected error for packet 0x05 in handshake state")
	}
}

func TestStatusResponse(t *testing.T) {
	c := newBareConn(t)
	c.state = StateStatus
	rec := c.rw.(*packetRecorder)

	if err := c.handleStatus(0x00, nil); err != nil {
		t.Fatalf("handleStatus: %v", err)
	}

	id, data, err := protocol.ReadRawPacket(bytes.NewReader(rec.bytes()))
	if err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if id != (packet.StatusResponse{}).PacketID() {
		t.Fatalf("packet ID = 0x%02X, want status response", id)
	}

	var resp packet.StatusResponse
	if err := protocol.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	var info packet.StatusInfo
	if err := json.Unmarshal([]byte(resp.JSONResponse), &info); err != nil {
		t.Fatalf("unmarshal status JSON: %v", err)
	}

	if info.Version.Protocol != 770 {
		t.Errorf("protocol = %d, want 770", info.Version.Protocol)
	}
	if info.Version.Name != "1.21.5" {
		t.Errorf("version name = %q, want 1.21.5", info.Version.Name)
	}
	if info.Players.Max != c.cfg.MaxPlayers {
		t.Errorf("max players = %d, want %d", info.Players.Max, c.cfg.MaxPlayers)
	}
	if info.Players.Online != 0 {
		t.Errorf("online = %d, want 0", info.Players.Online)
	}
	if info.Description.Text != c.cfg.MOTD {
		t.Errorf("description = %q, want %q", info.Description.Text, c.cfg.MOTD)
	}
}

func TestStatusPingPong(t *testing.T) {
	c := newBareConn(t)
	c.state = StateStatus
	rec := c.rw.(*packetRecorder)

	data := mustMarshal(t, &packet.StatusPing{Payload: 1724581337})
	if err := c.handleStatus(0x01, data); err != nil {
		t.Fatalf("handleStatus: %v", err)
	}

	id, pongData, err := protocol.ReadRawPacket(bytes.NewReader(rec.bytes()))
	if err != nil {
		t.Fatalf("decode pong: %v", err)
	}
	if id != (packet.StatusPong{}).PacketID() {
		t.Fatalf("packet ID = 0x%02X, want pong", id)
	}
	var pong packet.StatusPong
	if err := protocol.Unmarshal(pongData, &pong); err != nil {
		t.Fatalf("unmarshal pong: %v", err)
	}
	if pong.Payload != 1724581337 {
		t.Errorf("payload = %d, want 1724581337", pong.Payload)
	}
}

func TestOfflineUUID(t *testing.T) {
	a := offlineUUID("Alice")
	if offlineUUID("Alice") != a {
		t.Error("same username produced different UUIDs")
	}
	if offlineUUID("Bob") == a {
		t.Error("different usernames produced the same UUID")
	}
	if got := a[6] >> 4; got != 3 {
		t.Errorf("UUID version = %d, want 3", got)
	}
	if got := a[8] & 0xc0; got != 0x80 {
		t.Errorf("UUID variant bits = 0x%02X, want 0x80", got)
	}
}

func TestLoginStartJoins(t *testing.T) {
	c := newBareConn(t)
	c.state = StateLogin
	c.cfg.ViewDistance = 1
	rec := c.rw.(*packetRecorder)

	data := mustMarshal(t, &packet.LoginStart{Name: "Alice"})
	if err := c.handleLogin(0x00, data); err != nil {
		t.Fatalf("handleLogin: %v", err)
	}

	if c.state != StatePlay {
		t.Fatalf("state = %d, want StatePlay", c.state)
	}
	if c.self == nil || c.self.Username != "Alice" {
		t.Fatal("player not registered on the connection")
	}
	if got := c.players.PlayerCount(); got != 1 {
		t.Errorf("player count = %d, want 1", got)
	}

	// SetCompression goes out before the threshold takes effect, so the
	// first packet uses the plain frame format.
	r := bytes.NewReader(rec.bytes())
	id, scData, err := protocol.ReadRawPacket(r)
	if err != nil {
		t.Fatalf("decode set compression: %v", err)
	}
	if id != (packet.SetCompression{}).PacketID() {
		t.Fatalf("first packet ID = 0x%02X, want set compression", id)
	}
	var sc packet.SetCompression
	if err := protocol.Unmarshal(scData, &sc); err != nil {
		t.Fatalf("unmarshal set compression: %v", err)
	}
	if int(sc.Threshold) != c.cfg.CompressionThreshold {
		t.Errorf("threshold = %d, want %d", sc.Threshold, c.cfg.CompressionThreshold)
	}
	if !c.compressionEnabled() {
		t.Error("compression not enabled after negotiation")
	}

	// Everything after SetCompression uses the compressed frame format.
	id, lsData, err := protocol.ReadRawPacketZlib(r)
	if err != nil {
		t.Fatalf("decode login success: %v", err)
	}
	if id != (packet.LoginSuccess{}).PacketID() {
		t.Fatalf("second packet ID = 0x%02X, want login success", id)
	}
	var ls packet.LoginSuccess
	if err := protocol.Unmarshal(lsData, &ls); err != nil {
		t.Fatalf("unmarshal login success: %v", err)
	}
	if ls.Username != "Alice" {
		t.Errorf("username = %q, want Alice", ls.Username)
	}
	if ls.UUID != [16]byte(offlineUUID("Alice")) {
		t.Error("login success UUID does not match the offline UUID")
	}

	id, _, err = protocol.ReadRawPacketZlib(r)
	if err != nil {
		t.Fatalf("decode join game: %v", err)
	}
	if id != (packet.JoinGame{}).PacketID() {
		t.Errorf("third packet ID = 0x%02X, want join game", id)
	}
}

func TestLoginCompressionDisabled(t *testing.T) {
	c := newBareConn(t)
	c.state = StateLogin
	c.cfg.ViewDistance = 1
	c.cfg.CompressionThreshold = -1
	rec := c.rw.(*packetRecorder)

	data := mustMarshal(t, &packet.LoginStart{Name: "Alice"})
	if err := c.handleLogin(0x00, data); err != nil {
		t.Fatalf("handleLogin: %v", err)
	}

	if c.compressionEnabled() {
		t.Error("compression enabled despite threshold -1")
	}

	id, _, err := protocol.ReadRawPacket(bytes.NewReader(rec.bytes()))
	if err != nil {
		t.Fatalf("decode first packet: %v", err)
	}
	if id != (packet.LoginSuccess{}).PacketID() {
		t.Errorf("first packet ID = 0x%02X, want login success", id)
	}
}

func TestLoginServerFull(t *testing.T) {
	c := newBareConn(t)
	c.state = StateLogin
	c.cfg.MaxPlayers = 1
	addPlayer(c.players, "Bob")
	rec := c.rw.(*packetRecorder)

	data := mustMarshal(t, &packet.LoginStart{Name: "Alice"})
	if err := c.handleLogin(0x00, data); err != nil {
		t.Fatalf("handleLogin: %v", err)
	}

	if c.state == StatePlay {
		t.Error("full server still entered play state")
	}
	if got := c.players.PlayerCount(); got != 1 {
		t.Errorf("player count = %d, want 1", got)
	}

	id, dcData, err := protocol.ReadRawPacket(bytes.NewReader(rec.bytes()))
	if err != nil {
		t.Fatalf("decode disconnect: %v", err)
	}
	if id != (packet.LoginDisconnect{}).PacketID() {
		t.Fatalf("packet ID = 0x%02X, want login disconnect", id)
	}
	var dc packet.LoginDisconnect
	if err := protocol.Unmarshal(dcData, &dc); err != nil {
		t.Fatalf("unmarshal disconnect: %v", err)
	}
	if !bytes.Contains([]byte(dc.Reason), []byte("full")) {
		t.Errorf("reason = %q, want mention of a full server", dc.Reason)
	}
}

func TestLoginDuplicateName(t *testing.T) {
	c := newBareConn(t)
	c.state = StateLogin
	addPlayer(c.players, "Alice")
	rec := c.rw.(*packetRecorder)

	data := mustMarshal(t, &packet.LoginStart{Name: "Alice"})
	if err := c.handleLogin(0x00, data); err != nil {
		t.Fatalf("handleLogin: %v", err)
	}

	if c.state == StatePlay {
		t.Error("duplicate name still entered play state")
	}

	id, dcData, err := protocol.ReadRawPacket(bytes.NewReader(rec.bytes()))
	if err != nil {
		t.Fatalf("decode disconnect: %v", err)
	}
	if id != (packet.LoginDisconnect{}).PacketID() {
		t.Fatalf("packet ID = 0x%02X, want login disconnect", id)
	}
	var dc packet.LoginDisconnect
	if err := protocol.Unmarshal(dcData, &dc); err != nil {
		t.Fatalf("unmarshal disconnect: %v", err)
	}
	if !bytes.Contains([]byte(dc.Reason), []byte("already in use")) {
		t.Errorf("reason = %q, want name conflict message", dc.Reason)
	}
}

func TestLoginUnexpectedPacket(t *testing.T) {
	c := newBareConn(t)
	c.state = StateLogin

	if err := c.handleLogin(0x42, nil); err == nil {
		t.Error("expected error for packet 0x42 in login state")
	}
}

func TestKeepAliveAck(t *testing.T) {
	c, _, _ := newTestConn(t, "Alice")
	c.lastKeepAliveID = 7
	c.keepAliveAcked = false

	data := mustMarshal(t, &packet.KeepAliveSB{KeepAliveID: 7})
	if err := c.handlePlay(0x1A, data); err != nil {
		t.Fatalf("handlePlay: %v", err)
	}

	c.mu.Lock()
	acked := c.keepAliveAcked
	c.mu.Unlock()
	if !acked {
		t.Error("matching keep alive ID did not ack")
	}
}

func TestKeepAliveWrongIDIgnored(t *testing.T) {
	c, _, _ := newTestConn(t, "Alice")
	c.lastKeepAliveID = 7
	c.keepAliveAcked = false

	data := mustMarshal(t, &packet.KeepAliveSB{KeepAliveID: 6})
	if err := c.handlePlay(0x1A, data); err != nil {
		t.Fatalf("handlePlay: %v", err)
	}

	c.mu.Lock()
	acked := c.keepAliveAcked
	c.mu.Unlock()
	if acked {
		t.Error("stale keep alive ID acked")
	}
}

func TestPlayerPositionKeepsLook(t *testing.T) {
	c, _, _ := newTestConn(t, "Alice")

	look := mustMarshal(t, &packet.PlayerPositionAndLookSB{
		X: 0.5, FeetY: -59, Z: 0.5, Yaw: 90, Pitch: -15, OnGround: true,
	})
	if err := c.handlePlay(0x1D, look); err != nil {
		t.Fatalf("handlePlay look: %v", err)
	}

	move := mustMarshal(t, &packet.PlayerPosition{
		X: 10.5, FeetY: -58, Z: 3.25, OnGround: false,
	})
	if err := c.handlePlay(0x1C, move); err != nil {
		t.Fatalf("handlePlay move: %v", err)
	}

	pos := c.self.GetPosition()
	if pos.X != 10.5 || pos.Y != -58 || pos.Z != 3.25 {
		t.Errorf("position = %v, want 10.5 -58 3.25", pos)
	}
	if pos.Yaw != 90 || pos.Pitch != -15 {
		t.Errorf("look = %v %v, want 90 -15 preserved", pos.Yaw, pos.Pitch)
	}
	if pos.OnGround {
		t.Error("on ground flag not updated")
	}
}

func TestPlayerLookKeepsPosition(t *testing.T) {
	c, _, _ := newTestConn(t, "Alice")

	data := mustMarshal(t, &packet.PlayerLook{Yaw: 180, Pitch: 45, OnGround: true})
	if err := c.handlePlay(0x1E, data); err != nil {
		t.Fatalf("handlePlay: %v", err)
	}

	pos := c.self.GetPosition()
	if pos.X != 0.5 || pos.Y != -59 || pos.Z != 0.5 {
		t.Errorf("position = %v, want spawn unchanged", pos)
	}
	if pos.Yaw != 180 || pos.Pitch != 45 {
		t.Errorf("look = %v %v, want 180 45", pos.Yaw, pos.Pitch)
	}
}

func TestMovementStreamsNewChunks(t *testing.T) {
	c, _, _ := newTestConn(t, "Alice")
	c.cfg.ViewDistance = 1

	move := mustMarshal(t, &packet.PlayerPosition{
		X: 100.5, FeetY: -59, Z: 100.5, OnGround: true,
	})
	if err := c.handlePlay(0x1C, move); err != nil {
		t.Fatalf("handlePlay: %v", err)
	}

	for cx := 5; cx <= 7; cx++ {
		for cz := 5; cz <= 7; cz++ {
			if _, ok := c.loadedChunks[gen.ChunkPos{X: cx, Z: cz}]; !ok {
				t.Errorf("chunk %d,%d not streamed", cx, cz)
			}
		}
	}
}

func TestUnknownPlayPacketIgnored(t *testing.T) {
	c, _, _ := newTestConn(t, "Alice")

	if err := c.handlePlay(0x6F, nil); err != nil {
		t.Errorf("unknown packet returned error: %v", err)
	}
}

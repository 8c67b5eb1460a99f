package conn

import (
	"crypto/md5"
	"fmt"

	"github.com/google/uuid"

	"github.com/biomecraft/server/internal/server/packet"
	"github.com/biomecraft/server/pkg/protocol"
)

func (c *Connection) handleLogin(packetID int32, data []byte) error {
	switch packetID {
	case 0x00: // Login Start
		return c.handleLoginStart(data)
	case 0x03: // Login Acknowledged, nothing to do
		return nil
	default:
		return fmt.Errorf("unexpected login packet 0x%02X", packetID)
	}
}

func (c *Connection) handleLoginStart(data []byte) error {
	var login packet.LoginStart
	if err := protocol.Unmarshal(data, &login); err != nil {
		return fmt.Errorf("unmarshal login start: %w", err)
	}

	if c.players.PlayerCount() >= c.cfg.MaxPlayers {
		_ = c.writePacket(&packet.LoginDisconnect{Reason: `{"text":"Server is full."}`})
		c.disconnect("server full")
		return nil
	}
	if c.players.GetByName(login.Name) != nil {
		_ = c.writePacket(&packet.LoginDisconnect{Reason: `{"text":"Name already in use."}`})
		c.disconnect("duplicate username")
		return nil
	}

	id := offlineUUID(login.Name)
	c.log.Info("login", "username", login.Name, "uuid", id.String())

	// Compression must be negotiated before LoginSuccess; the
	// SetCompression packet itself goes out uncompressed.
	if c.cfg.CompressionThreshold >= 0 {
		if err := c.writePacket(&packet.SetCompression{
			Threshold: int32(c.cfg.CompressionThreshold),
		}); err != nil {
			return fmt.Errorf("write set compression: %w", err)
		}
		c.enableCompression(c.cfg.CompressionThreshold)
	}

	if err := c.writePacket(&packet.LoginSuccess{
		UUID:     id,
		Username: login.Name,
	}); err != nil {
		return fmt.Errorf("write login success: %w", err)
	}

	c.state = StatePlay
	return c.startPlay(login.Name, id)
}

// offlineUUID derives the stable UUID vanilla assigns to unauthenticated
// players: md5 of "OfflinePlayer:<username>" with RFC 4122 version 3 bits.
func offlineUUID(username string) uuid.UUID {
	h := md5.Sum([]byte("OfflinePlayer:" + username))
	h[6] = (h[6] & 0x0f) | 0x30
	h[8] = (h[8] & 0x3f) | 0x80
	return uuid.UUID(h)
}

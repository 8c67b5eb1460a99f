package conn

import (
	"fmt"

	"github.com/biomecraft/server/internal/server/packet"
	"github.com/biomecraft/server/pkg/protocol"
)

func (c *Connection) handleHandshake(packetID int32, data []byte) error {
	if packetID != 0x00 {
		return fmt.Errorf("expected handshake packet 0x00, got 0x%02X", packetID)
	}

	var hs packet.Handshake
	if err := protocol.Unmarshal(data, &hs); err != nil {
		return fmt.Errorf("unmarshal handshake: %w", err)
	}

	c.log.Info("handshake received",
		"protocol", hs.ProtocolVersion,
		"server", hs.ServerAddress,
		"port", hs.ServerPort,
		"nextState", hs.NextState,
	)

	switch hs.NextState {
	case packet.StateStatus:
		c.state = StateStatus
	case packet.StateLogin:
		if int(hs.ProtocolVersion) != c.gd.Version.Protocol {
			c.log.Warn("unsupported protocol version", "version", hs.ProtocolVersion, "want", c.gd.Version.Protocol)
		}
		c.state = StateLogin
	default:
		return fmt.Errorf("invalid next state: %d", hs.NextState)
	}

	return nil
}

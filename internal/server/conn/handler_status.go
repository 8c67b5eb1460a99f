package conn

import (
	"encoding/json"
	"fmt"

	"github.com/biomecraft/server/internal/server/packet"
	"github.com/biomecraft/server/pkg/protocol"
)

func (c *Connection) handleStatus(packetID int32, data []byte) error {
	switch packetID {
	case 0x00: // Status Request
		info := packet.StatusInfo{
			Version: packet.StatusVersion{
				Name:     c.gd.Version.MinecraftVersion,
				Protocol: c.gd.Version.Protocol,
			},
			Players: packet.StatusPlayers{
				Max:    c.cfg.MaxPlayers,
				Online: c.players.PlayerCount(),
			},
			Description: packet.StatusText{
				Text: c.cfg.MOTD,
			},
		}

		jsonBytes, err := json.Marshal(info)
		if err != nil {
			return fmt.Errorf("marshal status response: %w", err)
		}

		return c.writePacket(&packet.StatusResponse{
			JSONResponse: string(jsonBytes),
		})

	case 0x01: // Ping
		var ping packet.StatusPing
		if err := protocol.Unmarshal(data, &ping); err != nil {
			return fmt.Errorf("unmarshal ping: %w", err)
		}

		return c.writePacket(&packet.StatusPong{
			Payload: ping.Payload,
		})

	default:
		return fmt.Errorf("unexpected status packet 0x%02X", packetID)
	}
}

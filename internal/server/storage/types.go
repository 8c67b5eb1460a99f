package storage

import (
	"github.com/biomecraft/server/internal/server/player"
)

// PlayerData is the serializable representation of a player's state.
type PlayerData struct {
	UUID     string       `json:"uuid"`
	Username string       `json:"username"`
	Position PositionData `json:"position"`
}

// PositionData holds a player's world position and orientation.
type PositionData struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float32 `json:"yaw"`
	Pitch float32 `json:"pitch"`
}

// PlayerDataFromPlayer extracts serializable data from a runtime Player.
func PlayerDataFromPlayer(p *player.Player) *PlayerData {
	pos := p.GetPosition()
	return &PlayerData{
		UUID:     p.UUID.String(),
		Username: p.Username,
		Position: PositionData{
			X:     pos.X,
			Y:     pos.Y,
			Z:     pos.Z,
			Yaw:   pos.Yaw,
			Pitch: pos.Pitch,
		},
	}
}

// PlayerPosition converts the stored record back to a runtime position.
func (pd *PlayerData) PlayerPosition() player.Position {
	return player.Position{
		X:     pd.Position.X,
		Y:     pd.Position.Y,
		Z:     pd.Position.Z,
		Yaw:   pd.Position.Yaw,
		Pitch: pd.Position.Pitch,
	}
}

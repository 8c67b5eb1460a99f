package packet

// Serverbound play packets

// KeepAliveSB echoes the server's liveness probe (serverbound 0x1A).
type KeepAliveSB struct {
	KeepAliveID int64 `mc:"i64"`
}

func (KeepAliveSB) PacketID() int32 { return 0x1A }

// ChatSB is sent by the client when they type a chat message or
// command (serverbound 0x07).
type ChatSB struct {
	Message string `mc:"string"`
}

func (ChatSB) PacketID() int32 { return 0x07 }

// TabCompleteSB asks the server to complete the current input
// (serverbound 0x0D).
type TabCompleteSB struct {
	TransactionID int32  `mc:"varint"`
	Text          string `mc:"string"`
}

func (TabCompleteSB) PacketID() int32 { return 0x0D }

// PlayerPosition is sent by the client when they move (serverbound 0x1C).
type PlayerPosition struct {
	X        float64 `mc:"f64"`
	FeetY    float64 `mc:"f64"`
	Z        float64 `mc:"f64"`
	OnGround bool    `mc:"bool"`
}

func (PlayerPosition) PacketID() int32 { return 0x1C }

// PlayerPositionAndLookSB is sent when the client moves and looks
// (serverbound 0x1D).
type PlayerPositionAndLookSB struct {
	X        float64 `mc:"f64"`
	FeetY    float64 `mc:"f64"`
	Z        float64 `mc:"f64"`
	Yaw      float32 `mc:"f32"`
	Pitch    float32 `mc:"f32"`
	OnGround bool    `mc:"bool"`
}

func (PlayerPositionAndLookSB) PacketID() int32 { return 0x1D }

// PlayerLook is sent by the client when they look around (serverbound 0x1E).
type PlayerLook struct {
	Yaw      float32 `mc:"f32"`
	Pitch    float32 `mc:"f32"`
	OnGround bool    `mc:"bool"`
}

func (PlayerLook) PacketID() int32 { return 0x1E }

// PlayerFlags is the client's movement heartbeat (serverbound 0x1F).
type PlayerFlags struct {
	OnGround bool `mc:"bool"`
}

func (PlayerFlags) PacketID() int32 { return 0x1F }

// ClientSettings is sent by the client with their settings (serverbound 0x0C).
type ClientSettings struct {
	Locale       string `mc:"string"`
	ViewDistance int8   `mc:"i8"`
	ChatMode     int8   `mc:"i8"`
	ChatColors   bool   `mc:"bool"`
	SkinParts    uint8  `mc:"u8"`
}

func (ClientSettings) PacketID() int32 { return 0x0C }

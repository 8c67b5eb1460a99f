package packet

// GameMode constants.
const (
	GameModeSurvival  uint8 = 0
	GameModeCreative  uint8 = 1
	GameModeAdventure uint8 = 2
	GameModeSpectator uint8 = 3
)

// PlayerInfo actions.
const (
	PlayerInfoAdd    uint8 = 0
	PlayerInfoRemove uint8 = 1
)

// Clientbound play packets

// JoinGame starts the Play state for a client (clientbound 0x2B).
type JoinGame struct {
	EntityID     int32  `mc:"i32"`
	Hardcore     bool   `mc:"bool"`
	GameMode     uint8  `mc:"u8"`
	Dimension    string `mc:"string"`
	HashedSeed   int64  `mc:"i64"`
	MaxPlayers   int32  `mc:"varint"`
	ViewDistance int32  `mc:"varint"`
	ReducedDebug bool   `mc:"bool"`
}

func (JoinGame) PacketID() int32 { return 0x2B }

// KeepAliveCB is the server's liveness probe; the client must echo the
// ID (clientbound 0x26).
type KeepAliveCB struct {
	KeepAliveID int64 `mc:"i64"`
}

func (KeepAliveCB) PacketID() int32 { return 0x26 }

// ChatCB carries a JSON chat component to the client (clientbound 0x1C).
type ChatCB struct {
	Message string `mc:"string"`
	Overlay bool   `mc:"bool"`
}

func (ChatCB) PacketID() int32 { return 0x1C }

// ChunkData transfers one full chunk column (clientbound 0x27).
// Sections is a bitmask of populated sections, bit 0 the lowest. Data
// holds, per populated section, 4096 block states then 64 biome cells,
// both little-endian uint16.
type ChunkData struct {
	X        int32  `mc:"i32"`
	Z        int32  `mc:"i32"`
	Full     bool   `mc:"bool"`
	Sections uint32 `mc:"u32"`
	Data     []byte `mc:"bytearray"`
}

func (ChunkData) PacketID() int32 { return 0x27 }

// BlockChange updates a single block (clientbound 0x08).
type BlockChange struct {
	Location int64 `mc:"position"`
	BlockID  int32 `mc:"varint"`
}

func (BlockChange) PacketID() int32 { return 0x08 }

// BiomeChange rewrites the biome cell owning a single coordinate
// (clientbound 0x07). Location carries the changed coordinate itself,
// not the cell origin; the client derives the cell. Biome carries the
// name for clients that render labels without a registry lookup.
type BiomeChange struct {
	Location int64  `mc:"position"`
	BiomeID  int32  `mc:"varint"`
	Biome    string `mc:"string"`
}

func (BiomeChange) PacketID() int32 { return 0x07 }

// SpawnPosition tells the client where the world spawn is
// (clientbound 0x5A).
type SpawnPosition struct {
	Location int64   `mc:"position"`
	Angle    float32 `mc:"f32"`
}

func (SpawnPosition) PacketID() int32 { return 0x5A }

// AbilitiesCB sets the client's movement abilities (clientbound 0x38).
type AbilitiesCB struct {
	Flags        int8    `mc:"i8"`
	FlyingSpeed  float32 `mc:"f32"`
	WalkingSpeed float32 `mc:"f32"`
}

func (AbilitiesCB) PacketID() int32 { return 0x38 }

// PlayerAbility flag bits for AbilitiesCB.
const (
	AbilityInvulnerable int8 = 0x01
	AbilityFlying       int8 = 0x02
	AbilityAllowFlight  int8 = 0x04
	AbilityCreativeMode int8 = 0x08
)

// PositionAndLookCB teleports the client (clientbound 0x41).
type PositionAndLookCB struct {
	X          float64 `mc:"f64"`
	Y          float64 `mc:"f64"`
	Z          float64 `mc:"f64"`
	Yaw        float32 `mc:"f32"`
	Pitch      float32 `mc:"f32"`
	Flags      int8    `mc:"i8"`
	TeleportID int32   `mc:"varint"`
}

func (PositionAndLookCB) PacketID() int32 { return 0x41 }

// UpdateTime syncs the world clock (clientbound 0x64). A negative
// TimeOfDay freezes the client's day/night cycle.
type UpdateTime struct {
	WorldAge  int64 `mc:"i64"`
	TimeOfDay int64 `mc:"i64"`
}

func (UpdateTime) PacketID() int32 { return 0x64 }

// PlayerInfo announces players joining or leaving (clientbound 0x3D).
type PlayerInfo struct {
	Action uint8    `mc:"u8"`
	UUID   [16]byte `mc:"uuid"`
	Name   string   `mc:"string"`
	Ping   int32    `mc:"varint"`
}

func (PlayerInfo) PacketID() int32 { return 0x3D }

// TabCompleteCB returns completions for the client's current input
// (clientbound 0x0F). Start and Length locate the replaced span in
// the input.
type TabCompleteCB struct {
	TransactionID int32    `mc:"varint"`
	Start         int32    `mc:"varint"`
	Length        int32    `mc:"varint"`
	Matches       []string `mc:"stringarray"`
}

func (TabCompleteCB) PacketID() int32 { return 0x0F }

// PlayDisconnect kicks the client with a JSON reason (clientbound 0x1D).
type PlayDisconnect struct {
	Reason string `mc:"string"`
}

func (PlayDisconnect) PacketID() int32 { return 0x1D }

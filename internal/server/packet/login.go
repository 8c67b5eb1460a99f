package packet

// LoginStart is sent by the client with their username (serverbound 0x00
// in Login state).
type LoginStart struct {
	Name string   `mc:"string"`
	UUID [16]byte `mc:"uuid"`
}

func (LoginStart) PacketID() int32 { return 0x00 }

// LoginSuccess completes the login exchange (clientbound 0x02). The
// server assigns the UUID; offline-mode servers derive it from the
// username.
type LoginSuccess struct {
	UUID     [16]byte `mc:"uuid"`
	Username string   `mc:"string"`
}

func (LoginSuccess) PacketID() int32 { return 0x02 }

// SetCompression tells the client to compress packets at or above
// Threshold bytes (clientbound 0x03).
type SetCompression struct {
	Threshold int32 `mc:"varint"`
}

func (SetCompression) PacketID() int32 { return 0x03 }

// LoginAcknowledged confirms the client saw LoginSuccess (serverbound 0x03).
type LoginAcknowledged struct{}

func (LoginAcknowledged) PacketID() int32 { return 0x03 }

// LoginDisconnect rejects a client during login (clientbound 0x00).
type LoginDisconnect struct {
	Reason string `mc:"string"`
}

func (LoginDisconnect) PacketID() int32 { return 0x00 }

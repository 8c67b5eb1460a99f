package packet

// StatusRequest asks for the server list entry (serverbound 0x00 in
// Status state).
type StatusRequest struct{}

func (StatusRequest) PacketID() int32 { return 0x00 }

// StatusResponse carries the server list entry as JSON (clientbound
// 0x00 in Status state). Marshal a StatusInfo into JSONResponse.
type StatusResponse struct {
	JSONResponse string `mc:"string"`
}

func (StatusResponse) PacketID() int32 { return 0x00 }

// StatusPing is sent by the client with a timestamp (serverbound 0x01
// in Status state).
type StatusPing struct {
	Payload int64 `mc:"i64"`
}

func (StatusPing) PacketID() int32 { return 0x01 }

// StatusPong echoes the ping payload (clientbound 0x01 in Status state).
type StatusPong struct {
	Payload int64 `mc:"i64"`
}

func (StatusPong) PacketID() int32 { return 0x01 }

// StatusInfo is the server list document.
type StatusInfo struct {
	Version     StatusVersion `json:"version"`
	Players     StatusPlayers `json:"players"`
	Description StatusText    `json:"description"`
}

type StatusVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

type StatusPlayers struct {
	Max    int `json:"max"`
	Online int `json:"online"`
}

type StatusText struct {
	Text string `json:"text"`
}

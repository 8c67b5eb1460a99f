package protocol

import (
	"testing"
)

type testPacket struct {
	EntityID    int32  `mc:"i32"`
	GameMode    uint8  `mc:"u8"`
	Dimension   int8   `mc:"i8"`
	Difficulty  uint8  `mc:"u8"`
	MaxPlayers  uint8  `mc:"u8"`
	LevelType   string `mc:"string"`
	ReducedInfo bool   `mc:"bool"`
}

func (testPacket) PacketID() int32 { return 0x01 }

func TestMarshalUnmarshal(t *testing.T) {
	original := &testPacket{
		EntityID:    42,
		GameMode:    1,
		Dimension:   0,
		Difficulty:  1,
		MaxPlayers:  20,
		LevelType:   "default",
		ReducedInfo: false,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded := &testPacket{}
	if err := Unmarshal(data, decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if *original != *decoded {
		t.Errorf("round-trip mismatch:\n  got  %+v\n  want %+v", decoded, original)
	}
}

type testVarIntPacket struct {
	ProtocolVersion int32  `mc:"varint"`
	ServerAddress   string `mc:"string"`
	ServerPort      uint16 `mc:"u16"`
	NextState       int32  `mc:"varint"`
}

func (testVarIntPacket) PacketID() int32 { return 0x00 }

func TestMarshalVarInt(t *testing.T) {
	original := &testVarIntPacket{
		ProtocolVersion: 770,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       2,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded := &testVarIntPacket{}
	if err := Unmarshal(data, decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if *original != *decoded {
		t.Errorf("round-trip mismatch:\n  got  %+v\n  want %+v", decoded, original)
	}
}

type testChunkPacket struct {
	ChunkX   int32  `mc:"i32"`
	ChunkZ   int32  `mc:"i32"`
	Full     bool   `mc:"bool"`
	Sections uint32 `mc:"u32"`
	Data     []byte `mc:"bytearray"`
}

func (testChunkPacket) PacketID() int32 { return 0x21 }

func TestMarshalSectionMask(t *testing.T) {
	original := &testChunkPacket{
		ChunkX:   -3,
		ChunkZ:   7,
		Full:     true,
		Sections: 0x00FFFFFF, // all 24 sections present
		Data:     []byte{1, 2, 3, 4},
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded := &testChunkPacket{}
	if err := Unmarshal(data, decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.Sections != original.Sections {
		t.Errorf("Sections mismatch: got %#x, want %#x", decoded.Sections, original.Sections)
	}
	if string(decoded.Data) != string(original.Data) {
		t.Errorf("Data mismatch: got %x, want %x", decoded.Data, original.Data)
	}
}

type testRestPacket struct {
	ID   int32  `mc:"varint"`
	Data []byte `mc:"rest"`
}

func (testRestPacket) PacketID() int32 { return 0xFF }

func TestMarshalRest(t *testing.T) {
	original := &testRestPacket{
		ID:   5,
		Data: []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded := &testRestPacket{}
	if err := Unmarshal(data, decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if original.ID != decoded.ID {
		t.Errorf("ID mismatch: got %d, want %d", decoded.ID, original.ID)
	}
	if string(original.Data) != string(decoded.Data) {
		t.Errorf("Data mismatch: got %x, want %x", decoded.Data, original.Data)
	}
}

type testCompletionPacket struct {
	TransactionID int32    `mc:"varint"`
	Matches       []string `mc:"stringarray"`
}

func (testCompletionPacket) PacketID() int32 { return 0x0F }

func TestMarshalStringArray(t *testing.T) {
	original := &testCompletionPacket{
		TransactionID: 3,
		Matches:       []string{"plains", "desert", "dark_forest"},
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded := &testCompletionPacket{}
	if err := Unmarshal(data, decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.TransactionID != original.TransactionID {
		t.Errorf("TransactionID mismatch: got %d, want %d", decoded.TransactionID, original.TransactionID)
	}
	if len(decoded.Matches) != len(original.Matches) {
		t.Fatalf("Matches length = %d, want %d", len(decoded.Matches), len(original.Matches))
	}
	for i := range original.Matches {
		if decoded.Matches[i] != original.Matches[i] {
			t.Errorf("Matches[%d] = %q, want %q", i, decoded.Matches[i], original.Matches[i])
		}
	}

	empty := &testCompletionPacket{TransactionID: 1, Matches: []string{}}
	data, err = Marshal(empty)
	if err != nil {
		t.Fatalf("Marshal empty: %v", err)
	}
	decoded = &testCompletionPacket{}
	if err := Unmarshal(data, decoded); err != nil {
		t.Fatalf("Unmarshal empty: %v", err)
	}
	if len(decoded.Matches) != 0 {
		t.Errorf("empty Matches round-trip = %v, want empty", decoded.Matches)
	}
}

type testPosPacket struct {
	Location int64 `mc:"position"`
}

func (testPosPacket) PacketID() int32 { return 0x08 }

func TestMarshalPosition(t *testing.T) {
	original := &testPosPacket{Location: EncodePosition(-120, -64, 901)}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded := &testPosPacket{}
	if err := Unmarshal(data, decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	x, y, z := DecodePosition(decoded.Location)
	if x != -120 || y != -64 || z != 901 {
		t.Errorf("decoded position = (%d,%d,%d), want (-120,-64,901)", x, y, z)
	}
}

package protocol

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

type Packet interface {
	PacketID() int32
}

func ReadRawPacket(r io.Reader) (packetID int32, data []byte, err error) {
	length, _, err := ReadVarInt(r)
	if err != nil {
		return 0, nil, fmt.Errorf("read packet length: %w", err)
	}
	if length < 1 {
		return 0, nil, fmt.Errorf("packet length too small: %d", length)
	}
	if length > 1<<21 { // 2MB max
		return 0, nil, fmt.Errorf("packet too large: %d bytes", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, fmt.Errorf("read packet payload: %w", err)
	}

	buf := bytes.NewReader(payload)
	packetID, _, err = ReadVarInt(buf)
	if err != nil {
		return 0, nil, fmt.Errorf("read packet ID: %w", err)
	}

	remaining := make([]byte, buf.Len())
	if _, err := io.ReadFull(buf, remaining); err != nil {
		return 0, nil, fmt.Errorf("read packet data: %w", err)
	}

	return packetID, remaining, nil
}

func WriteRawPacket(w io.Writer, packetID int32, data []byte) error {
	idSize := VarIntSize(packetID)
	totalLen := idSize + len(data)

	var buf bytes.Buffer
	buf.Grow(VarIntSize(int32(totalLen)) + totalLen)

	if _, err := WriteVarInt(&buf, int32(totalLen)); err != nil {
		return fmt.Errorf("write packet length: %w", err)
	}
	if _, err := WriteVarInt(&buf, packetID); err != nil {
		return fmt.Errorf("write packet ID: %w", err)
	}
	if _, err := buf.Write(data); err != nil {
		return fmt.Errorf("write packet data: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("flush packet: %w", err)
	}
	return nil
}

// ReadRawPacketZlib reads a packet in the compressed frame format:
// frame length, uncompressed body length (0 means the body was sent
// raw because it fell below the peer's threshold), body.
func ReadRawPacketZlib(r io.Reader) (packetID int32, data []byte, err error) {
	length, _, err := ReadVarInt(r)
	if err != nil {
		return 0, nil, fmt.Errorf("read packet length: %w", err)
	}
	if length < 1 {
		return 0, nil, fmt.Errorf("packet length too small: %d", length)
	}
	if length > 1<<21 {
		return 0, nil, fmt.Errorf("packet too large: %d bytes", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, fmt.Errorf("read packet payload: %w", err)
	}

	buf := bytes.NewReader(payload)
	dataLength, _, err := ReadVarInt(buf)
	if err != nil {
		return 0, nil, fmt.Errorf("read data length: %w", err)
	}
	if dataLength < 0 || dataLength > 1<<21 {
		return 0, nil, fmt.Errorf("uncompressed length out of range: %d", dataLength)
	}

	var body io.Reader = buf
	if dataLength > 0 {
		zr, err := zlib.NewReader(buf)
		if err != nil {
			return 0, nil, fmt.Errorf("open zlib body: %w", err)
		}
		defer zr.Close()
		body = io.LimitReader(zr, int64(dataLength))
	}

	packetID, _, err = ReadVarInt(body)
	if err != nil {
		return 0, nil, fmt.Errorf("read packet ID: %w", err)
	}
	data, err = io.ReadAll(body)
	if err != nil {
		return 0, nil, fmt.Errorf("read packet data: %w", err)
	}

	return packetID, data, nil
}

// WriteRawPacketZlib writes a packet in the compressed frame format,
// deflating the body only once it reaches threshold bytes.
func WriteRawPacketZlib(w io.Writer, packetID int32, data []byte, threshold int) error {
	uncompressed := VarIntSize(packetID) + len(data)

	var body bytes.Buffer
	var dataLength int32
	if uncompressed >= threshold {
		dataLength = int32(uncompressed)
		zw := zlib.NewWriter(&body)
		if _, err := WriteVarInt(zw, packetID); err != nil {
			return fmt.Errorf("write packet ID: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("write packet data: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close zlib body: %w", err)
		}
	} else {
		if _, err := WriteVarInt(&body, packetID); err != nil {
			return fmt.Errorf("write packet ID: %w", err)
		}
		if _, err := body.Write(data); err != nil {
			return fmt.Errorf("write packet data: %w", err)
		}
	}

	totalLen := VarIntSize(dataLength) + body.Len()

	var buf bytes.Buffer
	buf.Grow(VarIntSize(int32(totalLen)) + totalLen)

	if _, err := WriteVarInt(&buf, int32(totalLen)); err != nil {
		return fmt.Errorf("write packet length: %w", err)
	}
	if _, err := WriteVarInt(&buf, dataLength); err != nil {
		return fmt.Errorf("write data length: %w", err)
	}
	if _, err := buf.Write(body.Bytes()); err != nil {
		return fmt.Errorf("write packet body: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("flush packet: %w", err)
	}
	return nil
}

func WritePacket(w io.Writer, p Packet) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal packet 0x%02X: %w", p.PacketID(), err)
	}
	return WriteRawPacket(w, p.PacketID(), data)
}

func WritePacketZlib(w io.Writer, p Packet, threshold int) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal packet 0x%02X: %w", p.PacketID(), err)
	}
	return WriteRawPacketZlib(w, p.PacketID(), data, threshold)
}

func ReadPacket(r io.Reader, p Packet) error {
	packetID, data, err := ReadRawPacket(r)
	if err != nil {
		return err
	}
	if packetID != p.PacketID() {
		return fmt.Errorf("expected packet 0x%02X, got 0x%02X", p.PacketID(), packetID)
	}
	return Unmarshal(data, p)
}

func ReadPacketZlib(r io.Reader, p Packet) error {
	packetID, data, err := ReadRawPacketZlib(r)
	if err != nil {
		return err
	}
	if packetID != p.PacketID() {
		return fmt.Errorf("expected packet 0x%02X, got 0x%02X", p.PacketID(), packetID)
	}
	return Unmarshal(data, p)
}

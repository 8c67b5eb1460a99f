package storage

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/klauspost/compress/zstd"

	"github.com/biomecraft/server/internal/server/world/gen"
)

// Chunk blob layout, little endian, zstd-compressed as a whole:
//
//	u8  codec version
//	i32 bottom of the Y range
//	u8  section count
//	u32 populated-section bitmask, bit 0 = bottom section
//	per populated section: 4096 u16 blocks, 64 u16 biome cells
const chunkCodecVersion = 1

const (
	chunkHeaderBytes = 10
	sectionBytes     = (4096 + 64) * 2
)

// Shared coders; NewWriter and NewReader only fail on bad options.
var (
	zstdEnc, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDec, _ = zstd.NewReader(nil)
)

func encodeChunk(c *gen.ChunkData) []byte {
	r := c.Range()
	mask := c.SectionMask()

	raw := make([]byte, 0, chunkHeaderBytes+bits.OnesCount32(mask)*sectionBytes)
	raw = append(raw, chunkCodecVersion)
	raw = binary.LittleEndian.AppendUint32(raw, uint32(int32(r.Min())))
	raw = append(raw, byte(r.SectionCount()))
	raw = binary.LittleEndian.AppendUint32(raw, mask)

	for i := 0; i < r.SectionCount(); i++ {
		s := c.Section(i)
		if s == nil {
			continue
		}
		for _, v := range s.Blocks {
			raw = binary.LittleEndian.AppendUint16(raw, v)
		}
		for _, v := range s.Biomes {
			raw = binary.LittleEndian.AppendUint16(raw, v)
		}
	}

	return zstdEnc.EncodeAll(raw, nil)
}

func decodeChunk(blob []byte) (*gen.ChunkData, error) {
	raw, err := zstdDec.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress chunk: %w", err)
	}
	if len(raw) < chunkHeaderBytes {
		return nil, fmt.Errorf("chunk blob truncated: %d bytes", len(raw))
	}
	if raw[0] != chunkCodecVersion {
		return nil, fmt.Errorf("unsupported chunk codec version %d", raw[0])
	}

	min := int(int32(binary.LittleEndian.Uint32(raw[1:5])))
	count := int(raw[5])
	mask := binary.LittleEndian.Uint32(raw[6:10])

	want := chunkHeaderBytes + bits.OnesCount32(mask)*sectionBytes
	if len(raw) != want {
		return nil, fmt.Errorf("chunk blob size %d, want %d", len(raw), want)
	}

	c := gen.NewChunkData(gen.Range{min, min + count*16 - 1})
	off := chunkHeaderBytes
	for i := 0; i < count; i++ {
		if mask&(1<<i) == 0 {
			continue
		}
		s := c.SectionFor(min + i*16)
		for j := range s.Blocks {
			s.Blocks[j] = binary.LittleEndian.Uint16(raw[off:])
			off += 2
		}
		for j := range s.Biomes {
			s.Biomes[j] = binary.LittleEndian.Uint16(raw[off:])
			off += 2
		}
	}
	return c, nil
}

package world

import (
	"encoding/binary"

	"github.com/biomecraft/server/internal/server/packet"
)

const (
	sectionBlockBytes = 16 * 16 * 16 * 2 // 8192 bytes: 4096 blocks × 2 bytes each
	sectionBiomeBytes = 4 * 4 * 4 * 2    // 128 bytes: 64 biome cells × 2 bytes each
)

// EncodeChunk encodes a chunk into a ChunkData packet. Every populated
// section contributes its 4096 block states followed by its 64 biome
// cells, both little-endian uint16, bottom section first.
func (w *World) EncodeChunk(cx, cz int) packet.ChunkData {
	chunk := w.GetOrGenerateChunk(cx, cz)

	w.mu.RLock()
	defer w.mu.RUnlock()

	mask := chunk.SectionMask()

	// If no sections exist at all, send at least section 0 so the client has something.
	if mask == 0 {
		mask = 0x0001
	}

	sectionCount := 0
	total := chunk.Range().SectionCount()
	for i := 0; i < total; i++ {
		if mask&(1<<uint(i)) != 0 {
			sectionCount++
		}
	}

	data := make([]byte, 0, sectionCount*(sectionBlockBytes+sectionBiomeBytes))

	for i := 0; i < total; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		body := make([]byte, sectionBlockBytes+sectionBiomeBytes)
		if sec := chunk.Section(i); sec != nil {
			for idx := 0; idx < 4096; idx++ {
				binary.LittleEndian.PutUint16(body[idx*2:], sec.Blocks[idx])
			}
			for idx := 0; idx < 64; idx++ {
				binary.LittleEndian.PutUint16(body[sectionBlockBytes+idx*2:], sec.Biomes[idx])
			}
		}
		data = append(data, body...)
	}

	return packet.ChunkData{
		X:        int32(cx),
		Z:        int32(cz),
		Full:     true,
		Sections: mask,
		Data:     data,
	}
}

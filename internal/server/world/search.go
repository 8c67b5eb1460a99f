package world

import "github.com/biomecraft/server/internal/server/world/gen"

// FindNearestBiome scans outward from origin in square rings of step
// granularity and returns the first position whose biome satisfies
// match, up to radius blocks away on each horizontal axis. The origin
// itself is checked first. Sampling happens at origin's height and
// never loads chunks: loaded chunks answer from their stored cells,
// everything else from the generator.
func (w *World) FindNearestBiome(origin BlockPos, radius, step int, match func(uint16) bool) (BlockPos, bool) {
	if step < 1 {
		step = 1
	}
	rings := radius / step
	for ring := 0; ring <= rings; ring++ {
		for dz := -ring; dz <= ring; dz++ {
			edge := dz == -ring || dz == ring
			for dx := -ring; dx <= ring; dx++ {
				if !edge && dx != -ring && dx != ring {
					continue
				}
				pos := BlockPos{X: origin.X + dx*step, Y: origin.Y, Z: origin.Z + dz*step}
				if match(w.sampleBiome(pos)) {
					return pos, true
				}
			}
		}
	}
	return BlockPos{}, false
}

// sampleBiome reads the biome at pos without generating chunks.
func (w *World) sampleBiome(pos BlockPos) uint16 {
	w.mu.RLock()
	if c, ok := w.chunks[gen.ChunkPos{X: pos.X >> 4, Z: pos.Z >> 4}]; ok {
		if b, stored := c.Biome(pos.X&0xF, pos.Y, pos.Z&0xF); stored {
			w.mu.RUnlock()
			return b
		}
	}
	w.mu.RUnlock()
	return w.generator.BiomeAt(pos.X, pos.Y, pos.Z)
}

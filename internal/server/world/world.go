package world

import (
	"sync"

	"github.com/biomecraft/server/internal/server/world/gen"
	"github.com/biomecraft/server/pkg/gamedata"
)

// BlockPos represents a block position in the world.
type BlockPos struct {
	X, Y, Z int
}

// Chunk wraps generated data with its save state. The unsaved flag is
// raised on every mutation and lowered once storage has written the
// chunk out.
type Chunk struct {
	*gen.ChunkData
	unsaved bool
}

// Config describes a world to create.
type Config struct {
	// Dimension selects the vertical range: "overworld", "nether" or
	// "end".
	Dimension string
	Seed      int64
	Generator gen.Generator
	Registry  gamedata.BiomeRegistry
	// Authoritative is false for client-side replicas that mirror a
	// remote world and must not originate changes.
	Authoritative bool
}

// World tracks chunk state with a generator for base terrain. Loaded
// chunks carry both their blocks and their biome cells; positions in
// chunks that were never loaded fall back to the generator.
type World struct {
	mu        sync.RWMutex
	generator gen.Generator
	chunks    map[gen.ChunkPos]*Chunk
	reg       gamedata.BiomeRegistry
	dimension string
	r         gen.Range
	seed      int64
	authority bool

	age       int64
	timeOfDay int64
}

// New creates a World from cfg.
func New(cfg Config) *World {
	r := gen.OverworldRange
	dim := cfg.Dimension
	switch dim {
	case "nether":
		r = gen.NetherRange
	case "end":
		r = gen.EndRange
	case "":
		dim = "overworld"
	}
	return &World{
		generator: cfg.Generator,
		chunks:    make(map[gen.ChunkPos]*Chunk),
		reg:       cfg.Registry,
		dimension: dim,
		r:         r,
		seed:      cfg.Seed,
		authority: cfg.Authoritative,
	}
}

func (w *World) Dimension() string { return w.dimension }

func (w *World) Range() gen.Range { return w.r }

func (w *World) Seed() int64 { return w.seed }

func (w *World) Authoritative() bool { return w.authority }

func (w *World) Registry() gamedata.BiomeRegistry { return w.reg }

// PossibleBiomes lists every biome the terrain source can emit.
func (w *World) PossibleBiomes() []uint16 {
	return w.generator.PossibleBiomes()
}

// GetOrGenerateChunk returns the Chunk for the given chunk
// coordinates, generating and caching it if needed.
func (w *World) GetOrGenerateChunk(cx, cz int) *Chunk {
	pos := gen.ChunkPos{X: cx, Z: cz}

	w.mu.RLock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	data := w.generator.Generate(cx, cz)

	w.mu.Lock()
	// Double-check after acquiring write lock.
	if existing, ok := w.chunks[pos]; ok {
		w.mu.Unlock()
		return existing
	}
	c := &Chunk{ChunkData: data}
	w.chunks[pos] = c
	w.mu.Unlock()
	return c
}

// LoadedChunk returns the cached chunk, or nil when it was never
// loaded. It never generates.
func (w *World) LoadedChunk(cx, cz int) *Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.chunks[gen.ChunkPos{X: cx, Z: cz}]
}

// PutChunk installs restored chunk data, replacing whatever the cache
// holds. The chunk starts out clean.
func (w *World) PutChunk(cx, cz int, data *gen.ChunkData) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.chunks[gen.ChunkPos{X: cx, Z: cz}] = &Chunk{ChunkData: data}
}

// ChunkCount returns the number of loaded chunks.
func (w *World) ChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// GetBlock returns the block state ID at the given position.
func (w *World) GetBlock(x, y, z int) int32 {
	if !w.r.Contains(y) {
		return 0
	}
	c := w.GetOrGenerateChunk(x>>4, z>>4)

	w.mu.RLock()
	defer w.mu.RUnlock()
	return int32(c.Block(x&0xF, y, z&0xF))
}

// SetBlock writes a block state into the owning chunk and marks it
// unsaved.
func (w *World) SetBlock(x, y, z int, stateID int32) {
	if !w.r.Contains(y) {
		return
	}
	c := w.GetOrGenerateChunk(x>>4, z>>4)

	w.mu.Lock()
	defer w.mu.Unlock()
	c.SetBlock(x&0xF, y, z&0xF, uint16(stateID))
	c.unsaved = true
}

// BiomeAt returns the biome at the given position: the stored cell
// when the owning chunk is loaded and holds data there, otherwise
// whatever the generator would place. It never loads chunks.
func (w *World) BiomeAt(x, y, z int) uint16 {
	return w.sampleBiome(BlockPos{X: x, Y: y, Z: z})
}

// SetBiomeAt writes biome into the 4×4×4 cell owning pos, loading the
// chunk and allocating the section as needed, and marks the chunk
// unsaved. A freshly allocated section is seeded with the generator's
// biomes first, so only the owning cell changes. Reports whether a
// cell was written; pos.Y outside the world's range is a no-op.
func (w *World) SetBiomeAt(pos BlockPos, biome uint16) bool {
	if !w.r.Contains(pos.Y) {
		return false
	}
	c := w.GetOrGenerateChunk(pos.X>>4, pos.Z>>4)

	w.mu.Lock()
	defer w.mu.Unlock()
	sec := c.SectionAt(pos.Y)
	if sec == nil {
		sec = c.SectionFor(pos.Y)
		w.seedBiomes(sec, pos)
	}
	sec.SetBiome(pos.X&0xF, (pos.Y-w.r.Min())&0xF, pos.Z&0xF, biome)
	c.unsaved = true
	return true
}

// seedBiomes fills a freshly allocated section's biome cells with the
// generator's values. Caller holds w.mu.
func (w *World) seedBiomes(sec *gen.Section, pos BlockPos) {
	baseX := pos.X &^ 0xF
	baseZ := pos.Z &^ 0xF
	baseY := w.r.Min() + w.r.SectionIndex(pos.Y)*16
	for cy := 0; cy < 4; cy++ {
		for cz := 0; cz < 4; cz++ {
			for cx := 0; cx < 4; cx++ {
				sec.Biomes[cy*16+cz*4+cx] = w.generator.BiomeAt(baseX+cx*4, baseY+cy*4, baseZ+cz*4)
			}
		}
	}
}

// UnsavedChunks snapshots the positions and data of every dirty chunk.
func (w *World) UnsavedChunks() map[gen.ChunkPos]*gen.ChunkData {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make(map[gen.ChunkPos]*gen.ChunkData)
	for pos, c := range w.chunks {
		if c.unsaved {
			out[pos] = c.ChunkData
		}
	}
	return out
}

// MarkSaved lowers the dirty flag after storage has written the chunk.
func (w *World) MarkSaved(pos gen.ChunkPos) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.chunks[pos]; ok {
		c.unsaved = false
	}
}

// PreGenerateRadius generates all chunks in a square radius around the
// origin and returns how many chunks the world now holds in that area.
func (w *World) PreGenerateRadius(radius int) int {
	count := 0
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			w.GetOrGenerateChunk(cx, cz)
			count++
		}
	}
	return count
}

// SpawnHeight returns the terrain height at spawn (0, 0) + 1 for the
// player to stand on.
func (w *World) SpawnHeight() int {
	return w.generator.HeightAt(0, 0) + 1
}

// Tick advances the world age by one and the time of day unless it is
// frozen (negative). Returns the new values.
func (w *World) Tick() (age, timeOfDay int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.age++
	if w.timeOfDay >= 0 {
		w.timeOfDay = (w.timeOfDay + 1) % 24000
	}
	return w.age, w.timeOfDay
}

// GetTime returns the world age and time of day in ticks.
func (w *World) GetTime() (age, timeOfDay int64) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.age, w.timeOfDay
}

// SetTime sets both the world age and the time of day.
func (w *World) SetTime(age, timeOfDay int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.age = age
	w.timeOfDay = timeOfDay
}

// SetTimeOfDay sets the time of day. Negative values freeze the
// day/night cycle at -value.
func (w *World) SetTimeOfDay(timeOfDay int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timeOfDay = timeOfDay
}

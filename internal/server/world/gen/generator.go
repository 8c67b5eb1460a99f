package gen

// ChunkPos identifies a chunk by its X and Z coordinates.
type ChunkPos struct{ X, Z int }

// Range is the inclusive vertical span of a dimension in blocks.
type Range [2]int

var (
	OverworldRange = Range{-64, 319}
	NetherRange    = Range{0, 255}
	EndRange       = Range{0, 255}
)

func (r Range) Min() int { return r[0] }

func (r Range) Max() int { return r[1] }

// Height is the number of blocks in the range.
func (r Range) Height() int { return r[1] - r[0] + 1 }

func (r Range) SectionCount() int { return r.Height() >> 4 }

// SectionIndex maps a world Y to a section slot, 0 at the bottom of
// the range. The result is only valid for Y inside the range.
func (r Range) SectionIndex(y int) int { return (y - r[0]) >> 4 }

func (r Range) Contains(y int) bool { return y >= r[0] && y <= r[1] }

// Section holds block and biome data for a 16×16×16 slice of a chunk.
// Block index = y*256 + z*16 + x, value = blockID<<4 | metadata.
// Biomes are stored per 4×4×4 cell, index = y*16 + z*4 + x in cell
// coordinates.
type Section struct {
	Blocks [4096]uint16
	Biomes [64]uint16
}

// Block returns the block state at section-local coordinates in [0,16).
func (s *Section) Block(x, y, z int) uint16 {
	return s.Blocks[y*256+z*16+x]
}

// SetBlock sets the block state at section-local coordinates in [0,16).
func (s *Section) SetBlock(x, y, z int, state uint16) {
	s.Blocks[y*256+z*16+x] = state
}

// Biome returns the biome of the cell containing the section-local
// coordinates.
func (s *Section) Biome(x, y, z int) uint16 {
	return s.Biomes[(y>>2)*16+(z>>2)*4+(x>>2)]
}

// SetBiome overwrites the biome cell containing the section-local
// coordinates. All 64 blocks of the cell change biome together.
func (s *Section) SetBiome(x, y, z int, biome uint16) {
	s.Biomes[(y>>2)*16+(z>>2)*4+(x>>2)] = biome
}

// ChunkData holds the terrain for one chunk column. Sections are
// indexed from the bottom of the range; nil means all-air with no
// stored biomes.
type ChunkData struct {
	r        Range
	sections []*Section
}

// NewChunkData creates an empty column spanning r.
func NewChunkData(r Range) *ChunkData {
	return &ChunkData{
		r:        r,
		sections: make([]*Section, r.SectionCount()),
	}
}

func (c *ChunkData) Range() Range { return c.r }

// Section returns the section at slot i, or nil.
func (c *ChunkData) Section(i int) *Section {
	if i < 0 || i >= len(c.sections) {
		return nil
	}
	return c.sections[i]
}

// SectionAt returns the section owning world Y, or nil when Y is
// outside the range or the section was never written.
func (c *ChunkData) SectionAt(y int) *Section {
	if !c.r.Contains(y) {
		return nil
	}
	return c.sections[c.r.SectionIndex(y)]
}

// SectionFor returns the section owning world Y, allocating it on
// first write. Returns nil when Y is outside the range.
func (c *ChunkData) SectionFor(y int) *Section {
	if !c.r.Contains(y) {
		return nil
	}
	i := c.r.SectionIndex(y)
	if c.sections[i] == nil {
		c.sections[i] = &Section{}
	}
	return c.sections[i]
}

// SetBlock sets a block state at local x, z in [0,16) and world Y.
func (c *ChunkData) SetBlock(x, y, z int, state uint16) {
	if !c.r.Contains(y) {
		return
	}
	i := c.r.SectionIndex(y)
	if c.sections[i] == nil {
		if state == 0 {
			return
		}
		c.sections[i] = &Section{}
	}
	c.sections[i].SetBlock(x, (y-c.r[0])&0xF, z, state)
}

// Block returns the block state at local x, z in [0,16) and world Y.
func (c *ChunkData) Block(x, y, z int) uint16 {
	s := c.SectionAt(y)
	if s == nil {
		return 0
	}
	return s.Block(x, (y-c.r[0])&0xF, z)
}

// SetBiome overwrites the biome cell at local x, z in [0,16) and
// world Y, allocating the owning section if needed.
func (c *ChunkData) SetBiome(x, y, z int, biome uint16) {
	s := c.SectionFor(y)
	if s == nil {
		return
	}
	s.SetBiome(x, (y-c.r[0])&0xF, z, biome)
}

// Biome returns the stored biome at local x, z in [0,16) and world Y.
// ok is false when no section holds data for that position.
func (c *ChunkData) Biome(x, y, z int) (biome uint16, ok bool) {
	s := c.SectionAt(y)
	if s == nil {
		return 0, false
	}
	return s.Biome(x, (y-c.r[0])&0xF, z), true
}

// SectionMask returns a bitmask of the populated sections, bit 0 for
// the bottom of the range.
func (c *ChunkData) SectionMask() uint32 {
	var mask uint32
	for i, s := range c.sections {
		if s != nil {
			mask |= 1 << i
		}
	}
	return mask
}

// Generator produces chunk data deterministically from a seed.
type Generator interface {
	Generate(chunkX, chunkZ int) *ChunkData
	HeightAt(blockX, blockZ int) int
	// BiomeAt returns the biome the generator would place at the
	// given world coordinates, without generating the chunk.
	BiomeAt(blockX, blockY, blockZ int) uint16
	// PossibleBiomes lists every biome ID the generator can emit.
	PossibleBiomes() []uint16
}

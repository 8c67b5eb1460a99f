package gen

const (
	blockAir       = 0
	blockStone     = 1
	blockGrass     = 2
	blockDirt      = 3
	blockBedrock   = 7
	blockWater     = 9 // stationary water
	blockSand      = 12
	blockGravel    = 13
	blockSandstone = 24

	seaLevel = 62
)

// FlatGenerator generates a classic superflat world: bedrock on the
// bottom of the range, stone, stone, dirt, grass. Every column is
// plains.
type FlatGenerator struct {
	r Range
}

// NewFlatGenerator creates a FlatGenerator for the given range.
func NewFlatGenerator(r Range, _ int64) *FlatGenerator {
	return &FlatGenerator{r: r}
}

func (g *FlatGenerator) Generate(_, _ int) *ChunkData {
	c := NewChunkData(g.r)
	min := g.r.Min()

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			c.SetBlock(x, min, z, blockBedrock<<4)
			c.SetBlock(x, min+1, z, blockStone<<4)
			c.SetBlock(x, min+2, z, blockStone<<4)
			c.SetBlock(x, min+3, z, blockDirt<<4)
			c.SetBlock(x, min+4, z, blockGrass<<4)
		}
	}

	if s := c.SectionAt(min); s != nil {
		for i := range s.Biomes {
			s.Biomes[i] = biomePlains
		}
	}
	return c
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.r.Min() + 4 // top solid block is the grass layer
}

func (g *FlatGenerator) BiomeAt(_, _, _ int) uint16 {
	return biomePlains
}

func (g *FlatGenerator) PossibleBiomes() []uint16 {
	return []uint16{biomePlains}
}

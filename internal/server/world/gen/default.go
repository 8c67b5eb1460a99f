package gen

import "github.com/aquilax/go-perlin"

// DefaultGenerator produces vanilla-like terrain with biome-driven
// height and surface blocks.
type DefaultGenerator struct {
	r       Range
	terrain *perlin.Perlin
	detail  *perlin.Perlin
	biomes  *BiomeSource
}

// NewDefaultGenerator creates a DefaultGenerator from a seed.
func NewDefaultGenerator(r Range, seed int64) *DefaultGenerator {
	return &DefaultGenerator{
		r:       r,
		terrain: perlin.NewPerlin(2, 2, 3, seed),
		detail:  perlin.NewPerlin(2, 2, 2, seed+1),
		biomes:  NewBiomeSource(seed),
	}
}

func (g *DefaultGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	c := NewChunkData(g.r)

	// Pass 1: heightmap, terrain blocks.
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			bx := chunkX*16 + x
			bz := chunkZ*16 + z

			biome := g.biomes.BiomeAt(bx, seaLevel, bz)
			height := g.columnHeight(bx, bz, biome)
			g.fillColumn(c, x, z, height, biome)
		}
	}

	// Pass 2: biome cells for every populated section.
	for i, s := range c.sections {
		if s == nil {
			continue
		}
		baseY := c.r.Min() + i*16
		for cy := 0; cy < 4; cy++ {
			for cz := 0; cz < 4; cz++ {
				for cx := 0; cx < 4; cx++ {
					b := g.biomes.BiomeAt(chunkX*16+cx*4, baseY+cy*4, chunkZ*16+cz*4)
					s.Biomes[cy*16+cz*4+cx] = b
				}
			}
		}
	}

	return c
}

func (g *DefaultGenerator) HeightAt(blockX, blockZ int) int {
	biome := g.biomes.BiomeAt(blockX, seaLevel, blockZ)
	return g.columnHeight(blockX, blockZ, biome)
}

func (g *DefaultGenerator) BiomeAt(blockX, blockY, blockZ int) uint16 {
	return g.biomes.BiomeAt(blockX, blockY, blockZ)
}

func (g *DefaultGenerator) PossibleBiomes() []uint16 {
	return g.biomes.Possible()
}

// terrainHeight computes the coarse terrain height from the shared
// terrain noise field. BiomeSource samples the same field so ocean
// and peak placement track the actual coastline.
func terrainHeight(terrain *perlin.Perlin, bx, bz int) int {
	nx := float64(bx) / 256.0
	nz := float64(bz) / 256.0
	base := terrain.Noise2D(nx, nz)
	ridge := terrain.Noise2D(nx*4+50, nz*4+50)
	return int(66 + base*56 + ridge*10)
}

// columnHeight layers biome-scaled detail noise on top of the coarse
// terrain field.
func (g *DefaultGenerator) columnHeight(bx, bz int, biome uint16) int {
	base := terrainHeight(g.terrain, bx, bz)

	dx := float64(bx) / 32.0
	dz := float64(bz) / 32.0
	detail := g.detail.Noise2D(dx, dz)

	h := base + int(detail*biomeDetailAmplitude(biome))

	// Rivers carve below sea level no matter the surrounding terrain.
	if biome == biomeRiver || biome == biomeFrozenRiver {
		if h > seaLevel-3 {
			h = seaLevel - 3
		}
	}

	if h < g.r.Min()+8 {
		h = g.r.Min() + 8
	}
	if h > 250 {
		h = 250
	}
	return h
}

// biomeDetailAmplitude returns the detail noise scale for a biome.
func biomeDetailAmplitude(biome uint16) float64 {
	switch biome {
	case biomeOcean, biomeDeepOcean:
		return 4.0
	case biomeBeach, biomeRiver, biomeFrozenRiver:
		return 2.0
	case biomePlains, biomeSavanna, biomeDesert, biomeSnowyPlains:
		return 4.0
	case biomeForest, biomeDarkForest:
		return 6.0
	case biomeTaiga, biomeSnowyTaiga, biomeJungle:
		return 7.0
	case biomeWindsweptHills:
		return 12.0
	case biomeJaggedPeaks, biomeStonyPeaks:
		return 16.0
	default:
		return 5.0
	}
}

// fillColumn fills a single block column with terrain blocks.
func (g *DefaultGenerator) fillColumn(c *ChunkData, x, z, height int, biome uint16) {
	min := c.Range().Min()

	// Bedrock: bottom layer always, the next three randomized.
	c.SetBlock(x, min, z, blockBedrock<<4)
	for y := min + 1; y <= min+3; y++ {
		bx := x + (y-min)*7 // cheap variation
		if g.terrain.Noise2D(float64(bx)*0.5, float64(z)*0.5) > 0.0 {
			c.SetBlock(x, y, z, blockBedrock<<4)
		} else {
			c.SetBlock(x, y, z, blockStone<<4)
		}
	}

	// Stone fill up to the surface layers.
	surfaceDepth := surfaceLayerDepth(biome)
	stoneTop := height - surfaceDepth
	if stoneTop < min+4 {
		stoneTop = min + 4
	}
	for y := min + 4; y <= stoneTop && y <= height; y++ {
		c.SetBlock(x, y, z, blockStone<<4)
	}

	applySurface(c, x, z, height, biome)

	// Water fill where terrain dips below sea level.
	if height < seaLevel {
		for y := height + 1; y <= seaLevel; y++ {
			c.SetBlock(x, y, z, blockWater<<4)
		}
	}
}

// surfaceLayerDepth returns how many blocks of surface material go
// below the top block.
func surfaceLayerDepth(biome uint16) int {
	switch biome {
	case biomeDesert:
		return 5 // deep sand
	default:
		return 4
	}
}

package gen

import "github.com/aquilax/go-perlin"

// Biome IDs matching the pc-1.21 registry.
const (
	biomeOcean          uint16 = 35
	biomeDeepOcean      uint16 = 13
	biomeBeach          uint16 = 3
	biomeRiver          uint16 = 40
	biomeFrozenRiver    uint16 = 24
	biomePlains         uint16 = 39
	biomeForest         uint16 = 21
	biomeDarkForest     uint16 = 8
	biomeTaiga          uint16 = 54
	biomeSnowyTaiga     uint16 = 47
	biomeSnowyPlains    uint16 = 45
	biomeSavanna        uint16 = 41
	biomeJungle         uint16 = 28
	biomeDesert         uint16 = 14
	biomeWindsweptHills uint16 = 61
	biomeJaggedPeaks    uint16 = 27
	biomeStonyPeaks     uint16 = 50
	biomeDripstoneCaves uint16 = 15
	biomeLushCaves      uint16 = 30
	biomeDeepDark       uint16 = 10
)

// BiomeSource selects biomes using temperature/rainfall noise fields
// plus the terrain field for ocean and peak placement. It shares the
// terrain seed with DefaultGenerator so coastlines line up.
type BiomeSource struct {
	temp    *perlin.Perlin
	rain    *perlin.Perlin
	ridge   *perlin.Perlin
	terrain *perlin.Perlin
}

// NewBiomeSource creates a BiomeSource from a seed.
func NewBiomeSource(seed int64) *BiomeSource {
	return &BiomeSource{
		temp:    perlin.NewPerlin(2, 2, 3, seed+100),
		rain:    perlin.NewPerlin(2, 2, 3, seed+200),
		ridge:   perlin.NewPerlin(2, 2, 2, seed+300),
		terrain: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// BiomeAt returns the biome ID at the given world block coordinates.
// Depths below the cave threshold get cave biomes regardless of the
// surface climate.
func (bs *BiomeSource) BiomeAt(bx, by, bz int) uint16 {
	tx := float64(bx) / 512.0
	tz := float64(bz) / 512.0
	temp := bs.temp.Noise2D(tx, tz)*1.1 + 0.75 // center around 0.75
	rain := bs.rain.Noise2D(tx+100, tz+100)*0.7 + 0.5

	if by < caveDepth {
		return selectCaveBiome(by, rain)
	}

	// Very low terrain becomes ocean, a narrow band above it beach.
	height := terrainHeight(bs.terrain, bx, bz)
	switch {
	case height < seaLevel-24:
		return biomeDeepOcean
	case height < seaLevel-8:
		return biomeOcean
	case height < seaLevel-2:
		return biomeBeach
	}

	// Ridged noise carves rivers through any land biome.
	ridge := bs.ridge.Noise2D(float64(bx)/384.0, float64(bz)/384.0)
	if ridge > -0.025 && ridge < 0.025 {
		if temp < 0.15 {
			return biomeFrozenRiver
		}
		return biomeRiver
	}

	if height > 120 {
		if temp < 0.3 {
			return biomeJaggedPeaks
		}
		return biomeStonyPeaks
	}
	if height > 96 {
		return biomeWindsweptHills
	}

	return selectBiome(temp, rain)
}

// selectBiome maps temperature and rainfall to a biome ID.
//
//	Temp\Rain     | Dry (<0.3)        | Medium (0.3-0.6)  | Wet (>0.6)
//	Cold <0.3     | Snowy Plains (45) | Snowy Taiga (47)  | Taiga (54)
//	Mild 0.3-0.7  | Plains (39)       | Forest (21)       | Dark Forest (8)
//	Warm 0.7-1.2  | Savanna (41)      | Plains (39)       | Jungle (28)
//	Hot >1.2      | Desert (14)       | Desert (14)       | Jungle (28)
func selectBiome(temp, rain float64) uint16 {
	switch {
	case temp < 0.3:
		switch {
		case rain < 0.3:
			return biomeSnowyPlains
		case rain < 0.6:
			return biomeSnowyTaiga
		default:
			return biomeTaiga
		}
	case temp < 0.7:
		switch {
		case rain < 0.3:
			return biomePlains
		case rain < 0.6:
			return biomeForest
		default:
			return biomeDarkForest
		}
	case temp < 1.2:
		switch {
		case rain < 0.3:
			return biomeSavanna
		case rain < 0.6:
			return biomePlains
		default:
			return biomeJungle
		}
	default:
		if rain > 0.6 {
			return biomeJungle
		}
		return biomeDesert
	}
}

// caveDepth is the Y below which cave biomes replace the surface
// climate.
const caveDepth = 0

func selectCaveBiome(by int, rain float64) uint16 {
	if by < -40 {
		return biomeDeepDark
	}
	if rain > 0.6 {
		return biomeLushCaves
	}
	return biomeDripstoneCaves
}

// Possible lists every biome ID this source can emit.
func (bs *BiomeSource) Possible() []uint16 {
	return []uint16{
		biomeOcean, biomeDeepOcean, biomeBeach,
		biomeRiver, biomeFrozenRiver,
		biomeSnowyPlains, biomeSnowyTaiga, biomeTaiga,
		biomePlains, biomeForest, biomeDarkForest,
		biomeSavanna, biomeJungle, biomeDesert,
		biomeWindsweptHills, biomeJaggedPeaks, biomeStonyPeaks,
		biomeDripstoneCaves, biomeLushCaves, biomeDeepDark,
	}
}

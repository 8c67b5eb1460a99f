package gen

import (
	"testing"

	pc121 "github.com/biomecraft/server/pkg/gamedata/versions/pc_1_21"
)

func TestSelectBiomeClimateTable(t *testing.T) {
	tests := []struct {
		name       string
		temp, rain float64
		want       uint16
	}{
		{"cold_dry", 0.1, 0.1, biomeSnowyPlains},
		{"cold_mid", 0.1, 0.5, biomeSnowyTaiga},
		{"cold_wet", 0.1, 0.9, biomeTaiga},
		{"mild_dry", 0.5, 0.1, biomePlains},
		{"mild_mid", 0.5, 0.5, biomeForest},
		{"mild_wet", 0.5, 0.9, biomeDarkForest},
		{"warm_dry", 1.0, 0.1, biomeSavanna},
		{"warm_mid", 1.0, 0.5, biomePlains},
		{"warm_wet", 1.0, 0.9, biomeJungle},
		{"hot_dry", 1.5, 0.1, biomeDesert},
		{"hot_wet", 1.5, 0.9, biomeJungle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectBiome(tt.temp, tt.rain); got != tt.want {
				t.Errorf("selectBiome(%v, %v) = %d, want %d", tt.temp, tt.rain, got, tt.want)
			}
		})
	}
}

// Every ID the generators can emit must exist in the pc-1.21 registry,
// and some registry biomes must stay unreachable so the reachability
// guard in locate has something to reject.
func TestPossibleBiomesExistInRegistry(t *testing.T) {
	gd := pc121.New()

	sources := map[string][]uint16{
		"default": NewDefaultGenerator(OverworldRange, 1).PossibleBiomes(),
		"flat":    NewFlatGenerator(OverworldRange, 1).PossibleBiomes(),
	}

	for name, ids := range sources {
		seen := make(map[uint16]bool)
		for _, id := range ids {
			if seen[id] {
				t.Errorf("%s: duplicate biome ID %d in PossibleBiomes", name, id)
			}
			seen[id] = true
			if _, ok := gd.Biomes.ByID(int(id)); !ok {
				t.Errorf("%s: PossibleBiomes contains %d, not in registry", name, id)
			}
		}
	}

	cherry, ok := gd.Biomes.ByName("cherry_grove")
	if !ok {
		t.Fatal("registry is missing cherry_grove")
	}
	for name, ids := range sources {
		for _, id := range ids {
			if int(id) == cherry.ID {
				t.Errorf("%s: cherry_grove should not be generatable", name)
			}
		}
	}
}

func TestBiomeSourceOceanAtLowTerrain(t *testing.T) {
	bs := NewBiomeSource(42)

	// Scan until terrain drops below the ocean threshold, then the
	// biome there must be an ocean variant.
	found := false
	for x := 0; x < 10000 && !found; x += 64 {
		if terrainHeight(bs.terrain, x, 0) < seaLevel-8 {
			b := bs.BiomeAt(x, seaLevel, 0)
			if b != biomeOcean && b != biomeDeepOcean {
				t.Fatalf("low terrain at x=%d got biome %d, want ocean", x, b)
			}
			found = true
		}
	}
	if !found {
		t.Skip("no ocean in scanned strip for this seed")
	}
}

package gen

import "testing"

func TestDefaultGeneratorDeterministic(t *testing.T) {
	g1 := NewDefaultGenerator(OverworldRange, 42)
	g2 := NewDefaultGenerator(OverworldRange, 42)

	c1 := g1.Generate(0, 0)
	c2 := g2.Generate(0, 0)

	for i := range c1.sections {
		s1, s2 := c1.sections[i], c2.sections[i]
		if s1 == nil && s2 == nil {
			continue
		}
		if (s1 == nil) != (s2 == nil) {
			t.Fatalf("section %d nil mismatch", i)
		}
		if s1.Blocks != s2.Blocks {
			t.Fatalf("section %d blocks differ", i)
		}
		if s1.Biomes != s2.Biomes {
			t.Fatalf("section %d biomes differ", i)
		}
	}
}

func TestDefaultGeneratorBedrockAtBottom(t *testing.T) {
	g := NewDefaultGenerator(OverworldRange, 12345)
	c := g.Generate(0, 0)

	min := OverworldRange.Min()
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			block := c.Block(x, min, z)
			if block != blockBedrock<<4 {
				t.Errorf("block at (%d,%d,%d) = %d, want %d (bedrock)", x, min, z, block, blockBedrock<<4)
			}
		}
	}
}

func TestDefaultGeneratorHeightReasonable(t *testing.T) {
	g := NewDefaultGenerator(OverworldRange, 999)
	for _, p := range [][2]int{{0, 0}, {1000, -1000}, {-50000, 50000}} {
		h := g.HeightAt(p[0], p[1])
		if h < OverworldRange.Min()+8 || h > 250 {
			t.Errorf("HeightAt(%d,%d) = %d, out of bounds", p[0], p[1], h)
		}
	}
}

func TestDefaultGeneratorDifferentSeeds(t *testing.T) {
	g1 := NewDefaultGenerator(OverworldRange, 1)
	g2 := NewDefaultGenerator(OverworldRange, 2)

	c1 := g1.Generate(0, 0)
	c2 := g2.Generate(0, 0)

	different := false
	for i := range c1.sections {
		if c1.sections[i] == nil || c2.sections[i] == nil {
			continue
		}
		if c1.sections[i].Blocks != c2.sections[i].Blocks {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different terrain")
	}
}

func TestDefaultGeneratorBiomesArePossible(t *testing.T) {
	g := NewDefaultGenerator(OverworldRange, 77)

	possible := make(map[uint16]bool)
	for _, id := range g.PossibleBiomes() {
		possible[id] = true
	}

	for cx := -2; cx <= 2; cx++ {
		for cz := -2; cz <= 2; cz++ {
			c := g.Generate(cx, cz)
			for i, s := range c.sections {
				if s == nil {
					continue
				}
				for _, b := range s.Biomes {
					if !possible[b] {
						t.Fatalf("chunk(%d,%d) section %d emitted biome %d not in PossibleBiomes", cx, cz, i, b)
					}
				}
			}
		}
	}
}

func TestDefaultGeneratorBiomeAtMatchesSeed(t *testing.T) {
	g1 := NewDefaultGenerator(OverworldRange, 42)
	g2 := NewDefaultGenerator(OverworldRange, 42)

	for _, p := range [][3]int{{0, 64, 0}, {512, 64, -512}, {-3000, -50, 7000}} {
		b1 := g1.BiomeAt(p[0], p[1], p[2])
		b2 := g2.BiomeAt(p[0], p[1], p[2])
		if b1 != b2 {
			t.Errorf("BiomeAt(%v) differs between same-seed generators: %d vs %d", p, b1, b2)
		}
	}
}

func TestDefaultGeneratorCaveBiomesBelowSurface(t *testing.T) {
	g := NewDefaultGenerator(OverworldRange, 5)

	b := g.BiomeAt(100, -50, 100)
	if b != biomeDeepDark {
		t.Errorf("BiomeAt(y=-50) = %d, want deep dark (%d)", b, biomeDeepDark)
	}

	b = g.BiomeAt(100, -10, 100)
	if b != biomeDripstoneCaves && b != biomeLushCaves {
		t.Errorf("BiomeAt(y=-10) = %d, want a cave biome", b)
	}
}

func TestFlatGeneratorLayers(t *testing.T) {
	g := NewFlatGenerator(OverworldRange, 0)
	c := g.Generate(0, 0)

	min := OverworldRange.Min()
	tests := []struct {
		y     int
		block uint16
		name  string
	}{
		{min, blockBedrock << 4, "bedrock"},
		{min + 1, blockStone << 4, "stone"},
		{min + 2, blockStone << 4, "stone"},
		{min + 3, blockDirt << 4, "dirt"},
		{min + 4, blockGrass << 4, "grass"},
		{min + 5, 0, "air"},
	}

	for _, tt := range tests {
		got := c.Block(0, tt.y, 0)
		if got != tt.block {
			t.Errorf("y=%d: got %d, want %d (%s)", tt.y, got, tt.block, tt.name)
		}
	}

	if got := g.HeightAt(0, 0); got != min+4 {
		t.Errorf("HeightAt = %d, want %d", got, min+4)
	}
	if b, ok := c.Biome(0, min, 0); !ok || b != biomePlains {
		t.Errorf("flat biome = (%d, %v), want plains", b, ok)
	}
}

func TestDefaultGeneratorMultipleChunks(t *testing.T) {
	g := NewDefaultGenerator(OverworldRange, 12345)

	min := OverworldRange.Min()
	for cx := -2; cx <= 2; cx++ {
		for cz := -2; cz <= 2; cz++ {
			c := g.Generate(cx, cz)
			if c == nil {
				t.Errorf("Generate(%d,%d) returned nil", cx, cz)
				continue
			}
			for x := 0; x < 16; x++ {
				block := c.Block(x, min, 0)
				if block != blockBedrock<<4 {
					t.Errorf("chunk(%d,%d) block at (%d,%d,0) = %d, want bedrock", cx, cz, x, min, block)
				}
			}
		}
	}
}

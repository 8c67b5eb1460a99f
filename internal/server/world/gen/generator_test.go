package gen

import "testing"

func TestRangeSections(t *testing.T) {
	r := OverworldRange

	if r.Min() != -64 || r.Max() != 319 {
		t.Fatalf("overworld range = [%d, %d], want [-64, 319]", r.Min(), r.Max())
	}
	if r.Height() != 384 {
		t.Errorf("Height() = %d, want 384", r.Height())
	}
	if r.SectionCount() != 24 {
		t.Errorf("SectionCount() = %d, want 24", r.SectionCount())
	}

	tests := []struct {
		y    int
		want int
	}{
		{-64, 0},
		{-49, 0},
		{-48, 1},
		{-1, 3},
		{0, 4},
		{63, 7},
		{319, 23},
	}
	for _, tt := range tests {
		if got := r.SectionIndex(tt.y); got != tt.want {
			t.Errorf("SectionIndex(%d) = %d, want %d", tt.y, got, tt.want)
		}
	}
}

func TestSectionBiomeCells(t *testing.T) {
	s := &Section{}
	s.SetBiome(5, 10, 14, biomeDesert)

	// The whole 4×4×4 cell shares the value.
	for _, p := range [][3]int{{4, 8, 12}, {7, 11, 15}, {5, 10, 14}} {
		if got := s.Biome(p[0], p[1], p[2]); got != biomeDesert {
			t.Errorf("Biome(%d,%d,%d) = %d, want %d", p[0], p[1], p[2], got, biomeDesert)
		}
	}

	// Neighboring cells are untouched.
	if got := s.Biome(3, 10, 14); got != 0 {
		t.Errorf("adjacent cell biome = %d, want 0", got)
	}
	if got := s.Biome(5, 7, 14); got != 0 {
		t.Errorf("cell below = %d, want 0", got)
	}
}

func TestChunkDataLazySections(t *testing.T) {
	c := NewChunkData(OverworldRange)

	if c.SectionMask() != 0 {
		t.Fatalf("fresh chunk mask = %#x, want 0", c.SectionMask())
	}

	// Writing air into a missing section must not allocate.
	c.SetBlock(0, 100, 0, 0)
	if c.SectionMask() != 0 {
		t.Error("writing air allocated a section")
	}

	c.SetBlock(3, 100, 7, blockStone<<4)
	wantMask := uint32(1) << OverworldRange.SectionIndex(100)
	if c.SectionMask() != wantMask {
		t.Errorf("mask = %#x, want %#x", c.SectionMask(), wantMask)
	}
	if got := c.Block(3, 100, 7); got != blockStone<<4 {
		t.Errorf("Block = %d, want stone", got)
	}
}

func TestChunkDataOutOfRange(t *testing.T) {
	c := NewChunkData(OverworldRange)

	c.SetBlock(0, -65, 0, blockStone<<4)
	c.SetBlock(0, 320, 0, blockStone<<4)
	c.SetBiome(0, -65, 0, biomeDesert)
	c.SetBiome(0, 320, 0, biomeDesert)

	if c.SectionMask() != 0 {
		t.Error("out-of-range writes allocated sections")
	}
	if c.SectionAt(-65) != nil || c.SectionAt(320) != nil {
		t.Error("SectionAt returned a section outside the range")
	}
	if s := c.SectionFor(320); s != nil {
		t.Error("SectionFor allocated outside the range")
	}
}

func TestChunkDataBiomeStorage(t *testing.T) {
	c := NewChunkData(OverworldRange)

	if _, ok := c.Biome(0, 70, 0); ok {
		t.Fatal("empty chunk reported a stored biome")
	}

	c.SetBiome(9, 70, 2, biomeJungle)
	got, ok := c.Biome(9, 70, 2)
	if !ok || got != biomeJungle {
		t.Fatalf("Biome = (%d, %v), want (%d, true)", got, ok, biomeJungle)
	}

	// Same cell, different block within it.
	got, ok = c.Biome(8, 68, 0)
	if !ok || got != biomeJungle {
		t.Errorf("cell sibling Biome = (%d, %v), want (%d, true)", got, ok, biomeJungle)
	}

	// Different cell in the same section stays unset.
	got, ok = c.Biome(0, 70, 8)
	if !ok || got != 0 {
		t.Errorf("other cell Biome = (%d, %v), want (0, true)", got, ok)
	}
}

func TestChunkDataNegativeYBiome(t *testing.T) {
	c := NewChunkData(OverworldRange)

	c.SetBiome(0, -64, 0, biomeDeepDark)
	got, ok := c.Biome(0, -64, 0)
	if !ok || got != biomeDeepDark {
		t.Fatalf("Biome at bottom = (%d, %v), want (%d, true)", got, ok, biomeDeepDark)
	}
	if idx := OverworldRange.SectionIndex(-64); c.Section(idx) == nil {
		t.Error("bottom section not allocated")
	}
}

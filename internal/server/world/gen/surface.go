package gen

// applySurface places the biome-specific surface blocks on top of the
// stone column.
func applySurface(c *ChunkData, x, z, height int, biome uint16) {
	floor := c.Range().Min() + 3

	switch biome {
	case biomeDesert:
		// Sand on top, sandstone below.
		for y := height; y > height-4 && y > floor; y-- {
			c.SetBlock(x, y, z, blockSand<<4)
		}
		if height-4 > floor {
			c.SetBlock(x, height-4, z, blockSandstone<<4)
		}
		if height-5 > floor {
			c.SetBlock(x, height-5, z, blockSandstone<<4)
		}

	case biomeOcean, biomeDeepOcean, biomeRiver, biomeFrozenRiver:
		// Gravel floor with dirt underneath.
		for y := height; y > height-3 && y > floor; y-- {
			c.SetBlock(x, y, z, blockGravel<<4)
		}
		for y := height - 3; y > height-5 && y > floor; y-- {
			c.SetBlock(x, y, z, blockDirt<<4)
		}

	case biomeBeach:
		for y := height; y > height-4 && y > floor; y-- {
			c.SetBlock(x, y, z, blockSand<<4)
		}
		if height-4 > floor {
			c.SetBlock(x, height-4, z, blockSandstone<<4)
		}

	case biomeJaggedPeaks, biomeStonyPeaks:
		// Bare stone peaks.
		for y := height; y > height-4 && y > floor; y-- {
			c.SetBlock(x, y, z, blockStone<<4)
		}

	case biomeWindsweptHills:
		// Thin dirt cap above the tree line, normal below.
		if height > 110 {
			for y := height; y > height-4 && y > floor; y-- {
				c.SetBlock(x, y, z, blockStone<<4)
			}
		} else {
			applyDefaultSurface(c, x, z, height)
		}

	default:
		applyDefaultSurface(c, x, z, height)
	}
}

// applyDefaultSurface places grass on top with dirt below.
func applyDefaultSurface(c *ChunkData, x, z, height int) {
	floor := c.Range().Min() + 3
	if height <= floor {
		return
	}
	if height > seaLevel {
		c.SetBlock(x, height, z, blockGrass<<4)
	} else {
		// Underwater: dirt instead of grass.
		c.SetBlock(x, height, z, blockDirt<<4)
	}
	for y := height - 1; y > height-4 && y > floor; y-- {
		c.SetBlock(x, y, z, blockDirt<<4)
	}
}

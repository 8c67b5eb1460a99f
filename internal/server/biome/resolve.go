package biome

import (
	"strings"

	"github.com/biomecraft/server/pkg/gamedata"
)

// Resolver translates a biome key into a registry entry. A Resolver is
// a pure lookup: it must not construct fallback biomes or carry side
// effects, so a failed resolution always means "no such biome".
type Resolver func(reg gamedata.BiomeRegistry, key string) (gamedata.Biome, bool)

// ResolveByName is the stock Resolver. It accepts both plain names and
// "minecraft:"-namespaced keys.
func ResolveByName(reg gamedata.BiomeRegistry, key string) (gamedata.Biome, bool) {
	return reg.ByName(strings.TrimPrefix(key, "minecraft:"))
}

package gamedata

type GameData struct {
	Biomes  BiomeRegistry
	Version *Version
}

type Version struct {
	Protocol         int
	MinecraftVersion string
	MajorVersion     string
}

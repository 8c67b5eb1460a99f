package gamedata

type Biome struct {
	ID            int
	Name          string
	DisplayName   string
	Category      string
	Temperature   float64
	Precipitation string
	Dimension     string
	Color         int
	Rainfall      float64
}

package dayzmapgen

import (
	"image/color"
	"math"

	"github.com/4-en/dayz-map-gen/noise"
	"github.com/4-en/dayz-map-gen/various"
)

// Biome is a terrain surface classification label.
type Biome uint8

const (
	BiomeOcean Biome = iota
	BiomeBeach
	BiomePlains
	BiomeForest
	BiomeMountain
	BiomeSnow
	BiomeDesert
	BiomeSwamp
	BiomeTundra
	BiomeJungle
	NumBiomes
)

func (b Biome) String() string {
	switch b {
	case BiomeOcean:
		return "ocean"
	case BiomeBeach:
		return "beach"
	case BiomePlains:
		return "plains"
	case BiomeForest:
		return "forest"
	case BiomeMountain:
		return "mountain"
	case BiomeSnow:
		return "snow"
	case BiomeDesert:
		return "desert"
	case BiomeSwamp:
		return "swamp"
	case BiomeTundra:
		return "tundra"
	case BiomeJungle:
		return "jungle"
	}
	return "unknown"
}

// biomeColors is the fixed display palette, indexed by Biome.
var biomeColors = [NumBiomes]color.NRGBA{
	BiomeOcean:    {0, 0, 100, 255},
	BiomeBeach:    {238, 214, 175, 255},
	BiomePlains:   {50, 205, 50, 255},
	BiomeForest:   {34, 139, 34, 255},
	BiomeMountain: {139, 137, 137, 255},
	BiomeSnow:     {255, 250, 250, 255},
	BiomeDesert:   {255, 228, 181, 255},
	BiomeSwamp:    {0, 100, 0, 255},
	BiomeTundra:   {255, 228, 196, 255},
	BiomeJungle:   {0, 128, 0, 255},
}

// Color returns the display color for the biome.
func (b Biome) Color() color.NRGBA {
	if b >= NumBiomes {
		return color.NRGBA{A: 255}
	}
	return biomeColors[b]
}

// biomeCell holds the per-cell inputs to the classification rules.
type biomeCell struct {
	elev     float64 // normalized elevation
	seaLevel float64 // normalized sea level
	slope    float64 // normalized steepness [0, 1]
	temp     float64 // temperature field value
	humidity float64 // humidity field value
}

// biomeRule is one (predicate, outcome) pair. Rules are evaluated in
// order; the first matching rule decides the biome.
type biomeRule struct {
	name string
	when func(c biomeCell) bool
	pick func(c biomeCell) Biome
}

// biomeRules is the classification decision list. The order is part of
// the contract; the final rule always matches, so classification is total.
var biomeRules = []biomeRule{
	{
		name: "deep water",
		when: func(c biomeCell) bool { return c.elev < c.seaLevel*0.8 },
		pick: func(c biomeCell) Biome { return BiomeOcean },
	},
	{
		name: "shoreline",
		when: func(c biomeCell) bool { return c.elev < c.seaLevel },
		pick: func(c biomeCell) Biome { return BiomeBeach },
	},
	{
		name: "hot and wet",
		when: func(c biomeCell) bool { return c.humidity > 0.7 && c.temp > 0.7 },
		pick: func(c biomeCell) Biome {
			if c.elev > 0.8 {
				return BiomeMountain
			}
			return BiomeJungle
		},
	},
	{
		name: "frozen",
		when: func(c biomeCell) bool { return c.temp < 0.2 },
		pick: func(c biomeCell) Biome { return BiomeSnow },
	},
	{
		name: "steep terrain",
		when: func(c biomeCell) bool { return c.slope > 0.5 },
		pick: func(c biomeCell) Biome { return BiomeMountain },
	},
	{
		name: "lowlands",
		when: func(c biomeCell) bool { return c.elev < c.seaLevel*1.2 },
		pick: func(c biomeCell) Biome {
			if c.humidity > 0.7 {
				if c.temp > 0.5 {
					return BiomeJungle
				}
				return BiomeSwamp
			}
			if c.humidity > 0.4 {
				if c.temp > 0.5 {
					return BiomeForest
				}
				return BiomePlains
			}
			if c.temp > 0.7 {
				return BiomeDesert
			}
			return BiomePlains
		},
	},
	{
		name: "midlands",
		when: func(c biomeCell) bool { return c.elev < c.seaLevel*1.5 },
		pick: func(c biomeCell) Biome {
			if c.humidity > 0.5 {
				if c.temp > 0.5 {
					return BiomeMountain
				}
				return BiomeTundra
			}
			if c.temp > 0.7 {
				return BiomeDesert
			}
			return BiomeForest
		},
	},
	{
		name: "highlands",
		when: func(c biomeCell) bool { return true },
		pick: func(c biomeCell) Biome {
			if c.temp < 0.3 {
				return BiomeSnow
			}
			if c.temp < 0.5 {
				return BiomeMountain
			}
			if c.temp < 0.7 {
				return BiomeForest
			}
			return BiomeDesert
		},
	},
}

// chooseBiome classifies a single cell by running the rule list top to bottom.
func chooseBiome(c biomeCell) Biome {
	for _, rule := range biomeRules {
		if rule.when(c) {
			return rule.pick(c)
		}
	}
	// Unreachable, the last rule always matches.
	return BiomePlains
}

// ClassifyBiomes derives temperature and humidity fields from noise and
// classifies every heightmap cell into a Biome. The returned grid is
// index-aligned with the heightmap.
//
// Temperature and humidity sample their own noise channels at
// biomeCfg.Scale and are remapped into [avg-variation, avg+variation],
// where the averages are the configured °C / percent values normalized
// into [0, 1]. Slope is computed for interior cells from the four axis
// neighbors of the input heightmap (boundary cells have slope 0) and
// participates in classification via the steep-terrain rule.
//
// Rows are computed in parallel, each worker writing only its own rows.
func ClassifyBiomes(cfg *GenerationConfig, biomeCfg *BiomeConfig, heightmap []float64, seed int64) []Biome {
	width := cfg.Width
	height := cfg.Height
	biomes := make([]Biome, width*height)

	seaLevel := various.Clamp(cfg.SeaLevel, 0.0, 1.0)

	backend := noise.BackendOpenSimplex
	if cfg.UsePerlin {
		backend = noise.BackendPerlin
	}
	field := noise.NewWithBackend(seed, backend)

	avgTemp := various.Clamp((biomeCfg.BaseTemperature+10.0)/50.0, 0.0, 1.0)
	avgHum := various.Clamp(biomeCfg.BaseHumidity/100.0, 0.0, 1.0)
	tempVariation := various.Clamp(biomeCfg.TemperatureVariation/100.0, 0.0, 1.0)
	humVariation := various.Clamp(biomeCfg.HumidityVariation/100.0, 0.0, 1.0)

	minTemp, maxTemp := avgTemp-tempVariation, avgTemp+tempVariation
	minHum, maxHum := avgHum-humVariation, avgHum+humVariation

	various.KickOffRowWorkers(height, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			ny := float64(y)
			for x := 0; x < width; x++ {
				nx := float64(x)
				i := y*width + x
				h := heightmap[i]

				temp := field.Sample(noise.ChannelTemperature, nx, ny, biomeCfg.Scale)
				humidity := field.Sample(noise.ChannelHumidity, nx, ny, biomeCfg.Scale)
				temp = temp*(maxTemp-minTemp) + minTemp
				humidity = humidity*(maxHum-minHum) + minHum

				biomes[i] = chooseBiome(biomeCell{
					elev:     h,
					seaLevel: seaLevel,
					slope:    slopeAt(heightmap, x, y, width, height),
					temp:     temp,
					humidity: humidity,
				})
			}
		}
	})

	return biomes
}

// slopeAt returns the normalized steepness of the cell at (x, y). Interior
// cells use the mean absolute elevation delta to the four axis neighbors,
// scaled by the 1 cell = 1 m at 1 km convention and converted to [0, 1]
// via atan. Boundary cells have slope 0.
func slopeAt(heightmap []float64, x, y, width, height int) float64 {
	if x <= 0 || y <= 0 || x >= width-1 || y >= height-1 {
		return 0.0
	}
	i := y*width + x
	h := heightmap[i]
	left := heightmap[i-1]
	right := heightmap[i+1]
	up := heightmap[i-width]
	down := heightmap[i+width]

	slope := (math.Abs(left-h) + math.Abs(right-h) + math.Abs(up-h) + math.Abs(down-h)) / 4.0
	slope *= 1000.0
	return various.Clamp(math.Atan(slope)/(math.Pi/2.0), 0.0, 1.0)
}

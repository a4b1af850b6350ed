// Package dayzmapgen procedurally generates terrain heightmaps and biome
// maps for game level authoring. The pipeline runs in stages: heightmap
// generation, optional refinement, and biome classification. Each stage is
// a pure batch computation over the whole grid.
package dayzmapgen

import "math/rand"

// Map holds the configuration and the grids produced by the generation
// stages. Grids are replaced wholesale on each stage run; stages never
// mutate a grid in place.
type Map struct {
	Cfg *Config

	Heightmap []float64 // Current elevation grid, row-major, values in [0, 1]
	Previous  []float64 // Prior elevation grid, overlay blend source
	Biomes    []Biome   // Biome grid, index-aligned with Heightmap
	LakeMap   []float64 // Lake intensity grid (water stage placeholder)
	RiverMap  []float64 // River intensity grid (water stage placeholder)
}

// NewMapFromConfig returns a new Map for the given configuration.
func NewMapFromConfig(cfg *Config) (*Map, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Map{Cfg: cfg}, nil
}

// resolveSeed returns the fixed seed, or a random one if requested.
// Seed resolution happens here, outside the stage functions, so the
// stages stay deterministic per seed.
func resolveSeed(seed int64, useRandom bool) int64 {
	if useRandom {
		return rand.Int63()
	}
	return seed
}

// GenerateTerrain runs the heightmap generation stage. The previous
// heightmap, if any, is kept as the overlay blend source.
func (m *Map) GenerateTerrain() {
	seed := resolveSeed(m.Cfg.GenerationConfig.Seed, m.Cfg.GenerationConfig.UseRandomSeed)
	m.GenerateTerrainSeeded(seed)
}

// GenerateTerrainSeeded runs the heightmap generation stage with an
// already resolved seed.
func (m *Map) GenerateTerrainSeeded(seed int64) {
	m.Previous, m.Heightmap = m.Heightmap, GenerateHeightmap(m.Cfg.GenerationConfig, seed, m.Heightmap)
	m.Biomes = nil
}

// Refine runs the refinement stage on the current heightmap.
func (m *Map) Refine() {
	m.Heightmap = RefineHeightmap(m.Heightmap, m.Cfg.RefinerConfig, m.Cfg.GenerationConfig)
	m.Biomes = nil
}

// ClassifyBiomes runs the biome classification stage on the current heightmap.
func (m *Map) ClassifyBiomes() {
	seed := resolveSeed(m.Cfg.BiomeConfig.Seed, m.Cfg.BiomeConfig.UseRandomSeed)
	m.ClassifyBiomesSeeded(seed)
}

// ClassifyBiomesSeeded runs the biome classification stage with an
// already resolved seed.
func (m *Map) ClassifyBiomesSeeded(seed int64) {
	m.Biomes = ClassifyBiomes(m.Cfg.GenerationConfig, m.Cfg.BiomeConfig, m.Heightmap, seed)
}

// GenerateWater runs the water synthesis placeholder stage.
func (m *Map) GenerateWater() {
	seed := resolveSeed(m.Cfg.WaterConfig.Seed, m.Cfg.WaterConfig.UseRandomSeed)
	m.Heightmap, m.LakeMap, m.RiverMap = GenerateWaterMap(
		m.Cfg.GenerationConfig, m.Cfg.WaterConfig, m.Heightmap, m.Biomes, seed)
}

// Generate runs the full pipeline: terrain, refinement, biomes.
func (m *Map) Generate() {
	m.GenerateTerrain()
	m.Refine()
	m.ClassifyBiomes()
}

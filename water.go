package dayzmapgen

// GenerateWaterMap is the declared contract for lake and river synthesis.
// It accepts the full water configuration plus the current heightmap and
// biome grid and returns an adjusted heightmap together with lake and
// river intensity grids.
//
// The simulation itself is not implemented yet: the returned heightmap is
// an untouched copy and both intensity grids are zero.
// TODO: lake placement (LakeAttempts, capacity/depth bounds, evaporation
// and inflow balance) and river tracing (momentum, direction variation).
func GenerateWaterMap(cfg *GenerationConfig, waterCfg *WaterConfig, heightmap []float64, biomes []Biome, seed int64) (adjusted, lakeMap, riverMap []float64) {
	size := cfg.Width * cfg.Height
	adjusted = make([]float64, size)
	copy(adjusted, heightmap)
	lakeMap = make([]float64, size)
	riverMap = make([]float64, size)
	return adjusted, lakeMap, riverMap
}

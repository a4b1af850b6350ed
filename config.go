package dayzmapgen

import "fmt"

// Config is a struct that holds all configuration options for the map generation.
type Config struct {
	*GenerationConfig
	*RefinerConfig
	*BiomeConfig
	*WaterConfig
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		GenerationConfig: NewGenerationConfig(),
		RefinerConfig:    NewRefinerConfig(),
		BiomeConfig:      NewBiomeConfig(),
		WaterConfig:      NewWaterConfig(),
	}
}

// Validate checks all stage configurations.
func (cfg *Config) Validate() error {
	return cfg.GenerationConfig.Validate()
}

// GenerationConfig is a struct that holds all configuration options for the
// heightmap generation stage.
type GenerationConfig struct {
	Width         int     // Grid width in cells
	Height        int     // Grid height in cells
	Seed          int64   // Fixed seed (used if UseRandomSeed is false)
	UseRandomSeed bool    // Draw a random seed instead of using Seed
	IslandMode    bool    // Attenuate elevation towards the grid borders
	IslandBorder  float64 // Border fraction [0, 1] affected by the falloff
	IslandCurve   float64 // Falloff curve exponent
	SeaLevel      float64 // Normalized sea level threshold [0, 1]
	Mountainous   float64 // Exponent applied to the base octave
	ScaleBase     float64 // Base octave noise scale
	AmpBase       float64 // Base octave amplitude
	ScaleMid      float64 // Mid octave noise scale
	AmpMid        float64 // Mid octave amplitude
	ScaleDetail   float64 // Detail octave noise scale
	AmpDetail     float64 // Detail octave amplitude
	Overlay       float64 // Overlay blend strength [0, 100]
	UsePerlin     bool    // Use the Perlin noise backend instead of opensimplex
}

// NewGenerationConfig returns a new config for heightmap generation.
func NewGenerationConfig() *GenerationConfig {
	return &GenerationConfig{
		Width:         512,
		Height:        512,
		Seed:          12345,
		UseRandomSeed: true,
		IslandMode:    true,
		IslandBorder:  0.1,
		IslandCurve:   2.0,
		SeaLevel:      0.4,
		Mountainous:   1.0,
		ScaleBase:     400.0,
		AmpBase:       1.0,
		ScaleMid:      100.0,
		AmpMid:        0.5,
		ScaleDetail:   25.0,
		AmpDetail:     0.15,
		Overlay:       100.0,
	}
}

// Validate returns an error if the configuration violates its invariants.
func (cfg *GenerationConfig) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid grid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.SeaLevel < 0 || cfg.SeaLevel > 1 {
		return fmt.Errorf("sea level %f out of range [0, 1]", cfg.SeaLevel)
	}
	if cfg.IslandBorder < 0 || cfg.IslandBorder > 1 {
		return fmt.Errorf("island border %f out of range [0, 1]", cfg.IslandBorder)
	}
	if cfg.ScaleBase <= 0 || cfg.ScaleMid <= 0 || cfg.ScaleDetail <= 0 {
		return fmt.Errorf("noise scales must be > 0 (base %f, mid %f, detail %f)",
			cfg.ScaleBase, cfg.ScaleMid, cfg.ScaleDetail)
	}
	return nil
}

// RefinerConfig is a struct that holds all configuration options for the
// heightmap refinement stage.
type RefinerConfig struct {
	HeightOffset   float64      // Added to every cell before scaling
	HeightCoeff    float64      // Multiplied after the offset
	HeightExponent float64      // Power applied after offset and scaling
	Smoothness     float64      // Reserved, not consumed yet
	CurvePoints    [][2]float64 // Reserved, not consumed yet
	PaintOverlay   []float64    // Reserved, not consumed yet
}

// NewRefinerConfig returns a new config for heightmap refinement.
func NewRefinerConfig() *RefinerConfig {
	return &RefinerConfig{
		HeightOffset:   0.0,
		HeightCoeff:    1.0,
		HeightExponent: 1.0,
		Smoothness:     0.0,
	}
}

// BiomeConfig is a struct that holds all configuration options for the
// biome classification stage. Temperature is configured in °C and humidity
// in percent; both are normalized internally.
type BiomeConfig struct {
	Seed                 int64   // Fixed seed (used if UseRandomSeed is false)
	UseRandomSeed        bool    // Draw a random seed instead of using Seed
	Scale                float64 // Noise scale for temperature / humidity fields
	BaseTemperature      float64 // Average temperature in °C
	BaseHumidity         float64 // Average humidity in percent
	TemperatureVariation float64 // Temperature swing around the average
	HumidityVariation    float64 // Humidity swing around the average
	BlendFactor          float64 // Reserved, not consumed yet
}

// NewBiomeConfig returns a new config for biome classification.
func NewBiomeConfig() *BiomeConfig {
	return &BiomeConfig{
		Seed:                 12345,
		UseRandomSeed:        true,
		Scale:                10000.0,
		BaseTemperature:      15.0,
		BaseHumidity:         50.0,
		TemperatureVariation: 20.0,
		HumidityVariation:    20.0,
		BlendFactor:          0.5,
	}
}

// WaterConfig is a struct that holds all configuration options for the
// water body / river synthesis stage. The stage itself is a declared
// contract only; see GenerateWaterMap.
type WaterConfig struct {
	Seed          int64
	UseRandomSeed bool

	// Lake generation.
	LakeAttempts     int
	MinLakeCount     int
	MaxLakeCount     int
	MinElevation     float64
	MaxElevation     float64
	MinCapacity      float64
	MaxCapacity      float64
	MinDepth         float64
	BaseEvaporation  float64
	BaseInflow       float64
	BaseDrainage     float64
	BiomeInfluence   float64
	LakeTerrainMod   float64

	// River generation.
	RiverCount              int
	RiverWidth              float64
	RiverMomentum           float64
	RiverDirectionVariation float64
	RiverSpeed              float64
	RiverSpread             float64
	RiverDepth              float64
}

// NewWaterConfig returns a new config for water synthesis.
func NewWaterConfig() *WaterConfig {
	return &WaterConfig{
		Seed:                    32345,
		UseRandomSeed:           true,
		LakeAttempts:            100,
		MinLakeCount:            0,
		MaxLakeCount:            100,
		MinElevation:            0.0,
		MaxElevation:            1.0,
		MinCapacity:             10.0,
		MaxCapacity:             1000000.0,
		MinDepth:                1.0,
		BaseEvaporation:         50.0,
		BaseInflow:              50.0,
		BaseDrainage:            50.0,
		BiomeInfluence:          50.0,
		LakeTerrainMod:          10.0,
		RiverCount:              10,
		RiverWidth:              50.0,
		RiverMomentum:           50.0,
		RiverDirectionVariation: 10.0,
		RiverSpeed:              50.0,
		RiverSpread:             50.0,
		RiverDepth:              50.0,
	}
}

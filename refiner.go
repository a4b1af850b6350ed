package dayzmapgen

import (
	"math"

	"github.com/Flokey82/go_gens/utils"
)

var minMax = utils.MinMax[float64]

// RefineHeightmap applies the refiner transform to a copy of the given
// heightmap and returns it. Every cell is transformed as
// (v + HeightOffset) * HeightCoeff, raised to HeightExponent, and the
// whole grid is then renormalized into [0, 1].
//
// A negative transformed value raised to a non-integer exponent would be
// undefined, so the base is clamped to 0 before exponentiation. If the
// transformed grid is perfectly flat, renormalization is skipped and the
// constant grid is returned as is.
//
// Smoothness, curve points, and the paint overlay are reserved
// configuration and not consumed here.
func RefineHeightmap(heightmap []float64, cfg *RefinerConfig, mapCfg *GenerationConfig) []float64 {
	size := mapCfg.Width * mapCfg.Height
	refined := make([]float64, size)

	for i := 0; i < size; i++ {
		v := (heightmap[i] + cfg.HeightOffset) * cfg.HeightCoeff
		if v < 0 {
			v = 0
		}
		refined[i] = math.Pow(v, cfg.HeightExponent)
	}

	min, max := minMax(refined)
	if max > min {
		for i := 0; i < size; i++ {
			refined[i] = (refined[i] - min) / (max - min)
		}
	}
	return refined
}

package dayzmapgen

import (
	"math"

	"github.com/4-en/dayz-map-gen/noise"
	"github.com/4-en/dayz-map-gen/various"
)

// GenerateHeightmap produces a new normalized heightmap of cfg.Width x
// cfg.Height cells (row-major, cell (x,y) at index y*width+x), with every
// value in [0, 1].
//
// Three noise octaves (base, mid, detail) are combined per cell, the base
// octave shaped by the mountainous exponent, and the sum normalized by the
// theoretical maximum amplitude. If island mode is enabled, elevation is
// attenuated towards the grid borders. If previous is a heightmap of
// identical size and the overlay strength is below 1, the fresh value is
// blended with the previous one; otherwise previous is ignored.
//
// Rows are computed in parallel, each worker writing only its own rows.
func GenerateHeightmap(cfg *GenerationConfig, seed int64, previous []float64) []float64 {
	width := cfg.Width
	height := cfg.Height
	heightmap := make([]float64, width*height)

	backend := noise.BackendOpenSimplex
	if cfg.UsePerlin {
		backend = noise.BackendPerlin
	}
	field := noise.NewWithBackend(seed, backend)

	overlayStrength := various.Clamp(cfg.Overlay/100.0, 0.0, 1.0)
	overlayOld := 1.0 - overlayStrength
	// Overlay blending only applies below full strength and with a size match.
	overlay := overlayStrength < 0.999 && len(previous) == width*height

	// Theoretical maximum of the unnormalized octave sum, computed once.
	maxMountainous := math.Pow(1.5, cfg.Mountainous) - 0.5
	maxAmp := maxMountainous*cfg.AmpBase + cfg.AmpMid + cfg.AmpDetail

	border := various.Clamp(cfg.IslandBorder, 0.01, 0.5)
	curve := various.Clamp(cfg.IslandCurve, 1.0, 10.0)

	various.KickOffRowWorkers(height, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			ny := float64(y)
			for x := 0; x < width; x++ {
				nx := float64(x)

				base := field.Sample(noise.ChannelElevationBase, nx, ny, cfg.ScaleBase)
				mid := field.Sample(noise.ChannelElevationMid, nx, ny, cfg.ScaleMid)
				detail := field.Sample(noise.ChannelElevationDetail, nx, ny, cfg.ScaleDetail)

				h := math.Pow(base+0.5, cfg.Mountainous)
				h = (h - 0.5) * cfg.AmpBase
				h += cfg.AmpMid * mid
				h += cfg.AmpDetail * detail
				h = various.Clamp(h/maxAmp, 0.0, 1.0)

				if cfg.IslandMode {
					// The summed edge strength can reach 2 in the corners,
					// where the falloff factor turns negative.
					h *= 1.0 - math.Pow(edgeStrength(nx/float64(width), ny/float64(height), border), curve)
					h = various.Clamp(h, 0.0, 1.0)
				}

				i := y*width + x
				if overlay {
					h = h*overlayStrength + previous[i]*overlayOld
				}
				heightmap[i] = h
			}
		}
	})

	return heightmap
}

// edgeStrength returns the summed per-axis border proximity for the
// fractional cell position (xf, yf). It is 0 in the interior and rises
// linearly to 1 per axis at the outer edge, so the result is in [0, 2].
func edgeStrength(xf, yf, border float64) float64 {
	var sx, sy float64
	if xf < border {
		sx = 1.0 - xf/border
	} else if xf > 1.0-border {
		sx = (xf - (1.0 - border)) / border
	}
	if yf < border {
		sy = 1.0 - yf/border
	} else if yf > 1.0-border {
		sy = (yf - (1.0 - border)) / border
	}
	return sx + sy
}

package dayzmapgen

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"
)

// heightColor returns the terrain preview color for a normalized elevation.
func heightColor(h, seaLevel float64) color.NRGBA {
	if h < seaLevel*0.6 {
		return color.NRGBA{0, 0, 100, 255} // deep water
	} else if h < seaLevel {
		return color.NRGBA{64, 164, 223, 255} // shallow water
	} else if h < 0.5 {
		return color.NRGBA{34, 139, 34, 255} // lowlands
	} else if h < 0.65 {
		return color.NRGBA{160, 82, 45, 255} // hills
	} else if h < 0.85 {
		return color.NRGBA{139, 137, 137, 255} // mountains
	}
	return color.NRGBA{255, 250, 250, 255} // peaks
}

// RenderTerrain returns the heightmap rendered with the terrain preview palette.
func (m *Map) RenderTerrain() *image.RGBA {
	cfg := m.Cfg.GenerationConfig
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			img.Set(x, y, heightColor(m.Heightmap[y*cfg.Width+x], cfg.SeaLevel))
		}
	}
	return img
}

// RenderHeightmapGray returns the heightmap as an 8-bit grayscale image.
func (m *Map) RenderHeightmapGray() *image.Gray {
	cfg := m.Cfg.GenerationConfig
	img := image.NewGray(image.Rect(0, 0, cfg.Width, cfg.Height))
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(m.Heightmap[y*cfg.Width+x] * 255)})
		}
	}
	return img
}

// RenderBiomes returns the biome grid rendered with the fixed biome palette.
func (m *Map) RenderBiomes() *image.RGBA {
	cfg := m.Cfg.GenerationConfig
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			img.Set(x, y, m.Biomes[y*cfg.Width+x].Color())
		}
	}
	return img
}

// RenderElevationGradient returns the heightmap rendered with a blue to red
// elevation gradient.
func (m *Map) RenderElevationGradient() *image.RGBA {
	cfg := m.Cfg.GenerationConfig

	// Get a blue to red elevation gradient.
	colorGrad := colorgrad.NewGradient()
	colorGrad.Colors(
		color.RGBA{0, 0, 255, 255},
		color.RGBA{0, 255, 255, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{255, 255, 0, 255},
		color.RGBA{255, 0, 0, 255},
	)
	cb, err := colorGrad.Build()
	if err != nil {
		log.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			img.Set(x, y, cb.At(m.Heightmap[y*cfg.Width+x]))
		}
	}
	return img
}

// RenderShaded returns the terrain preview with diffuse hill shading applied.
func (m *Map) RenderShaded() *image.RGBA {
	cfg := m.Cfg.GenerationConfig

	// Set the global light direction (upper left when looking at the map).
	lightDir := vectors.Vec3{X: -1.0, Y: 1.0, Z: 1.0}.Normalize()

	// Exaggerate the surface so the shading is visible on gentle terrain.
	const heightScale = 60.0

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			normal := m.cellNormal(x, y, heightScale)
			diffuseShading := math.Max(0, vectors.Dot3(normal, lightDir))

			// Mix ambient and diffuse light.
			brightness := 0.4 + 0.6*diffuseShading
			col := heightColor(m.Heightmap[y*cfg.Width+x], cfg.SeaLevel)
			img.Set(x, y, color.NRGBA{
				R: uint8(float64(col.R) * brightness),
				G: uint8(float64(col.G) * brightness),
				B: uint8(float64(col.B) * brightness),
				A: 255,
			})
		}
	}
	return img
}

// cellNormal returns the surface normal of the cell at (x, y), derived from
// the central elevation differences of its axis neighbors.
func (m *Map) cellNormal(x, y int, heightScale float64) vectors.Vec3 {
	cfg := m.Cfg.GenerationConfig
	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		} else if x >= cfg.Width {
			x = cfg.Width - 1
		}
		if y < 0 {
			y = 0
		} else if y >= cfg.Height {
			y = cfg.Height - 1
		}
		return m.Heightmap[y*cfg.Width+x]
	}
	dzdx := (at(x+1, y) - at(x-1, y)) / 2.0 * heightScale
	dzdy := (at(x, y+1) - at(x, y-1)) / 2.0 * heightScale
	return vectors.Vec3{X: -dzdx, Y: dzdy, Z: 1.0}.Normalize()
}

// RenderCoastline returns the terrain preview with the sea level contour
// stroked on top.
func (m *Map) RenderCoastline() *image.RGBA {
	cfg := m.Cfg.GenerationConfig
	img := m.RenderTerrain()

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetStrokeColor(color.NRGBA{20, 20, 20, 255})
	gc.SetLineWidth(1)

	isWater := func(i int) bool { return m.Heightmap[i] < cfg.SeaLevel }
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			i := y*cfg.Width + x
			// Draw the shared cell edge wherever land meets water.
			if x+1 < cfg.Width && isWater(i) != isWater(i+1) {
				gc.MoveTo(float64(x+1), float64(y))
				gc.LineTo(float64(x+1), float64(y+1))
				gc.Stroke()
			}
			if y+1 < cfg.Height && isWater(i) != isWater(i+cfg.Width) {
				gc.MoveTo(float64(x), float64(y+1))
				gc.LineTo(float64(x+1), float64(y+1))
				gc.Stroke()
			}
		}
	}
	return img
}

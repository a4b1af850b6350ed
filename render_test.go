package dayzmapgen

import "testing"

func TestRenderImageSizes(t *testing.T) {
	cfg := NewConfig()
	cfg.GenerationConfig.Width = 16
	cfg.GenerationConfig.Height = 8
	cfg.GenerationConfig.UseRandomSeed = false
	cfg.BiomeConfig.UseRandomSeed = false

	m, err := NewMapFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	m.Generate()

	for name, bounds := range map[string][2]int{
		"terrain":   {m.RenderTerrain().Bounds().Dx(), m.RenderTerrain().Bounds().Dy()},
		"gray":      {m.RenderHeightmapGray().Bounds().Dx(), m.RenderHeightmapGray().Bounds().Dy()},
		"biomes":    {m.RenderBiomes().Bounds().Dx(), m.RenderBiomes().Bounds().Dy()},
		"shaded":    {m.RenderShaded().Bounds().Dx(), m.RenderShaded().Bounds().Dy()},
		"gradient":  {m.RenderElevationGradient().Bounds().Dx(), m.RenderElevationGradient().Bounds().Dy()},
		"coastline": {m.RenderCoastline().Bounds().Dx(), m.RenderCoastline().Bounds().Dy()},
	} {
		if bounds[0] != 16 || bounds[1] != 8 {
			t.Errorf("%s image is %dx%d, want 16x8", name, bounds[0], bounds[1])
		}
	}
}

func TestHeightColorBands(t *testing.T) {
	sea := 0.4
	deep := heightColor(0.1, sea)
	shallow := heightColor(0.3, sea)
	land := heightColor(0.45, sea)
	peak := heightColor(0.9, sea)
	if deep == shallow || shallow == land || land == peak {
		t.Error("height palette bands are not distinct")
	}
}

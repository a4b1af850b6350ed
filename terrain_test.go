package dayzmapgen

import (
	"math"
	"testing"
)

func testGenerationConfig() *GenerationConfig {
	cfg := NewGenerationConfig()
	cfg.Width = 64
	cfg.Height = 64
	cfg.UseRandomSeed = false
	return cfg
}

func TestGenerateHeightmapRange(t *testing.T) {
	cfg := testGenerationConfig()
	for _, island := range []bool{false, true} {
		cfg.IslandMode = island
		heightmap := GenerateHeightmap(cfg, 12345, nil)
		if len(heightmap) != cfg.Width*cfg.Height {
			t.Fatalf("got %d cells, want %d", len(heightmap), cfg.Width*cfg.Height)
		}
		for i, v := range heightmap {
			if v < 0 || v > 1 {
				t.Fatalf("island=%v: cell %d = %f, want [0, 1]", island, i, v)
			}
		}
	}
}

func TestGenerateHeightmapDeterministic(t *testing.T) {
	cfg := testGenerationConfig()
	a := GenerateHeightmap(cfg, 777, nil)
	b := GenerateHeightmap(cfg, 777, nil)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs: %f != %f", i, a[i], b[i])
		}
	}
}

func TestIslandFalloff(t *testing.T) {
	cfg := testGenerationConfig()
	cfg.IslandMode = false
	open := GenerateHeightmap(cfg, 42, nil)

	cfg.IslandMode = true
	island := GenerateHeightmap(cfg, 42, nil)

	// The grid center lies outside the border fraction and must not be
	// attenuated.
	center := (cfg.Height/2)*cfg.Width + cfg.Width/2
	if island[center] != open[center] {
		t.Errorf("center cell attenuated: %f != %f", island[center], open[center])
	}

	// Border cells are attenuated towards zero.
	for x := 0; x < cfg.Width; x++ {
		if island[x] > open[x] {
			t.Fatalf("border cell %d raised by falloff: %f > %f", x, island[x], open[x])
		}
	}
}

func TestOverlayFullStrengthIgnoresPrevious(t *testing.T) {
	cfg := testGenerationConfig()
	cfg.Overlay = 100.0

	previous := make([]float64, cfg.Width*cfg.Height)
	for i := range previous {
		previous[i] = 0.42
	}

	fresh := GenerateHeightmap(cfg, 5, nil)
	blended := GenerateHeightmap(cfg, 5, previous)
	for i := range fresh {
		if fresh[i] != blended[i] {
			t.Fatalf("cell %d differs with overlay=100: %f != %f", i, fresh[i], blended[i])
		}
	}
}

func TestOverlayZeroStrengthKeepsPrevious(t *testing.T) {
	cfg := testGenerationConfig()
	cfg.Overlay = 0.0

	previous := make([]float64, cfg.Width*cfg.Height)
	for i := range previous {
		previous[i] = float64(i%100) / 100.0
	}

	blended := GenerateHeightmap(cfg, 5, previous)
	for i := range blended {
		if math.Abs(blended[i]-previous[i]) > 1e-12 {
			t.Fatalf("cell %d differs with overlay=0: %f != %f", i, blended[i], previous[i])
		}
	}
}

func TestOverlayDimensionMismatchDisablesBlend(t *testing.T) {
	cfg := testGenerationConfig()
	cfg.Overlay = 0.0

	// A previous map of the wrong size must be ignored entirely.
	previous := make([]float64, 16)
	fresh := GenerateHeightmap(cfg, 5, nil)
	blended := GenerateHeightmap(cfg, 5, previous)
	for i := range fresh {
		if fresh[i] != blended[i] {
			t.Fatalf("cell %d differs with mismatched previous map: %f != %f", i, fresh[i], blended[i])
		}
	}
}

func TestGenerateHeightmapPerlinBackend(t *testing.T) {
	cfg := testGenerationConfig()
	cfg.UsePerlin = true
	heightmap := GenerateHeightmap(cfg, 12345, nil)
	for i, v := range heightmap {
		if v < 0 || v > 1 {
			t.Fatalf("cell %d = %f, want [0, 1]", i, v)
		}
	}
}

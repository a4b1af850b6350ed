package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	dayzmapgen "github.com/4-en/dayz-map-gen"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	width     = flag.Int("width", 512, "map width in cells")
	height    = flag.Int("height", 512, "map height in cells")
	seed      = flag.Int64("seed", 12345, "generation seed")
	island    = flag.Bool("island", true, "enable island mode")
	seaLevel  = flag.Float64("sea_level", 0.4, "normalized sea level")
	refine    = flag.Bool("refine", true, "run the refinement stage")
	exportAsc = flag.Bool("export_asc", false, "export the heightmap as an ESRI ASCII grid")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := dayzmapgen.NewConfig()
	cfg.GenerationConfig.Width = *width
	cfg.GenerationConfig.Height = *height
	cfg.GenerationConfig.Seed = *seed
	cfg.GenerationConfig.UseRandomSeed = false
	cfg.GenerationConfig.IslandMode = *island
	cfg.GenerationConfig.SeaLevel = *seaLevel
	cfg.BiomeConfig.UseRandomSeed = false

	m, err := dayzmapgen.NewMapFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	m.GenerateTerrain()
	if *refine {
		m.Refine()
	}
	m.ClassifyBiomes()

	if err := m.ExportPng("terrain.png"); err != nil {
		log.Fatal(err)
	}
	if err := m.ExportHeightmapPng("heightmap.png"); err != nil {
		log.Fatal(err)
	}
	if err := m.ExportBiomesPng("biomes.png"); err != nil {
		log.Fatal(err)
	}
	if *exportAsc {
		if err := m.ExportAsc("heightmap.asc", nil); err != nil {
			log.Fatal(err)
		}
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}

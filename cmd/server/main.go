package main

import (
	"bytes"
	"flag"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"sync"

	dayzmapgen "github.com/4-en/dayz-map-gen"
	"github.com/gorilla/mux"
	"golang.org/x/image/draw"
)

var worldmap *dayzmapgen.Map
var worldmapMu sync.Mutex

var (
	addr     = flag.String("addr", ":3333", "listen address")
	width    = flag.Int("width", 512, "map width in cells")
	height   = flag.Int("height", 512, "map height in cells")
	seed     = flag.Int64("seed", 12345, "generation seed")
	island   = flag.Bool("island", true, "enable island mode")
	seaLevel = flag.Float64("sea_level", 0.4, "normalized sea level")
)

func main() {
	flag.Parse()

	// Initialize the config.
	cfg := dayzmapgen.NewConfig()
	cfg.GenerationConfig.Width = *width
	cfg.GenerationConfig.Height = *height
	cfg.GenerationConfig.Seed = *seed
	cfg.GenerationConfig.UseRandomSeed = false
	cfg.GenerationConfig.IslandMode = *island
	cfg.GenerationConfig.SeaLevel = *seaLevel
	cfg.BiomeConfig.UseRandomSeed = false

	// Initialize the map.
	m, err := dayzmapgen.NewMapFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	m.Generate()
	worldmap = m

	// Start the server.
	router := mux.NewRouter()
	router.HandleFunc("/terrain.png", terrainHandler)
	router.HandleFunc("/heightmap.png", heightmapHandler)
	router.HandleFunc("/biomes.png", biomesHandler)
	router.HandleFunc("/shaded.png", shadedHandler)
	router.HandleFunc("/gradient.png", gradientHandler)
	router.HandleFunc("/coastline.png", coastlineHandler)
	router.HandleFunc("/regenerate/{seed}", regenerateHandler)
	log.Fatal(http.ListenAndServe(*addr, router))
}

func regenerateHandler(res http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	seed, err := strconv.ParseInt(vars["seed"], 10, 64)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	worldmapMu.Lock()
	worldmap.GenerateTerrainSeeded(seed)
	worldmap.Refine()
	worldmap.ClassifyBiomesSeeded(seed)
	worldmapMu.Unlock()

	res.WriteHeader(http.StatusNoContent)
}

func terrainHandler(res http.ResponseWriter, req *http.Request) {
	worldmapMu.Lock()
	img := worldmap.RenderTerrain()
	worldmapMu.Unlock()
	writeImage(res, req, img)
}

func heightmapHandler(res http.ResponseWriter, req *http.Request) {
	worldmapMu.Lock()
	img := worldmap.RenderHeightmapGray()
	worldmapMu.Unlock()
	writeImage(res, req, img)
}

func biomesHandler(res http.ResponseWriter, req *http.Request) {
	worldmapMu.Lock()
	img := worldmap.RenderBiomes()
	worldmapMu.Unlock()
	writeImage(res, req, img)
}

func shadedHandler(res http.ResponseWriter, req *http.Request) {
	worldmapMu.Lock()
	img := worldmap.RenderShaded()
	worldmapMu.Unlock()
	writeImage(res, req, img)
}

func gradientHandler(res http.ResponseWriter, req *http.Request) {
	worldmapMu.Lock()
	img := worldmap.RenderElevationGradient()
	worldmapMu.Unlock()
	writeImage(res, req, img)
}

func coastlineHandler(res http.ResponseWriter, req *http.Request) {
	worldmapMu.Lock()
	img := worldmap.RenderCoastline()
	worldmapMu.Unlock()
	writeImage(res, req, img)
}

// writeImage writes the image to the response writer, downscaled to the
// requested 'size' if one is given.
func writeImage(w http.ResponseWriter, req *http.Request, img image.Image) {
	if s := req.URL.Query().Get("size"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil || size <= 0 {
			http.Error(w, "invalid size", http.StatusBadRequest)
			return
		}
		scaled := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)
		img = scaled
	}

	buffer := new(bytes.Buffer)
	if err := png.Encode(buffer, img); err != nil {
		log.Println("unable to encode image.")
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(buffer.Bytes())))
	if _, err := w.Write(buffer.Bytes()); err != nil {
		log.Println("unable to write image.")
	}
}

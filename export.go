package dayzmapgen

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/davvo/mercator"
)

// AscExportOptions holds the georeferencing parameters for the ESRI
// ASCII grid export.
type AscExportOptions struct {
	MinElevation float64 // Elevation in meters mapped to heightmap value 0
	MaxElevation float64 // Elevation in meters mapped to heightmap value 1
	OriginLat    float64 // Latitude of the lower-left corner
	OriginLon    float64 // Longitude of the lower-left corner
	CellSize     float64 // Cell size in meters
}

// NewAscExportOptions returns export options for a sea-level-anchored
// 1 m cell grid at the null island origin.
func NewAscExportOptions() *AscExportOptions {
	return &AscExportOptions{
		MinElevation: 0.0,
		MaxElevation: 443.0,
		CellSize:     1.0,
	}
}

// ExportAsc writes the heightmap as a georeferenced ESRI ASCII grid.
// Normalized values are scaled into [MinElevation, MaxElevation] and the
// lower-left corner is projected from the configured lat/lon origin into
// spherical-mercator meters.
func (m *Map) ExportAsc(name string, opts *AscExportOptions) error {
	if opts == nil {
		opts = NewAscExportOptions()
	}
	cfg := m.Cfg.GenerationConfig

	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()
	w := bufio.NewWriter(file)

	xll, yll := mercator.LatLonToMeters(opts.OriginLat, opts.OriginLon)
	fmt.Fprintf(w, "ncols         %d\n", cfg.Width)
	fmt.Fprintf(w, "nrows         %d\n", cfg.Height)
	fmt.Fprintf(w, "xllcorner     %.1f\n", xll)
	fmt.Fprintf(w, "yllcorner     %.1f\n", yll)
	fmt.Fprintf(w, "cellsize      %.1f\n", opts.CellSize)
	fmt.Fprintf(w, "NODATA_value  -9999\n")

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			val := m.Heightmap[y*cfg.Width+x]
			elevation := opts.MinElevation + val*(opts.MaxElevation-opts.MinElevation)
			fmt.Fprintf(w, "%.2f ", elevation)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// ExportPng writes the terrain preview as a PNG file.
func (m *Map) ExportPng(name string) error {
	return writePngFile(name, m.RenderTerrain())
}

// ExportHeightmapPng writes the heightmap as an 8-bit grayscale PNG file.
func (m *Map) ExportHeightmapPng(name string) error {
	return writePngFile(name, m.RenderHeightmapGray())
}

// ExportBiomesPng writes the biome map as a PNG file.
func (m *Map) ExportBiomesPng(name string) error {
	return writePngFile(name, m.RenderBiomes())
}

func writePngFile(name string, img image.Image) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}

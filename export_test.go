package dayzmapgen

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportAsc(t *testing.T) {
	cfg := NewConfig()
	cfg.GenerationConfig.Width = 4
	cfg.GenerationConfig.Height = 3
	cfg.GenerationConfig.UseRandomSeed = false

	m, err := NewMapFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	m.GenerateTerrainSeeded(12345)

	opts := NewAscExportOptions()
	opts.MinElevation = 0.0
	opts.MaxElevation = 100.0

	name := filepath.Join(t.TempDir(), "test.asc")
	if err := m.ExportAsc(name, opts); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}

	// 6 header lines plus one line per row.
	if len(lines) != 6+cfg.GenerationConfig.Height {
		t.Fatalf("got %d lines, want %d", len(lines), 6+cfg.GenerationConfig.Height)
	}
	if !strings.HasPrefix(lines[0], "ncols") || !strings.Contains(lines[0], "4") {
		t.Errorf("bad ncols line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "nrows") || !strings.Contains(lines[1], "3") {
		t.Errorf("bad nrows line: %q", lines[1])
	}
	if !strings.HasPrefix(lines[5], "NODATA_value") {
		t.Errorf("bad NODATA line: %q", lines[5])
	}
	for i, line := range lines[6:] {
		if got := len(strings.Fields(line)); got != cfg.GenerationConfig.Width {
			t.Errorf("row %d has %d values, want %d", i, got, cfg.GenerationConfig.Width)
		}
	}
}

func TestExportHeightmapPng(t *testing.T) {
	cfg := NewConfig()
	cfg.GenerationConfig.Width = 8
	cfg.GenerationConfig.Height = 8
	cfg.GenerationConfig.UseRandomSeed = false

	m, err := NewMapFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	m.GenerateTerrainSeeded(1)

	name := filepath.Join(t.TempDir(), "test.png")
	if err := m.ExportHeightmapPng(name); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("exported PNG is empty")
	}
}

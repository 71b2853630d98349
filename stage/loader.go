package stage

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/automoto/tilebrawl/config"
	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

// yamlStage is the on-disk stage format. Width and height default to the
// window size.
type yamlStage struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Cells  Grid    `yaml:"cells"`
}

// Load reads a stage from fsys, choosing the format by extension.
func Load(fsys fs.FS, path string) (*Stage, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(fsys, path)
	case ".tmx":
		return LoadTMX(fsys, path)
	}
	return nil, fmt.Errorf("stage %s: unsupported format", path)
}

// LoadYAML parses a YAML stage file.
func LoadYAML(fsys fs.FS, path string) (*Stage, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read stage %s: %w", path, err)
	}
	return ParseYAML(stemName(path), data)
}

// ParseYAML decodes stage data. fallbackName is used when the document does
// not name itself.
func ParseYAML(fallbackName string, data []byte) (*Stage, error) {
	var ys yamlStage
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("decode stage %s: %w", fallbackName, err)
	}
	if ys.Name == "" {
		ys.Name = fallbackName
	}
	if ys.Width == 0 {
		ys.Width = float64(config.C.Width)
	}
	if ys.Height == 0 {
		ys.Height = float64(config.C.Height)
	}
	return New(ys.Name, ys.Cells, ys.Width, ys.Height)
}

// LoadTMX parses a Tiled map. The first tile layer is the occupancy grid:
// any non-empty tile is solid. The world size is the map size in pixels.
func LoadTMX(fsys fs.FS, path string) (*Stage, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", path, ErrEmptyGrid)
	}

	layer := levelMap.Layers[0]
	cells := make(Grid, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		cells[y] = make([]int, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			i := y*levelMap.Width + x
			if i < len(layer.Tiles) && !layer.Tiles[i].IsNil() {
				cells[y][x] = Solid
			}
		}
	}

	return New(stemName(path), cells,
		float64(levelMap.Width*levelMap.TileWidth),
		float64(levelMap.Height*levelMap.TileHeight),
	)
}

func stemName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

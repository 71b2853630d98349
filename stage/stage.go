// Package stage turns occupancy grids into the static tile geometry of a
// level.
package stage

import (
	"errors"
	"fmt"

	"github.com/automoto/tilebrawl/gamemath"
)

const (
	Empty = 0
	Solid = 1
)

var (
	ErrEmptyGrid   = errors.New("stage grid is empty")
	ErrJaggedGrid  = errors.New("stage grid rows differ in length")
	ErrInvalidCell = errors.New("stage grid cell must be 0 or 1")
	ErrInvalidSize = errors.New("stage size must be positive")
)

// Grid is a row-major occupancy grid.
type Grid [][]int

// Tile is one solid cell in world pixels. Index is its position in the
// generated sequence and orders collision resolution.
type Tile struct {
	Index int
	Rect  gamemath.Rect
}

// Stage is a validated grid plus the world area it is stretched over.
type Stage struct {
	Name   string
	Cells  Grid
	Width  float64
	Height float64
}

// Validate reports whether g is non-empty, rectangular and binary.
func (g Grid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	cols := len(g[0])
	for r, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrJaggedGrid, r, len(row), cols)
		}
		for c, cell := range row {
			if cell != Empty && cell != Solid {
				return fmt.Errorf("%w: cell (%d,%d) = %d", ErrInvalidCell, r, c, cell)
			}
		}
	}
	return nil
}

func (g Grid) Rows() int { return len(g) }

func (g Grid) Columns() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// New validates cells and returns a stage covering width x height pixels.
func New(name string, cells Grid, width, height float64) (*Stage, error) {
	if err := cells.Validate(); err != nil {
		return nil, fmt.Errorf("stage %q: %w", name, err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("stage %q: %w: %vx%v", name, ErrInvalidSize, width, height)
	}
	return &Stage{Name: name, Cells: cells, Width: width, Height: height}, nil
}

// TileSize returns the world size of one cell.
func (s *Stage) TileSize() (w, h float64) {
	return s.Width / float64(s.Cells.Columns()), s.Height / float64(s.Cells.Rows())
}

// Tiles generates the solid tiles of the stage.
func (s *Stage) Tiles() []Tile {
	w, h := s.TileSize()
	return Tiles(s.Cells, w, h)
}

// Tiles emits one tile per solid cell, in row-major order, positioned at
// (col*tileW, row*tileH). The grid must already be valid.
func Tiles(g Grid, tileW, tileH float64) []Tile {
	var tiles []Tile
	for row, cells := range g {
		for col, cell := range cells {
			if cell != Solid {
				continue
			}
			tiles = append(tiles, Tile{
				Index: len(tiles),
				Rect: gamemath.Rect{
					X: float64(col) * tileW,
					Y: float64(row) * tileH,
					W: tileW,
					H: tileH,
				},
			})
		}
	}
	return tiles
}

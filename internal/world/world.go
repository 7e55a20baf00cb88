package world

import (
	"iter"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/gridworld/internal/platform/errors"
)

const (
	// MaxDimension bounds width and height individually.
	MaxDimension = 1 << 16

	// MaxCells bounds width*height. The height limit for a given width is
	// min(MaxDimension, MaxCells/width), so the product never overflows int.
	MaxCells = 1 << 22
)

// World is a width x height grid of cells stored row-major.
type World struct {
	width  int
	height int
	cells  []Cell
}

// New allocates a world with every cell named DefaultCellName.
//
// Width is validated before height. Width must be in [1, MaxDimension];
// height must be in [1, MaxHeight(width)].
func New(width, height int) (*World, error) {
	if err := validateDimension(apperrors.CodeWorldInvalidWidth, "width", width, MaxDimension); err != nil {
		return nil, err
	}
	if err := validateDimension(apperrors.CodeWorldInvalidHeight, "height", height, MaxHeight(width)); err != nil {
		return nil, err
	}

	cells := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = NewCell(DefaultCellName, x, y)
		}
	}
	return &World{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// MaxHeight returns the largest height accepted alongside width, or 0 when
// width itself is out of range.
func MaxHeight(width int) int {
	if width <= 0 || width > MaxDimension {
		return 0
	}
	return min(MaxDimension, MaxCells/width)
}

// Width returns the number of columns.
func (w *World) Width() int { return w.width }

// Height returns the number of rows.
func (w *World) Height() int { return w.height }

// Size returns the number of cells.
func (w *World) Size() int { return len(w.cells) }

// Contains reports whether (x, y) addresses a cell.
func (w *World) Contains(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// GetCell returns the cell at (x, y).
func (w *World) GetCell(x, y int) (Cell, error) {
	idx, err := w.index(x, y)
	if err != nil {
		return Cell{}, err
	}
	return w.cells[idx], nil
}

// SetCellName renames the cell at (x, y).
//
// Checks run in order: x bound, y bound, missing name, blank name. Nothing is
// written unless all of them pass. The name is stored as given.
func (w *World) SetCellName(x, y int, name string) error {
	idx, err := w.index(x, y)
	if err != nil {
		return err
	}
	if name == "" {
		return apperrors.New(apperrors.CodeCellNameMissing, "cell name is required")
	}
	if strings.TrimSpace(name) == "" {
		return apperrors.New(apperrors.CodeCellNameBlank, "cell name cannot be blank")
	}
	w.cells[idx].name = name
	return nil
}

// All yields every cell in row-major order.
func (w *World) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range w.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Rows returns a copy of the grid indexed [y][x].
func (w *World) Rows() [][]Cell {
	rows := make([][]Cell, w.height)
	for y := range rows {
		row := make([]Cell, w.width)
		copy(row, w.cells[y*w.width:(y+1)*w.width])
		rows[y] = row
	}
	return rows
}

func (w *World) index(x, y int) (int, error) {
	if x < 0 || x >= w.width {
		return 0, outOfRange(apperrors.CodeWorldXOutOfRange, "x", x, w.width)
	}
	if y < 0 || y >= w.height {
		return 0, outOfRange(apperrors.CodeWorldYOutOfRange, "y", y, w.height)
	}
	return y*w.width + x, nil
}

func validateDimension(code apperrors.Code, param string, value, limit int) error {
	if value > 0 && value <= limit {
		return nil
	}
	return apperrors.WithMetadata(code, param+" must be between 1 and "+strconv.Itoa(limit), map[string]string{
		"Param": param,
		"Value": strconv.Itoa(value),
		"Max":   strconv.Itoa(limit),
	})
}

func outOfRange(code apperrors.Code, axis string, value, bound int) error {
	return apperrors.WithMetadata(code, axis+" coordinate "+strconv.Itoa(value)+" is out of bounds", map[string]string{
		"Axis":  axis,
		"Value": strconv.Itoa(value),
		"Limit": strconv.Itoa(bound - 1),
	})
}

package world

// DefaultCellName is the label every cell carries when a world is created.
const DefaultCellName = "Empty"

// Cell is one grid slot. Its coordinates are fixed at creation.
type Cell struct {
	name string
	x    int
	y    int
}

// NewCell builds a cell at (x, y) with the given name.
func NewCell(name string, x, y int) Cell {
	return Cell{name: name, x: x, y: y}
}

// Name returns the cell label.
func (c Cell) Name() string { return c.name }

// X returns the column of the cell.
func (c Cell) X() int { return c.x }

// Y returns the row of the cell.
func (c Cell) Y() int { return c.y }

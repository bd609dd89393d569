package app

// Cursor is the editing position: column X, row Y.
// Decrements saturate at zero; there is no upper bound.
type Cursor struct {
	X, Y uint
}

// Up moves one row up, stopping at row 0.
func (c *Cursor) Up() {
	if c.Y > 0 {
		c.Y--
	}
}

// Down moves one row down.
func (c *Cursor) Down() {
	c.Y++
}

// Left moves one column left, stopping at column 0.
func (c *Cursor) Left() {
	if c.X > 0 {
		c.X--
	}
}

// Right moves one column right.
func (c *Cursor) Right() {
	c.X++
}

// NewLine moves to column 0 of the next row.
func (c *Cursor) NewLine() {
	c.X = 0
	c.Y++
}

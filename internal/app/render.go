package app

// draw renders one frame: the status line, then the cursor, then a
// single flush so the frame appears at once.
func (e *Editor) draw() {
	e.drawStatusLine()
	e.backend.ShowCursor(int(e.cursor.X), int(e.cursor.Y))
	e.backend.Show()
}

// drawStatusLine writes the status text at column 0 of the
// second-to-last row.
func (e *Editor) drawStatusLine() {
	e.backend.SetString(0, e.statusRow(), e.status)
}

// statusRow is height-2, or 0 on terminals shorter than two rows.
func (e *Editor) statusRow() int {
	if e.height < 2 {
		return 0
	}
	return e.height - 2
}

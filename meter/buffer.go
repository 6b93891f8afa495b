package meter

import "strings"

// Rect is a rectangular region on a Buffer, addressed in cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the first column past the region.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the region.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the region covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Cell is a single character cell.
type Cell struct {
	Rune  rune
	Color Color
}

// Buffer is a fixed-size grid of cells that meters draw into. It keeps
// semantic colors only; escape sequences are produced by View once the
// whole frame is composed.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer returns a cleared buffer of the given size. Non-positive
// dimensions yield an empty buffer.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range b.cells {
		b.cells[i].Rune = ' '
	}
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Area returns the rectangle covering the whole buffer.
func (b *Buffer) Area() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Set writes one cell. Writes outside the buffer are ignored.
func (b *Buffer) Set(x, y int, r rune, c Color) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Color: c}
}

// SetString writes s starting at (x, y), one rune per cell, clipped to the
// buffer bounds.
func (b *Buffer) SetString(x, y int, s string, c Color) {
	for _, r := range s {
		b.Set(x, y, r, c)
		x++
	}
}

// Cell returns the cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *Buffer) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Row returns one row as plain text without color.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.cells[y*b.width+x].Rune)
	}
	return sb.String()
}

// String returns the buffer as plain text without color, one line per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Row(y))
	}
	return sb.String()
}

// View renders the buffer as terminal output, one line per row, inserting
// color escape sequences as needed for the detected terminal profile.
func (b *Buffer) View() string {
	var sb strings.Builder
	state := newANSIState()
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			state.set(&sb, cell.Color)
			sb.WriteRune(cell.Rune)
		}
		state.reset(&sb)
	}
	return sb.String()
}

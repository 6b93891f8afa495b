package meter

import "github.com/charmbracelet/lipgloss"

// Frame is an optional decorative border drawn around a meter. The meter
// itself occupies the frame's inner area; the frame never changes how the
// bars are painted.
type Frame struct {
	border lipgloss.Border
	title  string
}

// NewFrame returns a rounded-corner frame with no title.
func NewFrame() Frame {
	return Frame{border: lipgloss.RoundedBorder()}
}

// WithTitle sets a title shown in the frame's top edge.
func (f Frame) WithTitle(title string) Frame {
	f.title = title
	return f
}

// WithBorder replaces the frame's border glyph set.
func (f Frame) WithBorder(border lipgloss.Border) Frame {
	f.border = border
	return f
}

// Inner returns the area remaining inside the frame's edges.
func (f Frame) Inner(area Rect) Rect {
	return Rect{
		X:      area.X + 1,
		Y:      area.Y + 1,
		Width:  area.Width - 2,
		Height: area.Height - 2,
	}
}

// draw paints the frame's edges into buf. Areas smaller than 2x2 have no
// room for a border and are skipped.
func (f Frame) draw(area Rect, buf *Buffer) {
	if area.Width < 2 || area.Height < 2 {
		return
	}

	top := area.Y
	bottom := area.Bottom() - 1
	left := area.X
	right := area.Right() - 1

	buf.Set(left, top, borderRune(f.border.TopLeft), ColorDefault)
	buf.Set(right, top, borderRune(f.border.TopRight), ColorDefault)
	buf.Set(left, bottom, borderRune(f.border.BottomLeft), ColorDefault)
	buf.Set(right, bottom, borderRune(f.border.BottomRight), ColorDefault)
	for x := left + 1; x < right; x++ {
		buf.Set(x, top, borderRune(f.border.Top), ColorDefault)
		buf.Set(x, bottom, borderRune(f.border.Bottom), ColorDefault)
	}
	for y := top + 1; y < bottom; y++ {
		buf.Set(left, y, borderRune(f.border.Left), ColorDefault)
		buf.Set(right, y, borderRune(f.border.Right), ColorDefault)
	}

	if f.title != "" && area.Width > 4 {
		title := []rune(f.title)
		if limit := area.Width - 4; len(title) > limit {
			title = title[:limit]
		}
		buf.SetString(left+2, top, string(title), ColorDefault)
	}
}

// borderRune picks the first rune of a border glyph, falling back to a
// space for empty segments.
func borderRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

package meter

import (
	"fmt"
	"math"
	"time"
)

// barRune fills bar and peak marker cells. The seven-eighths block leaves a
// hairline gap between columns so individual cells stay distinguishable.
const barRune = '▉'

// Draw paints the meter into buf within area, updating the peak-hold state
// as it goes. A nil state draws without peak memory: a throwaway state is
// used, so the marker simply sits at the current level. Drawing never
// fails; empty areas are a no-op and rows that do not fit are dropped.
func (m Meter) Draw(area Rect, buf *Buffer, state *State) {
	if buf == nil {
		return
	}
	if m.frame != nil {
		m.frame.draw(area, buf)
		area = m.frame.Inner(area)
	}
	if area.Empty() || m.channels == 0 {
		return
	}
	if state == nil {
		state = NewState()
	}

	// Rows are consumed top to bottom: the per-channel dB labels, then the
	// bars, then the scale ruler.
	nextY := area.Y
	takeRow := func() Rect {
		r := Rect{X: area.X, Y: nextY, Width: area.Width, Height: 1}
		if r.Y >= area.Bottom() {
			r.Height = 0
		}
		nextY++
		return r
	}

	var labelRows []Rect
	if m.showLabels {
		for i := 0; i < m.channels; i++ {
			labelRows = append(labelRows, takeRow())
		}
	}
	barRows := make([]Rect, 0, m.channels)
	for i := 0; i < m.channels; i++ {
		barRows = append(barRows, takeRow())
	}
	var scaleRow Rect
	if m.showScale {
		scaleRow = takeRow()
	}

	// Color zone boundaries, shared by all channels. The clamps keep the
	// last two columns reachable by yellow and red even on narrow bars.
	width := float64(area.Width)
	left := area.X
	end := left + area.Width
	yellowStart := left + int(math.Round(width*m.scale.yellowStart))
	if yellowStart > end-2 {
		yellowStart = end - 2
	}
	redStart := left + int(math.Round(width*m.scale.redStart))
	if redStart > end-1 {
		redStart = end - 1
	}

	for ch := 0; ch < m.channels; ch++ {
		ratio := m.ratio[ch]
		row := barRows[ch]

		if !row.Empty() {
			filled := left + int(math.Round(width*ratio))
			for x := left; x < end; x++ {
				if x <= filled {
					buf.Set(x, row.Y, barRune, zoneColor(x, yellowStart, redStart))
				}
			}
		}

		held := state.Update(ch, ratio, time.Now())

		// The marker is painted after the bar so it stays visible on top.
		if !row.Empty() {
			peakX := left + int(math.Round(width*held))
			if peakX < left {
				peakX = left
			} else if peakX > end-1 {
				peakX = end - 1
			}
			buf.Set(peakX, row.Y, barRune, zoneColor(peakX, yellowStart, redStart))
		}

		if m.showLabels && !labelRows[ch].Empty() {
			db := RatioToDB(ratio)
			text := "-∞ dB"
			if db > MinDB {
				text = fmt.Sprintf("%.1f dB", db)
			}
			buf.SetString(labelRows[ch].X, labelRows[ch].Y, text, ColorDefault)
		}
	}

	if m.showScale && !scaleRow.Empty() {
		m.drawScale(scaleRow, buf)
	}
}

// View renders the meter into a fresh buffer Height() rows tall and
// returns the styled string, ready to be used in a Bubble Tea view.
func (m Meter) View(width int, state *State) string {
	buf := NewBuffer(width, m.Height())
	m.Draw(buf.Area(), buf, state)
	return buf.View()
}

// zoneColor picks a bar column's color from the zone boundaries.
func zoneColor(x, yellowStart, redStart int) Color {
	switch {
	case x >= redStart:
		return ColorRed
	case x >= yellowStart:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// scaleMark is one labeled position on the ruler.
type scaleMark struct {
	label  string
	ratio  float64
	offset int
}

// drawScale paints the dB ruler, thinning the set of marks as the row
// narrows so labels do not collide. Labels sit one cell left of their exact
// position except -∞, which stays flush with the bar's left edge.
func (m Meter) drawScale(row Rect, buf *Buffer) {
	s := m.scale
	var marks []scaleMark
	switch w := row.Width; {
	case w > 50:
		marks = []scaleMark{
			{"-∞", 0, 1},
			{"-60", s.label60, 0},
			{"-40", s.label40, 0},
			{"-24", s.label24, 0},
			{"-12", s.label12, 0},
			{"-6", s.label6, 0},
			{"-3", s.label3, 0},
			{"0", s.label0, 0},
		}
	case w > 35:
		marks = []scaleMark{
			{"-∞", 0, 1},
			{"-60", s.label60, 0},
			{"-40", s.label40, 0},
			{"-24", s.label24, 0},
			{"-12", s.label12, 0},
			{"-6", s.label6, 1},
			{"0", s.label0, 0},
		}
	case w > 20:
		marks = []scaleMark{
			{"-∞", 0, 1},
			{"-60", s.label60, 0},
			{"-30", s.label30, 0},
			{"-12", s.label12, 0},
			{"0", s.label0, 0},
		}
	default:
		marks = []scaleMark{
			{"-∞", 0, 1},
			{"-60", s.label60, 0},
			{"-30", s.label30, 0},
			{"0", s.label0, 0},
		}
	}

	for _, mk := range marks {
		x := row.X - 1 + mk.offset + int(math.Round(float64(row.Width)*mk.ratio))
		if x < 0 {
			// Off the left edge of the buffer; the label has no room.
			continue
		}
		buf.SetString(x, row.Y, mk.label, ColorDefault)
	}
}

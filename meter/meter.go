// Package meter provides a horizontal audio level meter widget for
// character-cell terminals.
//
// Levels are mapped onto the bar through a perceptual dB scale with green,
// yellow and red zones, and an optional State holds peaks before letting
// them fall. Meters draw into a Buffer, so they can be composed into any
// cell-based UI; View renders straight to a styled string for Bubble Tea
// programs.
package meter

// Meter is a horizontal level meter for one or two channels. The zero
// value is not usable; start from Mono or Stereo and chain the builder
// methods, which all return a modified copy.
type Meter struct {
	frame      *Frame
	ratio      [maxChannels]float64
	channels   int
	showLabels bool
	showScale  bool
	scale      scaleRatios
}

// Mono returns a single-channel meter with the dB label and scale ruler
// enabled.
func Mono() Meter {
	return Meter{
		channels:   1,
		showLabels: true,
		showScale:  true,
		scale:      meterRatios(),
	}
}

// Stereo returns a two-channel meter with the dB labels and scale ruler
// enabled.
func Stereo() Meter {
	return Meter{
		channels:   2,
		showLabels: true,
		showScale:  true,
		scale:      meterRatios(),
	}
}

// Channels reports how many channels the meter displays.
func (m Meter) Channels() int { return m.channels }

// WithFrame surrounds the meter with a decorative frame. Bars, labels and
// the scale move into the frame's inner area.
func (m Meter) WithFrame(f Frame) Meter {
	m.frame = &f
	return m
}

// ShowLabels toggles the per-channel dB readout rows above the bars.
func (m Meter) ShowLabels(show bool) Meter {
	m.showLabels = show
	return m
}

// ShowScale toggles the dB scale ruler below the bars.
func (m Meter) ShowScale(show bool) Meter {
	m.showScale = show
	return m
}

// DB sets the level in decibels relative to full scale, one value per
// channel. Levels above 0 dBFS saturate to full scale and levels at or
// below MinDB display as empty. Channels without a value are silent.
func (m Meter) DB(dbfs ...float64) Meter {
	for ch := 0; ch < maxChannels; ch++ {
		if ch < len(dbfs) {
			m.ratio[ch] = DBToRatio(dbfs[ch])
		} else {
			m.ratio[ch] = 0
		}
	}
	return m
}

// Amplitude sets the level from linear sample amplitudes, one value per
// channel. Amplitudes outside [0, 1] saturate. Channels without a value
// are silent.
func (m Meter) Amplitude(amplitudes ...float64) Meter {
	for ch := 0; ch < maxChannels; ch++ {
		if ch < len(amplitudes) {
			m.ratio[ch] = AmplitudeToRatio(amplitudes[ch])
		} else {
			m.ratio[ch] = 0
		}
	}
	return m
}

// Ratio sets the bar fill directly, one display ratio per channel (0.75
// fills three quarters of the bar). Channels without a value are silent.
//
// Ratio panics if a value is outside [0, 1]; callers that want saturation
// should use DB or Amplitude.
func (m Meter) Ratio(ratios ...float64) Meter {
	for ch := 0; ch < maxChannels; ch++ {
		if ch >= len(ratios) {
			m.ratio[ch] = 0
			continue
		}
		r := ratios[ch]
		if r < 0 || r > 1 {
			panic("meter: ratio must be between 0 and 1 inclusive")
		}
		m.ratio[ch] = r
	}
	return m
}

// Height returns the number of rows the meter occupies: one bar row per
// channel, plus label rows, the scale row and frame edges when enabled.
func (m Meter) Height() int {
	h := m.channels
	if m.showLabels {
		h += m.channels
	}
	if m.showScale {
		h++
	}
	if m.frame != nil {
		h += 2
	}
	return h
}

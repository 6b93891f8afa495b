package meter

import "time"

// maxChannels is the most channels a Meter can display.
const maxChannels = 2

// DefaultHoldTime is the peak-hold duration of a State from NewState.
const DefaultHoldTime = time.Second

// Decay tuning. Once the hold window has passed, the held ratio is
// multiplied each update by a factor that shrinks from decaySlow toward
// decayFast as idle time grows, and anything below peakFloor snaps to zero.
const (
	decaySlow = 0.99
	decayFast = 0.1
	decayRate = 0.01
	peakFloor = 1e-3
)

// State carries a Meter's peak-hold history between frames.
//
// When a meter is drawn with a State, the highest ratio seen stays marked
// for HoldTime, then falls back toward zero, accelerating the longer no new
// peak arrives. Use one State per meter.
type State struct {
	// HoldTime is how long a peak is held before it starts to fall.
	HoldTime time.Duration

	held     [maxChannels]float64
	lastPeak [maxChannels]time.Time
}

// NewState returns a State with no recorded peaks and the default hold time.
func NewState() *State {
	now := time.Now()
	return &State{
		HoldTime: DefaultHoldTime,
		lastPeak: [maxChannels]time.Time{now, now},
	}
}

// Update folds one channel's current ratio into the peak-hold state and
// returns the ratio to mark. A new peak wins immediately and restarts the
// hold window; within the window the previous peak is kept; past it the
// peak decays. now should be a monotonic reading such as time.Now().
//
// Update panics if channel is outside the supported range.
func (s *State) Update(channel int, ratio float64, now time.Time) float64 {
	if channel < 0 || channel >= maxChannels {
		panic("meter: channel out of range")
	}

	elapsed := now.Sub(s.lastPeak[channel]).Seconds()
	switch {
	case ratio > s.held[channel]:
		s.held[channel] = ratio
		s.lastPeak[channel] = now
	case elapsed > s.HoldTime.Seconds():
		factor := decaySlow - decayRate*elapsed
		if factor < decayFast {
			factor = decayFast
		} else if factor > decaySlow {
			factor = decaySlow
		}
		s.held[channel] *= factor
		if s.held[channel] < peakFloor {
			s.held[channel] = 0
		}
	}
	return s.held[channel]
}

// Peak reports the held ratio for a channel without updating it.
//
// Peak panics if channel is outside the supported range.
func (s *State) Peak(channel int) float64 {
	if channel < 0 || channel >= maxChannels {
		panic("meter: channel out of range")
	}
	return s.held[channel]
}

package source

import "math"

// sweepSteps is the length of the precomputed level table.
const sweepSteps = 100

// Sweep cycles four cursors through one shared sine table at different
// strides, so the lanes drift in and out of phase with each other.
type Sweep struct {
	levels  []float64
	cursors [Lanes]int
	strides [Lanes]int
}

func NewSweep() *Sweep {
	return &Sweep{
		levels:  sineLevels(sweepSteps),
		cursors: [Lanes]int{0, 10, 20, 50},
		strides: [Lanes]int{1, 2, 3, 1},
	}
}

func (s *Sweep) Name() string { return "sweep" }

func (s *Sweep) Step() [Lanes]float64 {
	var out [Lanes]float64
	for i := range s.cursors {
		out[i] = s.levels[s.cursors[i]]
		s.cursors[i] = (s.cursors[i] + s.strides[i]) % len(s.levels)
	}
	return out
}

// sineLevels builds one sine cycle of dBFS values spanning -125 to 0, the
// bottom dipping below the meter floor so lanes go fully quiet.
func sineLevels(steps int) []float64 {
	out := make([]float64, steps)
	for i := 0; i < steps; i++ {
		phase := float64(i) / float64(steps) * 2 * math.Pi
		normalized := math.Sin(phase)*0.5 + 0.5
		out[i] = -125 + normalized*125
	}
	return out
}

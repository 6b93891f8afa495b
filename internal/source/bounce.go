package source

import (
	"math/rand"

	"github.com/charmbracelet/harmonica"
)

// Bounce drives each lane with a damped spring chasing random dB targets.
// The underdamped motion gives the peak markers sharp rises to latch onto.
type Bounce struct {
	spring harmonica.Spring
	pos    [Lanes]float64
	vel    [Lanes]float64
	target [Lanes]float64
	ticks  int
	period int
}

func NewBounce(fps int) *Bounce {
	b := &Bounce{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 0.25),
		period: fps / 2,
	}
	if b.period < 1 {
		b.period = 1
	}
	for i := range b.pos {
		b.pos[i] = -120
	}
	b.retarget()
	return b
}

func (b *Bounce) Name() string { return "bounce" }

func (b *Bounce) Step() [Lanes]float64 {
	b.ticks++
	if b.ticks%b.period == 0 {
		b.retarget()
	}
	var out [Lanes]float64
	for i := range b.pos {
		b.pos[i], b.vel[i] = b.spring.Update(b.pos[i], b.vel[i], b.target[i])
		out[i] = b.pos[i]
	}
	return out
}

// retarget picks a fresh level for every lane, biased toward the loud end
// of the scale where the meter has the most resolution.
func (b *Bounce) retarget() {
	for i := range b.target {
		b.target[i] = -45 + rand.Float64()*45
	}
}

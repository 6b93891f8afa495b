// Package source generates the level feeds for the showcase screen.
package source

// Lanes is the number of independent level lanes a Source produces, enough
// to drive the showcase's mono and stereo meters at once.
const Lanes = 4

// Source yields one dBFS value per lane, advanced once per animation tick.
type Source interface {
	Name() string
	Step() [Lanes]float64
}

package meter

import (
	"math"
	"sync"
)

// MinDB is the silence floor of the meter scale. Levels at or below this
// value display as empty.
const MinDB = -120.0

// logScaleFactor shapes the dB-to-ratio mapping. Raising the linear dB
// position to this power spends more of the bar on the loud end, where the
// ear wants resolution.
const logScaleFactor = 2.0

// Zone boundaries in dBFS.
const (
	YellowStartDB = -12.0
	RedStartDB    = -3.0
)

// DBToRatio converts a level in decibels relative to full scale to a
// display ratio in [0, 1]. Levels at or below MinDB map to 0 and levels at
// or above 0 dBFS map to 1.
func DBToRatio(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	if db >= 0 {
		return 1
	}
	linear := (db - MinDB) / -MinDB
	return math.Pow(linear, logScaleFactor)
}

// RatioToDB converts a display ratio back to dBFS. It inverts DBToRatio;
// RatioToDB(0) returns MinDB rather than negative infinity. Ratios outside
// [0, 1] are clamped.
func RatioToDB(ratio float64) float64 {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	linear := math.Pow(ratio, 1/logScaleFactor)
	return linear*-MinDB + MinDB
}

// AmplitudeToDB converts a linear sample amplitude to dBFS, clamped to
// [MinDB, 0]. Zero and negative amplitudes return negative infinity.
func AmplitudeToDB(amplitude float64) float64 {
	if amplitude <= 0 {
		return math.Inf(-1)
	}
	db := 20 * math.Log10(amplitude)
	if db < MinDB {
		return MinDB
	}
	if db > 0 {
		return 0
	}
	return db
}

// AmplitudeToRatio converts a linear sample amplitude to a display ratio.
// Amplitudes outside [0, 1] saturate, and amplitudes below the MinDB floor
// map to 0, so the result always agrees with DBToRatio(AmplitudeToDB(a)).
func AmplitudeToRatio(amplitude float64) float64 {
	if amplitude <= 0 {
		return 0
	}
	if amplitude >= 1 {
		return 1
	}
	l := MinDB / 20 // log10 of the floor's linear amplitude
	linear := (math.Log10(amplitude) - l) / -l
	if linear <= 0 {
		return 0
	}
	return math.Pow(linear, logScaleFactor)
}

// scaleRatios holds the display ratios of the fixed dB marks: the color
// zone boundaries and the labeled ruler positions. Computed once and copied
// onto each Meter at construction, so rendering never recomputes them.
type scaleRatios struct {
	yellowStart float64
	redStart    float64

	label60 float64
	label40 float64
	label30 float64
	label24 float64
	label12 float64
	label6  float64
	label3  float64
	label0  float64
}

var (
	ratiosOnce sync.Once
	ratios     scaleRatios
)

func meterRatios() scaleRatios {
	ratiosOnce.Do(func() {
		ratios = scaleRatios{
			yellowStart: DBToRatio(YellowStartDB),
			redStart:    DBToRatio(RedStartDB),
			label60:     DBToRatio(-60),
			label40:     DBToRatio(-40),
			label30:     DBToRatio(-30),
			label24:     DBToRatio(-24),
			label12:     DBToRatio(-12),
			label6:      DBToRatio(-6),
			label3:      DBToRatio(-3),
			label0:      DBToRatio(0),
		}
	})
	return ratios
}

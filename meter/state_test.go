package meter

import (
	"math"
	"testing"
	"time"
)

func TestStateRiseWinsImmediately(t *testing.T) {
	s := NewState()
	base := time.Now()
	if got := s.Update(0, 0.5, base); got != 0.5 {
		t.Fatalf("Update() = %v, want 0.5", got)
	}
	// A louder level replaces the peak even while the hold window is open.
	if got := s.Update(0, 0.8, base.Add(10*time.Millisecond)); got != 0.8 {
		t.Fatalf("Update() = %v, want 0.8", got)
	}
	if got := s.Peak(0); got != 0.8 {
		t.Fatalf("Peak(0) = %v, want 0.8", got)
	}
}

func TestStateHoldsWithinWindow(t *testing.T) {
	s := NewState()
	base := time.Now()
	s.Update(0, 0.8, base)
	if got := s.Update(0, 0.2, base.Add(500*time.Millisecond)); got != 0.8 {
		t.Fatalf("Update() = %v, want peak held at 0.8", got)
	}
}

func TestStateDecaysAfterHold(t *testing.T) {
	s := NewState()
	base := time.Now()
	s.Update(0, 0.8, base)
	got := s.Update(0, 0.2, base.Add(1500*time.Millisecond))
	want := 0.8 * (decaySlow - decayRate*1.5)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("Update() = %v, want %v", got, want)
	}
}

func TestStateDecayAccelerates(t *testing.T) {
	s := NewState()
	base := time.Now()
	s.Update(0, 1.0, base)
	first := s.Update(0, 0, base.Add(2*time.Second))
	second := s.Update(0, 0, base.Add(4*time.Second))
	// Idle time is measured from the last genuine peak, so each step
	// multiplies by a smaller factor than the one before.
	firstFactor := first
	secondFactor := second / first
	if secondFactor >= firstFactor {
		t.Fatalf("decay factors = %v then %v, want shrinking", firstFactor, secondFactor)
	}
}

func TestStateDecayFactorFloor(t *testing.T) {
	s := NewState()
	base := time.Now()
	s.Update(0, 1.0, base)
	got := s.Update(0, 0, base.Add(200*time.Second))
	if math.Abs(got-decayFast) > 1e-12 {
		t.Fatalf("Update() = %v, want factor floored at %v", got, decayFast)
	}
}

func TestStateIdlePeakReachesZero(t *testing.T) {
	s := NewState()
	base := time.Now()
	s.Update(0, 0.5, base)
	now := base
	for range 200 {
		now = now.Add(2 * time.Second)
		if s.Update(0, 0, now) == 0 {
			return
		}
	}
	t.Fatalf("Peak(0) = %v, never snapped to zero", s.Peak(0))
}

func TestStateCustomHoldTime(t *testing.T) {
	s := NewState()
	s.HoldTime = 100 * time.Millisecond
	base := time.Now()
	s.Update(0, 0.8, base)
	if got := s.Update(0, 0, base.Add(200*time.Millisecond)); got >= 0.8 {
		t.Fatalf("Update() = %v, want decay after the shortened hold", got)
	}
}

func TestStateChannelsIndependent(t *testing.T) {
	s := NewState()
	base := time.Now()
	s.Update(0, 0.9, base)
	if got := s.Peak(1); got != 0 {
		t.Fatalf("Peak(1) = %v, want 0", got)
	}
	s.Update(1, 0.4, base)
	if got := s.Peak(0); got != 0.9 {
		t.Fatalf("Peak(0) = %v, want 0.9", got)
	}
	if got := s.Peak(1); got != 0.4 {
		t.Fatalf("Peak(1) = %v, want 0.4", got)
	}
}

func TestStateUpdatePanicsOnBadChannel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Update() with channel 2 did not panic")
		}
	}()
	NewState().Update(2, 0.5, time.Now())
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.HoldTime != DefaultHoldTime {
		t.Fatalf("HoldTime = %v, want %v", s.HoldTime, DefaultHoldTime)
	}
	if got := s.Peak(0); got != 0 {
		t.Fatalf("Peak(0) = %v, want 0", got)
	}
	if got := s.Peak(1); got != 0 {
		t.Fatalf("Peak(1) = %v, want 0", got)
	}
}

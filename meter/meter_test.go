package meter

import "testing"

func TestMeterDBFullScale(t *testing.T) {
	m := Mono().DB(0)
	if m.ratio[0] != 1.0 {
		t.Fatalf("ratio[0] = %v, want 1", m.ratio[0])
	}
}

func TestMeterDBSaturatesAboveFullScale(t *testing.T) {
	m := Mono().DB(0.1)
	if m.ratio[0] != 1.0 {
		t.Fatalf("ratio[0] = %v, want 1", m.ratio[0])
	}
}

func TestMeterDBSaturatesBelowFloor(t *testing.T) {
	m := Mono().DB(-130)
	if m.ratio[0] != 0 {
		t.Fatalf("ratio[0] = %v, want 0", m.ratio[0])
	}
}

func TestMeterStereoDB(t *testing.T) {
	m := Stereo().DB(0, 0)
	if m.ratio[0] != 1.0 || m.ratio[1] != 1.0 {
		t.Fatalf("ratio = %v, want both 1", m.ratio)
	}
}

func TestMeterMissingChannelIsSilent(t *testing.T) {
	m := Stereo().DB(-6)
	if m.ratio[1] != 0 {
		t.Fatalf("ratio[1] = %v, want 0", m.ratio[1])
	}
	m = Stereo().Ratio(0.5)
	if m.ratio[1] != 0 {
		t.Fatalf("ratio[1] = %v, want 0", m.ratio[1])
	}
}

func TestMeterAmplitudeSaturates(t *testing.T) {
	m := Stereo().Amplitude(1.5, -0.5)
	if m.ratio[0] != 1.0 {
		t.Fatalf("ratio[0] = %v, want 1", m.ratio[0])
	}
	if m.ratio[1] != 0 {
		t.Fatalf("ratio[1] = %v, want 0", m.ratio[1])
	}
}

func TestMeterRatioPanicsAboveOne(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Ratio(1.1) did not panic")
		}
	}()
	Mono().Ratio(1.1)
}

func TestMeterRatioPanicsBelowZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Ratio(-0.5) did not panic")
		}
	}()
	Mono().Ratio(-0.5)
}

func TestMeterChannels(t *testing.T) {
	if got := Mono().Channels(); got != 1 {
		t.Fatalf("Mono().Channels() = %d, want 1", got)
	}
	if got := Stereo().Channels(); got != 2 {
		t.Fatalf("Stereo().Channels() = %d, want 2", got)
	}
}

func TestMeterHeight(t *testing.T) {
	tests := []struct {
		name string
		m    Meter
		want int
	}{
		{"mono bar only", Mono().ShowLabels(false).ShowScale(false), 1},
		{"mono with scale", Mono().ShowLabels(false), 2},
		{"mono full", Mono(), 3},
		{"stereo full", Stereo(), 5},
		{"mono framed", Mono().WithFrame(NewFrame()), 5},
	}
	for _, tt := range tests {
		if got := tt.m.Height(); got != tt.want {
			t.Fatalf("%s: Height() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMeterBuilderDoesNotMutateReceiver(t *testing.T) {
	base := Mono()
	_ = base.DB(0).ShowLabels(false)
	if base.ratio[0] != 0 {
		t.Fatalf("ratio[0] = %v, want builder to copy", base.ratio[0])
	}
	if !base.showLabels {
		t.Fatalf("showLabels flipped, want builder to copy")
	}
}

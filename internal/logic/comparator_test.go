package logic

import (
	"math"
	"testing"
)

func TestCompareThresholds(t *testing.T) {
	tests := []struct {
		temp float32
		want OutputState
	}{
		{23.0, OutputHigh},
		{23.01, OutputHigh},
		{41.51, OutputHigh},
		{22.0, OutputLow},
		{21.99, OutputLow},
		{-50, OutputLow},
		{22.5, OutputMid},
		{22.01, OutputMid},
		{22.99, OutputMid},
	}
	for _, tt := range tests {
		if got := Compare(tt.temp); got != tt.want {
			t.Errorf("Compare(%v): got %s, want %s", tt.temp, got, tt.want)
		}
	}
}

func TestCompareNaN(t *testing.T) {
	if got := Compare(float32(math.NaN())); got != OutputMid {
		t.Errorf("Compare(NaN): got %s, want %s", got, OutputMid)
	}
}

func TestCompareNoHysteresis(t *testing.T) {
	// Alternating across the high threshold flips state every call.
	temps := []float32{22.9, 23.0, 22.9, 23.0}
	want := []OutputState{OutputMid, OutputHigh, OutputMid, OutputHigh}
	for i, temp := range temps {
		if got := Compare(temp); got != want[i] {
			t.Errorf("tick %d: got %s, want %s", i, got, want[i])
		}
	}
}

func TestPinsMutuallyExclusive(t *testing.T) {
	for temp := float32(-50); temp <= 150; temp += 0.25 {
		high, low, mid := Pins(Compare(temp))
		n := 0
		for _, on := range []bool{high, low, mid} {
			if on {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("temp %v: %d pins asserted (high=%v low=%v mid=%v)", temp, n, high, low, mid)
		}
	}
}

func TestPinsMapping(t *testing.T) {
	tests := []struct {
		state          OutputState
		high, low, mid bool
	}{
		{OutputHigh, true, false, false},
		{OutputLow, false, true, false},
		{OutputMid, false, false, true},
		{"", false, false, false},
	}
	for _, tt := range tests {
		high, low, mid := Pins(tt.state)
		if high != tt.high || low != tt.low || mid != tt.mid {
			t.Errorf("Pins(%q): got (%v, %v, %v), want (%v, %v, %v)",
				tt.state, high, low, mid, tt.high, tt.low, tt.mid)
		}
	}
}

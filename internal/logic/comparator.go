package logic

// Temperature thresholds in degrees Celsius.
const (
	HighThreshold float32 = 23.0
	LowThreshold  float32 = 22.0
)

// Compare classifies tempC. There is no hysteresis: a reading hovering on a
// threshold changes state on every call. NaN falls through to OutputMid.
func Compare(tempC float32) OutputState {
	switch {
	case tempC >= HighThreshold:
		return OutputHigh
	case tempC <= LowThreshold:
		return OutputLow
	default:
		return OutputMid
	}
}

// Pins returns the levels of the HIGH, LOW and MID output pins for s.
// Exactly one is true for a known state; all are false for the zero value.
func Pins(s OutputState) (high, low, mid bool) {
	return s == OutputHigh, s == OutputLow, s == OutputMid
}

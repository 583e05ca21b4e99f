package logic

// FullScale is the largest 10-bit conversion result.
const FullScale = 1023

// Light sensor calibration range in 10-bit counts.
const (
	LightMin = 0
	LightMax = 1023
)

// TemperatureCoefficient converts the inverted 10-bit reading to degrees Celsius.
const TemperatureCoefficient float32 = 0.04058

// scale10 expands an 8-bit high byte back to the 10-bit range.
func scale10(sample uint8) uint16 {
	return uint16(sample) * 4
}

// TemperatureC applies the linear thermistor approximation:
// Vo = 1023 - sample*4, T = Vo * 0.04058.
func TemperatureC(sample uint8) float32 {
	vo := FullScale - scale10(sample)
	return float32(vo) * TemperatureCoefficient
}

// LightPercent maps the sample to a percentage of the calibration range,
// truncated toward zero.
func LightPercent(sample uint8) int {
	raw := scale10(sample)
	pct := float32(raw-LightMin) / float32(LightMax-LightMin) * 100
	return int(pct)
}

// Level returns the raw magnitude unchanged. Used by the microphone and
// potentiometer.
func Level(sample uint8) int {
	return int(sample)
}

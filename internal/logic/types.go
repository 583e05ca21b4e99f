// Package logic contains the pure numeric core of the monitor: per-sensor
// transfer functions and the temperature threshold comparator.
// This package has NO hardware dependencies (no converter, GPIO or display).
package logic

// OutputState is the discrete classification of the temperature that drives
// the three output pins.
type OutputState string

const (
	OutputHigh OutputState = "HIGH"
	OutputLow  OutputState = "LOW"
	OutputMid  OutputState = "MID"
)

// State holds the values produced by one pass of the control loop.
// It is owned by the loop and overwritten on every tick.
type State struct {
	TemperatureC float32
	LightPercent int
	MicLevel     int
	PotValue     int
	Output       OutputState
}

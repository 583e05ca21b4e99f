// Package gpio drives the three discrete outputs that mirror the temperature
// classification. The real implementation uses the Linux GPIO character device,
// the pin implementation uses TinyGo's machine package, and the fake
// implementation allows testing without hardware.
package gpio

import "github.com/sweeney/adc-monitor/internal/logic"

// Outputs drives the HIGH, LOW and MID output pins.
type Outputs interface {
	// Set asserts the pin for state and deasserts the other two.
	Set(state logic.OutputState) error

	// Close deasserts all pins and releases resources.
	Close() error
}

// Default pin definitions (BCM numbering)
const (
	DefaultPinHigh = 17
	DefaultPinLow  = 27
	DefaultPinMid  = 22
)

// DefaultChip is the GPIO character device holding the output pins.
const DefaultChip = "gpiochip0"

func levels(state logic.OutputState) []int {
	high, low, mid := logic.Pins(state)
	return []int{btoi(high), btoi(low), btoi(mid)}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

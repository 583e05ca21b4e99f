//go:build !linux || baremetal

package gpio

import (
	"errors"

	"github.com/sweeney/adc-monitor/internal/logic"
)

// RealOutputs is not available on non-Linux platforms.
type RealOutputs struct{}

// NewRealOutputs returns an error on non-Linux platforms.
func NewRealOutputs(chipName string, pinHigh, pinLow, pinMid int) (*RealOutputs, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// Set is not implemented on non-Linux platforms.
func (r *RealOutputs) Set(state logic.OutputState) error {
	return errors.New("gpio: not supported")
}

// Close is not implemented on non-Linux platforms.
func (r *RealOutputs) Close() error {
	return nil
}

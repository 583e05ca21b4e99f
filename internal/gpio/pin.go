//go:build baremetal

package gpio

import (
	"machine"

	"github.com/sweeney/adc-monitor/internal/logic"
)

// PinOutputs drives the outputs through microcontroller pins.
type PinOutputs struct {
	pins [3]machine.Pin
}

// NewPinOutputs configures high, low and mid as outputs, all initially low.
func NewPinOutputs(high, low, mid machine.Pin) *PinOutputs {
	p := &PinOutputs{pins: [3]machine.Pin{high, low, mid}}
	for _, pin := range p.pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}
	return p
}

// Set writes the three pin levels.
func (p *PinOutputs) Set(state logic.OutputState) error {
	for i, v := range levels(state) {
		p.pins[i].Set(v == 1)
	}
	return nil
}

// Close drives every pin low.
func (p *PinOutputs) Close() error {
	for _, pin := range p.pins {
		pin.Low()
	}
	return nil
}

package adc

import (
	"errors"
	"fmt"
)

// FakePeripheral is a test double that returns scripted conversion results.
type FakePeripheral struct {
	// Samples contains scripted results per channel.
	// Each conversion consumes the next sample; the last one repeats.
	Samples map[Channel][]uint8

	// BusyPolls is how many Busy() calls report true after each StartConversion.
	BusyPolls int

	// Stuck makes Busy() report true forever.
	Stuck bool

	// StartError, if set, will be returned by StartConversion().
	StartError error

	// Selected is the currently routed channel.
	Selected Channel

	// Enabled tracks the power state.
	Enabled bool

	// Calls records every operation in order, e.g. "select AN0", "enable", "start".
	Calls []string

	index    map[Channel]int
	busyLeft int
	result   uint8
}

// NewFakePeripheral creates a FakePeripheral with the given samples.
func NewFakePeripheral(samples map[Channel][]uint8) *FakePeripheral {
	return &FakePeripheral{
		Samples: samples,
		index:   make(map[Channel]int),
	}
}

// SelectChannel records the channel.
func (f *FakePeripheral) SelectChannel(ch Channel) {
	f.Selected = ch
	f.Calls = append(f.Calls, "select "+ch.String())
}

// Enable marks the peripheral as powered.
func (f *FakePeripheral) Enable() {
	f.Enabled = true
	f.Calls = append(f.Calls, "enable")
}

// Disable marks the peripheral as powered down.
func (f *FakePeripheral) Disable() {
	f.Enabled = false
	f.Calls = append(f.Calls, "disable")
}

// StartConversion latches the next scripted sample for the selected channel.
func (f *FakePeripheral) StartConversion() error {
	f.Calls = append(f.Calls, "start")
	if f.StartError != nil {
		return f.StartError
	}
	if !f.Enabled {
		return errors.New("peripheral disabled")
	}

	samples := f.Samples[f.Selected]
	if len(samples) == 0 {
		return fmt.Errorf("no samples configured for %s", f.Selected)
	}
	if f.index == nil {
		f.index = make(map[Channel]int)
	}

	i := f.index[f.Selected]
	f.result = samples[i]
	if i < len(samples)-1 {
		f.index[f.Selected]++
	}

	f.busyLeft = f.BusyPolls
	return nil
}

// Busy reports true for BusyPolls calls after each start, or forever if Stuck.
func (f *FakePeripheral) Busy() bool {
	if f.Stuck {
		return true
	}
	if f.busyLeft > 0 {
		f.busyLeft--
		return true
	}
	return false
}

// Result returns the latched sample.
func (f *FakePeripheral) Result() uint8 {
	f.Calls = append(f.Calls, "read")
	return f.result
}

// Reset rewinds every channel to its first sample and clears the call log.
func (f *FakePeripheral) Reset() {
	f.index = make(map[Channel]int)
	f.Calls = nil
	f.Enabled = false
	f.busyLeft = 0
}

package gpio

import "github.com/sweeney/adc-monitor/internal/logic"

// FakeOutputs is a test double that records output writes.
type FakeOutputs struct {
	// States contains every state passed to Set, in order.
	States []logic.OutputState

	// Levels holds the current HIGH, LOW and MID pin levels.
	Levels [3]int

	// SetError, if set, will be returned by Set().
	SetError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeOutputs creates a FakeOutputs with all pins low.
func NewFakeOutputs() *FakeOutputs {
	return &FakeOutputs{}
}

// Set records the state and updates Levels.
func (f *FakeOutputs) Set(state logic.OutputState) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.States = append(f.States, state)
	copy(f.Levels[:], levels(state))
	return nil
}

// Close drives all pins low and marks the outputs as closed.
func (f *FakeOutputs) Close() error {
	f.Levels = [3]int{}
	f.Closed = true
	return nil
}

// Last returns the most recent state, or "" if Set was never called.
func (f *FakeOutputs) Last() logic.OutputState {
	if len(f.States) == 0 {
		return ""
	}
	return f.States[len(f.States)-1]
}

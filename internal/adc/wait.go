package adc

import "time"

// SpinWait polls busy until it clears. It never gives up: a busy flag stuck
// high hangs the caller, which is how the firmware behaves on real hardware.
func SpinWait(busy func() bool) error {
	for busy() {
	}
	return nil
}

// PollWait returns a WaitFunc that gives up with ErrConversionTimeout once
// timeout has elapsed on the given clock.
func PollWait(timeout time.Duration, now func() time.Time) WaitFunc {
	return func(busy func() bool) error {
		deadline := now().Add(timeout)
		for busy() {
			if !now().Before(deadline) {
				return ErrConversionTimeout
			}
		}
		return nil
	}
}

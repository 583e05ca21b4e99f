//go:build linux && !baremetal

package gpio

import (
	"fmt"

	"github.com/sweeney/adc-monitor/internal/logic"
	"github.com/warthog618/go-gpiocdev"
)

// RealOutputs drives output lines on actual hardware using the Linux GPIO
// character device.
type RealOutputs struct {
	chip  *gpiocdev.Chip
	lines *gpiocdev.Lines
}

// NewRealOutputs requests the HIGH, LOW and MID pins on chipName as outputs,
// all initially low.
func NewRealOutputs(chipName string, pinHigh, pinLow, pinMid int) (*RealOutputs, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	// Request the three pins together so a state change is a single write.
	lines, err := chip.RequestLines([]int{pinHigh, pinLow, pinMid}, gpiocdev.AsOutput(0, 0, 0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request output pins %d,%d,%d: %w", pinHigh, pinLow, pinMid, err)
	}

	return &RealOutputs{
		chip:  chip,
		lines: lines,
	}, nil
}

// Set writes all three pin levels at once.
func (r *RealOutputs) Set(state logic.OutputState) error {
	if err := r.lines.SetValues(levels(state)); err != nil {
		return fmt.Errorf("set outputs %s: %w", state, err)
	}
	return nil
}

// Close drives every pin low, then reconfigures the lines to input with
// pull-down (matching Pi boot defaults) before releasing them.
func (r *RealOutputs) Close() error {
	var errs []error

	if r.lines != nil {
		if err := r.lines.SetValues([]int{0, 0, 0}); err != nil {
			errs = append(errs, fmt.Errorf("clear outputs: %w", err))
		}
		if err := r.lines.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure outputs: %w", err))
		}
		if err := r.lines.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close outputs: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

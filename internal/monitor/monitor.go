// Package monitor runs one acquisition pass at a time: read the four sensors,
// classify the temperature, drive the outputs and refresh the display.
// Everything is sequential; a Monitor is not safe for concurrent use.
package monitor

import (
	"fmt"
	"time"

	"github.com/sweeney/adc-monitor/internal/display"
	"github.com/sweeney/adc-monitor/internal/gpio"
	"github.com/sweeney/adc-monitor/internal/logic"
	"github.com/sweeney/adc-monitor/internal/sensor"
)

// Loop timing.
const (
	BannerHold = 2 * time.Second
	Interval   = 1 * time.Second
)

// Monitor owns the loop state and the hardware it drives.
type Monitor struct {
	conv    sensor.Converter
	outputs gpio.Outputs
	display display.Presenter
	state   logic.State
	ticks   int
}

// New creates a Monitor. Nothing is touched until Start.
func New(conv sensor.Converter, outputs gpio.Outputs, p display.Presenter) *Monitor {
	return &Monitor{
		conv:    conv,
		outputs: outputs,
		display: p,
	}
}

// Start initializes the display and shows the banner. The caller is expected
// to hold the banner for BannerHold before the first Tick.
func (m *Monitor) Start() error {
	if err := m.display.Init(); err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	return display.ShowBanner(m.display)
}

// Tick runs one pass of the loop and returns the new state. On any error the
// previous state is returned and kept.
func (m *Monitor) Tick() (logic.State, error) {
	var next logic.State
	if err := sensor.ReadAll(m.conv, &next); err != nil {
		return m.state, err
	}
	if err := m.outputs.Set(next.Output); err != nil {
		return m.state, fmt.Errorf("set outputs: %w", err)
	}
	if err := display.Show(m.display, next); err != nil {
		return m.state, err
	}
	m.state = next
	m.ticks++
	return m.state, nil
}

// State returns the state of the last successful tick.
func (m *Monitor) State() logic.State {
	return m.state
}

// Ticks returns the number of successful ticks.
func (m *Monitor) Ticks() int {
	return m.ticks
}

// Run shows the banner, then ticks every interval until done is closed.
// A nil done never closes, which is what the firmware wants. Tick errors are
// passed to onError (if non-nil) and the loop carries on.
func (m *Monitor) Run(sleep func(time.Duration), interval time.Duration, done <-chan struct{}, onError func(error)) error {
	if err := m.Start(); err != nil {
		return err
	}
	sleep(BannerHold)

	for {
		select {
		case <-done:
			return nil
		default:
		}

		if _, err := m.Tick(); err != nil && onError != nil {
			onError(err)
		}
		sleep(interval)
	}
}

// Close deasserts the outputs, powers the converter down and blanks the display.
func (m *Monitor) Close() error {
	var errs []error

	if err := m.outputs.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close outputs: %w", err))
	}
	m.conv.PowerDown()
	if err := m.display.Clear(); err != nil {
		errs = append(errs, fmt.Errorf("clear display: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

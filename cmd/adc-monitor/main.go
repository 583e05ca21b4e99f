// Command adc-monitor samples four analog sensors, drives three temperature
// threshold outputs and shows the readings on a character display.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sweeney/adc-monitor/internal/adc"
	"github.com/sweeney/adc-monitor/internal/display"
	"github.com/sweeney/adc-monitor/internal/gpio"
	"github.com/sweeney/adc-monitor/internal/logic"
	"github.com/sweeney/adc-monitor/internal/monitor"
	"github.com/sweeney/adc-monitor/internal/sensor"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

type config struct {
	interval   time.Duration
	bannerHold time.Duration
	iioDevice  string
	adcBits    uint
	adcTimeout time.Duration
	gpioChip   string
	pinHigh    int
	pinLow     int
	pinMid     int
	display    string
	i2cBus     string
	lcdAddr    uint
	printState bool
	verbose    bool
}

func main() {
	var cfg config
	flag.DurationVar(&cfg.interval, "interval", monitor.Interval, "Sampling interval")
	flag.DurationVar(&cfg.bannerHold, "banner-hold", monitor.BannerHold, "How long the startup banner is shown")
	flag.StringVar(&cfg.iioDevice, "iio-device", adc.DefaultIIODevice, "IIO device directory providing in_voltage<N>_raw")
	flag.UintVar(&cfg.adcBits, "adc-bits", 12, "Resolution of the IIO converter in bits")
	flag.DurationVar(&cfg.adcTimeout, "adc-timeout", 10*time.Millisecond, "Give up on a conversion after this long")
	flag.StringVar(&cfg.gpioChip, "gpiochip", gpio.DefaultChip, "GPIO chip holding the output pins")
	flag.IntVar(&cfg.pinHigh, "pin-high", gpio.DefaultPinHigh, "BCM pin asserted at or above 23C")
	flag.IntVar(&cfg.pinLow, "pin-low", gpio.DefaultPinLow, "BCM pin asserted at or below 22C")
	flag.IntVar(&cfg.pinMid, "pin-mid", gpio.DefaultPinMid, "BCM pin asserted between 22C and 23C")
	flag.StringVar(&cfg.display, "display", "lcd", `Display type ("lcd" or "console")`)
	flag.StringVar(&cfg.i2cBus, "i2c-bus", "", "I2C bus for the LCD (empty for the first bus)")
	flag.UintVar(&cfg.lcdAddr, "lcd-addr", display.DefaultLCDAddr, "I2C address of the LCD backpack")
	flag.BoolVar(&cfg.printState, "print-state", false, "Print one reading and exit")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Log every reading")

	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(cfg config) error {
	// Initialize converter
	periph, err := adc.NewIIO(cfg.iioDevice, cfg.adcBits)
	if err != nil {
		return fmt.Errorf("init adc: %w", err)
	}
	conv := adc.NewConverter(periph, nil, adc.PollWait(cfg.adcTimeout, time.Now))

	// Print state mode
	if cfg.printState {
		var st logic.State
		if err := sensor.ReadAll(conv, &st); err != nil {
			return fmt.Errorf("read sensors: %w", err)
		}
		fmt.Println(formatState(st))
		return nil
	}

	// Initialize outputs
	outputs, err := gpio.NewRealOutputs(cfg.gpioChip, cfg.pinHigh, cfg.pinLow, cfg.pinMid)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}

	// Initialize display
	presenter, closeDisplay, err := openDisplay(cfg)
	if err != nil {
		outputs.Close()
		return fmt.Errorf("init display: %w", err)
	}
	defer closeDisplay()

	mon := monitor.New(conv, outputs, presenter)
	if err := mon.Start(); err != nil {
		mon.Close()
		return err
	}
	time.Sleep(cfg.bannerHold)

	log.Printf("started: interval=%v iio=%s display=%s pins=%d/%d/%d",
		cfg.interval, cfg.iioDevice, cfg.display, cfg.pinHigh, cfg.pinLow, cfg.pinMid)

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(mon, ticker.C, sigCh, cfg.verbose)
}

func runLoop(mon *monitor.Monitor, tick <-chan time.Time, sig <-chan os.Signal, verbose bool) error {
	var last logic.OutputState

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			if err := mon.Close(); err != nil {
				log.Printf("shutdown: %v", err)
			}
			return nil

		case <-tick:
			st, err := mon.Tick()
			if err != nil {
				log.Printf("tick error: %v", err)
				continue
			}

			if st.Output != last {
				log.Printf("output: %s (T=%.2fC)", st.Output, st.TemperatureC)
				last = st.Output
			}
			if verbose {
				log.Printf("reading: %s", formatState(st))
			}
		}
	}
}

// openDisplay returns the configured presenter and a function releasing its bus.
func openDisplay(cfg config) (display.Presenter, func() error, error) {
	switch cfg.display {
	case "console":
		return display.NewConsole(log.Default()), func() error { return nil }, nil
	case "lcd":
		if _, err := host.Init(); err != nil {
			return nil, nil, fmt.Errorf("init periph host: %w", err)
		}
		bus, err := i2creg.Open(cfg.i2cBus)
		if err != nil {
			return nil, nil, fmt.Errorf("open i2c bus %q: %w", cfg.i2cBus, err)
		}
		return display.NewLCD(bus, uint8(cfg.lcdAddr)), bus.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown display %q", cfg.display)
	}
}

// formatState renders st on one line, e.g. "T:25.28 L:19 M:10 P:200 OUT:HIGH".
func formatState(st logic.State) string {
	var parts []string
	for _, f := range display.Fields(st) {
		parts = append(parts, f.Text)
	}
	out := string(st.Output)
	if out == "" {
		out = "UNKNOWN"
	}
	return strings.Join(parts, " ") + " OUT:" + out
}

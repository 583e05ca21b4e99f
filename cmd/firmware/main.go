//go:build atmega2560

//go:generate tinygo flash -target=arduino-mega2560

// Command firmware runs the monitor on an ATmega2560 board: converter
// registers driven directly, outputs on port A and a 20x4 LCD on I2C.
package main

import (
	"machine"
	"time"

	"github.com/sweeney/adc-monitor/internal/adc"
	"github.com/sweeney/adc-monitor/internal/display"
	"github.com/sweeney/adc-monitor/internal/gpio"
	"github.com/sweeney/adc-monitor/internal/monitor"
)

func main() {
	outputs := gpio.NewPinOutputs(PIN_HIGH, PIN_LOW, PIN_MID)

	machine.I2C0.Configure(machine.I2CConfig{Frequency: I2C_FREQUENCY})
	lcd := display.NewLCD(machine.I2C0, LCD_ADDR)

	// No timeout: a conversion that never completes hangs here.
	conv := adc.NewConverter(adc.NewAVR(), time.Sleep, adc.SpinWait)

	mon := monitor.New(conv, outputs, lcd)
	if err := mon.Run(time.Sleep, monitor.Interval, nil, nil); err != nil {
		println("start:", err.Error())
	}
	for {
		time.Sleep(time.Second)
	}
}

//go:build atmega2560

package main

import "machine"

const (
	// Threshold outputs (Arduino Mega D22, D23, D24)
	PIN_HIGH = machine.PA0
	PIN_LOW  = machine.PA1
	PIN_MID  = machine.PA2

	// LCD backpack
	LCD_ADDR      = 0x27
	I2C_FREQUENCY = 100 * machine.KHz
)

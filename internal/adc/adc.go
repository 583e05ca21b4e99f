// Package adc drives an analog-to-digital converter one channel at a time.
// Hardware access goes through the Peripheral interface: the AVR register map
// and the Linux IIO implementations live behind build tags, and FakePeripheral
// allows testing without hardware.
package adc

import (
	"errors"
	"fmt"
	"time"
)

// Channel selects which analog input is routed to the converter.
type Channel uint8

// Analog inputs wired on the board.
const (
	ChannelTemperature   Channel = 0
	ChannelLight         Channel = 6
	ChannelMicrophone    Channel = 10
	ChannelPotentiometer Channel = 13
)

// Channels lists the wired inputs in acquisition order.
var Channels = [...]Channel{
	ChannelTemperature,
	ChannelLight,
	ChannelMicrophone,
	ChannelPotentiometer,
}

// Valid reports whether c is one of the wired inputs.
func (c Channel) Valid() bool {
	for _, ch := range Channels {
		if c == ch {
			return true
		}
	}
	return false
}

func (c Channel) String() string {
	return fmt.Sprintf("AN%d", uint8(c))
}

// SettleDelay lets the input multiplexer stabilize between enabling the
// peripheral and starting a conversion.
const SettleDelay = 30 * time.Microsecond

var (
	// ErrConversionTimeout is returned by PollWait when the busy flag never clears.
	ErrConversionTimeout = errors.New("adc: conversion timeout")
	// ErrUnknownChannel is returned for channels that are not wired.
	ErrUnknownChannel = errors.New("adc: unknown channel")
	// ErrNotSupported is returned by platform stubs.
	ErrNotSupported = errors.New("adc: not supported on this platform")
)

// Peripheral is the register-level capability set of a converter.
type Peripheral interface {
	// SelectChannel routes ch to the converter input.
	SelectChannel(ch Channel)

	// Enable powers the converter up.
	Enable()

	// Disable powers the converter down.
	Disable()

	// StartConversion triggers a single conversion on the selected channel.
	StartConversion() error

	// Busy reports whether a conversion is still in progress.
	Busy() bool

	// Result returns the high byte of the last left-justified result.
	Result() uint8
}

// WaitFunc blocks until busy reports false.
type WaitFunc func(busy func() bool) error

// Converter runs the select, enable, settle, start, wait, read sequence.
type Converter struct {
	p      Peripheral
	settle func(time.Duration)
	wait   WaitFunc
}

// NewConverter creates a Converter over p. A nil settle defaults to
// time.Sleep and a nil wait defaults to SpinWait.
func NewConverter(p Peripheral, settle func(time.Duration), wait WaitFunc) *Converter {
	if settle == nil {
		settle = time.Sleep
	}
	if wait == nil {
		wait = SpinWait
	}
	return &Converter{p: p, settle: settle, wait: wait}
}

// Convert samples ch once and returns the 8-bit result. The peripheral is
// left enabled; callers that want it powered down call PowerDown.
func (c *Converter) Convert(ch Channel) (uint8, error) {
	if !ch.Valid() {
		return 0, fmt.Errorf("convert %s: %w", ch, ErrUnknownChannel)
	}

	c.p.SelectChannel(ch)
	c.p.Enable()
	c.settle(SettleDelay)

	if err := c.p.StartConversion(); err != nil {
		return 0, fmt.Errorf("start conversion on %s: %w", ch, err)
	}
	if err := c.wait(c.p.Busy); err != nil {
		return 0, fmt.Errorf("convert %s: %w", ch, err)
	}

	return c.p.Result(), nil
}

// PowerDown disables the peripheral.
func (c *Converter) PowerDown() {
	c.p.Disable()
}

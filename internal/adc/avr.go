//go:build atmega2560

package adc

import "device/avr"

// AVR drives the ATmega2560 converter through its registers. The result is
// left adjusted (ADLAR) so ADCH alone holds the top eight bits of the 10-bit
// sample.
type AVR struct{}

// NewAVR configures the converter: AVcc reference, left-adjusted result and a
// /128 clock prescaler. The peripheral stays disabled until Enable.
func NewAVR() *AVR {
	avr.ADMUX.Set(avr.ADMUX_REFS0 | avr.ADMUX_ADLAR)
	avr.ADCSRA.Set(avr.ADCSRA_ADPS2 | avr.ADCSRA_ADPS1 | avr.ADCSRA_ADPS0)

	// Disable the digital input buffers on the wired analog pins.
	for _, ch := range Channels {
		if ch < 8 {
			avr.DIDR0.SetBits(1 << ch)
		} else {
			avr.DIDR2.SetBits(1 << (ch - 8))
		}
	}
	return &AVR{}
}

// SelectChannel writes MUX4:0 in ADMUX and MUX5 in ADCSRB.
func (a *AVR) SelectChannel(ch Channel) {
	avr.ADMUX.ReplaceBits(uint8(ch)&0x07, 0x07, 0)
	if ch > 7 {
		avr.ADCSRB.SetBits(avr.ADCSRB_MUX5)
	} else {
		avr.ADCSRB.ClearBits(avr.ADCSRB_MUX5)
	}
}

// Enable sets ADEN.
func (a *AVR) Enable() {
	avr.ADCSRA.SetBits(avr.ADCSRA_ADEN)
}

// Disable clears ADEN.
func (a *AVR) Disable() {
	avr.ADCSRA.ClearBits(avr.ADCSRA_ADEN)
}

// StartConversion sets ADSC. It cannot fail.
func (a *AVR) StartConversion() error {
	avr.ADCSRA.SetBits(avr.ADCSRA_ADSC)
	return nil
}

// Busy reports ADSC, which hardware clears when the conversion completes.
func (a *AVR) Busy() bool {
	return avr.ADCSRA.HasBits(avr.ADCSRA_ADSC)
}

// Result reads ADCH.
func (a *AVR) Result() uint8 {
	return avr.ADCH.Get()
}

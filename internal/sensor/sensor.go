// Package sensor reads the four analog sensors through a converter and
// applies each sensor's transfer function.
package sensor

import (
	"fmt"

	"github.com/sweeney/adc-monitor/internal/adc"
	"github.com/sweeney/adc-monitor/internal/logic"
)

// Converter samples one channel at a time.
type Converter interface {
	Convert(ch adc.Channel) (uint8, error)
	PowerDown()
}

// Reader describes one analog sensor.
type Reader struct {
	Name    string
	Channel adc.Channel

	// PowerDown disables the converter after a successful read. Only the
	// microphone and potentiometer do this; the temperature and light
	// readers leave it running.
	PowerDown bool
}

// Wired sensors.
var (
	Temperature   = Reader{Name: "temperature", Channel: adc.ChannelTemperature}
	Light         = Reader{Name: "light", Channel: adc.ChannelLight}
	Microphone    = Reader{Name: "microphone", Channel: adc.ChannelMicrophone, PowerDown: true}
	Potentiometer = Reader{Name: "potentiometer", Channel: adc.ChannelPotentiometer, PowerDown: true}
)

// Sample converts the reader's channel and returns the raw 8-bit result.
func (r Reader) Sample(c Converter) (uint8, error) {
	s, err := c.Convert(r.Channel)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", r.Name, err)
	}
	if r.PowerDown {
		c.PowerDown()
	}
	return s, nil
}

// ReadTemperature returns the temperature in degrees Celsius.
func ReadTemperature(c Converter) (float32, error) {
	s, err := Temperature.Sample(c)
	if err != nil {
		return 0, err
	}
	return logic.TemperatureC(s), nil
}

// ReadLight returns the ambient light as a percentage.
func ReadLight(c Converter) (int, error) {
	s, err := Light.Sample(c)
	if err != nil {
		return 0, err
	}
	return logic.LightPercent(s), nil
}

// ReadMicrophone returns the raw microphone level.
func ReadMicrophone(c Converter) (int, error) {
	s, err := Microphone.Sample(c)
	if err != nil {
		return 0, err
	}
	return logic.Level(s), nil
}

// ReadPotentiometer returns the raw potentiometer position.
func ReadPotentiometer(c Converter) (int, error) {
	s, err := Potentiometer.Sample(c)
	if err != nil {
		return 0, err
	}
	return logic.Level(s), nil
}

// ReadAll runs the four readers in display order and classifies the
// temperature. On error st is left untouched.
func ReadAll(c Converter, st *logic.State) error {
	var next logic.State
	var err error

	if next.TemperatureC, err = ReadTemperature(c); err != nil {
		return err
	}
	if next.LightPercent, err = ReadLight(c); err != nil {
		return err
	}
	if next.MicLevel, err = ReadMicrophone(c); err != nil {
		return err
	}
	if next.PotValue, err = ReadPotentiometer(c); err != nil {
		return err
	}
	next.Output = logic.Compare(next.TemperatureC)

	*st = next
	return nil
}

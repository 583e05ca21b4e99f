package display

import (
	"fmt"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// DefaultLCDAddr is the usual address of a PCF8574 HD44780 backpack.
const DefaultLCDAddr = 0x27

// LCD is a 20x4 HD44780 character display behind an I2C backpack.
type LCD struct {
	dev *hd44780i2c.Device
}

// NewLCD creates an LCD on bus at addr. Call Init before writing.
func NewLCD(bus drivers.I2C, addr uint8) *LCD {
	dev := hd44780i2c.New(bus, addr)
	return &LCD{dev: &dev}
}

// Init runs the controller initialization sequence.
func (l *LCD) Init() error {
	if err := l.dev.Configure(hd44780i2c.Config{Width: Width, Height: Height}); err != nil {
		return fmt.Errorf("configure lcd: %w", err)
	}
	return nil
}

// Clear blanks the display and homes the cursor.
func (l *LCD) Clear() error {
	l.dev.ClearDisplay()
	return nil
}

// WriteAt moves the cursor and prints text, clipped at the right edge.
func (l *LCD) WriteAt(row, col uint8, text string) error {
	if err := checkPosition(row, col); err != nil {
		return err
	}
	l.dev.SetCursor(col, row)
	l.dev.Print([]byte(clip(col, text)))
	return nil
}

// Package display renders the monitor state on a character display.
package display

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/sweeney/adc-monitor/internal/logic"
)

// Presenter is a character display addressed by row and column.
type Presenter interface {
	// Init prepares the display for use.
	Init() error

	// Clear blanks the whole display.
	Clear() error

	// WriteAt writes text starting at row, col. Text running past the last
	// column is cut off.
	WriteAt(row, col uint8, text string) error
}

// Flusher is implemented by presenters that buffer writes until a frame is
// complete.
type Flusher interface {
	Flush() error
}

// Display geometry.
const (
	Width  = 20
	Height = 4
)

// Banner is shown once at startup.
const Banner = "Bievenido"

// FieldWidth bounds every field to the gap between the two field columns.
const FieldWidth = 10

// Field is a piece of text at a fixed position.
type Field struct {
	Row  uint8
	Col  uint8
	Text string
}

// Fields formats st into the four display fields: temperature and light on
// row 0, microphone and potentiometer on row 2.
func Fields(st logic.State) [4]Field {
	return [4]Field{
		{Row: 0, Col: 0, Text: bound(formatTemperature(st.TemperatureC))},
		{Row: 0, Col: 10, Text: bound(fmt.Sprintf("L:%d", st.LightPercent))},
		{Row: 2, Col: 0, Text: bound(fmt.Sprintf("M:%d", st.MicLevel))},
		{Row: 2, Col: 10, Text: bound(fmt.Sprintf("P:%d", st.PotValue))},
	}
}

func formatTemperature(c float32) string {
	if math32.IsNaN(c) || math32.IsInf(c, 0) {
		return "T:--.--"
	}
	return fmt.Sprintf("T:%.2f", c)
}

func bound(s string) string {
	if len(s) > FieldWidth {
		return s[:FieldWidth]
	}
	return s
}

// Show clears p and writes the four fields of st.
func Show(p Presenter, st logic.State) error {
	if err := p.Clear(); err != nil {
		return fmt.Errorf("clear display: %w", err)
	}
	for _, f := range Fields(st) {
		if err := p.WriteAt(f.Row, f.Col, f.Text); err != nil {
			return fmt.Errorf("write %q at %d,%d: %w", f.Text, f.Row, f.Col, err)
		}
	}
	if fl, ok := p.(Flusher); ok {
		if err := fl.Flush(); err != nil {
			return fmt.Errorf("flush display: %w", err)
		}
	}
	return nil
}

// ShowBanner clears p and writes the startup banner at the origin.
func ShowBanner(p Presenter) error {
	if err := p.Clear(); err != nil {
		return fmt.Errorf("clear display: %w", err)
	}
	if err := p.WriteAt(0, 0, Banner); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}
	if fl, ok := p.(Flusher); ok {
		return fl.Flush()
	}
	return nil
}

func checkPosition(row, col uint8) error {
	if row >= Height || col >= Width {
		return fmt.Errorf("position %d,%d outside %dx%d display", row, col, Width, Height)
	}
	return nil
}

// clip cuts text at the right edge of the display.
func clip(col uint8, text string) string {
	if n := Width - int(col); len(text) > n {
		return text[:n]
	}
	return text
}

package display

import (
	"bytes"
	"log"
	"strings"
)

// Console renders frames through a logger, one line per display row.
// Writes are buffered until Flush.
type Console struct {
	logger *log.Logger
	rows   [Height][Width]byte
}

// NewConsole creates a Console that logs frames to logger.
func NewConsole(logger *log.Logger) *Console {
	c := &Console{logger: logger}
	c.blank()
	return c
}

func (c *Console) blank() {
	for i := range c.rows {
		for j := range c.rows[i] {
			c.rows[i][j] = ' '
		}
	}
}

// Init is a no-op.
func (c *Console) Init() error {
	return nil
}

// Clear blanks the buffered frame.
func (c *Console) Clear() error {
	c.blank()
	return nil
}

// WriteAt places text into the buffered frame.
func (c *Console) WriteAt(row, col uint8, text string) error {
	if err := checkPosition(row, col); err != nil {
		return err
	}
	copy(c.rows[row][col:], clip(col, text))
	return nil
}

// Flush logs the buffered frame.
func (c *Console) Flush() error {
	for _, line := range c.Lines() {
		c.logger.Printf("lcd |%s|", line)
	}
	return nil
}

// Lines returns the buffered frame with trailing spaces kept.
func (c *Console) Lines() []string {
	lines := make([]string, Height)
	for i := range c.rows {
		lines[i] = string(c.rows[i][:])
	}
	return lines
}

// String returns the non-blank rows joined by " / ", trailing spaces trimmed.
func (c *Console) String() string {
	var parts []string
	for i := range c.rows {
		row := bytes.TrimRight(c.rows[i][:], " ")
		if len(row) > 0 {
			parts = append(parts, string(row))
		}
	}
	return strings.Join(parts, " / ")
}

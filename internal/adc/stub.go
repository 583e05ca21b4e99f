//go:build !linux || baremetal

package adc

// DefaultIIODevice is unused on platforms without IIO.
const DefaultIIODevice = ""

// IIO is not available on non-Linux platforms.
type IIO struct{}

// NewIIO returns an error on non-Linux platforms.
func NewIIO(dir string, bits uint) (*IIO, error) {
	return nil, ErrNotSupported
}

// SelectChannel is not implemented on non-Linux platforms.
func (d *IIO) SelectChannel(ch Channel) {}

// Enable is not implemented on non-Linux platforms.
func (d *IIO) Enable() {}

// Disable is not implemented on non-Linux platforms.
func (d *IIO) Disable() {}

// StartConversion is not implemented on non-Linux platforms.
func (d *IIO) StartConversion() error {
	return ErrNotSupported
}

// Busy is not implemented on non-Linux platforms.
func (d *IIO) Busy() bool {
	return false
}

// Result is not implemented on non-Linux platforms.
func (d *IIO) Result() uint8 {
	return 0
}

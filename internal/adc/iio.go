//go:build linux && !baremetal

package adc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultIIODevice is the first industrial I/O device on a Linux host.
const DefaultIIODevice = "/sys/bus/iio/devices/iio:device0"

// IIO reads channels through the Linux industrial I/O sysfs interface.
// Each conversion reads in_voltage<N>_raw once and keeps the top eight bits
// of the bits-wide sample, matching the high byte the firmware reads.
type IIO struct {
	dir     string
	bits    uint
	ch      Channel
	enabled bool
	result  uint8
}

// NewIIO creates a peripheral for the IIO device directory dir whose raw
// samples are bits wide.
func NewIIO(dir string, bits uint) (*IIO, error) {
	if bits < 8 || bits > 16 {
		return nil, fmt.Errorf("iio: unsupported resolution %d bits", bits)
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("open iio device: %w", err)
	}
	return &IIO{dir: dir, bits: bits}, nil
}

// SelectChannel picks the in_voltage<N>_raw attribute to read.
func (d *IIO) SelectChannel(ch Channel) {
	d.ch = ch
}

// Enable allows conversions.
func (d *IIO) Enable() {
	d.enabled = true
}

// Disable blocks conversions until the next Enable.
func (d *IIO) Disable() {
	d.enabled = false
}

// StartConversion performs the read synchronously.
func (d *IIO) StartConversion() error {
	if !d.enabled {
		return errors.New("iio: peripheral disabled")
	}

	path := filepath.Join(d.dir, fmt.Sprintf("in_voltage%d_raw", d.ch))
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("iio: read %s: %w", d.ch, err)
	}

	raw, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return fmt.Errorf("iio: parse %s: %w", d.ch, err)
	}

	limit := uint64(1)<<d.bits - 1
	if raw > limit {
		raw = limit
	}
	d.result = uint8(raw >> (d.bits - 8))
	return nil
}

// Busy is always false: the sysfs read completes inside StartConversion.
func (d *IIO) Busy() bool {
	return false
}

// Result returns the last sample.
func (d *IIO) Result() uint8 {
	return d.result
}

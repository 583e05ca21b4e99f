package sensor

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sweeney/adc-monitor/internal/adc"
	"github.com/sweeney/adc-monitor/internal/logic"
)

func newConverter(samples map[adc.Channel][]uint8) (*adc.Converter, *adc.FakePeripheral) {
	p := adc.NewFakePeripheral(samples)
	return adc.NewConverter(p, func(time.Duration) {}, nil), p
}

func TestReadTemperature(t *testing.T) {
	c, p := newConverter(map[adc.Channel][]uint8{adc.ChannelTemperature: {0}})

	got, err := ReadTemperature(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := fmt.Sprintf("%.2f", got); s != "41.51" {
		t.Errorf("temperature: got %s, want 41.51", s)
	}
	if p.Selected != adc.ChannelTemperature {
		t.Errorf("channel: got %s, want AN0", p.Selected)
	}
	if !p.Enabled {
		t.Error("temperature reader should leave the converter enabled")
	}
}

func TestReadLight(t *testing.T) {
	c, p := newConverter(map[adc.Channel][]uint8{adc.ChannelLight: {255}})

	got, err := ReadLight(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 99 {
		t.Errorf("light: got %d, want 99", got)
	}
	if p.Selected != adc.ChannelLight {
		t.Errorf("channel: got %s, want AN6", p.Selected)
	}
	if !p.Enabled {
		t.Error("light reader should leave the converter enabled")
	}
}

func TestReadMicrophonePowersDown(t *testing.T) {
	c, p := newConverter(map[adc.Channel][]uint8{adc.ChannelMicrophone: {10}})

	got, err := ReadMicrophone(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Errorf("mic: got %d, want 10", got)
	}

	want := []string{"select AN10", "enable", "start", "read", "disable"}
	if !reflect.DeepEqual(p.Calls, want) {
		t.Errorf("calls: got %v, want %v", p.Calls, want)
	}
}

func TestReadPotentiometerPowersDown(t *testing.T) {
	c, p := newConverter(map[adc.Channel][]uint8{adc.ChannelPotentiometer: {200}})

	got, err := ReadPotentiometer(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 200 {
		t.Errorf("pot: got %d, want 200", got)
	}
	if p.Enabled {
		t.Error("potentiometer reader should disable the converter")
	}
}

func TestReadersAreIdempotent(t *testing.T) {
	c, _ := newConverter(map[adc.Channel][]uint8{
		adc.ChannelTemperature:   {77},
		adc.ChannelLight:         {77},
		adc.ChannelMicrophone:    {77},
		adc.ChannelPotentiometer: {77},
	})

	t1, _ := ReadTemperature(c)
	t2, _ := ReadTemperature(c)
	if t1 != t2 {
		t.Errorf("temperature: %v != %v", t1, t2)
	}
	l1, _ := ReadLight(c)
	l2, _ := ReadLight(c)
	if l1 != l2 {
		t.Errorf("light: %d != %d", l1, l2)
	}
	m1, _ := ReadMicrophone(c)
	m2, _ := ReadMicrophone(c)
	if m1 != m2 || m1 != 77 {
		t.Errorf("mic: %d, %d", m1, m2)
	}
}

func TestReadAll(t *testing.T) {
	c, p := newConverter(map[adc.Channel][]uint8{
		adc.ChannelTemperature:   {100},
		adc.ChannelLight:         {50},
		adc.ChannelMicrophone:    {10},
		adc.ChannelPotentiometer: {200},
	})

	var st logic.State
	if err := ReadAll(c, &st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s := fmt.Sprintf("%.2f", st.TemperatureC); s != "25.28" {
		t.Errorf("TemperatureC: got %s, want 25.28", s)
	}
	if st.LightPercent != 19 {
		t.Errorf("LightPercent: got %d, want 19", st.LightPercent)
	}
	if st.MicLevel != 10 {
		t.Errorf("MicLevel: got %d, want 10", st.MicLevel)
	}
	if st.PotValue != 200 {
		t.Errorf("PotValue: got %d, want 200", st.PotValue)
	}
	if st.Output != logic.OutputHigh {
		t.Errorf("Output: got %s, want HIGH", st.Output)
	}

	var order []string
	for _, call := range p.Calls {
		if ch, ok := strings.CutPrefix(call, "select "); ok {
			order = append(order, ch)
		}
	}
	want := []string{"AN0", "AN6", "AN10", "AN13"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("channel order: got %v, want %v", order, want)
	}
}

func TestReadAllErrorLeavesStateUntouched(t *testing.T) {
	c, _ := newConverter(map[adc.Channel][]uint8{
		adc.ChannelTemperature: {100},
		adc.ChannelLight:       {50},
	})

	st := logic.State{TemperatureC: 1, LightPercent: 2, MicLevel: 3, PotValue: 4, Output: logic.OutputLow}
	before := st

	err := ReadAll(c, &st)
	if err == nil {
		t.Fatal("expected error for unscripted microphone channel")
	}
	if st != before {
		t.Errorf("state changed on error: got %+v, want %+v", st, before)
	}
}

func TestReadTimeoutWrapsSentinel(t *testing.T) {
	p := adc.NewFakePeripheral(map[adc.Channel][]uint8{adc.ChannelTemperature: {1}})
	p.Stuck = true
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	now := func() time.Time {
		n++
		return start.Add(time.Duration(n) * time.Millisecond)
	}
	c := adc.NewConverter(p, func(time.Duration) {}, adc.PollWait(5*time.Millisecond, now))

	_, err := ReadTemperature(c)
	if !errors.Is(err, adc.ErrConversionTimeout) {
		t.Fatalf("expected ErrConversionTimeout, got %v", err)
	}
}

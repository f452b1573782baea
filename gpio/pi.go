package gpio

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/bcm283x"
)

// PiIndicator drives the identify and mute LEDs from two Raspberry Pi
// GPIO output pins, the way input.Open and lcd.Open drive their pins.
type PiIndicator struct {
	identify gpio.PinIO
	mute     gpio.PinIO
}

// OpenPi initializes periph's host drivers and wires the identify LED
// to GPIO17 and the mute LED to GPIO27.
func OpenPi() (*PiIndicator, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio: %w", err)
	}
	p := &PiIndicator{identify: bcm283x.GPIO17, mute: bcm283x.GPIO27}
	if err := p.identify.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("gpio: identify pin: %w", err)
	}
	if err := p.mute.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("gpio: mute pin: %w", err)
	}
	return p, nil
}

// Set drives both LEDs to the given state.
func (p *PiIndicator) Set(identify, mute bool) error {
	if err := p.identify.Out(gpio.Level(identify)); err != nil {
		return fmt.Errorf("gpio: identify pin: %w", err)
	}
	if err := p.mute.Out(gpio.Level(mute)); err != nil {
		return fmt.Errorf("gpio: mute pin: %w", err)
	}
	return nil
}

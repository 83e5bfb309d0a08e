//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/adxl345"

	"gamenode/core"
)

// tiltDeadband is the raw X-axis count below which the controller
// reads neutral. ADXL345 full-resolution mode is ~256 counts per g;
// this puts the trip point around a 30 degree tilt.
const tiltDeadband = 128

// tiltSensor reads the handheld tilt controller: an ADXL345 on the
// shared I2C bus plus a trigger button wired active-low.
type tiltSensor struct {
	accel  adxl345.Device
	button machine.Pin
}

func newTiltSensor(bus *machine.I2C, buttonPin machine.Pin) (*tiltSensor, error) {
	accel := adxl345.New(bus)
	accel.Configure()

	buttonPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	return &tiltSensor{accel: accel, button: buttonPin}, nil
}

func (t *tiltSensor) ReadDirection() core.TiltDirection {
	x, _, _ := t.accel.ReadRawAcceleration()
	switch {
	case x > tiltDeadband:
		return core.TiltRight
	case x < -tiltDeadband:
		return core.TiltLeft
	}
	return core.TiltNeutral
}

func (t *tiltSensor) ReadButton() bool {
	return !t.button.Get() // active low
}

var _ core.TiltDriver = (*tiltSensor)(nil)

//go:build rp2040

package main

import (
	"machine"

	"gamenode/core"
)

// The motor controller board lives on I2C and runs the PID speed loop
// itself; this driver only writes targets and tuning into its register
// file.
const (
	motorBoardAddr = 0x42

	regSliderTarget  = 0x01 // int16 position target
	regJoystickSpeed = 0x02 // int16 signed speed target
	regTiltDirection = 0x03 // uint8 direction code
	regSpeedCap      = 0x04 // uint16 speed ceiling
	regGainP         = 0x10 // int16
	regGainI         = 0x11 // int16
	regGainD         = 0x12 // int16
	regSamplePeriod  = 0x13 // uint16 microseconds
	regMaxOutput     = 0x14 // uint16
)

// motorBoard implements both core.MotorDriver and core.SpeedController.
type motorBoard struct {
	bus *machine.I2C
}

func newMotorBoard(bus *machine.I2C) *motorBoard {
	return &motorBoard{bus: bus}
}

func (m *motorBoard) writeReg16(reg uint8, value int32) error {
	buf := []byte{reg, byte(value), byte(value >> 8)}
	return m.bus.Tx(motorBoardAddr, buf, nil)
}

func (m *motorBoard) RunSlider(target int) error {
	return m.writeReg16(regSliderTarget, int32(target))
}

func (m *motorBoard) RunJoystick(speed int) error {
	return m.writeReg16(regJoystickSpeed, int32(speed))
}

func (m *motorBoard) RunTilt(dir core.TiltDirection) error {
	return m.bus.Tx(motorBoardAddr, []byte{regTiltDirection, byte(dir)}, nil)
}

func (m *motorBoard) SetSpeedCap(cap uint32) error {
	return m.writeReg16(regSpeedCap, int32(cap))
}

func (m *motorBoard) SetGains(kP, kI, kD int32) error {
	if err := m.writeReg16(regGainP, kP); err != nil {
		return err
	}
	if err := m.writeReg16(regGainI, kI); err != nil {
		return err
	}
	return m.writeReg16(regGainD, kD)
}

func (m *motorBoard) Configure(kP, kI, kD int32, samplePeriod float32, maxOutput uint32) error {
	if err := m.SetGains(kP, kI, kD); err != nil {
		return err
	}
	periodUS := int32(samplePeriod * 1e6)
	if err := m.writeReg16(regSamplePeriod, periodUS); err != nil {
		return err
	}
	return m.writeReg16(regMaxOutput, int32(maxOutput))
}

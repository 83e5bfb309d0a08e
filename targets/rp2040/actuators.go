//go:build rp2040

package main

import (
	"machine"

	"gamenode/core"
)

// servoDriver drives a standard hobby servo: 50 Hz PWM, 1.0 to 2.0 ms
// pulse across the -100..100 position range.
type servoDriver struct {
	pwm     pwmGroup
	channel uint8
}

// pwmGroup abstracts TinyGo's unexported *pwmGroup type.
type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

func newServoDriver(pin machine.Pin) (*servoDriver, error) {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil, err
	}
	pwm := pwmForSlice(slice)
	if err := pwm.Configure(machine.PWMConfig{Period: 20_000_000}); err != nil { // 20ms
		return nil, err
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}
	return &servoDriver{pwm: pwm, channel: ch}, nil
}

func (s *servoDriver) SetPosition(pos int) error {
	if pos < -100 {
		pos = -100
	} else if pos > 100 {
		pos = 100
	}
	// 1500us center, 5us per position unit.
	pulseUS := uint32(1500 + pos*5)
	top := s.pwm.Top()
	s.pwm.Set(s.channel, pulseUS*top/20_000)
	return nil
}

// pwmForSlice maps a PWM slice number to its peripheral.
func pwmForSlice(slice uint8) pwmGroup {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// solenoidDriver is a level-driven FET output.
type solenoidDriver struct {
	pin machine.Pin
}

func newSolenoidDriver(pin machine.Pin) *solenoidDriver {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return &solenoidDriver{pin: pin}
}

func (s *solenoidDriver) Fire(on bool) error {
	s.pin.Set(on)
	return nil
}

// irSensor samples the IR gate photodiode on an ADC channel. Readings
// are shifted down to the 12-bit scale the threshold is calibrated in.
type irSensor struct {
	adc machine.ADC
}

func newIRSensor(pin machine.Pin) *irSensor {
	machine.InitADC()
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &irSensor{adc: adc}
}

func (s *irSensor) ReadLevel() (uint16, error) {
	return s.adc.Get() >> 4, nil
}

var _ core.SolenoidDriver = (*solenoidDriver)(nil)
var _ core.ServoDriver = (*servoDriver)(nil)
var _ core.IRSensorDriver = (*irSensor)(nil)

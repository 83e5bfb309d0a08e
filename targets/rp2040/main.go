//go:build rp2040

package main

import (
	"machine"
	"time"

	"gamenode/core"
	"gamenode/protocol"
)

// Pin assignment for the game-station controller board.
const (
	irSensorPin = machine.ADC0 // IR gate photodiode
	servoPin    = machine.GP2  // aiming servo PWM
	solenoidPin = machine.GP3  // shot solenoid driver FET
	tiltIntPin  = machine.GP6  // tilt controller trigger button
)

var (
	rxBuffer *protocol.FifoBuffer
	game     *core.Game
)

func main() {
	core.SetDebugWriter(func(s string) { println(s) })
	core.InitAsyncDebug()

	// I2C0 carries the motor controller board and the tilt
	// accelerometer. SDA=GP4, SCL=GP5.
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{Frequency: 400000}); err != nil {
		fatal("i2c init: " + err.Error())
	}

	motor := newMotorBoard(i2c)
	core.SetMotorDriver(motor)
	core.SetSpeedController(motor)

	servo, err := newServoDriver(servoPin)
	if err != nil {
		fatal("servo init: " + err.Error())
	}
	core.SetServoDriver(servo)

	core.SetSolenoidDriver(newSolenoidDriver(solenoidPin))
	core.SetIRSensorDriver(newIRSensor(irSensorPin))

	tilt, err := newTiltSensor(i2c, tiltIntPin)
	if err != nil {
		fatal("tilt init: " + err.Error())
	}
	core.SetTiltDriver(tilt)

	core.SetBusDriver(newSerialBus())
	core.SetTickDriver(tick())

	game = core.NewGame()
	if err := game.Init(); err != nil {
		fatal("game init: " + err.Error())
	}

	rxBuffer = protocol.NewFifoBuffer(256)
	game.EnableTick()

	// Foreground loop: ingest bus messages from the serial link. The
	// tick interrupt preempts this at the control rate.
	readBuf := make([]byte, 64)
	for {
		n := readSerial(readBuf)
		if n == 0 {
			time.Sleep(time.Millisecond)
			continue
		}
		rxBuffer.Write(readBuf[:n])
		drainMessages()
	}
}

// drainMessages decodes and routes every complete frame received.
func drainMessages() {
	for {
		data := rxBuffer.Data()
		before := len(data)
		m, err := protocol.DecodeFrame(&data)
		rxBuffer.Pop(before - len(data))

		if err == protocol.ErrShortFrame {
			return
		}
		if err != nil {
			core.DebugAsync("bad frame: " + err.Error())
			continue
		}
		if err := game.HandleMessage(m); err != nil {
			core.DebugAsync("message rejected: " + err.Error())
		}
	}
}

// readSerial polls the USB CDC port for available bytes.
func readSerial(buf []byte) int {
	n := 0
	for n < len(buf) && machine.Serial.Buffered() > 0 {
		b, err := machine.Serial.ReadByte()
		if err != nil {
			break
		}
		buf[n] = b
		n++
	}
	return n
}

// fatal reports an unrecoverable startup error forever. Startup
// contract violations have no runtime recovery path.
func fatal(msg string) {
	for {
		println("FATAL: " + msg)
		time.Sleep(time.Second)
	}
}

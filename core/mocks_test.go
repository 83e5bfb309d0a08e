package core

import (
	"testing"

	"gamenode/protocol"
)

// Mock drivers installed through the HAL setters, mirroring how targets
// register real hardware.

type mockMotor struct {
	sliderTargets  []int
	joystickSpeeds []int
	tiltDirs       []TiltDirection
	speedCaps      []uint32
	err            error
}

func (m *mockMotor) RunSlider(target int) error {
	m.sliderTargets = append(m.sliderTargets, target)
	return m.err
}

func (m *mockMotor) RunJoystick(speed int) error {
	m.joystickSpeeds = append(m.joystickSpeeds, speed)
	return m.err
}

func (m *mockMotor) RunTilt(dir TiltDirection) error {
	m.tiltDirs = append(m.tiltDirs, dir)
	return m.err
}

func (m *mockMotor) SetSpeedCap(cap uint32) error {
	m.speedCaps = append(m.speedCaps, cap)
	return m.err
}

type mockServo struct {
	positions []int
	err       error
}

func (m *mockServo) SetPosition(pos int) error {
	m.positions = append(m.positions, pos)
	return m.err
}

type mockSolenoid struct {
	fires []bool
	err   error
}

func (m *mockSolenoid) Fire(on bool) error {
	m.fires = append(m.fires, on)
	return m.err
}

type mockIRSensor struct {
	levels []uint16
	next   int
	err    error
}

// ReadLevel plays back the queued readings, repeating the last one.
func (m *mockIRSensor) ReadLevel() (uint16, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.levels) == 0 {
		return IRThreshold + 500, nil
	}
	level := m.levels[m.next]
	if m.next < len(m.levels)-1 {
		m.next++
	}
	return level, nil
}

type mockTilt struct {
	dir    TiltDirection
	button bool
}

func (m *mockTilt) ReadDirection() TiltDirection { return m.dir }
func (m *mockTilt) ReadButton() bool             { return m.button }

type gainSet struct {
	kP, kI, kD int32
}

type mockSpeedController struct {
	configured   bool
	samplePeriod float32
	maxOutput    uint32
	gains        []gainSet
}

func (m *mockSpeedController) Configure(kP, kI, kD int32, samplePeriod float32, maxOutput uint32) error {
	m.configured = true
	m.samplePeriod = samplePeriod
	m.maxOutput = maxOutput
	m.gains = append(m.gains, gainSet{kP, kI, kD})
	return nil
}

func (m *mockSpeedController) SetGains(kP, kI, kD int32) error {
	m.gains = append(m.gains, gainSet{kP, kI, kD})
	return nil
}

func (m *mockSpeedController) last() gainSet {
	if len(m.gains) == 0 {
		return gainSet{}
	}
	return m.gains[len(m.gains)-1]
}

type mockBus struct {
	sent []protocol.Message
	err  error
}

func (m *mockBus) Send(msg protocol.Message, priority uint8) error {
	m.sent = append(m.sent, msg)
	return m.err
}

type mockTick struct {
	freqHz  uint32
	handler TickHandler
	enabled bool
}

func (m *mockTick) Configure(freqHz uint32, handler TickHandler) error {
	m.freqHz = freqHz
	m.handler = handler
	return nil
}

func (m *mockTick) Enable()  { m.enabled = true }
func (m *mockTick) Disable() { m.enabled = false }

// Fire delivers n synthetic ticks.
func (m *mockTick) Fire(n int) {
	for i := 0; i < n; i++ {
		m.handler()
	}
}

type testRig struct {
	game     *Game
	motor    *mockMotor
	servo    *mockServo
	solenoid *mockSolenoid
	ir       *mockIRSensor
	tilt     *mockTilt
	pid      *mockSpeedController
	bus      *mockBus
	tick     *mockTick
}

// newRig wires a fresh game to mock drivers and runs Init.
func newRig(t *testing.T) *testRig {
	t.Helper()

	r := &testRig{
		game:     NewGame(),
		motor:    &mockMotor{},
		servo:    &mockServo{},
		solenoid: &mockSolenoid{},
		ir:       &mockIRSensor{},
		tilt:     &mockTilt{},
		pid:      &mockSpeedController{},
		bus:      &mockBus{},
		tick:     &mockTick{},
	}

	SetMotorDriver(r.motor)
	SetServoDriver(r.servo)
	SetSolenoidDriver(r.solenoid)
	SetIRSensorDriver(r.ir)
	SetTiltDriver(r.tilt)
	SetSpeedController(r.pid)
	SetBusDriver(r.bus)
	SetTickDriver(r.tick)

	if err := r.game.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return r
}

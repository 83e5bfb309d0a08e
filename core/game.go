// Package core implements the control loop of the game-station node: a
// timer-driven cycle that maps operator input to actuator commands,
// watches the IR gate for dropped balls and keeps the score and life
// ledger in step with the events it reports on the bus.
package core

import (
	"gamenode/protocol"
)

const (
	// IRThreshold is the ADC level below which the IR gate counts as
	// blocked.
	IRThreshold = 1000

	// InitialLives is the life count at startup and after a reset.
	InitialLives = 3

	// TickFrequencyHz is the control loop rate.
	TickFrequencyHz = 50

	// MaxMotorSpeed is the absolute output ceiling handed to the speed
	// controller at init.
	MaxMotorSpeed = 0x4FF
)

// Game owns all mutable node state. The tick handler reads it from
// interrupt context; foreground writers (bus receive, host commands) go
// through the setter methods, which mask the tick interrupt so the
// dispatcher never observes a torn update.
type Game struct {
	score     uint32
	livesLeft int32
	latched   bool

	scheme     ControlScheme
	difficulty Difficulty
	input      InputSnapshot

	// Saturating count of actuator command failures. First failure
	// raises a degraded event on the bus.
	actuatorErrs uint8
}

// NewGame returns a game in its power-on state. Drivers must be
// registered and Init called before enabling the tick source.
func NewGame() *Game {
	return &Game{
		livesLeft:  InitialLives,
		scheme:     SliderPosition,
		difficulty: Hard,
	}
}

// Init zeroes the ledger, pushes the Hard profile into the speed
// controller and motor, and arms the tick source at the control rate.
// The tick stays disabled until EnableTick.
func (g *Game) Init() error {
	g.score = 0
	g.livesLeft = InitialLives
	g.latched = false
	g.actuatorErrs = 0

	p := difficultyProfiles[Hard]
	samplePeriod := float32(1.0) / TickFrequencyHz
	if err := MustSpeedController().Configure(p.KP, p.KI, p.KD, samplePeriod, MaxMotorSpeed); err != nil {
		return err
	}
	if err := MustMotor().SetSpeedCap(p.SpeedCap); err != nil {
		return err
	}

	return MustTick().Configure(TickFrequencyHz, g.RunCycle)
}

// EnableTick starts the periodic cycle.
func (g *Game) EnableTick() { MustTick().Enable() }

// DisableTick stops the periodic cycle; an in-flight cycle finishes.
func (g *Game) DisableTick() { MustTick().Disable() }

// RunCycle executes one control tick: dispatch actuator commands for
// the active scheme, sample the IR gate, and account the cycle. Runs in
// interrupt context on hardware targets; it never blocks.
func (g *Game) RunCycle() {
	g.runControl()

	if g.countFails() {
		g.notifyLivesLeft()
	}

	g.score++
}

// Score returns the current score.
func (g *Game) Score() uint32 {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return g.score
}

// ResetScore sets the score back to zero.
func (g *Game) ResetScore() {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	g.score = 0
}

// LivesLeft returns the remaining lives. May be negative: the core
// deliberately has no zero floor, game-over policy lives elsewhere.
func (g *Game) LivesLeft() int32 {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return g.livesLeft
}

// ResetLivesLeft restores the initial life count, whatever the current
// value, and re-arms the fail detector.
func (g *Game) ResetLivesLeft() {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	g.livesLeft = InitialLives
	g.latched = false
}

// SetControlScheme selects the input mapping used from the next tick on.
// Unknown selectors are kept: the dispatcher treats them as a no-op.
func (g *Game) SetControlScheme(s ControlScheme) {
	state := disableInterrupts()
	changed := g.scheme != s
	g.scheme = s
	restoreInterrupts(state)

	if changed {
		DebugPrintln("scheme -> " + s.String())
	}
}

// notifyLivesLeft reports a life loss on the bus. Payload is the
// post-decrement count, one byte, wrapping like the original unsigned
// counter when below zero.
func (g *Game) notifyLivesLeft() {
	m, err := protocol.NewMessage(protocol.MsgLivesLeft, []byte{byte(g.livesLeft)})
	if err != nil {
		return
	}
	if err := MustBus().Send(m, 0); err != nil {
		DebugPrintln("lives-left send failed: " + err.Error())
	}
}

// actuate folds an actuator command result into the degraded-mode
// accounting. Command errors never abort the cycle.
func (g *Game) actuate(err error) {
	if err == nil {
		return
	}

	first := g.actuatorErrs == 0
	if g.actuatorErrs < 0xFF {
		g.actuatorErrs++
	}
	DebugPrintln("actuator error: " + err.Error())

	if first {
		if m, merr := protocol.NewMessage(protocol.MsgDegraded, []byte{g.actuatorErrs}); merr == nil {
			// Best effort, same as the lives event.
			_ = MustBus().Send(m, 0)
		}
	}
}

// ActuatorErrors returns the saturating actuator failure count.
func (g *Game) ActuatorErrors() uint8 {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return g.actuatorErrs
}

//go:build rp2040

package main

import (
	"device/rp"
	"errors"
	"runtime/interrupt"

	"gamenode/core"
)

// rpTickDriver drives the control loop from TIMER ALARM0. The RP2040
// timer counts microseconds; the alarm is re-armed from the interrupt
// handler so jitter does not accumulate.
type rpTickDriver struct {
	intervalUS uint32
	handler    core.TickHandler
	enabled    bool
	intr       interrupt.Interrupt
}

var tickSource rpTickDriver

// tick returns the board's single tick driver.
func tick() *rpTickDriver {
	return &tickSource
}

var errBadTickRate = errors.New("tick frequency must divide 1MHz")

func (d *rpTickDriver) Configure(freqHz uint32, handler core.TickHandler) error {
	if freqHz == 0 || 1000000%freqHz != 0 {
		return errBadTickRate
	}
	d.intervalUS = 1000000 / freqHz
	d.handler = handler
	d.intr = interrupt.New(rp.IRQ_TIMER_IRQ_0, tickIRQ)
	d.intr.SetPriority(0x80)
	return nil
}

func (d *rpTickDriver) Enable() {
	if d.handler == nil {
		return
	}
	d.enabled = true
	rp.TIMER.INTE.SetBits(1 << 0)
	d.arm()
	d.intr.Enable()
}

func (d *rpTickDriver) Disable() {
	d.enabled = false
	rp.TIMER.INTE.ClearBits(1 << 0)
	// Disarm a pending alarm; an in-flight handler finishes on its own.
	rp.TIMER.ARMED.Set(1 << 0)
}

// arm schedules the next alarm relative to the current counter value.
func (d *rpTickDriver) arm() {
	now := rp.TIMER.TIMERAWL.Get()
	rp.TIMER.ALARM0.Set(now + d.intervalUS)
}

// tickIRQ runs in interrupt context: acknowledge, re-arm, run the cycle.
func tickIRQ(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(1 << 0)
	if !tickSource.enabled {
		return
	}
	tickSource.arm()
	tickSource.handler()
}

package core

// TickHandler is the per-cycle entry point the tick source invokes. On
// hardware targets it runs in interrupt context and must not block.
type TickHandler func()

// TickDriver abstracts the periodic hardware timer driving the control
// loop. Configure arms the timer without starting it; Enable and
// Disable start and stop counting without reconfiguring. Disabling
// lets an in-flight tick finish.
type TickDriver interface {
	Configure(freqHz uint32, handler TickHandler) error
	Enable()
	Disable()
}

// Global singleton used by core code.
var tickDriver TickDriver

// SetTickDriver is called by target-specific code to register its driver.
func SetTickDriver(d TickDriver) {
	tickDriver = d
}

// MustTick returns the configured driver or panics if missing.
func MustTick() TickDriver {
	if tickDriver == nil {
		panic("tick driver not configured")
	}
	return tickDriver
}

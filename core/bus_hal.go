package core

import "gamenode/protocol"

// BusDriver sends messages to the other station nodes. Delivery is
// best-effort: the core never waits for an acknowledgement.
type BusDriver interface {
	Send(m protocol.Message, priority uint8) error
}

var busDriver BusDriver

// SetBusDriver is called by target-specific code to register its driver.
func SetBusDriver(d BusDriver) {
	busDriver = d
}

// MustBus returns the configured driver or panics if missing.
func MustBus() BusDriver {
	if busDriver == nil {
		panic("bus driver not configured")
	}
	return busDriver
}

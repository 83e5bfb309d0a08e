package core

// IRSensorDriver samples the IR gate photodiode. ReadLevel must be
// bounded-latency: it is called from the tick handler every cycle.
type IRSensorDriver interface {
	ReadLevel() (uint16, error)
}

var irSensorDriver IRSensorDriver

// SetIRSensorDriver is called by target-specific code to register its driver.
func SetIRSensorDriver(d IRSensorDriver) {
	irSensorDriver = d
}

// MustIRSensor returns the configured driver or panics if missing.
func MustIRSensor() IRSensorDriver {
	if irSensorDriver == nil {
		panic("IR sensor driver not configured")
	}
	return irSensorDriver
}

package core

// SolenoidDriver fires the shot solenoid. Fire is level-triggered: the
// dispatcher calls it every cycle with the current button state.
type SolenoidDriver interface {
	Fire(on bool) error
}

var solenoidDriver SolenoidDriver

// SetSolenoidDriver is called by target-specific code to register its driver.
func SetSolenoidDriver(d SolenoidDriver) {
	solenoidDriver = d
}

// MustSolenoid returns the configured driver or panics if missing.
func MustSolenoid() SolenoidDriver {
	if solenoidDriver == nil {
		panic("solenoid driver not configured")
	}
	return solenoidDriver
}

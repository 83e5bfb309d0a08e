package core

// SpeedController is the external PID motor-speed controller. Configure
// is the full startup handshake; SetGains retunes a running controller
// without touching the sample period or output ceiling.
type SpeedController interface {
	Configure(kP, kI, kD int32, samplePeriod float32, maxOutput uint32) error
	SetGains(kP, kI, kD int32) error
}

var speedController SpeedController

// SetSpeedController is called by target-specific code to register its driver.
func SetSpeedController(c SpeedController) {
	speedController = c
}

// MustSpeedController returns the configured controller or panics if missing.
func MustSpeedController() SpeedController {
	if speedController == nil {
		panic("speed controller not configured")
	}
	return speedController
}

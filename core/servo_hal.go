package core

// ServoDriver positions the aiming servo.
type ServoDriver interface {
	SetPosition(pos int) error
}

var servoDriver ServoDriver

// SetServoDriver is called by target-specific code to register its driver.
func SetServoDriver(d ServoDriver) {
	servoDriver = d
}

// MustServo returns the configured driver or panics if missing.
func MustServo() ServoDriver {
	if servoDriver == nil {
		panic("servo driver not configured")
	}
	return servoDriver
}

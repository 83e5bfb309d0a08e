package core

// MotorDriver is the abstract interface to the main game motor. The
// PID position/speed loop lives behind it; core code only hands over
// targets.
type MotorDriver interface {
	// RunSlider drives the motor toward a slider position target.
	RunSlider(target int) error

	// RunJoystick drives the motor at a joystick speed target, sign
	// giving direction.
	RunJoystick(speed int) error

	// RunTilt drives the motor from a tilt direction.
	RunTilt(dir TiltDirection) error

	// SetSpeedCap limits the motor's commanded speed.
	SetSpeedCap(cap uint32) error
}

// Global singleton used by core code.
var motorDriver MotorDriver

// SetMotorDriver is called by target-specific code to register its driver.
func SetMotorDriver(d MotorDriver) {
	motorDriver = d
}

// MustMotor returns the configured driver or panics if missing.
func MustMotor() MotorDriver {
	if motorDriver == nil {
		panic("motor driver not configured")
	}
	return motorDriver
}

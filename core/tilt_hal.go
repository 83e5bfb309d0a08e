package core

// TiltDirection is the discretized reading of the tilt controller.
type TiltDirection uint8

const (
	TiltNeutral TiltDirection = iota
	TiltLeft
	TiltRight
)

func (d TiltDirection) String() string {
	switch d {
	case TiltNeutral:
		return "neutral"
	case TiltLeft:
		return "left"
	case TiltRight:
		return "right"
	}
	return "unknown(" + utoa(uint32(d)) + ")"
}

// TiltDriver reads the handheld tilt controller. Both reads are
// bounded polling reads; the button here is the controller's own
// trigger, a distinct source from the input frame's buttons.
type TiltDriver interface {
	ReadDirection() TiltDirection
	ReadButton() bool
}

var tiltDriver TiltDriver

// SetTiltDriver is called by target-specific code to register its driver.
func SetTiltDriver(d TiltDriver) {
	tiltDriver = d
}

// MustTilt returns the configured driver or panics if missing.
func MustTilt() TiltDriver {
	if tiltDriver == nil {
		panic("tilt driver not configured")
	}
	return tiltDriver
}

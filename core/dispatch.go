package core

// ControlScheme selects how operator input maps to actuator commands.
type ControlScheme uint8

const (
	// SliderPosition drives the motor to the right slider's position.
	SliderPosition ControlScheme = iota

	// JoystickSpeed drives the motor at a speed set by the joystick X
	// axis.
	JoystickSpeed

	// TiltSpeed drives the motor from the tilt sensor direction.
	TiltSpeed
)

func (s ControlScheme) String() string {
	switch s {
	case SliderPosition:
		return "slider-position"
	case JoystickSpeed:
		return "joystick-speed"
	case TiltSpeed:
		return "tilt-speed"
	}
	return "unknown(" + utoa(uint32(s)) + ")"
}

// runControl issues one set of actuator commands for the active scheme.
// The Impossible tier inverts the motor control sense so the same
// physical task gets harder without touching actuator limits. Unknown
// schemes command nothing.
func (g *Game) runControl() {
	switch g.scheme {
	case SliderPosition:
		target := g.input.SliderRight
		if g.difficulty == Impossible {
			target = SliderMax - target
		}
		g.actuate(MustMotor().RunSlider(target))
		g.actuate(MustServo().SetPosition(g.input.JoystickX))
		g.actuate(MustSolenoid().Fire(g.input.ButtonRight))

	case JoystickSpeed:
		speed := g.input.JoystickX
		if g.difficulty == Impossible {
			speed = -speed
		}
		g.actuate(MustMotor().RunJoystick(speed))
		g.actuate(MustServo().SetPosition(2 * (g.input.SliderRight - 50)))
		g.actuate(MustSolenoid().Fire(g.input.ButtonRight))

	case TiltSpeed:
		tilt := MustTilt()
		dir := tilt.ReadDirection()
		if g.difficulty == Impossible {
			switch dir {
			case TiltLeft:
				dir = TiltRight
			case TiltRight:
				dir = TiltLeft
			}
		}
		g.actuate(MustMotor().RunTilt(dir))
		g.actuate(MustServo().SetPosition(g.input.JoystickX))
		g.actuate(MustSolenoid().Fire(tilt.ReadButton()))
	}
}

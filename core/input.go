package core

import "errors"

var ErrInvalidFrame = errors.New("raw input frame must be 6 bytes")

const (
	// RawFrameSize is the wire size of one operator input frame.
	RawFrameSize = 6

	// SliderMax is the top of the scaled slider range.
	SliderMax = 100
)

// InputSnapshot is the scaled view of one raw input frame. It is
// replaced wholesale by ApplyRawFrame and read-only to the dispatcher.
type InputSnapshot struct {
	JoystickX   int
	JoystickY   int
	SliderLeft  int
	SliderRight int
	ButtonLeft  bool
	ButtonRight bool
}

// Raw-byte scaling functions. Calibration belongs to the input board,
// so targets may replace these; the defaults map the joystick axes to
// -100..100 and the sliders to 0..SliderMax.
var (
	ScaleJoystickX = func(raw byte) int { return int(raw)*200/255 - 100 }
	ScaleJoystickY = func(raw byte) int { return int(raw)*200/255 - 100 }

	ScaleSliderLeft  = func(raw byte) int { return int(raw) * SliderMax / 255 }
	ScaleSliderRight = func(raw byte) int { return int(raw) * SliderMax / 255 }
)

// ApplyRawFrame scales a 6-byte raw frame into the input snapshot.
// Byte order: joystick X, joystick Y, slider left, slider right, button
// left, button right. Anything but exactly 6 bytes is rejected and the
// previous snapshot stays in effect.
func (g *Game) ApplyRawFrame(frame []byte) error {
	if len(frame) != RawFrameSize {
		return ErrInvalidFrame
	}

	snap := InputSnapshot{
		JoystickX:   ScaleJoystickX(frame[0]),
		JoystickY:   ScaleJoystickY(frame[1]),
		SliderLeft:  ScaleSliderLeft(frame[2]),
		SliderRight: ScaleSliderRight(frame[3]),
		ButtonLeft:  frame[4] != 0,
		ButtonRight: frame[5] != 0,
	}

	state := disableInterrupts()
	g.input = snap
	restoreInterrupts(state)
	return nil
}

// Input returns a copy of the current snapshot.
func (g *Game) Input() InputSnapshot {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return g.input
}

package core

// countFails samples the IR gate and runs the fail latch. One maximal
// run of readings below IRThreshold costs exactly one life: the first
// low sample latches and decrements, and the latch only re-arms once
// the level rises clearly above the threshold again. Returns true when
// a life was lost this cycle.
func (g *Game) countFails() bool {
	level, err := MustIRSensor().ReadLevel()
	if err != nil {
		// A failed sample neither latches nor re-arms.
		DebugPrintln("ir read failed: " + err.Error())
		return false
	}

	if level < IRThreshold && !g.latched {
		g.livesLeft--
		g.latched = true
		return true
	}

	if level > IRThreshold {
		g.latched = false
	}

	return false
}

// Latched reports whether the fail detector is currently latched.
func (g *Game) Latched() bool {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return g.latched
}

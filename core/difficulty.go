package core

// Difficulty names a configuration bundling PID gains, a speed cap and
// the Impossible tier's control inversion.
type Difficulty uint8

const (
	Hard Difficulty = iota
	Extreme
	Impossible
)

func (d Difficulty) String() string {
	switch d {
	case Hard:
		return "hard"
	case Extreme:
		return "extreme"
	case Impossible:
		return "impossible"
	}
	return "unknown(" + utoa(uint32(d)) + ")"
}

// DifficultyProfile bundles the controller tuning for one tier.
type DifficultyProfile struct {
	KP, KI, KD int32
	SpeedCap   uint32
}

// Gains and caps carried over from the original board tuning.
var difficultyProfiles = [...]DifficultyProfile{
	Hard:       {KP: 35, KI: 20, KD: 1, SpeedCap: 0x4FF},
	Extreme:    {KP: 20, KI: 10, KD: 1, SpeedCap: 0x3FF},
	Impossible: {KP: 40, KI: 25, KD: 1, SpeedCap: 0x4FF},
}

// Profile returns the tuning table entry for a tier.
func Profile(d Difficulty) (DifficultyProfile, bool) {
	if int(d) >= len(difficultyProfiles) {
		return DifficultyProfile{}, false
	}
	return difficultyProfiles[d], true
}

// SetDifficulty applies a tier: gains go to the speed controller and
// the cap to the motor driver immediately, then the selector is
// recorded for the dispatcher's inversion check. Unknown tiers leave
// everything unchanged.
func (g *Game) SetDifficulty(d Difficulty) error {
	p, ok := Profile(d)
	if !ok {
		DebugPrintln("ignoring unknown difficulty " + d.String())
		return nil
	}

	if err := MustSpeedController().SetGains(p.KP, p.KI, p.KD); err != nil {
		return err
	}
	if err := MustMotor().SetSpeedCap(p.SpeedCap); err != nil {
		return err
	}

	state := disableInterrupts()
	g.difficulty = d
	restoreInterrupts(state)
	return nil
}

// CurrentDifficulty returns the active tier.
func (g *Game) CurrentDifficulty() Difficulty {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return g.difficulty
}

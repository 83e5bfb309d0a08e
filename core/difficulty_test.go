package core

import "testing"

func TestInitPushesHardProfile(t *testing.T) {
	r := newRig(t)

	if !r.pid.configured {
		t.Fatal("Init did not configure the speed controller")
	}
	if got, want := r.pid.last(), (gainSet{35, 20, 1}); got != want {
		t.Errorf("gains = %+v, want %+v", got, want)
	}
	if r.pid.maxOutput != MaxMotorSpeed {
		t.Errorf("max output = %#x, want %#x", r.pid.maxOutput, uint32(MaxMotorSpeed))
	}
	if want := float32(1.0) / TickFrequencyHz; r.pid.samplePeriod != want {
		t.Errorf("sample period = %v, want %v", r.pid.samplePeriod, want)
	}
	if len(r.motor.speedCaps) == 0 || r.motor.speedCaps[len(r.motor.speedCaps)-1] != 0x4FF {
		t.Errorf("speed caps = %v, want trailing 0x4FF", r.motor.speedCaps)
	}
	if r.tick.freqHz != TickFrequencyHz {
		t.Errorf("tick frequency = %d, want %d", r.tick.freqHz, TickFrequencyHz)
	}
}

func TestSetDifficultyAppliesProfile(t *testing.T) {
	r := newRig(t)

	if err := r.game.SetDifficulty(Extreme); err != nil {
		t.Fatalf("SetDifficulty(Extreme): %v", err)
	}
	if got, want := r.pid.last(), (gainSet{20, 10, 1}); got != want {
		t.Errorf("gains = %+v, want %+v", got, want)
	}
	if got := r.motor.speedCaps[len(r.motor.speedCaps)-1]; got != 0x3FF {
		t.Errorf("speed cap = %#x, want 0x3FF", got)
	}
	if r.game.CurrentDifficulty() != Extreme {
		t.Errorf("difficulty = %v, want Extreme", r.game.CurrentDifficulty())
	}
}

func TestSetDifficultySuccessionLeavesNoResidue(t *testing.T) {
	r := newRig(t)

	r.game.SetDifficulty(Extreme)
	r.game.SetDifficulty(Hard)

	if got, want := r.pid.last(), (gainSet{35, 20, 1}); got != want {
		t.Errorf("gains = %+v, want the Hard profile %+v", got, want)
	}
	if got := r.motor.speedCaps[len(r.motor.speedCaps)-1]; got != 0x4FF {
		t.Errorf("speed cap = %#x, want 0x4FF", got)
	}
	if r.game.CurrentDifficulty() != Hard {
		t.Errorf("difficulty = %v, want Hard", r.game.CurrentDifficulty())
	}
}

func TestSetDifficultyUnknownTierNoOp(t *testing.T) {
	r := newRig(t)
	r.game.SetDifficulty(Extreme)
	gainsBefore := len(r.pid.gains)
	capsBefore := len(r.motor.speedCaps)

	if err := r.game.SetDifficulty(Difficulty(7)); err != nil {
		t.Fatalf("unknown tier returned error: %v", err)
	}

	if len(r.pid.gains) != gainsBefore {
		t.Error("unknown tier touched the speed controller")
	}
	if len(r.motor.speedCaps) != capsBefore {
		t.Error("unknown tier touched the motor cap")
	}
	if r.game.CurrentDifficulty() != Extreme {
		t.Errorf("difficulty = %v, want Extreme retained", r.game.CurrentDifficulty())
	}
}

func TestSetDifficultyIdempotent(t *testing.T) {
	r := newRig(t)

	r.game.SetDifficulty(Impossible)
	r.game.SetDifficulty(Impossible)

	want := gainSet{40, 25, 1}
	n := len(r.pid.gains)
	if r.pid.gains[n-1] != want || r.pid.gains[n-2] != want {
		t.Errorf("repeated apply wrote %+v then %+v, want %+v twice",
			r.pid.gains[n-2], r.pid.gains[n-1], want)
	}
}

func TestProfileLookup(t *testing.T) {
	if _, ok := Profile(Impossible); !ok {
		t.Error("Impossible profile missing")
	}
	if _, ok := Profile(Difficulty(3)); ok {
		t.Error("out-of-range tier reported a profile")
	}
}

package theme

import "testing"

func TestByName(t *testing.T) {
	if got := ByName("latte"); got.Base != Latte().Base {
		t.Error("latte did not resolve")
	}
	if got := ByName("light"); got.Base != Latte().Base {
		t.Error("light alias did not resolve to latte")
	}
	if got := ByName("mocha"); got.Base != Mocha().Base {
		t.Error("mocha did not resolve")
	}
	if got := ByName("unknown"); got.Base != Mocha().Base {
		t.Error("unknown theme should fall back to mocha")
	}
}

func TestSemanticColorsPopulated(t *testing.T) {
	for name, th := range map[string]Theme{"mocha": Mocha(), "latte": Latte()} {
		if th.Playhead == "" || th.LoopBand == "" || th.WavePlayed == "" || th.WaveIdle == "" || th.VideoFill == "" {
			t.Errorf("%s theme has empty semantic colors: %+v", name, th)
		}
	}
}

func TestNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !NoColorEnabled() {
		t.Error("NO_COLOR should disable color")
	}
}

package engine

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseIdle, PhaseCountdown, true},
		{PhaseIdle, PhaseActive, false},
		{PhaseCountdown, PhaseActive, true},
		{PhaseCountdown, PhaseRecatch, true},
		{PhaseCountdown, PhaseWon, false},
		{PhaseActive, PhaseRecatch, true},
		{PhaseActive, PhaseOver, true},
		{PhaseActive, PhaseCountdown, false},
		{PhaseRecatch, PhaseRecatch, true},
		{PhaseRecatch, PhaseActive, true},
		{PhaseRespawning, PhaseCountdown, true},
		{PhaseRespawning, PhaseActive, false},
		{PhaseOver, PhaseWon, false},
		{PhaseWon, PhaseOver, false},
		{PhaseOver, PhaseActive, false},
		{PhaseOver, PhaseIdle, true},
		{PhaseWon, PhaseIdle, true},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPhasePredicates(t *testing.T) {
	for p := PhaseIdle; p <= PhaseWon; p++ {
		playing := p == PhaseActive || p == PhaseRecatch
		terminal := p == PhaseOver || p == PhaseWon
		if p.IsPlaying() != playing {
			t.Errorf("%v.IsPlaying() = %v", p, p.IsPlaying())
		}
		if p.IsTerminal() != terminal {
			t.Errorf("%v.IsTerminal() = %v", p, p.IsTerminal())
		}
		if p.IsPlaying() && p.IsTerminal() {
			t.Errorf("%v is both playing and terminal", p)
		}
		if p.String() == "Unknown" {
			t.Errorf("Phase %d has no name", int(p))
		}
	}
	if Phase(99).String() != "Unknown" {
		t.Error("Expected Unknown for out-of-range phase")
	}
}

package game

import "testing"

func TestMoodThresholds(t *testing.T) {
	tests := []struct {
		energy     float64
		wantMood   string
		wantStatus string
	}{
		{100, "😊", "Rested"},
		{81, "😊", "Rested"},
		{80, "🙂", "Fine"},
		{51, "🙂", "Fine"},
		{50, "😐", "Tired"},
		{31, "😐", "Tired"},
		{30, "😫", "Exhausted"},
		{0, "😫", "Exhausted"},
	}

	for _, tt := range tests {
		c := Character{Energy: 0}.ApplyEnergyDelta(tt.energy)
		if c.Mood != tt.wantMood || c.Status != tt.wantStatus {
			t.Errorf("energy %v: mood %s status %s, want %s %s",
				tt.energy, c.Mood, c.Status, tt.wantMood, tt.wantStatus)
		}
	}
}

func TestApplyEnergyDeltaClamps(t *testing.T) {
	c := NewCharacter().ApplyEnergyDelta(50)
	if c.Energy != 100 {
		t.Errorf("Energy = %v, want clamped to 100", c.Energy)
	}
	if c.Status != "Rested" {
		t.Errorf("Status = %s, want Rested", c.Status)
	}

	c = c.ApplyEnergyDelta(-150)
	if c.Energy != 0 {
		t.Errorf("Energy = %v, want clamped to 0", c.Energy)
	}
	if c.Status != "Exhausted" {
		t.Errorf("Status = %s, want Exhausted after drain", c.Status)
	}
}

func TestStatusAlwaysConsistent(t *testing.T) {
	c := NewCharacter()
	for i := 0; i < 40; i++ {
		c = c.ApplyEnergyDelta(-3)
		want := "Exhausted"
		switch {
		case c.Energy > 80:
			want = "Rested"
		case c.Energy > 50:
			want = "Fine"
		case c.Energy > 30:
			want = "Tired"
		}
		if c.Status != want {
			t.Fatalf("energy %v: Status = %s, want %s", c.Energy, c.Status, want)
		}
	}
}

func TestEfficiency(t *testing.T) {
	c := Character{Energy: 100}
	n := NewNeeds()
	if got := Efficiency(c, n); !almostEqual(got, 1.0) {
		t.Errorf("Efficiency at full stats = %v, want 1.0", got)
	}

	c = Character{Energy: 50}
	n = Needs{Hunger: 50, Rest: 50, Hygiene: 50, Fun: 50, Social: 50}
	if got := Efficiency(c, n); !almostEqual(got, 0.5) {
		t.Errorf("Efficiency at half stats = %v, want 0.5", got)
	}
}

func TestEfficiencyFloor(t *testing.T) {
	c := Character{Energy: 0}
	n := Needs{}
	if got := Efficiency(c, n); got != MinEfficiency {
		t.Errorf("Efficiency at zero stats = %v, want floor %v", got, MinEfficiency)
	}
}

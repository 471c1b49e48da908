package game

// Character is the barista. Mood and Status are derived from Energy and
// recomputed on every change, never set independently.
type Character struct {
	Energy float64
	Mood   string
	Status string
}

// NewCharacter returns a fully rested character.
func NewCharacter() Character {
	c := Character{Energy: MaxNeed}
	return c.refresh()
}

// ApplyEnergyDelta adds delta to energy, clamps, and recomputes the
// derived mood and status.
func (c Character) ApplyEnergyDelta(delta float64) Character {
	c.Energy = clampNeed(c.Energy + delta)
	return c.refresh()
}

func (c Character) refresh() Character {
	switch {
	case c.Energy > 80:
		c.Mood, c.Status = MoodRested, "Rested"
	case c.Energy > 50:
		c.Mood, c.Status = MoodFine, "Fine"
	case c.Energy > 30:
		c.Mood, c.Status = MoodTired, "Tired"
	default:
		c.Mood, c.Status = MoodExhausted, "Exhausted"
	}
	return c
}

// Efficiency combines energy and overall wellbeing into a work-speed
// factor, floored so preparation never stalls completely.
func Efficiency(c Character, n Needs) float64 {
	eff := (c.Energy/MaxNeed)*0.6 + (n.Wellbeing()/MaxNeed)*0.4
	if eff < MinEfficiency {
		return MinEfficiency
	}
	return eff
}

package game

// NeedKind identifies one of the five wellbeing dimensions.
type NeedKind int

const (
	NeedHunger NeedKind = iota
	NeedRest
	NeedHygiene
	NeedFun
	NeedSocial
)

func (k NeedKind) String() string {
	switch k {
	case NeedHunger:
		return "hunger"
	case NeedRest:
		return "rest"
	case NeedHygiene:
		return "hygiene"
	case NeedFun:
		return "fun"
	default:
		return "social"
	}
}

// Icon returns the emoji used for the need's status bar.
func (k NeedKind) Icon() string {
	switch k {
	case NeedHunger:
		return "🍽️"
	case NeedRest:
		return "😴"
	case NeedHygiene:
		return "🚿"
	case NeedFun:
		return "🎮"
	default:
		return "👥"
	}
}

// Needs holds the five decaying wellbeing scores, each in [0,100].
type Needs struct {
	Hunger  float64
	Rest    float64
	Hygiene float64
	Fun     float64
	Social  float64
}

// NewNeeds returns fully satisfied needs.
func NewNeeds() Needs {
	return Needs{Hunger: MaxNeed, Rest: MaxNeed, Hygiene: MaxNeed, Fun: MaxNeed, Social: MaxNeed}
}

// Decay applies location-dependent per-tick deltas for elapsedTicks
// ticks and clamps every field. Working at the café wears everything
// down faster but slowly recovers social.
func (n Needs) Decay(loc Location, elapsedTicks int) Needs {
	t := float64(elapsedTicks)
	if loc == LocationCafe {
		return Needs{
			Hunger:  clampNeed(n.Hunger - CafeHungerDecay*t),
			Rest:    clampNeed(n.Rest - CafeRestDecay*t),
			Hygiene: clampNeed(n.Hygiene - CafeHygieneDecay*t),
			Fun:     clampNeed(n.Fun - CafeFunDecay*t),
			Social:  clampNeed(n.Social + CafeSocialGain*t),
		}
	}
	return Needs{
		Hunger:  clampNeed(n.Hunger - HomeHungerDecay*t),
		Rest:    n.Rest,
		Hygiene: clampNeed(n.Hygiene - HomeHygieneDecay*t),
		Fun:     clampNeed(n.Fun - HomeFunDecay*t),
		Social:  n.Social,
	}
}

// Wellbeing is the arithmetic mean of the five needs.
func (n Needs) Wellbeing() float64 {
	return (n.Hunger + n.Rest + n.Hygiene + n.Fun + n.Social) / 5
}

// Get returns the current value of the given need.
func (n Needs) Get(k NeedKind) float64 {
	switch k {
	case NeedHunger:
		return n.Hunger
	case NeedRest:
		return n.Rest
	case NeedHygiene:
		return n.Hygiene
	case NeedFun:
		return n.Fun
	default:
		return n.Social
	}
}

// CriticalNeed returns the first need below the critical threshold in
// fixed priority order, or (0, false) if all needs are fine.
func (n Needs) CriticalNeed() (NeedKind, bool) {
	order := []NeedKind{NeedHunger, NeedRest, NeedHygiene, NeedFun, NeedSocial}
	for _, k := range order {
		if n.Get(k) < CriticalNeedThreshold {
			return k, true
		}
	}
	return 0, false
}

// NeedsDelta is a named per-field adjustment applied by activities.
type NeedsDelta struct {
	Hunger  float64
	Rest    float64
	Hygiene float64
	Fun     float64
	Social  float64
}

// Apply adds the delta to each field and clamps.
func (n Needs) Apply(d NeedsDelta) Needs {
	return Needs{
		Hunger:  clampNeed(n.Hunger + d.Hunger),
		Rest:    clampNeed(n.Rest + d.Rest),
		Hygiene: clampNeed(n.Hygiene + d.Hygiene),
		Fun:     clampNeed(n.Fun + d.Fun),
		Social:  clampNeed(n.Social + d.Social),
	}
}

func clampNeed(v float64) float64 {
	if v < MinNeed {
		return MinNeed
	}
	if v > MaxNeed {
		return MaxNeed
	}
	return v
}

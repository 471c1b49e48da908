package game

import "time"

// Activity is a home action. The closed set of kinds means every
// switch below is exhaustive; there is no unknown-activity path.
type Activity int

const (
	ActivitySleep Activity = iota
	ActivityShower
	ActivityCook
	ActivityWatchTV
	ActivityCoffee
	ActivitySocial
)

// Activities lists every activity in menu order.
var Activities = []Activity{
	ActivitySleep, ActivityShower, ActivityCook,
	ActivityWatchTV, ActivityCoffee, ActivitySocial,
}

func (a Activity) String() string {
	switch a {
	case ActivitySleep:
		return "Sleep"
	case ActivityShower:
		return "Shower"
	case ActivityCook:
		return "Cook"
	case ActivityWatchTV:
		return "Watch TV"
	case ActivityCoffee:
		return "Espresso Shot"
	default:
		return "Social Media"
	}
}

// Icon returns the activity's menu emoji.
func (a Activity) Icon() string {
	switch a {
	case ActivitySleep:
		return "🛏️"
	case ActivityShower:
		return "🚿"
	case ActivityCook:
		return "🍳"
	case ActivityWatchTV:
		return "📺"
	case ActivityCoffee:
		return "☕"
	default:
		return "📱"
	}
}

// Cost is the money charged when the activity completes.
func (a Activity) Cost() int {
	switch a {
	case ActivityCook:
		return 10
	case ActivityCoffee:
		return 15
	default:
		return 0
	}
}

// Duration is the real-time length of the activity, owned by the
// scheduler. Game-time advances are applied separately on completion.
func (a Activity) Duration() time.Duration {
	switch a {
	case ActivitySleep:
		return 8 * time.Second // 8 seconds = 8 game hours
	case ActivityShower:
		return 2 * time.Second
	case ActivityCook:
		return 3 * time.Second
	case ActivityWatchTV:
		return 4 * time.Second
	case ActivityCoffee:
		return time.Second
	default:
		return 3 * time.Second
	}
}

// clockAdvances is how many game hours pass when the activity finishes.
func (a Activity) clockAdvances() int {
	switch a {
	case ActivitySleep:
		return 8
	case ActivityWatchTV:
		return 2
	case ActivityCook, ActivitySocial:
		return 1
	default:
		return 0
	}
}

// Available reports whether the activity can be started right now, and
// the precondition error when it cannot.
func (a Activity) Available(s State) error {
	switch a {
	case ActivitySleep:
		if s.Clock.Hour < ClosingHour && s.Clock.Hour > 6 {
			return ErrNotSleepyTime
		}
	case ActivityShower:
		if s.Needs.Hygiene >= 90 {
			return ErrNeedSatisfied
		}
	case ActivityCook:
		if s.Money < a.Cost() {
			return ErrInsufficientFunds
		}
		if s.Needs.Hunger >= 85 {
			return ErrNeedSatisfied
		}
	case ActivityWatchTV:
		if s.Needs.Fun >= 80 {
			return ErrNeedSatisfied
		}
	case ActivityCoffee:
		if s.Money < a.Cost() {
			return ErrInsufficientFunds
		}
		if s.Character.Energy >= 80 {
			return ErrNeedSatisfied
		}
	case ActivitySocial:
		if s.Needs.Social >= 80 {
			return ErrNeedSatisfied
		}
	}
	return nil
}

// applyEffect applies the activity's fixed bundle of deltas to the
// state. Paid activities recheck funds here: if money ran out while the
// activity was in progress, nothing is applied.
func (a Activity) applyEffect(s State) (State, error) {
	if cost := a.Cost(); cost > 0 && s.Money < cost {
		return s, ErrInsufficientFunds
	}

	switch a {
	case ActivitySleep:
		s.Needs = s.Needs.Apply(NeedsDelta{Rest: 80, Hunger: -15})
		s.Character = s.Character.ApplyEnergyDelta(50)
	case ActivityShower:
		s.Needs = s.Needs.Apply(NeedsDelta{Hygiene: 70})
		s.Character = s.Character.ApplyEnergyDelta(15)
	case ActivityCook:
		s.Needs = s.Needs.Apply(NeedsDelta{Hunger: 80, Fun: 20})
		s.Money -= 10
	case ActivityWatchTV:
		s.Needs = s.Needs.Apply(NeedsDelta{Fun: 50, Social: 10})
		s.Character = s.Character.ApplyEnergyDelta(25)
	case ActivityCoffee:
		s.Character = s.Character.ApplyEnergyDelta(45)
		s.Money -= 15
	case ActivitySocial:
		s.Needs = s.Needs.Apply(NeedsDelta{Social: 60, Fun: 30})
	}
	s.Clock = s.Clock.AdvanceBy(a.clockAdvances())
	return s, nil
}

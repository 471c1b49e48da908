package game

// Event is something worth surfacing to the player. Mutations return
// the events they produced; formatting is left to the presentation
// layer.
type Event interface {
	event()
}

// CustomerServed reports a completed order and its payout breakdown.
type CustomerServed struct {
	Customer Customer
	Payment  int
	Tip      int
	Xp       int
}

// CustomerWalkedAway reports a customer whose patience ran out and the
// penalty charged.
type CustomerWalkedAway struct {
	Customer Customer
	Penalty  int
}

// LeveledUp reports a level gain.
type LeveledUp struct {
	Level int
}

// HourAdvanced reports a clock boundary crossing.
type HourAdvanced struct {
	Hour int
	Day  int
}

// CriticalNeed reports a need that dropped below the alert threshold.
type CriticalNeed struct {
	Need NeedKind
}

// ActivityFinished reports a completed (or funds-rejected) activity.
type ActivityFinished struct {
	Activity Activity
	Skipped  bool // True when the funds recheck failed at completion
}

func (CustomerServed) event()     {}
func (CustomerWalkedAway) event() {}
func (LeveledUp) event()          {}
func (HourAdvanced) event()       {}
func (CriticalNeed) event()       {}
func (ActivityFinished) event()   {}

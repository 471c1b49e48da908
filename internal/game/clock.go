package game

// GameClock tracks the in-game hour and day. The hour stays in [0,23];
// wrapping past closing time skips the night and starts the next day at
// opening time.
type GameClock struct {
	Hour int
	Day  int
}

// NewGameClock returns the clock at game start: 8 AM on day 1.
func NewGameClock() GameClock {
	return GameClock{Hour: StartingHour, Day: 1}
}

// Advance moves the clock forward one hour. 10 PM wraps to 8 AM of the
// next day.
func (c GameClock) Advance() GameClock {
	if c.Hour >= ClosingHour {
		return GameClock{Hour: StartingHour, Day: c.Day + 1}
	}
	return GameClock{Hour: c.Hour + 1, Day: c.Day}
}

// AdvanceBy applies Advance n times.
func (c GameClock) AdvanceBy(n int) GameClock {
	for i := 0; i < n; i++ {
		c = c.Advance()
	}
	return c
}

// IsBusinessOpen reports whether customers are being seated (8 AM to 8 PM).
func (c GameClock) IsBusinessOpen() bool {
	return c.Hour >= OpeningHour && c.Hour <= LastOpenHour
}

// DayPhaseIcon returns the icon shown next to the clock.
func (c GameClock) DayPhaseIcon() string {
	switch {
	case c.Hour < 6:
		return "🌙"
	case c.Hour < 12:
		return "🌅"
	case c.Hour < 18:
		return "☀️"
	default:
		return "🌆"
	}
}

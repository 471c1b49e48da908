package game

import "time"

// Game constants
const (
	MaxNeed = 100.0
	MinNeed = 0.0

	CriticalNeedThreshold = 20.0 // Below this a need triggers an alert

	StartingHour  = 8 // Café opens at 8 AM
	ClosingHour   = 22
	OpeningHour   = 8
	LastOpenHour  = 20 // Customers arrive from 8 AM to 8 PM
	StartingMoney = 100
	StartingLevel = 1

	CafeCapacity = 3 // Maximum simultaneous customers

	XpPerLevel = 50 // Next level needs level*50 XP

	// Need decay per simulation tick while working at the café
	CafeHungerDecay  = 1.5
	CafeRestDecay    = 1.0
	CafeHygieneDecay = 0.4
	CafeFunDecay     = 0.8
	CafeSocialGain   = 1.0 // Working the counter is social
	CafeEnergyDecay  = 2.5

	// Need decay per simulation tick at home
	HomeHungerDecay  = 0.8
	HomeHygieneDecay = 0.3
	HomeFunDecay     = 0.5
	HomeEnergyDecay  = 0.8

	// Service
	BasePrepTime  = 2 * time.Second // Scaled by efficiency, floored at MinPrepTime
	MinPrepTime   = 500 * time.Millisecond
	MinEfficiency = 0.1

	// Restocking
	RestockCost         = 50
	RestockBasic        = 20
	RestockPremium      = 10
	RestockCakes        = 5
	RestockCookies      = 8
	InitialBasicStock   = 20 // Coffee, milk, sugar
	InitialPremiumStock = 5  // Chocolate, vanilla, cinnamon
	InitialCakeStock    = 3
	InitialCookieStock  = 5

	// Tick periods, owned by the scheduler
	DecayTickPeriod    = 3 * time.Second
	PatienceTickPeriod = 1 * time.Second
	ClockTickPeriod    = 45 * time.Second // 45 seconds = 1 game hour
)

// Character status emojis
const (
	MoodRested    = "😊"
	MoodFine      = "🙂"
	MoodTired     = "😐"
	MoodExhausted = "😫"
)

// Location is where the player currently is; decay rates depend on it.
type Location int

const (
	LocationCafe Location = iota
	LocationHome
)

func (l Location) String() string {
	if l == LocationCafe {
		return "cafe"
	}
	return "home"
}

// SpawnInterval returns how long the scheduler waits before attempting
// the next customer spawn at the given hour.
func SpawnInterval(hour int) time.Duration {
	switch {
	case hour >= 8 && hour <= 10:
		return 12 * time.Second // Quiet morning
	case hour >= 11 && hour <= 13:
		return 6 * time.Second // Lunch rush
	case hour >= 14 && hour <= 16:
		return 10 * time.Second // Moderate afternoon
	case hour >= 17 && hour <= 19:
		return 7 * time.Second // Evening rush
	default:
		return 15 * time.Second // Winding down
	}
}

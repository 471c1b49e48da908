package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mycafe/internal/game"
)

// Model drives the game. The bubbletea loop is the external scheduler:
// its tick messages and key events are the only things that mutate the
// game state, one at a time.
type Model struct {
	State game.State

	Choice         int // Menu cursor (customer slot or activity)
	Quitting       bool
	Message        string
	MessageExpires time.Time

	Preparing   bool
	PrepStarted time.Time
}

type decayTickMsg time.Time
type patienceTickMsg time.Time
type clockTickMsg time.Time
type spawnTickMsg time.Time
type stepDoneMsg struct {
	started time.Time
}
type activityDoneMsg struct {
	started time.Time
}

// NewModel creates the game at its initial state.
func NewModel() Model {
	return Model{State: game.NewState()}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		decayTick(),
		patienceTick(),
		clockTick(),
		spawnTick(m.State.Clock.Hour),
	)
}

func decayTick() tea.Cmd {
	return tea.Tick(game.DecayTickPeriod, func(t time.Time) tea.Msg {
		return decayTickMsg(t)
	})
}

func patienceTick() tea.Cmd {
	return tea.Tick(game.PatienceTickPeriod, func(t time.Time) tea.Msg {
		return patienceTickMsg(t)
	})
}

func clockTick() tea.Cmd {
	return tea.Tick(game.ClockTickPeriod, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func spawnTick(hour int) tea.Cmd {
	return tea.Tick(game.SpawnInterval(hour), func(t time.Time) tea.Msg {
		return spawnTickMsg(t)
	})
}

func stepTimer(d time.Duration, started time.Time) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return stepDoneMsg{started: started}
	})
}

func activityTimer(a game.Activity, started time.Time) tea.Cmd {
	return tea.Tick(a.Duration(), func(time.Time) tea.Msg {
		return activityDoneMsg{started: started}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case decayTickMsg:
		var events []game.Event
		m.State, events = m.State.Tick(1)
		m.showEvents(events)
		return m, decayTick()

	case patienceTickMsg:
		var events []game.Event
		m.State, events = m.State.TickPatience(1)
		m.showEvents(events)
		m.clampChoice()
		return m, patienceTick()

	case clockTickMsg:
		var events []game.Event
		m.State, events = m.State.AdvanceHour()
		m.showEvents(events)
		return m, clockTick()

	case spawnTickMsg:
		if m.State.Location == game.LocationCafe && m.State.Clock.IsBusinessOpen() {
			if next, err := m.State.SpawnCustomer(); err == nil {
				m.State = next
			}
		}
		return m, spawnTick(m.State.Clock.Hour)

	case stepDoneMsg:
		// Drop timers from a step that was cancelled or superseded
		if !m.Preparing || !m.PrepStarted.Equal(msg.started) {
			return m, nil
		}
		m.Preparing = false
		next, events, err := m.State.CompleteStep()
		if err != nil {
			m.setMessage(failureMessage(err))
			return m, nil
		}
		m.State = next
		m.showEvents(events)
		m.clampChoice()
		return m, nil

	case activityDoneMsg:
		if m.State.Running == nil || !m.State.Running.StartedAt.Equal(msg.started) {
			return m, nil
		}
		next, events, err := m.State.FinishActivity()
		if err != nil {
			return m, nil
		}
		m.State = next
		m.showEvents(events)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.Quitting = true
		return m, tea.Quit

	case "tab":
		target := game.LocationHome
		if m.State.Location == game.LocationHome {
			target = game.LocationCafe
		}
		next, err := m.State.GoTo(target)
		if err != nil {
			m.setMessage(failureMessage(err))
			return m, nil
		}
		m.State = next
		m.Choice = 0
		return m, nil

	case "r":
		m.State = game.NewState()
		m.Choice = 0
		m.Preparing = false
		m.setMessage("🎮 New game started!")
		return m, nil

	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
		return m, nil

	case "down", "j":
		if m.Choice < m.menuSize()-1 {
			m.Choice++
		}
		return m, nil

	case "esc":
		if m.State.Running != nil {
			next, err := m.State.AbandonActivity()
			if err == nil {
				m.State = next
				m.setMessage("🚪 Activity abandoned")
			}
		}
		return m, nil

	case "b":
		if m.State.Location == game.LocationCafe {
			next, err := m.State.Restock()
			if err != nil {
				m.setMessage(failureMessage(err))
				return m, nil
			}
			m.State = next
			m.setMessage(fmt.Sprintf("📦 Restocked! (-$%d)", game.RestockCost))
		}
		return m, nil

	case "enter", " ":
		return m.confirm()
	}

	return m, nil
}

func (m Model) confirm() (tea.Model, tea.Cmd) {
	if m.State.Location == game.LocationHome {
		if m.State.Running != nil {
			return m, nil
		}
		a := game.Activities[m.Choice]
		next, err := m.State.StartActivity(a)
		if err != nil {
			m.setMessage(failureMessage(err))
			return m, nil
		}
		m.State = next
		m.setMessage(fmt.Sprintf("%s %s...", a.Icon(), a))
		return m, activityTimer(a, m.State.Running.StartedAt)
	}

	// Café: the first confirm selects the customer under the cursor,
	// each following confirm prepares one step.
	if m.Preparing || m.Choice >= len(m.State.Customers) {
		return m, nil
	}
	cust := m.State.Customers[m.Choice]
	if m.State.Selected != cust.ID {
		next, err := m.State.SelectCustomer(cust.ID)
		if err != nil {
			m.setMessage(failureMessage(err))
			return m, nil
		}
		m.State = next
		return m, nil
	}
	if cust.IsComplete() {
		return m, nil
	}
	if !m.State.Inventory.HasStockFor(cust.Steps[cust.CurrentStep]) {
		m.setMessage(failureMessage(game.ErrInsufficientStock))
		return m, nil
	}

	m.Preparing = true
	m.PrepStarted = game.TimeNow()
	eff := game.Efficiency(m.State.Character, m.State.Needs)
	return m, stepTimer(game.PrepDuration(eff), m.PrepStarted)
}

func (m Model) menuSize() int {
	if m.State.Location == game.LocationHome {
		return len(game.Activities)
	}
	if len(m.State.Customers) == 0 {
		return 1
	}
	return len(m.State.Customers)
}

func (m *Model) clampChoice() {
	if max := m.menuSize() - 1; m.Choice > max {
		m.Choice = max
	}
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = game.TimeNow().Add(4 * time.Second)
}

func (m *Model) showEvents(events []game.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case game.CustomerServed:
			total := ev.Payment + ev.Tip
			switch {
			case ev.Tip > 0:
				m.setMessage(fmt.Sprintf("🎉 +$%d (+$%d tip!)", total, ev.Tip))
			case ev.Customer.Category == game.CategoryVIP:
				m.setMessage(fmt.Sprintf("👑 VIP customer satisfied: +$%d", total))
			default:
				m.setMessage(fmt.Sprintf("✅ Happy customer: +$%d", total))
			}
		case game.CustomerWalkedAway:
			m.setMessage(fmt.Sprintf("😤 Customer %s left angry (-$%d)", ev.Customer.Icon, ev.Penalty))
		case game.LeveledUp:
			m.setMessage(fmt.Sprintf("⭐ Level %d!", ev.Level))
		case game.CriticalNeed:
			// Don't stomp a fresh message with a repeating alert
			if m.Message == "" || game.TimeNow().After(m.MessageExpires) {
				m.setMessage(criticalMessage(ev.Need))
			}
		case game.HourAdvanced:
			if msg := hourMessage(ev.Hour); msg != "" {
				m.setMessage(msg)
			}
		case game.ActivityFinished:
			if ev.Skipped {
				m.setMessage("💰 Not enough money anymore!")
			} else {
				m.setMessage(activityMessage(ev.Activity))
			}
		}
	}
}

func failureMessage(err error) string {
	switch err {
	case game.ErrInsufficientFunds:
		return "💰 Not enough money"
	case game.ErrInsufficientStock:
		return "⚠️ Out of ingredients! Restock with [b]"
	case game.ErrNeedSatisfied:
		return "✨ You don't need that right now"
	case game.ErrNotSleepyTime:
		return "☀️ Too early to sleep (10 PM - 6 AM)"
	case game.ErrActivityRunning:
		return "⏳ Finish your current activity first"
	case game.ErrCafeClosed:
		return "🌙 The café is closed"
	default:
		return "❌ " + err.Error()
	}
}

func criticalMessage(k game.NeedKind) string {
	switch k {
	case game.NeedHunger:
		return "🚨 You're starving!"
	case game.NeedRest:
		return "🚨 You need to sleep!"
	case game.NeedHygiene:
		return "🚨 You need a shower!"
	case game.NeedFun:
		return "🚨 You need some fun!"
	default:
		return "🚨 You need to socialize!"
	}
}

func hourMessage(hour int) string {
	switch hour {
	case 8:
		return "🌅 Good morning! The café opens its doors"
	case 12:
		return "🍽️ Lunch time - hungry customers incoming!"
	case 15:
		return "☕ Afternoon coffee hour"
	case 20:
		return "🌆 Last hours of the day at the café"
	case 22:
		return "🌙 The café is closing. Go home and rest!"
	case 0:
		return "💤 It's very late, you should sleep"
	default:
		return ""
	}
}

func activityMessage(a game.Activity) string {
	switch a {
	case game.ActivitySleep:
		return "😴 You slept great! You feel renewed"
	case game.ActivityShower:
		return "🚿 So fresh! You feel clean"
	case game.ActivityCook:
		return "🍳 Delicious! You cooked your favorite meal"
	case game.ActivityWatchTV:
		return "📺 You watched your favorite show"
	case game.ActivityCoffee:
		return "☕ Instant energy! That hit the spot"
	default:
		return "📱 You caught up with your friends"
	}
}

package game

import (
	"log"
	"math/rand"
	"time"
)

// Testable time and random functions
var (
	TimeNow  = func() time.Time { return time.Now() }
	RandIntn = rand.Intn
)

// ActivityRun is an in-progress home activity.
type ActivityRun struct {
	Activity  Activity
	StartedAt time.Time
}

// State is the whole simulation state. Every mutation takes a value and
// returns a new value; the scheduler (the UI loop) is the only writer,
// so snapshots are never mutated concurrently.
type State struct {
	Clock     GameClock
	Needs     Needs
	Character Character
	Inventory Inventory
	Customers []Customer

	Money       int
	Level       int
	Experience  int
	ServedCount int

	Location Location
	Selected int          // ID of the selected customer, 0 when none
	Running  *ActivityRun // Current home activity, nil when idle
}

// NewState returns the documented initial state: 8 AM on day 1, all
// needs full, 100 money, level 1, opening stock, empty queue.
func NewState() State {
	return State{
		Clock:     NewGameClock(),
		Needs:     NewNeeds(),
		Character: NewCharacter(),
		Inventory: NewInventory(),
		Money:     StartingMoney,
		Level:     StartingLevel,
		Location:  LocationCafe,
	}
}

// RequiredXp is the experience needed to reach the next level.
func (s State) RequiredXp() int {
	return s.Level * XpPerLevel
}

// SelectedCustomer returns the currently selected customer, if any.
func (s State) SelectedCustomer() (Customer, bool) {
	if s.Selected == 0 {
		return Customer{}, false
	}
	for _, c := range s.Customers {
		if c.ID == s.Selected {
			return c, true
		}
	}
	return Customer{}, false
}

// Tick applies elapsedTicks worth of need and energy decay for the
// current location, then evaluates the critical alert on the resulting
// snapshot.
func (s State) Tick(elapsedTicks int) (State, []Event) {
	s.Needs = s.Needs.Decay(s.Location, elapsedTicks)
	drain := HomeEnergyDecay
	if s.Location == LocationCafe {
		drain = CafeEnergyDecay
	}
	s.Character = s.Character.ApplyEnergyDelta(-drain * float64(elapsedTicks))

	var events []Event
	if k, ok := s.Needs.CriticalNeed(); ok {
		events = append(events, CriticalNeed{Need: k})
	}
	return s, events
}

// AdvanceHour moves the clock forward one hour.
func (s State) AdvanceHour() (State, []Event) {
	s.Clock = s.Clock.Advance()
	return s, []Event{HourAdvanced{Hour: s.Clock.Hour, Day: s.Clock.Day}}
}

// SpawnCustomer appends one factory-created customer when the café has
// a free table. The scheduler decides when to call this; the capacity
// check makes over-spawning a no-op.
func (s State) SpawnCustomer() (State, error) {
	if len(s.Customers) >= CafeCapacity {
		return s, ErrCafeFull
	}
	c := NewRandomCustomer(NextCustomerID(s.Customers))
	s.Customers = append(append([]Customer(nil), s.Customers...), c)
	log.Printf("Customer %d arrived: %s %s (%s, $%d)", c.ID, c.Icon, c.OrderName, c.Category, c.Price)
	return s, nil
}

// TickPatience decays every customer's patience and removes those who
// ran out, charging the category penalty for each.
func (s State) TickPatience(elapsedTicks int) (State, []Event) {
	remaining, walkedAway := tickPatience(s.Customers, elapsedTicks)
	s.Customers = remaining

	var events []Event
	for _, c := range walkedAway {
		penalty := c.Category.WalkAwayPenalty()
		s.Money = maxInt(s.Money-penalty, 0)
		if s.Selected == c.ID {
			s.Selected = 0
		}
		events = append(events, CustomerWalkedAway{Customer: c, Penalty: penalty})
		log.Printf("Customer %d walked away (-$%d)", c.ID, penalty)
	}
	return s, events
}

// SelectCustomer picks the customer whose order is being worked on.
// The first selection starts the service timer used by the tip rule.
func (s State) SelectCustomer(id int) (State, error) {
	for i, c := range s.Customers {
		if c.ID != id {
			continue
		}
		if c.ServedSince.IsZero() {
			customers := append([]Customer(nil), s.Customers...)
			customers[i].ServedSince = TimeNow()
			s.Customers = customers
		}
		s.Selected = id
		return s, nil
	}
	return s, ErrCustomerNotFound
}

// CompleteStep finishes the selected customer's current preparation
// step. The step is rejected if its ingredient is out of stock. When
// the last step completes, the order is settled: payment and tip are
// collected, experience applied, ingredients consumed and the customer
// leaves.
func (s State) CompleteStep() (State, []Event, error) {
	cust, ok := s.SelectedCustomer()
	if !ok {
		return s, nil, ErrNoCustomerSelected
	}
	if cust.IsComplete() {
		return s, nil, ErrOrderComplete
	}
	if !s.Inventory.HasStockFor(cust.Steps[cust.CurrentStep]) {
		return s, nil, ErrInsufficientStock
	}

	cust = cust.AdvanceStep()
	if !cust.IsComplete() {
		s.Customers = replaceCustomer(s.Customers, cust)
		return s, nil, nil
	}

	serviceTime := TimeNow().Sub(cust.ServedSince)
	payment, tip, xp, inv := ResolveService(cust, s.Inventory, serviceTime)
	s.Inventory = inv

	events := []Event{CustomerServed{Customer: cust, Payment: payment, Tip: tip, Xp: xp}}
	var leveled bool
	s, leveled = s.applyServiceResult(payment, tip, xp)
	if leveled {
		events = append(events, LeveledUp{Level: s.Level})
	}

	s.Customers = removeCustomer(s.Customers, cust.ID)
	s.Selected = 0
	log.Printf("Served customer %d: +$%d (tip $%d), +%d xp", cust.ID, payment+tip, tip, xp)
	return s, events, nil
}

// applyServiceResult credits a completed order and applies the level-up
// rule once: reaching level*50 XP consumes exactly that much and bumps
// the level.
func (s State) applyServiceResult(payment, tip, xp int) (State, bool) {
	s.Money += payment + tip
	s.Experience += xp
	s.ServedCount++
	if s.Experience >= s.RequiredXp() {
		s.Experience -= s.RequiredXp()
		s.Level++
		return s, true
	}
	return s, false
}

// Restock buys the fixed resupply bundle.
func (s State) Restock() (State, error) {
	if s.Money < RestockCost {
		return s, ErrInsufficientFunds
	}
	s.Money -= RestockCost
	s.Inventory = s.Inventory.Restock()
	log.Printf("Restocked inventory (-$%d)", RestockCost)
	return s, nil
}

// GoTo moves the player between the café and home. The café is only
// reachable during business hours.
func (s State) GoTo(loc Location) (State, error) {
	if loc == LocationCafe && !s.Clock.IsBusinessOpen() {
		return s, ErrCafeClosed
	}
	s.Location = loc
	return s, nil
}

// StartActivity begins a home activity after checking its availability.
func (s State) StartActivity(a Activity) (State, error) {
	if s.Running != nil {
		return s, ErrActivityRunning
	}
	if err := a.Available(s); err != nil {
		return s, err
	}
	s.Running = &ActivityRun{Activity: a, StartedAt: TimeNow()}
	log.Printf("Started activity: %s", a)
	return s, nil
}

// FinishActivity applies the running activity's effect bundle. If the
// funds precondition no longer holds, the effect is skipped entirely
// and reported as such; there is no partial application.
func (s State) FinishActivity() (State, []Event, error) {
	if s.Running == nil {
		return s, nil, ErrNoActivityRunning
	}
	a := s.Running.Activity
	s.Running = nil

	next, err := a.applyEffect(s)
	if err != nil {
		return s, []Event{ActivityFinished{Activity: a, Skipped: true}}, nil
	}
	log.Printf("Finished activity: %s", a)
	return next, []Event{ActivityFinished{Activity: a}}, nil
}

// AbandonActivity cancels the running activity, discarding all pending
// effects.
func (s State) AbandonActivity() (State, error) {
	if s.Running == nil {
		return s, ErrNoActivityRunning
	}
	log.Printf("Abandoned activity: %s", s.Running.Activity)
	s.Running = nil
	return s, nil
}

func replaceCustomer(customers []Customer, c Customer) []Customer {
	out := append([]Customer(nil), customers...)
	for i := range out {
		if out[i].ID == c.ID {
			out[i] = c
		}
	}
	return out
}

func removeCustomer(customers []Customer, id int) []Customer {
	var out []Customer
	for _, c := range customers {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

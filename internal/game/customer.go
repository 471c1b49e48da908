package game

import (
	"math"
	"time"
)

// Category classifies a customer. It fixes the price multiplier,
// patience decay, walk-away penalty, tip rule and experience reward at
// creation time.
type Category int

const (
	CategoryRegular Category = iota
	CategoryImpatient
	CategoryGenerous
	CategoryVIP
)

func (c Category) String() string {
	switch c {
	case CategoryImpatient:
		return "Impatient"
	case CategoryGenerous:
		return "Generous"
	case CategoryVIP:
		return "VIP"
	default:
		return "Regular"
	}
}

// PriceMultiplier is applied exactly once, when the customer is created.
func (c Category) PriceMultiplier() float64 {
	switch c {
	case CategoryImpatient:
		return 1.3
	case CategoryGenerous:
		return 1.1
	case CategoryVIP:
		return 1.5
	default:
		return 1.0
	}
}

// PatienceDecay is the patience lost per patience tick.
func (c Category) PatienceDecay() float64 {
	switch c {
	case CategoryImpatient:
		return 2.2
	case CategoryGenerous:
		return 0.9
	case CategoryVIP:
		return 0.6
	default:
		return 1.2
	}
}

// WalkAwayPenalty is the money lost when patience runs out.
func (c Category) WalkAwayPenalty() int {
	switch c {
	case CategoryImpatient:
		return 12
	case CategoryGenerous:
		return 8
	case CategoryVIP:
		return 20
	default:
		return 6
	}
}

// ExperienceGain is the XP awarded for completing the order.
func (c Category) ExperienceGain() int {
	switch c {
	case CategoryImpatient:
		return 10
	case CategoryGenerous:
		return 8
	case CategoryVIP:
		return 15
	default:
		return 5
	}
}

// Tip returns the tip for a completed order of the given price, based
// on how quickly it was served. Only Generous and VIP customers tip.
func (c Category) Tip(price int, serviceTime time.Duration) int {
	switch c {
	case CategoryGenerous:
		if serviceTime < 3*time.Second {
			return price / 2
		}
	case CategoryVIP:
		if serviceTime < 5*time.Second {
			return price / 3
		}
	}
	return 0
}

// Customer is one queued patron with an order in progress.
type Customer struct {
	ID          int
	OrderName   string
	Icon        string
	Steps       []string
	CurrentStep int
	Patience    float64
	Price       int
	Category    Category
	ServedSince time.Time // Set when the customer is first selected
}

// IsComplete reports whether every preparation step is done.
func (c Customer) IsComplete() bool {
	return c.CurrentStep >= len(c.Steps)
}

// AdvanceStep marks the current step done. Callers must check
// IsComplete and stock availability first.
func (c Customer) AdvanceStep() Customer {
	c.CurrentStep++
	return c
}

type orderTemplate struct {
	name      string
	icon      string
	steps     []string
	basePrice int
}

var orderCatalog = []orderTemplate{
	// Basic drinks
	{"Espresso", "🙋‍♂️", []string{"☕"}, 8},
	{"Coffee with Milk", "🙋‍♀️", []string{"☕", "🥛"}, 12},
	{"Cappuccino", "👨‍💼", []string{"☕", "🥛", "🫧"}, 18},
	{"Tea", "👩‍🎓", []string{"🫖"}, 6},
	{"Hot Chocolate", "🧒", []string{"🍫", "🥛"}, 14},

	// Desserts
	{"Cupcake", "👩‍🍳", []string{"🧁", "🎂"}, 20},
	{"Cookies", "👨‍🌾", []string{"🍪"}, 10},
	{"Chocolate Cake", "💼", []string{"🍫", "🎂", "🍰"}, 35},
	{"Donut", "🎯", []string{"🍩"}, 12},

	// Combos
	{"Full Breakfast", "🌅", []string{"☕", "🥐", "🧈"}, 25},
	{"Sweet Snack", "🍽️", []string{"🫖", "🧁", "🍪"}, 28},
}

// NewRandomCustomer creates a customer with a random order from the
// catalog and a weighted random category: 70% Regular, 15% Impatient,
// 10% Generous, 5% VIP.
func NewRandomCustomer(id int) Customer {
	tmpl := orderCatalog[RandIntn(len(orderCatalog))]

	var category Category
	switch roll := RandIntn(100) + 1; {
	case roll <= 70:
		category = CategoryRegular
	case roll <= 85:
		category = CategoryImpatient
	case roll <= 95:
		category = CategoryGenerous
	default:
		category = CategoryVIP
	}

	icon := tmpl.icon
	switch category {
	case CategoryImpatient:
		icon = "😤"
	case CategoryGenerous:
		icon = "😊"
	case CategoryVIP:
		icon = "👑"
	}

	steps := make([]string, len(tmpl.steps))
	copy(steps, tmpl.steps)

	return Customer{
		ID:        id,
		OrderName: tmpl.name,
		Icon:      icon,
		Steps:     steps,
		Patience:  MaxNeed,
		Price:     int(math.Round(float64(tmpl.basePrice) * category.PriceMultiplier())),
		Category:  category,
	}
}

// NextCustomerID returns the id for the next spawned customer:
// one past the highest id currently in the queue.
func NextCustomerID(customers []Customer) int {
	maxID := 0
	for _, c := range customers {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}

// tickPatience decays every customer's patience by elapsedTicks worth
// of their category rate, clamped at zero. Customers whose patience ran
// out are removed and returned separately so the caller can charge the
// walk-away penalty.
func tickPatience(customers []Customer, elapsedTicks int) (remaining, walkedAway []Customer) {
	for _, c := range customers {
		p := c.Patience - c.Category.PatienceDecay()*float64(elapsedTicks)
		if p <= 0 {
			c.Patience = 0
			walkedAway = append(walkedAway, c)
			continue
		}
		c.Patience = p
		remaining = append(remaining, c)
	}
	return remaining, walkedAway
}

// ResolveService settles a fully prepared order: the payout, tip and
// experience reward, plus the inventory after consuming one unit per
// matching step. The customer must be complete.
func ResolveService(c Customer, inv Inventory, serviceTime time.Duration) (payment, tip, xp int, newInv Inventory) {
	payment = c.Price
	tip = c.Category.Tip(c.Price, serviceTime)
	xp = c.Category.ExperienceGain()
	newInv = inv.Consume(c.Steps)
	return payment, tip, xp, newInv
}

// PrepDuration returns how long one preparation step takes at the given
// efficiency.
func PrepDuration(efficiency float64) time.Duration {
	d := time.Duration(float64(BasePrepTime) / efficiency)
	if d < MinPrepTime {
		return MinPrepTime
	}
	return d
}

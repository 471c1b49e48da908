package game

import (
	"testing"
	"time"
)

// mockRand feeds RandIntn a fixed sequence of values and restores the
// real source after the test.
func mockRand(t *testing.T, rolls ...int) {
	original := RandIntn
	i := 0
	RandIntn = func(n int) int {
		r := rolls[i%len(rolls)] % n
		i++
		return r
	}
	t.Cleanup(func() { RandIntn = original })
}

func TestNewRandomCustomerVIP(t *testing.T) {
	// Template 6 is Cookies (base price 10); roll 99 -> 100 -> VIP
	mockRand(t, 6, 99)

	c := NewRandomCustomer(1)
	if c.Category != CategoryVIP {
		t.Fatalf("Category = %s, want VIP", c.Category)
	}
	if c.Price != 15 {
		t.Errorf("Price = %d, want round(10*1.5) = 15", c.Price)
	}
	if c.Icon != "👑" {
		t.Errorf("Icon = %s, want 👑 override", c.Icon)
	}
	if c.OrderName != "Cookies" {
		t.Errorf("OrderName = %s, want Cookies", c.OrderName)
	}
	if c.Patience != 100 {
		t.Errorf("Patience = %v, want 100", c.Patience)
	}
	if c.CurrentStep != 0 || c.IsComplete() {
		t.Errorf("new customer should start at step 0 with an incomplete order")
	}
}

func TestCategoryDistributionBoundaries(t *testing.T) {
	tests := []struct {
		roll int // value fed to RandIntn(100); category roll is this+1
		want Category
	}{
		{0, CategoryRegular},
		{69, CategoryRegular},
		{70, CategoryImpatient},
		{84, CategoryImpatient},
		{85, CategoryGenerous},
		{94, CategoryGenerous},
		{95, CategoryVIP},
		{99, CategoryVIP},
	}

	for _, tt := range tests {
		mockRand(t, 0, tt.roll)
		c := NewRandomCustomer(1)
		if c.Category != tt.want {
			t.Errorf("roll %d: Category = %s, want %s", tt.roll+1, c.Category, tt.want)
		}
	}
}

func TestCategoryPriceMultipliers(t *testing.T) {
	tests := []struct {
		roll int
		want int // Espresso base price 8
	}{
		{0, 8},   // Regular x1.0
		{70, 10}, // Impatient x1.3 -> round(10.4)
		{85, 9},  // Generous x1.1 -> round(8.8)
		{95, 12}, // VIP x1.5
	}

	for _, tt := range tests {
		mockRand(t, 0, tt.roll)
		c := NewRandomCustomer(1)
		if c.Price != tt.want {
			t.Errorf("%s: Price = %d, want %d", c.Category, c.Price, tt.want)
		}
	}
}

func TestTipRules(t *testing.T) {
	tests := []struct {
		name        string
		category    Category
		price       int
		serviceTime time.Duration
		want        int
	}{
		{"generous fast service", CategoryGenerous, 20, 2 * time.Second, 10},
		{"generous slow service", CategoryGenerous, 20, 4 * time.Second, 0},
		{"vip fast service", CategoryVIP, 30, 4 * time.Second, 10},
		{"vip slow service", CategoryVIP, 30, 5 * time.Second, 0},
		{"regular never tips", CategoryRegular, 100, time.Millisecond, 0},
		{"impatient never tips", CategoryImpatient, 100, time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.category.Tip(tt.price, tt.serviceTime); got != tt.want {
				t.Errorf("Tip(%d, %v) = %d, want %d", tt.price, tt.serviceTime, got, tt.want)
			}
		})
	}
}

func TestCategoryTables(t *testing.T) {
	tests := []struct {
		category Category
		decay    float64
		penalty  int
		xp       int
	}{
		{CategoryRegular, 1.2, 6, 5},
		{CategoryImpatient, 2.2, 12, 10},
		{CategoryGenerous, 0.9, 8, 8},
		{CategoryVIP, 0.6, 20, 15},
	}

	for _, tt := range tests {
		if got := tt.category.PatienceDecay(); got != tt.decay {
			t.Errorf("%s PatienceDecay = %v, want %v", tt.category, got, tt.decay)
		}
		if got := tt.category.WalkAwayPenalty(); got != tt.penalty {
			t.Errorf("%s WalkAwayPenalty = %d, want %d", tt.category, got, tt.penalty)
		}
		if got := tt.category.ExperienceGain(); got != tt.xp {
			t.Errorf("%s ExperienceGain = %d, want %d", tt.category, got, tt.xp)
		}
	}
}

func TestTickPatienceRemovesAtZero(t *testing.T) {
	customers := []Customer{
		{ID: 1, Category: CategoryRegular, Patience: 1.0}, // 1.0 - 1.2 -> gone
		{ID: 2, Category: CategoryVIP, Patience: 50},      // 50 - 0.6 -> stays
	}

	remaining, walkedAway := tickPatience(customers, 1)

	if len(remaining) != 1 || remaining[0].ID != 2 {
		t.Fatalf("remaining = %v, want only customer 2", remaining)
	}
	if !almostEqual(remaining[0].Patience, 49.4) {
		t.Errorf("remaining patience = %v, want 49.4", remaining[0].Patience)
	}
	if len(walkedAway) != 1 || walkedAway[0].ID != 1 {
		t.Fatalf("walkedAway = %v, want only customer 1", walkedAway)
	}
	if walkedAway[0].Patience != 0 {
		t.Errorf("walked-away patience = %v, want clamped to 0, never negative", walkedAway[0].Patience)
	}
}

func TestTickPatienceSimultaneousExpiry(t *testing.T) {
	customers := []Customer{
		{ID: 1, Category: CategoryImpatient, Patience: 2},
		{ID: 2, Category: CategoryRegular, Patience: 1},
	}

	remaining, walkedAway := tickPatience(customers, 1)
	if len(remaining) != 0 {
		t.Errorf("remaining = %v, want empty", remaining)
	}
	if len(walkedAway) != 2 {
		t.Errorf("walkedAway count = %d, want both reported independently", len(walkedAway))
	}
}

func TestNextCustomerID(t *testing.T) {
	if got := NextCustomerID(nil); got != 1 {
		t.Errorf("NextCustomerID(empty) = %d, want 1", got)
	}
	customers := []Customer{{ID: 3}, {ID: 7}, {ID: 2}}
	if got := NextCustomerID(customers); got != 8 {
		t.Errorf("NextCustomerID = %d, want 8", got)
	}
}

func TestAdvanceStep(t *testing.T) {
	c := Customer{Steps: []string{"☕", "🥛"}}
	c = c.AdvanceStep()
	if c.CurrentStep != 1 || c.IsComplete() {
		t.Fatalf("after one step: CurrentStep = %d, complete = %v", c.CurrentStep, c.IsComplete())
	}
	c = c.AdvanceStep()
	if !c.IsComplete() {
		t.Error("order with all steps done should be complete")
	}
}

func TestResolveServiceConsumesInventory(t *testing.T) {
	c := Customer{
		Steps:       []string{"🍫", "🎂", "🍰"},
		CurrentStep: 3,
		Price:       39, // Chocolate Cake base 35, Generous x1.1
		Category:    CategoryGenerous,
	}
	inv := NewInventory()

	payment, tip, xp, newInv := ResolveService(c, inv, 2*time.Second)
	if payment != 39 {
		t.Errorf("payment = %d, want 39", payment)
	}
	if tip != 19 {
		t.Errorf("tip = %d, want price/2 = 19", tip)
	}
	if xp != 8 {
		t.Errorf("xp = %d, want 8", xp)
	}
	if newInv.Premium != inv.Premium-1 || newInv.Cakes != inv.Cakes-1 {
		t.Errorf("inventory = %+v, want one premium and one cake consumed", newInv)
	}
	if newInv.Basic != inv.Basic || newInv.Cookies != inv.Cookies {
		t.Errorf("inventory = %+v, basic/cookies should be untouched", newInv)
	}
}

func TestPrepDuration(t *testing.T) {
	if got := PrepDuration(1.0); got != 2*time.Second {
		t.Errorf("PrepDuration(1.0) = %v, want 2s", got)
	}
	if got := PrepDuration(0.5); got != 4*time.Second {
		t.Errorf("PrepDuration(0.5) = %v, want 4s", got)
	}
	if got := PrepDuration(100); got != MinPrepTime {
		t.Errorf("PrepDuration(100) = %v, want floor %v", got, MinPrepTime)
	}
}

package game

// Inventory tracks the café's stock. Counters never go below zero.
type Inventory struct {
	Basic   int // Coffee, milk, tea
	Premium int // Chocolate and other premium ingredients
	Cakes   int
	Cookies int
}

// NewInventory returns the opening stock.
func NewInventory() Inventory {
	return Inventory{
		Basic:   InitialBasicStock,
		Premium: InitialPremiumStock,
		Cakes:   InitialCakeStock,
		Cookies: InitialCookieStock,
	}
}

func isBasicStep(step string) bool {
	return step == "☕" || step == "🥛" || step == "🫖"
}

// HasStockFor reports whether the ingredient class behind a single step
// is in stock. Steps with no ingredient cost (foam, garnishes) always
// pass.
func (i Inventory) HasStockFor(step string) bool {
	switch {
	case isBasicStep(step):
		return i.Basic >= 1
	case step == "🍫":
		return i.Premium >= 1
	case step == "🎂":
		return i.Cakes >= 1
	case step == "🍪":
		return i.Cookies >= 1
	default:
		return true
	}
}

// CanPrepare reports whether the whole step sequence could be served
// from current stock. Used by the presentation layer to grey out
// orders that cannot be started.
func (i Inventory) CanPrepare(steps []string) bool {
	for _, s := range steps {
		if !i.HasStockFor(s) {
			return false
		}
	}
	return true
}

// Consume removes one unit per matching step, flooring every counter
// at zero.
func (i Inventory) Consume(steps []string) Inventory {
	for _, s := range steps {
		switch {
		case isBasicStep(s):
			i.Basic--
		case s == "🍫":
			i.Premium--
		case s == "🎂":
			i.Cakes--
		case s == "🍪":
			i.Cookies--
		}
	}
	if i.Basic < 0 {
		i.Basic = 0
	}
	if i.Premium < 0 {
		i.Premium = 0
	}
	if i.Cakes < 0 {
		i.Cakes = 0
	}
	if i.Cookies < 0 {
		i.Cookies = 0
	}
	return i
}

// Restock adds the fixed resupply quantities.
func (i Inventory) Restock() Inventory {
	i.Basic += RestockBasic
	i.Premium += RestockPremium
	i.Cakes += RestockCakes
	i.Cookies += RestockCookies
	return i
}

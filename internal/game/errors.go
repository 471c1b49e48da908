package game

import "errors"

// Precondition errors. A rejected operation leaves the state untouched;
// the presentation layer decides how to surface the reason.
var (
	ErrInsufficientFunds  = errors.New("not enough money")
	ErrInsufficientStock  = errors.New("not enough ingredients")
	ErrNeedSatisfied      = errors.New("that need is already close to full")
	ErrNotSleepyTime      = errors.New("too early to sleep")
	ErrActivityRunning    = errors.New("an activity is already in progress")
	ErrNoActivityRunning  = errors.New("no activity in progress")
	ErrNoCustomerSelected = errors.New("no customer selected")
	ErrCustomerNotFound   = errors.New("customer is no longer here")
	ErrOrderComplete      = errors.New("order is already complete")
	ErrCafeFull           = errors.New("the café is full")
	ErrCafeClosed         = errors.New("the café is closed")
)

// Package command carries the two-phase command protocol shared by all tile
// commands: a flags set selecting dry-run versus execute, a cost accumulator
// and typed validity errors.
package command

import "errors"

// Money is a command cost amount.
type Money int64

// Flags select how a command run behaves.
type Flags uint8

const (
	// Execute performs the mutation; without it commands only validate and
	// price.
	Execute Flags = 1 << iota
	// Auto marks clears issued as a side effect of building something else;
	// structures reject them with a "demolish first" error.
	Auto
	// NoWater forbids clearing plain water.
	NoWater
	// Bankrupt skips vehicle checks while a company is being wound up.
	Bankrupt
	// ForceClearTile clears to bare land instead of restoring water.
	ForceClearTile
)

// Has reports whether all given flags are set.
func (f Flags) Has(q Flags) bool { return f&q == q }

// Error is a typed validity failure with a stable reason code.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return e.Reason }

// Validity errors surfaced by construction commands.
var (
	ErrInvalid            = &Error{"invalid command parameters"}
	ErrMustBeBuiltOnWater = &Error{"must be built on water"}
	ErrMustDemolishBridge = &Error{"must demolish bridge first"}
	ErrSiteUnsuitable     = &Error{"site unsuitable"}
	ErrFlatLandRequired   = &Error{"flat land required"}
	ErrLandSlopedWrongly  = &Error{"land sloped in the wrong direction"}
	ErrAlreadyBuilt       = &Error{"already built"}
	ErrOwnedByAnother     = &Error{"owned by another company"}
	ErrVehicleInTheWay    = &Error{"vehicle in the way"}
	ErrMustBeDemolished   = &Error{"building must be demolished first"}
	ErrCannotBuildOnWater = &Error{"can't build on water"}
	ErrMustDemolishCanal  = &Error{"must demolish canal first"}
	ErrTooCloseToMapEdge  = &Error{"too close to edge of map"}
)

// Cost is the result of a command run: either an accumulated price or a
// typed failure. The zero Cost is a free success.
type Cost struct {
	amount Money
	err    error
}

// NewCost returns a successful cost of the given amount.
func NewCost(amount Money) Cost { return Cost{amount: amount} }

// Fail returns a failed cost.
func Fail(err error) Cost { return Cost{err: err} }

// Failed reports whether the command failed.
func (c Cost) Failed() bool { return c.err != nil }

// Succeeded reports whether the command succeeded.
func (c Cost) Succeeded() bool { return c.err == nil }

// Amount returns the accumulated price.
func (c Cost) Amount() Money { return c.amount }

// Err returns the failure, or nil.
func (c Cost) Err() error { return c.err }

// Add accumulates another cost. Adding a failure turns the whole result
// into that failure.
func (c *Cost) Add(other Cost) {
	if c.err != nil {
		return
	}
	if other.err != nil {
		*c = other
		return
	}
	c.amount += other.amount
}

// AddAmount accumulates a raw price.
func (c *Cost) AddAmount(m Money) {
	if c.err == nil {
		c.amount += m
	}
}

// Is makes command errors comparable with errors.Is.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Reason == other.Reason
	}
	return false
}

package company

// ID identifies a company, or one of the special non-company owners.
type ID uint8

// Special owner values beyond the playable company range.
const (
	MaxCompanies ID = 15

	// Town owns road tiles built by towns.
	Town ID = 0x0f
	// None marks tiles without an owner.
	None ID = 0x10
	// Water is the pseudo-owner used while the flood engine mutates tiles,
	// so cost and ownership side effects attribute to no player.
	Water ID = 0x11
	// Invalid is the sentinel for "no owner at all".
	Invalid ID = 0xff
)

// IsValid reports whether id refers to a playable company.
func (id ID) IsValid() bool { return id < MaxCompanies }

// LockDepotTileFactor is the infrastructure weight of a single lock or ship
// depot tile relative to a plain canal tile.
const LockDepotTileFactor = 2

// Ledger tracks per-company water infrastructure counts. Counters must move
// exactly in step with canal/lock/depot creation and destruction.
type Ledger struct {
	water [MaxCompanies]int
}

// Water returns the water infrastructure count for a company, or zero for
// special owners.
func (l *Ledger) Water(id ID) int {
	if !id.IsValid() {
		return 0
	}
	return l.water[id]
}

// AddWater adjusts the water infrastructure count for a company. Calls for
// special owners are ignored: sea and unowned water carry no chargeable
// infrastructure.
func (l *Ledger) AddWater(id ID, delta int) {
	if !id.IsValid() {
		return
	}
	l.water[id] += delta
}

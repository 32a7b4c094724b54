package shop

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const (
	defaultWalletBalance = 1000
	defaultBankBalance   = 50000

	movementLockDuration  = 3 * time.Second
	vendorAbilityDuration = 26 * time.Second

	eventDiscountMultiplier = 0.5
)

// Config carries everything a new shopping session needs.
type Config struct {
	PlayerName      string
	Age             int
	StartingBalance float64
	BankBalance     float64
	Seed            int64
}

func (c Config) Validate() error {
	if c.PlayerName == "" {
		return fmt.Errorf("player name must not be empty")
	}
	if c.Age < 1 || c.Age > 120 {
		return fmt.Errorf("age must be between 1 and 120, got %d", c.Age)
	}
	if c.StartingBalance < 0 {
		return fmt.Errorf("starting balance must not be negative")
	}
	if c.BankBalance < 0 {
		return fmt.Errorf("bank balance must not be negative")
	}
	return nil
}

// DefaultConfig returns a config with the standard starting funds.
func DefaultConfig(playerName string, age int, seed int64) Config {
	return Config{
		PlayerName:      playerName,
		Age:             age,
		StartingBalance: defaultWalletBalance,
		BankBalance:     defaultBankBalance,
		Seed:            seed,
	}
}

// Action is a single player input fed to the session. The session owns
// all interpretation: the same key means different things depending on
// the active modal.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionInteract
	ActionCancel
	ActionToggleReturn
	ActionToggleWaypoints
	ActionViewInventory
	ActionViewReceipt
)

// ActionResult reports what an action did. Handled is false when the
// action had no meaning in the current state. Message, when non-empty,
// is player-facing feedback.
type ActionResult struct {
	Handled bool
	Message string
}

func handled(msg string) ActionResult { return ActionResult{Handled: true, Message: msg} }
func unhandled() ActionResult         { return ActionResult{} }

// Mode identifies which interaction modal, if any, is active.
type Mode int

const (
	ModeFree Mode = iota
	ModeBrowsing
	ModePickingQuantity
	ModeConfirmingEquipment
	ModeATM
	ModeSearching
	ModePickingReturn
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeBrowsing:
		return "browsing"
	case ModePickingQuantity:
		return "picking-quantity"
	case ModeConfirmingEquipment:
		return "confirming-equipment"
	case ModeATM:
		return "atm"
	case ModeSearching:
		return "searching"
	case ModePickingReturn:
		return "picking-return"
	default:
		return "unknown"
	}
}

// modalContext is the single active modal. Exactly zero or one modal
// exists at a time; every concrete modal type reports its Mode.
type modalContext interface {
	mode() Mode
}

// Waypoint marks a tile highlighted by a kiosk search.
type Waypoint struct {
	Floor Floor
	Row   int
	Col   int
}

// Session is a complete single-shopper run: stock, carried goods,
// wallet, grid position and the interaction state machine. It is not
// safe for concurrent use; drive it from one goroutine.
type Session struct {
	cfg Config

	rng *rand.Rand
	now func() time.Time

	ledger *StockLedger
	bag    *CarriedInventory
	wallet Wallet
	grid   *GridWorld

	floor    Floor
	row, col int
	// facing is the direction of the last movement attempt, used to
	// resolve what Interact targets.
	facingDR, facingDC int

	modal modalContext

	// Movement lock and alcohol override both expire lazily against now().
	lockedUntil   time.Time
	overrideUntil time.Time

	permanentDiscount bool
	eventMultiplier   float64

	waypoints     []Waypoint
	showWaypoints bool

	lastReceipt *Receipt

	finished bool
}

// NewSession builds a fresh session from cfg. The caller should have
// validated cfg; invalid values surface as an error here too.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg: cfg,
		rng: seededRNG(cfg.Seed),
		now: time.Now,
	}
	s.reset()
	return s, nil
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// reset restores the session to its initial state. Stock, funds,
// discounts and position all start over; the RNG keeps its stream so
// restarts within one run stay deterministic.
func (s *Session) reset() {
	s.ledger = NewStockLedger()
	s.bag = NewCarriedInventory(s.ledger)
	s.wallet = Wallet{Balance: s.cfg.StartingBalance, BankBalance: s.cfg.BankBalance}
	s.grid = NewGridWorld()

	s.floor = FloorGround
	s.row, s.col = spawnRow, spawnCol
	s.facingDR, s.facingDC = -1, 0

	s.modal = nil
	s.lockedUntil = time.Time{}
	s.overrideUntil = time.Time{}
	s.permanentDiscount = false
	s.eventMultiplier = 1.0
	s.waypoints = nil
	s.showWaypoints = false
	s.lastReceipt = nil
	s.finished = false
}

// Restart begins a new run with the same config.
func (s *Session) Restart() {
	s.reset()
}

// Accessors used by the display layer and tests.

func (s *Session) PlayerName() string         { return s.cfg.PlayerName }
func (s *Session) Age() int                   { return s.cfg.Age }
func (s *Session) Floor() Floor               { return s.floor }
func (s *Session) Position() (row, col int)   { return s.row, s.col }
func (s *Session) Facing() (dr, dc int)       { return s.facingDR, s.facingDC }
func (s *Session) Wallet() Wallet             { return s.wallet }
func (s *Session) Carried() *CarriedInventory { return s.bag }
func (s *Session) Ledger() *StockLedger       { return s.ledger }
func (s *Session) Grid() *GridWorld           { return s.grid }
func (s *Session) LastReceipt() *Receipt      { return s.lastReceipt }
func (s *Session) Finished() bool             { return s.finished }
func (s *Session) HasPermanentDiscount() bool { return s.permanentDiscount }
func (s *Session) EventMultiplier() float64   { return s.eventMultiplier }

// Mode reports the active interaction mode.
func (s *Session) Mode() Mode {
	if s.modal == nil {
		return ModeFree
	}
	return s.modal.mode()
}

// MovementLocked reports whether the post-vendor movement lock is
// still in force.
func (s *Session) MovementLocked() bool {
	return s.now().Before(s.lockedUntil)
}

// VendorOverrideActive reports whether the timed alcohol allowance is
// still in force.
func (s *Session) VendorOverrideActive() bool {
	return s.now().Before(s.overrideUntil)
}

// WaypointsVisible reports whether waypoint highlighting is on and
// returns the waypoints on the current floor.
func (s *Session) WaypointsVisible() ([]Waypoint, bool) {
	if !s.showWaypoints {
		return nil, false
	}
	return s.floorWaypoints(), true
}

func (s *Session) floorWaypoints() []Waypoint {
	var out []Waypoint
	for _, w := range s.waypoints {
		if w.Floor == s.floor {
			out = append(out, w)
		}
	}
	return out
}

func (s *Session) clearWaypoints() {
	s.waypoints = nil
	s.showWaypoints = false
}

// HandleAction advances the state machine by one player input.
func (s *Session) HandleAction(a Action) ActionResult {
	if s.finished {
		if a == ActionInteract {
			s.Restart()
			return handled("Welcome back, " + s.cfg.PlayerName + "!")
		}
		return unhandled()
	}

	if s.modal != nil {
		return s.handleModalAction(a)
	}

	switch a {
	case ActionMoveUp:
		return s.move(-1, 0)
	case ActionMoveDown:
		return s.move(1, 0)
	case ActionMoveLeft:
		return s.move(0, -1)
	case ActionMoveRight:
		return s.move(0, 1)
	case ActionInteract:
		return s.interact()
	case ActionToggleWaypoints:
		if len(s.waypoints) == 0 {
			return handled("No search results to highlight.")
		}
		s.showWaypoints = !s.showWaypoints
		if s.showWaypoints {
			return handled("Waypoint highlighting on.")
		}
		return handled("Waypoint highlighting off.")
	case ActionViewInventory:
		return handled(s.bag.DisplayString())
	case ActionViewReceipt:
		if s.lastReceipt == nil {
			return handled("No receipt yet.")
		}
		return handled(s.lastReceipt.Text())
	case ActionCancel, ActionToggleReturn:
		return unhandled()
	default:
		return unhandled()
	}
}

// handleModalAction routes an action to whichever modal is active.
func (s *Session) handleModalAction(a Action) ActionResult {
	switch m := s.modal.(type) {
	case *browserState:
		return s.handleBrowser(m, a)
	case *quantityState:
		return s.handleQuantity(m, a)
	case *equipConfirmState:
		return s.handleEquipConfirm(m, a)
	case *atmState:
		return s.handleATM(m, a)
	case *kioskState:
		return s.handleKiosk(m, a)
	default:
		return unhandled()
	}
}

func (s *Session) newReceiptNumber() string {
	return uuid.NewString()
}

package shop

import (
	"errors"
	"fmt"
)

// ATMStage is the screen an ATM session is on.
type ATMStage int

const (
	ATMMenu ATMStage = iota
	ATMBalance
	ATMWithdraw
	ATMSuccess
)

// Menu entries, in cursor order.
const (
	atmChoiceBalance = iota
	atmChoiceWithdraw
	atmChoiceExit
	atmChoiceCount
)

const (
	atmStepSmall = 100
	atmStepLarge = 1000
)

// atmState is the ATM sub-machine. Cancel backs out one screen at a
// time; only cancelling the menu leaves the ATM.
type atmState struct {
	stage     ATMStage
	cursor    int
	amount    float64
	withdrawn float64
	errText   string
}

func (m *atmState) mode() Mode { return ModeATM }

func newATMState() *atmState {
	return &atmState{}
}

// ATMView exposes the ATM screen for display. amount is the pending
// withdrawal entry; withdrawn is the amount shown on the success screen.
func (s *Session) ATMView() (stage ATMStage, cursor int, amount, withdrawn float64, errText string, ok bool) {
	m, isATM := s.modal.(*atmState)
	if !isATM {
		return 0, 0, 0, 0, "", false
	}
	return m.stage, m.cursor, m.amount, m.withdrawn, m.errText, true
}

func (s *Session) handleATM(m *atmState, a Action) ActionResult {
	switch m.stage {
	case ATMMenu:
		return s.handleATMMenu(m, a)
	case ATMBalance:
		switch a {
		case ActionInteract, ActionCancel:
			m.stage = ATMMenu
			return handled("")
		}
	case ATMWithdraw:
		return s.handleATMWithdraw(m, a)
	case ATMSuccess:
		switch a {
		case ActionInteract, ActionCancel:
			m.stage = ATMMenu
			m.withdrawn = 0
			return handled("")
		}
	}
	return unhandled()
}

func (s *Session) handleATMMenu(m *atmState, a Action) ActionResult {
	switch a {
	case ActionMoveUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return handled("")
	case ActionMoveDown:
		if m.cursor < atmChoiceCount-1 {
			m.cursor++
		}
		return handled("")
	case ActionCancel:
		s.modal = nil
		return handled("")
	case ActionInteract:
		switch m.cursor {
		case atmChoiceBalance:
			m.stage = ATMBalance
		case atmChoiceWithdraw:
			m.stage = ATMWithdraw
			m.amount = 0
			m.errText = ""
		case atmChoiceExit:
			s.modal = nil
		}
		return handled("")
	}
	return unhandled()
}

// handleATMWithdraw steps the amount with the arrows (±100 vertical,
// ±1000 horizontal) and commits on Interact.
func (s *Session) handleATMWithdraw(m *atmState, a Action) ActionResult {
	step := func(delta float64) ActionResult {
		m.amount += delta
		if m.amount < 0 {
			m.amount = 0
		}
		if m.amount > s.wallet.BankBalance {
			m.amount = s.wallet.BankBalance
		}
		m.errText = ""
		return handled("")
	}

	switch a {
	case ActionMoveUp:
		return step(atmStepSmall)
	case ActionMoveDown:
		return step(-atmStepSmall)
	case ActionMoveRight:
		return step(atmStepLarge)
	case ActionMoveLeft:
		return step(-atmStepLarge)
	case ActionCancel:
		m.stage = ATMMenu
		return handled("")
	case ActionInteract:
		if err := s.wallet.Withdraw(m.amount); err != nil {
			if errors.Is(err, ErrInsufficientFunds) {
				m.errText = "Insufficient bank balance."
			} else {
				m.errText = "Enter an amount first."
			}
			return handled("")
		}
		m.withdrawn = m.amount
		m.amount = 0
		m.stage = ATMSuccess
		return handled(fmt.Sprintf("Withdrew ₱%.2f. Wallet balance: ₱%.2f.", m.withdrawn, s.wallet.Balance))
	}
	return unhandled()
}

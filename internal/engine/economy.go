package engine

import (
	"fmt"
	"math"

	"github.com/DADGADD/Venus/internal/game"
)

// Economic rule constants (currency units).
const (
	AdsBonus        = 50000
	SalesBonus      = 25000
	LoanPrincipal   = 50000
	LoanTermMonths  = 6
	LoanInstallment = 10000
	VacationLength  = 3
	DocsDamage      = 50000
	BlackPRDamage   = 25000
	RobberyAmount   = 25000
)

// TaxRate computes the tax charged per active turn at the given month.
// The rate is a step function: it grows by the multiplier once every six
// months, truncated to a whole currency amount.
func TaxRate(initialTax int64, multiplier float64, month int) int64 {
	stages := (month - 1) / 6
	return int64(math.Floor(float64(initialTax) * math.Pow(multiplier, float64(stages))))
}

// resolveEconomy closes the books for the player whose turn is ending.
// Vacationing players burn a protected turn instead of paying; active
// players pay the current tax plus any loan installment. A balance at or
// below zero after the deductions bankrupts the player on the spot.
func resolveEconomy(s *game.Session) {
	p := s.CurrentPlayer()
	if p == nil || p.Status == game.StatusBankrupt {
		return
	}

	switch p.Status {
	case game.StatusVacation:
		p.VacationTurns--
		if p.VacationTurns <= 0 {
			p.VacationTurns = 0
			p.Status = game.StatusActive
		}
	case game.StatusActive:
		p.Balance -= TaxRate(s.InitialTax, s.TaxMultiplier, s.Month)
		if p.LoanRepaymentMonths > 0 {
			p.Balance -= LoanInstallment
			p.LoanRepaymentMonths--
		}
	}

	if p.Balance <= 0 {
		p.Balance = 0
		p.Status = game.StatusBankrupt
		s.AppendLog(fmt.Sprintf("%s признана банкротом!", p.Name), game.LogDanger, p.Color)
	}
}

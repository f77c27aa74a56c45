package api

import (
	"time"

	"github.com/DADGADD/Venus/internal/game"
	"github.com/DADGADD/Venus/internal/service"
)

// PlayerSnapshot is the read-only view of one corporation.
type PlayerSnapshot struct {
	PlayerUUID          string          `json:"player_uuid"`
	Seat                int             `json:"seat"`
	Name                string          `json:"name"`
	Balance             int64           `json:"balance"`
	IsAI                bool            `json:"is_ai"`
	Status              string          `json:"status"`
	VacationTurns       int             `json:"vacation_turns"`
	LoanRepaymentMonths int             `json:"loan_repayment_months"`
	Color               string          `json:"color"`
	UsedActions         game.ActionList `json:"used_actions"`
}

// LogSnapshot is one feed entry, newest first.
type LogSnapshot struct {
	Message     string    `json:"message"`
	Severity    string    `json:"severity"`
	PlayerColor string    `json:"player_color,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Snapshot is the full read-only session view the frontend renders from.
type Snapshot struct {
	JoinCode     string           `json:"join_code"`
	Phase        string           `json:"phase"`
	Mode         string           `json:"mode"`
	Month        int              `json:"month"`
	CurrentIndex int              `json:"current_index"`
	TurnSerial   int              `json:"turn_serial"`
	TaxRate      int64            `json:"tax_rate"`
	Winner       string           `json:"winner,omitempty"`
	Message      string           `json:"message"`
	Players      []PlayerSnapshot `json:"players"`
	Logs         []LogSnapshot    `json:"logs"`
}

// BuildSnapshot flattens a session into the wire view, including the tax
// rate for the current month.
func BuildSnapshot(s *game.Session) Snapshot {
	snap := Snapshot{
		JoinCode:     s.JoinCode,
		Phase:        s.Phase,
		Mode:         s.Mode,
		Month:        s.Month,
		CurrentIndex: s.CurrentIndex,
		TurnSerial:   s.TurnSerial,
		TaxRate:      service.CurrentTaxRate(s),
		Winner:       s.Winner,
		Message:      s.Message,
		Players:      make([]PlayerSnapshot, 0, len(s.Players)),
		Logs:         make([]LogSnapshot, 0, len(s.Logs)),
	}
	for i := range s.Players {
		p := &s.Players[i]
		used := p.UsedActions
		if used == nil {
			used = game.ActionList{}
		}
		snap.Players = append(snap.Players, PlayerSnapshot{
			PlayerUUID:          p.PlayerUUID,
			Seat:                p.Seat,
			Name:                p.Name,
			Balance:             p.Balance,
			IsAI:                p.IsAI,
			Status:              p.Status,
			VacationTurns:       p.VacationTurns,
			LoanRepaymentMonths: p.LoanRepaymentMonths,
			Color:               p.Color,
			UsedActions:         used,
		})
	}
	for i := range s.Logs {
		l := &s.Logs[i]
		snap.Logs = append(snap.Logs, LogSnapshot{
			Message:     l.Message,
			Severity:    l.Severity,
			PlayerColor: l.PlayerColor,
			Timestamp:   l.CreatedAt,
		})
	}
	return snap
}

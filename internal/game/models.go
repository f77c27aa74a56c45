package game

import (
	"time"

	"gorm.io/gorm"
)

// Session phases. The lifecycle is linear (menu -> setup -> playing ->
// winner); an explicit reset moves a session back to menu and discards it.
const (
	PhaseMenu    = "menu"
	PhaseSetup   = "setup"
	PhasePlaying = "playing"
	PhaseWinner  = "winner"
)

// Player statuses. Bankrupt is terminal: a bankrupt corporation stays in
// the roster (the scheduler needs it for turn skipping) but never acts.
const (
	StatusActive   = "active"
	StatusVacation = "vacation"
	StatusBankrupt = "bankrupt"
)

// Session modes: solo plays seat 0 as human and fills the remaining seats
// with AI corporations; friends is a hot-seat match of humans only.
const (
	ModeSolo    = "solo"
	ModeFriends = "friends"
)

// Log entry severities as consumed by the frontend feed.
const (
	LogInfo    = "info"
	LogSuccess = "success"
	LogDanger  = "danger"
	LogWarning = "warning"
)

// Player is one corporation in a session. All players are created together
// at session start and are never removed; elimination is expressed through
// the bankrupt status.
type Player struct {
	gorm.Model
	SessionID           uint       `json:"-"`
	PlayerUUID          string     `json:"player_uuid"`
	Seat                int        `json:"seat"`
	Name                string     `json:"name"`
	Balance             int64      `json:"balance"`
	IsAI                bool       `json:"is_ai"`
	Status              string     `json:"status"`
	VacationTurns       int        `json:"vacation_turns"`
	LoanRepaymentMonths int        `json:"loan_repayment_months"`
	Color               string     `json:"color"`
	UsedActions         ActionList `json:"used_actions" gorm:"serializer:json"`
}

// Store per-session participants in a dedicated table for clarity
func (Player) TableName() string { return "session_players" }

// HasUsed reports whether the player already consumed the given action.
func (p *Player) HasUsed(a ActionID) bool {
	for _, u := range p.UsedActions {
		if u == a {
			return true
		}
	}
	return false
}

// UnusedActions returns the player's remaining action ids in canonical order.
func (p *Player) UnusedActions() []ActionID {
	out := make([]ActionID, 0, len(AllActions()))
	for _, a := range AllActions() {
		if !p.HasUsed(a) {
			out = append(out, a)
		}
	}
	return out
}

// LogEntry is one line of the session feed. Entries are kept newest-first
// and capped; the timestamp is the GORM CreatedAt.
type LogEntry struct {
	gorm.Model
	SessionID   uint   `json:"-"`
	Message     string `json:"message"`
	Severity    string `json:"severity"`
	PlayerColor string `json:"player_color,omitempty"`
}

func (LogEntry) TableName() string { return "session_logs" }

// LogCap is the maximum number of feed entries retained per session.
const LogCap = 50

// Session is one running match. The roster order is fixed at creation and
// defines the turn sequence; CurrentIndex points at the acting player.
type Session struct {
	gorm.Model
	JoinCode string `json:"join_code" gorm:"unique"`
	Phase    string `json:"phase"`
	Mode     string `json:"mode"`

	// Immutable economic parameters chosen at setup.
	StartingBalance int64   `json:"starting_balance"`
	InitialTax      int64   `json:"initial_tax"`
	TaxMultiplier   float64 `json:"tax_multiplier"`

	Players      []Player   `json:"players"`
	Logs         []LogEntry `json:"logs"`
	CurrentIndex int        `json:"current_index"`
	Month        int        `json:"month"`

	// TurnSerial increments on every turn-close. Pending auto-advance
	// timers carry the serial they were scheduled for, so a timer that
	// fires after the turn already moved on is detected and dropped.
	TurnSerial int `json:"turn_serial"`

	Winner  string `json:"winner"`
	Message string `json:"message"`

	// AutoAdvanceAt is the deadline at which the background scanner must
	// resolve the current turn without player input (vacation, exhausted
	// actions, AI decision). Nil while a human is expected to act.
	AutoAdvanceAt *time.Time `json:"-"`

	StatsCounted bool `json:"-"`
}

// CurrentPlayer returns the player whose turn it is, or nil outside play.
func (s *Session) CurrentPlayer() *Player {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Players) {
		return nil
	}
	return &s.Players[s.CurrentIndex]
}

// PlayerByUUID looks a player up by its stable id.
func (s *Session) PlayerByUUID(uuid string) *Player {
	for i := range s.Players {
		if s.Players[i].PlayerUUID == uuid {
			return &s.Players[i]
		}
	}
	return nil
}

// NonBankruptCount returns how many corporations are still in the game.
func (s *Session) NonBankruptCount() int {
	n := 0
	for i := range s.Players {
		if s.Players[i].Status != StatusBankrupt {
			n++
		}
	}
	return n
}

// EligibleTargets returns the players an opponent-targeted action may hit:
// currently active corporations other than the actor.
func (s *Session) EligibleTargets(actor *Player) []*Player {
	out := make([]*Player, 0, len(s.Players))
	for i := range s.Players {
		p := &s.Players[i]
		if p.Status == StatusActive && p.PlayerUUID != actor.PlayerUUID {
			out = append(out, p)
		}
	}
	return out
}

// AppendLog prepends a feed entry and trims the feed to LogCap entries.
func (s *Session) AppendLog(message, severity, playerColor string) {
	entry := LogEntry{SessionID: s.ID, Message: message, Severity: severity, PlayerColor: playerColor}
	s.Logs = append([]LogEntry{entry}, s.Logs...)
	if len(s.Logs) > LogCap {
		s.Logs = s.Logs[:LogCap]
	}
}

// CorpProfile stores aggregate results per corporation name across sessions.
type CorpProfile struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex"`
	GamesPlayed int    `json:"games_played"`
	Wins        int    `json:"wins"`
}

func (CorpProfile) TableName() string { return "corporation_profiles" }

package game

// ActionID identifies one of the seven single-use player actions.
// Using a dedicated type instead of plain string makes code safer and
// self-documenting.
type ActionID string

const (
	ActionAds      ActionID = "ads"
	ActionSales    ActionID = "sales"
	ActionLoanFix  ActionID = "loan_fix"
	ActionVacation ActionID = "vacation"
	ActionDocs     ActionID = "docs"
	ActionBlackPR  ActionID = "black_pr"
	ActionRobbery  ActionID = "robbery"
)

var allActions = []ActionID{
	ActionAds, ActionSales, ActionLoanFix, ActionVacation,
	ActionDocs, ActionBlackPR, ActionRobbery,
}

// AllActions returns the full action set in canonical order.
func AllActions() []ActionID { return allActions }

// Valid reports whether the id names a known action.
func (a ActionID) Valid() bool {
	for _, k := range allActions {
		if k == a {
			return true
		}
	}
	return false
}

// OpponentTargeted reports whether the action requires a target player.
func (a ActionID) OpponentTargeted() bool {
	switch a {
	case ActionDocs, ActionBlackPR, ActionRobbery:
		return true
	}
	return false
}

// Title returns the display label used in the session feed.
func (a ActionID) Title() string {
	switch a {
	case ActionAds:
		return "Реклама"
	case ActionSales:
		return "Продажи"
	case ActionLoanFix:
		return "Кредит"
	case ActionVacation:
		return "Отпуск"
	case ActionDocs:
		return "Саботаж"
	case ActionBlackPR:
		return "PR-атака"
	case ActionRobbery:
		return "Ограбление"
	}
	return string(a)
}

// ActionList is a player's consumed action set, persisted as JSON.
type ActionList []ActionID

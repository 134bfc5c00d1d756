package budget

// Expense is one discretionary spend. Item is the matching key for edits and is
// not guaranteed unique. An entry stored without an invested value keeps it
// absent, so it is written back without the key.
type Expense struct {
	Item     string `json:"item"`
	Invested Amount `json:"invested,omitzero"`
}

// Draft is the in-progress expense entry. It is never persisted.
type Draft struct {
	Item     string
	Invested float64 // NaN when the typed text has no leading integer
}

// Field names accepted by Tracker.UpdateExpense.
const (
	FieldItem     = "item"
	FieldInvested = "invested"
)

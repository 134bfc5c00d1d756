package budget

import "github.com/theirongolddev/spendit/internal/kv"

// Persisted keys.
const (
	KeyCash           = "cash"
	KeyMonthlySavings = "monthlySavings"
	KeyExpenses       = "expenses"
)

// Defaults used when a key is missing or cannot be decoded.
const (
	DefaultCash           = 0
	DefaultMonthlySavings = 2000
)

// Repository loads and saves the three persisted budget fields. Loads never fail
// (defaults are substituted) and saves never report errors to the caller.
type Repository interface {
	Cash() Amount
	SaveCash(Amount)
	MonthlySavings() Amount
	SaveMonthlySavings(Amount)
	Expenses() []Expense
	SaveExpenses([]Expense)
}

// KVRepository is a Repository over a kv.Store, one JSON value per field.
type KVRepository struct {
	store kv.Store
}

// NewKVRepository returns a repository reading and writing through s.
func NewKVRepository(s kv.Store) *KVRepository {
	return &KVRepository{store: s}
}

// Cash implements Repository.
func (r *KVRepository) Cash() Amount {
	return kv.Get(r.store, KeyCash, Number(DefaultCash))
}

// SaveCash implements Repository.
func (r *KVRepository) SaveCash(a Amount) {
	kv.Set(r.store, KeyCash, a)
}

// MonthlySavings implements Repository.
func (r *KVRepository) MonthlySavings() Amount {
	return kv.Get(r.store, KeyMonthlySavings, Number(DefaultMonthlySavings))
}

// SaveMonthlySavings implements Repository.
func (r *KVRepository) SaveMonthlySavings(a Amount) {
	kv.Set(r.store, KeyMonthlySavings, a)
}

// Expenses implements Repository.
func (r *KVRepository) Expenses() []Expense {
	expenses := kv.Get(r.store, KeyExpenses, []Expense{})
	if expenses == nil {
		expenses = []Expense{}
	}
	return expenses
}

// SaveExpenses implements Repository.
func (r *KVRepository) SaveExpenses(expenses []Expense) {
	if expenses == nil {
		expenses = []Expense{}
	}
	kv.Set(r.store, KeyExpenses, expenses)
}

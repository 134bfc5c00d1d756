package budget

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/spendit/internal/kv"
)

type brokenStore struct{ kv.Memory }

func (b *brokenStore) Set(string, string) error { return errors.New("quota exceeded") }

func newTracker(t *testing.T, seed map[string]string) (*Tracker, *kv.Memory) {
	t.Helper()
	store := kv.NewMemory(seed)
	return New(NewKVRepository(store)), store
}

func stored(t *testing.T, s kv.Store, key string) string {
	t.Helper()
	v, ok, err := s.Get(key)
	if err != nil || !ok {
		t.Fatalf("stored %q: ok=%v err=%v", key, ok, err)
	}
	return v
}

func TestNewUsesDefaults(t *testing.T) {
	tr, _ := newTracker(t, nil)

	if got := tr.Cash().Float(); got != 0 {
		t.Errorf("cash = %v, want 0", got)
	}
	if got := tr.MonthlySavings().Float(); got != 2000 {
		t.Errorf("monthly savings = %v, want 2000", got)
	}
	if got := len(tr.Expenses()); got != 0 {
		t.Errorf("expenses = %d, want 0", got)
	}
	if d := tr.Draft(); d.Item != "" || d.Invested != 0 {
		t.Errorf("draft = %+v, want zero", d)
	}
}

func TestNewFallsBackOnCorruptState(t *testing.T) {
	tr, _ := newTracker(t, map[string]string{
		KeyCash:           "{oops",
		KeyMonthlySavings: "[1,2",
		KeyExpenses:       `{"item":"rent"}`,
	})

	if got := tr.Cash().Float(); got != 0 {
		t.Errorf("cash = %v, want 0", got)
	}
	if got := tr.MonthlySavings().Float(); got != 2000 {
		t.Errorf("monthly savings = %v, want 2000", got)
	}
	if got := len(tr.Expenses()); got != 0 {
		t.Errorf("expenses = %d, want 0", got)
	}
}

func TestLoadSaveIsByteIdentical(t *testing.T) {
	seed := map[string]string{
		KeyCash:           `"1500"`,
		KeyMonthlySavings: `2000`,
		KeyExpenses: `[{"item":"rent","invested":1500},{"item":"car <used>","invested":"250"},{"item":"nothing","invested":null},` +
			"{\"item\":\"line\u2028break\",\"invested\":1},{\"item\":\"unpriced\"}]",
	}
	store := kv.NewMemory(seed)
	repo := NewKVRepository(store)

	repo.SaveCash(repo.Cash())
	repo.SaveMonthlySavings(repo.MonthlySavings())
	repo.SaveExpenses(repo.Expenses())

	for key, want := range seed {
		if got := stored(t, store, key); got != want {
			t.Errorf("%s round trip = %s, want %s", key, got, want)
		}
	}
}

func TestMissingInvestedStaysAbsent(t *testing.T) {
	tr, store := newTracker(t, map[string]string{
		KeyCash:     "100",
		KeyExpenses: `[{"item":"gift"}]`,
	})

	e := tr.Expenses()[0]
	if !e.Invested.IsZero() || e.Invested.String() != "" {
		t.Fatalf("invested = %+v, want absent", e.Invested)
	}
	if !math.IsNaN(tr.AvailableCash()) {
		t.Fatalf("AvailableCash = %v, want NaN", tr.AvailableCash())
	}
	if _, ok := tr.Balance(); ok {
		t.Fatal("Balance should be blank when an amount is missing")
	}

	if err := tr.UpdateExpense("gift", FieldItem, "present"); err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}
	if got := stored(t, store, KeyExpenses); got != `[{"item":"present"}]` {
		t.Fatalf("persisted = %s, want the invested key left out", got)
	}
}

func TestBalanceWithoutExpenses(t *testing.T) {
	tr, _ := newTracker(t, map[string]string{KeyCash: "5000"})
	if got, ok := tr.Balance(); !ok || got != "$5,000.00" {
		t.Fatalf("Balance for stored number = %q, %v, want $5,000.00", got, ok)
	}

	// Typed text is only coerced once there is something to subtract.
	tr.SetStartingCash("5000")
	if _, ok := tr.Balance(); ok {
		t.Fatal("Balance should be blank for raw cash text with no expenses")
	}
	if got := tr.AvailableCash(); got != 5000 {
		t.Fatalf("AvailableCash = %v, want 5000", got)
	}
	if got := tr.BreakEven(); got != GoodMessage {
		t.Fatalf("BreakEven = %q, want %q", got, GoodMessage)
	}

	tr.SetDraftItem("tv")
	tr.SetDraftInvested("500")
	tr.SpendIt()
	if got, ok := tr.Balance(); !ok || got != "$4,500.00" {
		t.Fatalf("Balance after spending = %q, %v, want $4,500.00", got, ok)
	}
}

func TestAvailableCashTracksEveryMutation(t *testing.T) {
	tr, _ := newTracker(t, nil)

	check := func(want float64) {
		t.Helper()
		var sum float64
		for _, e := range tr.Expenses() {
			sum += e.Invested.Float()
		}
		if got := tr.Cash().Float() - sum; got != want {
			t.Fatalf("cash - sum(invested) = %v, want %v", got, want)
		}
		if tr.AvailableCash() != want {
			t.Fatalf("AvailableCash = %v, want %v", tr.AvailableCash(), want)
		}
	}

	tr.SetStartingCash("5000")
	check(5000)

	tr.SetDraftItem("laptop")
	tr.SetDraftInvested("1200")
	tr.SpendIt()
	check(3800)

	tr.SetDraftItem("desk")
	tr.SetDraftInvested("300")
	tr.SpendIt()
	check(3500)

	if err := tr.UpdateExpense("laptop", FieldInvested, "900"); err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}
	check(3800)

	tr.SetStartingCash("1000")
	check(-200)
}

func TestBreakEvenScenarios(t *testing.T) {
	tr, _ := newTracker(t, map[string]string{KeyCash: "5000"})
	if got := tr.AvailableCash(); got != 5000 {
		t.Fatalf("AvailableCash = %v, want 5000", got)
	}
	if got := tr.BreakEven(); got != GoodMessage {
		t.Fatalf("BreakEven = %q, want %q", got, GoodMessage)
	}

	tr, _ = newTracker(t, map[string]string{
		KeyCash:     "1000",
		KeyExpenses: `[{"item":"rent","invested":1500}]`,
	})
	if got := tr.AvailableCash(); got != -500 {
		t.Fatalf("AvailableCash = %v, want -500", got)
	}
	// The written example for this case reads "about 1 months", but the formula it
	// states is round(|-500 / 2000|) and Math.round(0.25) is 0. The formula wins;
	// see "Break-even for -0.25 months" in DESIGN.md.
	if got := tr.BreakEven(); got != "about 0 months" {
		t.Fatalf("BreakEven = %q, want %q", got, "about 0 months")
	}

	tr.SetMonthlySavings("0")
	if got := tr.BreakEven(); got != "about Infinity months" {
		t.Fatalf("BreakEven with zero savings = %q, want %q", got, "about Infinity months")
	}
}

func TestBreakEven(t *testing.T) {
	cases := []struct {
		available, savings float64
		want               string
	}{
		{5000, 2000, GoodMessage},
		{0, 2000, GoodMessage},
		{0, 0, GoodMessage},
		{500, 0, GoodMessage},
		{math.NaN(), 2000, GoodMessage},
		{-3000, 2000, "about 2 months"},
		{-5000, 2000, "about 3 months"},
		{-4000, 2000, "about 2 months"},
		{-500, 0, "about Infinity months"},
		{500, -2000, "about 0 months"},
	}
	for _, c := range cases {
		if got := BreakEven(c.available, c.savings); got != c.want {
			t.Errorf("BreakEven(%v, %v) = %q, want %q", c.available, c.savings, got, c.want)
		}
	}
}

func TestSpendItAppendsAndKeepsDraft(t *testing.T) {
	tr, store := newTracker(t, map[string]string{
		KeyExpenses: `[{"item":"rent","invested":1500}]`,
	})

	tr.SetDraftItem("bike")
	tr.SetDraftInvested("450")
	tr.SpendIt()

	expenses := tr.Expenses()
	if len(expenses) != 2 {
		t.Fatalf("expenses = %d, want 2", len(expenses))
	}
	last := expenses[1]
	if last.Item != "bike" || last.Invested.Float() != 450 {
		t.Fatalf("appended = %+v, want bike/450", last)
	}
	if d := tr.Draft(); d.Item != "bike" || d.Invested != 450 {
		t.Fatalf("draft after submit = %+v, want unchanged", d)
	}

	want := `[{"item":"rent","invested":1500},{"item":"bike","invested":450}]`
	if got := stored(t, store, KeyExpenses); got != want {
		t.Fatalf("persisted = %s, want %s", got, want)
	}
}

func TestSpendItWithUnparseableInvested(t *testing.T) {
	tr, store := newTracker(t, map[string]string{KeyCash: "100"})

	tr.SetDraftItem("mystery")
	tr.SetDraftInvested("abc")
	if !math.IsNaN(tr.Draft().Invested) {
		t.Fatalf("draft invested = %v, want NaN", tr.Draft().Invested)
	}
	tr.SpendIt()

	if !math.IsNaN(tr.AvailableCash()) {
		t.Fatalf("AvailableCash = %v, want NaN", tr.AvailableCash())
	}
	if _, ok := tr.Balance(); ok {
		t.Fatal("Balance should be blank for NaN")
	}
	if got := tr.BreakEven(); got != GoodMessage {
		t.Fatalf("BreakEven = %q, want %q", got, GoodMessage)
	}

	want := `[{"item":"mystery","invested":null}]`
	if got := stored(t, store, KeyExpenses); got != want {
		t.Fatalf("persisted = %s, want %s", got, want)
	}

	// After a reload the null counts as zero.
	reloaded := New(NewKVRepository(store))
	if got := reloaded.AvailableCash(); got != 100 {
		t.Fatalf("reloaded AvailableCash = %v, want 100", got)
	}
}

func TestUpdateExpenseMatchesByItem(t *testing.T) {
	tr, store := newTracker(t, map[string]string{
		KeyCash:     "10000",
		KeyExpenses: `[{"item":"rent","invested":1500},{"item":"car","invested":800},{"item":"rent","invested":1500}]`,
	})

	if err := tr.UpdateExpense("rent", FieldInvested, "1700"); err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}

	expenses := tr.Expenses()
	if expenses[0].Invested.String() != "1700" || expenses[2].Invested.String() != "1700" {
		t.Fatalf("duplicate rent entries = %v / %v, want both 1700",
			expenses[0].Invested, expenses[2].Invested)
	}
	if expenses[1].Invested.String() != "800" {
		t.Fatalf("car = %v, want untouched 800", expenses[1].Invested)
	}
	if got := tr.AvailableCash(); got != 10000-1700-800-1700 {
		t.Fatalf("AvailableCash = %v", got)
	}

	want := `[{"item":"rent","invested":"1700"},{"item":"car","invested":800},{"item":"rent","invested":"1700"}]`
	if got := stored(t, store, KeyExpenses); got != want {
		t.Fatalf("persisted = %s, want %s", got, want)
	}
}

func TestUpdateExpenseRejectsUnknownField(t *testing.T) {
	tr, _ := newTracker(t, map[string]string{KeyExpenses: `[{"item":"rent","invested":1500}]`})

	err := tr.UpdateExpense("rent", "colour", "red")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}
	if got := tr.Expenses()[0].Invested.Float(); got != 1500 {
		t.Fatalf("invested = %v, want 1500", got)
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	tr := New(NewKVRepository(&brokenStore{}))

	tr.SetStartingCash("2500")
	tr.SetDraftItem("tv")
	tr.SetDraftInvested("500")
	tr.SpendIt()

	if got := tr.AvailableCash(); got != 2000 {
		t.Fatalf("AvailableCash = %v, want 2000", got)
	}
	if got, _ := tr.Balance(); got != "$2,000.00" {
		t.Fatalf("Balance = %q, want $2,000.00", got)
	}
}

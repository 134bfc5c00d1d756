package cmd

import (
	"path/filepath"
	"testing"

	"github.com/theirongolddev/spendit/internal/budget"
	"github.com/theirongolddev/spendit/internal/kv"
)

// run executes the root command against a fresh store in a temp dir.
func run(t *testing.T, dbPath string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append([]string{"--quiet", "--db", dbPath}, args...))
	return rootCmd.Execute()
}

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("SPENDIT_DB", "")
	return filepath.Join(dir, "budget.db")
}

func readKey(t *testing.T, dbPath, key string) string {
	t.Helper()
	db, err := kv.Open(dbPath)
	if err != nil {
		t.Fatalf("kv.Open: %v", err)
	}
	defer db.Close()
	v, _, err := db.Get(key)
	if err != nil {
		t.Fatalf("Get(%q): %v", key, err)
	}
	return v
}

func TestCashAndSpendPersist(t *testing.T) {
	dbPath := isolateConfig(t)

	if err := run(t, dbPath, "cash", "4000"); err != nil {
		t.Fatalf("cash: %v", err)
	}
	if err := run(t, dbPath, "spend", "tv", "500"); err != nil {
		t.Fatalf("spend: %v", err)
	}
	if err := run(t, dbPath, "spend", "tv", "250"); err != nil {
		t.Fatalf("spend: %v", err)
	}

	if got := readKey(t, dbPath, budget.KeyCash); got != `"4000"` {
		t.Errorf("cash = %s, want \"4000\"", got)
	}
	want := `[{"item":"tv","invested":500},{"item":"tv","invested":250}]`
	if got := readKey(t, dbPath, budget.KeyExpenses); got != want {
		t.Errorf("expenses = %s, want %s", got, want)
	}
}

func TestInvestUpdatesEveryMatch(t *testing.T) {
	dbPath := isolateConfig(t)

	for _, args := range [][]string{
		{"spend", "tv", "500"},
		{"spend", "rent", "900"},
		{"spend", "tv", "250"},
		{"invest", "tv", "80"},
	} {
		if err := run(t, dbPath, args...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}

	want := `[{"item":"tv","invested":"80"},{"item":"rent","invested":900},{"item":"tv","invested":"80"}]`
	if got := readKey(t, dbPath, budget.KeyExpenses); got != want {
		t.Errorf("expenses = %s, want %s", got, want)
	}
}

func TestInvestRejectsUnknownField(t *testing.T) {
	dbPath := isolateConfig(t)
	defer func() { flagField = budget.FieldInvested }()

	if err := run(t, dbPath, "spend", "tv", "500"); err != nil {
		t.Fatalf("spend: %v", err)
	}
	if err := run(t, dbPath, "invest", "--field", "color", "tv", "red"); err == nil {
		t.Fatal("expected error for unknown field")
	}
	if err := run(t, dbPath, "invest", "--field", "item", "tv", "television"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	want := `[{"item":"television","invested":500}]`
	if got := readKey(t, dbPath, budget.KeyExpenses); got != want {
		t.Errorf("expenses = %s, want %s", got, want)
	}
}

func TestSummaryAndDumpOnEmptyStore(t *testing.T) {
	dbPath := isolateConfig(t)

	if err := run(t, dbPath); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if err := run(t, dbPath, "dump"); err != nil {
		t.Fatalf("dump: %v", err)
	}
}

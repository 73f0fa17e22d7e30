package history

import (
	"path/filepath"
	"testing"
	"time"

	"rtcheck/pkg/probe"
	"rtcheck/pkg/runner"
)

func testSummary(passed, failed int) runner.Summary {
	var results []probe.Outcome
	for i := 0; i < passed; i++ {
		results = append(results, probe.Pass("passing", "", nil))
	}
	for i := 0; i < failed; i++ {
		results = append(results, probe.Fail("failing", "down"))
	}

	total := passed + failed
	pct := 0.0
	if total > 0 {
		pct = float64(passed) / float64(total) * 100
	}
	return runner.Summary{
		Timestamp: time.Now(),
		BaseURL:   "http://localhost:3001",
		Totals: runner.Totals{
			TotalTests:  total,
			PassedTests: passed,
			FailedTests: failed,
			SuccessRate: pct,
		},
		Results: results,
	}
}

func TestOpen_CreatesSchema(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("failed to query empty store: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}
}

func TestSaveRun_RoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	id, err := store.SaveRun(testSummary(7, 1))
	if err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	if id == 0 {
		t.Error("expected a non-zero run id")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("failed to query runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	rec := runs[0]
	if rec.TotalTests != 8 || rec.PassedTests != 7 || rec.FailedTests != 1 {
		t.Errorf("unexpected counters: total=%d passed=%d failed=%d",
			rec.TotalTests, rec.PassedTests, rec.FailedTests)
	}
	if rec.BaseURL != "http://localhost:3001" {
		t.Errorf("unexpected base URL %q", rec.BaseURL)
	}
}

func TestRecentRuns_NewestFirst(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(testSummary(8, 0)); err != nil {
		t.Fatalf("failed to save first run: %v", err)
	}
	if _, err := store.SaveRun(testSummary(6, 2)); err != nil {
		t.Fatalf("failed to save second run: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("failed to query runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID <= runs[1].ID {
		t.Errorf("expected newest first, got ids %d then %d", runs[0].ID, runs[1].ID)
	}
	if runs[0].FailedTests != 2 {
		t.Errorf("expected newest run with 2 failures, got %d", runs[0].FailedTests)
	}
}

func TestRecentRuns_Limit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	for i := 0; i < 3; i++ {
		if _, err := store.SaveRun(testSummary(8, 0)); err != nil {
			t.Fatalf("failed to save run %d: %v", i, err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("failed to query runs: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

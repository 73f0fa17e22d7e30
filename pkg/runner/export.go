package runner

import (
	"encoding/json"
	"os"
	"time"

	"rtcheck/pkg/probe"
)

// DefaultExportFile is written when no export path override is given.
const DefaultExportFile = "rtcheck-results.json"

// Summary is the read-only aggregate of one run: totals plus the ordered
// outcome list. The JSON layout is the harness's persisted artifact.
type Summary struct {
	Timestamp time.Time       `json:"timestamp"`
	BaseURL   string          `json:"base_url"`
	Totals    Totals          `json:"summary"`
	Results   []probe.Outcome `json:"test_results"`
}

// Totals carries the run counters.
type Totals struct {
	TotalTests  int     `json:"total_tests"`
	PassedTests int     `json:"passed_tests"`
	FailedTests int     `json:"failed_tests"`
	SuccessRate float64 `json:"success_rate"`
}

// Export writes the run summary as indented JSON to path, or to
// DefaultExportFile when path is empty. A failed export is logged and
// reported back, but callers must not let it change the run's exit code.
func (r *Runner) Export(path string) error {
	if path == "" {
		path = DefaultExportFile
	}

	buf, err := json.MarshalIndent(r.Summary(), "", "  ")
	if err != nil {
		r.logger.Errorf("failed to encode results: %v", err)
		return err
	}

	if err := os.WriteFile(path, buf, 0644); err != nil {
		r.logger.Errorf("failed to export results: %v", err)
		return err
	}

	r.logger.Infof("results exported to %s", path)
	return nil
}

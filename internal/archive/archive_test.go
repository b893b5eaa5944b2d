package archive

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/thermalworks/cyclesim/pkg/cycle"
	"github.com/thermalworks/cyclesim/pkg/sweep"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestSaveSweep(t *testing.T) {
	a := openTestArchive(t)

	points := []sweep.Point{
		{Ratio: 5, Result: cycle.Result{NetWork: 180.5, HeatInput: 700.1, ThermalEfficiency: 0.258}},
		{Ratio: 10, Result: cycle.Result{NetWork: 230.2, HeatInput: 668.9, ThermalEfficiency: 0.344, Extrapolated: true}},
		{Ratio: 1, Err: errors.New("invalid parameter")},
	}

	runID, err := a.SaveSweep("net_work", map[string]float64{"t1": 298.15}, points)
	if err != nil {
		t.Fatalf("SaveSweep failed: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run ID")
	}

	var kind string
	if err := a.db.QueryRow(`SELECT kind FROM runs WHERE run_id = ?`, runID).Scan(&kind); err != nil {
		t.Fatalf("run row missing: %v", err)
	}
	if kind != "net_work" {
		t.Errorf("kind = %q, want net_work", kind)
	}

	var n int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM points WHERE run_id = ?`, runID).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("stored %d points, want 3", n)
	}

	var failed int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM points WHERE run_id = ? AND error IS NOT NULL`, runID).Scan(&failed); err != nil {
		t.Fatal(err)
	}
	if failed != 1 {
		t.Errorf("stored %d failed points, want 1", failed)
	}
}

func TestSaveCombinedSweep(t *testing.T) {
	a := openTestArchive(t)

	points := []sweep.CombinedPoint{
		{Ratio: 10, Result: cycle.CombinedResult{
			Brayton:            cycle.Result{NetWork: 230.2, HeatInput: 668.9, ThermalEfficiency: 0.344},
			TurbineExitTemp:    721.4,
			BottomingActive:    true,
			CombinedEfficiency: 0.494,
		}},
	}

	runID, err := a.SaveCombinedSweep("combined", nil, points)
	if err != nil {
		t.Fatalf("SaveCombinedSweep failed: %v", err)
	}

	var combEff, t4 float64
	row := a.db.QueryRow(`SELECT combined_eff, t4 FROM points WHERE run_id = ?`, runID)
	if err := row.Scan(&combEff, &t4); err != nil {
		t.Fatalf("point row missing: %v", err)
	}
	if combEff != 0.494 || t4 != 721.4 {
		t.Errorf("stored combined_eff=%v t4=%v", combEff, t4)
	}
}

func TestSeparateRunsGetSeparateIDs(t *testing.T) {
	a := openTestArchive(t)

	id1, err := a.SaveSweep("efficiency", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := a.SaveSweep("efficiency", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Error("two runs share an ID")
	}
}

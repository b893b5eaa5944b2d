// Package archive persists sweep results to a SQLite database so runs can
// be compared after the fact. The core evaluators never touch it; the
// application hands it finished value results.
package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/thermalworks/cyclesim/pkg/sweep"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	created_at  TEXT NOT NULL,
	kind        TEXT NOT NULL,
	params_json TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS points (
	run_id       TEXT NOT NULL REFERENCES runs(run_id),
	ratio        REAL NOT NULL,
	net_work     REAL,
	heat_input   REAL,
	thermal_eff  REAL,
	combined_eff REAL,
	t4           REAL,
	extrapolated INTEGER NOT NULL DEFAULT 0,
	error        TEXT
);
CREATE INDEX IF NOT EXISTS idx_points_run ON points(run_id);
`

// Archive is a handle to the run database.
type Archive struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive database at path and
// ensures the schema exists.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping archive database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create archive schema: %w", err)
	}
	return &Archive{db: db}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// SaveSweep stores a Brayton sweep under a fresh run ID and returns it.
// params may be any JSON-serializable description of the run inputs.
func (a *Archive) SaveSweep(kind string, params interface{}, points []sweep.Point) (string, error) {
	runID, tx, err := a.beginRun(kind, params)
	if err != nil {
		return "", err
	}

	for _, pt := range points {
		if pt.Err != nil {
			if _, err := tx.Exec(`INSERT INTO points (run_id, ratio, error) VALUES (?, ?, ?)`,
				runID, pt.Ratio, pt.Err.Error()); err != nil {
				tx.Rollback()
				return "", fmt.Errorf("failed to insert failed point: %w", err)
			}
			continue
		}
		if _, err := tx.Exec(
			`INSERT INTO points (run_id, ratio, net_work, heat_input, thermal_eff, extrapolated) VALUES (?, ?, ?, ?, ?, ?)`,
			runID, pt.Ratio, pt.Result.NetWork, pt.Result.HeatInput, pt.Result.ThermalEfficiency,
			boolToInt(pt.Result.Extrapolated)); err != nil {
			tx.Rollback()
			return "", fmt.Errorf("failed to insert point: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// SaveCombinedSweep stores a combined-cycle sweep under a fresh run ID.
func (a *Archive) SaveCombinedSweep(kind string, params interface{}, points []sweep.CombinedPoint) (string, error) {
	runID, tx, err := a.beginRun(kind, params)
	if err != nil {
		return "", err
	}

	for _, pt := range points {
		if pt.Err != nil {
			if _, err := tx.Exec(`INSERT INTO points (run_id, ratio, error) VALUES (?, ?, ?)`,
				runID, pt.Ratio, pt.Err.Error()); err != nil {
				tx.Rollback()
				return "", fmt.Errorf("failed to insert failed point: %w", err)
			}
			continue
		}
		if _, err := tx.Exec(
			`INSERT INTO points (run_id, ratio, net_work, heat_input, thermal_eff, combined_eff, t4, extrapolated)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, pt.Ratio,
			pt.Result.Brayton.NetWork, pt.Result.Brayton.HeatInput, pt.Result.Brayton.ThermalEfficiency,
			pt.Result.CombinedEfficiency, pt.Result.TurbineExitTemp,
			boolToInt(pt.Result.Extrapolated)); err != nil {
			tx.Rollback()
			return "", fmt.Errorf("failed to insert combined point: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

func (a *Archive) beginRun(kind string, params interface{}) (string, *sql.Tx, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal run params: %w", err)
	}

	tx, err := a.db.Begin()
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	runID := uuid.New().String()
	if _, err := tx.Exec(`INSERT INTO runs (run_id, created_at, kind, params_json) VALUES (?, ?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), kind, string(paramsJSON)); err != nil {
		tx.Rollback()
		return "", nil, fmt.Errorf("failed to insert run: %w", err)
	}
	return runID, tx, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

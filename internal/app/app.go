// Package app wires configuration, property data, the cycle evaluators
// and reporting into one analysis run.
package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/thermalworks/cyclesim/internal/archive"
	"github.com/thermalworks/cyclesim/internal/report"
	"github.com/thermalworks/cyclesim/pkg/airdata"
	"github.com/thermalworks/cyclesim/pkg/config"
	"github.com/thermalworks/cyclesim/pkg/cycle"
	"github.com/thermalworks/cyclesim/pkg/props"
	"github.com/thermalworks/cyclesim/pkg/sweep"
)

// App represents one configured analysis run.
type App struct {
	cfg         *config.Config
	logger      *zap.SugaredLogger
	out         io.Writer
	archivePath string
}

// New creates a new application instance writing reports to out. An empty
// archivePath disables persistence.
func New(cfg *config.Config, logger *zap.SugaredLogger, out io.Writer, archivePath string) *App {
	return &App{
		cfg:         cfg,
		logger:      logger,
		out:         out,
		archivePath: archivePath,
	}
}

// Run executes the four analysis parts: efficiency sweep, net work sweep
// with optimum, efficiency sensitivity, and the combined-cycle sweep with
// its spot evaluation.
func (a *App) Run(ctx context.Context) error {
	table, err := airdata.Load(a.cfg.AirData)
	if err != nil {
		return err
	}
	prop, err := props.NewTableProvider(table)
	if err != nil {
		return err
	}
	tmin, tmax := prop.Domain()
	a.logger.Infof("loaded air property table: %d rows, %.0f-%.0f K", table.Len(), tmin, tmax)

	base := a.baseParams()
	bottoming := a.bottomingParams()

	var arch *archive.Archive
	if a.archivePath != "" {
		arch, err = archive.Open(a.archivePath)
		if err != nil {
			return err
		}
		defer arch.Close()
	}

	fmt.Fprintf(a.out, ">>> SIMULATION RESULTS <<<\n\n")

	// Part 1: thermal efficiency over the pressure-ratio range.
	if err := ctx.Err(); err != nil {
		return err
	}
	effCfg := a.cfg.Sweeps.Efficiency
	effPoints := sweep.Run(prop, base, sweep.Ratios(effCfg.MinRatio, effCfg.MaxRatio, effCfg.Points))
	report.EfficiencyTable(a.out, effPoints)
	a.archiveSweep(arch, "efficiency", base, effPoints)

	// Part 2: net work with sampled optimum.
	if err := ctx.Err(); err != nil {
		return err
	}
	workCfg := a.cfg.Sweeps.NetWork
	workPoints := sweep.Run(prop, base, sweep.Ratios(workCfg.MinRatio, workCfg.MaxRatio, workCfg.Points))
	report.NetWorkTable(a.out, workPoints)
	a.archiveSweep(arch, "net_work", base, workPoints)

	// Part 3: efficiency sensitivity at fixed ratio.
	if err := ctx.Err(); err != nil {
		return err
	}
	sensCfg := a.cfg.Sweeps.Sensitivity
	sensBase := base
	sensBase.PressureRatio = sensCfg.Ratio
	sensPoints := sweep.Sensitivity(prop, sensBase, sensCfg.Efficiencies)
	report.SensitivityTable(a.out, sensCfg.Ratio, sensPoints)

	// Part 4: combined cycle sweep plus spot evaluation.
	if err := ctx.Err(); err != nil {
		return err
	}
	combCfg := a.cfg.Sweeps.Combined
	combPoints := sweep.RunCombined(prop, base, bottoming,
		sweep.Ratios(combCfg.MinRatio, combCfg.MaxRatio, combCfg.Points))
	report.CombinedTable(a.out, combPoints)
	for _, pt := range combPoints {
		if pt.Err == nil && !pt.Result.BottomingActive {
			a.logger.Debugf("bottoming cycle inactive at r=%.2f (T4=%.2f K)", pt.Ratio, pt.Result.TurbineExitTemp)
		}
	}
	if arch != nil {
		if runID, err := arch.SaveCombinedSweep("combined", base, combPoints); err != nil {
			a.logger.Warnf("failed to archive combined sweep: %v", err)
		} else {
			a.logger.Infof("archived combined sweep as run %s", runID)
		}
	}

	if combCfg.SpotRatio > 0 {
		spotParams := base
		spotParams.PressureRatio = combCfg.SpotRatio
		res, err := cycle.EvaluateCombined(prop, spotParams, bottoming)
		report.CombinedSpot(a.out, sweep.CombinedPoint{Ratio: combCfg.SpotRatio, Result: res, Err: err})
	}

	return nil
}

func (a *App) baseParams() cycle.Params {
	return cycle.Params{
		CompressorEff:    a.cfg.Cycle.CompressorEfficiency,
		TurbineEff:       a.cfg.Cycle.TurbineEfficiency,
		InletTemp:        a.cfg.Cycle.InletTemp,
		TurbineInletTemp: a.cfg.Cycle.TurbineInletTemp,
		GasConstant:      a.cfg.Cycle.GasConstant,
		Solver: cycle.SolverOptions{
			Tolerance:     a.cfg.Solver.Tolerance,
			MaxIterations: a.cfg.Solver.MaxIterations,
		},
	}
}

func (a *App) bottomingParams() cycle.BottomingParams {
	return cycle.BottomingParams{
		StackTemp:        a.cfg.Bottoming.StackTemp,
		ExhaustThreshold: a.cfg.Bottoming.ExhaustThreshold,
		SteamHeatInput:   a.cfg.Bottoming.SteamHeatInput,
		SteamEfficiency:  a.cfg.Bottoming.SteamEfficiency,
	}
}

func (a *App) archiveSweep(arch *archive.Archive, kind string, params cycle.Params, points []sweep.Point) {
	if arch == nil {
		return
	}
	runID, err := arch.SaveSweep(kind, params, points)
	if err != nil {
		a.logger.Warnf("failed to archive %s sweep: %v", kind, err)
		return
	}
	a.logger.Infof("archived %s sweep as run %s", kind, runID)
}

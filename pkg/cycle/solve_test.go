package cycle

import (
	"errors"
	"math"
	"testing"
)

func TestSolveTemperatureRoundTrip(t *testing.T) {
	air := testAir{}

	// Solving for the entropy value produced by T must return T.
	tests := []struct {
		name string
		temp float64
		seed float64
	}{
		{"ambient, seed below", 298.15, 250},
		{"ambient, seed above", 298.15, 450},
		{"mid-range", 650.0, 500},
		{"turbine inlet", 1200.0, 900},
		{"far seed", 800.0, 210},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := air.Entropy(tt.temp)
			got, err := SolveTemperature(air.Entropy, target, tt.seed, SolverOptions{})
			if err != nil {
				t.Fatalf("SolveTemperature failed: %v", err)
			}
			if math.Abs(got-tt.temp) > 1e-5 {
				t.Errorf("got T=%.8f, want %.8f", got, tt.temp)
			}
		})
	}
}

func TestSolveTemperatureExactSeed(t *testing.T) {
	// Zero entropy change (pressure ratio 1) must return the seed
	// without entering the iteration.
	air := testAir{}
	got, err := SolveTemperature(air.Entropy, air.Entropy(298.15), 298.15, SolverOptions{})
	if err != nil {
		t.Fatalf("SolveTemperature failed: %v", err)
	}
	if got != 298.15 {
		t.Errorf("got T=%v, want exactly 298.15", got)
	}
}

func TestSolveTemperatureInverseEnthalpy(t *testing.T) {
	// The same solver inverts the enthalpy function for the combined
	// cycle's T4 recovery.
	air := testAir{}
	want := 728.0
	got, err := SolveTemperature(air.Enthalpy, air.Enthalpy(want), 1000, SolverOptions{})
	if err != nil {
		t.Fatalf("SolveTemperature failed: %v", err)
	}
	if math.Abs(got-want) > 1e-5 {
		t.Errorf("got T=%.8f, want %.8f", got, want)
	}
}

func TestSolveTemperatureNoConvergence(t *testing.T) {
	// A flat function can never bracket a root away from its value.
	flat := func(float64) float64 { return 1.0 }
	_, err := SolveTemperature(flat, 2.0, 500, SolverOptions{})
	if err == nil {
		t.Fatal("expected convergence error, got nil")
	}
	var convErr *ConvergenceError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *ConvergenceError, got %T", err)
	}
	if convErr.Target != 2.0 {
		t.Errorf("error target = %v, want 2.0", convErr.Target)
	}
}

func TestSolveTemperatureToleranceOption(t *testing.T) {
	air := testAir{}
	target := air.Entropy(650)

	loose, err := SolveTemperature(air.Entropy, target, 400, SolverOptions{Tolerance: 0.5})
	if err != nil {
		t.Fatalf("loose solve failed: %v", err)
	}
	if math.Abs(loose-650) > 0.5 {
		t.Errorf("loose solve off by %v, tolerance was 0.5", math.Abs(loose-650))
	}

	tight, err := SolveTemperature(air.Entropy, target, 400, SolverOptions{Tolerance: 1e-9})
	if err != nil {
		t.Fatalf("tight solve failed: %v", err)
	}
	if math.Abs(tight-650) > 1e-8 {
		t.Errorf("tight solve off by %v", math.Abs(tight-650))
	}
}

func TestSolveTemperatureIterationBudget(t *testing.T) {
	// One iteration cannot reach 1e-6 from a wide bracket.
	air := testAir{}
	_, err := SolveTemperature(air.Entropy, air.Entropy(1200), 300, SolverOptions{MaxIterations: 1})
	var convErr *ConvergenceError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *ConvergenceError, got %v", err)
	}
	if convErr.Iterations != 1 {
		t.Errorf("error iterations = %d, want 1", convErr.Iterations)
	}
}
